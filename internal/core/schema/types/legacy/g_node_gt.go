package legacy

import (
	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/enums"
	"github.com/zeusync/gnr/internal/core/schema/format"
	"github.com/zeusync/gnr/internal/core/schema/types"
)

// GNodeGt002 predates the split of the node role into BaseClass and
// GNodeClass: Role is a single controlled vocabulary and the location is
// called GpsPointId.
type GNodeGt002 struct {
	gNodeID    string
	alias      string
	role       enums.GNodeClass
	status     enums.GNodeStatus
	gpsPointID *string
}

var GNodeGt002Type = schema.NewLegacyClass(
	schema.Descriptor{TypeName: types.GNodeTypeName, Version: "002"},
	[]schema.Field{
		{Name: "g_node_id"},
		{Name: "alias"},
		{Name: "role"},
		{Name: "status"},
		{Name: "gps_point_id"},
	},
	func(b *schema.Binder) *GNodeGt002 {
		return &GNodeGt002{
			gNodeID:    b.String("g_node_id", format.UUID4Str),
			alias:      b.String("alias", format.LeftRightDot),
			role:       schema.Enum(b, "role", enums.ParseGNodeClass),
			status:     schema.Enum(b, "status", enums.ParseGNodeStatus),
			gpsPointID: b.OptString("gps_point_id", format.UUID4Str),
		}
	},
	schema.Axiom[*GNodeGt002]{
		Name: "PhysicalGNodeLocations",
		Check: func(g *GNodeGt002) error {
			if g.role.BaseClass().IsPhysical() && g.gpsPointID == nil {
				return schema.Violation("physical GNodes must declare GpsPointId", "Role", g.role)
			}
			return nil
		},
	},
)

func (g *GNodeGt002) Role() enums.GNodeClass        { return g.role }
func (g *GNodeGt002) GpsPointID() (string, bool)    { return opt(g.gpsPointID) }
func (g *GNodeGt002) Descriptor() schema.Descriptor { return GNodeGt002Type.Descriptor() }

func (g *GNodeGt002) Document() schema.Document {
	return GNodeGt002Type.Document(func(w *schema.Writer) {
		w.Put("g_node_id", g.gNodeID)
		w.Put("alias", g.alias)
		w.Put("role", string(g.role))
		w.Put("status", string(g.status))
		w.PutString("gps_point_id", g.gpsPointID)
	})
}

func (g *GNodeGt002) Encode() ([]byte, error) { return schema.Encode(g) }

// MigrateToLatest derives BaseClass from Role and keeps Role as GNodeClass.
func (g *GNodeGt002) MigrateToLatest() (schema.Value, error) {
	return latest(types.NewGNodeGt(types.GNodeParams{
		GNodeID:         g.gNodeID,
		Alias:           g.alias,
		BaseClass:       g.role.BaseClass(),
		GNodeClass:      string(g.role),
		Status:          g.status,
		PositionPointID: g.gpsPointID,
	}))
}

// GNodeGt003 is g.node.gt before alias history and display names.
type GNodeGt003 struct {
	gNodeID         string
	alias           string
	baseClass       enums.BaseGNodeClass
	gNodeClass      string
	status          enums.GNodeStatus
	positionPointID *string
}

var GNodeGt003Type = schema.NewLegacyClass(
	schema.Descriptor{TypeName: types.GNodeTypeName, Version: "003"},
	[]schema.Field{
		{Name: "g_node_id"},
		{Name: "alias"},
		{Name: "base_class"},
		{Name: "g_node_class"},
		{Name: "status"},
		{Name: "position_point_id"},
	},
	func(b *schema.Binder) *GNodeGt003 {
		return &GNodeGt003{
			gNodeID:         b.String("g_node_id", format.UUID4Str),
			alias:           b.String("alias", format.LeftRightDot),
			baseClass:       schema.Enum(b, "base_class", enums.ParseBaseGNodeClass),
			gNodeClass:      b.String("g_node_class"),
			status:          schema.Enum(b, "status", enums.ParseGNodeStatus),
			positionPointID: b.OptString("position_point_id", format.UUID4Str),
		}
	},
)

func (g *GNodeGt003) Descriptor() schema.Descriptor { return GNodeGt003Type.Descriptor() }

func (g *GNodeGt003) Document() schema.Document {
	return GNodeGt003Type.Document(func(w *schema.Writer) {
		w.Put("g_node_id", g.gNodeID)
		w.Put("alias", g.alias)
		w.Put("base_class", string(g.baseClass))
		w.Put("g_node_class", g.gNodeClass)
		w.Put("status", string(g.status))
		w.PutString("position_point_id", g.positionPointID)
	})
}

func (g *GNodeGt003) Encode() ([]byte, error) { return schema.Encode(g) }

// MigrateToLatest carries every field over unchanged; the 004 axioms still
// apply to the result.
func (g *GNodeGt003) MigrateToLatest() (schema.Value, error) {
	return latest(types.NewGNodeGt(types.GNodeParams{
		GNodeID:         g.gNodeID,
		Alias:           g.alias,
		BaseClass:       g.baseClass,
		GNodeClass:      g.gNodeClass,
		Status:          g.status,
		PositionPointID: g.positionPointID,
	}))
}
