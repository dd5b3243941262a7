package types

import (
	"fmt"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/enums"
	"github.com/zeusync/gnr/internal/core/schema/format"
)

const (
	GNodeTypeName = "g.node.gt"
	GNodeVersion  = "004"
)

// GNodeParams carries trusted in-process field values for NewGNodeGt.
type GNodeParams struct {
	GNodeID         string
	Alias           string
	BaseClass       enums.BaseGNodeClass
	GNodeClass      string
	Status          enums.GNodeStatus
	PrevAlias       *string
	PositionPointID *string
	DisplayName     *string
}

// GNodeGt is a node of the grid graph. GNodeClass is the organization-specific
// role; for physical nodes it must spell the base class.
type GNodeGt struct {
	gNodeID         string
	alias           string
	baseClass       enums.BaseGNodeClass
	gNodeClass      string
	status          enums.GNodeStatus
	prevAlias       *string
	positionPointID *string
	displayName     *string
}

var GNodeGtType = schema.NewClass(
	schema.Descriptor{TypeName: GNodeTypeName, Version: GNodeVersion},
	[]schema.Field{
		{Name: "g_node_id"},
		{Name: "alias"},
		{Name: "base_class"},
		{Name: "g_node_class"},
		{Name: "status"},
		{Name: "prev_alias"},
		{Name: "position_point_id"},
		{Name: "display_name"},
	},
	func(b *schema.Binder) *GNodeGt {
		return &GNodeGt{
			gNodeID:         b.String("g_node_id", format.UUID4Str),
			alias:           b.String("alias", format.LeftRightDot),
			baseClass:       schema.Enum(b, "base_class", enums.ParseBaseGNodeClass),
			gNodeClass:      b.String("g_node_class"),
			status:          schema.Enum(b, "status", enums.ParseGNodeStatus),
			prevAlias:       b.OptString("prev_alias", format.LeftRightDot),
			positionPointID: b.OptString("position_point_id", format.UUID4Str),
			displayName:     b.OptString("display_name"),
		}
	},
	schema.Axiom[*GNodeGt]{
		Name: "PhysicalClassAlignment",
		Check: func(g *GNodeGt) error {
			if g.baseClass.IsPhysical() && g.gNodeClass != string(g.baseClass) {
				return schema.Violation(
					fmt.Sprintf("physical GNodes must align GNodeClass with BaseClass, want %q", g.baseClass),
					"BaseClass", g.baseClass, "GNodeClass", g.gNodeClass)
			}
			return nil
		},
	},
	schema.Axiom[*GNodeGt]{
		Name: "PhysicalGNodeLocations",
		Check: func(g *GNodeGt) error {
			if g.baseClass.IsPhysical() && g.positionPointID == nil {
				return schema.Violation("physical GNodes must declare PositionPointId", "BaseClass", g.baseClass)
			}
			return nil
		},
	},
	schema.Axiom[*GNodeGt]{
		Name: "AliasTransitionConsistency",
		Check: func(g *GNodeGt) error {
			if g.prevAlias != nil && *g.prevAlias == g.alias {
				return schema.Violation("PrevAlias must differ from Alias when present", "Alias", g.alias, "PrevAlias", *g.prevAlias)
			}
			return nil
		},
	},
)

// NewGNodeGt builds a GNodeGt from trusted values, running the same checks as decode.
func NewGNodeGt(p GNodeParams) (*GNodeGt, error) {
	return construct(GNodeGtType, p.fill)
}

func (p GNodeParams) fill(w *schema.Writer) {
	w.Put("g_node_id", p.GNodeID)
	w.Put("alias", p.Alias)
	w.Put("base_class", string(p.BaseClass))
	w.Put("g_node_class", p.GNodeClass)
	w.Put("status", string(p.Status))
	w.PutString("prev_alias", p.PrevAlias)
	w.PutString("position_point_id", p.PositionPointID)
	w.PutString("display_name", p.DisplayName)
}

func (g *GNodeGt) GNodeID() string                 { return g.gNodeID }
func (g *GNodeGt) Alias() string                   { return g.alias }
func (g *GNodeGt) BaseClass() enums.BaseGNodeClass { return g.baseClass }
func (g *GNodeGt) GNodeClass() string              { return g.gNodeClass }
func (g *GNodeGt) Status() enums.GNodeStatus       { return g.status }
func (g *GNodeGt) PrevAlias() (string, bool)       { return opt(g.prevAlias) }
func (g *GNodeGt) PositionPointID() (string, bool) { return opt(g.positionPointID) }
func (g *GNodeGt) DisplayName() (string, bool)     { return opt(g.displayName) }

// Params returns a copy of the field values, e.g. to derive a changed node.
func (g *GNodeGt) Params() GNodeParams {
	return GNodeParams{
		GNodeID:         g.gNodeID,
		Alias:           g.alias,
		BaseClass:       g.baseClass,
		GNodeClass:      g.gNodeClass,
		Status:          g.status,
		PrevAlias:       clone(g.prevAlias),
		PositionPointID: clone(g.positionPointID),
		DisplayName:     clone(g.displayName),
	}
}

func (g *GNodeGt) Descriptor() schema.Descriptor { return GNodeGtType.Descriptor() }

func (g *GNodeGt) Document() schema.Document {
	return GNodeGtType.Document(g.Params().fill)
}

func (g *GNodeGt) Encode() ([]byte, error) { return schema.Encode(g) }
