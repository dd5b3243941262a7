package legacy

import (
	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/enums"
	"github.com/zeusync/gnr/internal/core/schema/format"
	"github.com/zeusync/gnr/internal/core/schema/types"
)

// ConnectivityEdgeGtUnversioned is the edge as first published: no Version
// field and no Status. Every such edge was live when sent.
type ConnectivityEdgeGtUnversioned struct {
	id             string
	fromGNodeID    string
	toGNodeID      string
	fromGNodeAlias string
	toGNodeAlias   string
}

var ConnectivityEdgeGtUnversionedType = schema.NewLegacyClass(
	schema.Descriptor{TypeName: types.ConnectivityEdgeTypeName, Version: schema.NoVersion},
	[]schema.Field{
		{Name: "id"},
		{Name: "from_g_node_id"},
		{Name: "to_g_node_id"},
		{Name: "from_g_node_alias"},
		{Name: "to_g_node_alias"},
	},
	func(b *schema.Binder) *ConnectivityEdgeGtUnversioned {
		return &ConnectivityEdgeGtUnversioned{
			id:             b.String("id", format.UUID4Str),
			fromGNodeID:    b.String("from_g_node_id", format.UUID4Str),
			toGNodeID:      b.String("to_g_node_id", format.UUID4Str),
			fromGNodeAlias: b.String("from_g_node_alias", format.LeftRightDot),
			toGNodeAlias:   b.String("to_g_node_alias", format.LeftRightDot),
		}
	},
)

func (e *ConnectivityEdgeGtUnversioned) Descriptor() schema.Descriptor {
	return ConnectivityEdgeGtUnversionedType.Descriptor()
}

func (e *ConnectivityEdgeGtUnversioned) Document() schema.Document {
	return ConnectivityEdgeGtUnversionedType.Document(func(w *schema.Writer) {
		w.Put("id", e.id)
		w.Put("from_g_node_id", e.fromGNodeID)
		w.Put("to_g_node_id", e.toGNodeID)
		w.Put("from_g_node_alias", e.fromGNodeAlias)
		w.Put("to_g_node_alias", e.toGNodeAlias)
	})
}

func (e *ConnectivityEdgeGtUnversioned) Encode() ([]byte, error) { return schema.Encode(e) }

func (e *ConnectivityEdgeGtUnversioned) MigrateToLatest() (schema.Value, error) {
	return latest(types.NewConnectivityEdgeGt(types.ConnectivityEdgeParams{
		ID:             e.id,
		FromGNodeID:    e.fromGNodeID,
		ToGNodeID:      e.toGNodeID,
		FromGNodeAlias: e.fromGNodeAlias,
		ToGNodeAlias:   e.toGNodeAlias,
		Status:         enums.GNodeStatusActive,
	}))
}
