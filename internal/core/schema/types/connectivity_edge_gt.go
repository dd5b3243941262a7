package types

import (
	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/enums"
	"github.com/zeusync/gnr/internal/core/schema/format"
)

const (
	ConnectivityEdgeTypeName = "connectivity.edge.gt"
	ConnectivityEdgeVersion  = "000"
)

type ConnectivityEdgeParams struct {
	ID             string
	FromGNodeID    string
	ToGNodeID      string
	FromGNodeAlias string
	ToGNodeAlias   string
	Status         enums.GNodeStatus
}

// ConnectivityEdgeGt is a directed electrical connection between two GNodes.
type ConnectivityEdgeGt struct {
	id             string
	fromGNodeID    string
	toGNodeID      string
	fromGNodeAlias string
	toGNodeAlias   string
	status         enums.GNodeStatus
}

var ConnectivityEdgeGtType = schema.NewClass(
	schema.Descriptor{TypeName: ConnectivityEdgeTypeName, Version: ConnectivityEdgeVersion},
	[]schema.Field{
		{Name: "id"},
		{Name: "from_g_node_id"},
		{Name: "to_g_node_id"},
		{Name: "from_g_node_alias"},
		{Name: "to_g_node_alias"},
		{Name: "status"},
	},
	func(b *schema.Binder) *ConnectivityEdgeGt {
		return &ConnectivityEdgeGt{
			id:             b.String("id", format.UUID4Str),
			fromGNodeID:    b.String("from_g_node_id", format.UUID4Str),
			toGNodeID:      b.String("to_g_node_id", format.UUID4Str),
			fromGNodeAlias: b.String("from_g_node_alias", format.LeftRightDot),
			toGNodeAlias:   b.String("to_g_node_alias", format.LeftRightDot),
			status:         schema.Enum(b, "status", enums.ParseGNodeStatus),
		}
	},
	schema.Axiom[*ConnectivityEdgeGt]{
		Name: "NoSelfConnection",
		Check: func(e *ConnectivityEdgeGt) error {
			if e.fromGNodeID == e.toGNodeID {
				return schema.Violation("a ConnectivityEdge cannot connect a GNode to itself", "FromGNodeId", e.fromGNodeID, "ToGNodeId", e.toGNodeID)
			}
			return nil
		},
	},
)

func NewConnectivityEdgeGt(p ConnectivityEdgeParams) (*ConnectivityEdgeGt, error) {
	return construct(ConnectivityEdgeGtType, p.fill)
}

func (p ConnectivityEdgeParams) fill(w *schema.Writer) {
	w.Put("id", p.ID)
	w.Put("from_g_node_id", p.FromGNodeID)
	w.Put("to_g_node_id", p.ToGNodeID)
	w.Put("from_g_node_alias", p.FromGNodeAlias)
	w.Put("to_g_node_alias", p.ToGNodeAlias)
	w.Put("status", string(p.Status))
}

func (e *ConnectivityEdgeGt) ID() string                { return e.id }
func (e *ConnectivityEdgeGt) FromGNodeID() string       { return e.fromGNodeID }
func (e *ConnectivityEdgeGt) ToGNodeID() string         { return e.toGNodeID }
func (e *ConnectivityEdgeGt) FromGNodeAlias() string    { return e.fromGNodeAlias }
func (e *ConnectivityEdgeGt) ToGNodeAlias() string      { return e.toGNodeAlias }
func (e *ConnectivityEdgeGt) Status() enums.GNodeStatus { return e.status }

func (e *ConnectivityEdgeGt) Params() ConnectivityEdgeParams {
	return ConnectivityEdgeParams{
		ID:             e.id,
		FromGNodeID:    e.fromGNodeID,
		ToGNodeID:      e.toGNodeID,
		FromGNodeAlias: e.fromGNodeAlias,
		ToGNodeAlias:   e.toGNodeAlias,
		Status:         e.status,
	}
}

func (e *ConnectivityEdgeGt) Descriptor() schema.Descriptor {
	return ConnectivityEdgeGtType.Descriptor()
}

func (e *ConnectivityEdgeGt) Document() schema.Document {
	return ConnectivityEdgeGtType.Document(e.Params().fill)
}

func (e *ConnectivityEdgeGt) Encode() ([]byte, error) { return schema.Encode(e) }
