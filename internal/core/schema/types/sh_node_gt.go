package types

import (
	"strings"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/format"
)

const (
	ShNodeTypeName = "sh.node.gt"
	ShNodeVersion  = "000"
)

type ShNodeParams struct {
	ShNodeID    string
	Name        string
	Handle      string
	DisplayName *string
	CreatedMs   int64
}

// ShNodeGt is a spaceheat node: a named component inside a terminal asset.
// Handle locates it in the ownership tree; its last word is Name.
type ShNodeGt struct {
	shNodeID    string
	name        string
	handle      string
	displayName *string
	createdMs   int64
}

var ShNodeGtType = schema.NewClass(
	schema.Descriptor{TypeName: ShNodeTypeName, Version: ShNodeVersion},
	[]schema.Field{
		{Name: "sh_node_id"},
		{Name: "name"},
		{Name: "handle"},
		{Name: "display_name"},
		{Name: "created_ms"},
	},
	func(b *schema.Binder) *ShNodeGt {
		return &ShNodeGt{
			shNodeID:    b.String("sh_node_id", format.UUID4Str),
			name:        b.String("name", format.SpaceheatName),
			handle:      b.String("handle", format.HandleName),
			displayName: b.OptString("display_name"),
			createdMs:   b.Int("created_ms", format.UTCMilliseconds),
		}
	},
	schema.Axiom[*ShNodeGt]{
		Name: "HandleEndsWithName",
		Check: func(n *ShNodeGt) error {
			if last := lastWord(n.handle); last != n.name {
				return schema.Violation("the last word of Handle must be Name", "Handle", n.handle, "Name", n.name)
			}
			return nil
		},
	},
)

func lastWord(handle string) string {
	return handle[strings.LastIndexByte(handle, '.')+1:]
}

func NewShNodeGt(p ShNodeParams) (*ShNodeGt, error) {
	return construct(ShNodeGtType, p.fill)
}

func (p ShNodeParams) fill(w *schema.Writer) {
	w.Put("sh_node_id", p.ShNodeID)
	w.Put("name", p.Name)
	w.Put("handle", p.Handle)
	w.PutString("display_name", p.DisplayName)
	w.Put("created_ms", p.CreatedMs)
}

func (n *ShNodeGt) ShNodeID() string            { return n.shNodeID }
func (n *ShNodeGt) Name() string                { return n.name }
func (n *ShNodeGt) Handle() string              { return n.handle }
func (n *ShNodeGt) DisplayName() (string, bool) { return opt(n.displayName) }
func (n *ShNodeGt) CreatedMs() int64            { return n.createdMs }

// Parent returns the handle of the owning node, or "" at the root.
func (n *ShNodeGt) Parent() string {
	i := strings.LastIndexByte(n.handle, '.')
	if i < 0 {
		return ""
	}
	return n.handle[:i]
}

func (n *ShNodeGt) Params() ShNodeParams {
	return ShNodeParams{
		ShNodeID:    n.shNodeID,
		Name:        n.name,
		Handle:      n.handle,
		DisplayName: clone(n.displayName),
		CreatedMs:   n.createdMs,
	}
}

func (n *ShNodeGt) Descriptor() schema.Descriptor { return ShNodeGtType.Descriptor() }

func (n *ShNodeGt) Document() schema.Document {
	return ShNodeGtType.Document(n.Params().fill)
}

func (n *ShNodeGt) Encode() ([]byte, error) { return schema.Encode(n) }
