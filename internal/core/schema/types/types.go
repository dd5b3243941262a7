// Package types declares the current version of every shared-language type
// this registry speaks. Values are immutable and can only be obtained through
// the class decoders or the New* constructors, both of which run every format
// rule and axiom of the type.
package types

import "github.com/zeusync/gnr/internal/core/schema"

// Registered returns the current-version classes, one per type name.
func Registered() []schema.Type {
	return []schema.Type{
		GNodeGtType,
		ConnectivityEdgeGtType,
		PositionPointGtType,
		ShNodeGtType,
		MarketSlotGtType,
	}
}

func construct[V schema.Value](c *schema.Class[V], fill func(w *schema.Writer)) (V, error) {
	return c.DecodeTyped(c.Document(fill))
}

func opt(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func clone(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
