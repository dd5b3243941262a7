// Package legacy declares superseded versions of shared-language types that
// peers may still send. Each value migrates to the current version of its
// type; nothing here is ever encoded.
package legacy

import "github.com/zeusync/gnr/internal/core/schema"

// Registered returns every superseded class.
func Registered() []schema.LegacyType {
	return []schema.LegacyType{
		GNodeGt002Type,
		GNodeGt003Type,
		ConnectivityEdgeGtUnversionedType,
	}
}

func opt(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func latest[V schema.Value](v V, err error) (schema.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
