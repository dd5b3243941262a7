// Package enums holds the controlled vocabularies of the shared language.
// Vocabularies evolve additively: values may be appended, never removed or
// reordered.
package enums

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zeusync/gnr/internal/core/schema/format"
)

// Vocabulary describes one published enum.
type Vocabulary struct {
	Name    string
	Version string
	Values  []string
}

func parse[E ~string](vocab, raw string, values []E) (E, error) {
	if slices.Contains(values, E(raw)) {
		return E(raw), nil
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return "", &format.Error{
		Rule:   vocab,
		Value:  raw,
		Reason: fmt.Sprintf("want one of %s", strings.Join(names, ", ")),
	}
}

func stringsOf[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// All returns every vocabulary defined here.
func All() []Vocabulary {
	return []Vocabulary{
		{Name: BaseGNodeClassName, Version: BaseGNodeClassVersion, Values: stringsOf(BaseGNodeClassValues())},
		{Name: GNodeClassName, Version: GNodeClassVersion, Values: stringsOf(GNodeClassValues())},
		{Name: GNodeStatusName, Version: GNodeStatusVersion, Values: stringsOf(GNodeStatusValues())},
		{Name: MarketTypeNameName, Version: MarketTypeNameVersion, Values: stringsOf(MarketTypeNameValues())},
	}
}
