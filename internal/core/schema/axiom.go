package schema

import (
	"errors"
	"fmt"
)

// Axiom is a named cross-field invariant of V. Check runs on a fully bound
// candidate and returns nil when the invariant holds.
type Axiom[V any] struct {
	Name  string
	Check func(v V) error
}

func (a Axiom[V]) check(desc Descriptor, v V) error {
	err := a.Check(v)
	if err == nil {
		return nil
	}
	var ae *AxiomError
	if errors.As(err, &ae) {
		c := *ae
		c.Type = desc
		c.Axiom = a.Name
		return &c
	}
	return &AxiomError{Type: desc, Axiom: a.Name, Reason: err.Error()}
}

// Violation builds the error an Axiom.Check returns. kv alternates field
// names and the offending values.
func Violation(reason string, kv ...any) error {
	values := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		values[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return &AxiomError{Reason: reason, Values: values}
}
