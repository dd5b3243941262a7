package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/zeusync/gnr/internal/core/schema/format"
)

// Error kinds. Every error returned by decode, encode or registry construction
// matches exactly one of these with errors.Is (MissingDiscriminator also
// matches ErrUnknownType).
var (
	ErrMalformedInput        = errors.New("malformed input")
	ErrMissingDiscriminator  = errors.New("missing TypeName")
	ErrUnknownType           = errors.New("unknown type")
	ErrUnknownVersion        = errors.New("unknown version")
	ErrWireCase              = errors.New("keys are not wire case")
	ErrClosedSchema          = errors.New("unrecognized field")
	ErrFormat                = format.ErrFormat
	ErrAxiomViolation        = errors.New("axiom violated")
	ErrRegistryConfiguration = errors.New("registry configuration")

	// ErrNotSuperseded is returned by MigrateToLatest for a current-version
	// value. It signals a programming error, not bad data.
	ErrNotSuperseded = errors.New("value is not a superseded version")
	// ErrNotCurrent is returned when encoding a value whose type is not a
	// registered current version.
	ErrNotCurrent = errors.New("value is not a registered current version")
)

// Kind returns a stable name for the error kind of err, for reporting at the
// transport boundary.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedInput):
		return "MalformedInput"
	case errors.Is(err, ErrMissingDiscriminator):
		return "MissingDiscriminator"
	case errors.Is(err, ErrUnknownType):
		return "UnknownType"
	case errors.Is(err, ErrUnknownVersion):
		return "UnknownVersion"
	case errors.Is(err, ErrWireCase):
		return "WireCase"
	case errors.Is(err, ErrClosedSchema):
		return "ClosedSchema"
	case errors.Is(err, ErrAxiomViolation):
		return "AxiomViolation"
	case errors.Is(err, ErrFormat):
		return "Format"
	case errors.Is(err, ErrRegistryConfiguration):
		return "RegistryConfiguration"
	case errors.Is(err, ErrNotCurrent), errors.Is(err, ErrNotSuperseded):
		return "Usage"
	default:
		return "Unknown"
	}
}

// WireCaseError reports the first key, by path, that is not wire case.
type WireCaseError struct {
	Type Descriptor
	Path string
}

func (e *WireCaseError) Error() string {
	return fmt.Sprintf("%s: key %s is not wire case; keys must be recursively PascalCase", e.Type, e.Path)
}

func (e *WireCaseError) Unwrap() error {
	return ErrWireCase
}

// ClosedSchemaError lists every key of a document that the target type does not
// recognize. Invalid holds the failures of the recognized fields, if any.
type ClosedSchemaError struct {
	Type    Descriptor
	Fields  []string
	Invalid error
}

func (e *ClosedSchemaError) Error() string {
	msg := fmt.Sprintf("%s: unrecognized fields %s", e.Type, strings.Join(e.Fields, ", "))
	if e.Invalid != nil {
		msg += "; " + e.Invalid.Error()
	}
	return msg
}

func (e *ClosedSchemaError) Unwrap() []error {
	if e.Invalid == nil {
		return []error{ErrClosedSchema}
	}
	return []error{ErrClosedSchema, e.Invalid}
}

// AxiomError names a violated cross-field invariant and the field values involved.
type AxiomError struct {
	Type   Descriptor
	Axiom  string
	Reason string
	Values map[string]any
}

func (e *AxiomError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: axiom %s violated: %s", e.Type, e.Axiom, e.Reason)
	if len(e.Values) > 0 {
		keys := make([]string, 0, len(e.Values))
		for k := range e.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Values[k])
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *AxiomError) Unwrap() error {
	return ErrAxiomViolation
}

// ValidationError aggregates every format or axiom failure found in one
// construction attempt.
type ValidationError struct {
	Type Descriptor
	errs error
}

func (e *ValidationError) Error() string {
	errs := e.Errors()
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Type, strings.Join(msgs, "; "))
}

// Errors returns the individual failures in the order they were found.
func (e *ValidationError) Errors() []error {
	return multierr.Errors(e.errs)
}

func (e *ValidationError) Unwrap() []error {
	return e.Errors()
}

// FieldErrors returns the format failures keyed by internal field name.
func (e *ValidationError) FieldErrors() map[string]*format.Error {
	out := make(map[string]*format.Error)
	for _, err := range e.Errors() {
		var fe *format.Error
		if errors.As(err, &fe) {
			out[fe.Field] = fe
		}
	}
	return out
}

// Axioms returns the names of violated axioms.
func (e *ValidationError) Axioms() []string {
	var names []string
	for _, err := range e.Errors() {
		var ae *AxiomError
		if errors.As(err, &ae) {
			names = append(names, ae.Axiom)
		}
	}
	return names
}
