package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/zeusync/gnr/internal/core/schema/format"
)

// Rules recorded by the binder itself rather than a property format.
const (
	RuleRequired = "required"
	RuleType     = "type"
	RuleLiteral  = "literal"
)

// StringRule and IntRule are property-format validators, see package format.
type (
	StringRule func(string) (string, error)
	IntRule    func(int64) (int64, error)
)

// Binder reads typed field values out of an internal-case document and
// collects every failure instead of stopping at the first.
type Binder struct {
	desc   Descriptor
	doc    map[string]any
	failed map[string]bool
	errs   error
}

func newBinder(desc Descriptor, doc map[string]any) *Binder {
	return &Binder{desc: desc, doc: doc, failed: make(map[string]bool)}
}

// Err returns a *ValidationError with every failure so far, or nil.
func (b *Binder) Err() error {
	if b.errs == nil {
		return nil
	}
	return &ValidationError{Type: b.desc, errs: b.errs}
}

// Failed reports whether field has already failed.
func (b *Binder) Failed(field string) bool {
	return b.failed[field]
}

// Fail records a failure for field.
func (b *Binder) Fail(field string, value any, rule, reason string) {
	b.record(&format.Error{Field: field, Rule: rule, Value: value, Reason: reason})
}

func (b *Binder) record(fe *format.Error) {
	b.failed[fe.Field] = true
	b.errs = multierr.Append(b.errs, fe)
}

func (b *Binder) reject(field string, value any, err error) {
	var fe *format.Error
	if errors.As(err, &fe) {
		b.record(fe.WithField(field))
		return
	}
	b.Fail(field, value, "value", err.Error())
}

func (b *Binder) lookup(field string, required bool) (any, bool) {
	raw, ok := b.doc[field]
	if !ok || raw == nil {
		if required {
			b.Fail(field, nil, RuleRequired, "field required")
		}
		return nil, false
	}
	return raw, true
}

func (b *Binder) literal(field, want string) {
	raw, ok := b.lookup(field, false)
	if !ok {
		return
	}
	if want == NoVersion {
		b.Fail(field, raw, RuleLiteral, "type carries no version")
		return
	}
	if s, isString := raw.(string); !isString || s != want {
		b.Fail(field, raw, RuleLiteral, fmt.Sprintf("want %q", want))
	}
}

func (b *Binder) str(field string, required bool, rules []StringRule) (string, bool) {
	raw, ok := b.lookup(field, required)
	if !ok {
		return "", false
	}
	s, isString := raw.(string)
	if !isString {
		b.Fail(field, raw, RuleType, fmt.Sprintf("want string, got %T", raw))
		return "", false
	}
	for _, rule := range rules {
		if _, err := rule(s); err != nil {
			b.reject(field, s, err)
			return s, false
		}
	}
	return s, true
}

// String reads a required string field and applies rules in order.
func (b *Binder) String(field string, rules ...StringRule) string {
	s, _ := b.str(field, true, rules)
	return s
}

// OptString reads an optional string field; nil means absent.
func (b *Binder) OptString(field string, rules ...StringRule) *string {
	s, ok := b.str(field, false, rules)
	if !ok {
		return nil
	}
	return &s
}

func (b *Binder) integer(field string, required bool, rules []IntRule) (int64, bool) {
	raw, ok := b.lookup(field, required)
	if !ok {
		return 0, false
	}
	n, isInt := toInt64(raw)
	if !isInt {
		b.Fail(field, raw, RuleType, fmt.Sprintf("want integer, got %v", raw))
		return 0, false
	}
	for _, rule := range rules {
		if _, err := rule(n); err != nil {
			b.reject(field, n, err)
			return n, false
		}
	}
	return n, true
}

// Int reads a required integer field and applies rules in order.
func (b *Binder) Int(field string, rules ...IntRule) int64 {
	n, _ := b.integer(field, true, rules)
	return n
}

// OptInt reads an optional integer field; nil means absent.
func (b *Binder) OptInt(field string, rules ...IntRule) *int64 {
	n, ok := b.integer(field, false, rules)
	if !ok {
		return nil
	}
	return &n
}

// Enum reads a required controlled-vocabulary field.
func Enum[E ~string](b *Binder, field string, parse func(string) (E, error)) E {
	var zero E
	s, ok := b.str(field, true, nil)
	if !ok {
		return zero
	}
	e, err := parse(s)
	if err != nil {
		b.reject(field, s, err)
		return zero
	}
	return e
}

func toInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case float64:
		// Documents built with encoding/json without UseNumber carry float64.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
