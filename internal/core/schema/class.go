package schema

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/zeusync/gnr/internal/core/schema/naming"
)

// Value is an immutable, validated instance of a registered type.
type Value interface {
	Descriptor() Descriptor
	// Document returns the wire-case document of the value with absent fields omitted.
	Document() Document
	// Encode returns the canonical JSON bytes of Document.
	Encode() ([]byte, error)
}

// Legacy is a value of a superseded version that knows how to become the
// current version of its type.
type Legacy interface {
	Value
	MigrateToLatest() (Value, error)
}

// Type is one schema generation: what it is called, which fields it
// recognizes, and how to strictly decode a document into a value.
type Type interface {
	Descriptor() Descriptor
	Fields() []Field
	Decode(doc Document) (Value, error)
}

// LegacyType is a Type whose values are Legacy.
type LegacyType interface {
	Type
	DecodeLegacy(doc Document) (Legacy, error)
}

// Field is one recognized field. Alias overrides the wire spelling when the
// default ToWireCase(Name) is not the published one.
type Field struct {
	Name  string
	Alias string
}

// WireName is the key the field uses on the wire.
func (f Field) WireName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return naming.ToWireCase(f.Name)
}

// Info is the introspection record of a Type.
type Info struct {
	TypeName string   `json:"type_name" yaml:"type_name"`
	Version  string   `json:"version,omitempty" yaml:"version,omitempty"`
	Fields   []string `json:"fields" yaml:"fields"`
}

// Describe returns the descriptor and recognized field names of t.
func Describe(t Type) Info {
	desc := t.Descriptor()
	fields := t.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return Info{TypeName: desc.TypeName, Version: desc.Version, Fields: names}
}

// MigrateToLatest converts a superseded value to its current version. Calling
// it with a current value returns ErrNotSuperseded.
func MigrateToLatest(v Value) (Value, error) {
	l, ok := v.(Legacy)
	if !ok {
		return nil, fmt.Errorf("%s: %w", v.Descriptor(), ErrNotSuperseded)
	}
	return l.MigrateToLatest()
}

// Class implements Type for values of type V.
type Class[V Value] struct {
	desc   Descriptor
	fields []Field
	byWire map[string]string
	wireOf map[string]string
	build  func(*Binder) V
	axioms []Axiom[V]
}

var (
	_ Type       = (*Class[Value])(nil)
	_ LegacyType = (*LegacyClass[Legacy])(nil)
)

// NewClass declares a current-version type. build reads fields through the
// Binder; axioms run only once every field passed its format rules.
// Declaration mistakes panic, since they are fixed at compile time.
func NewClass[V Value](desc Descriptor, fields []Field, build func(*Binder) V, axioms ...Axiom[V]) *Class[V] {
	if desc.TypeName == "" {
		panic("schema: class declared without a type name")
	}
	all := make([]Field, 0, len(fields)+2)
	all = append(all, Field{Name: typeNameField}, Field{Name: versionField})
	all = append(all, fields...)

	c := &Class[V]{
		desc:   desc,
		fields: all,
		byWire: make(map[string]string, len(all)),
		wireOf: make(map[string]string, len(all)),
		build:  build,
		axioms: axioms,
	}
	for _, f := range all {
		wire := f.WireName()
		if !naming.IsWireCase(wire) {
			panic(fmt.Sprintf("schema: %s field %q has non wire-case spelling %q", desc, f.Name, wire))
		}
		if _, dup := c.wireOf[f.Name]; dup {
			panic(fmt.Sprintf("schema: %s declares field %q twice", desc, f.Name))
		}
		if _, dup := c.byWire[wire]; dup {
			panic(fmt.Sprintf("schema: %s declares wire key %q twice", desc, wire))
		}
		c.byWire[wire] = f.Name
		c.wireOf[f.Name] = wire
	}
	return c
}

func (c *Class[V]) Descriptor() Descriptor {
	return c.desc
}

// Fields returns every recognized field, discriminators included.
func (c *Class[V]) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

func (c *Class[V]) Decode(doc Document) (Value, error) {
	v, err := c.DecodeTyped(doc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeTyped strictly decodes doc: wire-case gate, closed schema, literal
// discriminators, field formats, then axioms. Recognized fields are still
// bound when the schema check fails so the error carries their failures too.
func (c *Class[V]) DecodeTyped(doc Document) (V, error) {
	var zero V
	if path, bad := naming.FindNonWireCase(doc); bad {
		return zero, &WireCaseError{Type: c.desc, Path: path}
	}

	internal := make(map[string]any, len(doc))
	var unknown []string
	for key, raw := range doc {
		name, ok := c.byWire[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		internal[name] = raw
	}

	b := newBinder(c.desc, internal)
	b.literal(typeNameField, c.desc.TypeName)
	b.literal(versionField, c.desc.Version)
	v := c.build(b)
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return zero, &ClosedSchemaError{Type: c.desc, Fields: unknown, Invalid: b.Err()}
	}
	if err := b.Err(); err != nil {
		return zero, err
	}

	var violations error
	for _, ax := range c.axioms {
		if err := ax.check(c.desc, v); err != nil {
			violations = multierr.Append(violations, err)
		}
	}
	if violations != nil {
		return zero, &ValidationError{Type: c.desc, errs: violations}
	}
	return v, nil
}

// Document starts a wire document carrying the discriminators of c and lets
// fill add the remaining fields by internal name.
func (c *Class[V]) Document(fill func(w *Writer)) Document {
	w := &Writer{desc: c.desc, wireOf: c.wireOf, doc: Document{TypeNameKey: c.desc.TypeName}}
	if c.desc.HasVersion() {
		w.doc[VersionKey] = c.desc.Version
	}
	fill(w)
	return w.doc
}

// LegacyClass implements LegacyType for superseded values of type V.
type LegacyClass[V Legacy] struct {
	*Class[V]
}

// NewLegacyClass declares a superseded version. See NewClass.
func NewLegacyClass[V Legacy](desc Descriptor, fields []Field, build func(*Binder) V, axioms ...Axiom[V]) *LegacyClass[V] {
	return &LegacyClass[V]{Class: NewClass(desc, fields, build, axioms...)}
}

func (c *LegacyClass[V]) DecodeLegacy(doc Document) (Legacy, error) {
	v, err := c.DecodeTyped(doc)
	if err != nil {
		return nil, err
	}
	return v, nil
}
