// Package registry resolves documents of any published version of a type to a
// validated value of its current version.
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/zeusync/gnr/internal/core/observability/log"
	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/naming"
)

// Path names how a document was resolved.
type Path string

const (
	PathCurrent    Path = "current"
	PathTranslated Path = "translated"
	PathFallback   Path = "fallback"
	PathStripped   Path = "stripped"
)

// Codec holds the current and superseded classes of every type. It is built
// once by New and never written afterwards, so one Codec may serve any number
// of goroutines.
type Codec struct {
	current map[string]schema.Type
	legacy  map[string]map[string]schema.LegacyType
	known   []string
	opts    options
}

// New builds the registries. Every problem found is reported, combined, as
// *ConfigError values.
func New(current []schema.Type, legacy []schema.LegacyType, opts ...Option) (*Codec, error) {
	c := &Codec{
		current: make(map[string]schema.Type, len(current)),
		legacy:  make(map[string]map[string]schema.LegacyType),
		opts:    defaultOptions(),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}

	var errs error
	for _, t := range current {
		if t == nil {
			errs = multierr.Append(errs, &ConfigError{Reason: "nil current class"})
			continue
		}
		desc := t.Descriptor()
		if existing, ok := c.current[desc.TypeName]; ok {
			if existing != t {
				errs = multierr.Append(errs, &ConfigError{
					Type:   desc,
					Reason: fmt.Sprintf("two current classes claim the type name (other is %s)", existing.Descriptor()),
				})
			}
			continue
		}
		c.current[desc.TypeName] = t
	}

	for _, t := range legacy {
		if t == nil {
			errs = multierr.Append(errs, &ConfigError{Reason: "nil legacy class"})
			continue
		}
		desc := t.Descriptor()
		cur, ok := c.current[desc.TypeName]
		if !ok {
			errs = multierr.Append(errs, &ConfigError{Type: desc, Reason: "legacy version has no current class"})
			continue
		}
		if cur.Descriptor().Version == desc.Version {
			errs = multierr.Append(errs, &ConfigError{Type: desc, Reason: "legacy class claims the current version"})
			continue
		}
		versions := c.legacy[desc.TypeName]
		if versions == nil {
			versions = make(map[string]schema.LegacyType)
			c.legacy[desc.TypeName] = versions
		}
		if existing, ok := versions[desc.Version]; ok {
			if existing != t {
				errs = multierr.Append(errs, &ConfigError{Type: desc, Reason: "two legacy classes claim the version"})
			}
			continue
		}
		versions[desc.Version] = t
	}
	if errs != nil {
		return nil, errs
	}

	for name := range c.current {
		c.known = append(c.known, name)
	}
	sort.Strings(c.known)

	c.opts.logger.Debug("codec ready",
		log.Int("types", len(c.current)),
		log.Int("legacy_types", len(c.legacy)),
		log.Bool("strict_versions", c.opts.strictVersions))
	return c, nil
}

// Decode resolves doc to a current-version value. See Resolve.
func (c *Codec) Decode(doc schema.Document) (schema.Value, error) {
	v, _, err := c.Resolve(doc)
	return v, err
}

// Resolve decodes doc and reports which path produced the value:
//
//   - current: Version equals the current version, strict decode
//   - translated: a legacy class owns the version, decode then migrate
//   - fallback: unrecognized version, decode as current
//   - stripped: as fallback, after dropping fields the current class
//     does not recognize
//
// doc is never modified.
func (c *Codec) Resolve(doc schema.Document) (schema.Value, Path, error) {
	name, ok := doc[schema.TypeNameKey].(string)
	if !ok || name == "" {
		return nil, "", &MissingDiscriminatorError{Known: c.Known()}
	}
	cur, ok := c.current[name]
	if !ok {
		return nil, "", &UnknownTypeError{TypeName: name, Known: c.Known()}
	}
	want := cur.Descriptor().Version

	rawVersion, present := doc[schema.VersionKey]
	version, isString := rawVersion.(string)
	switch {
	case !present:
		version, isString = schema.NoVersion, true
	case isString && version == schema.NoVersion:
		// An empty Version is not the same as an absent one.
		isString = false
	}

	if isString && version == want {
		v, err := cur.Decode(doc)
		return v, PathCurrent, err
	}
	if isString {
		if old, ok := c.legacy[name][version]; ok {
			v, err := c.translate(cur, old, doc)
			return v, PathTranslated, err
		}
	}

	if c.opts.strictVersions {
		return nil, "", &UnknownVersionError{TypeName: name, Version: rawVersion, Current: want}
	}
	return c.fallback(cur, doc, rawVersion)
}

func (c *Codec) translate(cur schema.Type, old schema.LegacyType, doc schema.Document) (schema.Value, error) {
	from, to := old.Descriptor(), cur.Descriptor()
	legacyValue, err := old.DecodeLegacy(doc)
	if err != nil {
		return nil, err
	}
	v, err := legacyValue.MigrateToLatest()
	if err != nil {
		return nil, err
	}
	if v == nil || v.Descriptor() != to {
		return nil, fmt.Errorf("%s migrated to something other than %s: %w", from, to, schema.ErrNotCurrent)
	}

	c.opts.logger.Warn("translated superseded version",
		log.String("type_name", to.TypeName),
		log.String("from_version", from.Version),
		log.String("to_version", to.Version))
	return v, nil
}

func (c *Codec) fallback(cur schema.Type, doc schema.Document, rawVersion any) (schema.Value, Path, error) {
	desc := cur.Descriptor()
	c.opts.logger.Warn("unknown version, decoding as current",
		log.String("type_name", desc.TypeName),
		log.Any("from_version", rawVersion),
		log.String("to_version", desc.Version))

	patched := schema.Clone(doc)
	if desc.HasVersion() {
		patched[schema.VersionKey] = desc.Version
	} else {
		delete(patched, schema.VersionKey)
	}

	v, err := cur.Decode(patched)
	if err == nil {
		return v, PathFallback, nil
	}
	if !errors.Is(err, schema.ErrClosedSchema) {
		return nil, PathFallback, err
	}

	stripped, dropped := strip(patched, cur)
	c.opts.logger.Warn("stripping unrecognized fields and retrying",
		log.String("type_name", desc.TypeName),
		log.Strings("fields", dropped))
	v, err = cur.Decode(stripped)
	return v, PathStripped, err
}

// strip keeps the keys cur recognizes in any spelling: internal, wire or alias.
func strip(doc schema.Document, cur schema.Type) (schema.Document, []string) {
	valid := make(map[string]struct{})
	for _, f := range cur.Fields() {
		valid[f.Name] = struct{}{}
		valid[naming.ToWireCase(f.Name)] = struct{}{}
		valid[f.WireName()] = struct{}{}
	}

	out := make(schema.Document, len(doc))
	var dropped []string
	for key, v := range doc {
		_, ok := valid[key]
		if !ok {
			_, ok = valid[naming.ToInternalCase(key)]
		}
		if !ok {
			dropped = append(dropped, key)
			continue
		}
		out[key] = v
	}
	sort.Strings(dropped)
	return out, dropped
}

// DecodeBytes parses exactly one UTF-8 JSON object and decodes it. Numbers are
// kept as json.Number so integers survive exactly.
func (c *Codec) DecodeBytes(data []byte) (schema.Value, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(doc)
}

// ParseDocument turns bytes into a Document without interpreting it.
func ParseDocument(data []byte) (schema.Document, error) {
	if !utf8.Valid(data) {
		return nil, &MalformedInputError{Reason: "invalid UTF-8"}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, &MalformedInputError{Reason: "invalid JSON", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &MalformedInputError{Reason: "trailing data after the top-level object"}
	}
	doc, ok := top.(map[string]any)
	if !ok {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("top level is %s, want an object", jsonKind(top))}
	}
	return doc, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Encode renders a current-version value. Superseded values, and values of a
// type this codec does not hold, are refused with schema.ErrNotCurrent.
func (c *Codec) Encode(v schema.Value) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("nil value: %w", schema.ErrNotCurrent)
	}
	desc := v.Descriptor()
	cur, ok := c.current[desc.TypeName]
	if !ok || cur.Descriptor() != desc {
		return nil, fmt.Errorf("%s: %w", desc, schema.ErrNotCurrent)
	}
	return v.Encode()
}

// Known returns the registered type names, sorted.
func (c *Codec) Known() []string {
	out := make([]string, len(c.known))
	copy(out, c.known)
	return out
}

// Lookup returns the current class of typeName.
func (c *Codec) Lookup(typeName string) (schema.Type, bool) {
	t, ok := c.current[typeName]
	return t, ok
}

// Entry describes one type: its current class and the superseded versions
// that translate to it.
type Entry struct {
	schema.Info `yaml:",inline"`
	Legacy      []string `json:"legacy_versions,omitempty" yaml:"legacy_versions,omitempty"`
}

// Types lists every registered type, sorted by name. Legacy versions are
// sorted, with the version-less one shown as "-".
func (c *Codec) Types() []Entry {
	out := make([]Entry, 0, len(c.known))
	for _, name := range c.known {
		e := Entry{Info: schema.Describe(c.current[name])}
		for version := range c.legacy[name] {
			if version == schema.NoVersion {
				version = "-"
			}
			e.Legacy = append(e.Legacy, version)
		}
		sort.Strings(e.Legacy)
		out = append(out, e)
	}
	return out
}
