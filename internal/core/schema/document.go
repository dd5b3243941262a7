package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zeusync/gnr/pkg/generic"
)

// Wire keys of the two discriminator fields.
const (
	TypeNameKey = "TypeName"
	VersionKey  = "Version"
)

// Internal names of the two discriminator fields.
const (
	typeNameField = "type_name"
	versionField  = "version"
)

// Document is a decoded but not yet interpreted message: wire-case keys mapped
// to JSON values, possibly nesting further maps and slices.
type Document = map[string]any

// NoVersion is the version of types that predate versioning.
const NoVersion = ""

// Descriptor identifies one schema generation of a type.
type Descriptor struct {
	TypeName string
	Version  string
}

func (d Descriptor) String() string {
	if d.Version == NoVersion {
		return d.TypeName + "/-"
	}
	return d.TypeName + "/" + d.Version
}

// HasVersion reports whether the descriptor carries a version.
func (d Descriptor) HasVersion() bool {
	return d.Version != NoVersion
}

// Clone returns a shallow copy of doc.
func Clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// Marshal renders doc as canonical JSON: sorted keys, no HTML escaping, no
// trailing newline.
func Marshal(doc Document) ([]byte, error) {
	var out []byte
	err := buffers.With(func(buf *bytes.Buffer) error {
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		out = bytes.Clone(bytes.TrimRight(buf.Bytes(), "\n"))
		return nil
	})
	return out, err
}

var buffers = generic.NewPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

// Encode renders the canonical bytes of v.
func Encode(v Value) ([]byte, error) {
	return Marshal(v.Document())
}
