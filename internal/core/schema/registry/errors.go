package registry

import (
	"fmt"
	"strings"

	"github.com/zeusync/gnr/internal/core/schema"
)

// MalformedInputError reports bytes that are not exactly one UTF-8 JSON object.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Reason, e.Err)
	}
	return "malformed input: " + e.Reason
}

func (e *MalformedInputError) Is(target error) bool {
	return target == schema.ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MissingDiscriminatorError reports a document without a usable TypeName. It
// matches both schema.ErrMissingDiscriminator and schema.ErrUnknownType.
type MissingDiscriminatorError struct {
	Known []string
}

func (e *MissingDiscriminatorError) Error() string {
	return fmt.Sprintf("missing TypeName field; known types: %s", strings.Join(e.Known, ", "))
}

func (e *MissingDiscriminatorError) Is(target error) bool {
	return target == schema.ErrMissingDiscriminator || target == schema.ErrUnknownType
}

// UnknownTypeError reports a TypeName with no registered current class.
type UnknownTypeError struct {
	TypeName string
	Known    []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q; known types: %s", e.TypeName, strings.Join(e.Known, ", "))
}

func (e *UnknownTypeError) Unwrap() error {
	return schema.ErrUnknownType
}

// UnknownVersionError is returned instead of the fallback path when the codec
// runs with strict versions.
type UnknownVersionError struct {
	TypeName string
	Version  any
	Current  string
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown version %v of %s; current version is %s", e.Version, e.TypeName, e.Current)
}

func (e *UnknownVersionError) Unwrap() error {
	return schema.ErrUnknownVersion
}

// ConfigError is a registry construction failure.
type ConfigError struct {
	Type   schema.Descriptor
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("registry configuration: %s: %s", e.Type, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return schema.ErrRegistryConfiguration
}
