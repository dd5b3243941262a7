// Package format holds the scalar property formats of the shared language.
//
// Every validator is a pure function: it returns its input unchanged when the
// value satisfies the rule and a *Error otherwise. Applying a validator to every
// element of a collection is the caller's job.
package format

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Rule names, as published in the shared-language property formats.
const (
	RuleLeftRightDot    = "LeftRightDot"
	RuleSpaceheatName   = "SpaceheatName"
	RuleHandleName      = "HandleName"
	RuleUUID4Str        = "UuidCanonicalTextual"
	RuleUTCMilliseconds = "UTCMilliseconds"
	RuleUTCSeconds      = "UTCSeconds"
)

// MaxSpaceheatNameLen is the longest SpaceheatName accepted.
const MaxSpaceheatNameLen = 64

// ErrFormat is wrapped by every *Error.
var ErrFormat = errors.New("format violation")

var (
	leftRightDotPattern  = regexp.MustCompile(`^[a-z][a-z0-9]*(?:\.[a-z0-9]+)*$`)
	spaceheatNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)*$`)
	handleNamePattern    = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)*(?:\.[a-z][a-z0-9]*(?:-[a-z0-9]+)*)*$`)
)

var (
	minUTC = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxUTC = time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)

	minUTCSeconds = minUTC.Unix()
	maxUTCSeconds = maxUTC.Unix()

	minUTCMilliseconds = minUTC.UnixMilli()
	maxUTCMilliseconds = maxUTC.UnixMilli()
)

// Error describes a value that failed a format rule. Field is empty when the
// validator is called directly and is filled in by the schema binder.
type Error struct {
	Field  string
	Rule   string
	Value  any
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("<%v>: fails %s: %s", e.Value, e.Rule, e.Reason)
	}
	return fmt.Sprintf("%s=<%v>: fails %s: %s", e.Field, e.Value, e.Rule, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrFormat
}

// WithField returns a copy of e attributed to field.
func (e *Error) WithField(field string) *Error {
	c := *e
	c.Field = field
	return &c
}

func fail(rule string, v any, reason string) *Error {
	return &Error{Rule: rule, Value: v, Reason: reason}
}

// LeftRightDot validates a lowercase dot-separated hierarchical identifier whose
// first character is alphabetic and whose segments are alphanumeric.
func LeftRightDot(v string) (string, error) {
	if !leftRightDotPattern.MatchString(v) {
		return v, fail(RuleLeftRightDot, v, "want lowercase alphanumeric dot-separated words starting with a letter")
	}
	return v, nil
}

// SpaceheatName validates a single lowercase hyphenated word of at most 64 characters.
func SpaceheatName(v string) (string, error) {
	if len(v) > MaxSpaceheatNameLen {
		return v, fail(RuleSpaceheatName, v, fmt.Sprintf("exceeds maximum length of %d", MaxSpaceheatNameLen))
	}
	if !spaceheatNamePattern.MatchString(v) {
		return v, fail(RuleSpaceheatName, v, "want lowercase alphanumeric words joined by single hyphens, starting with a letter")
	}
	return v, nil
}

// HandleName validates a dot-separated sequence of SpaceheatName-shaped words.
func HandleName(v string) (string, error) {
	if !handleNamePattern.MatchString(v) {
		return v, fail(RuleHandleName, v, "want dot-separated hyphenated lowercase words, each starting with a letter")
	}
	return v, nil
}

// UUID4Str validates the canonical 8-4-4-4-12 hyphenated form of a version 4 UUID.
func UUID4Str(v string) (string, error) {
	// uuid.Parse also accepts urn, braced and compact forms.
	if len(v) != 36 {
		return v, fail(RuleUUID4Str, v, "want 8-4-4-4-12 hyphenated hex")
	}
	u, err := uuid.Parse(v)
	if err != nil {
		return v, fail(RuleUUID4Str, v, err.Error())
	}
	// identifiers are compared as strings, so only one spelling is accepted
	if u.String() != v {
		return v, fail(RuleUUID4Str, v, "want lowercase hex")
	}
	if u.Variant() != uuid.RFC4122 {
		return v, fail(RuleUUID4Str, v, "not an RFC 4122 variant uuid")
	}
	if u.Version() != 4 {
		return v, fail(RuleUUID4Str, v, fmt.Sprintf("valid uuid but of version %d", u.Version()))
	}
	return v, nil
}

// UTCMilliseconds validates unix milliseconds in [Jan 1 2000, Jan 1 3000).
func UTCMilliseconds(v int64) (int64, error) {
	if v < minUTCMilliseconds {
		return v, fail(RuleUTCMilliseconds, v, "must be at or after Jan 1 2000")
	}
	if v >= maxUTCMilliseconds {
		return v, fail(RuleUTCMilliseconds, v, "must be before Jan 1 3000")
	}
	return v, nil
}

// UTCSeconds validates unix seconds in [Jan 1 2000, Jan 1 3000).
func UTCSeconds(v int64) (int64, error) {
	if v < minUTCSeconds {
		return v, fail(RuleUTCSeconds, v, "must be at or after Jan 1 2000")
	}
	if v >= maxUTCSeconds {
		return v, fail(RuleUTCSeconds, v, "must be before Jan 1 3000")
	}
	return v, nil
}
