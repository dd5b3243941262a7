package format

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeftRightDot(t *testing.T) {
	for _, ok := range []string{"a", "d1", "d1.isone.ver.keene", "d1.1", "hw1.isone.me.versant.keene.beech.scada"} {
		_, err := LeftRightDot(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "1a", "A.b", "a..b", ".a", "a.", "a-b", "a_b", "a.B"} {
		_, err := LeftRightDot(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestSpaceheatName(t *testing.T) {
	for _, ok := range []string{"a", "store-pump", "dist-flow2", strings.Repeat("a", 64)} {
		_, err := SpaceheatName(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "-a", "a-", "a--b", "a.b", "A", "1a", strings.Repeat("a", 65)} {
		_, err := SpaceheatName(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}

	_, err := SpaceheatName(strings.Repeat("b", 65))
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, RuleSpaceheatName, fe.Rule)
	assert.Contains(t, fe.Reason, "maximum length")
}

func TestHandleName(t *testing.T) {
	for _, ok := range []string{"a", "admin", "admin.store-pump", "h.pump-relay.relay1"} {
		_, err := HandleName(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "a.", ".a", "a..b", "a.1b", "a.-b", "a-.b", "A.b"} {
		_, err := HandleName(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestUUID4Str(t *testing.T) {
	id := uuid.NewString()
	got, err := UUID4Str(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	v1 := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	_, err = UUID4Str(v1)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, RuleUUID4Str, fe.Rule)
	assert.Contains(t, fe.Reason, "version 1")

	_, err = UUID4Str("0E7A1B2C-3D4E-4F5A-8B6C-7D8E9F0A1B2C")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "want lowercase hex", fe.Reason)

	for _, bad := range []string{
		"",
		"not-a-uuid",
		strings.ReplaceAll(id, "-", ""),
		"{" + id + "}",
		"urn:uuid:" + id,
		"zzzzzzzz-zzzz-4zzz-8zzz-zzzzzzzzzzzz",
		strings.ToUpper(id),
	} {
		_, err := UUID4Str(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestUTCMilliseconds(t *testing.T) {
	_, err := UTCMilliseconds(946684800000)
	assert.NoError(t, err, "Jan 1 2000 is inclusive")
	_, err = UTCMilliseconds(1_700_000_000_000)
	assert.NoError(t, err)

	_, err = UTCMilliseconds(946684799999)
	assert.ErrorIs(t, err, ErrFormat)
	_, err = UTCMilliseconds(32503680000000)
	assert.ErrorIs(t, err, ErrFormat, "Jan 1 3000 is exclusive")
	_, err = UTCMilliseconds(1_700_000_000)
	assert.ErrorIs(t, err, ErrFormat, "seconds are not milliseconds")
}

func TestUTCSeconds(t *testing.T) {
	_, err := UTCSeconds(946684800)
	assert.NoError(t, err)
	_, err = UTCSeconds(32503679999)
	assert.NoError(t, err)

	_, err = UTCSeconds(946684799)
	assert.ErrorIs(t, err, ErrFormat)
	_, err = UTCSeconds(32503680000)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestErrorMessage(t *testing.T) {
	_, err := LeftRightDot("Bad")
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "<Bad>")

	named := fe.WithField("alias")
	assert.Equal(t, "alias", named.Field)
	assert.Empty(t, fe.Field)
	assert.True(t, strings.HasPrefix(named.Error(), "alias=<Bad>"))
}
