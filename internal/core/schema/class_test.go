package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/format"
)

type widget struct {
	id      string
	alias   string
	ref     *string
	created *int64
}

func (w *widget) Descriptor() schema.Descriptor { return widgetClass.Descriptor() }

func (w *widget) Document() schema.Document {
	return widgetClass.Document(func(wr *schema.Writer) {
		wr.Put("widget_id", w.id)
		wr.Put("alias", w.alias)
		wr.PutString("ref_id", w.ref)
		wr.PutInt("created_ms", w.created)
	})
}

func (w *widget) Encode() ([]byte, error) { return schema.Encode(w) }

var widgetClass = schema.NewClass(
	schema.Descriptor{TypeName: "test.widget", Version: "001"},
	[]schema.Field{
		{Name: "widget_id"},
		{Name: "alias"},
		{Name: "ref_id", Alias: "RefIdentifier"},
		{Name: "created_ms"},
	},
	func(b *schema.Binder) *widget {
		return &widget{
			id:      b.String("widget_id", format.UUID4Str),
			alias:   b.String("alias", format.LeftRightDot),
			ref:     b.OptString("ref_id", format.UUID4Str),
			created: b.OptInt("created_ms", format.UTCMilliseconds),
		}
	},
	schema.Axiom[*widget]{
		Name: "NoSelfReference",
		Check: func(w *widget) error {
			if w.ref != nil && *w.ref == w.id {
				return schema.Violation("a widget cannot reference itself", "WidgetId", w.id)
			}
			return nil
		},
	},
)

const (
	widgetID = "5b4f0c1e-3d2a-4c8b-9f7e-1a2b3c4d5e6f"
	otherID  = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"
)

func validWidget() schema.Document {
	return schema.Document{
		"TypeName":      "test.widget",
		"Version":       "001",
		"WidgetId":      widgetID,
		"Alias":         "d1.isone.ver",
		"RefIdentifier": otherID,
		"CreatedMs":     int64(1_700_000_000_000),
	}
}

func TestClassDecode(t *testing.T) {
	v, err := widgetClass.DecodeTyped(validWidget())
	require.NoError(t, err)
	assert.Equal(t, widgetID, v.id)
	require.NotNil(t, v.ref)
	assert.Equal(t, otherID, *v.ref)
	require.NotNil(t, v.created)
	assert.Equal(t, int64(1_700_000_000_000), *v.created)
}

func TestClassDecodeDiscriminatorsOptional(t *testing.T) {
	doc := validWidget()
	delete(doc, "TypeName")
	delete(doc, "Version")
	_, err := widgetClass.Decode(doc)
	assert.NoError(t, err)
}

func TestClassDecodeWireCaseGate(t *testing.T) {
	doc := validWidget()
	doc["widget_id"] = widgetID
	delete(doc, "WidgetId")

	_, err := widgetClass.Decode(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrWireCase)

	var wce *schema.WireCaseError
	require.True(t, errors.As(err, &wce))
	assert.Equal(t, "/widget_id", wce.Path)
}

func TestClassDecodeClosedSchema(t *testing.T) {
	doc := validWidget()
	doc["Zeta"] = 1
	doc["Extra"] = "x"

	_, err := widgetClass.Decode(doc)
	require.Error(t, err)

	var cse *schema.ClosedSchemaError
	require.True(t, errors.As(err, &cse))
	assert.Equal(t, []string{"Extra", "Zeta"}, cse.Fields)
	assert.NoError(t, cse.Invalid)
	assert.Equal(t, "ClosedSchema", schema.Kind(err))
}

func TestClassDecodeClosedSchemaCarriesFieldFailures(t *testing.T) {
	doc := validWidget()
	doc["Extra"] = "x"
	doc["Alias"] = "Not.Lower"

	_, err := widgetClass.Decode(doc)
	require.Error(t, err)

	var cse *schema.ClosedSchemaError
	require.True(t, errors.As(err, &cse))
	assert.Equal(t, []string{"Extra"}, cse.Fields)
	assert.ErrorIs(t, err, schema.ErrFormat)
	assert.Contains(t, err.Error(), "alias=<Not.Lower>")
	assert.Equal(t, "ClosedSchema", schema.Kind(err))

	var ve *schema.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.FieldErrors(), "alias")
}

func TestClassDecodeAliasOnly(t *testing.T) {
	doc := validWidget()
	delete(doc, "RefIdentifier")
	doc["RefId"] = otherID

	_, err := widgetClass.Decode(doc)
	assert.ErrorIs(t, err, schema.ErrClosedSchema)
}

func TestClassDecodeLiteralMismatch(t *testing.T) {
	doc := validWidget()
	doc["Version"] = "002"

	_, err := widgetClass.Decode(doc)
	require.Error(t, err)

	var ve *schema.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.FieldErrors(), "version")
	assert.Equal(t, schema.RuleLiteral, ve.FieldErrors()["version"].Rule)
}

func TestClassDecodeAggregatesFieldErrors(t *testing.T) {
	doc := validWidget()
	doc["WidgetId"] = "not-a-uuid"
	doc["Alias"] = "Bad.Alias"
	doc["CreatedMs"] = "soon"

	_, err := widgetClass.Decode(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrFormat)

	var ve *schema.ValidationError
	require.True(t, errors.As(err, &ve))
	fields := ve.FieldErrors()
	require.Len(t, fields, 3)
	assert.Equal(t, format.RuleUUID4Str, fields["widget_id"].Rule)
	assert.Equal(t, format.RuleLeftRightDot, fields["alias"].Rule)
	assert.Equal(t, schema.RuleType, fields["created_ms"].Rule)
	assert.Empty(t, ve.Axioms())
}

func TestClassDecodeRequired(t *testing.T) {
	doc := validWidget()
	delete(doc, "Alias")

	_, err := widgetClass.Decode(doc)
	var ve *schema.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, schema.RuleRequired, ve.FieldErrors()["alias"].Rule)
}

func TestClassDecodeIntegerShapes(t *testing.T) {
	for name, raw := range map[string]any{
		"float64": float64(1_700_000_000_000),
		"int":     1_700_000_000_000,
	} {
		t.Run(name, func(t *testing.T) {
			doc := validWidget()
			doc["CreatedMs"] = raw
			_, err := widgetClass.Decode(doc)
			assert.NoError(t, err)
		})
	}

	for name, raw := range map[string]any{
		"fraction": 1.5e12 + 0.5,
		"bool":     true,
	} {
		t.Run(name, func(t *testing.T) {
			doc := validWidget()
			doc["CreatedMs"] = raw
			_, err := widgetClass.Decode(doc)
			assert.ErrorIs(t, err, schema.ErrFormat)
		})
	}
}

func TestClassDecodeAxiom(t *testing.T) {
	doc := validWidget()
	doc["RefIdentifier"] = widgetID

	_, err := widgetClass.Decode(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrAxiomViolation)
	assert.Equal(t, "AxiomViolation", schema.Kind(err))

	var ae *schema.AxiomError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "NoSelfReference", ae.Axiom)
	assert.Equal(t, widgetClass.Descriptor(), ae.Type)
	assert.Contains(t, err.Error(), "WidgetId="+widgetID)
}

func TestClassAxiomsSkippedOnFieldErrors(t *testing.T) {
	doc := validWidget()
	doc["RefIdentifier"] = widgetID
	doc["Alias"] = ""

	_, err := widgetClass.Decode(doc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, schema.ErrAxiomViolation)
}

func TestValueEncodeOmitsAbsent(t *testing.T) {
	doc := validWidget()
	delete(doc, "RefIdentifier")
	delete(doc, "CreatedMs")

	v, err := widgetClass.Decode(doc)
	require.NoError(t, err)

	out, err := v.Encode()
	require.NoError(t, err)
	assert.Equal(t,
		`{"Alias":"d1.isone.ver","TypeName":"test.widget","Version":"001","WidgetId":"`+widgetID+`"}`,
		string(out))
}

func TestValueEncodeUsesAlias(t *testing.T) {
	v, err := widgetClass.Decode(validWidget())
	require.NoError(t, err)
	assert.Equal(t, otherID, v.Document()["RefIdentifier"])

	again, err := widgetClass.Decode(v.Document())
	require.NoError(t, err)
	assert.Equal(t, v, again)
}

func TestDescribe(t *testing.T) {
	info := schema.Describe(widgetClass)
	assert.Equal(t, "test.widget", info.TypeName)
	assert.Equal(t, "001", info.Version)
	assert.Equal(t, []string{"type_name", "version", "widget_id", "alias", "ref_id", "created_ms"}, info.Fields)
}

func TestMigrateToLatestOnCurrent(t *testing.T) {
	v, err := widgetClass.Decode(validWidget())
	require.NoError(t, err)

	_, err = schema.MigrateToLatest(v)
	assert.ErrorIs(t, err, schema.ErrNotSuperseded)
	assert.Equal(t, "Usage", schema.Kind(err))
}

func TestNewClassRejectsDuplicateFields(t *testing.T) {
	assert.Panics(t, func() {
		schema.NewClass(
			schema.Descriptor{TypeName: "test.dup", Version: "000"},
			[]schema.Field{{Name: "a_b"}, {Name: "x", Alias: "AB"}},
			func(*schema.Binder) *widget { return nil },
		)
	})
}

func TestDescriptorString(t *testing.T) {
	assert.Equal(t, "test.widget/001", widgetClass.Descriptor().String())
	assert.Equal(t, "edge/-", schema.Descriptor{TypeName: "edge"}.String())
}
