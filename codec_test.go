package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCodec(t *testing.T, types []TypeDef, verboseRec, verboseStr bool) *Codec {
	t.Helper()
	schema := &Schema{Types: types}
	c, err := NewCodec(schema, verboseRec, verboseStr, DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestCodecIntegerBounds(t *testing.T) {
	c := mustCodec(t, []TypeDef{
		{TypeName: "Age", BaseType: Integer, TypeOptions: []string{"{0", "}150"}},
	}, false, false)

	wire, err := c.Encode("Age", int64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), wire)

	_, err = c.Encode("Age", int64(-1))
	assert.Error(t, err)

	_, err = c.Encode("Age", int64(200))
	assert.Error(t, err)
}

func TestCodecChoiceMinifiedVsVerbose(t *testing.T) {
	types := []TypeDef{
		{TypeName: "Contact", BaseType: Choice, Fields: []FieldDef{
			{FieldID: 1, FieldName: "email", FieldType: "String", FieldOptions: []string{}},
			{FieldID: 2, FieldName: "phone", FieldType: "String", FieldOptions: []string{}},
		}},
	}

	compact := mustCodec(t, types, false, false)
	wire, err := compact.Encode("Contact", map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"1": "a@b.com"}, wire)

	verbose := mustCodec(t, types, false, true)
	wire, err = verbose.Encode("Contact", map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"email": "a@b.com"}, wire)

	decoded, err := compact.Decode("Contact", map[string]interface{}{"1": "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"email": "a@b.com"}, decoded)
}

func TestCodecRecordPositionalVsObject(t *testing.T) {
	types := []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "name", FieldType: "String", FieldOptions: []string{}},
			{FieldID: 2, FieldName: "age", FieldType: "Integer", FieldOptions: []string{"[0"}},
		}},
	}
	value := map[string]interface{}{"name": "Ada", "age": int64(30)}

	positional := mustCodec(t, types, false, false)
	wire, err := positional.Encode("Person", value)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Ada", int64(30)}, wire)

	verbose := mustCodec(t, types, true, false)
	wire, err = verbose.Encode("Person", value)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "Ada", "age": int64(30)}, wire)

	decoded, err := positional.Decode("Person", []interface{}{"Ada", int64(30)})
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}

func TestCodecRecordMissingRequiredField(t *testing.T) {
	types := []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "name", FieldType: "String", FieldOptions: []string{}},
			{FieldID: 2, FieldName: "age", FieldType: "Integer", FieldOptions: []string{}},
		}},
	}
	c := mustCodec(t, types, false, false)
	_, err := c.Encode("Person", map[string]interface{}{"name": "Ada"})
	assert.Error(t, err)
}

func TestCodecIPv4BinaryFormat(t *testing.T) {
	types := []TypeDef{
		{TypeName: "Addr", BaseType: Binary, TypeOptions: []string{"/ipv4-addr"}},
	}
	c := mustCodec(t, types, false, false)
	wire, err := c.Encode("Addr", []byte{192, 168, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", wire)

	decoded, err := c.Decode("Addr", "192.168.0.1")
	require.NoError(t, err)
	assert.Equal(t, []byte{192, 168, 0, 1}, decoded)
}

func tagidTypes() []TypeDef {
	return []TypeDef{
		{TypeName: "Kind", BaseType: Enumerated, Fields: []FieldDef{
			{FieldID: 1, FieldName: "count"},
			{FieldID: 2, FieldName: "name"},
		}},
		{TypeName: "Detail", BaseType: Choice, Fields: []FieldDef{
			{FieldID: 1, FieldName: "count", FieldType: "Integer", FieldOptions: []string{}},
			{FieldID: 2, FieldName: "name", FieldType: "String", FieldOptions: []string{}},
		}},
		{TypeName: "Item", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "kind", FieldType: "Kind", FieldOptions: []string{}},
			{FieldID: 2, FieldName: "value", FieldType: "Detail", FieldOptions: []string{"&1"}},
		}},
	}
}

func TestCodecEnumeratedTagidDiscriminationEncode(t *testing.T) {
	c := mustCodec(t, tagidTypes(), false, false)

	wire, err := c.Encode("Item", map[string]interface{}{"kind": "count", "value": int64(17)})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, int64(17)}, wire)

	wire, err = c.Encode("Item", map[string]interface{}{"kind": "name", "value": "widget"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2, "widget"}, wire)
}

func TestCodecEnumeratedTagidDiscriminationDecode(t *testing.T) {
	c := mustCodec(t, tagidTypes(), false, false)

	value, err := c.Decode("Item", []interface{}{1, int64(17)})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"kind": "count", "value": int64(17)}, value)

	value, err = c.Decode("Item", []interface{}{2, "widget"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"kind": "name", "value": "widget"}, value)
}

func TestCodecEnumeratedTagidDiscriminationRejectsWrongBranch(t *testing.T) {
	c := mustCodec(t, tagidTypes(), false, false)
	_, err := c.Encode("Item", map[string]interface{}{"kind": "count", "value": "not-an-int"})
	assert.Error(t, err)
}

func TestCodecArrayOfUniqueness(t *testing.T) {
	types := []TypeDef{
		{TypeName: "Tags", BaseType: ArrayOf, TypeOptions: []string{"*String", "q"}},
	}
	c := mustCodec(t, types, false, false)
	_, err := c.Encode("Tags", []interface{}{"a", "b", "a"})
	assert.Error(t, err)

	wire, err := c.Encode("Tags", []interface{}{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b"}, wire)
}

func TestCodecMapOfIntegerKeys(t *testing.T) {
	types := []TypeDef{
		{TypeName: "Scores", BaseType: MapOf, TypeOptions: []string{"+Integer", "*String"}},
	}
	c := mustCodec(t, types, false, false)
	wire, err := c.Encode("Scores", map[string]interface{}{"7": "seven"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"7": "seven"}, wire)
}

func TestCodecUnknownTypeName(t *testing.T) {
	c := mustCodec(t, []TypeDef{{TypeName: "Age", BaseType: Integer}}, false, false)
	_, err := c.Encode("Nope", int64(1))
	assert.Error(t, err)
}

func TestCodecJSONRoundTrip(t *testing.T) {
	types := []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "name", FieldType: "String", FieldOptions: []string{}},
		}},
	}
	c := mustCodec(t, types, false, false)
	data, err := c.EncodeJSON("Person", map[string]interface{}{"name": "Ada"})
	require.NoError(t, err)

	decoded, err := c.DecodeJSON("Person", data)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "Ada"}, decoded)
}
