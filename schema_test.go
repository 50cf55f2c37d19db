package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchemaJSON = `{
	"info": {"module": "http://example.com/schema", "title": "Example"},
	"types": [
		["Person", "Record", [], "", [
			[1, "name", "String", ["{2"], ""],
			[2, "age", "Integer", ["{0"], ""]
		]]
	]
}`

func TestLoadsParsesTypeDefTuples(t *testing.T) {
	schema, err := Loads([]byte(personSchemaJSON))
	require.NoError(t, err)
	require.Len(t, schema.Types, 1)

	td := schema.Types[0]
	assert.Equal(t, "Person", td.TypeName)
	assert.Equal(t, Record, td.BaseType)
	require.Len(t, td.Fields, 2)
	assert.Equal(t, "name", td.Fields[0].FieldName)
	assert.Equal(t, "String", td.Fields[0].FieldType)
	assert.Equal(t, []string{"{2"}, td.Fields[0].FieldOptions)
}

func TestEnumeratedItemTuple(t *testing.T) {
	raw := `{"types": [["Color", "Enumerated", [], "", [
		[1, "red", ""],
		[2, "blue", ""]
	]]]}`
	schema, err := Loads([]byte(raw))
	require.NoError(t, err)
	td := schema.Types[0]
	require.Len(t, td.Fields, 2)
	assert.True(t, td.Fields[0].IsEnumItem())
	assert.Equal(t, 1, td.Fields[0].ItemID())
	assert.Equal(t, "red", td.Fields[0].ItemValue())
}

func TestDumpsIsCanonicalAndRoundTrips(t *testing.T) {
	schema, err := Loads([]byte(personSchemaJSON))
	require.NoError(t, err)

	text, err := Dumps(schema)
	require.NoError(t, err)

	again, err := Loads([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, schema.Types[0].TypeName, again.Types[0].TypeName)
}

func TestTypeDefRejectsWrongArity(t *testing.T) {
	_, err := Loads([]byte(`{"types": [["Bad", "Record", []]]}`))
	assert.Error(t, err)
}
