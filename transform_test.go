package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyMultiplicityGeneratesArrayOfWrapper(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "tags", FieldType: "String", FieldOptions: []string{"]0"}},
		}},
	}}
	out, err := Simplify(schema, map[string]bool{"Multiplicity": true})
	require.NoError(t, err)

	require.Len(t, out.Types, 2)
	assert.Equal(t, "$Person-tags", out.Types[0].Fields[0].FieldType)
	assert.Equal(t, "$Person-tags", out.Types[1].TypeName)
	assert.Equal(t, ArrayOf, out.Types[1].BaseType)
}

func TestSimplifyAnonymousTypeExtractsEmbeddedOptions(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "age", FieldType: "Integer", FieldOptions: []string{"{0", "}150"}},
		}},
	}}
	out, err := Simplify(schema, map[string]bool{"AnonymousType": true})
	require.NoError(t, err)

	require.Len(t, out.Types, 2)
	assert.Equal(t, "$Person-age", out.Types[0].Fields[0].FieldType)
	assert.Equal(t, Integer, out.Types[1].BaseType)
	assert.Contains(t, out.Types[1].TypeOptions, "{0")
	assert.Contains(t, out.Types[1].TypeOptions, "}150")
}

func TestSimplifyDerivedEnumExpandsItems(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "name", FieldType: "String", FieldOptions: []string{}},
			{FieldID: 2, FieldName: "age", FieldType: "Integer", FieldOptions: []string{}},
		}},
		{TypeName: "PersonFields", BaseType: Enumerated, TypeOptions: []string{"#Person"}},
	}}
	out, err := Simplify(schema, map[string]bool{"DerivedEnum": true})
	require.NoError(t, err)

	derived := out.Types[1]
	require.Len(t, derived.Fields, 2)
	assert.Equal(t, "name", derived.Fields[0].FieldName)
	assert.Equal(t, "age", derived.Fields[1].FieldName)
	assert.Empty(t, derived.TypeOptions)
}

func TestSimplifyMapOfEnumRewritesToMap(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Color", BaseType: Enumerated, Fields: []FieldDef{
			{FieldID: 1, FieldName: "red"},
			{FieldID: 2, FieldName: "blue"},
		}},
		{TypeName: "Palette", BaseType: MapOf, TypeOptions: []string{"+Color", "*String"}},
	}}
	out, err := Simplify(schema, map[string]bool{"MapOfEnum": true})
	require.NoError(t, err)

	palette := out.Types[1]
	assert.Equal(t, Map, palette.BaseType)
	require.Len(t, palette.Fields, 2)
	assert.Equal(t, "red", palette.Fields[0].FieldName)
	assert.Equal(t, "String", palette.Fields[0].FieldType)
}

func TestStripCommentsClearsDescriptions(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, TypeDesc: "a person", Fields: []FieldDef{
			{FieldID: 1, FieldName: "name", FieldType: "String", FieldDesc: "full name"},
		}},
	}}
	out := StripComments(schema)
	assert.Empty(t, out.Types[0].TypeDesc)
	assert.Empty(t, out.Types[0].Fields[0].FieldDesc)
	assert.Equal(t, "a person", schema.Types[0].TypeDesc)
}

func TestCanonicalizeSortsOptions(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Age", BaseType: Integer, TypeOptions: []string{"}150", "{0"}},
	}}
	out := Canonicalize(schema)
	assert.Equal(t, []string{"{0", "}150"}, out.Types[0].TypeOptions)
}

func TestUnfoldExtensionsReversesAnonymousType(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "age", FieldType: "Integer", FieldOptions: []string{"{0", "}150"}},
		}},
	}}
	simplified, err := Simplify(schema, map[string]bool{"AnonymousType": true})
	require.NoError(t, err)

	unfolded := UnfoldExtensions(simplified)
	require.Len(t, unfolded.Types, 1)
	assert.Equal(t, "Integer", unfolded.Types[0].Fields[0].FieldType)
	assert.Contains(t, unfolded.Types[0].Fields[0].FieldOptions, "{0")
}
