package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAcceptsValidSchema(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "name", FieldType: "String", FieldOptions: []string{}},
		}},
	}}
	assert.Empty(t, Check(schema))
}

func TestCheckRejectsDuplicateTypeName(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: String},
		{TypeName: "Person", BaseType: Integer},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsBadTypeName(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "person", BaseType: String},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsMissingRequiredTypeOption(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Tags", BaseType: ArrayOf},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsDisallowedTypeOption(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Name", BaseType: String, TypeOptions: []string{"[0"}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsAndOrTypeOptions(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Thing", BaseType: Choice, TypeOptions: []string{"∩Other"}, Fields: []FieldDef{
			{FieldID: 1, FieldName: "a", FieldType: "String", FieldOptions: []string{}},
		}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsBadValueRange(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Age", BaseType: Integer, TypeOptions: []string{"{10", "}5"}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsValueRangeWithZeroMaxv(t *testing.T) {
	// maxv==0 is a literal Integer bound here, as in the codec's
	// checkIntegerBounds, not the "use the codec default" sentinel that
	// boundsOf applies to length and count bounds.
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Age", BaseType: Integer, TypeOptions: []string{"{2", "}0"}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsBadFloatRange(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Fraction", BaseType: Number, TypeOptions: []string{"y1.0", "z0.5"}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsFormatMismatchedToBaseType(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Addr", BaseType: String, TypeOptions: []string{"/ipv4-addr"}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckAcceptsFormatMatchingBaseType(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Addr", BaseType: Binary, TypeOptions: []string{"/ipv4-addr"}},
	}}
	assert.Empty(t, Check(schema))
}

func TestCheckRejectsBadMultiplicity(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "tags", FieldType: "String", FieldOptions: []string{"]1", "[2"}},
		}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckAcceptsUnboundedMultiplicity(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "tags", FieldType: "String", FieldOptions: []string{"[0", "]0"}},
		}},
	}}
	assert.Empty(t, Check(schema))
}

func TestCheckRejectsDuplicateFieldID(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "a", FieldType: "String", FieldOptions: []string{}},
			{FieldID: 1, FieldName: "b", FieldType: "String", FieldOptions: []string{}},
		}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestCheckRejectsBadTagid(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "Shape", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "kind", FieldType: "String", FieldOptions: []string{}},
			{FieldID: 2, FieldName: "payload", FieldType: "String", FieldOptions: []string{"&9"}},
		}},
	}}
	errs := Check(schema)
	assert.NotEmpty(t, errs)
}

func TestBuildDepsAndAnalyze(t *testing.T) {
	schema := &Schema{
		Info: &Info{Exports: []string{"Person"}},
		Types: []TypeDef{
			{TypeName: "Person", BaseType: Record, Fields: []FieldDef{
				{FieldID: 1, FieldName: "addr", FieldType: "Address", FieldOptions: []string{}},
			}},
			{TypeName: "Address", BaseType: String},
			{TypeName: "Orphan", BaseType: String},
		},
	}
	deps := BuildDeps(schema)
	assert.Equal(t, []string{"Address"}, deps["Person"])

	analysis := Analyze(schema)
	assert.Contains(t, analysis.Unreferenced, "Orphan")
	assert.NotContains(t, analysis.Unreferenced, "Address")
}

func TestAnalyzeFindsCycle(t *testing.T) {
	schema := &Schema{Types: []TypeDef{
		{TypeName: "A", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "b", FieldType: "B", FieldOptions: []string{}},
		}},
		{TypeName: "B", BaseType: Record, Fields: []FieldDef{
			{FieldID: 1, FieldName: "a", FieldType: "A", FieldOptions: []string{}},
		}},
	}}
	analysis := Analyze(schema)
	assert.NotEmpty(t, analysis.Cycles)
}
