package jadn

import (
	"fmt"
	"strings"
)

// checkRequiredFields reports a ValidationError naming every field absent
// from object whose field options don't set minc=0. Collects every missing
// field before raising one combined error rather than failing on the first.
func checkRequiredFields(typeName string, baseType BaseType, fields []FieldDef, object map[string]interface{}) *ValidationError {
	var missing []string
	for _, f := range fields {
		fo, _, err := ParseFieldOptions(f.FieldOptions)
		if err != nil {
			return errStructural(typeName, string(baseType), err.Error())
		}
		minc := 1
		if v, ok := fo["minc"]; ok {
			minc = v.(int)
		}
		if minc == 0 {
			continue
		}
		if _, exists := object[f.FieldName]; !exists {
			missing = append(missing, f.FieldName)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	quoted := make([]string, len(missing))
	for i, m := range missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return errCardinality(typeName, string(baseType), "required field(s) {fields} missing", map[string]any{
		"fields": strings.Join(quoted, ", "),
	})
}
