package jadn

import (
	"fmt"
	"strings"
)

// replace substitutes "{name}"-style placeholders in a template string with
// parameter values. Backs ValidationError.Error message templating.
func replace(template string, params map[string]interface{}) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// wireKind is the shape a value arrives in (null, boolean, number, string,
// array, object), used to name that shape in structural error messages.
type wireKind int

const (
	kindNull wireKind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
	kindUnknown
)

func kindOf(v interface{}) wireKind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case float64, int, int64:
		return kindNumber
	case string:
		return kindString
	case []interface{}:
		return kindArray
	case map[string]interface{}:
		return kindObject
	default:
		return kindUnknown
	}
}

func (k wireKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBool:
		return "boolean"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	case kindArray:
		return "array"
	case kindObject:
		return "object"
	default:
		return "unknown"
	}
}
