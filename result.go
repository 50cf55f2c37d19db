package jadn

import "github.com/kaptinlin/go-i18n"

// Category distinguishes the internal failure class of a ValidationError,
// for tests to assert on category substrings rather than exact messages,
// without the library exposing more than one public error kind.
type Category string

const (
	Structural  Category = "structural"   // value kind mismatched expected kind
	Membership  Category = "membership"   // unknown enum/choice/key, bad field ID
	Cardinality Category = "cardinality"  // missing required field, wrong arity
	Range       Category = "range"        // numeric/length out of bounds
	PatternFmt  Category = "pattern"      // regex or format validator failure
	Uniqueness  Category = "uniqueness"   // duplicate entry in a unique ArrayOf
)

// ValidationError is the single error kind raised by the Checker and the
// Codec's Encode/Decode. Its shape — a templated message plus params
// and an i18n.Localizer escape hatch — collapses what could have been a
// tree of per-keyword results down to one flat struct, since JADN wants a
// single error kind rather than a hierarchy of evaluation results.
type ValidationError struct {
	Category Category       `json:"category"`
	TypeName string         `json:"typeName"`
	BaseType string         `json:"baseType,omitempty"`
	Field    string         `json:"field,omitempty"`
	Path     string         `json:"path,omitempty"` // "#/"-prefixed location of the offending part within the value
	Message  string         `json:"message"`
	Params   map[string]any `json:"params,omitempty"`
}

// NewValidationError builds a ValidationError. message may contain
// "{name}"-style placeholders resolved against params via replace (utils.go).
func NewValidationError(cat Category, typeName, message string, params ...map[string]any) *ValidationError {
	e := &ValidationError{Category: cat, TypeName: typeName, Message: message}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

// WithField returns a copy of e annotated with the offending field name.
func (e *ValidationError) WithField(field string) *ValidationError {
	c := *e
	c.Field = field
	return &c
}

// WithPath returns a copy of e annotated with a location within the value
// being encoded or decoded.
func (e *ValidationError) WithPath(path string) *ValidationError {
	c := *e
	c.Path = path
	return &c
}

func (e *ValidationError) Error() string {
	msg := replace(e.Message, e.Params)
	if e.BaseType != "" {
		msg = e.TypeName + "(" + e.BaseType + "): " + msg
	} else if e.TypeName != "" {
		msg = e.TypeName + ": " + msg
	}
	if e.Field != "" {
		msg = msg + " [field=" + e.Field + "]"
	}
	if e.Path != "" {
		msg = msg + " [path=" + e.Path + "]"
	}
	return msg
}

// Localize returns a localized error message using the provided localizer,
// falling back to Error() if localizer is nil.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(string(e.Category), i18n.Vars(e.Params))
	}
	return e.Error()
}
