package jadn

import "regexp"

// BaseType identifies one of the twelve fixed kinds every user-defined type
// reduces to. Modeled as a Go string enum so every control path it drives
// is enumerated at compile time.
type BaseType string

const (
	Binary     BaseType = "Binary"
	Boolean    BaseType = "Boolean"
	Integer    BaseType = "Integer"
	Number     BaseType = "Number"
	Null       BaseType = "Null"
	String     BaseType = "String"
	Enumerated BaseType = "Enumerated"
	Choice     BaseType = "Choice"
	Array      BaseType = "Array"
	ArrayOf    BaseType = "ArrayOf"
	Map        BaseType = "Map"
	MapOf      BaseType = "MapOf"
	Record     BaseType = "Record"
)

var SimpleTypes = map[BaseType]bool{
	Binary: true, Boolean: true, Integer: true, Number: true, Null: true, String: true,
}

var SelectorTypes = map[BaseType]bool{
	Enumerated: true, Choice: true,
}

var ContainerTypes = map[BaseType]bool{
	Array: true, ArrayOf: true, Map: true, MapOf: true, Record: true,
}

var CoreTypes = map[BaseType]bool{
	Binary: true, Boolean: true, Integer: true, Number: true, Null: true, String: true,
	Enumerated: true, Choice: true, Array: true, ArrayOf: true, Map: true, MapOf: true, Record: true,
}

// FieldLength is the fixed tuple arity of a field/item definition for base
// types that carry fields; 0 for base types without fields.
var FieldLength = map[BaseType]int{
	Enumerated: 3,
	Array:      5,
	Choice:     5,
	Map:        5,
	Record:     5,
}

// IsBuiltin reports whether name is a reserved base-type name, i.e. cannot
// be used as a user TypeName.
func IsBuiltin(name string) bool {
	return CoreTypes[BaseType(name)]
}

// HasFields reports whether instances of bt carry a Fields list.
func HasFields(bt BaseType) bool {
	return FieldLength[bt] > 0
}

// OptionSpec describes one tagged option: its programmatic name, the
// decoder from the option's string value to a Go value, and its position
// in the canonical ordering used by Canonicalize.
type OptionSpec struct {
	Name  string
	Order int
	Kind  OptionKind
}

// OptionKind distinguishes how an option's trailing value parses.
type OptionKind int

const (
	KindBool OptionKind = iota
	KindString
	KindInt
	KindFloat
)

// TypeOptions maps a type-option tag rune to its definition. Two tags
// ('∩', '∪') are multi-byte runes, so the table is keyed by rune rather
// than byte.
var TypeOptions = map[rune]OptionSpec{
	'=': {"id", 0, KindBool},
	'+': {"ktype", 1, KindString},
	'*': {"vtype", 2, KindString},
	'#': {"enum", 3, KindString},
	'>': {"pointer", 4, KindString},
	'/': {"format", 5, KindString},
	'%': {"pattern", 6, KindString},
	'{': {"minv", 7, KindInt},
	'}': {"maxv", 8, KindInt},
	'y': {"minf", 9, KindFloat},
	'z': {"maxf", 10, KindFloat},
	'q': {"unique", 11, KindBool},
	'∩': {"and", 12, KindString},
	'∪': {"or", 13, KindString},
}

// FieldOptions maps a field-option tag rune to its definition.
var FieldOptions = map[rune]OptionSpec{
	'[': {"minc", 0, KindInt},
	']': {"maxc", 1, KindInt},
	'&': {"tagid", 2, KindInt},
	'<': {"dir", 3, KindBool},
	'K': {"key", 4, KindBool},
	'L': {"link", 5, KindBool},
	'!': {"default", 6, KindString},
}

// OptionID maps an option's programmatic name back to its tag string,
// mirroring definitions.py's OPTION_ID reverse index.
var OptionID = map[string]string{
	"id": "=", "ktype": "+", "vtype": "*", "enum": "#", "pointer": ">",
	"format": "/", "pattern": "%", "minv": "{", "maxv": "}", "minf": "y",
	"maxf": "z", "unique": "q", "and": "∩", "or": "∪",
	"minc": "[", "maxc": "]", "tagid": "&", "dir": "<", "key": "K", "link": "L", "default": "!",
}

// RequiredTypeOptions lists the type options a base type MUST carry.
var RequiredTypeOptions = map[BaseType][]string{
	ArrayOf: {"vtype"},
	MapOf:   {"ktype", "vtype"},
}

// AllowedTypeOptions lists every type option a base type MAY carry, beyond
// any it requires.
var AllowedTypeOptions = map[BaseType][]string{
	Binary:     {"minv", "maxv", "format"},
	Boolean:    {},
	Integer:    {"minv", "maxv", "format"},
	Number:     {"minf", "maxf", "format"},
	Null:       {},
	String:     {"minv", "maxv", "pattern", "format"},
	Enumerated: {"id", "enum", "pointer"},
	Choice:     {"id", "and", "or"},
	Array:      {"minv", "maxv", "format", "and", "or"},
	ArrayOf:    {"vtype", "minv", "maxv", "unique", "format"},
	Map:        {"id", "minv", "maxv", "and", "or"},
	MapOf:      {"ktype", "vtype", "minv", "maxv"},
	Record:     {"minv", "maxv", "and", "or"},
}

// ValidFormats maps a format name to the BaseType it applies to, covering
// both format validators (semantic checks) and format codecs (wire<->API
// text conversions) — the union of FORMAT_VALIDATE and FORMAT_SERIALIZE
// keyword spaces in definitions.py.
var ValidFormats = map[string]BaseType{
	"email": String, "hostname": String,
	"eui": Binary, "ipv4-addr": Binary, "ipv6-addr": Binary,
	"ipv4-net": Array, "ipv6-net": Array,
	"i8": Integer, "i16": Integer, "i32": Integer, "i64": Integer,
	"b": Binary, "x": Binary,
	"f16": Number, "f32": Number, "f64": Number,
	"date-time": String, "date": String, "time": String, "duration": String,
	"uri": String, "uri-reference": String, "uuid": String,
	"json-pointer": String, "relative-json-pointer": String, "regex": String,
}

// Extensions are the Transformer rewrite passes simplify knows how to apply.
var Extensions = map[string]bool{
	"AnonymousType": true, "Multiplicity": true, "DerivedEnum": true, "MapOfEnum": true,
}

// Config holds the tunable defaults a schema's info.config may override
// (definitions.py DEFAULT_CONFIG).
type Config struct {
	MaxBinary   int
	MaxString   int
	MaxElements int
	Sys         string
	TypeName    *regexp.Regexp
	FieldName   *regexp.Regexp
	NSID        *regexp.Regexp
	TypeRef     *regexp.Regexp
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() Config {
	return Config{
		MaxBinary:   255,
		MaxString:   255,
		MaxElements: 100,
		Sys:         "$",
		TypeName:    regexp.MustCompile(`^[A-Z][-$A-Za-z0-9]{0,31}$`),
		FieldName:   regexp.MustCompile(`^[a-z][_A-Za-z0-9]{0,31}$`),
		NSID:        regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{0,7}$`),
		TypeRef:     regexp.MustCompile(`^$`),
	}
}

// SchemaConfig returns s's effective Config: the built-in defaults with any
// info.config overrides applied, the Go equivalent of definitions.py's
// DEFAULT_CONFIG merged with a schema's own "config" meta-block. Unknown or
// malformed override keys are ignored rather than rejected — info.config is
// advisory tuning, not itself subject to Check's invariants.
func SchemaConfig(s *Schema) Config {
	cfg := DefaultConfig()
	if s.Info == nil || s.Info.Config == nil {
		return cfg
	}
	if v, ok := s.Info.Config["$MaxBinary"].(float64); ok {
		cfg.MaxBinary = int(v)
	}
	if v, ok := s.Info.Config["$MaxString"].(float64); ok {
		cfg.MaxString = int(v)
	}
	if v, ok := s.Info.Config["$MaxElements"].(float64); ok {
		cfg.MaxElements = int(v)
	}
	if v, ok := s.Info.Config["$Sys"].(string); ok {
		cfg.Sys = v
	}
	if v, ok := s.Info.Config["$TypeName"].(string); ok {
		if re, err := regexp.Compile(v); err == nil {
			cfg.TypeName = re
		}
	}
	if v, ok := s.Info.Config["$FieldName"].(string); ok {
		if re, err := regexp.Compile(v); err == nil {
			cfg.FieldName = re
		}
	}
	if v, ok := s.Info.Config["$NSID"].(string); ok {
		if re, err := regexp.Compile(v); err == nil {
			cfg.NSID = re
		}
	}
	if v, ok := s.Info.Config["$TypeRef"].(string); ok {
		if re, err := regexp.Compile(v); err == nil {
			cfg.TypeRef = re
		}
	}
	return cfg
}
