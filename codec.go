package jadn

import (
	"fmt"
	"sync"

	"github.com/go-json-experiment/json"
)

// symbolEntry is one type's compiled codec record: its parsed options and
// the encode/decode functions dispatched by BaseType, the Go equivalent of
// the (name, SymbolType) tuples codec/__init__.py builds into its symbol
// table — precomputed per-schema state once instead of re-walking the
// schema on every call.
type symbolEntry struct {
	def      *TypeDef
	typeOpts map[string]interface{}
	fields   []fieldEntry
	// eMap/dMap translate Enumerated/Choice/Array/Record field identifiers
	// between their JADN name and their wire id, mirroring codec/__init__.py's
	// eMap (encode: name->id) and dMap (decode: id->name).
	eMap map[string]int
	dMap map[int]string
}

// fieldEntry is one field's compiled record: its parsed options and,  for
// Choice/Record fields discriminated by a sibling tag field, the resolved
// tagid field index (codec/__init__.py's tagid resolution).
type fieldEntry struct {
	def        FieldDef
	fieldOpts  map[string]interface{}
	typeOpts   map[string]interface{}
	tagidIndex int // -1 if this field has no tagid option
}

// Codec validates and converts instances between an API form and a wire
// form for a single, already-checked JADN schema: a symbol table built once
// at construction time, pluggable JSON encode/decode functions, and a mutex
// protecting concurrent Encode/Decode calls against the same Codec.
type Codec struct {
	schema *Schema
	config Config

	// verboseRec, when true, writes/reads Map/Record/Array field values as
	// JSON objects keyed by field name instead of positional arrays.
	verboseRec bool
	// verboseStr, when true, writes/reads Enumerated/Choice identifiers as
	// their JADN names instead of their integer ids. Binary format codecs
	// apply in either mode.
	verboseStr bool

	mu      sync.RWMutex
	symbols map[string]*symbolEntry

	formatValidate map[BaseType]map[string]FormatValidateFunc
	formatCodec    map[BaseType]map[string]formatCodec

	jsonEncoder func(v any) ([]byte, error)
	jsonDecoder func(data []byte, v any) error
}

// NewCodec compiles schema into a Codec. schema should already have passed
// Check; NewCodec does not re-validate structure, only builds the dispatch
// tables codec/__init__.py calls set_mode.
func NewCodec(schema *Schema, verboseRec, verboseStr bool, config Config) (*Codec, error) {
	c := &Codec{
		schema:         schema,
		config:         config,
		verboseRec:     verboseRec,
		verboseStr:     verboseStr,
		symbols:        make(map[string]*symbolEntry),
		formatValidate: formatValidators(),
		formatCodec:    formatCodecs(),
		jsonEncoder:    func(v any) ([]byte, error) { return json.Marshal(v) },
		jsonDecoder:    func(data []byte, v any) error { return json.Unmarshal(data, v) },
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

// WithEncoderJSON configures a custom top-level JSON encoder.
func (c *Codec) WithEncoderJSON(encoder func(v any) ([]byte, error)) *Codec {
	c.jsonEncoder = encoder
	return c
}

// WithDecoderJSON configures a custom top-level JSON decoder.
func (c *Codec) WithDecoderJSON(decoder func(data []byte, v any) error) *Codec {
	c.jsonDecoder = decoder
	return c
}

// build constructs the symbol table in two phases — allocate then resolve —
// so that ktype/vtype/tagid references to types not yet visited (forward
// references, or cycles) still resolve correctly, per codec/__init__.py's
// two-pass SymbolTable construction.
func (c *Codec) build() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Phase 1: allocate an entry per type and parse its own options.
	for i := range c.schema.Types {
		td := &c.schema.Types[i]
		typeOpts, err := ParseTypeOptions(td.TypeOptions)
		if err != nil {
			return fmt.Errorf("jadn: %s: %w", td.TypeName, err)
		}
		entry := &symbolEntry{def: td, typeOpts: typeOpts}
		if HasFields(td.BaseType) {
			entry.fields = make([]fieldEntry, len(td.Fields))
			entry.eMap = make(map[string]int, len(td.Fields))
			entry.dMap = make(map[int]string, len(td.Fields))
			for j, f := range td.Fields {
				entry.eMap[f.FieldName] = f.FieldID
				entry.dMap[f.FieldID] = f.FieldName
				fe := fieldEntry{def: f, tagidIndex: -1}
				if td.BaseType != Enumerated {
					fo, fto, err := ParseFieldOptions(f.FieldOptions)
					if err != nil {
						return fmt.Errorf("jadn: %s.%s: %w", td.TypeName, f.FieldName, err)
					}
					fe.fieldOpts, fe.typeOpts = fo, fto
				}
				entry.fields[j] = fe
			}
		}
		c.symbols[td.TypeName] = entry
	}

	// Phase 2: resolve cross-references that depend on every entry already
	// existing — tagid field indices.
	for _, entry := range c.symbols {
		if entry.def.BaseType != Choice && entry.def.BaseType != Record {
			continue
		}
		for j, fe := range entry.fields {
			tagid, ok := fe.fieldOpts["tagid"]
			if !ok {
				continue
			}
			entry.fields[j].tagidIndex = tagid.(int) - 1
		}
	}
	return nil
}

func (c *Codec) lookup(typeName string) (*symbolEntry, *ValidationError) {
	entry, ok := c.symbols[typeName]
	if !ok {
		return nil, errStructural(typeName, "", "type {name} is not defined in this schema", map[string]any{"name": typeName})
	}
	return entry, nil
}

// Encode converts an API-form value of the named type into its wire form.
func (c *Codec) Encode(typeName string, value interface{}) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, verr := c.lookup(typeName)
	if verr != nil {
		return nil, verr
	}
	wire, verr := c.encodeType(entry, value, path{})
	if verr != nil {
		return nil, verr
	}
	return wire, nil
}

// Decode converts a wire-form value of the named type into its API form.
func (c *Codec) Decode(typeName string, wire interface{}) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, verr := c.lookup(typeName)
	if verr != nil {
		return nil, verr
	}
	value, verr := c.decodeType(entry, wire, path{})
	if verr != nil {
		return nil, verr
	}
	return value, nil
}

// EncodeJSON is a convenience wrapper: Encode followed by the configured
// top-level JSON encoder.
func (c *Codec) EncodeJSON(typeName string, value interface{}) ([]byte, error) {
	wire, err := c.Encode(typeName, value)
	if err != nil {
		return nil, err
	}
	return c.jsonEncoder(wire)
}

// DecodeJSON is a convenience wrapper: the configured top-level JSON decoder
// followed by Decode.
func (c *Codec) DecodeJSON(typeName string, data []byte) (interface{}, error) {
	var wire interface{}
	if err := c.jsonDecoder(data, &wire); err != nil {
		return nil, err
	}
	return c.Decode(typeName, wire)
}
