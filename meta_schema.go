package jadn

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-json-experiment/json"
)

//go:embed meta_schema.jadn
var metaSchemaJSON []byte

var (
	metaSchemaOnce  sync.Once
	metaSchemaValue *Schema
	metaCodecValue  *Codec
	metaSchemaErr   error
)

// metaSchema parses the embedded JADN-of-JADN meta-schema once. It is
// already written in the simplified subset (explicit ArrayOf wrapper types,
// no AnonymousType/Multiplicity shorthand) so building its symbol table
// never depends on Simplify or on Check itself — a hand-built bootstrap,
// not a self-hosted one.
func metaSchema() (*Schema, error) {
	metaSchemaOnce.Do(func() {
		metaSchemaValue, metaSchemaErr = Loads(metaSchemaJSON)
		if metaSchemaErr != nil {
			return
		}
		metaCodecValue, metaSchemaErr = NewCodec(metaSchemaValue, false, false, DefaultConfig())
	})
	return metaSchemaValue, metaSchemaErr
}

func metaCodec() (*Codec, error) {
	if _, err := metaSchema(); err != nil {
		return nil, err
	}
	return metaCodecValue, nil
}

// CheckStructure validates a candidate schema's shape by decoding it as a
// single instance of the meta-schema's "Schema" type. Enumerated types
// carry 3-element item tuples rather than 5-element field tuples, which the
// meta-schema (itself a schema of schemas built only from uniform
// Array/Record/ArrayOf constructs, with no way to make a field's shape
// conditional on a sibling field's value) cannot express directly; those
// are checked natively instead, immediately below.
func CheckStructure(schema *Schema) []*ValidationError {
	codec, err := metaCodec()
	if err != nil {
		return []*ValidationError{errStructural("", "", fmt.Sprintf("meta-schema bootstrap failed: %s", err))}
	}

	var errs []*ValidationError
	wireTypes := make([]interface{}, 0, len(schema.Types))
	for i := range schema.Types {
		td := schema.Types[i]
		if td.BaseType == Enumerated {
			errs = append(errs, checkEnumeratedShape(td)...)
			td.Fields = nil // validated natively above; omit from the generic structural pass
		}
		b, merr := json.Marshal(td)
		if merr != nil {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), merr.Error()))
			continue
		}
		var generic interface{}
		if uerr := json.Unmarshal(b, &generic); uerr != nil {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), uerr.Error()))
			continue
		}
		wireTypes = append(wireTypes, generic)
	}

	wire := map[string]interface{}{"types": wireTypes}
	if _, derr := codec.Decode("Schema", wire); derr != nil {
		if ve, ok := derr.(*ValidationError); ok {
			errs = append(errs, ve)
		} else {
			errs = append(errs, errStructural("", "", derr.Error()))
		}
	}
	return errs
}

// checkEnumeratedShape validates an Enumerated type's Fields natively: each
// must be a 3-element (ItemID, ItemValue, ItemDesc) tuple.
func checkEnumeratedShape(td TypeDef) []*ValidationError {
	var errs []*ValidationError
	seen := map[int]bool{}
	for _, f := range td.Fields {
		if f.FieldType != "" || f.FieldOptions != nil {
			errs = append(errs, errStructural(td.TypeName, string(Enumerated), "item {name} carries field-only columns", map[string]any{"name": f.FieldName}))
		}
		if seen[f.FieldID] {
			errs = append(errs, errMembership(td.TypeName, string(Enumerated), "duplicate item id {id}", map[string]any{"id": f.FieldID}))
		}
		seen[f.FieldID] = true
	}
	return errs
}
