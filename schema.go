package jadn

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// FieldDef is one field of a container type's Fields list, or one item of
// an Enumerated type's Fields list. Which columns are meaningful depends on
// the owning TypeDef's BaseType: the struct carries every possible column
// and lets context decide which apply, rather than two separate types.
//
// For Enumerated: ItemID, ItemValue, ItemDesc (FieldID/FieldName/FieldDesc
// below, reused under those names). For fielded container types: FieldID,
// FieldName, FieldType, FieldOptions, FieldDesc.
type FieldDef struct {
	FieldID      int
	FieldName    string
	FieldType    string   // absent (empty) for Enumerated items
	FieldOptions []string // absent (nil) for Enumerated items
	FieldDesc    string
}

// ItemID, ItemValue, ItemDesc are read-as aliases used when the owning
// TypeDef is Enumerated; they name the same storage as FieldID/FieldName/
// FieldDesc to avoid a second struct, mirroring the original's BasicDataclass
// column-sharing between EnumFieldDefinition and GenFieldDefinition.
func (f FieldDef) ItemID() int        { return f.FieldID }
func (f FieldDef) ItemValue() string  { return f.FieldName }
func (f FieldDef) ItemDesc() string   { return f.FieldDesc }
func (f FieldDef) IsEnumItem() bool   { return f.FieldType == "" && f.FieldOptions == nil }

// TypeDef is one type definition: a 4- or 5-tuple.
type TypeDef struct {
	TypeName    string
	BaseType    BaseType
	TypeOptions []string
	TypeDesc    string
	Fields      []FieldDef // nil iff !HasFields(BaseType)
}

// Info carries a schema's optional metadata block.
type Info struct {
	Title       string                 `json:"title,omitempty"`
	Module      string                 `json:"module,omitempty"`
	Version     string                 `json:"version,omitempty"`
	Description string                 `json:"description,omitempty"`
	Imports     map[string]string      `json:"imports,omitempty"`
	Exports     []string               `json:"exports,omitempty"`
	Config      map[string]interface{} `json:"config,omitempty"`
}

// Schema is a parsed JADN schema: an ordered sequence of type definitions
// plus optional metadata.
type Schema struct {
	Info  *Info     `json:"info,omitempty"`
	Types []TypeDef `json:"types"`
}

// schemaWire is the persisted-JSON shape: types are raw arrays until
// TypeDef's own Marshal/UnmarshalJSON give them struct shape.
type schemaWire struct {
	Info  *Info            `json:"info,omitempty"`
	Types []jsontext.Value `json:"types"`
}

// MarshalJSON writes a TypeDef as a 4- or 5-element JSON array, special-
// casing the persisted form instead of relying on struct-tag reflection.
func (t TypeDef) MarshalJSON() ([]byte, error) {
	arr := []interface{}{t.TypeName, string(t.BaseType), t.TypeOptions, t.TypeDesc}
	if HasFields(t.BaseType) {
		fields := make([]interface{}, len(t.Fields))
		for i, f := range t.Fields {
			if t.BaseType == Enumerated {
				fields[i] = []interface{}{f.FieldID, f.FieldName, f.FieldDesc}
			} else {
				fields[i] = []interface{}{f.FieldID, f.FieldName, f.FieldType, f.FieldOptions, f.FieldDesc}
			}
		}
		arr = append(arr, fields)
	}
	return json.Marshal(arr)
}

// UnmarshalJSON reads a TypeDef from its 4- or 5-element array form.
func (t *TypeDef) UnmarshalJSON(data []byte) error {
	var raw []jsontext.Value
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("jadn: type definition is not an array: %w", err)
	}
	if len(raw) != 4 && len(raw) != 5 {
		return fmt.Errorf("jadn: type definition has %d elements, want 4 or 5", len(raw))
	}
	if err := json.Unmarshal(raw[0], &t.TypeName); err != nil {
		return err
	}
	var bt string
	if err := json.Unmarshal(raw[1], &bt); err != nil {
		return err
	}
	t.BaseType = BaseType(bt)
	if err := json.Unmarshal(raw[2], &t.TypeOptions); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[3], &t.TypeDesc); err != nil {
		return err
	}
	if len(raw) == 5 {
		var rawFields []jsontext.Value
		if err := json.Unmarshal(raw[4], &rawFields); err != nil {
			return err
		}
		t.Fields = make([]FieldDef, len(rawFields))
		for i, rf := range rawFields {
			var fr []jsontext.Value
			if err := json.Unmarshal(rf, &fr); err != nil {
				return err
			}
			switch len(fr) {
			case 3: // Enumerated item: ItemID, ItemValue, ItemDesc
				var id int
				var name, desc string
				if err := json.Unmarshal(fr[0], &id); err != nil {
					return err
				}
				if err := json.Unmarshal(fr[1], &name); err != nil {
					return err
				}
				if err := json.Unmarshal(fr[2], &desc); err != nil {
					return err
				}
				t.Fields[i] = FieldDef{FieldID: id, FieldName: name, FieldDesc: desc}
			case 5: // full field
				var id int
				var name, ftype, desc string
				var opts []string
				if err := json.Unmarshal(fr[0], &id); err != nil {
					return err
				}
				if err := json.Unmarshal(fr[1], &name); err != nil {
					return err
				}
				if err := json.Unmarshal(fr[2], &ftype); err != nil {
					return err
				}
				if err := json.Unmarshal(fr[3], &opts); err != nil {
					return err
				}
				if err := json.Unmarshal(fr[4], &desc); err != nil {
					return err
				}
				t.Fields[i] = FieldDef{FieldID: id, FieldName: name, FieldType: ftype, FieldOptions: opts, FieldDesc: desc}
			default:
				return fmt.Errorf("jadn: field definition has %d elements, want 3 or 5", len(fr))
			}
		}
	}
	return nil
}

// UnmarshalJSON reads a Schema, deferring per-type decoding to TypeDef.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var w schemaWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Info = w.Info
	s.Types = make([]TypeDef, len(w.Types))
	for i, raw := range w.Types {
		if err := json.Unmarshal(raw, &s.Types[i]); err != nil {
			return fmt.Errorf("jadn: types[%d]: %w", i, err)
		}
	}
	return nil
}
