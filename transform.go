package jadn

import (
	"fmt"
	"strings"
)

// Simplify rewrites schema into an equivalent schema using only the subset
// of JADN that every consumer must support directly, applying each enabled
// extension's pass in a fixed order: Multiplicity, AnonymousType,
// DerivedEnum, MapOfEnum. Grounded on transform/transform.py's simplify(),
// which runs the same four passes in the same order because later passes
// (DerivedEnum, MapOfEnum) assume earlier ones (Multiplicity,
// AnonymousType) have already turned every field reference into a plain
// TypeName.
func Simplify(schema *Schema, extensions map[string]bool) (*Schema, error) {
	out := cloneSchema(schema)
	var err error
	if extensions["Multiplicity"] {
		if out, err = simplifyMultiplicity(out); err != nil {
			return nil, err
		}
	}
	if extensions["AnonymousType"] {
		if out, err = simplifyAnonymousType(out); err != nil {
			return nil, err
		}
	}
	if extensions["DerivedEnum"] {
		if out, err = simplifyDerivedEnum(out); err != nil {
			return nil, err
		}
	}
	if extensions["MapOfEnum"] {
		if out, err = simplifyMapOfEnum(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func cloneSchema(schema *Schema) *Schema {
	out := &Schema{Info: schema.Info, Types: make([]TypeDef, len(schema.Types))}
	copy(out.Types, schema.Types)
	return out
}

func genName(cfg Config, parent, field string) string {
	return fmt.Sprintf("%s%s-%s", cfg.Sys, parent, field)
}

// simplifyMultiplicity rewrites a repeated field (maxc > 1, or maxc == 0
// meaning unbounded) into a singular field referencing a generated ArrayOf
// wrapper type, so every consumer sees at most one value per field. Grounded
// on transform/transform.py's Multiplicity pass.
func simplifyMultiplicity(schema *Schema) (*Schema, error) {
	cfg := DefaultConfig()
	var generated []TypeDef
	for i := range schema.Types {
		td := &schema.Types[i]
		if td.BaseType == Enumerated || !HasFields(td.BaseType) {
			continue
		}
		for j := range td.Fields {
			f := &td.Fields[j]
			fo, _, err := ParseFieldOptions(f.FieldOptions)
			if err != nil {
				return nil, fmt.Errorf("jadn: simplify(Multiplicity) %s.%s: %w", td.TypeName, f.FieldName, err)
			}
			maxc, hasMaxc := fo["maxc"].(int)
			if !hasMaxc || maxc == 1 {
				continue
			}
			minc, _ := fo["minc"].(int)
			name := genName(cfg, td.TypeName, f.FieldName)
			wrapperOpts := []string{"*" + f.FieldType}
			if minc > 1 {
				wrapperOpts = append(wrapperOpts, fmt.Sprintf("{%d", minc))
			}
			if maxc > 0 {
				wrapperOpts = append(wrapperOpts, fmt.Sprintf("}%d", maxc))
			}
			SortOptions(wrapperOpts)
			generated = append(generated, TypeDef{TypeName: name, BaseType: ArrayOf, TypeOptions: wrapperOpts})

			newFieldOpts := make([]string, 0, len(f.FieldOptions))
			for _, o := range f.FieldOptions {
				r := tagRune(o)
				if r == '[' || r == ']' {
					continue
				}
				newFieldOpts = append(newFieldOpts, o)
			}
			if minc == 0 {
				newFieldOpts = append(newFieldOpts, "[0")
			}
			f.FieldType = name
			f.FieldOptions = newFieldOpts
		}
	}
	schema.Types = append(schema.Types, generated...)
	return schema, nil
}

// simplifyAnonymousType extracts a field's embedded type options (an
// AnonymousType's vocabulary is "every type option legal on the field's
// base type, written directly on the field") into a generated named
// TypeDef, so every field's FieldType is a plain reference. Grounded on
// transform/transform.py's AnonymousType pass.
func simplifyAnonymousType(schema *Schema) (*Schema, error) {
	cfg := DefaultConfig()
	var generated []TypeDef
	for i := range schema.Types {
		td := &schema.Types[i]
		if td.BaseType == Enumerated || !HasFields(td.BaseType) {
			continue
		}
		for j := range td.Fields {
			f := &td.Fields[j]
			fieldOpts, typeOpts, err := ParseFieldOptions(f.FieldOptions)
			if err != nil {
				return nil, fmt.Errorf("jadn: simplify(AnonymousType) %s.%s: %w", td.TypeName, f.FieldName, err)
			}
			if len(typeOpts) == 0 {
				continue
			}
			bt := BaseType(f.FieldType)
			if !CoreTypes[bt] {
				continue // embedded type options only arise on a direct base-type reference
			}
			name := genName(cfg, td.TypeName, f.FieldName)
			opts, err := OptsToStrings(typeOpts)
			if err != nil {
				return nil, err
			}
			SortOptions(opts)
			generated = append(generated, TypeDef{TypeName: name, BaseType: bt, TypeOptions: opts})

			plain, err := OptsToStrings(fieldOpts)
			if err != nil {
				return nil, err
			}
			SortOptions(plain)
			f.FieldType = name
			f.FieldOptions = plain
		}
	}
	schema.Types = append(schema.Types, generated...)
	return schema, nil
}

// simplifyDerivedEnum expands an Enumerated type's "enum" type option (its
// items are every field of the named type) into an explicit Fields list,
// dropping the "enum" option once expansion has happened. Grounded on
// transform/transform.py's DerivedEnum pass.
func simplifyDerivedEnum(schema *Schema) (*Schema, error) {
	byName := typesByName(schema)
	for i := range schema.Types {
		td := &schema.Types[i]
		if td.BaseType != Enumerated {
			continue
		}
		opts, err := ParseTypeOptions(td.TypeOptions)
		if err != nil {
			return nil, fmt.Errorf("jadn: simplify(DerivedEnum) %s: %w", td.TypeName, err)
		}
		src, ok := opts["enum"].(string)
		if !ok {
			continue
		}
		ref, ok := byName[src]
		if !ok {
			return nil, fmt.Errorf("jadn: simplify(DerivedEnum) %s: enum option refers to undefined type %q", td.TypeName, src)
		}
		td.Fields = make([]FieldDef, len(ref.Fields))
		for j, rf := range ref.Fields {
			td.Fields[j] = FieldDef{FieldID: rf.FieldID, FieldName: rf.FieldName, FieldDesc: rf.FieldDesc}
		}
		remaining := make([]string, 0, len(td.TypeOptions))
		for _, o := range td.TypeOptions {
			if tagRune(o) != '#' {
				remaining = append(remaining, o)
			}
		}
		td.TypeOptions = remaining
	}
	return schema, nil
}

// simplifyMapOfEnum rewrites a MapOf type whose ktype names an Enumerated
// type into an equivalent Map type carrying one optional field per
// enumerated item, all sharing the MapOf's vtype — since an Enumerated
// key-space is closed, this lets consumers validate keys by field instead
// of by re-deriving the enum at codec time. Grounded on
// transform/transform.py's MapOfEnum pass.
func simplifyMapOfEnum(schema *Schema) (*Schema, error) {
	byName := typesByName(schema)
	for i := range schema.Types {
		td := &schema.Types[i]
		if td.BaseType != MapOf {
			continue
		}
		opts, err := ParseTypeOptions(td.TypeOptions)
		if err != nil {
			return nil, fmt.Errorf("jadn: simplify(MapOfEnum) %s: %w", td.TypeName, err)
		}
		ktype, _ := opts["ktype"].(string)
		vtype, _ := opts["vtype"].(string)
		keyType, ok := byName[ktype]
		if !ok || keyType.BaseType != Enumerated {
			continue
		}
		td.BaseType = Map
		td.Fields = make([]FieldDef, len(keyType.Fields))
		for j, item := range keyType.Fields {
			td.Fields[j] = FieldDef{
				FieldID:      item.FieldID,
				FieldName:    item.FieldName,
				FieldType:    vtype,
				FieldOptions: []string{"[0"},
				FieldDesc:    item.FieldDesc,
			}
		}
		remaining := make([]string, 0, len(td.TypeOptions))
		for _, o := range td.TypeOptions {
			switch tagRune(o) {
			case '+', '*':
			default:
				remaining = append(remaining, o)
			}
		}
		td.TypeOptions = remaining
	}
	return schema, nil
}

func typesByName(schema *Schema) map[string]*TypeDef {
	m := make(map[string]*TypeDef, len(schema.Types))
	for i := range schema.Types {
		m[schema.Types[i].TypeName] = &schema.Types[i]
	}
	return m
}

// StripComments returns a copy of schema with every TypeDesc/FieldDesc
// cleared, the Go equivalent of utils.py's strip_comments — useful for
// publishing a schema without its authoring notes.
func StripComments(schema *Schema) *Schema {
	out := cloneSchema(schema)
	for i := range out.Types {
		out.Types[i].TypeDesc = ""
		if len(out.Types[i].Fields) == 0 {
			continue
		}
		fields := make([]FieldDef, len(out.Types[i].Fields))
		copy(fields, out.Types[i].Fields)
		for j := range fields {
			fields[j].FieldDesc = ""
		}
		out.Types[i].Fields = fields
	}
	return out
}

// Canonicalize returns a copy of schema with every type's and field's
// option list sorted into canonical order, the Go equivalent of utils.py's
// canonicalize option sort. Option values, including tagid values, are
// left as they are.
func Canonicalize(schema *Schema) *Schema {
	out := cloneSchema(schema)
	for i := range out.Types {
		td := &out.Types[i]
		opts := make([]string, len(td.TypeOptions))
		copy(opts, td.TypeOptions)
		SortOptions(opts)
		td.TypeOptions = opts

		if len(td.Fields) == 0 {
			continue
		}
		fields := make([]FieldDef, len(td.Fields))
		copy(fields, td.Fields)
		for j := range fields {
			if fields[j].FieldOptions == nil {
				continue
			}
			fo := make([]string, len(fields[j].FieldOptions))
			copy(fo, fields[j].FieldOptions)
			SortOptions(fo)
			fields[j].FieldOptions = fo
		}
		td.Fields = fields
	}
	return out
}

// UnfoldExtensions is the best-effort inverse of Simplify's mechanically
// reversible passes (AnonymousType, Multiplicity): it re-embeds a generated
// "$Type-field" wrapper type back into the field that references it and
// removes the now-unreferenced generated type, provided nothing else in the
// schema also references it. DerivedEnum and MapOfEnum discard information
// (which type originally supplied the derived items) that a pure structural
// inverse cannot recover, so this function leaves their output as-is —
// transform/transform.py documents the same asymmetry.
func UnfoldExtensions(schema *Schema) *Schema {
	out := cloneSchema(schema)
	byName := typesByName(out)
	deps := BuildDeps(out)
	refCount := make(map[string]int, len(out.Types))
	for _, refs := range deps {
		for _, r := range refs {
			refCount[r]++
		}
	}

	var kept []TypeDef
	removed := map[string]bool{}
	for i := range out.Types {
		td := &out.Types[i]
		if td.BaseType == Enumerated || !HasFields(td.BaseType) {
			continue
		}
		for j := range td.Fields {
			f := &td.Fields[j]
			gen, ok := byName[f.FieldType]
			if !ok || refCount[f.FieldType] != 1 || !strings.HasPrefix(f.FieldType, DefaultConfig().Sys) {
				continue
			}
			if gen.BaseType == ArrayOf {
				genOpts, err := ParseTypeOptions(gen.TypeOptions)
				if err != nil {
					continue
				}
				vtype, _ := genOpts["vtype"].(string)
				if vtype == "" {
					continue
				}
				f.FieldType = vtype
				minc, maxc := 0, 0
				if v, ok := genOpts["minv"]; ok {
					minc = v.(int)
				}
				if v, ok := genOpts["maxv"]; ok {
					maxc = v.(int)
				} else {
					maxc = 0
				}
				if minc == 0 {
					minc = 1
				}
				f.FieldOptions = append(f.FieldOptions, fmt.Sprintf("[%d", minc), fmt.Sprintf("]%d", maxc))
				SortOptions(f.FieldOptions)
				removed[gen.TypeName] = true
			} else if CoreTypes[gen.BaseType] {
				f.FieldType = string(gen.BaseType)
				f.FieldOptions = append(append([]string{}, f.FieldOptions...), gen.TypeOptions...)
				SortOptions(f.FieldOptions)
				removed[gen.TypeName] = true
			}
		}
	}
	for i := range out.Types {
		if !removed[out.Types[i].TypeName] {
			kept = append(kept, out.Types[i])
		}
	}
	out.Types = kept
	return out
}
