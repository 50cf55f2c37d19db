package jadn

import (
	"fmt"
	"sort"
)

// Check validates a Schema's structure: type-name legality, option
// legality/requiredness, field arity, tagid resolution, dir restriction —
// the same role core.py's check() plays against JADN's own bootstrapped
// meta-schema plus a handful of invariants Python expresses as plain code
// because the meta-schema alone cannot state them. Built in two stages:
// structural understanding first (CheckStructure), then everything else.
func Check(schema *Schema) []*ValidationError {
	errs := CheckStructure(schema)
	names := make(map[string]bool, len(schema.Types))

	for i := range schema.Types {
		td := &schema.Types[i]
		if names[td.TypeName] {
			errs = append(errs, errMembership(td.TypeName, string(td.BaseType), "duplicate type name"))
		}
		names[td.TypeName] = true

		if !schema.typeNameValid(td.TypeName) {
			errs = append(errs, errPattern(td.TypeName, string(td.BaseType), "type name does not match the configured TypeName pattern"))
		}
		if !CoreTypes[td.BaseType] {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), "{type} is not one of the twelve core base types", map[string]any{"type": td.BaseType}))
			continue
		}

		opts, err := ParseTypeOptions(td.TypeOptions)
		if err != nil {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), err.Error()))
			continue
		}
		errs = append(errs, checkTypeOptionLegality(td, opts)...)
		errs = append(errs, checkFields(td)...)
	}

	return errs
}

// typeNameValid checks a TypeName against the configured TypeName pattern,
// falling back to the built-in default when the schema carries no info.config
// override.
func (s *Schema) typeNameValid(name string) bool {
	return SchemaConfig(s).TypeName.MatchString(name)
}

// checkTypeOptionLegality enforces RequiredTypeOptions/AllowedTypeOptions,
// rejects the 'and'/'or' type options outright (JADN has no multi-type-
// reference representation for downstream consumers to resolve), and
// checks minv<=maxv, minf<=maxf, and that a format option names a format
// whose kind matches this type's BaseType.
func checkTypeOptionLegality(td *TypeDef, opts map[string]interface{}) []*ValidationError {
	var errs []*ValidationError
	if _, ok := opts["and"]; ok {
		errs = append(errs, errStructural(td.TypeName, string(td.BaseType), "the 'and' type option is not supported"))
	}
	if _, ok := opts["or"]; ok {
		errs = append(errs, errStructural(td.TypeName, string(td.BaseType), "the 'or' type option is not supported"))
	}
	for _, required := range RequiredTypeOptions[td.BaseType] {
		if _, ok := opts[required]; !ok {
			errs = append(errs, errCardinality(td.TypeName, string(td.BaseType), "missing required type option {option}", map[string]any{"option": required}))
		}
	}
	allowed := make(map[string]bool, len(AllowedTypeOptions[td.BaseType])+len(RequiredTypeOptions[td.BaseType]))
	for _, a := range AllowedTypeOptions[td.BaseType] {
		allowed[a] = true
	}
	for _, a := range RequiredTypeOptions[td.BaseType] {
		allowed[a] = true
	}
	for name := range opts {
		if name == "and" || name == "or" {
			continue // already reported above
		}
		if !allowed[name] {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), "type option {option} is not allowed on {type}", map[string]any{"option": name, "type": td.BaseType}))
		}
	}
	if minv, ok := opts["minv"].(int); ok {
		if maxv, ok := opts["maxv"].(int); ok && maxv < minv {
			errs = append(errs, errRange(td.TypeName, string(td.BaseType), "bad value range [{min}..{max}]", map[string]any{"min": minv, "max": maxv}))
		}
	}
	if minf, ok := opts["minf"].(float64); ok {
		if maxf, ok := opts["maxf"].(float64); ok && maxf < minf {
			errs = append(errs, errRange(td.TypeName, string(td.BaseType), "bad value range [{min}..{max}]", map[string]any{"min": minf, "max": maxf}))
		}
	}
	if fmt, ok := opts["format"].(string); ok {
		if want, known := ValidFormats[fmt]; !known || want != td.BaseType {
			errs = append(errs, errPattern(td.TypeName, string(td.BaseType), "unsupported format {format} on {type}", map[string]any{"format": fmt, "type": td.BaseType}))
		}
	}
	return errs
}

// checkFields validates field arity (FieldLength), field-ID uniqueness, and
// field-option legality (including tagid referring to an existing sibling
// field and 'dir' only appearing on a field whose FieldType resolves to
// another container type).
func checkFields(td *TypeDef) []*ValidationError {
	var errs []*ValidationError
	if !HasFields(td.BaseType) {
		if len(td.Fields) > 0 {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), "base type does not carry fields"))
		}
		return errs
	}
	ids := make(map[int]bool, len(td.Fields))
	names := make(map[string]bool, len(td.Fields))
	for _, f := range td.Fields {
		if ids[f.FieldID] {
			errs = append(errs, errMembership(td.TypeName, string(td.BaseType), "duplicate field id {id}", map[string]any{"id": f.FieldID}).WithField(f.FieldName))
		}
		ids[f.FieldID] = true
		if names[f.FieldName] {
			errs = append(errs, errMembership(td.TypeName, string(td.BaseType), "duplicate field name {name}", map[string]any{"name": f.FieldName}).WithField(f.FieldName))
		}
		names[f.FieldName] = true

		if td.BaseType == Enumerated {
			continue
		}
		fo, _, err := ParseFieldOptions(f.FieldOptions)
		if err != nil {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), err.Error()).WithField(f.FieldName))
			continue
		}
		minc, maxc := 1, 1
		if v, ok := fo["minc"]; ok {
			minc = v.(int)
		}
		if v, ok := fo["maxc"]; ok {
			maxc = v.(int)
		}
		if minc < 0 || maxc < 0 || (maxc > 0 && maxc < minc) {
			errs = append(errs, errCardinality(td.TypeName, string(td.BaseType), "bad multiplicity [{minc}..{maxc}]", map[string]any{"minc": minc, "maxc": maxc}).WithField(f.FieldName))
		}
		if tagid, ok := fo["tagid"]; ok {
			tid := tagid.(int)
			found := false
			for _, other := range td.Fields {
				if other.FieldID == tid {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, errMembership(td.TypeName, string(td.BaseType), "tagid {id} does not refer to a field in this type", map[string]any{"id": tid}).WithField(f.FieldName))
			}
			if td.BaseType != Choice && td.BaseType != Record {
				errs = append(errs, errStructural(td.TypeName, string(td.BaseType), "tagid is only valid on Choice/Record fields").WithField(f.FieldName))
			}
		}
		if _, ok := fo["dir"]; ok && !ContainerTypes[BaseType(f.FieldType)] {
			errs = append(errs, errStructural(td.TypeName, string(td.BaseType), "the dir option requires a container FieldType").WithField(f.FieldName))
		}
	}
	return errs
}

// BuildDeps returns, for every type name in schema, the list of other type
// names it directly references (via FieldType, ktype, vtype, and, or or) —
// the Go equivalent of utils.py's build_deps dependency multimap.
func BuildDeps(schema *Schema) map[string][]string {
	deps := make(map[string][]string, len(schema.Types))
	for i := range schema.Types {
		td := &schema.Types[i]
		set := map[string]bool{}
		opts, _ := ParseTypeOptions(td.TypeOptions)
		if v, ok := opts["ktype"].(string); ok && !IsBuiltin(v) {
			set[v] = true
		}
		if v, ok := opts["vtype"].(string); ok && !IsBuiltin(v) {
			set[v] = true
		}
		if v, ok := opts["and"].(string); ok && !IsBuiltin(v) {
			set[v] = true
		}
		if v, ok := opts["or"].(string); ok && !IsBuiltin(v) {
			set[v] = true
		}
		for _, f := range td.Fields {
			if f.FieldType != "" && !IsBuiltin(f.FieldType) {
				set[f.FieldType] = true
			}
		}
		names := make([]string, 0, len(set))
		for n := range set {
			names = append(names, n)
		}
		sort.Strings(names)
		deps[td.TypeName] = names
	}
	return deps
}

// Analyze reports schema-wide dependency problems: types referenced but
// never defined, types defined but never referenced from an export or from
// any other referenced type, and reference cycles — the Go equivalent of
// core.py's analyze().
type Analysis struct {
	Unreferenced []string
	Undefined    []string
	Cycles       [][]string
}

func Analyze(schema *Schema) Analysis {
	deps := BuildDeps(schema)
	defined := make(map[string]bool, len(schema.Types))
	for name := range deps {
		defined[name] = true
	}

	var undefined []string
	undefSeen := map[string]bool{}
	for _, refs := range deps {
		for _, r := range refs {
			if !defined[r] && !undefSeen[r] {
				undefSeen[r] = true
				undefined = append(undefined, r)
			}
		}
	}
	sort.Strings(undefined)

	referenced := map[string]bool{}
	roots := []string{}
	if schema.Info != nil {
		roots = schema.Info.Exports
	}
	if len(roots) == 0 {
		for name := range defined {
			roots = append(roots, name)
		}
	}
	for _, root := range roots {
		markReferenced(root, deps, referenced)
	}
	var unreferenced []string
	for name := range defined {
		if !referenced[name] {
			unreferenced = append(unreferenced, name)
		}
	}
	sort.Strings(unreferenced)

	cycles := findCycles(deps)

	return Analysis{Unreferenced: unreferenced, Undefined: undefined, Cycles: cycles}
}

func markReferenced(name string, deps map[string][]string, seen map[string]bool) {
	for _, r := range deps[name] {
		if !seen[r] {
			seen[r] = true
			markReferenced(r, deps, seen)
		}
	}
}

// findCycles reports one representative path per elementary cycle found via
// depth-first search, good enough for "does this schema have a forbidden
// self-reference" diagnostics rather than exhaustive cycle enumeration.
func findCycles(deps map[string][]string) [][]string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(deps))
	var stack []string
	var cycles [][]string

	var visit func(name string)
	visit = func(name string) {
		color[name] = gray
		stack = append(stack, name)
		for _, next := range deps[name] {
			switch color[next] {
			case white:
				visit(next)
			case gray:
				cycle := append([]string{}, stack...)
				cycle = append(cycle, next)
				cycles = append(cycles, cycle)
			}
		}
		stack = stack[:len(stack)-1]
		color[name] = black
	}
	names := make([]string, 0, len(deps))
	for n := range deps {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if color[n] == white {
			visit(n)
		}
	}
	return cycles
}

// String gives callers a one-line human summary instead of walking the
// Analysis struct fields.
func (a Analysis) String() string {
	return fmt.Sprintf("undefined=%d unreferenced=%d cycles=%d", len(a.Undefined), len(a.Unreferenced), len(a.Cycles))
}
