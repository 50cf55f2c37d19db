package jadn

import (
	"fmt"
	"sort"
	"strconv"
)

// tagRune returns the first rune of an option string — the option's tag.
func tagRune(opt string) rune {
	for _, r := range opt {
		return r
	}
	return 0
}

func parseOptionValue(spec OptionSpec, tagLen int, opt string) (interface{}, error) {
	val := opt[tagLen:]
	switch spec.Kind {
	case KindBool:
		return true, nil
	case KindString:
		return val, nil
	case KindInt:
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("jadn: option %q: bad integer value: %w", opt, err)
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("jadn: option %q: bad float value: %w", opt, err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("jadn: option %q: unknown kind", opt)
}

// tagByteLen returns the byte length of the tag rune at the front of opt,
// since '∩'/'∪' are multi-byte in UTF-8 while every other tag is one byte.
func tagByteLen(r rune) int {
	if r == '∩' || r == '∪' {
		return len("∩") // both reserved multi-byte tags are 3 bytes in UTF-8
	}
	return 1
}

// ParseTypeOptions converts a type definition's option-string list into a
// name->value map, the Go equivalent of utils.py's topts_s2d.
func ParseTypeOptions(opts []string) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, o := range opts {
		if o == "" {
			return nil, fmt.Errorf("jadn: empty type option")
		}
		r := tagRune(o)
		spec, ok := TypeOptions[r]
		if !ok {
			return nil, fmt.Errorf("jadn: unknown type option: %q", o)
		}
		v, err := parseOptionValue(spec, tagByteLen(r), o)
		if err != nil {
			return nil, err
		}
		out[spec.Name] = v
	}
	return out, nil
}

// ParseFieldOptions converts a field definition's option-string list into
// (fieldOptions, typeOptions) maps. An option tag not recognized as a field
// option is treated as a type option embedded in the field (the
// AnonymousType extension vocabulary) — Go equivalent of utils.py's
// ftopts_s2d.
func ParseFieldOptions(opts []string) (fieldOpts, typeOpts map[string]interface{}, err error) {
	fieldOpts = map[string]interface{}{}
	typeOpts = map[string]interface{}{}
	for _, o := range opts {
		if o == "" {
			return nil, nil, fmt.Errorf("jadn: empty field option")
		}
		r := tagRune(o)
		if spec, ok := FieldOptions[r]; ok {
			v, err := parseOptionValue(spec, tagByteLen(r), o)
			if err != nil {
				return nil, nil, err
			}
			fieldOpts[spec.Name] = v
			continue
		}
		tspec, ok := TypeOptions[r]
		if !ok {
			return nil, nil, fmt.Errorf("jadn: unknown field option: %q", o)
		}
		v, err := parseOptionValue(tspec, tagByteLen(r), o)
		if err != nil {
			return nil, nil, err
		}
		typeOpts[tspec.Name] = v
	}
	return fieldOpts, typeOpts, nil
}

// OptsToStrings serializes a parsed option map back into tag-prefixed
// strings, the Go equivalent of utils.py's opts_d2s.
func OptsToStrings(opts map[string]interface{}) ([]string, error) {
	out := make([]string, 0, len(opts))
	for name, v := range opts {
		tag, ok := OptionID[name]
		if !ok {
			return nil, fmt.Errorf("jadn: unknown option tag for %q", name)
		}
		switch val := v.(type) {
		case bool:
			out = append(out, tag)
		case string:
			out = append(out, tag+val)
		case int:
			out = append(out, tag+strconv.Itoa(val))
		case float64:
			out = append(out, tag+strconv.FormatFloat(val, 'f', -1, 64))
		default:
			return nil, fmt.Errorf("jadn: option %q: unsupported value type %T", name, v)
		}
	}
	return out, nil
}

// optOrder returns an option string's canonical sort key.
func optOrder(o string) int {
	r := tagRune(o)
	if spec, ok := FieldOptions[r]; ok {
		return spec.Order
	}
	if spec, ok := TypeOptions[r]; ok {
		return spec.Order + 100 // field options sort before type options embedded in a field list
	}
	return 1000
}

// SortOptions sorts an option-string list into canonical order in place,
// the Go equivalent of utils.py's opts_sort.
func SortOptions(opts []string) {
	sort.SliceStable(opts, func(i, j int) bool {
		return optOrder(opts[i]) < optOrder(opts[j])
	})
}

// GetOptionIndex returns the index of the option named oname in opts, or -1.
func GetOptionIndex(opts []string, oname string) int {
	tag, ok := OptionID[oname]
	if !ok {
		return -1
	}
	for i, o := range opts {
		if len(o) >= len(tag) && o[:len(tag)] == tag {
			return i
		}
	}
	return -1
}

// DeleteOption removes the option named oname from opts in place if present.
func DeleteOption(opts *[]string, oname string) {
	if i := GetOptionIndex(*opts, oname); i >= 0 {
		*opts = append((*opts)[:i], (*opts)[i+1:]...)
	}
}
