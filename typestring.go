package jadn

import (
	"fmt"
	"strconv"
	"strings"
)

// JADN2TypeString renders a TypeDef's base type and options as a compact
// single-line notation, e.g. "String{1..32}" or "ArrayOf(String){1..10}",
// the Go equivalent of
// utils.py's typestring's "type opts to string" half.
func JADN2TypeString(td TypeDef) string {
	opts, err := ParseTypeOptions(td.TypeOptions)
	if err != nil {
		return string(td.BaseType)
	}
	var b strings.Builder
	b.WriteString(string(td.BaseType))

	switch td.BaseType {
	case ArrayOf:
		fmt.Fprintf(&b, "(%s)", opts["vtype"])
	case MapOf:
		fmt.Fprintf(&b, "(%s, %s)", opts["ktype"], opts["vtype"])
	}
	if format, ok := opts["format"].(string); ok {
		fmt.Fprintf(&b, "/%s", format)
	}
	if pat, ok := opts["pattern"].(string); ok {
		fmt.Fprintf(&b, " %q", pat)
	}

	min, hasMin := opts["minv"]
	max, hasMax := opts["maxv"]
	minf, hasMinf := opts["minf"]
	maxf, hasMaxf := opts["maxf"]
	switch {
	case hasMin || hasMax:
		lo, hi := "0", "*"
		if hasMin {
			lo = fmt.Sprint(min)
		}
		if hasMax {
			hi = fmt.Sprint(max)
		}
		fmt.Fprintf(&b, "{%s..%s}", lo, hi)
	case hasMinf || hasMaxf:
		lo, hi := "*", "*"
		if hasMinf {
			lo = fmt.Sprint(minf)
		}
		if hasMaxf {
			hi = fmt.Sprint(maxf)
		}
		fmt.Fprintf(&b, "{%s..%s}", lo, hi)
	}
	if unique, ok := opts["unique"].(bool); ok && unique {
		b.WriteString(" unique")
	}
	return b.String()
}

// TypeString2JADN parses the compact notation JADN2TypeString produces back
// into a BaseType and a type-option string list, the inverse half of
// utils.py's typestring helpers. Only the forms JADN2TypeString itself
// emits are accepted; this is a round-trip convenience, not a general
// grammar for hand-written type strings. A quoted pattern is not parsed
// back and yields no pattern option.
func TypeString2JADN(s string) (BaseType, []string, error) {
	name := s
	rest := ""
	if i := strings.IndexAny(s, "({ /"); i >= 0 {
		name, rest = s[:i], s[i:]
	}
	bt := BaseType(name)
	if !CoreTypes[bt] {
		return "", nil, fmt.Errorf("jadn: %q is not a recognized base type", name)
	}
	var opts map[string]interface{} = map[string]interface{}{}

	if bt == ArrayOf || bt == MapOf {
		open := strings.IndexByte(rest, '(')
		close := strings.IndexByte(rest, ')')
		if open >= 0 && close > open {
			inner := rest[open+1 : close]
			rest = rest[close+1:]
			parts := strings.Split(inner, ",")
			for i, p := range parts {
				parts[i] = strings.TrimSpace(p)
			}
			if bt == ArrayOf {
				opts["vtype"] = parts[0]
			} else if len(parts) == 2 {
				opts["ktype"], opts["vtype"] = parts[0], parts[1]
			}
		}
	}

	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		tail := rest[slash+1:]
		end := strings.IndexAny(tail, " {")
		if end < 0 {
			end = len(tail)
		}
		opts["format"] = tail[:end]
		rest = rest[:slash] + tail[end:]
	}

	if open := strings.IndexByte(rest, '{'); open >= 0 {
		close := strings.IndexByte(rest, '}')
		if close > open {
			bounds := strings.SplitN(rest[open+1:close], "..", 2)
			if len(bounds) == 2 && bt == Number {
				if f, err := strconv.ParseFloat(bounds[0], 64); err == nil {
					opts["minf"] = f
				}
				if f, err := strconv.ParseFloat(bounds[1], 64); err == nil {
					opts["maxf"] = f
				}
			} else if len(bounds) == 2 {
				if bounds[0] != "*" {
					var n int
					fmt.Sscanf(bounds[0], "%d", &n)
					opts["minv"] = n
				}
				if bounds[1] != "*" {
					var n int
					fmt.Sscanf(bounds[1], "%d", &n)
					opts["maxv"] = n
				}
			}
		}
	}
	if strings.Contains(rest, "unique") {
		opts["unique"] = true
	}

	out, err := OptsToStrings(opts)
	if err != nil {
		return "", nil, err
	}
	SortOptions(out)
	return bt, out, nil
}
