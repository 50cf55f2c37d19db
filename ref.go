package jadn

import "github.com/kaptinlin/jsonpointer"

// path tracks the type/field names visited while the codec recurses into a
// value, so a ValidationError can carry a "/"-separated location via
// jsonpointer.Format, rather than only a bare message string.
type path struct {
	tokens []string
}

func (p path) push(token string) path {
	tokens := make([]string, len(p.tokens)+1)
	copy(tokens, p.tokens)
	tokens[len(p.tokens)] = token
	return path{tokens: tokens}
}

func (p path) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return "#" + jsonpointer.Format(p.tokens...)
}
