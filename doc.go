// Package jadn implements the core of JSON Abstract Data Notation: a schema
// checker, a schema transformer (simplify/unfold), and a bidirectional
// codec that validates and converts instances between an API form and a
// wire form under a configurable encoding mode.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for several of the
// format validators.
package jadn
