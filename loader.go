package jadn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
)

// Dumps serializes schema to its canonical compact JSON text form, the Go
// equivalent of core.py's dumps(). Canonicalize is applied first so two
// schemas that differ only in option ordering serialize identically.
func Dumps(schema *Schema) (string, error) {
	canonical := Canonicalize(schema)
	b, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("jadn: dumps: %w", err)
	}
	return string(b), nil
}

// Dump writes Dumps's output to path, inferring YAML instead of JSON output
// when path ends in .yaml/.yml, mirroring core.py's dump() media-type
// dispatch.
func Dump(schema *Schema, path string) error {
	if isYAMLPath(path) {
		canonical := Canonicalize(schema)
		js, err := json.Marshal(canonical)
		if err != nil {
			return fmt.Errorf("jadn: dump: %w", err)
		}
		var generic interface{}
		if err := json.Unmarshal(js, &generic); err != nil {
			return fmt.Errorf("jadn: dump: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("jadn: dump: %w", err)
		}
		return os.WriteFile(path, out, 0o644)
	}
	text, err := Dumps(schema)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// Loads parses a JSON-encoded schema, the Go equivalent of core.py's
// loads().
func Loads(data []byte) (*Schema, error) {
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("jadn: loads: %w", err)
	}
	return &schema, nil
}

// Load reads and parses a schema from path, accepting either JSON or YAML
// source text based on the file extension (core.py's load(), extended with
// the YAML alternate form github.com/goccy/go-yaml makes available).
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jadn: load: %w", err)
	}
	if !isYAMLPath(path) {
		return Loads(data)
	}
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("jadn: load: %w", err)
	}
	return Loads(js)
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
