package jadn

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndDumpYAMLRoundTrip(t *testing.T) {
	schema, err := Loads([]byte(personSchemaJSON))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, Dump(schema, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, schema.Types[0].TypeName, loaded.Types[0].TypeName)
	assert.Equal(t, schema.Types[0].BaseType, loaded.Types[0].BaseType)
}

func TestLoadAndDumpJSONRoundTrip(t *testing.T) {
	schema, err := Loads([]byte(personSchemaJSON))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.jadn")
	require.NoError(t, Dump(schema, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, schema.Types[0].TypeName, loaded.Types[0].TypeName)
}

func TestIsYAMLPath(t *testing.T) {
	assert.True(t, isYAMLPath("a.yaml"))
	assert.True(t, isYAMLPath("a.YML"))
	assert.False(t, isYAMLPath("a.json"))
}
