package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBuiltin(t *testing.T) {
	assert.True(t, IsBuiltin("Record"))
	assert.True(t, IsBuiltin("Integer"))
	assert.False(t, IsBuiltin("Person"))
}

func TestHasFields(t *testing.T) {
	assert.True(t, HasFields(Record))
	assert.True(t, HasFields(Choice))
	assert.True(t, HasFields(Enumerated))
	assert.False(t, HasFields(Integer))
	assert.False(t, HasFields(Binary))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.TypeName.MatchString("Person"))
	assert.False(t, cfg.TypeName.MatchString("person"))
	assert.True(t, cfg.FieldName.MatchString("name"))
}

func TestSchemaConfigOverrides(t *testing.T) {
	s := &Schema{
		Info: &Info{Config: map[string]interface{}{
			"$MaxString": float64(16),
			"$TypeName":  "^Z.*$",
		}},
	}
	cfg := SchemaConfig(s)
	assert.Equal(t, 16, cfg.MaxString)
	assert.True(t, cfg.TypeName.MatchString("Zebra"))
	assert.False(t, cfg.TypeName.MatchString("Person"))
}

func TestSchemaConfigNoOverride(t *testing.T) {
	s := &Schema{}
	cfg := SchemaConfig(s)
	assert.Equal(t, DefaultConfig().MaxString, cfg.MaxString)
}

func TestSchemaConfigIgnoresBadRegex(t *testing.T) {
	s := &Schema{Info: &Info{Config: map[string]interface{}{"$TypeName": "("}}}
	cfg := SchemaConfig(s)
	assert.Equal(t, DefaultConfig().TypeName, cfg.TypeName)
}
