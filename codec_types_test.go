package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsOfDefaultsAndZeroMaxv(t *testing.T) {
	min, max := boundsOf(map[string]interface{}{}, 0, 255)
	assert.Equal(t, 0, min)
	assert.Equal(t, 255, max)

	min, max = boundsOf(map[string]interface{}{"minv": 2, "maxv": 0}, 0, 255)
	assert.Equal(t, 2, min)
	assert.Equal(t, 255, max)

	min, max = boundsOf(map[string]interface{}{"maxv": 16}, 0, 255)
	assert.Equal(t, 0, min)
	assert.Equal(t, 16, max)
}

func TestToFloat64Conversions(t *testing.T) {
	f, ok := toFloat64(int(3))
	assert.True(t, ok)
	assert.Equal(t, float64(3), f)

	f, ok = toFloat64(int64(4))
	assert.True(t, ok)
	assert.Equal(t, float64(4), f)

	f, ok = toFloat64(float32(1.5))
	assert.True(t, ok)
	assert.Equal(t, float64(1.5), f)

	_, ok = toFloat64("nope")
	assert.False(t, ok)
}

func TestKeyAsAPIValue(t *testing.T) {
	assert.Equal(t, int64(7), keyAsAPIValue(Integer, "7"))
	assert.Equal(t, "seven", keyAsAPIValue(String, "seven"))
}

func TestCheckUniqueDetectsDuplicates(t *testing.T) {
	td := &TypeDef{TypeName: "Tags", BaseType: ArrayOf}
	err := checkUnique(td, []interface{}{"a", "b", "a"}, path{})
	assert.Error(t, err)

	err = checkUnique(td, []interface{}{"a", "b"}, path{})
	assert.Nil(t, err)
}
