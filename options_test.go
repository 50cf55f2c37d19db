package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeOptions(t *testing.T) {
	opts, err := ParseTypeOptions([]string{"{2", "}16", "%^[a-z]+$"})
	require.NoError(t, err)
	assert.Equal(t, 2, opts["minv"])
	assert.Equal(t, 16, opts["maxv"])
	assert.Equal(t, "^[a-z]+$", opts["pattern"])
}

func TestParseTypeOptionsUnknownTag(t *testing.T) {
	_, err := ParseTypeOptions([]string{"!bogus"})
	assert.Error(t, err)
}

func TestParseTypeOptionsMultiByteTag(t *testing.T) {
	opts, err := ParseTypeOptions([]string{"∩Foo"})
	require.NoError(t, err)
	assert.Equal(t, "Foo", opts["and"])
}

func TestParseFieldOptionsSplitsEmbeddedTypeOptions(t *testing.T) {
	fieldOpts, typeOpts, err := ParseFieldOptions([]string{"[0", "]1", "{2"})
	require.NoError(t, err)
	assert.Equal(t, 0, fieldOpts["minc"])
	assert.Equal(t, 1, fieldOpts["maxc"])
	assert.Equal(t, 2, typeOpts["minv"])
}

func TestOptsToStringsRoundTrip(t *testing.T) {
	opts, err := ParseTypeOptions([]string{"{2", "}16"})
	require.NoError(t, err)
	strs, err := OptsToStrings(opts)
	require.NoError(t, err)
	SortOptions(strs)
	assert.Equal(t, []string{"{2", "}16"}, strs)
}

func TestSortOptionsCanonicalOrder(t *testing.T) {
	opts := []string{"}16", "{2", "/ipv4-addr"}
	SortOptions(opts)
	assert.Equal(t, []string{"/ipv4-addr", "{2", "}16"}, opts)
}

func TestGetOptionIndexAndDeleteOption(t *testing.T) {
	opts := []string{"{2", "}16"}
	idx := GetOptionIndex(opts, "minv")
	assert.Equal(t, 0, idx)
	DeleteOption(&opts, "minv")
	assert.Equal(t, []string{"}16"}, opts)
	DeleteOption(&opts, "missing")
	assert.Equal(t, []string{"}16"}, opts)
}
