package jadn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJADN2TypeStringSimpleBounds(t *testing.T) {
	td := TypeDef{TypeName: "Age", BaseType: Integer, TypeOptions: []string{"{0", "}150"}}
	assert.Equal(t, "Integer{0..150}", JADN2TypeString(td))
}

func TestJADN2TypeStringArrayOf(t *testing.T) {
	td := TypeDef{TypeName: "Tags", BaseType: ArrayOf, TypeOptions: []string{"*String"}}
	assert.Equal(t, "ArrayOf(String)", JADN2TypeString(td))
}

func TestJADN2TypeStringMapOf(t *testing.T) {
	td := TypeDef{TypeName: "Scores", BaseType: MapOf, TypeOptions: []string{"+Integer", "*String"}}
	assert.Equal(t, "MapOf(Integer, String)", JADN2TypeString(td))
}

func TestJADN2TypeStringFormat(t *testing.T) {
	td := TypeDef{TypeName: "Addr", BaseType: Binary, TypeOptions: []string{"/ipv4-addr"}}
	assert.Equal(t, "Binary/ipv4-addr", JADN2TypeString(td))
}

func TestTypeString2JADNRoundTrip(t *testing.T) {
	bt, opts, err := TypeString2JADN("Integer{0..150}")
	require.NoError(t, err)
	assert.Equal(t, Integer, bt)
	assert.Equal(t, []string{"{0", "}150"}, opts)
}

func TestTypeString2JADNArrayOf(t *testing.T) {
	bt, opts, err := TypeString2JADN("ArrayOf(String)")
	require.NoError(t, err)
	assert.Equal(t, ArrayOf, bt)
	assert.Equal(t, []string{"*String"}, opts)
}

func TestTypeString2JADNRejectsUnknownBaseType(t *testing.T) {
	_, _, err := TypeString2JADN("Bogus")
	assert.Error(t, err)
}
