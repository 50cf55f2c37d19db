package jadn

import "math/big"

// Rat wraps math/big.Rat to give Number range checks exact boundary
// comparisons instead of float64 rounding, trimmed to comparison use since
// JADN's wire form for Number is a plain JSON real, not a fraction that
// needs its own marshaling.
type Rat struct {
	*big.Rat
}

// NewRat builds a Rat from a float64 API/wire value.
func NewRat(value float64) *Rat {
	r := new(big.Rat).SetFloat64(value)
	if r == nil {
		return nil
	}
	return &Rat{r}
}

// inRange reports whether v falls within [minf, maxf], comparing the
// float64 values as exact rationals. A NaN or infinite v has no rational
// form and is reported out of range.
func inRange(v, minf, maxf float64, hasMin, hasMax bool) bool {
	rv := NewRat(v)
	if rv == nil {
		return false
	}
	if hasMin {
		if rv.Cmp(NewRat(minf).Rat) < 0 {
			return false
		}
	}
	if hasMax {
		if rv.Cmp(NewRat(maxf).Rat) > 0 {
			return false
		}
	}
	return true
}
