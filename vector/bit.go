package vector

import (
	"fmt"
	"regexp"
	"strings"
)

// bitPattern is the accepted textual form of a Bit.
var bitPattern = regexp.MustCompile(`^[01]$`)

// Bit is a single binary coordinate.
type Bit bool

// ParseBit parses "0" or "1". Any other input is rejected.
func ParseBit(s string) (Bit, error) {
	if !bitPattern.MatchString(s) {
		return false, fmt.Errorf("input %q does not fit required pattern [01]", s)
	}
	return s == "1", nil
}

// BitOf converts 0 or 1 into a Bit.
func BitOf(i int) (Bit, error) {
	if i != 0 && i != 1 {
		return false, fmt.Errorf("required: 0 or 1 - found: %d", i)
	}
	return i == 1, nil
}

// Int returns 1 for a set bit, 0 otherwise.
func (b Bit) Int() int {
	if b {
		return 1
	}
	return 0
}

// Float64 returns the bit as 0 or 1.
func (b Bit) Float64() float64 {
	return float64(b.Int())
}

func (b Bit) String() string {
	if b {
		return "1"
	}
	return "0"
}

// BitVector is a vector of binary coordinates.
type BitVector []Bit

// NewBitVector is the Factory of BitVector. A coordinate is set when its value
// is at least 0.5, so a centroid of bit vectors becomes a majority vote.
func NewBitVector(values []float64) BitVector {
	out := make(BitVector, len(values))
	for i, x := range values {
		out[i] = x >= 0.5
	}
	return out
}

// ParseBitVector parses a sequence of "0"/"1" fields.
func ParseBitVector(fields []string) (BitVector, error) {
	out := make(BitVector, len(fields))
	for i, f := range fields {
		b, err := ParseBit(f)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// Dimensionality implements Vector.
func (v BitVector) Dimensionality() int { return len(v) }

// Value implements Vector.
func (v BitVector) Value(dim int) float64 { return v[dim-1].Float64() }

// Cardinality returns the number of set bits.
func (v BitVector) Cardinality() int {
	n := 0
	for _, b := range v {
		n += b.Int()
	}
	return n
}

func (v BitVector) String() string {
	parts := make([]string, len(v))
	for i, b := range v {
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}
