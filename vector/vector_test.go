package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64_FactoryRoundTrip(t *testing.T) {
	raw := []float64{2, 3, -1.5}
	v := NewFloat64(raw)
	raw[0] = 99

	require.Equal(t, 3, v.Dimensionality())
	assert.Equal(t, []float64{2, 3, -1.5}, Values(v))
	assert.Equal(t, 3.0, v.Value(2))

	again := NewFloat64(Values(v))
	assert.Equal(t, v, again)
}

func TestFloat32_Factory(t *testing.T) {
	v := NewFloat32([]float64{0.5, -2})
	assert.Equal(t, Float32{0.5, -2}, v)
	assert.InDelta(t, 0.5, v.Value(1), 1e-9)
	assert.Equal(t, "0.5 -2", v.String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1 2.5 -3", Format(Float64{1, 2.5, -3}))
	assert.Equal(t, "", Format(Float64{}))
}

func TestParseBit(t *testing.T) {
	tests := []struct {
		in      string
		want    Bit
		wantErr bool
	}{
		{"0", false, false},
		{"1", true, false},
		{"2", false, true},
		{"01", false, true},
		{"", false, true},
		{"true", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBit(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBitOf(t *testing.T) {
	b, err := BitOf(1)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Int())
	assert.Equal(t, "1", b.String())

	_, err = BitOf(3)
	assert.Error(t, err)
}

func TestBitVector(t *testing.T) {
	v, err := ParseBitVector([]string{"1", "0", "1"})
	require.NoError(t, err)

	assert.Equal(t, 3, v.Dimensionality())
	assert.Equal(t, 2, v.Cardinality())
	assert.Equal(t, 0.0, v.Value(2))
	assert.Equal(t, "1 0 1", v.String())

	_, err = ParseBitVector([]string{"1", "x"})
	assert.Error(t, err)
}

func TestNewBitVector_Threshold(t *testing.T) {
	v := NewBitVector([]float64{0.49, 0.5, 1, 0})
	assert.Equal(t, BitVector{false, true, true, false}, v)
}
