package cordic

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/qfixed/internal/qcore"
)

var descQ5_10 = qcore.Descriptor{IntBits: 5, FracBits: 10, Signed: true, Overflow: qcore.PolicySaturate}

func toFloat(stored int64) float64 {
	return qcore.ToFloat(stored, descQ5_10)
}

func fromFloat(t *testing.T, x float64) int64 {
	v, err := qcore.FromFloat(x, descQ5_10)
	require.NoError(t, err)
	return v
}

func TestSinCosAgainstMath(t *testing.T) {
	angles := []float64{0, 0.5, 1.0, -1.0, 2.0, -2.0, 3.0}
	for i, a := range angles {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			stored := fromFloat(t, a)
			s, err := Sin(stored, descQ5_10)
			require.NoError(t, err)
			c, err := Cos(stored, descQ5_10)
			require.NoError(t, err)
			assert.InDelta(t, math.Sin(a), toFloat(s), 0.01)
			assert.InDelta(t, math.Cos(a), toFloat(c), 0.01)
		})
	}
}

func TestSinCosPythagoreanIdentity(t *testing.T) {
	stored := fromFloat(t, 1.2)
	s, _ := Sin(stored, descQ5_10)
	c, _ := Cos(stored, descQ5_10)
	sumSq := toFloat(s)*toFloat(s) + toFloat(c)*toFloat(c)
	assert.InDelta(t, 1.0, sumSq, 0.02)
}

func TestTanMatchesSinOverCos(t *testing.T) {
	stored := fromFloat(t, 0.7)
	tan, err := Tan(stored, descQ5_10)
	require.NoError(t, err)
	assert.InDelta(t, math.Tan(0.7), toFloat(tan), 0.02)
}
