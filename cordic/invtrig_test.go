package cordic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtanAgainstMath(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1.0, -1.0, 2.0, -2.0, 5.0} {
		stored := fromFloat(t, x)
		got, err := Atan(stored, descQ5_10)
		require.NoError(t, err)
		assert.InDelta(t, math.Atan(x), toFloat(got), 0.02)
	}
}

func TestAsinAcosAgainstMath(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, -0.5, 0.9} {
		stored := fromFloat(t, x)
		as, err := Asin(stored, descQ5_10)
		require.NoError(t, err)
		assert.InDelta(t, math.Asin(x), toFloat(as), 0.02)

		ac, err := Acos(stored, descQ5_10)
		require.NoError(t, err)
		assert.InDelta(t, math.Acos(x), toFloat(ac), 0.02)
	}
}

func TestAsinDomainError(t *testing.T) {
	stored := fromFloat(t, 1.5)
	_, err := Asin(stored, descQ5_10)
	require.Error(t, err)
}
