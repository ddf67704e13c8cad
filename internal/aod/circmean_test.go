package aod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_circularMean_EmptyAndSingle(t *testing.T) {
	assert.Equal(t, float32(0), circularMean(nil, 5, 0.01))
	assert.Equal(t, float32(1.23), circularMean([]float32{1.23}, 5, 0.01))
}

func Test_circularMean_SeamCrossing(t *testing.T) {
	angles := []float32{3.04, -3.04, 3.10, -3.10}
	mean := circularMean(angles, 5, 0.01)
	assert.Greater(t, abs32(mean), float32(3.10))
	assert.LessOrEqual(t, abs32(mean), float32(math.Pi))
}

func Test_circularMean_StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		angles := make([]float32, n)
		for i := range angles {
			angles[i] = float32(rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle"))
		}

		mean := circularMean(angles, 5, 0.01)
		assert.LessOrEqual(t, abs32(mean), float32(math.Pi)+1e-3)
		assert.GreaterOrEqual(t, mean, -float32(math.Pi)-1e-3)
	})
}

func Test_circularMeanExtrinsic_MatchesZeroIterations(t *testing.T) {
	angles := []float32{0.1, -0.1, 0.2}
	assert.Equal(t, circularMean(angles, 0, 0), circularMeanExtrinsic(angles))
}
