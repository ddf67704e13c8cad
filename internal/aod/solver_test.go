package aod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Locator_SkewLines_OrthogonalRaysMeetExactly(t *testing.T) {
	reg := NewRegistry()
	loc := NewLocator(reg)

	const invSqrt2 = float32(0.70710678)

	p1 := Vec3{0, 0, 0}
	d1 := Vec3{invSqrt2, 0, invSqrt2}

	p2 := Vec3{10, 0, 0}
	d2 := Vec3{-invSqrt2, 0, invSqrt2}

	pos, err := loc.EstimateFromSkewLines(1000, p1, d1, p2, d2)
	assert.NoError(t, err)
	assert.InDelta(t, 5, pos.X, 1e-3)
	assert.InDelta(t, 0, pos.Y, 1e-3)
	assert.InDelta(t, 5, pos.Z, 1e-3)
	assert.InDelta(t, 0, pos.ErrorRadius, 1e-3)

	hist := loc.History()
	assert.Len(t, hist, 1)
	assert.Equal(t, pos, hist[0])
}

func Test_Locator_SkewLines_NearParallelIsRejected(t *testing.T) {
	reg := NewRegistry()
	loc := NewLocator(reg)

	d := Vec3{0.001, 0, 0.9999995}

	p1 := Vec3{0, 0, 0}
	p2 := Vec3{0, 1, 0}

	_, err := loc.EstimateFromSkewLines(0, p1, d, p2, d)
	assert.ErrorIs(t, err, ErrParallelLines)
}

func Test_Locator_HistoryIsBoundedAndOrdered(t *testing.T) {
	reg := NewRegistry()
	loc := NewLocator(reg)

	d1 := Vec3{0, 0, 1}
	d2 := Vec3{1, 0, 0}

	for i := 0; i < PositionHistoryCapacity+5; i++ {
		_, err := loc.EstimateFromSkewLines(int64(i), Vec3{0, 0, 0}, d1, Vec3{1, 1, 1}, d2)
		assert.NoError(t, err)
	}

	hist := loc.History()
	assert.Len(t, hist, PositionHistoryCapacity)
	assert.Equal(t, int64(5), hist[0].TimestampMS)
	assert.Equal(t, int64(PositionHistoryCapacity+4), hist[len(hist)-1].TimestampMS)
}
