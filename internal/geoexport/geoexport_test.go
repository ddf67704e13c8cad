package geoexport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wathne/datbac-2025/internal/aod"
	"github.com/wathne/datbac-2025/internal/geoexport"
)

func Test_Anchor_RoundTripsThroughGeodetic(t *testing.T) {
	anchor, err := geoexport.NewAnchorFromGeodetic(42.662139, -71.365553)
	require.NoError(t, err)

	local := aod.Vec3{X: 12.5, Y: -8.25, Z: 1.5}

	lat, lon, alt, err := anchor.ToGeodetic(local)
	require.NoError(t, err)
	assert.Equal(t, local.Z, alt)

	back, err := anchor.FromGeodetic(lat, lon, alt)
	require.NoError(t, err)

	assert.InDelta(t, local.X, back.X, 0.05)
	assert.InDelta(t, local.Y, back.Y, 0.05)
	assert.Equal(t, local.Z, back.Z)
}

func Test_Anchor_RejectsPointOutsideZone(t *testing.T) {
	anchor, err := geoexport.NewAnchorFromGeodetic(42.662139, -71.365553)
	require.NoError(t, err)

	_, err = anchor.FromGeodetic(-33.8688, 151.2093, 0)
	assert.Error(t, err)
}
