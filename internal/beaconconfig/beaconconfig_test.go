package beaconconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wathne/datbac-2025/internal/aod"
)

const sampleYAML = `
beacons:
  - mac: "EB:DC:FD:CD:66:F6"
    x: 10
    y: 0
    z: 2.5
    yaw_deg: 90
    pitch_deg: 0
    roll_deg: 0
  - mac: "01:02:03:04:05:06"
    x: -5
    y: 3
    z: 0
`

func Test_Load_RoundTripsThroughRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beacons.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	reg := aod.NewRegistry()
	count, err := Load(path, reg)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, reg.Count())

	mac1 := aod.NewMACBigEndian([aod.MACSize]byte{0xEB, 0xDC, 0xFD, 0xCD, 0x66, 0xF6})
	b1, err := reg.Get(mac1)
	require.NoError(t, err)
	assert.Equal(t, float32(10), b1.X)
	assert.Equal(t, float32(2.5), b1.Z)
}

func Test_Load_RejectsMalformedMAC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beacons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("beacons:\n  - mac: \"not-a-mac\"\n"), 0o644))

	reg := aod.NewRegistry()
	_, err := Load(path, reg)
	assert.Error(t, err)
}
