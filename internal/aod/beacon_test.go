package aod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_NewBeacon_RejectsOutOfRangeOrientation(t *testing.T) {
	_, err := NewBeacon(MAC{}, 0, 0, 0, math.Pi+0.1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewBeacon(MAC{}, 0, 0, 0, 0, math.Pi/2+0.1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func Test_NewBeacon_IdentityOrientationIsIdentityBasis(t *testing.T) {
	b, err := NewBeacon(MAC{}, 0, 0, 0, 0, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1, b.I.X, 1e-6)
	assert.InDelta(t, 0, b.I.Y, 1e-6)
	assert.InDelta(t, 0, b.I.Z, 1e-6)

	assert.InDelta(t, 0, b.J.X, 1e-6)
	assert.InDelta(t, 1, b.J.Y, 1e-6)
	assert.InDelta(t, 0, b.J.Z, 1e-6)

	assert.InDelta(t, 0, b.K.X, 1e-6)
	assert.InDelta(t, 0, b.K.Y, 1e-6)
	assert.InDelta(t, 1, b.K.Z, 1e-6)
}

func Test_Beacon_OrientationBasisIsOrthonormal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		yaw := float32(rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "yaw"))
		pitch := float32(rapid.Float64Range(-math.Pi/2, math.Pi/2).Draw(t, "pitch"))
		roll := float32(rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "roll"))

		b, err := NewBeacon(MAC{}, 0, 0, 0, yaw, pitch, roll)
		require.NoError(t, err)

		assert.InDelta(t, 1, b.I.Dot(b.I), 1e-3)
		assert.InDelta(t, 1, b.J.Dot(b.J), 1e-3)
		assert.InDelta(t, 1, b.K.Dot(b.K), 1e-3)
		assert.InDelta(t, 0, b.I.Dot(b.J), 1e-3)
		assert.InDelta(t, 0, b.I.Dot(b.K), 1e-3)
		assert.InDelta(t, 0, b.J.Dot(b.K), 1e-3)
	})
}

func Test_MAC_LittleEndianRoundTrip(t *testing.T) {
	octets := [MACSize]byte{0xEB, 0xDC, 0xFD, 0xCD, 0x66, 0xF6}
	mac := NewMACLittleEndian(octets)
	assert.Equal(t, octets, mac.LittleEndian())
}

func Test_MAC_BigEndianReversesOnRead(t *testing.T) {
	octets := [MACSize]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	mac := NewMACBigEndian(octets)
	assert.Equal(t, [MACSize]byte{0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, mac.LittleEndian())
}
