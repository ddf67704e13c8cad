package aod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry_PutOverwritesByMAC(t *testing.T) {
	reg := NewRegistry()
	mac := NewMACLittleEndian([MACSize]byte{0xEB, 0xDC, 0xFD, 0xCD, 0x66, 0xF6})

	b1, err := NewBeacon(mac, 10, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, reg.Put(b1))

	b2, err := NewBeacon(mac, 11, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, reg.Put(b2))

	got, err := reg.Get(mac)
	require.NoError(t, err)
	assert.Equal(t, float32(11), got.X)
	assert.Equal(t, 1, reg.Count())
}

func Test_Registry_GetMissingReturnsNotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get(MAC{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Registry_PutFullReturnsNoSpace(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < BeaconRegistryCapacity; i++ {
		mac := MAC{0, 0, 0, 0, 0, byte(i)}
		b, err := NewBeacon(mac, 0, 0, 0, 0, 0, 0)
		require.NoError(t, err)
		require.NoError(t, reg.Put(b))
	}

	extra, err := NewBeacon(MAC{1, 2, 3, 4, 5, 6}, 0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, reg.Put(extra), ErrNoSpace)
}
