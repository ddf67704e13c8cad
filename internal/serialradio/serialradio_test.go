package serialradio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_readFrame_ParsesWireFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int64(12345)))
	require.NoError(t, buf.WriteByte(7))
	buf.Write([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, buf.WriteByte(3))
	buf.Write([]byte{0x7f, 0x80, 0x01}) // I samples, as raw bytes
	buf.Write([]byte{0x00, 0x01, 0xff}) // Q samples

	frame, err := readFrame(&buf)
	require.NoError(t, err)

	assert.Equal(t, int64(12345), frame.TimestampMS)
	assert.Equal(t, uint8(7), frame.ChannelIndex)
	assert.Equal(t, 3, frame.SampleCount)
	assert.Equal(t, int8(127), frame.I[0])
	assert.Equal(t, int8(-128), frame.I[1])
	assert.Equal(t, int8(-1), frame.Q[2])
}

func Test_readFrame_ReturnsEOFOnEmptyStream(t *testing.T) {
	_, err := readFrame(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
}
