package aod

// RawFrame is a snapshot of one CTE IQ-samples report: arrival timestamp
// (milliseconds since boot), BLE channel index, source beacon MAC
// (protocol/little-endian order), and the two parallel signed-8-bit I
// and Q sample arrays, valid over [0, SampleCount).
type RawFrame struct {
	TimestampMS int64
	ChannelIndex uint8
	BeaconMAC    [MACSize]byte // protocol (little-endian) order

	SampleCount int
	I           [MaxRawSamples]int8
	Q           [MaxRawSamples]int8
}

// NewRawFrame builds a RawFrame from parallel I/Q slices, truncating to
// MaxRawSamples if longer.
func NewRawFrame(timestampMS int64, channelIndex uint8, beaconMAC [MACSize]byte, i, q []int8) RawFrame {
	n := len(i)
	if len(q) < n {
		n = len(q)
	}
	if n > MaxRawSamples {
		n = MaxRawSamples
	}

	f := RawFrame{
		TimestampMS:  timestampMS,
		ChannelIndex: channelIndex,
		BeaconMAC:    beaconMAC,
		SampleCount:  n,
	}
	copy(f.I[:n], i[:n])
	copy(f.Q[:n], q[:n])
	return f
}
