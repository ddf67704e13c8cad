package aod

import "fmt"

// MACSize is the length in octets of a Bluetooth device address.
const MACSize = 6

// MAC is a 6-octet Bluetooth device address. The zero value is not a
// valid address; use NewMACBigEndian or NewMACLittleEndian.
type MAC [MACSize]byte

// NewMACBigEndian builds a MAC from conventional human-readable octet
// order (e.g. F6:66:CD:FD:DC:EB read left to right).
func NewMACBigEndian(octets [MACSize]byte) MAC {
	return MAC(octets)
}

// NewMACLittleEndian builds a MAC from BLE protocol octet order (least
// significant octet first, as received from the controller).
func NewMACLittleEndian(octets [MACSize]byte) MAC {
	var m MAC
	for i := 0; i < MACSize; i++ {
		m[i] = octets[MACSize-1-i]
	}
	return m
}

// LittleEndian returns the protocol (reversed) octet order of m, where m
// is stored in big-endian (human-readable) order.
func (m MAC) LittleEndian() [MACSize]byte {
	var out [MACSize]byte
	for i := 0; i < MACSize; i++ {
		out[i] = m[MACSize-1-i]
	}
	return out
}

// Equal reports whether two MACs are bytewise identical.
func (m MAC) Equal(other MAC) bool {
	return m == other
}

// String renders m in conventional big-endian colon-separated hex.
func (m MAC) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		m[0], m[1], m[2], m[3], m[4], m[5])
}

// macLittleEndianEqual compares two MACs already given in protocol
// (little-endian) octet order, bytewise. Grounded on bt_addr_mac_compare().
func macLittleEndianEqual(a, b [MACSize]byte) bool {
	return a == b
}
