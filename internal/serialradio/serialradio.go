// Package serialradio ingests raw IQ sample reports from a BLE
// controller attached over a UART, using github.com/pkg/term for raw
// serial I/O and golang.org/x/sys/unix for low-level modem status
// queries.
package serialradio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"

	"github.com/wathne/datbac-2025/internal/aod"
)

var supportedBauds = map[int]bool{
	1200: true, 2400: true, 4800: true, 9600: true,
	19200: true, 38400: true, 57600: true, 115200: true, 230400: true,
}

// Port reads a stream of length-prefixed raw IQ frames from a serial
// device.
type Port struct {
	fd *term.Term
	r  *bufio.Reader
}

// Open opens devicename in raw mode at baud (0 leaves the current speed
// alone; an unsupported value falls back to 115200).
func Open(devicename string, baud int) (*Port, error) {
	fd, err := term.Open(devicename, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("serialradio: open %s: %w", devicename, err)
	}

	switch {
	case baud == 0:
	case supportedBauds[baud]:
		if err := fd.SetSpeed(baud); err != nil {
			_ = fd.Close()
			return nil, fmt.Errorf("serialradio: set speed %d: %w", baud, err)
		}
	default:
		if err := fd.SetSpeed(115200); err != nil {
			_ = fd.Close()
			return nil, fmt.Errorf("serialradio: set fallback speed: %w", err)
		}
	}

	return &Port{fd: fd, r: bufio.NewReader(fd)}, nil
}

// Close closes the underlying serial device.
func (p *Port) Close() error {
	return p.fd.Close()
}

// frameHeader mirrors the wire layout of one raw IQ samples report:
// an 8-byte timestamp, a channel index byte, a 6-byte MAC, and a
// sample count byte, all little-endian, followed by sample_count
// signed bytes of I then sample_count signed bytes of Q.
type frameHeader struct {
	TimestampMS  int64
	ChannelIndex uint8
	BeaconMAC    [aod.MACSize]byte
	SampleCount  uint8
}

// ReadFrame blocks until one complete raw IQ frame has been read, or
// returns an error (io.EOF when the port is closed out from under it).
func (p *Port) ReadFrame() (aod.RawFrame, error) {
	return readFrame(p.r)
}

func readFrame(r io.Reader) (aod.RawFrame, error) {
	var hdr frameHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr.TimestampMS); err != nil {
		return aod.RawFrame{}, wrapReadErr(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr.ChannelIndex); err != nil {
		return aod.RawFrame{}, wrapReadErr(err)
	}
	if _, err := io.ReadFull(r, hdr.BeaconMAC[:]); err != nil {
		return aod.RawFrame{}, wrapReadErr(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr.SampleCount); err != nil {
		return aod.RawFrame{}, wrapReadErr(err)
	}

	i := make([]int8, hdr.SampleCount)
	q := make([]int8, hdr.SampleCount)
	if err := readInt8s(r, i); err != nil {
		return aod.RawFrame{}, wrapReadErr(err)
	}
	if err := readInt8s(r, q); err != nil {
		return aod.RawFrame{}, wrapReadErr(err)
	}

	return aod.NewRawFrame(hdr.TimestampMS, hdr.ChannelIndex, hdr.BeaconMAC, i, q), nil
}

func readInt8s(r io.Reader, out []int8) error {
	buf := make([]byte, len(out))
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	for idx, b := range buf {
		out[idx] = int8(b)
	}
	return nil
}

func wrapReadErr(err error) error {
	if err == io.EOF {
		return err
	}
	return fmt.Errorf("serialradio: read frame: %w", err)
}

// ModemStatus reports whether the carrier-detect line is asserted. pkg/term
// does not expose modem status bits, so this goes directly through a
// TIOCMGET ioctl.
func (p *Port) ModemStatus() (carrierDetect bool, err error) {
	bits, err := unix.IoctlGetInt(int(p.fd.Fd()), unix.TIOCMGET)
	if err != nil {
		return false, fmt.Errorf("serialradio: TIOCMGET: %w", err)
	}
	return bits&unix.TIOCM_CD != 0, nil
}
