// Package posexport writes locator fixes as NMEA $GPGGA sentences down
// a pseudo-terminal, so any GPS-consuming mapping tool can follow the
// locator without knowing about BLE AoD at all.
package posexport

import (
	"bufio"
	"fmt"
	"os"

	"github.com/creack/pty"
)

// Exporter owns a pty pair: SlaveName gives the path a consumer opens
// (minicom, a mapping application, ...); writes go to the master end.
type Exporter struct {
	master *os.File
	slave  *os.File
	w      *bufio.Writer
}

// Open allocates a pty pair and returns an Exporter ready to accept
// fixes. The caller is responsible for calling Close.
func Open() (*Exporter, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("posexport: open pty: %w", err)
	}
	return &Exporter{master: master, slave: slave, w: bufio.NewWriter(master)}, nil
}

// SlaveName returns the path of the pty slave a consumer should open.
func (e *Exporter) SlaveName() string {
	return e.slave.Name()
}

// Close releases both ends of the pty.
func (e *Exporter) Close() error {
	slaveErr := e.slave.Close()
	masterErr := e.master.Close()
	if slaveErr != nil {
		return slaveErr
	}
	return masterErr
}

// WriteFix encodes a position as a $GPGGA sentence (fix quality 1, one
// satellite, HDOP 1.0) and writes it to the pty master.
func (e *Exporter) WriteFix(timeUTC string, latDeg, lonDeg float64, altM float32) error {
	sentence := gpggaSentence(timeUTC, latDeg, lonDeg, altM)
	if _, err := e.w.WriteString(sentence); err != nil {
		return fmt.Errorf("posexport: write fix: %w", err)
	}
	return e.w.Flush()
}

func gpggaSentence(timeUTC string, latDeg, lonDeg float64, altM float32) string {
	latHemi := byte('N')
	if latDeg < 0 {
		latHemi = 'S'
		latDeg = -latDeg
	}
	lonHemi := byte('E')
	if lonDeg < 0 {
		lonHemi = 'W'
		lonDeg = -lonDeg
	}

	latDeg, latMin := splitDegrees(latDeg)
	lonDeg2, lonMin := splitDegrees(lonDeg)

	body := fmt.Sprintf("GPGGA,%s,%02.0f%07.4f,%c,%03.0f%07.4f,%c,1,01,1.0,%.1f,M,0.0,M,,",
		timeUTC, latDeg, latMin, latHemi, lonDeg2, lonMin, lonHemi, altM)

	return fmt.Sprintf("$%s*%02X\r\n", body, nmeaChecksum(body))
}

func splitDegrees(d float64) (degrees, minutes float64) {
	whole := float64(int(d))
	return whole, (d - whole) * 60
}

// nmeaChecksum is the XOR of every byte in body, per the NMEA 0183
// checksum convention.
func nmeaChecksum(body string) byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return sum
}
