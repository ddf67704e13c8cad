// Package antenna drives the CHW1010-ANT2 antenna switch over four GPIO
// lines, stepping through the measurement-period switching sequence
// that produces the per-sample antenna index the core pipeline expects.
package antenna

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// lineCount is the number of GPIO lines needed to address all 16
// antennas (2^4 = 16).
const lineCount = 4

// FullModeSwitchingSequence maps each of the 37 measurement samples to
// the antenna index sampled at that slot, for the default 4us spacing
// / CTEType 2 configuration. Grounded verbatim on iq_data.c's
// antenna_switching_sequence (full antenna pattern).
var FullModeSwitchingSequence = [37]uint8{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 0, 1, 2, 3, 4,
	5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
	15, 0, 1, 2, 3, 4, 5,
}

// RowModeSwitchingSequence restricts switching to a single row of four
// antennas (3, 4, 6, 2), repeating. Grounded verbatim on iq_data.c's
// antenna_switching_sequence (row antenna pattern).
var RowModeSwitchingSequence = [37]uint8{
	3, 4, 6, 2, 3, 4, 6, 2, 3, 4,
	6, 2, 3, 4, 6, 2, 3, 4, 6, 2,
	3, 4, 6, 2, 3, 4, 6, 2, 3, 4,
	6, 2, 3, 4, 6, 2, 3,
}

// Switch drives the four GPIO lines that select one of 16 antennas.
type Switch struct {
	lines *gpiocdev.Lines
}

// Open requests the given GPIO offsets (lowest bit first) on chip as
// outputs and returns a Switch ready to step through a sequence.
func Open(chip string, offsets [lineCount]int) (*Switch, error) {
	lines, err := gpiocdev.RequestLines(chip, offsets[:], gpiocdev.AsOutput(0, 0, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("antenna: request lines: %w", err)
	}
	return &Switch{lines: lines}, nil
}

// Select drives the lines to address antenna index (0-15).
func (s *Switch) Select(index uint8) error {
	if index >= 16 {
		return fmt.Errorf("antenna: index %d out of range [0,16)", index)
	}

	values := make([]int, lineCount)
	for bit := 0; bit < lineCount; bit++ {
		values[bit] = int((index >> bit) & 1)
	}

	if err := s.lines.SetValues(values); err != nil {
		return fmt.Errorf("antenna: set values: %w", err)
	}
	return nil
}

// Close releases the underlying GPIO lines.
func (s *Switch) Close() error {
	return s.lines.Close()
}
