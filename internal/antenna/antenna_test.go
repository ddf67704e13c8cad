package antenna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FullModeSwitchingSequence_CoversAllAntennasPerPeriod(t *testing.T) {
	// The first 16 slots (and the next 16, starting at index 16) form one
	// full switching period: every antenna visited exactly once.
	for _, start := range []int{0, 16} {
		seen := make(map[uint8]bool, 16)
		for i := start; i < start+16; i++ {
			ant := FullModeSwitchingSequence[i]
			assert.Falsef(t, seen[ant], "antenna %d repeated within period starting at %d", ant, start)
			seen[ant] = true
		}
		assert.Len(t, seen, 16)
	}
}

func Test_RowModeSwitchingSequence_CyclesFourAntennas(t *testing.T) {
	want := []uint8{3, 4, 6, 2}
	for i, ant := range RowModeSwitchingSequence {
		assert.Equal(t, want[i%4], ant)
	}
}

func Test_Switch_SelectRejectsOutOfRange(t *testing.T) {
	s := &Switch{}
	err := s.Select(16)
	assert.Error(t, err)
}
