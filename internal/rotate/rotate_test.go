package rotate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wathne/datbac-2025/internal/rotate"
)

func Test_Filename_RendersPattern(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 9, 30, 0, 0, time.UTC)

	name, err := rotate.Filename("aod-%Y%m%d-%H%M%S.log", ts)
	require.NoError(t, err)
	assert.Equal(t, "aod-20260305-093000.log", name)
}

func Test_Formatter_CompilesOnceFormatsMany(t *testing.T) {
	f, err := rotate.NewFormatter("%Y-%m-%d.nmea")
	require.NoError(t, err)

	a := f.Format(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	b := f.Format(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-01-01.nmea", a)
	assert.Equal(t, "2026-01-02.nmea", b)
}
