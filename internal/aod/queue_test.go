package aod

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WorkQueue_OverflowEvictsOldestDrainsNewestFirst(t *testing.T) {
	var mu sync.Mutex
	var consumed []int64

	q := NewWorkQueue(WorkQueueCapacity, func(f RawFrame) {
		mu.Lock()
		consumed = append(consumed, f.TimestampMS)
		mu.Unlock()
	})

	for i := int64(1); i <= 12; i++ {
		q.Submit(RawFrame{TimestampMS: i})
	}

	q.Start()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(consumed) == 8
	}, time.Second, time.Millisecond)
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int64{12, 11, 10, 9, 8, 7, 6, 5}, consumed)
}

func Test_WorkQueue_EmptyAfterDrain(t *testing.T) {
	q := NewWorkQueue(4, func(RawFrame) {})
	q.Submit(RawFrame{TimestampMS: 1})
	q.Start()
	require.Eventually(t, func() bool {
		return q.Len() == 0
	}, time.Second, time.Millisecond)
	q.Stop()
}
