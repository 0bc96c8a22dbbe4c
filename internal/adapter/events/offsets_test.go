package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetTrackerCommitsContiguousPrefix(t *testing.T) {
	tr := newOffsetTracker()
	for _, off := range []int64{10, 11, 12, 13} {
		tr.fetched(0, off)
	}

	_, ok := tr.acked(0, 12)
	assert.False(t, ok, "12 finished before 10 and 11")

	_, ok = tr.acked(0, 11)
	assert.False(t, ok)

	commit, ok := tr.acked(0, 10)
	assert.True(t, ok)
	assert.Equal(t, int64(12), commit)

	commit, ok = tr.acked(0, 13)
	assert.True(t, ok)
	assert.Equal(t, int64(13), commit)
}

func TestOffsetTrackerPartitionsAreIndependent(t *testing.T) {
	tr := newOffsetTracker()
	tr.fetched(0, 5)
	tr.fetched(1, 7)

	commit, ok := tr.acked(1, 7)
	assert.True(t, ok)
	assert.Equal(t, int64(7), commit)

	_, ok = tr.acked(2, 1)
	assert.False(t, ok, "unknown partition")
}
