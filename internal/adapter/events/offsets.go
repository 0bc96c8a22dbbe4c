package events

import "sync"

// offsetTracker decides which offsets are safe to commit when messages of
// a partition are processed concurrently and finish out of order. Only the
// longest acknowledged prefix of fetched offsets is committed, so a crash
// never skips an unprocessed message.
type offsetTracker struct {
	mu         sync.Mutex
	partitions map[int]*partitionOffsets
}

type partitionOffsets struct {
	pending []int64 // fetched and not yet committed, ascending
	acked   map[int64]struct{}
}

func newOffsetTracker() *offsetTracker {
	return &offsetTracker{partitions: make(map[int]*partitionOffsets)}
}

func (t *offsetTracker) fetched(partition int, offset int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.partitions[partition]
	if !ok {
		p = &partitionOffsets{acked: make(map[int64]struct{})}
		t.partitions[partition] = p
	}
	p.pending = append(p.pending, offset)
}

// acked marks offset as processed and returns the highest offset that can
// now be committed, if any.
func (t *offsetTracker) acked(partition int, offset int64) (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.partitions[partition]
	if !ok {
		return 0, false
	}
	p.acked[offset] = struct{}{}

	var (
		commit int64
		found  bool
	)
	for len(p.pending) > 0 {
		head := p.pending[0]
		if _, done := p.acked[head]; !done {
			break
		}
		delete(p.acked, head)
		p.pending = p.pending[1:]
		commit, found = head, true
	}
	return commit, found
}
