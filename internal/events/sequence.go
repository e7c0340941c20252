package events

import (
	"context"
	"fmt"
	"sync"
)

// Sequences hands out monotonically increasing sequence numbers per partition
// key. Counters are process-local and reset on restart; consumers must treat
// the sequence as ordering within a single producer run, not a durable
// global order.
type Sequences struct {
	mu   sync.Mutex
	last map[string]int64
}

func NewSequences() *Sequences {
	return &Sequences{last: make(map[string]int64)}
}

func (s *Sequences) NextSequence(ctx context.Context, partitionKey string) (int64, error) {
	if partitionKey == "" {
		return 0, fmt.Errorf("partition key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last[partitionKey]++
	return s.last[partitionKey], nil
}
