package history

import (
	"fmt"
	"sync"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/dto"
)

// DefaultCapacity bounds how many batch runs are retained when no explicit
// capacity is given.
const DefaultCapacity = 100

// RunLog is an in-memory, append-only record of completed batch runs. It
// retains the most recent runs up to its capacity and is safe for concurrent
// use.
type RunLog struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	runs     map[string]*dto.BatchResult
}

// NewRunLog creates a run log with the default capacity
func NewRunLog() *RunLog {
	return NewRunLogWithCapacity(DefaultCapacity)
}

// NewRunLogWithCapacity creates a run log retaining at most capacity runs
func NewRunLogWithCapacity(capacity int) *RunLog {
	if capacity < 1 {
		capacity = 1
	}
	return &RunLog{
		capacity: capacity,
		runs:     make(map[string]*dto.BatchResult),
	}
}

// Append records a completed batch run, evicting the oldest run when the
// capacity is exceeded.
func (l *RunLog) Append(batch *dto.BatchResult) error {
	if batch == nil || batch.RunID == "" {
		return fmt.Errorf("batch run must have a run ID")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.runs[batch.RunID]; exists {
		return fmt.Errorf("run %s already recorded", batch.RunID)
	}

	l.order = append(l.order, batch.RunID)
	l.runs[batch.RunID] = batch

	if len(l.order) > l.capacity {
		evicted := l.order[0]
		l.order = l.order[1:]
		delete(l.runs, evicted)
	}

	return nil
}

// Get returns the recorded run with the given ID
func (l *RunLog) Get(runID string) (*dto.BatchResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	batch, exists := l.runs[runID]
	if !exists {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	return batch, nil
}

// Recent returns up to n runs, newest first
func (l *RunLog) Recent(n int) []*dto.BatchResult {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n < 0 || n > len(l.order) {
		n = len(l.order)
	}

	recent := make([]*dto.BatchResult, 0, n)
	for i := len(l.order) - 1; i >= len(l.order)-n; i-- {
		recent = append(recent, l.runs[l.order[i]])
	}
	return recent
}

// Len returns the number of retained runs
func (l *RunLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}
