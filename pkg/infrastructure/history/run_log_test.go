package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/dto"
)

func TestAppendAndGet(t *testing.T) {
	log := NewRunLog()

	if err := log.Append(&dto.BatchResult{RunID: "run-1"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	batch, err := log.Get("run-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if batch.RunID != "run-1" {
		t.Errorf("expected run-1, got %s", batch.RunID)
	}

	if _, err := log.Get("run-2"); err == nil {
		t.Error("expected an error for an unknown run")
	}
	if err := log.Append(&dto.BatchResult{RunID: "run-1"}); err == nil {
		t.Error("expected an error for a duplicate run ID")
	}
	if err := log.Append(&dto.BatchResult{}); err == nil {
		t.Error("expected an error for a missing run ID")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	log := NewRunLogWithCapacity(2)

	for i := 1; i <= 3; i++ {
		err := log.Append(&dto.BatchResult{RunID: fmt.Sprintf("run-%d", i)})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	if log.Len() != 2 {
		t.Fatalf("expected 2 retained runs, got %d", log.Len())
	}
	if _, err := log.Get("run-1"); err == nil {
		t.Error("expected the oldest run to be evicted")
	}

	recent := log.Recent(10)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent runs, got %d", len(recent))
	}
	if recent[0].RunID != "run-3" || recent[1].RunID != "run-2" {
		t.Errorf("expected newest first, got %s, %s", recent[0].RunID, recent[1].RunID)
	}
}

func TestConcurrentAppend(t *testing.T) {
	log := NewRunLogWithCapacity(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = log.Append(&dto.BatchResult{RunID: fmt.Sprintf("run-%d", n)})
		}(i)
	}
	wg.Wait()

	if log.Len() != 50 {
		t.Errorf("expected 50 runs, got %d", log.Len())
	}
}
