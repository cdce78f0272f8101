package status

import (
	"strings"
	"sync"
	"testing"
)

func TestAtomicFloatConcurrentSet(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %v", f.Get())
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Set(12.5)
		}()
	}
	wg.Wait()

	if f.Get() != 12.5 {
		t.Errorf("Expected 12.5, got %v", f.Get())
	}
}

func TestAtomicStringTruncatesOnRuneBoundary(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected empty zero value, got %q", s.Load())
	}

	long := strings.Repeat("a", MaxStringLen-1) + "é"
	s.Store(long)
	if got := s.Load(); got != strings.Repeat("a", MaxStringLen-1) {
		t.Errorf("Expected split rune dropped, got %q", got)
	}
}

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	a := m.Get("carry")
	b := m.Get("carry")
	if a != b {
		t.Error("Expected the same cell for repeated Get")
	}
	if m.Count() != 1 {
		t.Errorf("Expected one cell, got %d", m.Count())
	}

	m.Get("alpha")
	var keys []string
	m.Range(func(k string, _ *AtomicFloat) { keys = append(keys, k) })
	if len(keys) != 2 || keys[0] != "alpha" || keys[1] != "carry" {
		t.Errorf("Expected sorted keys [alpha carry], got %v", keys)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("hole.strokes").Store(3)
	r.Floats.Get("shot.carry").Set(12.5)
	r.Strings.Get("turn.stage").Store("aiming")
	r.Bools.Get("ball.in_flight").Store(true)

	if r.TotalCount() != 4 {
		t.Fatalf("Expected 4 metrics, got %d", r.TotalCount())
	}

	snap := r.Snapshot()
	if snap["hole.strokes"] != int64(3) {
		t.Errorf("Expected strokes 3, got %v", snap["hole.strokes"])
	}
	if snap["shot.carry"] != 12.5 {
		t.Errorf("Expected carry 12.5, got %v", snap["shot.carry"])
	}
	if snap["turn.stage"] != "aiming" {
		t.Errorf("Expected stage aiming, got %v", snap["turn.stage"])
	}
	if snap["ball.in_flight"] != true {
		t.Errorf("Expected in_flight true, got %v", snap["ball.in_flight"])
	}
}
