package pool_test

import (
	"sync"
	"testing"

	"github.com/sabouaram/httptester/errors/pool"
)

func TestPoolOrdering(t *testing.T) {
	p := pool.New()
	p.Add("first", "second", "")
	p.Add("third")

	got := p.List()
	want := []string{"first", "second", "third"}

	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if p.Len() != 3 {
		t.Fatalf("expected len 3, got %d", p.Len())
	}
}

func TestPoolConcurrentAdd(t *testing.T) {
	p := pool.New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Add("entry")
		}()
	}
	wg.Wait()

	if p.Len() != 50 {
		t.Fatalf("expected 50 entries, got %d", p.Len())
	}
}
