package atomic_test

import (
	"sync"
	"testing"

	libatm "github.com/sabouaram/httptester/atomic"
)

func TestValueDefaultLoad(t *testing.T) {
	v := libatm.NewValue[string]()
	v.SetDefaultLoad("closed")
	if got := v.Load(); got != "closed" {
		t.Fatalf("expected default load %q, got %q", "closed", got)
	}
	v.Store("alive")
	if got := v.Load(); got != "alive" {
		t.Fatalf("expected %q, got %q", "alive", got)
	}
}

func TestValueSwap(t *testing.T) {
	v := libatm.NewValue[int]()
	v.Store(1)
	old := v.Swap(2)
	if old != 1 {
		t.Fatalf("expected old value 1, got %d", old)
	}
	if v.Load() != 2 {
		t.Fatalf("expected 2, got %d", v.Load())
	}
}

func TestValueConcurrentAccess(t *testing.T) {
	v := libatm.NewValue[int]()
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v.Store(n)
		}(i)
	}
	wg.Wait()
	if v.Load() == 0 {
		t.Fatal("expected a non-zero value after concurrent stores")
	}
}
