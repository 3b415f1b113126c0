package future

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestResolved(t *testing.T) {
	t.Parallel()
	d := Resolved(5)
	if got := d.Await(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestNew_IsLazyAndMemoized(t *testing.T) {
	t.Parallel()
	var runs int32
	d := New(func() int {
		atomic.AddInt32(&runs, 1)
		return 7
	})
	if atomic.LoadInt32(&runs) != 0 {
		t.Fatalf("expected no run before the first Await")
	}
	if d.Await() != 7 || d.Await() != 7 {
		t.Fatalf("expected 7 on every Await")
	}
	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Fatalf("expected exactly one run, got %d", got)
	}
}

func TestGo_ConcurrentAwaiters(t *testing.T) {
	t.Parallel()
	var runs int32
	d := Go(func() int {
		atomic.AddInt32(&runs, 1)
		return 3
	})

	wg := &sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := d.Await(); got != 3 {
				t.Errorf("expected 3, got %d", got)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Fatalf("expected the computation to run once, got %d", got)
	}
}

func TestMap_ComposesInOrder(t *testing.T) {
	t.Parallel()
	var order []string
	mu := &sync.Mutex{}
	note := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}

	d := New(func() int { note("first"); return 2 })
	d2 := Map(d, func(n int) int { note("second"); return n * 10 })

	if got := d2.Await(); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected steps in composition order, got %v", order)
	}
}

func TestZip2(t *testing.T) {
	t.Parallel()
	da := Go(func() int { return 1 })
	db := Go(func() string { return "a" })
	pair := Zip2(da, db).Await()
	if pair.First != 1 || pair.Second != "a" {
		t.Fatalf("expected (1, a), got (%v, %v)", pair.First, pair.Second)
	}
}

func TestValue_NowAndLater(t *testing.T) {
	t.Parallel()
	now := Now(4)
	if !now.Settled() || now.Await() != 4 {
		t.Fatalf("expected a settled immediate value")
	}
	later := Later(Resolved(5))
	if later.Settled() {
		t.Fatalf("expected the deferred variant not to report settled")
	}
	if later.Await() != 5 {
		t.Fatalf("expected 5")
	}
}

func TestValue_DeferNormalizes(t *testing.T) {
	t.Parallel()
	if got := Now(6).Defer().Await(); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	d := Resolved(7)
	if Later(d).Defer() != d {
		t.Fatalf("expected the deferred variant to hand back its own handle")
	}
}
