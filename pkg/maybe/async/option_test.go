package async

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/future"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()
	s := Some(5)
	if !s.IsSome() || s.IsNone() {
		t.Fatalf("expected Some: some=%v, none=%v", s.IsSome(), s.IsNone())
	}
	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Fatalf("expected None: some=%v, none=%v", n.IsSome(), n.IsNone())
	}
}

func TestSomeDeferred(t *testing.T) {
	t.Parallel()
	o := SomeDeferred(future.Go(func() int { return 9 }))
	if !o.Contains(9) {
		t.Fatalf("expected Some(9) once resolved")
	}
}

func TestOptionFrom(t *testing.T) {
	t.Parallel()
	if !OptionFrom[*int](nil).IsNone() {
		t.Fatalf("expected nil source to resolve to None")
	}
	v := 3
	if !OptionFrom(&v).IsSome() {
		t.Fatalf("expected non-nil source to resolve to Some")
	}
	if !OptionFromDeferred(future.Go(func() *int { return nil })).IsNone() {
		t.Fatalf("expected deferred nil source to resolve to None")
	}
}

func TestOptionGo_ContainsErrors(t *testing.T) {
	t.Parallel()
	if got := OptionGo(func() (int, error) { return 4, nil }); !got.Contains(4) {
		t.Fatalf("expected Some(4)")
	}
	if got := OptionGo(func() (int, error) { return 0, errors.New("x") }); !got.IsNone() {
		t.Fatalf("expected a failing thunk to resolve to None")
	}
}

func TestLiftAndAdopt(t *testing.T) {
	t.Parallel()
	if got := Lift(maybe.Some(2)); !got.Contains(2) {
		t.Fatalf("expected lifted Some(2)")
	}
	adopted := AdoptOption(future.Resolved(maybe.Some(8)))
	if got := adopted.Await(); !got.Contains(8) {
		t.Fatalf("expected adopted deferred to pass through")
	}
}

func TestMapOption_Parity(t *testing.T) {
	t.Parallel()
	got := MapOption(Some(5), strconv.Itoa)
	if !got.Contains("5") {
		t.Fatalf("expected Some(\"5\")")
	}
	calls := 0
	n := MapOption(None[int](), func(n int) int { calls++; return n })
	if !n.IsNone() || calls != 0 {
		t.Fatalf("expected None pass-through without invocation, calls=%d", calls)
	}
}

func TestThenOption_ShortCircuitAndSiblings(t *testing.T) {
	t.Parallel()
	calls := 0
	got := ThenOption(
		ThenOption(Some(5), func(int) OptionArg[int] { return OptionNow(maybe.None[int]()) }),
		func(int) OptionArg[int] { calls++; return OptionNow(maybe.Some(99)) },
	)
	if !got.IsNone() || calls != 0 {
		t.Fatalf("expected None with second bind never invoked, calls=%d", calls)
	}

	viaSync := ThenOption(Some(2), func(n int) OptionArg[int] { return OptionNow(maybe.Some(n * 2)) })
	if !viaSync.Contains(4) {
		t.Fatalf("expected the sync sibling to chain")
	}
	viaAsync := ThenOption(Some(2), func(n int) OptionArg[int] { return OptionLater(Some(n * 3)) })
	if !viaAsync.Contains(6) {
		t.Fatalf("expected the async sibling to chain")
	}
}

func TestFilterAndTap(t *testing.T) {
	t.Parallel()
	if got := Some(4).Filter(func(n int) bool { return n%2 == 0 }); !got.Contains(4) {
		t.Fatalf("expected Some(4) to survive")
	}
	if got := Some(3).Filter(func(n int) bool { return n%2 == 0 }); !got.IsNone() {
		t.Fatalf("expected Some(3) to be filtered out")
	}
	seen := 0
	Some(6).Tap(func(v int) { seen = v }).Await()
	if seen != 6 {
		t.Fatalf("expected tap to observe 6 at resolution")
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	if got := Some(1).OrElse(func() OptionArg[int] { return OptionLater(Some(2)) }); !got.Contains(1) {
		t.Fatalf("expected Some(1) to keep itself")
	}
	got := None[int]().OrElse(func() OptionArg[int] { return OptionNow(maybe.Some(2)) })
	if !got.Contains(2) {
		t.Fatalf("expected None to take the alternative")
	}
}

func TestZipOption(t *testing.T) {
	t.Parallel()
	got := ZipOption(Some(1), OptionLater(SomeDeferred(future.Go(func() string { return "a" }))))
	pair := got.Await()
	if !pair.IsSome() || pair.Value().First != 1 || pair.Value().Second != "a" {
		t.Fatalf("expected Some pair (1, a)")
	}
	if !ZipOption(None[int](), OptionNow(maybe.Some(1))).IsNone() {
		t.Fatalf("expected None when the receiver side is None")
	}
}

func TestMatchOption(t *testing.T) {
	t.Parallel()
	got := MatchOption(Some(3),
		func(n int) string { return strconv.Itoa(n) },
		func() string { return "none" })
	if got != "3" {
		t.Fatalf("expected \"3\", got %q", got)
	}
}

func TestSequenceOption_EmptySliceLaw(t *testing.T) {
	t.Parallel()
	got := SequenceOption(None[int]()).UnwrapOr([]int{-1})
	if len(got) != 0 {
		t.Fatalf("expected None to sequence into an empty slice, got %v", got)
	}
}

func TestFlattenShapes(t *testing.T) {
	t.Parallel()
	syncInner := AdoptOption(future.Resolved(maybe.Some(maybe.Some(7))))
	if got := FlattenOption(syncInner); !got.Contains(7) {
		t.Fatalf("expected sync inner to flatten to Some(7)")
	}
	asyncInner := AdoptOption(future.Resolved(maybe.Some(Some(8))))
	if got := FlattenOptionAsync(asyncInner); !got.Contains(8) {
		t.Fatalf("expected async inner to flatten to Some(8)")
	}
	outerNone := AdoptOption(future.Resolved(maybe.None[*Option[int]]()))
	if got := FlattenOptionAsync(outerNone); !got.IsNone() {
		t.Fatalf("expected outer None to stay None")
	}
}

func TestToResult_AcrossDeferredBoundary(t *testing.T) {
	t.Parallel()
	missing := errors.New("missing")
	if got := Some(5).ToResult(missing); !got.Contains(5) {
		t.Fatalf("expected Ok(5)")
	}
	got := None[int]().ToResult(missing).Await()
	if !got.IsErr() || !errors.Is(got.Err(), missing) {
		t.Fatalf("expected Err(missing), got: %v", got.Err())
	}
}

func TestGuards(t *testing.T) {
	t.Parallel()
	if !IsOption(Some(1)) || IsOption(maybe.Some(1)) || IsOption(42) {
		t.Fatalf("expected only async options to be recognized")
	}
	if !IsResult(Ok(1)) || IsResult(Some(1)) {
		t.Fatalf("expected only async results to be recognized")
	}
}
