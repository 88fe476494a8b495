package flattree

import (
	"errors"
	"testing"
)

func collectTriples[T any](t *testing.T, items []T) []Triple[T] {
	t.Helper()
	var out []Triple[T]
	for tr, err := range Triples(FromSlice(items)) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, tr)
	}
	return out
}

func TestTriples_OneTriplePerItem(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		items := make([]int, n)
		for i := range items {
			items[i] = i * 10
		}
		got := collectTriples(t, items)
		if len(got) != n {
			t.Fatalf("n=%d: expected %d triples, got %d", n, n, len(got))
		}
		for i, tr := range got {
			if tr.Cur != items[i] {
				t.Errorf("n=%d triple %d: expected cur %d, got %d", n, i, items[i], tr.Cur)
			}
			if (tr.Prev == nil) != (i == 0) {
				t.Errorf("n=%d triple %d: prev nil-ness wrong", n, i)
			}
			if (tr.Next == nil) != (i == n-1) {
				t.Errorf("n=%d triple %d: next nil-ness wrong", n, i)
			}
		}
	}
}

func TestTriples_NeighborValues(t *testing.T) {
	got := collectTriples(t, []string{"a", "b", "c"})

	if got[0].Next == nil || *got[0].Next != "b" {
		t.Errorf("triple 0: expected next %q", "b")
	}
	if got[1].Prev == nil || *got[1].Prev != "a" {
		t.Errorf("triple 1: expected prev %q", "a")
	}
	if got[1].Next == nil || *got[1].Next != "c" {
		t.Errorf("triple 1: expected next %q", "c")
	}
	if got[2].Prev == nil || *got[2].Prev != "b" {
		t.Errorf("triple 2: expected prev %q", "b")
	}
}

func TestTriples_SingleItem(t *testing.T) {
	got := collectTriples(t, []int{7})
	if len(got) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(got))
	}
	if got[0].Prev != nil || got[0].Next != nil {
		t.Error("expected both neighbors absent for single item")
	}
	if got[0].Cur != 7 {
		t.Errorf("expected cur 7, got %d", got[0].Cur)
	}
}

func TestTriples_EarlyStop(t *testing.T) {
	pulled := 0
	src := func(yield func(int, error) bool) {
		for i := 0; i < 100; i++ {
			pulled++
			if !yield(i, nil) {
				return
			}
		}
	}

	seen := 0
	for range Triples(src) {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("expected to see 3 triples, saw %d", seen)
	}
	// One item of lookahead beyond the triples consumed.
	if pulled > 5 {
		t.Errorf("expected at most 5 items pulled, got %d", pulled)
	}
}

func TestTriples_UpstreamErrorPropagated(t *testing.T) {
	boom := errors.New("provider failed")
	src := func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		if !yield(2, nil) {
			return
		}
		yield(0, boom)
	}

	var triples int
	var got error
	for _, err := range Triples(src) {
		if err != nil {
			got = err
			break
		}
		triples++
	}
	if !errors.Is(got, boom) {
		t.Fatalf("expected upstream error, got %v", got)
	}
	// Only the first item's triple is complete before the failure.
	if triples != 1 {
		t.Errorf("expected 1 triple before the error, got %d", triples)
	}
}
