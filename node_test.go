package fontatlas

import (
	"errors"
	"reflect"
	"testing"
)

func rectsOverlap(a, b Rect) bool {
	return a.Left < b.Right() && b.Left < a.Right() &&
		a.Top < b.Bottom() && b.Top < a.Bottom()
}

func rectContains(outer, inner Rect) bool {
	return inner.Left >= outer.Left && inner.Top >= outer.Top &&
		inner.Right() <= outer.Right() && inner.Bottom() <= outer.Bottom()
}

func TestPackTreeExactFit(t *testing.T) {
	tree := NewPackTree(NewRect(0, 0, 32, 32))

	placed, err := tree.Insert(NewRect(0, 0, 32, 32))
	if err != nil {
		t.Fatalf("Insert exact fit: %v", err)
	}
	if placed != NewRect(0, 0, 32, 32) {
		t.Errorf("Insert exact fit placed at %v, want root rectangle", placed)
	}

	// The root leaf is now occupied; anything else must fail.
	if _, err := tree.Insert(NewRect(0, 0, 1, 1)); !errors.Is(err, ErrNodeFull) {
		t.Errorf("Insert into occupied tree: err = %v, want ErrNodeFull", err)
	}
}

func TestPackTreeDoesNotFit(t *testing.T) {
	tree := NewPackTree(NewRect(0, 0, 16, 16))

	tests := []Rect{
		NewRect(0, 0, 17, 16),
		NewRect(0, 0, 16, 17),
		NewRect(0, 0, 100, 100),
	}
	for _, req := range tests {
		if _, err := tree.Insert(req); !errors.Is(err, ErrDoesNotFit) {
			t.Errorf("Insert(%v): err = %v, want ErrDoesNotFit", req, err)
		}
	}
}

// TestPackTreeTieBreak pins the split orientation on equal width and
// height slack: the tie resolves to the horizontal cut, so a second
// equal-sized rectangle lands to the right of the first, not below it.
func TestPackTreeTieBreak(t *testing.T) {
	tree := NewPackTree(NewRect(0, 0, 64, 64))

	first, err := tree.Insert(NewRect(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if first != NewRect(0, 0, 10, 10) {
		t.Errorf("first placed at %v, want (0,0 10x10)", first)
	}

	second, err := tree.Insert(NewRect(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if second != NewRect(0, 10, 10, 10) {
		t.Errorf("second placed at %v, want (0,10 10x10): tie must cut horizontally", second)
	}

	// The horizontal cut leaves a 64x54 region below the strip, which
	// still holds a 50x50 rectangle.
	third, err := tree.Insert(NewRect(0, 0, 50, 50))
	if err != nil {
		t.Fatalf("third insert: %v", err)
	}
	if third != NewRect(10, 0, 50, 50) {
		t.Errorf("third placed at %v, want (10,0 50x50)", third)
	}
}

func TestPackTreeNoOverlap(t *testing.T) {
	region := NewRect(0, 0, 128, 128)
	tree := NewPackTree(region)

	requests := []Rect{
		NewRect(0, 0, 40, 30),
		NewRect(0, 0, 25, 25),
		NewRect(0, 0, 60, 20),
		NewRect(0, 0, 10, 50),
		NewRect(0, 0, 33, 17),
		NewRect(0, 0, 8, 8),
		NewRect(0, 0, 45, 45),
		NewRect(0, 0, 12, 31),
	}

	var placed []Rect
	for _, req := range requests {
		got, err := tree.Insert(req)
		if err != nil {
			t.Fatalf("Insert(%v): %v", req, err)
		}
		if !got.SameSize(req) {
			t.Errorf("Insert(%v) placed %v with different size", req, got)
		}
		if !rectContains(region, got) {
			t.Errorf("placement %v escapes region %v", got, region)
		}
		for _, prev := range placed {
			if rectsOverlap(got, prev) {
				t.Errorf("placement %v overlaps earlier placement %v", got, prev)
			}
		}
		placed = append(placed, got)
	}
}

func TestPackTreeDeterminism(t *testing.T) {
	requests := []Rect{
		NewRect(0, 0, 30, 12),
		NewRect(0, 0, 12, 30),
		NewRect(0, 0, 19, 19),
		NewRect(0, 0, 5, 40),
		NewRect(0, 0, 40, 5),
		NewRect(0, 0, 22, 9),
	}

	run := func() []Rect {
		tree := NewPackTree(NewRect(0, 0, 100, 100))
		out := make([]Rect, 0, len(requests))
		for _, req := range requests {
			got, err := tree.Insert(req)
			if err != nil {
				t.Fatalf("Insert(%v): %v", req, err)
			}
			out = append(out, got)
		}
		return out
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("identical insertion sequences diverged:\n  %v\n  %v", a, b)
	}
}

func TestPackTreeZeroSize(t *testing.T) {
	tree := NewPackTree(NewRect(0, 0, 16, 16))

	placed, err := tree.Insert(NewRect(0, 0, 0, 0))
	if err != nil {
		t.Fatalf("Insert zero-size: %v", err)
	}
	if !placed.Empty() {
		t.Errorf("zero-size insert placed %v, want empty rectangle", placed)
	}

	// The degenerate placement must not block real insertions.
	if _, err := tree.Insert(NewRect(0, 0, 8, 8)); err != nil {
		t.Errorf("insert after zero-size placement: %v", err)
	}
}

func TestPackTreeFillsExactly(t *testing.T) {
	// Four quadrants fill a square completely.
	tree := NewPackTree(NewRect(0, 0, 20, 20))
	for i := 0; i < 4; i++ {
		if _, err := tree.Insert(NewRect(0, 0, 10, 10)); err != nil {
			t.Fatalf("quadrant %d: %v", i, err)
		}
	}
	if _, err := tree.Insert(NewRect(0, 0, 1, 1)); err == nil {
		t.Error("insert into a fully packed tree succeeded")
	}
}

func BenchmarkPackTreeInsert(b *testing.B) {
	sizes := []Rect{
		NewRect(0, 0, 12, 16),
		NewRect(0, 0, 9, 14),
		NewRect(0, 0, 15, 16),
		NewRect(0, 0, 7, 11),
		NewRect(0, 0, 11, 15),
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tree := NewPackTree(NewRect(0, 0, 1024, 1024))
		for j := 0; j < 200; j++ {
			if _, err := tree.Insert(sizes[j%len(sizes)]); err != nil {
				b.Fatalf("insert %d: %v", j, err)
			}
		}
	}
}
