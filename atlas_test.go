package fontatlas

import "testing"

func TestAtlasRunesSorted(t *testing.T) {
	raster := &stubRasterizer{sizes: map[rune][2]int{
		'c': {4, 4}, 'a': {4, 4}, 'b': {4, 4},
	}}
	builder := NewBuilder(raster, WithPageSize(32, 32), WithPadding(Padding{}))

	atlas, err := builder.Build("cab")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := atlas.Runes()
	want := []rune{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("Runes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Runes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAtlasLookupMissing(t *testing.T) {
	raster := &stubRasterizer{sizes: map[rune][2]int{'a': {4, 4}}}
	builder := NewBuilder(raster, WithPageSize(32, 32))

	atlas, err := builder.Build("a")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, ok := atlas.Lookup('z'); ok {
		t.Error("Lookup('z') found an entry for an unpacked rune")
	}
}

func TestAtlasPageSize(t *testing.T) {
	raster := &stubRasterizer{sizes: map[rune][2]int{'a': {4, 4}}}
	builder := NewBuilder(raster, WithPageSize(48, 24))

	atlas, err := builder.Build("a")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if atlas.PageWidth() != 48 || atlas.PageHeight() != 24 {
		t.Errorf("page size = %dx%d, want 48x24", atlas.PageWidth(), atlas.PageHeight())
	}
	page := atlas.Page(0)
	if page.Width() != 48 || page.Height() != 24 {
		t.Errorf("Page(0) size = %dx%d, want 48x24", page.Width(), page.Height())
	}
}
