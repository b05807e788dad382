package staff

import "testing"

type marker struct {
	x, y float64
	line int
}

type fakeSurface struct {
	live    map[*marker]bool
	added   []*marker
	removed int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{live: make(map[*marker]bool)}
}

func (s *fakeSurface) AddMarker(x, y float64, line int) Marker {
	m := &marker{x: x, y: y, line: line}
	s.live[m] = true
	s.added = append(s.added, m)
	return m
}

func (s *fakeSurface) RemoveMarker(m Marker) {
	delete(s.live, m.(*marker))
	s.removed++
}

func testConfig() Config {
	return Config{
		StartX:  90,
		Spacing: 30,
		MaxX:    740,
		LineY:   []float64{70, 65, 60, 55, 50, 45, 40, 35, 30},
		Keys:    map[string]int{"a": 0, "s": 1, "d": 2, "f": 3, "g": 4, "h": 5, "j": 6, "k": 7},
	}
}

func TestPlaceAdvancesCursor(t *testing.T) {
	surf := newFakeSurface()
	s := New(testConfig(), surf)

	if !s.Place("a") || !s.Place("K") {
		t.Fatal("Place returned false for mapped keys")
	}

	if len(surf.added) != 2 {
		t.Fatalf("added %d markers, want 2", len(surf.added))
	}
	if m := surf.added[0]; m.x != 90 || m.y != 70 || m.line != 0 {
		t.Errorf("first marker = %+v", *m)
	}
	if m := surf.added[1]; m.x != 120 || m.y != 35 || m.line != 7 {
		t.Errorf("second marker = %+v", *m)
	}
	if s.Cursor() != 150 || s.Len() != 2 {
		t.Errorf("cursor = %g, len = %d", s.Cursor(), s.Len())
	}
}

func TestPlaceUnmappedKeyIsNoop(t *testing.T) {
	surf := newFakeSurface()
	s := New(testConfig(), surf)

	if s.Place("z") {
		t.Error("Place(z) = true")
	}
	if len(surf.added) != 0 || s.Cursor() != 90 {
		t.Error("unmapped key changed the staff")
	}
}

func TestWrapClearsOnceBeforePlacing(t *testing.T) {
	surf := newFakeSurface()
	s := New(testConfig(), surf)

	// markers at 90, 120, ..., 720 leave the cursor at 750
	for i := 0; i < 22; i++ {
		s.Place("d")
	}
	if s.Clears() != 0 || s.Len() != 22 {
		t.Fatalf("clears = %d, len = %d before the wrap", s.Clears(), s.Len())
	}
	if s.Cursor() <= 740 {
		t.Fatalf("cursor = %g, expected past the maximum", s.Cursor())
	}

	s.Place("f")

	if s.Clears() != 1 {
		t.Errorf("clears = %d, want 1", s.Clears())
	}
	if s.Len() != 1 || len(surf.live) != 1 {
		t.Errorf("markers after wrap = %d (surface %d), want 1", s.Len(), len(surf.live))
	}
	if surf.removed != 22 {
		t.Errorf("removed = %d, want 22", surf.removed)
	}
	if m := surf.added[len(surf.added)-1]; m.x != 90 {
		t.Errorf("first marker after wrap at x = %g, want 90", m.x)
	}
}

func TestClear(t *testing.T) {
	surf := newFakeSurface()
	s := New(testConfig(), surf)
	s.Place("a")
	s.Place("s")

	s.Clear()

	if s.Len() != 0 || len(surf.live) != 0 || s.Cursor() != 90 {
		t.Errorf("after Clear: len=%d live=%d cursor=%g", s.Len(), len(surf.live), s.Cursor())
	}
}

func TestNilSurface(t *testing.T) {
	s := New(testConfig(), nil)
	s.Place("a")
	s.Clear()
	if s.Len() != 0 {
		t.Error("expected empty staff")
	}
}
