package life

import (
	"testing"

	"planar/pkg/grid"
)

// place sets the given logical cells alive on an empty Life.
func place(t *testing.T, l *Life, cells ...grid.Point) {
	t.Helper()
	lo := cells[0]
	hi := cells[0]
	for _, c := range cells {
		lo = grid.Pt(min(lo.X, c.X), min(lo.Y, c.Y))
		hi = grid.Pt(max(hi.X, c.X), max(hi.Y, c.Y))
	}
	patch := make([][]uint8, hi.X-lo.X+1)
	for x := range patch {
		patch[x] = make([]uint8, hi.Y-lo.Y+1)
	}
	for _, c := range cells {
		patch[c.X-lo.X][c.Y-lo.Y] = 1
	}
	if err := l.Plane().Place(patch, lo); err != nil {
		t.Fatalf("place: %v", err)
	}
}

func alive(l *Life) map[grid.Point]bool {
	p := l.Plane()
	out := map[grid.Point]bool{}
	for x := p.XStart(); x <= p.XEnd(); x++ {
		for y := p.YStart(); y <= p.YEnd(); y++ {
			if v, _ := p.Get(x, y); v == 1 {
				out[grid.Pt(x, y)] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, l *Life, want ...grid.Point) {
	t.Helper()
	got := alive(l)
	if len(got) != len(want) {
		t.Fatalf("generation %d: %d live cells %v, expected %v", l.Generation(), len(got), got, want)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("generation %d: cell %v dead, expected alive (live: %v)", l.Generation(), c, got)
		}
	}
}

func step(t *testing.T, l *Life, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := l.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(DefaultConfig())
	place(t, life, grid.Pt(2, 1), grid.Pt(2, 2), grid.Pt(2, 3))

	step(t, life, 1)
	expectAlive(t, life, grid.Pt(1, 2), grid.Pt(2, 2), grid.Pt(3, 2))

	step(t, life, 1)
	expectAlive(t, life, grid.Pt(2, 1), grid.Pt(2, 2), grid.Pt(2, 3))
}

func TestGliderTravelsIntoNegativeSpace(t *testing.T) {
	life := New(DefaultConfig())
	// heads towards -x, -y
	place(t, life, grid.Pt(-1, 0), grid.Pt(-2, -1), grid.Pt(0, -2), grid.Pt(-1, -2), grid.Pt(-2, -2))

	step(t, life, 8)
	expectAlive(t, life, grid.Pt(-3, -2), grid.Pt(-4, -3), grid.Pt(-2, -4), grid.Pt(-3, -4), grid.Pt(-4, -4))

	p := life.Plane()
	if p.XStart() > -4 || p.YStart() > -4 {
		t.Fatalf("plane did not grow into negative space: x from %d, y from %d", p.XStart(), p.YStart())
	}
	if p.XEnd() > -1 || p.YEnd() > -1 {
		t.Fatalf("empty space behind the glider was not trimmed: x to %d, y to %d", p.XEnd(), p.YEnd())
	}
}

func TestGliderTravelsIntoPositiveSpace(t *testing.T) {
	life := New(DefaultConfig())
	place(t, life, grid.Pt(1, 0), grid.Pt(2, 1), grid.Pt(0, 2), grid.Pt(1, 2), grid.Pt(2, 2))

	step(t, life, 4)
	expectAlive(t, life, grid.Pt(2, 1), grid.Pt(3, 2), grid.Pt(1, 3), grid.Pt(2, 3), grid.Pt(3, 3))
	if life.Plane().XStart() > 0 {
		t.Fatalf("coordinates shifted: XStart %d", life.Plane().XStart())
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 12

	a, b := New(cfg), New(cfg)
	if err := a.Reset(5); err != nil {
		t.Fatal(err)
	}
	if err := b.Reset(5); err != nil {
		t.Fatal(err)
	}
	pa, pb := a.Plane(), b.Plane()
	if pa.XStart() != -8 || pa.YStart() != -6 || pa.XEnd() != 7 || pa.YEnd() != 5 {
		t.Fatalf("soup bounds x %d..%d y %d..%d", pa.XStart(), pa.XEnd(), pa.YStart(), pa.YEnd())
	}
	for x := pa.XStart(); x <= pa.XEnd(); x++ {
		for y := pa.YStart(); y <= pa.YEnd(); y++ {
			va, _ := pa.Get(x, y)
			vb, _ := pb.Get(x, y)
			if va != vb {
				t.Fatalf("cell (%d,%d) differs for the same seed", x, y)
			}
		}
	}

	step(t, a, 3)
	if err := a.Reset(5); err != nil {
		t.Fatal(err)
	}
	if a.Generation() != 0 || a.Plane().Size() != pb.Size() {
		t.Fatalf("reset left generation %d size %v", a.Generation(), a.Plane().Size())
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "-3", "density": "x", "maxw": "20"})
	if c.Width != 10 || c.Height != 64 || c.Density != 3 || c.MaxWidth != 20 || c.MaxHeight != 512 {
		t.Fatalf("unexpected config %+v", c)
	}
}
