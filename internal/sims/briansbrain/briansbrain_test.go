package briansbrain

import (
	"testing"

	"planar/pkg/grid"
)

func TestPairFiresBothSides(t *testing.T) {
	b := New(DefaultConfig())
	if err := b.Plane().Place([][]uint8{{stateOn}, {stateOn}}, grid.Point{}); err != nil {
		t.Fatal(err)
	}
	if err := b.Step(); err != nil {
		t.Fatal(err)
	}

	p := b.Plane()
	want := map[grid.Point]uint8{
		grid.Pt(0, 0): stateDying, grid.Pt(1, 0): stateDying,
		grid.Pt(0, -1): stateOn, grid.Pt(1, -1): stateOn,
		grid.Pt(0, 1): stateOn, grid.Pt(1, 1): stateOn,
	}
	for x := p.XStart(); x <= p.XEnd(); x++ {
		for y := p.YStart(); y <= p.YEnd(); y++ {
			got, err := p.Get(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got != want[grid.Pt(x, y)] {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want[grid.Pt(x, y)])
			}
		}
	}
	if p.YStart() > -1 {
		t.Fatalf("plane did not grow upwards, YStart %d", p.YStart())
	}
}

func TestGrowthStopsAtLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWidth, cfg.MaxHeight = 10, 10
	b := New(cfg)
	if err := b.Reset(1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		if err := b.Step(); err != nil {
			t.Fatal(err)
		}
		if s := b.Plane().Size(); s.X > 48 || s.Y > 48 {
			t.Fatalf("step %d: plane %v grew past the soup and limit", i, s)
		}
	}
}
