package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0xff}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFrameClampsStates(t *testing.T) {
	buf := Frame(nil, []uint8{0, 2, 9}, DefaultPalette)
	if len(buf) != 12 {
		t.Fatalf("len = %d, want 12", len(buf))
	}
	if !slices.Equal(buf[4:8], buf[8:12]) {
		t.Fatalf("state 9 should clamp to the last colour, got %v", buf)
	}
	if buf[3] != 0xff || buf[0] != 0 {
		t.Fatalf("state 0 should be opaque black, got %v", buf[:4])
	}

	reused := Frame(buf, []uint8{1}, DefaultPalette)
	if &reused[0] != &buf[0] {
		t.Fatal("buffer with enough capacity was reallocated")
	}

	binary := Frame(nil, []uint8{2, 0}, nil)
	if !slices.Equal(binary, []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0xff}) {
		t.Fatalf("no palette should render white on black, got %v", binary)
	}
}
