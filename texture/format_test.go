package texture

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

func newNRGBA(w, h int, pix ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range pix {
		img.SetNRGBA(i%w, i/w, c)
	}
	return img
}

func TestToken(t *testing.T) {
	tests := []struct {
		name string
		px   Pixel
		want string
	}{
		{"mixed", Pixel{R: 12, G: 200, B: 7, A: 255}, "Color::new(12, 200, 7)\n"},
		{"black", Pixel{A: 255}, "Color::new(0, 0, 0)\n"},
		{"white", Pixel{R: 255, G: 255, B: 255, A: 255}, "Color::new(255, 255, 255)\n"},
		{"transparent", Pixel{R: 10, G: 20, B: 30}, "Color::new(10, 20, 30)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.px.Token(); got != tt.want {
				t.Errorf("Token() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPixelOfIgnoresAlpha(t *testing.T) {
	opaque := PixelOf(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	transparent := PixelOf(color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	if opaque.Token() != transparent.Token() {
		t.Errorf("tokens differ by alpha: %q vs %q", opaque.Token(), transparent.Token())
	}
}

func TestPixelOfSixteenBit(t *testing.T) {
	px := PixelOf(color.NRGBA64{R: 0xffff, G: 0x0c0c, B: 0, A: 0xffff})
	if px.R != 255 || px.G != 12 || px.B != 0 {
		t.Errorf("unexpected pixel %+v", px)
	}

	want := "Color::new(10, 20, 30)\n"
	for _, a := range []uint16{0xffff, 0x8000, 0x0101, 0} {
		c := color.NRGBA64{R: 0x0a0a, G: 0x1414, B: 0x1e1e, A: a}
		if got := PixelOf(c).Token(); got != want {
			t.Errorf("alpha %#04x: Token() = %q, want %q", a, got, want)
		}
	}
}

func TestFormatTransparentSixteenBit(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	img.SetNRGBA64(0, 0, color.NRGBA64{R: 0x0a0a, G: 0x1414, B: 0x1e1e, A: 0})
	img.SetNRGBA64(1, 0, color.NRGBA64{R: 0x0a0a, G: 0x1414, B: 0x1e1e, A: 0xffff})

	table := Format(img)
	if table[0][0] != table[0][1] {
		t.Errorf("tokens differ by alpha: %q vs %q", table[0][0], table[0][1])
	}
	if table[0][0] != "Color::new(10, 20, 30)\n" {
		t.Errorf("unexpected token %q", table[0][0])
	}
}

func TestFormatShape(t *testing.T) {
	for _, size := range []image.Point{{1, 1}, {3, 2}, {2, 5}, {0, 0}} {
		img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
		table := Format(img)
		if len(table) != size.Y {
			t.Fatalf("%v: got %d rows, want %d", size, len(table), size.Y)
		}
		for i, row := range table {
			if len(row) != size.X {
				t.Errorf("%v: row %d has %d tokens, want %d", size, i, len(row), size.X)
			}
		}
	}
}

func TestFormatRowMajor(t *testing.T) {
	img := newNRGBA(2, 2,
		color.NRGBA{1, 2, 3, 255}, color.NRGBA{4, 5, 6, 255},
		color.NRGBA{7, 8, 9, 255}, color.NRGBA{10, 11, 12, 0},
	)
	want := Table{
		{"Color::new(1, 2, 3)\n", "Color::new(4, 5, 6)\n"},
		{"Color::new(7, 8, 9)\n", "Color::new(10, 11, 12)\n"},
	}
	if got := Format(img); !reflect.DeepEqual(got, want) {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 7, 7, 8))
	img.SetNRGBA(5, 7, color.NRGBA{1, 1, 1, 255})
	img.SetNRGBA(6, 7, color.NRGBA{2, 2, 2, 255})

	table := Format(img)
	if len(table) != 1 || len(table[0]) != 2 {
		t.Fatalf("unexpected shape %q", table)
	}
	if table[0][1] != "Color::new(2, 2, 2)\n" {
		t.Errorf("unexpected token %q", table[0][1])
	}
}

func TestFormatDeterministic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 37)
	}
	if a, b := Format(img), Format(img); !reflect.DeepEqual(a, b) {
		t.Error("Format is not deterministic")
	}
}

func TestPad(t *testing.T) {
	table := Table{{"a"}, {"b"}}
	tests := []struct {
		at   EmptyBlock
		want Table
	}{
		{EmptyNone, Table{{"a"}, {"b"}}},
		{EmptyLeading, Table{{}, {"a"}, {"b"}}},
		{EmptyTrailing, Table{{"a"}, {"b"}, {}}},
	}
	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			if got := Pad(table, tt.at); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Pad() = %q, want %q", got, tt.want)
			}
			if len(table) != 2 {
				t.Errorf("Pad modified its input: %q", table)
			}
		})
	}
}

func TestParseEmptyBlock(t *testing.T) {
	for _, name := range []string{"none", "leading", "trailing"} {
		eb, err := ParseEmptyBlock(name)
		if err != nil {
			t.Fatalf("ParseEmptyBlock(%q): %v", name, err)
		}
		if eb.String() != name {
			t.Errorf("round trip of %q gave %q", name, eb.String())
		}
	}
	if _, err := ParseEmptyBlock("middle"); err == nil {
		t.Error("expected error for unknown placement")
	}
}
