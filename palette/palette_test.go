package palette

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadNamed(t *testing.T) {
	sizes := map[string]int{
		"bw":      2,
		"gray16":  16,
		"vga16":   16,
		"websafe": 216,
		"plan9":   256,
	}
	for name, size := range sizes {
		t.Run(name, func(t *testing.T) {
			pal, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if len(pal) != size {
				t.Errorf("got %d colors, want %d", len(pal), size)
			}
		})
	}
}

func TestLoadNamedIsCopy(t *testing.T) {
	pal, err := Load("websafe")
	if err != nil {
		t.Fatal(err)
	}
	pal[0] = color.White

	again, err := Load("websafe")
	if err != nil {
		t.Fatal(err)
	}
	if again[0] == color.White {
		t.Error("built-in palette was modified through a loaded copy")
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "doom.pal"))
	if err == nil || !strings.Contains(err.Error(), "vga16") {
		t.Errorf("expected unknown palette error listing built-ins, got %v", err)
	}
}

func TestRIFFFile(t *testing.T) {
	first := color.Palette{
		color.RGBA{0x10, 0x20, 0x30, 0xff},
		color.RGBA{0xff, 0x00, 0x80, 0xff},
	}
	second := color.Palette{color.RGBA{0x01, 0x02, 0x03, 0xff}}

	var buf bytes.Buffer
	if err := WriteRIFF(&buf, first, second); err != nil {
		t.Fatalf("WriteRIFF: %v", err)
	}
	if got := buf.Len(); got != 12+(12+2*4)+(12+1*4) {
		t.Errorf("document is %d bytes", got)
	}

	name := filepath.Join(t.TempDir(), "bricks.pal")
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	pal, err := Load(name)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := append(append(color.Palette{}, first...), second...)
	if len(pal) != len(want) {
		t.Fatalf("got %d colors, want %d", len(pal), len(want))
	}
	for i := range want {
		if pal[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, pal[i], want[i])
		}
	}
}

func TestReadRIFFRejectsOtherForms(t *testing.T) {
	doc := []byte("RIFF\x04\x00\x00\x00WAVE")
	if _, err := ReadRIFF(bytes.NewReader(doc)); err == nil {
		t.Error("expected error for WAVE form")
	}
}

func TestReadRIFFBadVersion(t *testing.T) {
	doc := []byte("RIFF\x10\x00\x00\x00PAL data\x04\x00\x00\x00\x00\x01\x00\x00")
	if _, err := ReadRIFF(bytes.NewReader(doc)); err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("expected version error, got %v", err)
	}
}

func TestLabNearest(t *testing.T) {
	pal, err := Load("vga16")
	if err != nil {
		t.Fatal(err)
	}
	lab := NewLab(pal)

	tests := []struct {
		in   color.Color
		want color.Color
	}{
		{color.RGBA{0x00, 0x00, 0x00, 0xff}, pal[0]},
		{color.RGBA{0xf0, 0xf0, 0xf0, 0xff}, pal[15]},
		{color.RGBA{0x00, 0xb0, 0x00, 0xff}, pal[2]},
		{color.NRGBA{0xaa, 0x00, 0x00, 0x00}, pal[4]},
	}
	for _, tt := range tests {
		if got := lab.Convert(tt.in); got != tt.want {
			t.Errorf("Convert(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLabEmpty(t *testing.T) {
	c := color.RGBA{1, 2, 3, 255}
	if got := NewLab(nil).Convert(c); got != c {
		t.Errorf("empty palette changed color to %v", got)
	}
}
