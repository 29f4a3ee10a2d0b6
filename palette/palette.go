package palette

import (
	"fmt"
	"image/color"
	stdpalette "image/color/palette"
	"log/slog"
	"os"
	"slices"
	"strings"
)

var named = map[string]func() color.Palette{
	"bw": func() color.Palette {
		return color.Palette{color.Black, color.White}
	},
	"gray16": func() color.Palette {
		pal := make(color.Palette, 16)
		for i := range pal {
			pal[i] = color.Gray{Y: uint8(i * 0x11)}
		}
		return pal
	},
	"vga16": func() color.Palette {
		return color.Palette{
			color.RGBA{0x00, 0x00, 0x00, 0xff}, color.RGBA{0x00, 0x00, 0xaa, 0xff},
			color.RGBA{0x00, 0xaa, 0x00, 0xff}, color.RGBA{0x00, 0xaa, 0xaa, 0xff},
			color.RGBA{0xaa, 0x00, 0x00, 0xff}, color.RGBA{0xaa, 0x00, 0xaa, 0xff},
			color.RGBA{0xaa, 0x55, 0x00, 0xff}, color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
			color.RGBA{0x55, 0x55, 0x55, 0xff}, color.RGBA{0x55, 0x55, 0xff, 0xff},
			color.RGBA{0x55, 0xff, 0x55, 0xff}, color.RGBA{0x55, 0xff, 0xff, 0xff},
			color.RGBA{0xff, 0x55, 0x55, 0xff}, color.RGBA{0xff, 0x55, 0xff, 0xff},
			color.RGBA{0xff, 0xff, 0x55, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff},
		}
	},
	"websafe": func() color.Palette {
		return slices.Clone(stdpalette.WebSafe)
	},
	"plan9": func() color.Palette {
		return slices.Clone(stdpalette.Plan9)
	},
}

// Names lists the built-in palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load returns the built-in palette called name, or otherwise reads name as a
// RIFF PAL file and merges all palettes it contains.
func Load(name string) (color.Palette, error) {
	if fn, ok := named[strings.ToLower(name)]; ok {
		return fn(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q (built-in: %s): %w", name, strings.Join(Names(), ", "), err)
	}
	defer func() {
		if close_err := f.Close(); close_err != nil {
			slog.Error("could not close palette file", "name", name, "error", close_err)
		}
	}()

	pals, err := ReadRIFF(f)
	if err != nil {
		return nil, fmt.Errorf("could not read palette file %q: %w", name, err)
	}

	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette file %q holds no colors", name)
	}
	return res, nil
}
