// Package prepare adjusts a decoded texture before it is turned into tokens:
// orientation, size and colour depth.
package prepare

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"texparse/palette"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Options is embedded in every command that converts images.
type Options struct {
	Transform string `help:"Orientation change applied first" enum:"none,fliph,flipv,rotate90,rotate180,rotate270,transpose,transverse" default:"none" group:"transform"`
	Resize    bool   `help:"Resize image" default:"false" group:"resize"`
	Width     int    `help:"Max width" group:"resize"`
	Height    int    `help:"Max height" group:"resize"`
	Scaler    string `help:"Resampling used when resizing; nearest keeps the source colors" enum:"nearest,approxbilinear,bilinear,catmullrom" default:"nearest" group:"resize"`
	Crop      bool   `help:"Crop image to maintain requested aspect ratio" default:"false" group:"resize"`
	Fill      string `help:"If given and not cropping, fill background with this color (#RGB or #RRGGBB) to keep the destination aspect ratio" group:"resize"`
	Palette   string `help:"Palette name (bw, gray16, vga16, websafe, plan9) or PAL file in RIFF format to reduce colors to" group:"palette"`
	Dither    bool   `help:"Apply Floyd-Steinberg dithering when reducing colors" default:"false" group:"palette"`

	FillColor color.Color   `kong:"-"`
	colors    color.Palette `kong:"-"`
}

// Validate checks option consistency and resolves the fill colour and palette.
func (o *Options) Validate() error {
	if _, ok := transforms[o.Transform]; !ok && o.Transform != "" {
		return fmt.Errorf("unsupported transform: %q", o.Transform)
	}

	if o.Resize {
		switch {
		case o.Width < 0:
			return fmt.Errorf("invalid resize width: %d", o.Width)
		case o.Height < 0:
			return fmt.Errorf("invalid resize height: %d", o.Height)
		case (o.Width == 0) && (o.Height == 0):
			return fmt.Errorf("no resize dimensions given")
		}
		if _, ok := scalers[o.Scaler]; !ok && o.Scaler != "" {
			return fmt.Errorf("unsupported scaler: %q", o.Scaler)
		}
	}

	o.FillColor = nil
	if (!o.Crop) && (o.Fill != "") {
		c, err := parseFill(o.Fill)
		if err != nil {
			return err
		}
		o.FillColor = c
	}

	o.colors = nil
	if o.Palette != "" {
		pal, err := palette.Load(o.Palette)
		if err != nil {
			return err
		}
		o.colors = pal
	}

	return nil
}

// Apply runs the enabled steps in order: transform, resize, palette. With no
// step enabled img is returned untouched.
func (o *Options) Apply(logger *slog.Logger, img image.Image) (image.Image, error) {
	var err error
	if o.Transform != "" && o.Transform != "none" {
		if img, err = transform(logger, img, o.Transform); err != nil {
			return nil, fmt.Errorf("could not transform image: %w", err)
		}
	}

	if o.Resize {
		scaler, ok := scalers[o.Scaler]
		if !ok {
			scaler = scalers["nearest"]
		}
		if img, err = resize(logger, img, scaler, o.Width, o.Height, o.Crop, o.FillColor); err != nil {
			return nil, fmt.Errorf("could not resize image: %w", err)
		}
	}

	if o.Palette != "" {
		pal := o.colors
		if pal == nil {
			if pal, err = palette.Load(o.Palette); err != nil {
				return nil, err
			}
		}
		img = repalette(logger.With("palette", o.Palette), img, pal, o.Dither)
	}

	return img, nil
}

func parseFill(s string) (color.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid fill color %q, should be #RGB or #RRGGBB: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
