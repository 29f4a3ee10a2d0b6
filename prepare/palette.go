package prepare

import (
	"image"
	"image/color"
	"log/slog"

	"texparse/palette"

	"golang.org/x/image/draw"
)

// repalette maps every pixel to a colour from pal. Without dithering the
// nearest entry in Lab space is used and the source alpha is kept.
func repalette(logger *slog.Logger, img image.Image, pal color.Palette, dither bool) image.Image {
	logger.Debug("applying palette", "colors", len(pal), "dither", dither)
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())

	if dither {
		dest := image.NewPaletted(dr, pal)
		draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
		return dest
	}

	lab := palette.NewLab(pal)
	dest := image.NewNRGBA(dr)
	for y := range dr.Dy() {
		for x := range dr.Dx() {
			src := color.NRGBAModel.Convert(img.At(sr.Min.X+x, sr.Min.Y+y)).(color.NRGBA)
			c := color.NRGBAModel.Convert(lab.Convert(src)).(color.NRGBA)
			c.A = src.A
			dest.SetNRGBA(x, y, c)
		}
	}
	return dest
}
