package texture

import (
	"fmt"
	"image/color"
)

// Pixel is a single 8 bit per channel sample as stored in the source file,
// without alpha premultiplication.
type Pixel struct {
	R, G, B, A uint8
}

// PixelOf converts any colour to its non-premultiplied 8 bit form, so fully
// transparent pixels keep their red, green and blue values.
func PixelOf(c color.Color) Pixel {
	switch c := c.(type) {
	case color.NRGBA:
		return Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
	case color.NRGBA64:
		return Pixel{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
	}
	// premultiplied models carry no colour once alpha is zero
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Token renders the pixel as a Color::new constructor call terminated by a
// newline. Alpha is not part of the token.
func (p Pixel) Token() string {
	return fmt.Sprintf("Color::new(%d, %d, %d)\n", p.R, p.G, p.B)
}
