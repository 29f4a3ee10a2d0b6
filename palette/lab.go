package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab matches colours against a palette by their distance in CIE L*a*b*.
// It implements color.Model. A Lab is not safe for concurrent use.
type Lab struct {
	pal     color.Palette
	entries []colorful.Color
	cache   map[color.NRGBA]int
}

var _ color.Model = &Lab{}

func NewLab(pal color.Palette) *Lab {
	p := &Lab{
		pal:     pal,
		entries: make([]colorful.Color, len(pal)),
		cache:   make(map[color.NRGBA]int),
	}
	for i, c := range pal {
		p.entries[i] = toColorful(color.NRGBAModel.Convert(c).(color.NRGBA))
	}
	return p
}

// Index returns the position of the palette entry nearest to c, ignoring
// alpha. An empty palette always yields 0.
func (p *Lab) Index(c color.Color) int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	if i, ok := p.cache[n]; ok {
		return i
	}

	lc := toColorful(n)
	ret, best := 0, math.MaxFloat64
	for i, e := range p.entries {
		d := lc.DistanceLab(e)
		if d < best {
			ret, best = i, d
			if d == 0 {
				break
			}
		}
	}
	p.cache[n] = ret
	return ret
}

func (p *Lab) Convert(c color.Color) color.Color {
	if len(p.pal) == 0 {
		return c
	}
	return p.pal[p.Index(c)]
}

func toColorful(n color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}
