package prepare

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/gift"
)

var transforms = map[string]func() gift.Filter{
	"none":       nil,
	"fliph":      gift.FlipHorizontal,
	"flipv":      gift.FlipVertical,
	"rotate90":   gift.Rotate90,
	"rotate180":  gift.Rotate180,
	"rotate270":  gift.Rotate270,
	"transpose":  gift.Transpose,
	"transverse": gift.Transverse,
}

func transform(logger *slog.Logger, img image.Image, name string) (image.Image, error) {
	filter, ok := transforms[name]
	if !ok {
		return nil, fmt.Errorf("unsupported transform: %q", name)
	}
	if filter == nil {
		return img, nil
	}

	logger.Debug("transforming", "op", name)
	g := gift.New(filter())
	dest := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dest, img)
	return dest, nil
}
