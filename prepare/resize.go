package prepare

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

var scalers = map[string]draw.Interpolator{
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
	"catmullrom":     draw.CatmullRom,
}

// resize scales img so it fits width x height. A zero dimension keeps the
// source size on that axis. When cropping, the source is trimmed around its
// centre to the destination aspect ratio; otherwise the destination shrinks
// to the source aspect ratio, or is padded with fillColor when one is given.
func resize(logger *slog.Logger, img image.Image, scaler draw.Interpolator, width, height int, crop bool, fillColor color.Color) (image.Image, error) {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	destWidth := float64(width)
	if destWidth == 0 {
		destWidth = srcWidth
	}

	destHeight := float64(height)
	if destHeight == 0 {
		destHeight = srcHeight
	}

	if (srcWidth == destWidth) && (srcHeight == destHeight) {
		return img, nil
	}

	destSize := image.Rect(0, 0, int(destWidth), int(destHeight))
	destBounds := destSize

	srcAR := srcWidth / srcHeight
	destAR := destWidth / destHeight
	var fill bool
	switch {
	case crop && srcAR < destAR:
		dh := int(math.Round((srcHeight - srcWidth/destAR) / 2))
		srcBounds.Min.Y += dh
		srcBounds.Max.Y -= dh
	case crop && srcAR > destAR:
		dw := int(math.Round((srcWidth - srcHeight*destAR) / 2))
		srcBounds.Min.X += dw
		srcBounds.Max.X -= dw
	case !crop && srcAR < destAR:
		dw := destHeight * srcAR
		if fillColor == nil {
			destSize.Max.X = int(math.Round(dw))
			destBounds.Max.X = destSize.Max.X
		} else if fill = destWidth > dw; fill {
			idw := int(math.Round((destWidth - dw) / 2))
			destBounds.Min.X += idw
			destBounds.Max.X -= idw
		}
	case !crop && srcAR > destAR:
		dh := destWidth / srcAR
		if fillColor == nil {
			destSize.Max.Y = int(math.Round(dh))
			destBounds.Max.Y = destSize.Max.Y
		} else if fill = destHeight > dh; fill {
			idh := int(math.Round((destHeight - dh) / 2))
			destBounds.Min.Y += idh
			destBounds.Max.Y -= idh
		}
	}

	logger.Debug("resizing", "width", destSize.Dx(), "height", destSize.Dy())
	dest := image.NewNRGBA(destSize)
	if fill {
		draw.Draw(dest, destSize, image.NewUniform(fillColor), destSize.Min, draw.Src)
	}
	scaler.Scale(dest, destBounds, img, srcBounds, draw.Over, nil)

	return dest, nil
}
