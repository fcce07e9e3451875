package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// Thumbnail renders at full size through Source and scales the screenshot
// down by Scale, keeping the aspect ratio.
type Thumbnail struct {
	Source Rasterizer
	Scale  float64
}

func (t *Thumbnail) Render(ctx context.Context, html string, width, height int) ([]byte, error) {
	if t.Scale <= 0 || t.Scale > 1 {
		return nil, &RasterizationError{Err: fmt.Errorf("invalid thumbnail scale %v", t.Scale)}
	}
	full, err := t.Source.Render(ctx, html, width, height)
	if err != nil {
		return nil, err
	}
	out, err := Scale(full, t.Scale)
	if err != nil {
		return nil, &RasterizationError{Err: err}
	}
	return out, nil
}

// Scale decodes a PNG, resizes it by factor and encodes it again.
func Scale(pngBytes []byte, factor float64) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("png decode: %w", err)
	}
	b := src.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 || h < 1 {
		return nil, errors.New("thumbnail would be empty")
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
