// Package render turns filled banner HTML into PNG images.
package render

import (
	"context"
	"fmt"
)

// Banner canvas size in CSS pixels.
const (
	Width  = 1080
	Height = 1350
)

// Rasterizer renders an HTML document to PNG bytes at the given viewport size.
type Rasterizer interface {
	Render(ctx context.Context, html string, width, height int) ([]byte, error)
}

// RasterizationError wraps any failure to produce a screenshot.
type RasterizationError struct {
	Err error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("unable render png: %v", e.Err)
}

func (e *RasterizationError) Unwrap() error { return e.Err }
