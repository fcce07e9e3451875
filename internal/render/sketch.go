package render

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sketch draws the visible text of a document as centred lines on a plain
// canvas. It needs no browser, which makes it useful for local development and
// for hosts without Chrome.
type Sketch struct {
	// FontPath is an optional TrueType font. The built-in bitmap face is used
	// when it is empty or cannot be loaded.
	FontPath string
	FontSize float64
	Logger   logrus.FieldLogger
}

func (s *Sketch) Render(ctx context.Context, doc string, width, height int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RasterizationError{Err: err}
	}
	if width <= 0 || height <= 0 {
		return nil, &RasterizationError{Err: errors.New("viewport must be positive")}
	}
	lines, err := visibleText(doc)
	if err != nil {
		return nil, &RasterizationError{Err: err}
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(0.07, 0.07, 0.09)
	dc.Clear()

	if s.FontPath != "" {
		size := s.FontSize
		if size <= 0 {
			size = 48
		}
		if err := dc.LoadFontFace(s.FontPath, size); err != nil {
			s.logger().WithError(err).WithField("font_path", s.FontPath).Warn("sketch font not loaded, using built-in face")
		}
	}

	lineHeight := dc.FontHeight() * 1.8
	y := (float64(height) - lineHeight*float64(len(lines))) / 2
	if y < lineHeight {
		y = lineHeight
	}
	dc.SetRGB(1, 1, 1)
	for _, line := range lines {
		if y > float64(height) {
			break
		}
		dc.DrawStringWrapped(line, float64(width)/2, y, 0.5, 0.5, float64(width)*0.8, 1.2, gg.AlignCenter)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, &RasterizationError{Err: err}
	}
	return buf.Bytes(), nil
}

func (s *Sketch) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

// visibleText returns the non-empty text runs of the document body in order.
func visibleText(doc string) ([]string, error) {
	z := html.NewTokenizer(strings.NewReader(doc))
	var lines []string
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return lines, nil
		case html.StartTagToken:
			if hidden(z) {
				skip++
			}
		case html.EndTagToken:
			if hidden(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := strings.Join(strings.Fields(string(z.Text())), " ")
			if text != "" {
				lines = append(lines, text)
			}
		}
	}
}

func hidden(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch atom.Lookup(name) {
	case atom.Head, atom.Script, atom.Style, atom.Template, atom.Noscript:
		return true
	}
	return false
}
