package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRasterizer struct {
	png []byte
	err error
}

func (s *stubRasterizer) Render(context.Context, string, int, int) ([]byte, error) {
	return s.png, s.err
}

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, b []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestSketchDimensions(t *testing.T) {
	out, err := (&Sketch{}).Render(context.Background(), "<html><body><h1>HOLA</h1><p>X</p></body></html>", Width, Height)
	require.NoError(t, err)
	w, h := decodeSize(t, out)
	assert.Equal(t, Width, w)
	assert.Equal(t, Height, h)
}

func TestSketchDrawsText(t *testing.T) {
	s := &Sketch{}
	blank, err := s.Render(context.Background(), "<body></body>", 200, 100)
	require.NoError(t, err)
	text, err := s.Render(context.Background(), "<body>HOLA</body>", 200, 100)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(blank, text))
}

func TestSketchRejectsBadInput(t *testing.T) {
	_, err := (&Sketch{}).Render(context.Background(), "<body></body>", 0, 10)
	var rerr *RasterizationError
	assert.True(t, errors.As(err, &rerr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&Sketch{}).Render(ctx, "<body></body>", 10, 10)
	require.True(t, errors.As(err, &rerr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVisibleText(t *testing.T) {
	doc := `<!DOCTYPE html><html><head><title>T</title><style>body{}</style></head>
<body><h1> BLACK   FRIDAY </h1><script>var x = 1;</script><li>&lt;script&gt;</li><li></li></body></html>`
	lines, err := visibleText(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"BLACK FRIDAY", "<script>"}, lines)
}

func TestThumbnailScalesSource(t *testing.T) {
	th := &Thumbnail{Source: &stubRasterizer{png: solidPNG(t, 100, 125)}, Scale: 0.5}
	out, err := th.Render(context.Background(), "", 100, 125)
	require.NoError(t, err)
	w, h := decodeSize(t, out)
	assert.Equal(t, 50, w)
	assert.Equal(t, 63, h)
}

func TestThumbnailPropagatesSourceError(t *testing.T) {
	boom := &RasterizationError{Err: errors.New("boom")}
	_, err := (&Thumbnail{Source: &stubRasterizer{err: boom}, Scale: 0.5}).Render(context.Background(), "", 10, 10)
	assert.Same(t, boom, err)
}

func TestThumbnailInvalidInput(t *testing.T) {
	_, err := (&Thumbnail{Source: &stubRasterizer{png: []byte("nope")}, Scale: 0.5}).Render(context.Background(), "", 10, 10)
	var rerr *RasterizationError
	assert.True(t, errors.As(err, &rerr))

	_, err = (&Thumbnail{Source: &stubRasterizer{}, Scale: 2}).Render(context.Background(), "", 10, 10)
	assert.True(t, errors.As(err, &rerr))
}

func TestChromeAllocatorOptions(t *testing.T) {
	c := NewChrome(ChromeOptions{ExecPath: "/usr/bin/chromium", NoSandbox: true}, nil)
	opts := c.allocatorOptions(Width, Height)
	assert.Greater(t, len(opts), 4)

	_, err := c.Render(context.Background(), "", 0, 0)
	var rerr *RasterizationError
	assert.True(t, errors.As(err, &rerr))
}

func TestSketchLogsUnloadableFont(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := &Sketch{FontPath: filepath.Join(t.TempDir(), "missing.ttf"), Logger: logger}

	out, err := s.Render(context.Background(), "<body>HOLA</body>", 200, 100)
	require.NoError(t, err)
	w, h := decodeSize(t, out)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, s.FontPath, entry.Data["font_path"])
}
