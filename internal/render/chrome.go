package render

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// ChromeOptions configures the headless browser launched for each render.
type ChromeOptions struct {
	ExecPath  string
	NoSandbox bool
}

// Chrome rasterizes HTML with a headless Chrome. Every Render call starts its
// own browser and tears it down before returning.
type Chrome struct {
	opts   ChromeOptions
	logger logrus.FieldLogger
}

func NewChrome(opts ChromeOptions, logger logrus.FieldLogger) *Chrome {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Chrome{opts: opts, logger: logger}
}

func (c *Chrome) allocatorOptions(width, height int) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", c.opts.NoSandbox),
		chromedp.WindowSize(width, height),
	)
	if c.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.opts.ExecPath))
	}
	return opts
}

func (c *Chrome) Render(ctx context.Context, html string, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, &RasterizationError{Err: errors.New("viewport must be positive")}
	}
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, c.allocatorOptions(width, height)...)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithErrorf(func(format string, args ...any) {
		c.logger.Errorf("chromedp: "+format, args...)
	}))
	defer tabCancel()

	var p []byte
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.CaptureScreenshot(&p),
	)
	if err != nil {
		return nil, &RasterizationError{Err: err}
	}
	return p, nil
}
