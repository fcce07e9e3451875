package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bannergen/internal/banner"
	"bannergen/internal/render"
	"bannergen/internal/server"
	"bannergen/internal/templates"
)

type renderOptions struct {
	configPath string
	format     string
	out        string
	set        []string
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one banner to an HTML or PNG file",
		Example: "  bannergen render --set template=authority --set brand=ACME --format png --out banner.png\n" +
			"  bannergen render --set headline=HOLA --format html --out -",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			logger, err := server.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger.SetOutput(cmd.ErrOrStderr())
			query, err := parseSet(opts.set)
			if err != nil {
				return err
			}

			out, err := renderBanner(cmd.Context(), templates.Dir(cfg.TemplatesDir), server.NewRasterizer(cfg, logger), query, opts.format, cfg)
			if err != nil {
				return err
			}
			if opts.out == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(opts.out, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", opts.out, len(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&opts.format, "format", "png", "Output format: html|png")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "banner.png", "Output file, or - for stdout")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Banner field as key=value (same keys as the HTTP query)")

	return cmd
}

func parseSet(pairs []string) (url.Values, error) {
	q := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q (expected key=value)", pair)
		}
		q.Set(key, value)
	}
	return q, nil
}

func renderBanner(ctx context.Context, loader templates.Loader, rasterizer render.Rasterizer, query url.Values, format string, cfg server.Config) ([]byte, error) {
	file, data := banner.Resolve(query)
	tpl, err := loader.Load(file)
	if err != nil {
		return nil, err
	}
	html := banner.Fill(tpl, data)

	switch strings.ToLower(format) {
	case "html":
		return []byte(html), nil
	case "png":
		if cfg.RenderTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.RenderTimeout)
			defer cancel()
		}
		return rasterizer.Render(ctx, html, render.Width, render.Height)
	default:
		return nil, fmt.Errorf("unsupported format %q (expected html|png)", format)
	}
}
