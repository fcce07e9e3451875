package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bannergen/internal/server"
)

var signalNotifyContext = signal.NotifyContext

func newServeCmd(version string) *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the banner HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger, err := server.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger.SetOutput(cmd.ErrOrStderr())

			srv, err := server.New(cfg, logger, version)
			if err != nil {
				return err
			}

			ctx, stop := signalNotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	cmd.Flags().IntVar(&port, "port", server.DefaultPort, "Port to listen on (overrides PORT and the config file)")

	return cmd
}
