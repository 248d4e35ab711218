package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"track-recommender/cmd/recsys/cmd/cli"
	"track-recommender/internal/app"
	"track-recommender/internal/app/common"
)

var (
	port            int
	shutdownTimeout time.Duration
)

func init() {
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config or RECSYS_PORT)")
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "grace period for in-flight requests")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and recommendations over HTTP",
	Long: `Serve the catalog and recommendations over HTTP

- REST API under /api/v1, Prometheus metrics at /metrics, docs at /swagger/index.html
- SIGINT or SIGTERM drains in-flight requests before exiting`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}
		if port != 0 {
			cfg.Server.Port = port
		}

		logger, err := common.NewLoggerForEnvironment(cfg.Server.Environment)
		if err != nil {
			return err
		}
		defer logger.Sync()

		srv, cleanup, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx, shutdownTimeout)
	},
}
