package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yolo-transcript/internal/app"
	"yolo-transcript/internal/app/repository/migrate"
)

var migrateOnStart bool

func init() {
	Cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending database migrations before serving")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API and the transcription status poller.

- Reads configuration from the environment and an optional .env file
- Stops accepting requests on SIGINT or SIGTERM and drains pending checks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg, logger, err := app.Bootstrap(true, verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		application, cleanup, err := app.InitializeApplication(cfg, logger)
		if err != nil {
			logger.Error("failed to initialize application", zap.Error(err))
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = application.DB.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Error("database unreachable", zap.Error(err))
			return err
		}

		if migrateOnStart {
			applied, err := migrate.Run(ctx, application.DB.DB(), logger)
			if err != nil {
				return err
			}
			logger.Info("migrations applied", zap.Int("count", applied))
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- application.Server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := application.Server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("stopping status poller", zap.Int("pending", application.Poller.Pending()))
		return nil
	},
}
