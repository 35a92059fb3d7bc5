package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yolo-transcript/internal/app"
	"yolo-transcript/internal/app/repository/migrate"
)

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg, logger, err := app.Bootstrap(false, verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		db, cleanup, err := app.InitializeDatabase(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		applied, err := migrate.Run(context.Background(), db.DB(), logger)
		if err != nil {
			logger.Error("migration failed", zap.Error(err))
			return err
		}
		fmt.Printf("applied %d migration(s)\n", applied)
		return nil
	},
}
