package reconcile

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"yolo-transcript/internal/app"
	"yolo-transcript/internal/app/progress"
	"yolo-transcript/internal/config"
)

var (
	limit        int
	parallel     int
	showProgress bool
)

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", config.DefaultReconcileBatch, "maximum number of processing jobs to check")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "concurrent provider checks")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "draw a progress bar even when not attached to a terminal")
}

// Cmd represents the reconcile command
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Re-check jobs still marked processing",
	Long: `Re-check jobs still marked processing.

- Scheduled status checks live in memory and are lost on restart
- Each processing row is checked once against the provider
- Completed rows trigger the same follow-up work as the poller`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg, logger, err := app.Bootstrap(false, verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		pm := progress.NewManager(progress.Config{Enabled: progress.ShouldShowProgress(showProgress)})
		reconciler, cleanup, err := app.InitializeReconciler(cfg, logger, pm)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result, err := reconciler.Run(ctx, limit, parallel)
		if err != nil {
			return err
		}
		fmt.Printf("scanned %d: %d completed, %d failed, %d still processing, %d errors\n",
			result.Scanned, result.Completed, result.Failed, result.Pending, result.Errors)
		return nil
	},
}
