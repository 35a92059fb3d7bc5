package export

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"yolo-transcript/internal/app"
	"yolo-transcript/internal/app/export"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

const pageSize = 100

var (
	userID         string
	status         string
	outputFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "user id whose transcriptions are exported")
	Cmd.Flags().StringVarP(&status, "status", "s", "", "only export rows with this status")
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("user")
	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's transcriptions to excel",
	Long: `Export a user's transcriptions to excel

- Pages through every matching row, newest first`,
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

		rows, err := collect(context.Background(), db, repository.TranscriptionFilter{
			UserID: userID,
			Status: model.TranscriptionStatus(status),
		})
		if err != nil {
			return err
		}

		if err := export.SaveXLSX(rows, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, %d rows, exported file path: %v\n", len(rows), outputFilePath)
		return nil
	},
}

func collect(ctx context.Context, dao repository.TranscriptionDAO, filter repository.TranscriptionFilter) ([]model.Transcription, error) {
	var all []model.Transcription
	filter.Limit = pageSize
	for {
		page, total, err := dao.ListTranscriptions(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize || len(all) >= total {
			return all, nil
		}
		filter.Offset += pageSize
	}
}
