package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"yolo-transcript/cmd/yolo/cmd/export"
	"yolo-transcript/cmd/yolo/cmd/migrate"
	"yolo-transcript/cmd/yolo/cmd/reconcile"
	"yolo-transcript/cmd/yolo/cmd/serve"
	"yolo-transcript/cmd/yolo/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yolo",
	Short: "Backend for the Yolo Transcript service",
	Long: `Backend for the Yolo Transcript service.
- serve runs the HTTP API and the status poller
- migrate applies database migrations
- reconcile re-checks jobs left processing after a restart
- export writes a user's transcriptions to Excel`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(reconcile.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
