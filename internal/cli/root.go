package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vidcap",
	Short: "Browser-based video caption editor",
	Long: `Vidcap is a local video captioning tool. It serves a browser-based
editor for adding timestamped captions to a video, and ships offline
commands for converting, generating and translating caption files.

Caption documents are JSON arrays of {text, start, end} records with
times in seconds; SRT and WebVTT are supported for interchange.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
		_ = godotenv.Load() // best-effort: load .env if present
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default: user config dir)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
