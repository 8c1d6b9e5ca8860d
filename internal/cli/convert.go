package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [caption_file]",
	Short: "Convert a caption file between JSON, SRT and WebVTT",
	Long: `Convert a caption file to another format. Formats are picked from
file extensions; use --format to override the output format.

Examples:
  vidcap convert captions.srt -o captions.json
  vidcap convert captions.json -o captions.vtt
  vidcap convert captions.vtt --format srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "", "Output format (json, srt, vtt); default from output extension")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")

	var format subtitle.Format
	switch {
	case formatStr != "":
		switch strings.ToLower(formatStr) {
		case "json":
			format = subtitle.FormatJSON
		case "srt":
			format = subtitle.FormatSRT
		case "vtt":
			format = subtitle.FormatVTT
		default:
			return fmt.Errorf("unsupported format %q: use json, srt or vtt", formatStr)
		}
	case outputPath != "":
		var err error
		format, err = subtitle.FormatForPath(outputPath)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --output or --format is required")
	}

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + format.Extension()
	}
	if outputPath == inputPath {
		return fmt.Errorf("output %s would overwrite the input", outputPath)
	}

	captions, err := subtitle.ReadCaptionFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read captions: %w", err)
	}

	if err := subtitle.WriteCaptionFile(outputPath, format, captions); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions converted successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(captions))

	return nil
}
