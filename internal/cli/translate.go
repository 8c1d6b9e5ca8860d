package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/config"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/subtitle"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [caption_file]",
	Short: "Translate captions to another language using AI",
	Long: `Translate an existing caption file to another language using AI.
Timings and ordering are preserved; only the text is translated.

Supports JSON, SRT and WebVTT input; the output keeps the input format
unless --output names a file with a different extension.

Examples:
  vidcap translate captions.json --target-language japanese
  vidcap translate video.srt -t spanish -l english -o translated.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("language", "l", "", "Source language of the captions (default: auto-detect)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "Anthropic API key (or set ANTHROPIC_API_KEY env var)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (uses a sensible default)")
	translateCmd.Flags().
		Int("batch-size", 0, "Number of caption entries per API request")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	captionPath := args[0]
	ctx := cmd.Context()

	targetLang, _ := cmd.Flags().GetString("target-language")
	inputLang, _ := cmd.Flags().GetString("language")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(captionPath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", captionPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if model == "" {
		model = cfg.Translate.Model
	}
	if batchSize <= 0 {
		batchSize = cfg.Translate.BatchSize
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required: use --api-key flag or set ANTHROPIC_API_KEY environment variable")
	}

	inputFormat, err := subtitle.FormatForPath(captionPath)
	if err != nil {
		return err
	}

	format := inputFormat
	if outputPath == "" {
		baseName := strings.TrimSuffix(captionPath, filepath.Ext(captionPath))
		outputPath = fmt.Sprintf("%s.%s%s", baseName, targetLang, format.Extension())
	} else {
		format, err = subtitle.FormatForPath(outputPath)
		if err != nil {
			return err
		}
	}

	logger.Infow("Starting caption translation",
		"input", captionPath,
		"output", outputPath,
		"target_language", targetLang,
		"input_language", inputLang,
		"model", model,
	)

	captions, err := subtitle.ReadCaptionFile(captionPath)
	if err != nil {
		return fmt.Errorf("failed to read captions: %w", err)
	}
	if len(captions) == 0 {
		return fmt.Errorf("caption file contains no entries")
	}

	logger.Infow("Parsed caption file",
		"entries", len(captions),
		"format", string(inputFormat),
	)

	opts := translate.Options{
		InputLanguage:  inputLang,
		TargetLanguage: targetLang,
		Model:          model,
		BatchSize:      batchSize,
	}

	translator, err := translate.NewAnthropicTranslator(ctx, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Infow("Translating captions",
		"items", len(captions),
		"batch_size", batchSize,
	)

	translated, err := translate.Captions(ctx, translator, captions)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	logger.Infow("Writing output file")
	if err := subtitle.WriteCaptionFile(outputPath, format, translated); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions translated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(translated))
	fmt.Printf("  Target language: %s\n", targetLang)

	return nil
}
