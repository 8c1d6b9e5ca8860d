package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/config"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/media"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/subtitle"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/transcribe"
)

var generateCmd = &cobra.Command{
	Use:   "generate [media_file]",
	Short: "Generate captions for an audio or video file",
	Long: `Generate captions for the specified audio or video file using AI transcription.

The command accepts both audio files (mp3, wav, aac, etc.) and video files (mp4, mkv, etc.).
For video files, audio is automatically extracted before transcription.

The audio is split into chunks (default 1 minute) and transcribed in parallel.
Generated captions can be output as JSON, SRT or WebVTT, ready for loading
into the browser editor with 'vidcap serve --captions'.

Examples:
  vidcap generate video.mp4
  vidcap generate audio.mp3 --format vtt
  vidcap generate video.mp4 --api-key YOUR_KEY --chunk-duration 2
  vidcap generate podcast.mp3 -f json -d 1 --concurrency 5`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY / OPENAI_API_KEY env var)")
	generateCmd.Flags().
		String("provider", "", "Transcription provider (gemini, openai)")
	generateCmd.Flags().
		IntP("chunk-duration", "d", 0, "Chunk duration in minutes for splitting audio")
	generateCmd.Flags().
		StringP("format", "f", "", "Output caption format (json, srt, vtt)")
	generateCmd.Flags().
		Int("concurrency", 0, "Number of parallel transcription workers")
	generateCmd.Flags().
		String("model", "", "Model to use for transcription")
	generateCmd.Flags().
		String("language", "", "Source language of the audio (default: auto-detect)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := cmd.Context()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !media.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(mediaPath))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	providerStr, _ := cmd.Flags().GetString("provider")
	chunkDuration, _ := cmd.Flags().GetInt("chunk-duration")
	formatStr, _ := cmd.Flags().GetString("format")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	model, _ := cmd.Flags().GetString("model")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	if providerStr == "" {
		providerStr = cfg.Transcribe.Provider
	}
	if chunkDuration <= 0 {
		chunkDuration = cfg.Transcribe.ChunkMinutes
	}
	if concurrency <= 0 {
		concurrency = cfg.Transcribe.Concurrency
	}
	if model == "" {
		model = cfg.Transcribe.Model
	}
	if formatStr == "" {
		formatStr = cfg.SubtitleFormat
	}

	var provider transcribe.Provider
	switch strings.ToLower(providerStr) {
	case "gemini":
		provider = transcribe.ProviderGemini
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	case "openai":
		provider = transcribe.ProviderOpenAI
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported provider %q: use gemini or openai", providerStr)
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required: use --api-key flag or set the provider's environment variable")
	}

	var format subtitle.Format
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

	if outputPath == "" {
		baseName := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = baseName + format.Extension()
	}

	logger.Infow("Starting caption generation",
		"input", mediaPath,
		"output", outputPath,
		"format", formatStr,
		"provider", providerStr,
		"chunk_duration", chunkDuration,
		"concurrency", concurrency,
	)

	tempDir, err := os.MkdirTemp("", "vidcap-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	audioPath := filepath.Join(tempDir, "audio.mp3")
	audioOpts := media.DefaultAudioOptions()

	if media.IsVideoFile(mediaPath) {
		logger.Infow("Extracting audio from video")
	} else {
		logger.Infow("Compressing audio for transcription")
	}
	if err := media.ExtractAudio(ctx, mediaPath, audioPath, audioOpts); err != nil {
		return fmt.Errorf("failed to prepare audio: %w", err)
	}

	duration, err := media.Duration(audioPath)
	if err != nil {
		return fmt.Errorf("failed to get audio duration: %w", err)
	}

	logger.Infow("Audio prepared",
		"duration", duration.String(),
	)

	chunkDir := filepath.Join(tempDir, "chunks")
	chunkDur := time.Duration(chunkDuration) * time.Minute

	logger.Infow("Splitting audio into chunks",
		"chunk_duration", chunkDur.String(),
	)

	chunks, err := media.Chunk(ctx, audioPath, chunkDur, chunkDir)
	if err != nil {
		return fmt.Errorf("failed to split audio: %w", err)
	}

	logger.Infow("Created audio chunks",
		"count", len(chunks),
	)

	transcribeOpts := transcribe.Options{
		Language: language,
		Model:    model,
	}

	transcriber, err := transcribe.Factory(ctx, provider, apiKey, transcribeOpts)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	logger.Infow("Transcribing audio",
		"concurrency", concurrency,
	)

	var result *transcribe.Result
	if ct, ok := transcriber.(transcribe.ConcurrentTranscriber); ok {
		result, err = ct.TranscribeChunks(ctx, chunks, concurrency)
	} else {
		result, err = transcriber.Transcribe(ctx, audioPath)
	}
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	logger.Infow("Transcription complete",
		"segments", len(result.Segments),
	)

	captions := caption.NewBuilder().Build(result.Segments)

	if err := subtitle.WriteCaptionFile(outputPath, format, captions); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions generated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(captions))
	fmt.Printf("  Duration: %s\n", duration.String())

	return nil
}
