package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/config"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/server"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/session"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/subtitle"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser-based caption editor",
	Long: `Start the caption editor and open it in a browser.

The editor plays a video from a URL, overlays captions that match the
current playback time, and lets you add, edit and delete timestamped
captions. Caption lists can be exported to and imported from JSON.

Examples:
  vidcap serve
  vidcap serve --addr 127.0.0.1:9000
  vidcap serve --video https://example.com/talk.mp4
  vidcap serve --captions existing.srt`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default from config)")
	serveCmd.Flags().String("video", "", "Video URL to load at startup")
	serveCmd.Flags().
		String("captions", "", "Caption file (json, srt, vtt) to load at startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.ListenAddr
	}

	sess := session.New()

	if videoURL, _ := cmd.Flags().GetString("video"); videoURL != "" {
		sess.SetVideoURL(videoURL)
	}

	if captionPath, _ := cmd.Flags().GetString("captions"); captionPath != "" {
		captions, err := subtitle.ReadCaptionFile(captionPath)
		if err != nil {
			return fmt.Errorf("failed to load captions: %w", err)
		}
		data, err := caption.Export(captions)
		if err != nil {
			return err
		}
		if err := sess.ImportJSON(data); err != nil {
			return fmt.Errorf("failed to load captions: %w", err)
		}
		logger.Infow("Captions loaded", "path", captionPath, "count", len(captions))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(addr, sess, logger)
	return srv.ListenAndServe(ctx)
}
