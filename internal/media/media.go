// Package media prepares a video's audio track for transcription:
// extraction, compression, duration probing and chunking. Playback of
// the video itself is the browser's job, not ours.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// describes one audio chunk produced by Chunk
type ChunkInfo struct {
	Path      string
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
}

// settings for extracted audio
type AudioOptions struct {
	Format     string // mp3, aac, wav, flac
	SampleRate int    // Hz
	Channels   int    // 1=mono, 2=stereo
	Bitrate    string // e.g. "64k", for lossy formats
}

// defaults tuned for speech transcription
func DefaultAudioOptions() AudioOptions {
	return AudioOptions{
		Format:     "mp3",
		SampleRate: 16000,
		Channels:   1,
		Bitrate:    "64k",
	}
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".mov": true, ".avi": true,
	".webm": true, ".flv": true, ".wmv": true, ".m4v": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".aac": true, ".flac": true,
	".ogg": true, ".m4a": true, ".opus": true, ".wma": true,
}

// IsVideoFile reports whether the path looks like a video file.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsMediaFile reports whether the path looks like audio or video.
func IsMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return videoExtensions[ext] || audioExtensions[ext]
}

// ExtractAudio pulls the audio track out of a media file, transcoding
// it with the given options. Works for audio inputs too, where it acts
// as a compression pass.
func ExtractAudio(ctx context.Context, inputPath, outputPath string, opts AudioOptions) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", inputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	kwargs := ffmpeg.KwArgs{
		"vn": "",              // No video
		"ar": opts.SampleRate, // Sample rate
		"ac": opts.Channels,   // Channels
		"y":  "",              // Overwrite output
	}

	switch opts.Format {
	case "mp3":
		kwargs["acodec"] = "libmp3lame"
		if opts.Bitrate != "" {
			kwargs["b:a"] = opts.Bitrate
		}
	case "aac":
		kwargs["acodec"] = "aac"
		if opts.Bitrate != "" {
			kwargs["b:a"] = opts.Bitrate
		}
	case "flac":
		kwargs["acodec"] = "flac"
	case "wav":
		kwargs["acodec"] = "pcm_s16le"
	default:
		kwargs["acodec"] = "libmp3lame"
		if opts.Bitrate != "" {
			kwargs["b:a"] = opts.Bitrate
		}
	}

	err := ffmpeg.Input(inputPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}

// JSON shape of ffprobe's -show_format output
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration probes a media file's length.
func Duration(path string) (time.Duration, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, fmt.Errorf("file not found: %s", path)
	}

	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe probeOutput
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", probe.Format.Duration, err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// Chunk splits an audio file into pieces of at most chunkDuration so
// they can be transcribed in parallel.
func Chunk(ctx context.Context, audioPath string, chunkDuration time.Duration, outputDir string) ([]ChunkInfo, error) {
	if chunkDuration <= 0 {
		return nil, fmt.Errorf("chunk duration must be positive, got %v", chunkDuration)
	}

	total, err := Duration(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get audio duration: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	ext := filepath.Ext(audioPath)

	var chunks []ChunkInfo
	for i := 0; ; i++ {
		start := time.Duration(i) * chunkDuration
		if start >= total {
			break
		}
		end := start + chunkDuration
		if end > total {
			end = total
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		chunkPath := filepath.Join(outputDir, fmt.Sprintf("%s_chunk_%03d%s", baseName, i, ext))

		err := ffmpeg.Input(audioPath, ffmpeg.KwArgs{"ss": start.Seconds()}).
			Output(chunkPath, ffmpeg.KwArgs{
				"t":      chunkDuration.Seconds(),
				"acodec": "copy",
				"y":      "",
			}).
			OverWriteOutput().
			Run()
		if err != nil {
			return nil, fmt.Errorf("failed to cut chunk %d: %w", i, err)
		}

		chunks = append(chunks, ChunkInfo{
			Path:      chunkPath,
			Index:     i,
			StartTime: start,
			EndTime:   end,
		})
	}

	return chunks, nil
}
