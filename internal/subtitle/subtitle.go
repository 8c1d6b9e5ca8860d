package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
)

// represents a single subtitle cue
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// represents supported interchange formats
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatJSON Format = "json"
)

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format: %s", filepath.Ext(path))
	}
}

// Extension returns the file extension for a format.
func (f Format) Extension() string {
	switch f {
	case FormatVTT:
		return ".vtt"
	case FormatJSON:
		return ".json"
	default:
		return ".srt"
	}
}

// FromCaptions converts editor captions (seconds) to subtitle entries.
func FromCaptions(captions []caption.Caption) []Entry {
	entries := make([]Entry, len(captions))
	for i, c := range captions {
		entries[i] = Entry{
			Index:     i + 1,
			StartTime: secondsToDuration(c.Start),
			EndTime:   secondsToDuration(c.End),
			Text:      c.Text,
		}
	}
	return entries
}

// ToCaptions converts subtitle entries to editor captions with fresh IDs.
func ToCaptions(entries []Entry) []caption.Caption {
	captions := make([]caption.Caption, len(entries))
	for i, e := range entries {
		captions[i] = caption.Caption{
			ID:    caption.NewID(),
			Text:  e.Text,
			Start: e.StartTime.Seconds(),
			End:   e.EndTime.Seconds(),
		}
	}
	return captions
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
