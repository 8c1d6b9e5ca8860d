package subtitle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
)

// ReadCaptionFile loads captions from a JSON, SRT or VTT file,
// dispatching on the file extension.
func ReadCaptionFile(path string) ([]caption.Caption, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch format {
	case FormatJSON:
		return caption.Import(data)
	case FormatSRT:
		entries, err := ParseSRT(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return ToCaptions(entries), nil
	case FormatVTT:
		entries, err := ParseVTT(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return ToCaptions(entries), nil
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", format)
	}
}

// WriteCaptionFile writes captions in the given format, creating
// parent directories as needed.
func WriteCaptionFile(path string, format Format, captions []caption.Caption) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		data, err := caption.Export(captions)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case FormatSRT:
		if err := WriteSRT(&buf, FromCaptions(captions)); err != nil {
			return err
		}
	case FormatVTT:
		if err := WriteVTT(&buf, FromCaptions(captions)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported subtitle format: %s", format)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
