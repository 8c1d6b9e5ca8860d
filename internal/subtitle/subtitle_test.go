package subtitle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
)

func TestParseSRT(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	entries, err := ParseSRT(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].StartTime != 1*time.Second {
		t.Errorf("entry 0: expected start 1s, got %v", entries[0].StartTime)
	}
	if entries[0].EndTime != 4*time.Second {
		t.Errorf("entry 0: expected end 4s, got %v", entries[0].EndTime)
	}
	if entries[0].Text != "Hello, world!" {
		t.Errorf("entry 0: expected 'Hello, world!', got %q", entries[0].Text)
	}

	expectedText := "This is a test.\nWith multiple lines."
	if entries[1].Text != expectedText {
		t.Errorf("entry 1: expected %q, got %q", expectedText, entries[1].Text)
	}

	if entries[2].StartTime != 10*time.Second {
		t.Errorf("entry 2: expected start 10s, got %v", entries[2].StartTime)
	}
}

func TestParseSRTWithBOM(t *testing.T) {
	content := "\uFEFF1\n00:00:01,000 --> 00:00:02,000\nHi.\n"
	entries, err := ParseSRT(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestParseVTT(t *testing.T) {
	content := `WEBVTT

NOTE this block should be skipped
still part of the note

1
00:00:01.000 --> 00:00:04.000
Hello, world!

00:00:05.500 --> 00:00:08.200
No cue identifier.

05:30.000 --> 05:32.000
Short timestamps.
`
	entries, err := ParseVTT(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseVTT failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].StartTime != 1*time.Second {
		t.Errorf("entry 0: expected start 1s, got %v", entries[0].StartTime)
	}
	if entries[1].Text != "No cue identifier." {
		t.Errorf("entry 1: expected cue without identifier, got %q", entries[1].Text)
	}
	if entries[2].StartTime != 5*time.Minute+30*time.Second {
		t.Errorf("entry 2: expected start 5m30s, got %v", entries[2].StartTime)
	}
}

func TestParseVTTMissingHeader(t *testing.T) {
	content := "1\n00:00:01.000 --> 00:00:02.000\nHi.\n"
	if _, err := ParseVTT(strings.NewReader(content)); err == nil {
		t.Fatal("expected error for missing WEBVTT header")
	}
}

func TestWriteSRTRoundTrip(t *testing.T) {
	entries := []Entry{
		{Index: 1, StartTime: time.Second, EndTime: 2500 * time.Millisecond, Text: "First."},
		{Index: 2, StartTime: 3 * time.Second, EndTime: 5 * time.Second, Text: "Second\nline."},
	}

	var buf bytes.Buffer
	if err := WriteSRT(&buf, entries); err != nil {
		t.Fatalf("WriteSRT failed: %v", err)
	}

	parsed, err := ParseSRT(&buf)
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(parsed) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(parsed))
	}
	for i := range entries {
		if parsed[i].StartTime != entries[i].StartTime ||
			parsed[i].EndTime != entries[i].EndTime ||
			parsed[i].Text != entries[i].Text {
			t.Errorf("entry %d mismatch: got %+v, want %+v", i, parsed[i], entries[i])
		}
	}
}

func TestWriteVTTRoundTrip(t *testing.T) {
	entries := []Entry{
		{Index: 1, StartTime: time.Second, EndTime: 2 * time.Second, Text: "Hello."},
	}

	var buf bytes.Buffer
	if err := WriteVTT(&buf, entries); err != nil {
		t.Fatalf("WriteVTT failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "WEBVTT\n") {
		t.Errorf("missing WEBVTT header: %q", buf.String())
	}

	parsed, err := ParseVTT(&buf)
	if err != nil {
		t.Fatalf("ParseVTT failed: %v", err)
	}
	if len(parsed) != 1 || parsed[0].Text != "Hello." {
		t.Errorf("unexpected round trip result: %+v", parsed)
	}
}

func TestCaptionConversion(t *testing.T) {
	captions := []caption.Caption{
		{ID: "x", Text: "one", Start: 0, End: 2.5},
		{ID: "y", Text: "two", Start: 3, End: 4},
	}

	entries := FromCaptions(captions)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Index != 1 || entries[1].Index != 2 {
		t.Errorf("indices not 1-based: %d, %d", entries[0].Index, entries[1].Index)
	}
	if entries[0].EndTime != 2500*time.Millisecond {
		t.Errorf("expected 2.5s end, got %v", entries[0].EndTime)
	}

	back := ToCaptions(entries)
	for i := range captions {
		if back[i].Text != captions[i].Text ||
			back[i].Start != captions[i].Start ||
			back[i].End != captions[i].End {
			t.Errorf("entry %d mismatch: got %+v, want %+v", i, back[i], captions[i])
		}
		if back[i].ID == "" || back[i].ID == captions[i].ID {
			t.Errorf("entry %d: expected a fresh ID, got %q", i, back[i].ID)
		}
	}
}

func TestReadWriteCaptionFile(t *testing.T) {
	captions := []caption.Caption{
		{ID: "a", Text: "Hello.", Start: 1, End: 2},
		{ID: "b", Text: "World.", Start: 3, End: 4},
	}

	tmpDir := t.TempDir()

	for _, format := range []Format{FormatJSON, FormatSRT, FormatVTT} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(tmpDir, "captions"+format.Extension())
			if err := WriteCaptionFile(path, format, captions); err != nil {
				t.Fatalf("WriteCaptionFile failed: %v", err)
			}

			loaded, err := ReadCaptionFile(path)
			if err != nil {
				t.Fatalf("ReadCaptionFile failed: %v", err)
			}
			if len(loaded) != 2 {
				t.Fatalf("expected 2 captions, got %d", len(loaded))
			}
			if loaded[0].Text != "Hello." || loaded[0].Start != 1 || loaded[0].End != 2 {
				t.Errorf("unexpected first caption: %+v", loaded[0])
			}
		})
	}
}

func TestReadCaptionFileUnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "captions.txt")
	if err := os.WriteFile(path, []byte("hi"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := ReadCaptionFile(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
