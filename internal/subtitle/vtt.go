package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

var (
	vttTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})`,
	)
	vttShortTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// ParseVTT reads WebVTT cues from r. NOTE and STYLE blocks are
// skipped; cue identifiers are optional.
func ParseVTT(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	var entries []Entry
	var current *Entry
	var textLines []string
	lineNum := 0
	headerSeen := false
	nextIndex := 1

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			entries = append(entries, *current)
		}
		current = nil
		textLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)

		if !headerSeen {
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "WEBVTT") {
				headerSeen = true
				continue
			}
			return nil, fmt.Errorf("missing WEBVTT header")
		}

		// skip NOTE and STYLE blocks entirely
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			for scanner.Scan() {
				lineNum++
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if start, end, ok := parseVTTTimestampLine(line); ok {
			// any pending cue identifier line was already consumed
			current = &Entry{Index: nextIndex, StartTime: start, EndTime: end}
			nextIndex++
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
		// otherwise: a cue identifier line, ignored; the timestamp
		// line that follows opens the cue
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT input: %w", err)
	}

	return entries, nil
}

func parseVTTTimestampLine(line string) (time.Duration, time.Duration, bool) {
	if matches := vttTimestampRegex.FindStringSubmatch(line); len(matches) == 9 {
		start, err1 := parseClockTime(matches[1], matches[2], matches[3], matches[4])
		end, err2 := parseClockTime(matches[5], matches[6], matches[7], matches[8])
		if err1 == nil && err2 == nil {
			return start, end, true
		}
	}
	if matches := vttShortTimestampRegex.FindStringSubmatch(line); len(matches) == 7 {
		start, err1 := parseClockTime("00", matches[1], matches[2], matches[3])
		end, err2 := parseClockTime("00", matches[4], matches[5], matches[6])
		if err1 == nil && err2 == nil {
			return start, end, true
		}
	}
	return 0, 0, false
}

// WriteVTT renders the entries as a WebVTT document.
func WriteVTT(w io.Writer, entries []Entry) error {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, entry := range entries {
		// optional cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(entry.StartTime),
			formatVTTTime(entry.EndTime)))

		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
