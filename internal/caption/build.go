package caption

import (
	"strings"
	"unicode/utf8"
)

// represents a timed piece of transcribed speech, times in seconds
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Builder converts transcription segments into display-sized captions.
type Builder struct {
	MaxCharsPerCaption int
	MaxDuration        float64 // seconds
}

func NewBuilder() *Builder {
	return &Builder{
		MaxCharsPerCaption: 84, // two standard 42-char subtitle lines
		MaxDuration:        7,
	}
}

// Build converts segments to captions, splitting entries that are too
// long to read in one piece. Empty segments are dropped.
func (b *Builder) Build(segments []Segment) []Caption {
	var captions []Caption
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		if b.needsSplit(text, seg.End-seg.Start) {
			captions = append(captions, b.split(seg)...)
			continue
		}
		captions = append(captions, Caption{
			ID:    NewID(),
			Text:  text,
			Start: seg.Start,
			End:   seg.End,
		})
	}
	return captions
}

func (b *Builder) needsSplit(text string, duration float64) bool {
	if utf8.RuneCountInString(text) > b.MaxCharsPerCaption {
		return true
	}
	return duration > b.MaxDuration
}

// splits one long segment into several captions, distributing words
// evenly and dividing the time span proportionally
func (b *Builder) split(seg Segment) []Caption {
	text := strings.TrimSpace(seg.Text)
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	total := seg.End - seg.Start
	totalChars := utf8.RuneCountInString(text)

	pieces := (totalChars + b.MaxCharsPerCaption - 1) / b.MaxCharsPerCaption
	if pieces < 1 {
		pieces = 1
	}
	if byDuration := int(total/b.MaxDuration) + 1; byDuration > pieces {
		pieces = byDuration
	}

	wordsPerPiece := (len(words) + pieces - 1) / pieces
	perPiece := total / float64(pieces)

	var captions []Caption
	start := seg.Start
	for i := 0; i < pieces && len(words) > 0; i++ {
		n := wordsPerPiece
		if n > len(words) {
			n = len(words)
		}
		pieceWords := words[:n]
		words = words[n:]

		end := start + perPiece
		if len(words) == 0 {
			end = seg.End
		}

		captions = append(captions, Caption{
			ID:    NewID(),
			Text:  strings.Join(pieceWords, " "),
			Start: start,
			End:   end,
		})
		start = end
	}

	return captions
}
