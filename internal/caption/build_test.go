package caption

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuilderShortSegments(t *testing.T) {
	b := NewBuilder()
	captions := b.Build([]Segment{
		{Start: 0, End: 2, Text: "Hello there."},
		{Start: 2, End: 4, Text: "  "},
		{Start: 4, End: 6, Text: "Goodbye."},
	})

	if len(captions) != 2 {
		t.Fatalf("expected 2 captions, got %d", len(captions))
	}
	if captions[0].Text != "Hello there." || captions[1].Text != "Goodbye." {
		t.Errorf("unexpected texts: %q, %q", captions[0].Text, captions[1].Text)
	}
	for i, c := range captions {
		if c.ID == "" {
			t.Errorf("caption %d has no ID", i)
		}
	}
}

func TestBuilderSplitsLongText(t *testing.T) {
	b := NewBuilder()
	long := strings.TrimSpace(strings.Repeat("lengthy spoken words ", 15))

	captions := b.Build([]Segment{{Start: 0, End: 10, Text: long}})
	if len(captions) < 2 {
		t.Fatalf("expected long segment to split, got %d captions", len(captions))
	}

	for i, c := range captions {
		if utf8.RuneCountInString(c.Text) > b.MaxCharsPerCaption {
			t.Errorf("caption %d exceeds max length: %d runes", i, utf8.RuneCountInString(c.Text))
		}
		if i > 0 && captions[i-1].End != c.Start {
			t.Errorf("caption %d does not start where %d ended", i, i-1)
		}
	}

	if captions[0].Start != 0 {
		t.Errorf("first caption starts at %v, want 0", captions[0].Start)
	}
	if last := captions[len(captions)-1]; last.End != 10 {
		t.Errorf("last caption ends at %v, want 10", last.End)
	}

	// no words lost
	joined := strings.Join(collectTexts(captions), " ")
	if joined != long {
		t.Errorf("text changed across split:\ngot  %q\nwant %q", joined, long)
	}
}

func TestBuilderSplitsLongDuration(t *testing.T) {
	b := NewBuilder()
	captions := b.Build([]Segment{{Start: 0, End: 20, Text: "slow steady narration over a long stretch"}})
	if len(captions) < 2 {
		t.Fatalf("expected split on duration, got %d captions", len(captions))
	}
}

func collectTexts(captions []Caption) []string {
	texts := make([]string, len(captions))
	for i, c := range captions {
		texts[i] = c.Text
	}
	return texts
}
