package caption

import "testing"

func TestVisibleAt(t *testing.T) {
	captions := []Caption{
		{ID: "1", Text: "a", Start: 0, End: 2},
		{ID: "2", Text: "b", Start: 3, End: 5},
	}

	tests := []struct {
		name string
		t    float64
		want []string
	}{
		{"inside first", 1, []string{"a"}},
		{"gap between captions", 2.5, nil},
		{"inside second", 4, []string{"b"}},
		{"start bound inclusive", 3, []string{"b"}},
		{"end bound inclusive", 2, []string{"a"}},
		{"before everything", -1, nil},
		{"after everything", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleAt(captions, tt.t)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d captions, got %d", len(tt.want), len(got))
			}
			for i, text := range tt.want {
				if got[i].Text != text {
					t.Errorf("caption %d: expected %q, got %q", i, text, got[i].Text)
				}
			}
		})
	}
}

func TestVisibleAtOverlapping(t *testing.T) {
	captions := []Caption{
		{ID: "1", Text: "speaker one", Start: 0, End: 10},
		{ID: "2", Text: "speaker two", Start: 5, End: 15},
		{ID: "3", Text: "later", Start: 20, End: 25},
	}

	got := VisibleAt(captions, 7)
	if len(got) != 2 {
		t.Fatalf("expected 2 overlapping captions, got %d", len(got))
	}
	// source order preserved
	if got[0].Text != "speaker one" || got[1].Text != "speaker two" {
		t.Errorf("expected source order, got [%s %s]", got[0].Text, got[1].Text)
	}
}

func TestVisibleAtEmpty(t *testing.T) {
	if got := VisibleAt(nil, 1); len(got) != 0 {
		t.Errorf("expected no captions, got %d", len(got))
	}
}
