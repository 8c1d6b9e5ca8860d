package caption

import (
	"errors"
	"testing"
)

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		want    Caption
		wantErr error
	}{
		{
			name:  "valid",
			draft: Draft{Text: "hello", Start: "1", End: "2.5"},
			want:  Caption{Text: "hello", Start: 1, End: 2.5},
		},
		{
			name:  "whitespace trimmed",
			draft: Draft{Text: "  hi  ", Start: " 0 ", End: " 3 "},
			want:  Caption{Text: "hi", Start: 0, End: 3},
		},
		{
			name:  "zero length interval",
			draft: Draft{Text: "blip", Start: "4", End: "4"},
			want:  Caption{Text: "blip", Start: 4, End: 4},
		},
		{
			name:    "missing text",
			draft:   Draft{Text: "", Start: "1", End: "2"},
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing start",
			draft:   Draft{Text: "hello", Start: "", End: "2"},
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing end",
			draft:   Draft{Text: "hello", Start: "1", End: ""},
			wantErr: ErrIncomplete,
		},
		{
			name:    "non numeric start",
			draft:   Draft{Text: "hello", Start: "abc", End: "2"},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "non numeric end",
			draft:   Draft{Text: "hello", Start: "1", End: "later"},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "NaN start",
			draft:   Draft{Text: "hello", Start: "NaN", End: "2"},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "infinite end",
			draft:   Draft{Text: "hello", Start: "1", End: "Inf"},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "negative start",
			draft:   Draft{Text: "hello", Start: "-1", End: "2"},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "end before start",
			draft:   Draft{Text: "hello", Start: "5", End: "2"},
			wantErr: ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDraft(tt.draft)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Text != tt.want.Text ||
				got.Start != tt.want.Start ||
				got.End != tt.want.End {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}
