package caption

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// user-visible error kinds; everything else wraps one of these
var (
	// a required draft field is empty
	ErrIncomplete = errors.New("caption text, start and end are required")
	// a draft time field is not a usable number
	ErrInvalidTime = errors.New("invalid caption time")
	// an imported document is not a valid caption list
	ErrMalformedImport = errors.New("malformed caption document")
	// an operation addressed a caption ID that is not in the store
	ErrNotFound = errors.New("caption not found")
)

// represents a single timed caption, times in seconds
type Caption struct {
	ID    string
	Text  string
	Start float64
	End   float64
}

// in-progress field values for a caption being created or edited
type Draft struct {
	Text  string
	Start string
	End   string
}

// reports whether every draft field has content
func (d Draft) Complete() bool {
	return strings.TrimSpace(d.Text) != "" &&
		strings.TrimSpace(d.Start) != "" &&
		strings.TrimSpace(d.End) != ""
}

// ParseDraft validates the draft and converts it to a caption.
// The returned caption carries no ID; the store assigns one on Add.
func ParseDraft(d Draft) (Caption, error) {
	if !d.Complete() {
		return Caption{}, ErrIncomplete
	}

	start, err := parseSeconds(d.Start)
	if err != nil {
		return Caption{}, fmt.Errorf("start time %q: %w", d.Start, err)
	}
	end, err := parseSeconds(d.End)
	if err != nil {
		return Caption{}, fmt.Errorf("end time %q: %w", d.End, err)
	}
	if end < start {
		return Caption{}, fmt.Errorf(
			"end %v is before start %v: %w",
			end, start, ErrInvalidTime,
		)
	}

	return Caption{
		Text:  strings.TrimSpace(d.Text),
		Start: start,
		End:   end,
	}, nil
}

// parses a free-text seconds value, rejecting NaN, infinities and
// negative values instead of letting them propagate into the list
func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidTime
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidTime
	}
	if v < 0 {
		return 0, ErrInvalidTime
	}
	return v, nil
}

// NewID returns a stable identifier for a caption.
func NewID() string {
	return uuid.NewString()
}
