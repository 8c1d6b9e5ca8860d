package caption

import (
	"encoding/json"
	"fmt"
)

// wire record for the caption file format: a JSON array of
// {"text","start","end"} objects, no version field, no header.
// Pointer fields distinguish a missing key from a zero value.
type wireCaption struct {
	Text  *string  `json:"text"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

// Export serializes the caption list to a JSON document.
// IDs are not written; they are an internal concern.
func Export(captions []Caption) ([]byte, error) {
	records := make([]wireCaption, len(captions))
	for i := range captions {
		c := captions[i]
		records[i] = wireCaption{
			Text:  &c.Text,
			Start: &c.Start,
			End:   &c.End,
		}
	}
	return json.MarshalIndent(records, "", "  ")
}

// Import parses a caption document and validates every record before
// accepting any of them. On error nothing is returned, so the caller's
// existing list stays untouched. Accepted captions carry fresh IDs.
func Import(data []byte) ([]Caption, error) {
	var records []wireCaption
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	captions := make([]Caption, 0, len(records))
	for i, r := range records {
		if r.Text == nil || r.Start == nil || r.End == nil {
			return nil, fmt.Errorf(
				"%w: record %d is missing text, start or end",
				ErrMalformedImport, i,
			)
		}
		if *r.Start < 0 || *r.End < *r.Start {
			return nil, fmt.Errorf(
				"%w: record %d has an invalid interval [%v, %v]",
				ErrMalformedImport, i, *r.Start, *r.End,
			)
		}
		captions = append(captions, Caption{
			ID:    NewID(),
			Text:  *r.Text,
			Start: *r.Start,
			End:   *r.End,
		})
	}

	return captions, nil
}
