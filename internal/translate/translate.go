// Package translate rewrites caption text into another language while
// leaving timings untouched.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
)

const DefaultBatchSize = 50

// single text item to translate
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated text item
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for text translation
type Translator interface {
	Translate(ctx context.Context, items []Item) ([]Result, error)
}

type Options struct {
	InputLanguage  string
	TargetLanguage string
	Model          string
	Prompt         string
	BatchSize      int // items per API request (default 50)
}

// Captions translates a caption list, preserving order, IDs and
// timings. The translated texts are matched back by index.
func Captions(ctx context.Context, tr Translator, captions []caption.Caption) ([]caption.Caption, error) {
	if len(captions) == 0 {
		return []caption.Caption{}, nil
	}

	items := make([]Item, len(captions))
	for i, c := range captions {
		items[i] = Item{Index: i, Text: c.Text}
	}

	results, err := tr.Translate(ctx, items)
	if err != nil {
		return nil, err
	}

	out := make([]caption.Caption, len(captions))
	copy(out, captions)
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(out) {
			return nil, fmt.Errorf("translation result index %d out of range", r.Index)
		}
		out[r.Index].Text = r.Text
	}
	return out, nil
}

// BuildPrompt creates the translation prompt for LLM providers.
func BuildPrompt(opts Options, items []Item) string {
	var sb strings.Builder

	if opts.InputLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s caption texts to %s.\n\n",
			opts.InputLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following caption texts to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Translate ONLY the text content, preserving the meaning.\n")
	sb.WriteString("2. Preserve line breaks in the same positions.\n")
	sb.WriteString("3. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("4. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString("5. The 'index' values must match the input indices exactly.\n")
	sb.WriteString("6. Do not add any explanation or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt))
	}

	sb.WriteString("Input JSON:\n")
	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)
	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

// parses a JSON array of {index,text} objects
func parseResults(s string) ([]Result, error) {
	var results []Result
	if err := json.Unmarshal([]byte(s), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// removes markdown fencing from an LLM response
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
