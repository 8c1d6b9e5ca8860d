package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/media"
)

// implements Transcriber using Google Gemini
type GeminiTranscriber struct {
	client  *genai.Client
	model   string
	options Options
}

// segment from Gemini's JSON response
type geminiSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func NewGeminiTranscriber(ctx context.Context, apiKey string, opts Options) (*GeminiTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiTranscriber{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// transcribes a single audio file
func (t *GeminiTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	uploadedFile, err := t.client.Files.UploadFromPath(ctx, audioPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to upload audio file: %w", err)
	}
	defer func() {
		_, _ = t.client.Files.Delete(ctx, uploadedFile.Name, nil)
	}()

	parts := []*genai.Part{
		genai.NewPartFromText(t.buildPrompt()),
		genai.NewPartFromURI(uploadedFile.URI, uploadedFile.MIMEType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	segments, err := parseGeminiResponse(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcription: %w", err)
	}

	duration, _ := media.Duration(audioPath)

	return &Result{
		Segments: segments,
		Language: t.options.Language,
		Duration: duration,
	}, nil
}

// transcribes a single chunk and shifts timestamps by its offset
func (t *GeminiTranscriber) transcribeChunk(ctx context.Context, chunk media.ChunkInfo) ([]caption.Segment, error) {
	result, err := t.Transcribe(ctx, chunk.Path)
	if err != nil {
		return nil, err
	}

	offset := chunk.StartTime.Seconds()
	shifted := make([]caption.Segment, len(result.Segments))
	for i, seg := range result.Segments {
		shifted[i] = caption.Segment{
			Start: seg.Start + offset,
			End:   seg.End + offset,
			Text:  seg.Text,
		}
	}
	return shifted, nil
}

type chunkResult struct {
	Index    int
	Segments []caption.Segment
	Error    error
}

// TranscribeChunks transcribes chunks in parallel with a bounded
// worker pool and merges the results in chunk order.
func (t *GeminiTranscriber) TranscribeChunks(ctx context.Context, chunks []media.ChunkInfo, concurrency int) (*Result, error) {
	if len(chunks) == 0 {
		return &Result{}, nil
	}
	if concurrency <= 0 {
		concurrency = 3
	}

	workChan := make(chan media.ChunkInfo, len(chunks))
	resultChan := make(chan chunkResult, len(chunks))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Go(func() {
			for chunk := range workChan {
				segments, err := t.transcribeChunk(ctx, chunk)
				resultChan <- chunkResult{
					Index:    chunk.Index,
					Segments: segments,
					Error:    err,
				}
			}
		})
	}

	for _, chunk := range chunks {
		workChan <- chunk
	}
	close(workChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]chunkResult, 0, len(chunks))
	for result := range resultChan {
		if result.Error != nil {
			return nil, fmt.Errorf("chunk %d failed: %w", result.Index, result.Error)
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	var segments []caption.Segment
	for _, r := range results {
		segments = append(segments, r.Segments...)
	}

	return &Result{
		Segments: segments,
		Language: t.options.Language,
		Duration: chunks[len(chunks)-1].EndTime,
	}, nil
}

func (t *GeminiTranscriber) buildPrompt() string {
	var sb strings.Builder

	sb.WriteString("Generate a detailed transcript of this audio. ")
	sb.WriteString("For each sentence or phrase, provide the start timestamp, end timestamp, and the exact text spoken. ")
	sb.WriteString("Format your response as a JSON array with objects containing 'start', 'end', and 'text' fields, ")
	sb.WriteString("where 'start' and 'end' are timestamps in seconds (as numbers). ")

	if t.options.Language != "" {
		sb.WriteString(fmt.Sprintf("The audio is in %s. ", t.options.Language))
	}
	if t.options.Prompt != "" {
		sb.WriteString(t.options.Prompt)
		sb.WriteString(" ")
	}

	sb.WriteString("Return ONLY the JSON array, no other text or markdown formatting.")

	return sb.String()
}

// parses Gemini's response into segments
func parseGeminiResponse(result *genai.GenerateContentResponse) ([]caption.Segment, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var responseText string
	for _, candidate := range result.Candidates {
		if candidate.Content != nil {
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					responseText += part.Text
				}
			}
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text in Gemini response")
	}

	return parseSegmentJSON(cleanJSONResponse(responseText))
}

// parses a JSON array of {start,end,text} objects
func parseSegmentJSON(s string) ([]caption.Segment, error) {
	var raw []geminiSegment
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w (response: %s)", err, truncateString(s, 200))
	}

	segments := make([]caption.Segment, len(raw))
	for i, r := range raw {
		segments[i] = caption.Segment{
			Start: r.Start,
			End:   r.End,
			Text:  strings.TrimSpace(r.Text),
		}
	}
	return segments, nil
}

var jsonBlockRegex = regexp.MustCompile("```(?:json)?\\s*")

// removes markdown fencing from the response
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = jsonBlockRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
