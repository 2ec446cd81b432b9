package usecase

import (
	"context"
	"errors"
	"fmt"

	"conference-tracker/internal/extraction"
	"conference-tracker/pkg/ollama"
)

// Generation parameters for the extraction call. Low temperature keeps the
// model close to the dates actually on the page.
const (
	extractionTemperature = 0.3
	extractionMaxTokens   = 512
)

// Extract fetches the page at url, asks the local model for deadline data,
// and parses its answer into candidate records. One shot, no retries.
func (uc *implUseCase) Extract(ctx context.Context, url string) (extraction.Result, error) {
	text, err := uc.fetcher.FetchText(ctx, url)
	if err != nil {
		return extraction.Result{}, fmt.Errorf("%w: %v", extraction.ErrFetchFailed, err)
	}
	uc.l.Infof(ctx, "fetched %d bytes of page text from %s", len(text), url)

	resp, err := uc.llm.GenerateContent(ctx, &ollama.Request{
		System:      ollama.DeadlineExtractionSystemPrompt,
		Prompt:      ollama.BuildExtractionPrompt(url, text),
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
	})
	if err != nil {
		if errors.Is(err, ollama.ErrUnavailable) || errors.Is(err, ollama.ErrModelNotFound) {
			return extraction.Result{}, fmt.Errorf("%w: %v", extraction.ErrModelUnavailable, err)
		}
		return extraction.Result{}, fmt.Errorf("extraction: model call failed: %w", err)
	}
	uc.l.Infof(ctx, "model %s answered with %d tokens", uc.llm.Model(), tokenCount(resp))

	result, err := uc.parseResponse(ctx, url, resp.Text)
	if err != nil {
		return extraction.Result{}, err
	}
	return result, nil
}

func tokenCount(resp *ollama.Response) int {
	if resp.Usage == nil {
		return 0
	}
	return resp.Usage.OutputTokens
}
