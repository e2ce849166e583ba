package service

import (
	"context"
	"fmt"

	"github.com/researchhub/researchhub-be/types"
)

const summarySampleSize = 4000

const summaryInstruction = "You are a research paper summarizer. Create concise, informative summaries."

// SummaryService produces a bounded-length prose summary of a paper's text.
// The word ceiling is advisory to the model, not enforced on the response.
// Failure is non-fatal: the failure description is returned as the summary
// text and also carried as an error for callers that want to tell them apart.
type SummaryService struct {
	llm       LLMService
	wordLimit int
}

func NewSummaryService(llm LLMService, wordLimit int) *SummaryService {
	if wordLimit <= 0 {
		wordLimit = 500
	}
	return &SummaryService{
		llm:       llm,
		wordLimit: wordLimit,
	}
}

func (s *SummaryService) Summarize(ctx context.Context, text string) types.SummaryResult {
	sample := []rune(text)
	if len(sample) > summarySampleSize {
		sample = sample[:summarySampleSize]
	}

	response, err := s.llm.Complete(ctx, types.CompletionRequest{
		Messages: []types.Message{
			{Role: "system", Content: summaryInstruction},
			{
				Role:    "user",
				Content: fmt.Sprintf("Summarize this research paper in %d words or less:\n\n%s", s.wordLimit, string(sample)),
			},
		},
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		return types.SummaryResult{
			Text: fmt.Sprintf("Summary generation failed: %v", err),
			Err:  err,
		}
	}
	return types.SummaryResult{Text: response}
}
