package service

import (
	"context"
	"strings"

	"github.com/researchhub/researchhub-be/types"
)

// Only the leading part of the text is sent, to bound model input cost.
const metadataSampleSize = 2000

const metadataInstruction = "Extract the title and authors from this research paper. Return in format: Title: [title]\nAuthors: [authors]"

// MetadataService infers a paper's title and authors from its leading text.
// It is best-effort: a failed model call or an unparsable response falls back
// to "Unknown" and never aborts ingestion.
type MetadataService struct {
	llm LLMService
}

func NewMetadataService(llm LLMService) *MetadataService {
	return &MetadataService{llm: llm}
}

func (s *MetadataService) ExtractMetadata(ctx context.Context, text string) types.MetadataResult {
	result := types.MetadataResult{
		Title:   "Unknown",
		Authors: "Unknown",
	}

	sample := []rune(text)
	if len(sample) > metadataSampleSize {
		sample = sample[:metadataSampleSize]
	}

	response, err := s.llm.Complete(ctx, types.CompletionRequest{
		Messages: []types.Message{
			{Role: "system", Content: metadataInstruction},
			{Role: "user", Content: string(sample)},
		},
		Temperature: 0.1,
		MaxTokens:   256,
	})
	if err != nil {
		result.Err = err
		return result
	}

	// Scan for the two labeled lines; anything else is discarded.
	for _, line := range strings.Split(response, "\n") {
		if strings.HasPrefix(line, "Title:") {
			result.Title = strings.TrimSpace(strings.TrimPrefix(line, "Title:"))
		} else if strings.HasPrefix(line, "Authors:") {
			result.Authors = strings.TrimSpace(strings.TrimPrefix(line, "Authors:"))
		}
	}
	return result
}
