package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/researchhub/researchhub-be/types"
)

const synthesisInstruction = "You are a senior research analyst. Synthesize the provided research summaries into a coherent, organized research report. Highlight common themes, conflicting findings, and unique contributions. Use professional language and Markdown formatting."

const categorizeInstruction = "You are a research librarian. Given the opening text of a research paper, respond with a single short category name for it (e.g. Machine Learning, Climate Science). Respond with the category name only."

// ReportService turns stored paper summaries into a synthesized research
// report and suggests post-hoc categories for papers.
type ReportService struct {
	llm LLMService
}

func NewReportService(llm LLMService) *ReportService {
	return &ReportService{llm: llm}
}

// Synthesize joins the per-paper summaries and asks the model for an
// executive report. Papers without a summary are skipped; at least one
// summary is required.
func (s *ReportService) Synthesize(ctx context.Context, papers []*types.Paper) (string, error) {
	summaries := make([]string, 0, len(papers))
	for _, paper := range papers {
		if paper.Summary == "" {
			continue
		}
		summaries = append(summaries, fmt.Sprintf("Title: %s\nAuthors: %s\nSummary: %s",
			paper.Title, paper.Authors, paper.Summary))
	}
	if len(summaries) == 0 {
		return "", errors.New("no summaries available to synthesize")
	}
	combined := strings.Join(summaries, "\n\n---\n\n")

	report, err := s.llm.Complete(ctx, types.CompletionRequest{
		Messages: []types.Message{
			{Role: "system", Content: synthesisInstruction},
			{
				Role:    "user",
				Content: "Please synthesize an executive research report from these individual paper summaries:\n\n" + combined,
			},
		},
		Temperature: 0.4,
		MaxTokens:   2048,
	})
	if err != nil {
		return "", err
	}
	return report, nil
}

// Categorize suggests a single category label from a paper's leading text.
func (s *ReportService) Categorize(ctx context.Context, text string) (string, error) {
	sample := []rune(text)
	if len(sample) > metadataSampleSize {
		sample = sample[:metadataSampleSize]
	}
	category, err := s.llm.Complete(ctx, types.CompletionRequest{
		Messages: []types.Message{
			{Role: "system", Content: categorizeInstruction},
			{Role: "user", Content: string(sample)},
		},
		Temperature: 0.1,
		MaxTokens:   32,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(category), nil
}
