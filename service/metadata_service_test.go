package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/researchhub/researchhub-be/types"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns scripted responses in order and records every request.
// Once the script runs out the last response repeats.
type fakeLLM struct {
	responses []string
	err       error
	calls     []types.CompletionRequest
}

func (f *fakeLLM) Complete(ctx context.Context, req types.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	response := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return response, nil
}

func TestExtractMetadataParsesLabeledLines(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: Attention Is All You Need\nAuthors: Vaswani et al."}}
	s := NewMetadataService(llm)

	result := s.ExtractMetadata(context.Background(), "some paper text")
	require.NoError(t, result.Err)
	require.Equal(t, "Attention Is All You Need", result.Title)
	require.Equal(t, "Vaswani et al.", result.Authors)
}

func TestExtractMetadataPartialResponse(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: Deep Learning\nSome unrelated line"}}
	s := NewMetadataService(llm)

	result := s.ExtractMetadata(context.Background(), "text")
	require.NoError(t, result.Err)
	require.Equal(t, "Deep Learning", result.Title)
	require.Equal(t, "Unknown", result.Authors)
}

func TestExtractMetadataModelFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("rate limited")}
	s := NewMetadataService(llm)

	result := s.ExtractMetadata(context.Background(), "text")
	require.Error(t, result.Err)
	require.Equal(t, "Unknown", result.Title)
	require.Equal(t, "Unknown", result.Authors)
}

func TestExtractMetadataTruncatesSample(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: T\nAuthors: A"}}
	s := NewMetadataService(llm)

	s.ExtractMetadata(context.Background(), strings.Repeat("x", 5000))
	require.Len(t, llm.calls, 1)
	sent := llm.calls[0].Messages[len(llm.calls[0].Messages)-1].Content
	require.Equal(t, metadataSampleSize, len([]rune(sent)))
	require.Equal(t, float32(0.1), llm.calls[0].Temperature)
	require.Equal(t, 256, llm.calls[0].MaxTokens)
}
