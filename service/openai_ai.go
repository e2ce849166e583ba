package service

import (
	"context"
	"errors"

	"github.com/researchhub/researchhub-be/types"
	"github.com/sashabaranov/go-openai"
)

// OpenAIService talks to any OpenAI-compatible chat completion endpoint.
// Groq's API is the default target; the base URL is configurable so a local
// server works as well.
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client: client,
		model:  model,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, req types.CompletionRequest) (string, error) {
	openaiMessages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		if len(msg.Images) > 0 {
			// Vision calls use the structured content form mixing text and
			// image data URIs.
			parts := make([]openai.ChatMessagePart, 0, len(msg.Images)+1)
			if msg.Content != "" {
				parts = append(parts, openai.ChatMessagePart{
					Type: openai.ChatMessagePartTypeText,
					Text: msg.Content,
				})
			}
			for _, uri := range msg.Images {
				parts = append(parts, openai.ChatMessagePart{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: uri},
				})
			}
			openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
				Role:         msg.Role,
				MultiContent: parts,
			})
			continue
		}
		openaiMessages = append(openaiMessages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	model := req.Model
	if model == "" {
		model = s.model
	}
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Messages:    openaiMessages,
			Model:       model,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		},
	)
	if err != nil {
		return "", &types.ModelError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &types.ModelError{Err: errors.New("no response generated")}
	}
	return resp.Choices[0].Message.Content, nil
}
