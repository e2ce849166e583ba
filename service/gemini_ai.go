package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/researchhub/researchhub-be/types"
	"google.golang.org/api/option"
)

// GeminiService is the alternative language-model backend. It rotates
// between the configured API keys when a call fails.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	modelName  string
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:    apiKeys,
		currentKey: 0,
		modelName:  modelName,
	}

	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		return err
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) Complete(ctx context.Context, req types.CompletionRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", &types.ModelError{Err: errors.New("no messages provided")}
	}

	model := s.client.GenerativeModel(s.modelName)
	if req.Temperature > 0 {
		model.SetTemperature(req.Temperature)
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	history := make([]*genai.Content, 0, len(req.Messages)-1)
	for _, msg := range req.Messages[:len(req.Messages)-1] {
		history = append(history, &genai.Content{
			Parts: messageParts(msg),
			Role:  geminiRole(msg.Role),
		})
	}
	chat := model.StartChat()
	chat.History = history

	last := req.Messages[len(req.Messages)-1]
	resp, err := chat.SendMessage(ctx, messageParts(last)...)
	if err != nil {
		// Try rotating API key if there's an error
		if err := s.rotateAPIKey(); err != nil {
			return "", &types.ModelError{Err: err}
		}
		model = s.client.GenerativeModel(s.modelName)
		chat = model.StartChat()
		chat.History = history
		resp, err = chat.SendMessage(ctx, messageParts(last)...)
		if err != nil {
			return "", &types.ModelError{Err: err}
		}
	}

	if len(resp.Candidates) == 0 {
		return "", &types.ModelError{Err: errors.New("no response generated")}
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func messageParts(msg types.Message) []genai.Part {
	parts := make([]genai.Part, 0, len(msg.Images)+1)
	if msg.Content != "" {
		parts = append(parts, genai.Text(msg.Content))
	}
	for _, uri := range msg.Images {
		if format, data, ok := decodeDataURI(uri); ok {
			parts = append(parts, genai.ImageData(format, data))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, genai.Text(""))
	}
	return parts
}

func geminiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return "user"
}

// decodeDataURI splits a data:image/<format>;base64,<payload> URI into the
// image format and raw bytes.
func decodeDataURI(uri string) (string, []byte, bool) {
	if !strings.HasPrefix(uri, "data:image/") {
		return "", nil, false
	}
	rest := strings.TrimPrefix(uri, "data:image/")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, false
	}
	format := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, false
	}
	return format, data, true
}
