package types

// Message represents a single message sent to the language-model service.
// Images holds data URIs for vision-capable calls; most pipeline calls only
// set Content.
type Message struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

// CompletionRequest is the single operation the pipeline needs from the
// language-model service. Model may be empty to use the provider default.
type CompletionRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}
