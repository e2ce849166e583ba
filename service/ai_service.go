package service

import (
	"context"

	"github.com/researchhub/researchhub-be/types"
)

// LLMService is the single operation the pipeline needs from the external
// language-model service. Implementations wrap upstream failures in
// *types.ModelError.
type LLMService interface {
	Complete(ctx context.Context, req types.CompletionRequest) (string, error)
}
