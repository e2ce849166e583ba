package database

import (
	"context"

	"github.com/researchhub/researchhub-be/types"
)

// VectorIndex is the narrow contract the ingestion pipeline needs from the
// vector collection. Indexing is not idempotent: callers must delete a
// paper's entries before re-indexing it.
type VectorIndex interface {
	// IndexPaperChunks writes each chunk as one entry keyed paper_<id>_chunk_<i>.
	IndexPaperChunks(ctx context.Context, paperID, title string, chunks []string) error
	// SearchChunks returns up to topK chunks ranked by similarity to the query.
	SearchChunks(ctx context.Context, query string, topK int) ([]types.ChunkMatch, error)
	// DeleteByPaper removes every entry whose paper id matches; a no-op when
	// none exist.
	DeleteByPaper(ctx context.Context, paperID string) error
}
