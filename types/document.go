package types

import "fmt"

// DocumentServiceConfig contains configuration options for PDF processing
type DocumentServiceConfig struct {
	MaxChunkSize int // Maximum size for text chunks, in characters
	OverlapSize  int // Size of overlap between adjacent chunks
}

// ChunkMatch is one vector-search hit with its originating paper recoverable
// from the stored metadata.
type ChunkMatch struct {
	PaperID    string  `json:"paper_id"`
	ChunkIndex int     `json:"chunk_index"`
	ChunkKey   string  `json:"chunk_key"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Distance   float32 `json:"distance"`
}

// ChunkKey builds the synthetic vector-entry id for the i-th chunk of a paper.
func ChunkKey(paperID string, i int) string {
	return fmt.Sprintf("paper_%s_chunk_%d", paperID, i)
}
