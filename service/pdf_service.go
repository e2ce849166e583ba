package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/researchhub/researchhub-be/types"
)

// PDFService handles PDF text extraction and chunking
type PDFService struct {
	maxChunkSize int // Maximum size of each text chunk
	overlapSize  int // Size of overlap between chunks
}

var DefaultDocumentServiceConfig = types.DocumentServiceConfig{
	MaxChunkSize: 1000,
	OverlapSize:  200,
}

// NewPDFService creates a new PDF service with configurable chunk sizes.
// Chunk size must be greater than the overlap and both must be positive,
// otherwise the chunker would stall or walk backwards.
func NewPDFService(config types.DocumentServiceConfig) (*PDFService, error) {
	if config.MaxChunkSize <= 0 {
		return nil, fmt.Errorf("invalid chunk config: chunk size must be positive, got %d", config.MaxChunkSize)
	}
	if config.OverlapSize <= 0 || config.OverlapSize >= config.MaxChunkSize {
		return nil, fmt.Errorf("invalid chunk config: overlap must satisfy 0 < overlap < chunk size, got overlap=%d size=%d",
			config.OverlapSize, config.MaxChunkSize)
	}
	return &PDFService{
		maxChunkSize: config.MaxChunkSize,
		overlapSize:  config.OverlapSize,
	}, nil
}

// ExtractText reads a stored PDF and returns every page's text concatenated,
// each page followed by a newline. An image-only PDF yields empty text, which
// is not an error here. Unreadable or corrupt files fail with
// *types.ExtractionError.
func (s *PDFService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", &types.ExtractionError{Path: filePath, Err: err}
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := r.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: failed to extract text from page %d: %v", pageNum, err)
			continue // Skip failed pages instead of returning error
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// ChunkText splits text into overlapping fixed-size windows. The i-th chunk
// starts at i*(size-overlap) and spans size characters; the final chunk is
// clipped to the end of the text. Same input always yields the same chunks.
func (s *PDFService) ChunkText(text string) []string {
	chunks := make([]string, 0)
	runes := []rune(text)
	step := s.maxChunkSize - s.overlapSize
	for start := 0; start < len(runes); start += step {
		end := start + s.maxChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
