package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/researchhub/researchhub-be/database"
	"github.com/researchhub/researchhub-be/repository"
	"github.com/researchhub/researchhub-be/types"
	"github.com/researchhub/researchhub-be/utils"
)

// DocumentProcessor extracts and chunks stored document text.
type DocumentProcessor interface {
	ExtractText(filePath string) (string, error)
	ChunkText(text string) []string
}

// IngestService drives a single upload through the pipeline:
// store file -> extract -> metadata/summary -> persist record -> chunk -> index.
// Each call runs synchronously within its caller; concurrent ingestions are
// independent because every paper gets a distinct id.
type IngestService struct {
	uploadDir string
	processor DocumentProcessor
	metadata  *MetadataService
	summary   *SummaryService
	vectorDB  database.VectorIndex
	paperRepo repository.PaperRepo
}

func NewIngestService(
	uploadDir string,
	processor DocumentProcessor,
	metadataService *MetadataService,
	summaryService *SummaryService,
	vectorDB database.VectorIndex,
	paperRepo repository.PaperRepo,
) (*IngestService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &IngestService{
		uploadDir: uploadDir,
		processor: processor,
		metadata:  metadataService,
		summary:   summaryService,
		vectorDB:  vectorDB,
		paperRepo: paperRepo,
	}, nil
}

// Ingest runs the pipeline for one uploaded file.
//
// Failure policy: a bad extension rejects before anything is written; an
// extraction error removes the stored file; metadata and summary failures
// degrade to fallback values; once the Paper record is committed it is never
// rolled back, even when indexing fails afterwards (the file is still
// cleaned up in that case, the record survives without searchable content).
func (s *IngestService) Ingest(ctx context.Context, userID, fileName string, file io.Reader) (*types.Paper, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != ".pdf" {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFileType, fileName)
	}

	// Store the upload keyed by owner and original name. A re-upload of the
	// same name by the same user overwrites the earlier file.
	filePath := filepath.Join(s.uploadDir, utils.StorageKey(userID, fileName))
	if err := writeFile(filePath, file); err != nil {
		return nil, err
	}

	text, err := s.processor.ExtractText(filePath)
	if err != nil {
		s.removeStoredFile(filePath)
		return nil, err
	}

	meta := s.metadata.ExtractMetadata(ctx, text)
	if meta.Err != nil {
		log.Printf("Metadata extraction for %s fell back to defaults: %v", fileName, meta.Err)
	}
	summary := s.summary.Summarize(ctx, text)
	if summary.Err != nil {
		log.Printf("Summary generation for %s failed: %v", fileName, summary.Err)
	}

	paper := &types.Paper{
		UserID:   userID,
		Title:    meta.Title,
		Authors:  meta.Authors,
		FilePath: filePath,
		FileName: fileName,
		Summary:  summary.Text,
	}
	if err := s.paperRepo.CreatePaper(ctx, paper); err != nil {
		s.removeStoredFile(filePath)
		return nil, fmt.Errorf("failed to create paper record: %w", err)
	}

	chunks := s.processor.ChunkText(text)
	if len(chunks) > 0 {
		if err := s.vectorDB.IndexPaperChunks(ctx, paper.ID, paper.Title, chunks); err != nil {
			// The committed record stays behind without searchable content.
			s.removeStoredFile(filePath)
			return nil, fmt.Errorf("failed to index paper %s: %w", paper.ID, err)
		}
	}

	return paper, nil
}

// IngestBatch runs the pipeline independently for each file path. Per-file
// failures are logged and skipped; the returned slice holds only the papers
// that were fully indexed.
func (s *IngestService) IngestBatch(ctx context.Context, userID string, filePaths []string) []*types.Paper {
	papers := make([]*types.Paper, 0, len(filePaths))
	for _, path := range filePaths {
		file, err := os.Open(path)
		if err != nil {
			log.Printf("Failed to open %s: %v", path, err)
			continue
		}
		paper, err := s.Ingest(ctx, userID, filepath.Base(path), file)
		file.Close()
		if err != nil {
			log.Printf("Failed to process %s: %v", path, err)
			continue
		}
		papers = append(papers, paper)
	}
	return papers
}

// DeletePaper removes the stored file, every vector-index entry of the paper
// and the record itself as one logical deletion.
func (s *IngestService) DeletePaper(ctx context.Context, id string) error {
	paper, err := s.paperRepo.GetPaper(ctx, id)
	if err != nil {
		return err
	}
	s.removeStoredFile(paper.FilePath)
	if err := s.vectorDB.DeleteByPaper(ctx, id); err != nil {
		return err
	}
	return s.paperRepo.DeletePaper(ctx, id)
}

// Search returns the most similar chunks across all indexed papers.
func (s *IngestService) Search(ctx context.Context, query string, topK int) ([]types.ChunkMatch, error) {
	return s.vectorDB.SearchChunks(ctx, query, topK)
}

func (s *IngestService) GetPaper(ctx context.Context, id string) (*types.Paper, error) {
	return s.paperRepo.GetPaper(ctx, id)
}

func (s *IngestService) ListPapers(ctx context.Context, userID string) ([]*types.Paper, error) {
	return s.paperRepo.ListPapers(ctx, userID)
}

func (s *IngestService) removeStoredFile(filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to remove stored file %s: %v", filePath, err)
	}
}

func writeFile(filePath string, src io.Reader) error {
	dst, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to store uploaded file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return dst.Close()
}
