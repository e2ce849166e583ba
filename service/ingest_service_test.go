package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/researchhub/researchhub-be/types"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	text   string
	chunks []string
}

// Paths containing "corrupt" fail extraction so batch tests can mix good
// and bad files.
func (f *fakeProcessor) ExtractText(filePath string) (string, error) {
	if strings.Contains(filePath, "corrupt") {
		return "", &types.ExtractionError{Path: filePath, Err: errors.New("malformed PDF")}
	}
	return f.text, nil
}

func (f *fakeProcessor) ChunkText(text string) []string {
	return f.chunks
}

type fakeVectorIndex struct {
	indexErr error
	indexed  map[string][]string
	deleted  []string
}

func newFakeVectorIndex() *fakeVectorIndex {
	return &fakeVectorIndex{indexed: make(map[string][]string)}
}

func (f *fakeVectorIndex) IndexPaperChunks(ctx context.Context, paperID, title string, chunks []string) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	f.indexed[paperID] = chunks
	return nil
}

func (f *fakeVectorIndex) SearchChunks(ctx context.Context, query string, topK int) ([]types.ChunkMatch, error) {
	return nil, nil
}

func (f *fakeVectorIndex) DeleteByPaper(ctx context.Context, paperID string) error {
	f.deleted = append(f.deleted, paperID)
	delete(f.indexed, paperID)
	return nil
}

type fakePaperRepo struct {
	createErr error
	papers    map[string]*types.Paper
	seq       int
}

func newFakePaperRepo() *fakePaperRepo {
	return &fakePaperRepo{papers: make(map[string]*types.Paper)}
}

func (f *fakePaperRepo) CreatePaper(ctx context.Context, paper *types.Paper) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	paper.ID = fmt.Sprintf("paper-%d", f.seq)
	stored := *paper
	f.papers[paper.ID] = &stored
	return nil
}

func (f *fakePaperRepo) GetPaper(ctx context.Context, id string) (*types.Paper, error) {
	paper, ok := f.papers[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return paper, nil
}

func (f *fakePaperRepo) ListPapers(ctx context.Context, userID string) ([]*types.Paper, error) {
	var papers []*types.Paper
	for _, paper := range f.papers {
		if paper.UserID == userID {
			papers = append(papers, paper)
		}
	}
	return papers, nil
}

func (f *fakePaperRepo) UpdateOrganization(ctx context.Context, id string, category, tags, projectID string) error {
	if _, ok := f.papers[id]; !ok {
		return types.ErrNotFound
	}
	return nil
}

func (f *fakePaperRepo) DeletePaper(ctx context.Context, id string) error {
	if _, ok := f.papers[id]; !ok {
		return types.ErrNotFound
	}
	delete(f.papers, id)
	return nil
}

func newTestIngest(t *testing.T, llm LLMService, processor DocumentProcessor, vec *fakeVectorIndex, repo *fakePaperRepo) (*IngestService, string) {
	t.Helper()
	uploadDir := t.TempDir()
	s, err := NewIngestService(uploadDir, processor, NewMetadataService(llm), NewSummaryService(llm, 500), vec, repo)
	require.NoError(t, err)
	return s, uploadDir
}

func TestIngestRejectsUnsupportedExtension(t *testing.T) {
	llm := &fakeLLM{responses: []string{"unused"}}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	s, uploadDir := newTestIngest(t, llm, &fakeProcessor{}, vec, repo)

	_, err := s.Ingest(context.Background(), "user1", "notes.txt", strings.NewReader("plain text"))
	require.ErrorIs(t, err, types.ErrUnsupportedFileType)

	// Rejection happens before anything touches the disk.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Empty(t, entries)
	require.Empty(t, repo.papers)
	require.Empty(t, llm.calls)
}

func TestIngestHappyPath(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		"Title: Attention Is All You Need\nAuthors: Vaswani et al.",
		"Transformers replace recurrence with attention.",
	}}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	processor := &fakeProcessor{text: "full paper text", chunks: []string{"chunk one", "chunk two"}}
	s, uploadDir := newTestIngest(t, llm, processor, vec, repo)

	paper, err := s.Ingest(context.Background(), "user1", "attention.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, "paper-1", paper.ID)
	require.Equal(t, "Attention Is All You Need", paper.Title)
	require.Equal(t, "Vaswani et al.", paper.Authors)
	require.Equal(t, "Transformers replace recurrence with attention.", paper.Summary)
	require.Equal(t, "user1", paper.UserID)
	require.Equal(t, "attention.pdf", paper.FileName)

	require.FileExists(t, filepath.Join(uploadDir, "user1_attention.pdf"))
	require.Equal(t, []string{"chunk one", "chunk two"}, vec.indexed["paper-1"])
	require.Len(t, repo.papers, 1)
}

func TestIngestExtractionFailureCleansFile(t *testing.T) {
	llm := &fakeLLM{}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	s, uploadDir := newTestIngest(t, llm, &fakeProcessor{}, vec, repo)

	_, err := s.Ingest(context.Background(), "user1", "corrupt.pdf", strings.NewReader("not a pdf"))
	require.Error(t, err)
	var extractionErr *types.ExtractionError
	require.ErrorAs(t, err, &extractionErr)

	require.NoFileExists(t, filepath.Join(uploadDir, "user1_corrupt.pdf"))
	require.Empty(t, repo.papers)
	require.Empty(t, vec.indexed)
}

func TestIngestModelFailureStillPersists(t *testing.T) {
	llm := &fakeLLM{err: errors.New("provider down")}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	processor := &fakeProcessor{text: "text", chunks: []string{"text"}}
	s, _ := newTestIngest(t, llm, processor, vec, repo)

	paper, err := s.Ingest(context.Background(), "user1", "paper.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	require.Equal(t, "Unknown", paper.Title)
	require.Equal(t, "Unknown", paper.Authors)
	require.True(t, strings.HasPrefix(paper.Summary, "Summary generation failed:"))
	require.Len(t, repo.papers, 1)
	require.Len(t, vec.indexed, 1)
}

func TestIngestPersistFailureCleansFile(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: T\nAuthors: A", "summary"}}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	repo.createErr = errors.New("mongo unavailable")
	processor := &fakeProcessor{text: "text", chunks: []string{"text"}}
	s, uploadDir := newTestIngest(t, llm, processor, vec, repo)

	_, err := s.Ingest(context.Background(), "user1", "paper.pdf", strings.NewReader("%PDF"))
	require.Error(t, err)
	require.NoFileExists(t, filepath.Join(uploadDir, "user1_paper.pdf"))
	require.Empty(t, vec.indexed)
}

func TestIngestIndexFailureKeepsRecord(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: T\nAuthors: A", "summary"}}
	vec := newFakeVectorIndex()
	vec.indexErr = &types.IndexUnavailableError{Op: "index", Err: errors.New("weaviate down")}
	repo := newFakePaperRepo()
	processor := &fakeProcessor{text: "text", chunks: []string{"text"}}
	s, uploadDir := newTestIngest(t, llm, processor, vec, repo)

	_, err := s.Ingest(context.Background(), "user1", "paper.pdf", strings.NewReader("%PDF"))
	require.Error(t, err)

	// The record survives the failed indexing step; the file does not.
	require.Len(t, repo.papers, 1)
	require.NoFileExists(t, filepath.Join(uploadDir, "user1_paper.pdf"))
}

func TestIngestBatchSkipsFailures(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: T\nAuthors: A"}}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	processor := &fakeProcessor{text: "text", chunks: []string{"text"}}
	s, _ := newTestIngest(t, llm, processor, vec, repo)

	srcDir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.pdf", "corrupt.pdf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte("%PDF"), 0644))
	}
	filePaths := []string{
		filepath.Join(srcDir, "a.pdf"),
		filepath.Join(srcDir, "b.pdf"),
		filepath.Join(srcDir, "corrupt.pdf"),
		filepath.Join(srcDir, "notes.txt"),
	}

	papers := s.IngestBatch(context.Background(), "user1", filePaths)
	require.Len(t, papers, 2)
	require.Len(t, repo.papers, 2)
}

func TestDeletePaperRemovesEverything(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: T\nAuthors: A", "summary"}}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	processor := &fakeProcessor{text: "text", chunks: []string{"c1", "c2"}}
	s, uploadDir := newTestIngest(t, llm, processor, vec, repo)

	paper, err := s.Ingest(context.Background(), "user1", "paper.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(uploadDir, "user1_paper.pdf"))

	require.NoError(t, s.DeletePaper(context.Background(), paper.ID))
	require.NoFileExists(t, filepath.Join(uploadDir, "user1_paper.pdf"))
	require.Equal(t, []string{paper.ID}, vec.deleted)
	_, err = s.GetPaper(context.Background(), paper.ID)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeletePaperNotFound(t *testing.T) {
	llm := &fakeLLM{}
	s, _ := newTestIngest(t, llm, &fakeProcessor{}, newFakeVectorIndex(), newFakePaperRepo())

	err := s.DeletePaper(context.Background(), "missing")
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestIngestOverwritesSameNameSameUser(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Title: T\nAuthors: A", "summary"}}
	vec := newFakeVectorIndex()
	repo := newFakePaperRepo()
	processor := &fakeProcessor{text: "text", chunks: []string{"text"}}
	s, uploadDir := newTestIngest(t, llm, processor, vec, repo)

	_, err := s.Ingest(context.Background(), "user1", "paper.pdf", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = s.Ingest(context.Background(), "user1", "paper.pdf", strings.NewReader("second upload"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(uploadDir, "user1_paper.pdf"))
	require.NoError(t, err)
	require.Equal(t, "second upload", string(data))
	// Both uploads produced their own record; the file is shared.
	require.Len(t, repo.papers, 2)
}
