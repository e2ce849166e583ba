package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/researchhub/researchhub-be/config"
	"github.com/researchhub/researchhub-be/types"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

const BATCH_SIZE = 200

var (
	PAPER_CHUNK_CLASS        = "PaperChunk"
	PAPER_CHUNK_CLASS_OBJECT = &models.Class{
		Class: PAPER_CHUNK_CLASS,
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}},
			{Name: "title", DataType: []string{"text"}},
			{Name: "paperId", DataType: []string{"text"}},
			{Name: "chunkIndex", DataType: []string{"int"}},
			{Name: "chunkKey", DataType: []string{"text"}},
		},
		VectorIndexType: "hnsw",
	}
)

// WeaviateStore holds the persistent vector collection of paper chunks.
type WeaviateStore struct {
	client *weaviate.Client
}

func NewWeaviateStore(config config.WeaviateStoreConfig) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(config.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(config.Host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if config.APIKey != "" {
		cfg.AuthConfig = auth.ApiKey{
			Value: config.APIKey,
		}
		cfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     config.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	PAPER_CHUNK_CLASS_OBJECT.Vectorizer = config.Text2Vec
	PAPER_CHUNK_CLASS_OBJECT.ModuleConfig = config.ModuleConfig
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}

	schema, err := client.Schema().Getter().Do(context.Background())
	if err != nil {
		return nil, &types.IndexUnavailableError{Op: "get schema", Err: err}
	}

	hasChunkClass := false
	for _, class := range schema.Classes {
		if class.Class == PAPER_CHUNK_CLASS {
			hasChunkClass = true
			break
		}
	}
	// Create PaperChunk class if it doesn't exist
	if !hasChunkClass {
		err = client.Schema().ClassCreator().WithClass(PAPER_CHUNK_CLASS_OBJECT).Do(context.Background())
		if err != nil {
			return nil, &types.IndexUnavailableError{Op: "create class", Err: err}
		}
	}
	return &WeaviateStore{
		client: client,
	}, nil
}

func (s *WeaviateStore) ReInit() error {
	err := s.client.Schema().ClassDeleter().WithClassName(PAPER_CHUNK_CLASS).Do(context.Background())
	if err != nil {
		return fmt.Errorf("failed to delete PaperChunk class: %w", err)
	}

	err = s.client.Schema().ClassCreator().WithClass(PAPER_CHUNK_CLASS_OBJECT).Do(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create PaperChunk class: %w", err)
	}
	return nil
}

// IndexPaperChunks writes one entry per chunk, keyed paper_<id>_chunk_<i>.
// Re-indexing without deleting first leaves stale entries behind.
func (s *WeaviateStore) IndexPaperChunks(ctx context.Context, paperID, title string, chunks []string) error {
	total := len(chunks)
	for i := 0; i < total; i += BATCH_SIZE {
		end := i + BATCH_SIZE
		if end > total {
			end = total
		}

		batcher := s.client.Batch().ObjectsBatcher()
		for j := i; j < end; j++ {
			properties := map[string]interface{}{
				"content":    chunks[j],
				"title":      title,
				"paperId":    paperID,
				"chunkIndex": j,
				"chunkKey":   types.ChunkKey(paperID, j),
			}
			batcher = batcher.WithObjects(&models.Object{
				Class:      PAPER_CHUNK_CLASS,
				Properties: properties,
			})
		}

		if _, err := batcher.Do(ctx); err != nil {
			return &types.IndexUnavailableError{
				Op:  fmt.Sprintf("index chunks %d-%d of paper %s", i, end, paperID),
				Err: err,
			}
		}
	}
	return nil
}

// SearchChunks returns up to topK chunks ranked by similarity to the query.
func (s *WeaviateStore) SearchChunks(ctx context.Context, query string, topK int) ([]types.ChunkMatch, error) {
	if topK <= 0 {
		topK = 5
	}
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "title"},
		{Name: "paperId"},
		{Name: "chunkIndex"},
		{Name: "chunkKey"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}
	nearText := s.client.GraphQL().NearTextArgBuilder().
		WithConcepts([]string{query})

	result, err := s.client.GraphQL().Get().
		WithClassName(PAPER_CHUNK_CLASS).
		WithFields(fields...).
		WithNearText(nearText).
		WithLimit(topK).
		Do(ctx)
	if err != nil {
		return nil, &types.IndexUnavailableError{Op: "search", Err: err}
	}
	if result.Errors != nil {
		return nil, &types.IndexUnavailableError{
			Op:  "search",
			Err: fmt.Errorf("%s", result.Errors[0].Message),
		}
	}

	var matches []types.ChunkMatch
	data, ok := result.Data["Get"].(map[string]interface{})
	if !ok {
		return matches, nil
	}
	items, ok := data[PAPER_CHUNK_CLASS].([]interface{})
	if !ok {
		return matches, nil
	}
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		match := types.ChunkMatch{
			Content:  asString(entry["content"]),
			Title:    asString(entry["title"]),
			PaperID:  asString(entry["paperId"]),
			ChunkKey: asString(entry["chunkKey"]),
		}
		if idx, ok := entry["chunkIndex"].(float64); ok {
			match.ChunkIndex = int(idx)
		}
		if additional, ok := entry["_additional"].(map[string]interface{}); ok {
			if distance, ok := additional["distance"].(float64); ok {
				match.Distance = float32(distance)
			}
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// DeleteByPaper removes every chunk entry whose paperId matches. Deleting a
// paper with no entries is not an error.
func (s *WeaviateStore) DeleteByPaper(ctx context.Context, paperID string) error {
	where := filters.Where().
		WithPath([]string{"paperId"}).
		WithOperator(filters.Equal).
		WithValueText(paperID)

	_, err := s.client.Batch().ObjectsBatchDeleter().
		WithClassName(PAPER_CHUNK_CLASS).
		WithWhere(where).
		WithOutput("minimal").
		Do(ctx)
	if err != nil {
		return &types.IndexUnavailableError{
			Op:  fmt.Sprintf("delete chunks of paper %s", paperID),
			Err: err,
		}
	}
	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
