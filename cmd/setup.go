/*
Copyright © 2025 researchhub
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/researchhub/researchhub-be/config"
	"github.com/researchhub/researchhub-be/database"
	"github.com/researchhub/researchhub-be/repository"
	"github.com/researchhub/researchhub-be/service"
	"github.com/researchhub/researchhub-be/types"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ingestEnv bundles the wired-up services every subcommand needs.
type ingestEnv struct {
	cfg       *config.Config
	mongo     *mongo.Client
	vectorDB  *database.WeaviateStore
	paperRepo repository.PaperRepo
	pdf       *service.PDFService
	ingest    *service.IngestService
	report    *service.ReportService
}

// buildEnv loads the config and connects the full pipeline: Mongo for paper
// records, Weaviate for the chunk index and the configured model provider
// for metadata, summaries and reports.
func buildEnv(ctx context.Context) (*ingestEnv, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	paperRepo := repository.NewPaperRepo(mongoClient.Database(cfg.MongoDatabase))

	vectorDB, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig)
	if err != nil {
		mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("failed to connect to Weaviate database: %w", err)
	}

	var llm service.LLMService
	switch cfg.LLMProvider {
	case "gemini":
		llm, err = service.NewGeminiService(cfg.GeminiAPIKeys, cfg.GeminiModel)
		if err != nil {
			mongoClient.Disconnect(ctx)
			return nil, fmt.Errorf("failed to create Gemini service: %w", err)
		}
	default:
		llm = service.NewOpenAIService(cfg.AIEndpoint, cfg.GroqAPIKey, cfg.Model)
	}

	pdfService, err := service.NewPDFService(types.DocumentServiceConfig{
		MaxChunkSize: cfg.ChunkSize,
		OverlapSize:  cfg.ChunkOverlap,
	})
	if err != nil {
		mongoClient.Disconnect(ctx)
		return nil, err
	}

	ingestService, err := service.NewIngestService(
		cfg.UploadDir,
		pdfService,
		service.NewMetadataService(llm),
		service.NewSummaryService(llm, cfg.SummaryWordLimit),
		vectorDB,
		paperRepo,
	)
	if err != nil {
		mongoClient.Disconnect(ctx)
		return nil, err
	}

	return &ingestEnv{
		cfg:       cfg,
		mongo:     mongoClient,
		vectorDB:  vectorDB,
		paperRepo: paperRepo,
		pdf:       pdfService,
		ingest:    ingestService,
		report:    service.NewReportService(llm),
	}, nil
}

func (e *ingestEnv) Close(ctx context.Context) {
	e.mongo.Disconnect(ctx)
}
