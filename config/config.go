package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	UploadDir           string              `mapstructure:"upload_dir"`
	ChunkSize           int                 `mapstructure:"chunk_size"`
	ChunkOverlap        int                 `mapstructure:"chunk_overlap"`
	SummaryWordLimit    int                 `mapstructure:"summary_word_limit"`
	SearchTopK          int                 `mapstructure:"search_top_k"`
	LLMProvider         string              `mapstructure:"llm_provider"`
	AIEndpoint          string              `mapstructure:"ai_endpoint"`
	Model               string              `mapstructure:"model"`
	GroqAPIKey          string              `mapstructure:"GROQ_API_KEY"`
	GeminiAPIKeys       []string            `mapstructure:"gemini_api_keys"`
	GeminiModel         string              `mapstructure:"gemini_model"`
	MongoURI            string              `mapstructure:"MONGODB_URI"`
	MongoDatabase       string              `mapstructure:"mongo_database"`
	WeaviateStoreConfig WeaviateStoreConfig `mapstructure:"weaviate_store_config"`
}

type WeaviateStoreConfig struct {
	Host         string       `mapstructure:"host"`
	APIKey       string       `mapstructure:"WEAVIATE_APIKEY"` // Changed to match env var
	Text2Vec     string       `mapstructure:"text2vec"`
	ModuleConfig ModuleConfig `mapstructure:"module_config"`
}

type ModuleConfig map[string]interface{}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("chunk_size", 1000)
	v.SetDefault("chunk_overlap", 200)
	v.SetDefault("summary_word_limit", 500)
	v.SetDefault("search_top_k", 5)
	v.SetDefault("llm_provider", "openai")
	v.SetDefault("ai_endpoint", "https://api.groq.com/openai/v1")
	v.SetDefault("model", "llama-3.3-70b-versatile")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("mongo_database", "researchhub")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("GROQ_API_KEY")
	v.BindEnv("WEAVIATE_APIKEY")
	v.BindEnv("MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
