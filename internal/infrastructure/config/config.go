package config

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	UsersFile string `env:"USERS_FILE, default=usuarios.json"`
	JWTSecret string `env:"JWT_SECRET"`

	Mongo     MongoConfig
	Redis     RedisConfig
	LLM       LLMConfig
	Embedding EmbeddingConfig
	Pipeline  PipelineConfig
}

type MongoConfig struct {
	Username string `env:"DB_USERNAME, required"`
	Password string `env:"DB_PASSWORD, required"`
	Host     string `env:"MONGO_HOST, default=localhost:27017"`
	Database string `env:"MONGO_DB,   default=DadosUsuarios"`
	// SRV selects the mongodb+srv scheme used by Atlas clusters.
	SRV bool `env:"MONGO_SRV, default=false"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LLMConfig struct {
	APIKey  string `env:"LLM_API_KEY, required"`
	BaseURL string `env:"LLM_BASE_URL, default=https://api.groq.com/openai/v1"`
	Model   string `env:"LLM_MODEL,    default=llama-3.3-70b-versatile"`
}

type EmbeddingConfig struct {
	APIKey  string `env:"EMBEDDING_API_KEY, required"`
	BaseURL string `env:"EMBEDDING_BASE_URL, default=https://api.cohere.ai/v1"`
	Model   string `env:"EMBEDDING_MODEL,    default=embed-english-light-v2.0"`
}

type PipelineConfig struct {
	URL string `env:"PIPELINE_URL, default=http://localhost:8100/recommend"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required keys fail here, before any dependency is dialled.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// URI assembles the MongoDB connection string, escaping credentials the same
// way the Atlas connection helper expects them.
func (m MongoConfig) URI() string {
	user := url.QueryEscape(m.Username)
	pass := url.QueryEscape(m.Password)
	if m.SRV {
		return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, pass, m.Host)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s/?retryWrites=true&w=majority", user, pass, m.Host)
}
