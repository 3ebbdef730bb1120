package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001,https://meeting-intelligence.vercel.app,https://*.vercel.app"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver      string `envconfig:"DB_DRIVER" default:"postgres"`
	URL         string `envconfig:"DATABASE_URL"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_intelligence"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"meeting_intelligence.db"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// AIConfig holds AI provider configuration
type AIConfig struct {
	GeminiAPIKey     string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel      string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	PollInterval     time.Duration `envconfig:"AI_POLL_INTERVAL" default:"2s"`
	PollTimeout      time.Duration `envconfig:"AI_POLL_TIMEOUT" default:"120s"`
	Transcriber      string        `envconfig:"AI_TRANSCRIBER" default:"gemini"`
	Summarizer       string        `envconfig:"AI_SUMMARIZER" default:"gemini"`
	AssemblyAIAPIKey string        `envconfig:"ASSEMBLYAI_API_KEY"`
	GroqAPIKey       string        `envconfig:"GROQ_API_KEY"`
	GroqModel        string        `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
	GroqBaseURL      string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
}

// StorageConfig holds audio storage configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"local"` // "local" or "minio"
	UploadDir       string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	MaxUploadSize   int64  `envconfig:"MAX_FILE_SIZE" default:"104857600"`
	Endpoint        string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"MINIO_BUCKET" default:"meeting-audio"`
	UseSSL          bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	sections := []interface{}{&config.Server, &config.Database, &config.AI, &config.Storage}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.Database.Driver)
	}
	switch c.Storage.Type {
	case "local", "minio":
	default:
		return fmt.Errorf("STORAGE_TYPE must be local or minio, got %q", c.Storage.Type)
	}
	switch c.AI.Transcriber {
	case "gemini", "assemblyai":
	default:
		return fmt.Errorf("AI_TRANSCRIBER must be gemini or assemblyai, got %q", c.AI.Transcriber)
	}
	switch c.AI.Summarizer {
	case "gemini", "groq":
	default:
		return fmt.Errorf("AI_SUMMARIZER must be gemini or groq, got %q", c.AI.Summarizer)
	}
	if c.Storage.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}
	if c.AI.PollInterval <= 0 || c.AI.PollTimeout < c.AI.PollInterval {
		return fmt.Errorf("AI_POLL_TIMEOUT must be at least AI_POLL_INTERVAL (%s)", c.AI.PollInterval)
	}
	return nil
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GeminiConfigured reports whether a Gemini API key is present
func (c *Config) GeminiConfigured() bool {
	return c.AI.GeminiAPIKey != ""
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	if c.Database.Driver == "sqlite" {
		return c.Database.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
