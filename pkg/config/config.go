package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	KnowledgeSourceFile     = "file"
	KnowledgeSourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Knowledge KnowledgeConfig
	Tool      ToolConfig
	API       APIConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
}

// DSN returns the key/value connection string understood by pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type KnowledgeConfig struct {
	Source string // "file" or "postgres"
	Dir    string
}

// ToolConfig configures the voice-assistant tool-call endpoints.
type ToolConfig struct {
	Secret string
}

type APIConfig struct {
	Name           string
	Version        string
	SupportPhone   string
	SupportWebsite string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "postgres"),
			Password:      getEnv("DB_PASSWORD", "postgres"),
			DBName:        getEnv("DB_NAME", "support_kb"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "migrations"),
		},
		Knowledge: KnowledgeConfig{
			Source: getEnv("KNOWLEDGE_SOURCE", KnowledgeSourceFile),
			Dir:    getEnv("KNOWLEDGE_DIR", "products"),
		},
		Tool: ToolConfig{
			Secret: getEnv("VAPI_SECRET", ""),
		},
		API: APIConfig{
			Name:           getEnv("API_NAME", "Sonance Tech Support API"),
			Version:        getEnv("API_VERSION", "1.0.0"),
			SupportPhone:   getEnv("SUPPORT_PHONE", "(949) 492-7777"),
			SupportWebsite: getEnv("SUPPORT_WEBSITE", "www.sonance.com"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	switch cfg.Knowledge.Source {
	case KnowledgeSourceFile, KnowledgeSourcePostgres:
	default:
		return nil, fmt.Errorf("invalid KNOWLEDGE_SOURCE %q: want %q or %q",
			cfg.Knowledge.Source, KnowledgeSourceFile, KnowledgeSourcePostgres)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
