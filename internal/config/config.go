// 環境変数ベースの設定読み込み
//
// 環境変数:
//   - GEMINI_API_KEY: Gemini APIキー（未設定の場合はメモリストア+分析不可）
//   - GEMINI_MODEL (default: gemini-2.0-flash)
//   - GEMINI_CHAT_MODEL (default: gemini-1.5-flash)
//   - GEMINI_EMBEDDING_MODEL (default: text-embedding-004)
//   - GEMINI_TIMEOUT_SECONDS (default: 60)
//   - DATABASE_URL / PGHOST / PGPORT / PGUSER / PGPASSWORD / PGDATABASE / PGSSLMODE
//   - PORT (default: 8080)
//   - CORS_ALLOWED_ORIGINS: カンマ区切り
//   - ANALYZER_CONFIG: 分析チューニングYAMLのパス（省略可）
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Postgres PostgresConfig
	Analyzer AnalyzerConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type GeminiConfig struct {
	APIKey         string
	Model          string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

// AnalyzerConfig - YAMLで上書き可能な分析チューニング
//
// prompt_templateには {{job.description}} 変数が使える。
// scrape_fixturesはドメイン部分一致キー→求人テキストのマップ。
type AnalyzerConfig struct {
	PromptTemplate string            `yaml:"prompt_template"`
	ScrapeFixtures map[string]string `yaml:"scrape_fixtures"`
	CompareLimit   int               `yaml:"compare_limit"`
}

func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Gemini: GeminiConfig{
			APIKey:         os.Getenv("GEMINI_API_KEY"),
			Model:          getenv("GEMINI_MODEL", "gemini-2.0-flash"),
			ChatModel:      getenv("GEMINI_CHAT_MODEL", "gemini-1.5-flash"),
			EmbeddingModel: getenv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
			Timeout:        timeoutSeconds(),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Analyzer: AnalyzerConfig{CompareLimit: 5},
	}

	if path := os.Getenv("ANALYZER_CONFIG"); path != "" {
		analyzer, err := loadAnalyzerConfig(path)
		if err != nil {
			return Config{}, err
		}
		if analyzer.CompareLimit <= 0 {
			analyzer.CompareLimit = cfg.Analyzer.CompareLimit
		}
		cfg.Analyzer = analyzer
	}

	return cfg, nil
}

// PostgresConfigured - Postgres接続情報が揃っているかどうか。
// 揃っていない場合はメモリストアにフォールバックする
func (c Config) PostgresConfigured() bool {
	return c.Postgres.DatabaseURL != "" || (c.Postgres.User != "" && c.Postgres.Database != "")
}

func loadAnalyzerConfig(path string) (AnalyzerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnalyzerConfig{}, fmt.Errorf("read analyzer config: %w", err)
	}
	var cfg AnalyzerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AnalyzerConfig{}, fmt.Errorf("parse analyzer config: %w", err)
	}
	return cfg, nil
}

func timeoutSeconds() time.Duration {
	raw := getenv("GEMINI_TIMEOUT_SECONDS", "60")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
