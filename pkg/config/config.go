// Package config builds the immutable runtime configuration from the
// environment. main loads .env first; everything downstream receives the
// resulting Config by value and never mutates it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object built once at boot.
type Config struct {
	// HTTP
	ListenAddr string

	// Persistence
	DatabaseURL string
	StorageDir  string

	// Vision / OCR
	OCRProviderPrimary   string // "anthropic" | "openai"
	OCRProviderSecondary string // optional; empty disables fallback
	OCRModelPrimary      string
	OCRModelSecondary    string
	AnthropicAPIKey      string
	OpenAIAPIKey         string

	// Chat
	ChatProvider  string // "openai" | "anthropic"
	ChatModel     string
	InsightModel  string
	ChatMaxTokens int

	// Mapping thresholds
	AutoAcceptThreshold float64
	QueueLowerThreshold float64
	BackfillThreshold   float64

	// Session / turn limits
	SessionTTL        time.Duration
	TokenBudget       int
	PruneKeepMessages int
	MaxIterations     int

	// Jobs
	JobTTL        time.Duration
	IngestWorkers int

	// Upload admission
	MaxUploadBytes int64
	MaxPDFPages    int

	// SQL tool
	ScopeEnforcement bool
	QueryRowCap      int
	TableRowCap      int

	// Production mode hides internal error detail from clients.
	Production bool
}

// Load builds Config from the environment, applying defaults from
// defaults.go. It fails fast on malformed numeric values and on a missing
// DATABASE_URL so misconfiguration surfaces at boot, not mid-request.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:           getEnvOrDefault("LABTRAIL_LISTEN_ADDR", ":8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		StorageDir:           getEnvOrDefault("LABTRAIL_STORAGE_DIR", "data/artifacts"),
		OCRProviderPrimary:   getEnvOrDefault("LABTRAIL_OCR_PROVIDER_PRIMARY", "anthropic"),
		OCRProviderSecondary: getEnvOrDefault("LABTRAIL_OCR_PROVIDER_SECONDARY", "openai"),
		OCRModelPrimary:      getEnvOrDefault("LABTRAIL_OCR_MODEL_PRIMARY", DefaultOCRModelPrimary),
		OCRModelSecondary:    getEnvOrDefault("LABTRAIL_OCR_MODEL_SECONDARY", DefaultOCRModelSecondary),
		AnthropicAPIKey:      os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		ChatProvider:         getEnvOrDefault("LABTRAIL_CHAT_PROVIDER", "openai"),
		ChatModel:            getEnvOrDefault("LABTRAIL_CHAT_MODEL", DefaultChatModel),
		InsightModel:         getEnvOrDefault("LABTRAIL_INSIGHT_MODEL", DefaultInsightModel),
		Production:           getEnvOrDefault("LABTRAIL_ENV", "development") == "production",
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var err error
	if cfg.AutoAcceptThreshold, err = floatEnv("LABTRAIL_AUTO_ACCEPT", DefaultAutoAcceptThreshold); err != nil {
		return nil, err
	}
	if cfg.QueueLowerThreshold, err = floatEnv("LABTRAIL_QUEUE_LOWER", DefaultQueueLowerThreshold); err != nil {
		return nil, err
	}
	if cfg.BackfillThreshold, err = floatEnv("LABTRAIL_BACKFILL_THRESHOLD", DefaultBackfillThreshold); err != nil {
		return nil, err
	}
	if cfg.QueueLowerThreshold > cfg.AutoAcceptThreshold {
		return nil, fmt.Errorf("LABTRAIL_QUEUE_LOWER (%v) must not exceed LABTRAIL_AUTO_ACCEPT (%v)",
			cfg.QueueLowerThreshold, cfg.AutoAcceptThreshold)
	}

	if cfg.SessionTTL, err = durationEnv("LABTRAIL_SESSION_TTL", DefaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.JobTTL, err = durationEnv("LABTRAIL_JOB_TTL", DefaultJobTTL); err != nil {
		return nil, err
	}
	if cfg.TokenBudget, err = intEnv("LABTRAIL_TOKEN_BUDGET", DefaultTokenBudget); err != nil {
		return nil, err
	}
	if cfg.PruneKeepMessages, err = intEnv("LABTRAIL_PRUNE_KEEP", DefaultPruneKeepMessages); err != nil {
		return nil, err
	}
	if cfg.MaxIterations, err = intEnv("LABTRAIL_MAX_ITERATIONS", DefaultMaxConversationIterations); err != nil {
		return nil, err
	}
	if cfg.ChatMaxTokens, err = intEnv("LABTRAIL_CHAT_MAX_TOKENS", DefaultChatMaxTokens); err != nil {
		return nil, err
	}
	if cfg.IngestWorkers, err = intEnv("LABTRAIL_INGEST_WORKERS", DefaultIngestWorkers); err != nil {
		return nil, err
	}
	if cfg.MaxPDFPages, err = intEnv("LABTRAIL_MAX_PDF_PAGES", DefaultMaxPDFPages); err != nil {
		return nil, err
	}
	if cfg.QueryRowCap, err = intEnv("LABTRAIL_QUERY_ROW_CAP", DefaultQueryRowCap); err != nil {
		return nil, err
	}
	if cfg.TableRowCap, err = intEnv("LABTRAIL_TABLE_ROW_CAP", DefaultTableDisplayRowCap); err != nil {
		return nil, err
	}

	maxUpload, err := intEnv("LABTRAIL_MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadBytes = int64(maxUpload)

	cfg.ScopeEnforcement = getEnvOrDefault("LABTRAIL_SCOPE_ENFORCEMENT", "true") != "false"

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func durationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
