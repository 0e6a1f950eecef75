package config

import "time"

// Mapping thresholds. Scores at or above AutoAccept bind without review;
// scores in [QueueLower, AutoAccept) queue an ambiguous-match review.
const (
	DefaultAutoAcceptThreshold = 0.90
	DefaultQueueLowerThreshold = 0.65
	DefaultBackfillThreshold   = 0.80
)

// Chat loop limits.
const (
	DefaultMaxConversationIterations = 50
	DefaultTokenBudget               = 24000
	DefaultPruneKeepMessages         = 12
	DefaultChatMaxTokens             = 4096
)

// Lifetimes.
const (
	DefaultSessionTTL = 1 * time.Hour
	DefaultJobTTL     = 1 * time.Hour
)

// Upload admission bounds.
const (
	DefaultMaxUploadBytes = 20 << 20 // 20 MiB
	DefaultMaxPDFPages    = 20
)

// Model defaults. Overridable per deployment; the OCR pair is ordered
// primary then secondary for the fallback wrapper.
const (
	DefaultChatModel         = "gpt-4o"
	DefaultOCRModelPrimary   = "claude-sonnet-4-20250514"
	DefaultOCRModelSecondary = "gpt-4o"
	DefaultInsightModel      = "gpt-4o-mini"
)

// Worker pool sizing for ingestion jobs.
const (
	DefaultIngestWorkers = 3
)

// SQL tool row caps. Exploratory queries are clamped at the plot scale;
// table rendering truncates further at display time.
const (
	DefaultQueryRowCap        = 10000
	DefaultTableDisplayRowCap = 50
)
