// Package domain provides domain models for Sentinel.
//
// Core packages exchange these types, never raw Ent rows, across
// package boundaries.
package domain

import "time"

// WCAGLevel is the conformance level a batch is scanned against.
type WCAGLevel string

const (
	WCAGLevelA   WCAGLevel = "A"
	WCAGLevelAA  WCAGLevel = "AA"
	WCAGLevelAAA WCAGLevel = "AAA"
)

// Valid reports whether the level is one of A, AA, AAA.
func (l WCAGLevel) Valid() bool {
	switch l {
	case WCAGLevelA, WCAGLevelAA, WCAGLevelAAA:
		return true
	}
	return false
}

// BatchStatus represents the lifecycle state of a batch.
type BatchStatus string

const (
	BatchStatusPending   BatchStatus = "PENDING"   // created, no scan finished yet
	BatchStatusRunning   BatchStatus = "RUNNING"   // at least one scan dispatched
	BatchStatusCompleted BatchStatus = "COMPLETED" // terminal, at least one scan succeeded
	BatchStatusFailed    BatchStatus = "FAILED"    // terminal, every scan failed
	BatchStatusCancelled BatchStatus = "CANCELLED" // terminal, operator cancelled
	BatchStatusStale     BatchStatus = "STALE"     // terminal, swept after staleness window
)

// Terminal reports whether no further counter updates may be applied.
func (s BatchStatus) Terminal() bool {
	switch s {
	case BatchStatusCompleted, BatchStatusFailed, BatchStatusCancelled, BatchStatusStale:
		return true
	}
	return false
}

// ScanStatus represents the lifecycle state of a single page scan.
type ScanStatus string

const (
	ScanStatusPending   ScanStatus = "PENDING"
	ScanStatusRunning   ScanStatus = "RUNNING"
	ScanStatusCompleted ScanStatus = "COMPLETED"
	ScanStatusFailed    ScanStatus = "FAILED"
	ScanStatusCancelled ScanStatus = "CANCELLED"
)

// Terminal reports whether the scan has finished one way or another.
func (s ScanStatus) Terminal() bool {
	switch s {
	case ScanStatusCompleted, ScanStatusFailed, ScanStatusCancelled:
		return true
	}
	return false
}

// IssueCounts aggregates accessibility findings by severity.
type IssueCounts struct {
	Total        int `json:"total"`
	Critical     int `json:"critical"`
	Serious      int `json:"serious"`
	Moderate     int `json:"moderate"`
	Minor        int `json:"minor"`
	PassedChecks int `json:"passed_checks"`
}

// Add returns the element-wise sum of two count sets.
func (c IssueCounts) Add(o IssueCounts) IssueCounts {
	return IssueCounts{
		Total:        c.Total + o.Total,
		Critical:     c.Critical + o.Critical,
		Serious:      c.Serious + o.Serious,
		Moderate:     c.Moderate + o.Moderate,
		Minor:        c.Minor + o.Minor,
		PassedChecks: c.PassedChecks + o.PassedChecks,
	}
}

// Issue is a single accessibility finding on a scanned page.
type Issue struct {
	RuleID   string   `json:"rule_id"`
	Severity string   `json:"severity"` // critical, serious, moderate, minor
	Selector string   `json:"selector,omitempty"`
	HTML     string   `json:"html,omitempty"`
	Message  string   `json:"message"`
	HelpURL  string   `json:"help_url,omitempty"`
	WCAGRefs []string `json:"wcag_refs,omitempty"`
	Impact   string   `json:"impact,omitempty"`
}

// ScanOutcome is the result a scanner reports for one page.
type ScanOutcome struct {
	ScanID          string      `json:"scan_id"`
	Succeeded       bool        `json:"succeeded"`
	PageTitle       string      `json:"page_title,omitempty"`
	Counts          IssueCounts `json:"counts"`
	Issues          []Issue     `json:"issues,omitempty"`
	ContentSnapshot string      `json:"content_snapshot,omitempty"`
	ErrorMessage    string      `json:"error_message,omitempty"`
	FinishedAt      time.Time   `json:"finished_at"`
}

// CampaignStatus represents the state of the token campaign ledger.
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusDepleted CampaignStatus = "DEPLETED"
	CampaignStatusEnded    CampaignStatus = "ENDED"
)

// UrgencyLevel buckets the remaining campaign budget for UI messaging.
type UrgencyLevel string

const (
	UrgencyNormal     UrgencyLevel = "normal"      // >= 50% remaining
	UrgencyLimited    UrgencyLevel = "limited"     // 20% to 49%
	UrgencyAlmostGone UrgencyLevel = "almost_gone" // 5% to 19%
	UrgencyFinal      UrgencyLevel = "final"       // below 5%, above 0
	UrgencyDepleted   UrgencyLevel = "depleted"    // nothing left
)

// CampaignMetrics is the public budget snapshot exposed to clients.
// Absolute token figures stay internal; only percentages leave the API.
type CampaignMetrics struct {
	Status           CampaignStatus `json:"status"`
	PercentUsed      float64        `json:"percent_used"`
	PercentRemaining float64        `json:"percent_remaining"`
	Urgency          UrgencyLevel   `json:"urgency"`
	CompletedAiScans int            `json:"completed_ai_scans"`
	EndsAt           time.Time      `json:"ends_at"`
}

// AiStatus represents the AI-enhancement pipeline state of a queue entry.
type AiStatus string

const (
	AiStatusPending    AiStatus = "PENDING"
	AiStatusDownloaded AiStatus = "DOWNLOADED"
	AiStatusProcessing AiStatus = "PROCESSING"
	AiStatusCompleted  AiStatus = "COMPLETED"
	AiStatusFailed     AiStatus = "FAILED"
)

// TokenUsage is the actual spend reported back for one AI-enhanced scan.
type TokenUsage struct {
	InputTokens  int64  `json:"input_tokens"`
	OutputTokens int64  `json:"output_tokens"`
	Model        string `json:"model,omitempty"`
	ProcessingMS int64  `json:"processing_ms,omitempty"`
}

// Total returns input plus output tokens.
func (u TokenUsage) Total() int64 {
	return u.InputTokens + u.OutputTokens
}
