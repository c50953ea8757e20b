package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Batch lifecycle events
	EventBatchCreated   EventType = "BATCH_CREATED"
	EventBatchCompleted EventType = "BATCH_COMPLETED"
	EventBatchFailed    EventType = "BATCH_FAILED"
	EventBatchCancelled EventType = "BATCH_CANCELLED"
	EventBatchRetried   EventType = "BATCH_RETRIED"
	EventBatchDeleted   EventType = "BATCH_DELETED"
	EventBatchStale     EventType = "BATCH_MARKED_STALE"

	// Scan events
	EventScanCompleted EventType = "SCAN_COMPLETED"
	EventScanFailed    EventType = "SCAN_FAILED"

	// Campaign events
	EventCampaignPaused   EventType = "CAMPAIGN_PAUSED"
	EventCampaignResumed  EventType = "CAMPAIGN_RESUMED"
	EventCampaignDepleted EventType = "CAMPAIGN_DEPLETED"
	EventCampaignEnded    EventType = "CAMPAIGN_ENDED"

	// AI queue events
	EventAiBatchExported   EventType = "AI_BATCH_EXPORTED"
	EventAiResultsImported EventType = "AI_RESULTS_IMPORTED"
	EventAiScanRetried     EventType = "AI_SCAN_RETRIED"
)

// DomainEvent represents an immutable domain event.
// Payload is a claim-check style JSON blob, not a full snapshot.
type DomainEvent struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	AggregateType string    `json:"aggregate_type"` // batch, scan, campaign, ai_queue
	AggregateID   string    `json:"aggregate_id"`
	Payload       []byte    `json:"payload"`
	Actor         string    `json:"actor"`
	CreatedAt     time.Time `json:"created_at"`
}

// BatchEventPayload is the payload for batch lifecycle events.
type BatchEventPayload struct {
	BatchID        string `json:"batch_id"`
	HomepageURL    string `json:"homepage_url,omitempty"`
	TotalURLs      int    `json:"total_urls,omitempty"`
	CompletedCount int    `json:"completed_count,omitempty"`
	FailedCount    int    `json:"failed_count,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p BatchEventPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ScanEventPayload is the payload for scan completion events.
type ScanEventPayload struct {
	ScanID       string `json:"scan_id"`
	BatchID      string `json:"batch_id,omitempty"`
	URL          string `json:"url"`
	TotalIssues  int    `json:"total_issues,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p ScanEventPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// CampaignEventPayload is the payload for campaign state events.
type CampaignEventPayload struct {
	CampaignID string `json:"campaign_id"`
	Reason     string `json:"reason,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p CampaignEventPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// AiQueueEventPayload is the payload for AI pipeline events.
type AiQueueEventPayload struct {
	ScanIDs   []string `json:"scan_ids,omitempty"`
	Processed int      `json:"processed,omitempty"`
	Failed    int      `json:"failed,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p AiQueueEventPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
