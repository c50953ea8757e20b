package handlers

import (
	"time"

	"a11ysentinel.io/sentinel/ent"
)

type batchResponse struct {
	ID             string     `json:"id"`
	HomepageURL    string     `json:"homepage_url"`
	WcagLevel      string     `json:"wcag_level"`
	Status         string     `json:"status"`
	TotalURLs      int        `json:"total_urls"`
	CompletedCount int        `json:"completed_count"`
	FailedCount    int        `json:"failed_count"`
	TotalIssues    int        `json:"total_issues"`
	CriticalIssues int        `json:"critical_issues"`
	SeriousIssues  int        `json:"serious_issues"`
	ModerateIssues int        `json:"moderate_issues"`
	MinorIssues    int        `json:"minor_issues"`
	PassedChecks   int        `json:"passed_checks"`
	AiEnabled      bool       `json:"ai_enabled"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
}

type scanResponse struct {
	ID           string     `json:"id"`
	BatchID      string     `json:"batch_id,omitempty"`
	URL          string     `json:"url"`
	PageTitle    string     `json:"page_title,omitempty"`
	Status       string     `json:"status"`
	TotalIssues  int        `json:"total_issues"`
	Critical     int        `json:"critical_issues"`
	Serious      int        `json:"serious_issues"`
	Moderate     int        `json:"moderate_issues"`
	Minor        int        `json:"minor_issues"`
	PassedChecks int        `json:"passed_checks"`
	ErrorMessage string     `json:"error_message,omitempty"`
	AiEnabled    bool       `json:"ai_enabled"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type queueEntryResponse struct {
	ID            string     `json:"id"`
	ScanID        string     `json:"scan_id"`
	ReservationID string     `json:"reservation_id"`
	AiStatus      string     `json:"ai_status"`
	InputTokens   int64      `json:"ai_input_tokens"`
	OutputTokens  int64      `json:"ai_output_tokens"`
	TotalTokens   int64      `json:"ai_total_tokens"`
	Model         string     `json:"ai_model,omitempty"`
	ProcessingMs  int64      `json:"ai_processing_ms"`
	ProcessedAt   *time.Time `json:"ai_processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toBatchResponse(b *ent.Batch) batchResponse {
	return batchResponse{
		ID:             b.ID,
		HomepageURL:    b.HomepageURL,
		WcagLevel:      string(b.WcagLevel),
		Status:         string(b.Status),
		TotalURLs:      b.TotalUrls,
		CompletedCount: b.CompletedCount,
		FailedCount:    b.FailedCount,
		TotalIssues:    b.TotalIssues,
		CriticalIssues: b.CriticalIssues,
		SeriousIssues:  b.SeriousIssues,
		ModerateIssues: b.ModerateIssues,
		MinorIssues:    b.MinorIssues,
		PassedChecks:   b.PassedChecks,
		AiEnabled:      b.AiEnabled,
		CreatedBy:      b.CreatedBy,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		CompletedAt:    b.CompletedAt,
		CancelledAt:    b.CancelledAt,
	}
}

func toScanResponse(s *ent.Scan) scanResponse {
	return scanResponse{
		ID:           s.ID,
		BatchID:      s.BatchID,
		URL:          s.URL,
		PageTitle:    s.PageTitle,
		Status:       string(s.Status),
		TotalIssues:  s.TotalIssues,
		Critical:     s.CriticalIssues,
		Serious:      s.SeriousIssues,
		Moderate:     s.ModerateIssues,
		Minor:        s.MinorIssues,
		PassedChecks: s.PassedChecks,
		ErrorMessage: s.ErrorMessage,
		AiEnabled:    s.AiEnabled,
		CompletedAt:  s.CompletedAt,
		CreatedAt:    s.CreatedAt,
	}
}

func toScanResponses(scans []*ent.Scan) []scanResponse {
	out := make([]scanResponse, len(scans))
	for i, s := range scans {
		out[i] = toScanResponse(s)
	}
	return out
}

func toQueueEntryResponse(e *ent.AiQueueEntry) queueEntryResponse {
	return queueEntryResponse{
		ID:            e.ID,
		ScanID:        e.ScanID,
		ReservationID: e.ReservationID,
		AiStatus:      string(e.AiStatus),
		InputTokens:   e.AiInputTokens,
		OutputTokens:  e.AiOutputTokens,
		TotalTokens:   e.AiTotalTokens,
		Model:         e.AiModel,
		ProcessingMs:  e.AiProcessingMs,
		ProcessedAt:   e.AiProcessedAt,
		CreatedAt:     e.CreatedAt,
	}
}
