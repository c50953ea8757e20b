package campaign

import (
	"context"
	"fmt"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/internal/domain"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
)

// Status is the full internal view of the campaign ledger, for the
// privileged admin surface.
type Status struct {
	CampaignID              string                `json:"campaign_id"`
	Name                    string                `json:"name"`
	Status                  domain.CampaignStatus `json:"status"`
	TotalTokenBudget        int64                 `json:"total_token_budget"`
	UsedTokens              int64                 `json:"used_tokens"`
	ReservedTokens          int64                 `json:"reserved_tokens"`
	RemainingTokens         int64                 `json:"remaining_tokens"`
	PercentUsed             float64               `json:"percent_used"`
	AvgTokensPerScan        int64                 `json:"avg_tokens_per_scan"`
	ProjectedSlotsRemaining int64                 `json:"projected_slots_remaining"`
	CompletedAiScans        int                   `json:"completed_ai_scans"`
	Urgency                 domain.UrgencyLevel   `json:"urgency"`
	StartsAt                string                `json:"starts_at"`
	EndsAt                  string                `json:"ends_at"`
}

// GetStatus returns the internal ledger view.
func (c *Controller) GetStatus(ctx context.Context) (*Status, error) {
	row, err := c.entClient.Campaign.Get(ctx, c.campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCampaignNotFound, "campaign not found")
		}
		return nil, fmt.Errorf("fetch campaign: %w", err)
	}

	remaining := row.TotalTokenBudget - row.UsedTokens - row.ReservedTokens
	if remaining < 0 {
		remaining = 0
	}
	percentUsed := 0.0
	if row.TotalTokenBudget > 0 {
		percentUsed = float64(row.UsedTokens) / float64(row.TotalTokenBudget) * 100
	}

	var avg int64
	if row.CompletedAiScans > 0 {
		avg = row.UsedTokens / int64(row.CompletedAiScans)
	}
	// With no settled scans yet there is no average; report remaining
	// tokens as the optimistic slot upper bound.
	projected := remaining
	if avg > 0 {
		projected = remaining / avg
	}

	return &Status{
		CampaignID:              row.ID,
		Name:                    row.Name,
		Status:                  domain.CampaignStatus(row.Status),
		TotalTokenBudget:        row.TotalTokenBudget,
		UsedTokens:              row.UsedTokens,
		ReservedTokens:          row.ReservedTokens,
		RemainingTokens:         remaining,
		PercentUsed:             percentUsed,
		AvgTokensPerScan:        avg,
		ProjectedSlotsRemaining: projected,
		CompletedAiScans:        row.CompletedAiScans,
		Urgency:                 Urgency(100-percentUsed, domain.CampaignStatus(row.Status)),
		StartsAt:                row.StartsAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		EndsAt:                  row.EndsAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// PublicMetrics returns the percentage-only view safe for unprivileged
// clients. Absolute token figures never leave the admin surface.
func (c *Controller) PublicMetrics(ctx context.Context) (*domain.CampaignMetrics, error) {
	row, err := c.entClient.Campaign.Get(ctx, c.campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCampaignNotFound, "campaign not found")
		}
		return nil, fmt.Errorf("fetch campaign: %w", err)
	}

	percentUsed := 0.0
	if row.TotalTokenBudget > 0 {
		percentUsed = float64(row.UsedTokens) / float64(row.TotalTokenBudget) * 100
	}
	status := domain.CampaignStatus(row.Status)
	return &domain.CampaignMetrics{
		Status:           status,
		PercentUsed:      percentUsed,
		PercentRemaining: 100 - percentUsed,
		Urgency:          Urgency(100-percentUsed, status),
		CompletedAiScans: row.CompletedAiScans,
		EndsAt:           row.EndsAt.UTC(),
	}, nil
}
