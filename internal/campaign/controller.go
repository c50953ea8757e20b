// Package campaign implements the AI-enhancement token-budget admission
// controller.
//
// A single campaign row is the shared ledger. Every budget mutation is a
// guarded single-statement update so concurrent admits can never
// collectively oversell total_token_budget.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/internal/domain"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// DefaultCampaignID is the fixed id of the singleton campaign row,
// ensured at bootstrap.
const DefaultCampaignID = "campaign-default"

// Controller guards the shared token budget.
type Controller struct {
	entClient  *ent.Client
	pool       *pgxpool.Pool
	events     *domain.EventDispatcher
	campaignID string
}

// NewController creates a campaign Controller for the singleton campaign.
func NewController(entClient *ent.Client, pool *pgxpool.Pool, events *domain.EventDispatcher) *Controller {
	return &Controller{
		entClient:  entClient,
		pool:       pool,
		events:     events,
		campaignID: DefaultCampaignID,
	}
}

// SeedConfig describes the campaign row ensured at bootstrap.
type SeedConfig struct {
	Name        string
	TokenBudget int64
	StartsAt    time.Time
	EndsAt      time.Time
}

// Ensure creates the singleton campaign row if it does not exist yet.
// An existing row is left untouched: budgets are never silently resized.
func (c *Controller) Ensure(ctx context.Context, cfg SeedConfig) error {
	if cfg.TokenBudget <= 0 {
		return fmt.Errorf("campaign token budget must be positive")
	}
	startsAt := cfg.StartsAt
	if startsAt.IsZero() {
		startsAt = time.Now().UTC()
	}
	endsAt := cfg.EndsAt
	if endsAt.IsZero() {
		endsAt = startsAt.Add(30 * 24 * time.Hour)
	}
	name := cfg.Name
	if name == "" {
		name = "default"
	}

	_, err := c.pool.Exec(ctx, `
		INSERT INTO campaigns (
			id, name, total_token_budget, used_tokens, reserved_tokens,
			status, starts_at, ends_at, completed_ai_scans, created_at, updated_at
		) VALUES ($1, $2, $3, 0, 0, 'ACTIVE', $4, $5, 0, now(), now())
		ON CONFLICT (id) DO NOTHING`,
		c.campaignID, name, cfg.TokenBudget, startsAt, endsAt,
	)
	if err != nil {
		return fmt.Errorf("ensure campaign row: %w", err)
	}
	return nil
}

// Admit atomically checks budget headroom, campaign state, and the
// promotion window, reserving estimatedTokens on success. This is the
// admission-control core: the check-and-reserve is one guarded UPDATE,
// so racing admits serialize on the campaign row and the budget can
// never be oversold. Refusal is a normal outcome, not an error.
func (c *Controller) Admit(ctx context.Context, scanID string, estimatedTokens int64) (bool, string, error) {
	if estimatedTokens <= 0 {
		return false, "", fmt.Errorf("estimated tokens must be positive, got %d", estimatedTokens)
	}
	if scanID == "" {
		return false, "", fmt.Errorf("scan id is required for admission")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return false, "", fmt.Errorf("begin admit tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE campaigns SET
			reserved_tokens = reserved_tokens + $2,
			updated_at = now()
		WHERE id = $1
		  AND status = 'ACTIVE'
		  AND now() BETWEEN starts_at AND ends_at
		  AND used_tokens + reserved_tokens + $2 <= total_token_budget`,
		c.campaignID, estimatedTokens,
	)
	if err != nil {
		return false, "", fmt.Errorf("reserve tokens for scan %s: %w", scanID, err)
	}
	if tag.RowsAffected() == 0 {
		// Refused: paused, outside the window, or not enough headroom.
		return false, "", nil
	}

	reservationID := generateReservationID()
	if _, err := tx.Exec(ctx, `
		INSERT INTO reservations (id, campaign_id, scan_id, estimated_tokens, settled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, false, now(), now())`,
		reservationID, c.campaignID, scanID, estimatedTokens,
	); err != nil {
		return false, "", fmt.Errorf("insert reservation for scan %s: %w", scanID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, "", fmt.Errorf("commit admit tx: %w", err)
	}

	logger.Debug("AI admission granted",
		zap.String("scan_id", scanID),
		zap.String("reservation_id", reservationID),
		zap.Int64("estimated_tokens", estimatedTokens),
	)
	return true, reservationID, nil
}

// Settle converts a reservation into consumed budget (succeeded=true:
// used_tokens grows by actualTokens, not the estimate) or releases it
// (succeeded=false: a failed AI task consumes nothing). Settling an
// already-settled or unknown reservation returns NOT_FOUND, which keeps
// double settlement harmless.
func (c *Controller) Settle(ctx context.Context, reservationID string, actualTokens int64, succeeded bool) error {
	if actualTokens < 0 {
		return fmt.Errorf("actual tokens must not be negative, got %d", actualTokens)
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin settle tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var campaignID string
	var estimated int64
	err = tx.QueryRow(ctx, `
		UPDATE reservations SET settled = true, settled_at = now()
		WHERE id = $1 AND settled = false
		RETURNING campaign_id, estimated_tokens`,
		reservationID,
	).Scan(&campaignID, &estimated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound(apperrors.CodeQueueEntryNotFound,
				"reservation not found or already settled").
				WithParams(map[string]interface{}{"reservation_id": reservationID})
		}
		return fmt.Errorf("settle reservation %s: %w", reservationID, err)
	}

	used := int64(0)
	completedInc := 0
	if succeeded {
		used = actualTokens
		completedInc = 1
	}

	// reserved_tokens is clamped at zero: releases can race a sweep
	// that already returned the same headroom.
	if _, err := tx.Exec(ctx, `
		UPDATE campaigns SET
			reserved_tokens = GREATEST(reserved_tokens - $2, 0),
			used_tokens = used_tokens + $3,
			completed_ai_scans = completed_ai_scans + $4,
			status = CASE
				WHEN status IN ('ACTIVE', 'PAUSED') AND used_tokens + $3 >= total_token_budget THEN 'DEPLETED'
				ELSE status
			END,
			updated_at = now()
		WHERE id = $1`,
		campaignID, estimated, used, completedInc,
	); err != nil {
		return fmt.Errorf("apply settlement to campaign %s: %w", campaignID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit settle tx: %w", err)
	}

	logger.Debug("Reservation settled",
		zap.String("reservation_id", reservationID),
		zap.Bool("succeeded", succeeded),
		zap.Int64("actual_tokens", actualTokens),
		zap.Int64("estimated_tokens", estimated),
	)

	c.notifyIfDepleted(ctx, campaignID)
	return nil
}

// ActiveReservation returns the unsettled reservation held by a scan.
func (c *Controller) ActiveReservation(ctx context.Context, scanID string) (string, bool, error) {
	var reservationID string
	err := c.pool.QueryRow(ctx, `
		SELECT id FROM reservations WHERE scan_id = $1 AND settled = false`,
		scanID,
	).Scan(&reservationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup reservation for scan %s: %w", scanID, err)
	}
	return reservationID, true, nil
}

// AdmissionState reports the campaign status and the unreserved
// headroom, for shaping refusal responses after Admit said no.
func (c *Controller) AdmissionState(ctx context.Context) (string, int64, error) {
	var status string
	var remaining int64
	err := c.pool.QueryRow(ctx, `
		SELECT status, GREATEST(total_token_budget - used_tokens - reserved_tokens, 0)
		FROM campaigns WHERE id = $1`,
		c.campaignID,
	).Scan(&status, &remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, apperrors.NotFound(apperrors.CodeCampaignNotFound, "campaign not found")
		}
		return "", 0, fmt.Errorf("fetch campaign admission state: %w", err)
	}
	return status, remaining, nil
}

// ReleaseForScans releases unsettled reservations held by the given
// scans, returning headroom to the budget without consuming any of it.
// Used when scans are cancelled, swept stale, or deleted.
func (c *Controller) ReleaseForScans(ctx context.Context, scanIDs []string) (int, error) {
	if len(scanIDs) == 0 {
		return 0, nil
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin release tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		UPDATE reservations SET settled = true, settled_at = now()
		WHERE scan_id = ANY($1) AND settled = false
		RETURNING campaign_id, estimated_tokens`,
		scanIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("release reservations: %w", err)
	}
	releasedByCampaign := map[string]int64{}
	released := 0
	for rows.Next() {
		var campaignID string
		var estimated int64
		if err := rows.Scan(&campaignID, &estimated); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan released reservation: %w", err)
		}
		releasedByCampaign[campaignID] += estimated
		released++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate released reservations: %w", err)
	}

	for campaignID, tokens := range releasedByCampaign {
		if _, err := tx.Exec(ctx, `
			UPDATE campaigns SET
				reserved_tokens = GREATEST(reserved_tokens - $2, 0),
				updated_at = now()
			WHERE id = $1`,
			campaignID, tokens,
		); err != nil {
			return 0, fmt.Errorf("return reserved tokens to campaign %s: %w", campaignID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit release tx: %w", err)
	}
	return released, nil
}

// Pause rejects new admissions without touching in-flight reservations.
func (c *Controller) Pause(ctx context.Context, actor string) error {
	return c.flipStatus(ctx, "ACTIVE", "PAUSED", "pause", actor, domain.EventCampaignPaused)
}

// Resume re-enables admissions.
func (c *Controller) Resume(ctx context.Context, actor string) error {
	return c.flipStatus(ctx, "PAUSED", "ACTIVE", "resume", actor, domain.EventCampaignResumed)
}

func (c *Controller) flipStatus(ctx context.Context, from, to, operation, actor string, eventType domain.EventType) error {
	tag, err := c.pool.Exec(ctx, `
		UPDATE campaigns SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		c.campaignID, from, to,
	)
	if err != nil {
		return fmt.Errorf("%s campaign: %w", operation, err)
	}
	if tag.RowsAffected() == 0 {
		status, err := c.currentStatus(ctx)
		if err != nil {
			return err
		}
		return apperrors.ErrInvalidStatef(status, operation)
	}

	c.dispatchEvent(ctx, eventType, actor, "")
	logger.Info("Campaign status changed",
		zap.String("campaign_id", c.campaignID),
		zap.String("status", to),
		zap.String("actor", actor),
	)
	return nil
}

// Tick transitions ACTIVE/PAUSED campaigns to ENDED once the promotion
// window closes. Idempotent; runs on a periodic schedule.
func (c *Controller) Tick(ctx context.Context) error {
	tag, err := c.pool.Exec(ctx, `
		UPDATE campaigns SET status = 'ENDED', updated_at = now()
		WHERE id = $1 AND status IN ('ACTIVE', 'PAUSED') AND now() > ends_at`,
		c.campaignID,
	)
	if err != nil {
		return fmt.Errorf("tick campaign: %w", err)
	}
	if tag.RowsAffected() > 0 {
		c.dispatchEvent(ctx, domain.EventCampaignEnded, "system", "promotion window closed")
		logger.Info("Campaign ended", zap.String("campaign_id", c.campaignID))
	}
	return nil
}

func (c *Controller) currentStatus(ctx context.Context) (string, error) {
	var status string
	err := c.pool.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1`, c.campaignID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NotFound(apperrors.CodeCampaignNotFound, "campaign not found")
		}
		return "", fmt.Errorf("fetch campaign status: %w", err)
	}
	return status, nil
}

func (c *Controller) notifyIfDepleted(ctx context.Context, campaignID string) {
	status, err := c.currentStatus(ctx)
	if err != nil {
		return
	}
	if status == string(domain.CampaignStatusDepleted) {
		c.dispatchEvent(ctx, domain.EventCampaignDepleted, "system", "token budget consumed")
	}
}

func (c *Controller) dispatchEvent(ctx context.Context, eventType domain.EventType, actor, reason string) {
	if c.events == nil {
		return
	}
	payload, err := (domain.CampaignEventPayload{CampaignID: c.campaignID, Reason: reason}).ToJSON()
	if err != nil {
		return
	}
	_ = c.events.Dispatch(ctx, &domain.DomainEvent{
		EventID:       generateEventID(),
		EventType:     eventType,
		AggregateType: "campaign",
		AggregateID:   c.campaignID,
		Payload:       payload,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	})
}

func generateReservationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "rsv-" + uuid.New().String()
	}
	return "rsv-" + id.String()
}

func generateEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "evt-" + uuid.New().String()
	}
	return "evt-" + id.String()
}
