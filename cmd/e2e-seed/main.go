// Package main seeds deterministic fixtures for live end-to-end tests.
//
// This command is test-environment only and is intentionally idempotent.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"a11ysentinel.io/sentinel/ent"
	entbatch "a11ysentinel.io/sentinel/ent/batch"
	entscan "a11ysentinel.io/sentinel/ent/scan"
	entuser "a11ysentinel.io/sentinel/ent/user"
	"a11ysentinel.io/sentinel/internal/aiqueue"
	"a11ysentinel.io/sentinel/internal/api/middleware"
	"a11ysentinel.io/sentinel/internal/campaign"
	"a11ysentinel.io/sentinel/internal/config"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/infrastructure"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

const (
	defaultAdminUsername = "e2e-admin"
	defaultAdminPassword = "e2e-admin-123"

	defaultCampaignName   = "e2e-campaign"
	defaultCampaignBudget = int64(500_000)

	defaultBatchID        = "batch-e2e-demo"
	defaultCompletedScan  = "scan-e2e-completed"
	defaultFailedScan     = "scan-e2e-failed"
	defaultAiPendingScan  = "scan-e2e-ai-pending"
	defaultEstimatedCost  = int64(12_000)
	defaultAdminID        = "user-e2e-admin"
	defaultHomepage       = "https://e2e.example.com"
	defaultSnapshotPrefix = "rendered page text for "
)

type fixtureConfig struct {
	AdminUsername string
	AdminPassword string

	CampaignName   string
	CampaignBudget int64

	BatchID         string
	CompletedScanID string
	FailedScanID    string
	AiPendingScanID string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "e2e-seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	fx := loadFixtureConfig()
	client := db.EntClient

	if err := ensureAdminUser(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}

	events := domain.NewEventDispatcher()
	controller := campaign.NewController(client, db.Pool, events)
	if err := controller.Ensure(ctx, campaign.SeedConfig{
		Name:        fx.CampaignName,
		TokenBudget: fx.CampaignBudget,
		StartsAt:    time.Now().UTC().Add(-time.Hour),
		EndsAt:      time.Now().UTC().Add(30 * 24 * time.Hour),
	}); err != nil {
		return fmt.Errorf("ensure campaign: %w", err)
	}

	if err := ensureDemoBatch(ctx, client, fx); err != nil {
		return fmt.Errorf("ensure demo batch: %w", err)
	}
	if err := ensureAiQueueEntry(ctx, client, db, controller, events, fx); err != nil {
		return fmt.Errorf("ensure ai queue entry: %w", err)
	}

	fmt.Printf("e2e fixtures ready (user=%s campaign=%s batch=%s)\n",
		fx.AdminUsername, fx.CampaignName, fx.BatchID,
	)
	return nil
}

func loadFixtureConfig() fixtureConfig {
	return fixtureConfig{
		AdminUsername:   envOrDefault("E2E_ADMIN_USERNAME", defaultAdminUsername),
		AdminPassword:   envOrDefault("E2E_ADMIN_PASSWORD", defaultAdminPassword),
		CampaignName:    envOrDefault("E2E_CAMPAIGN", defaultCampaignName),
		CampaignBudget:  envInt64OrDefault("E2E_CAMPAIGN_BUDGET", defaultCampaignBudget),
		BatchID:         envOrDefault("E2E_BATCH_ID", defaultBatchID),
		CompletedScanID: envOrDefault("E2E_SCAN_COMPLETED_ID", defaultCompletedScan),
		FailedScanID:    envOrDefault("E2E_SCAN_FAILED_ID", defaultFailedScan),
		AiPendingScanID: envOrDefault("E2E_SCAN_AI_PENDING_ID", defaultAiPendingScan),
	}
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envInt64OrDefault(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func ensureAdminUser(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	exists, err := client.User.Query().Where(entuser.UsernameEQ(fx.AdminUsername)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fx.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = client.User.Create().
		SetID(defaultAdminID).
		SetUsername(fx.AdminUsername).
		SetPasswordHash(string(hash)).
		SetPermissions(append(middleware.AllPermissions(), middleware.PermPlatformAdmin)).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil
	}
	return err
}

// ensureDemoBatch seeds one COMPLETED batch with a completed and a
// failed scan, so list/detail/export/retry endpoints have data to work
// against without running a live scan engine.
func ensureDemoBatch(ctx context.Context, client *ent.Client, fx fixtureConfig) error {
	exists, err := client.Batch.Query().Where(entbatch.IDEQ(fx.BatchID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	now := time.Now().UTC()
	_, err = client.Batch.Create().
		SetID(fx.BatchID).
		SetHomepageURL(defaultHomepage).
		SetWcagLevel(entbatch.WcagLevelAA).
		SetStatus(entbatch.StatusCOMPLETED).
		SetTotalUrls(2).
		SetCompletedCount(1).
		SetFailedCount(1).
		SetTotalIssues(7).
		SetCriticalIssues(1).
		SetSeriousIssues(2).
		SetModerateIssues(3).
		SetMinorIssues(1).
		SetPassedChecks(41).
		SetCreatedBy(fx.AdminUsername).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return err
	}

	_, err = client.Scan.Create().
		SetID(fx.CompletedScanID).
		SetBatchID(fx.BatchID).
		SetURL(defaultHomepage + "/").
		SetStatus(entscan.StatusCOMPLETED).
		SetTotalIssues(7).
		SetCriticalIssues(1).
		SetSeriousIssues(2).
		SetModerateIssues(3).
		SetMinorIssues(1).
		SetPassedChecks(41).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return err
	}

	_, err = client.Scan.Create().
		SetID(fx.FailedScanID).
		SetBatchID(fx.BatchID).
		SetURL(defaultHomepage + "/broken").
		SetStatus(entscan.StatusFAILED).
		SetErrorMessage("connection refused").
		SetCompletedAt(now).
		Save(ctx)
	return err
}

// ensureAiQueueEntry admits one standalone scan against the campaign
// and enqueues it, leaving a PENDING entry for export/import flows.
func ensureAiQueueEntry(
	ctx context.Context,
	client *ent.Client,
	db *infrastructure.DatabaseClients,
	controller *campaign.Controller,
	events *domain.EventDispatcher,
	fx fixtureConfig,
) error {
	exists, err := client.Scan.Query().Where(entscan.IDEQ(fx.AiPendingScanID)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = client.Scan.Create().
		SetID(fx.AiPendingScanID).
		SetURL(defaultHomepage + "/pricing").
		SetStatus(entscan.StatusCOMPLETED).
		SetAiEnabled(true).
		SetContentSnapshot(defaultSnapshotPrefix + defaultHomepage + "/pricing").
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return err
	}

	admitted, reservationID, err := controller.Admit(ctx, fx.AiPendingScanID, defaultEstimatedCost)
	if err != nil {
		return err
	}
	if !admitted {
		return fmt.Errorf("campaign refused fixture admission, budget too small")
	}

	processor := aiqueue.NewProcessor(client, db.Pool, controller, events, aiqueue.Config{})
	return processor.Enqueue(ctx, fx.AiPendingScanID, reservationID)
}
