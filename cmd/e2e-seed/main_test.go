package main

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("E2E_TEST_KEY", "")
	if got := envOrDefault("E2E_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("envOrDefault empty = %q, want fallback", got)
	}

	t.Setenv("E2E_TEST_KEY", "  configured  ")
	if got := envOrDefault("E2E_TEST_KEY", "fallback"); got != "configured" {
		t.Fatalf("envOrDefault value = %q, want configured", got)
	}
}

func TestEnvInt64OrDefault(t *testing.T) {
	t.Setenv("E2E_BUDGET_KEY", "")
	if got := envInt64OrDefault("E2E_BUDGET_KEY", 42); got != 42 {
		t.Fatalf("empty = %d, want 42", got)
	}

	t.Setenv("E2E_BUDGET_KEY", "250000")
	if got := envInt64OrDefault("E2E_BUDGET_KEY", 42); got != 250000 {
		t.Fatalf("value = %d, want 250000", got)
	}

	t.Setenv("E2E_BUDGET_KEY", "-5")
	if got := envInt64OrDefault("E2E_BUDGET_KEY", 42); got != 42 {
		t.Fatalf("negative = %d, want fallback 42", got)
	}
}

func TestLoadFixtureConfig_Defaults(t *testing.T) {
	t.Setenv("E2E_ADMIN_USERNAME", "")
	t.Setenv("E2E_ADMIN_PASSWORD", "")
	t.Setenv("E2E_CAMPAIGN_BUDGET", "")

	cfg := loadFixtureConfig()
	if cfg.AdminUsername != defaultAdminUsername {
		t.Fatalf("AdminUsername = %q, want %q", cfg.AdminUsername, defaultAdminUsername)
	}
	if cfg.CampaignBudget != defaultCampaignBudget {
		t.Fatalf("CampaignBudget = %d, want %d", cfg.CampaignBudget, defaultCampaignBudget)
	}
	if cfg.BatchID != defaultBatchID {
		t.Fatalf("BatchID = %q, want %q", cfg.BatchID, defaultBatchID)
	}
}

func TestLoadFixtureConfig_Overrides(t *testing.T) {
	t.Setenv("E2E_ADMIN_USERNAME", "tester")
	t.Setenv("E2E_CAMPAIGN_BUDGET", "750000")
	t.Setenv("E2E_BATCH_ID", "batch-live-x")

	cfg := loadFixtureConfig()
	if cfg.AdminUsername != "tester" {
		t.Fatalf("AdminUsername = %q, want tester", cfg.AdminUsername)
	}
	if cfg.CampaignBudget != 750000 {
		t.Fatalf("CampaignBudget = %d, want 750000", cfg.CampaignBudget)
	}
	if cfg.BatchID != "batch-live-x" {
		t.Fatalf("BatchID = %q, want batch-live-x", cfg.BatchID)
	}
}
