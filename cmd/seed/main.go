// Package main provides data seeding for Sentinel.
//
// The server auto-initializes the campaign on first startup; this
// command performs explicit, idempotent data bootstrap outside that
// path: the default admin account and the campaign ledger row.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/internal/api/middleware"
	"a11ysentinel.io/sentinel/internal/campaign"
	"a11ysentinel.io/sentinel/internal/config"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/infrastructure"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

const defaultAdminID = "user-default-admin"

// seedFile is the optional yaml fixture referenced by SEED_FILE. Values
// present in the file override config defaults.
type seedFile struct {
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Campaign struct {
		Name        string    `yaml:"name"`
		TokenBudget int64     `yaml:"token_budget"`
		StartsAt    time.Time `yaml:"starts_at"`
		EndsAt      time.Time `yaml:"ends_at"`
	} `yaml:"campaign"`
}

func loadSeedFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &sf, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
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

	logger.Info("Starting data seeding...")

	username, password := "admin", "admin"
	campaignCfg := cfg.Campaign
	if path := os.Getenv("SEED_FILE"); path != "" {
		sf, err := loadSeedFile(path)
		if err != nil {
			return err
		}
		if sf.Admin.Username != "" {
			username = sf.Admin.Username
		}
		if sf.Admin.Password != "" {
			password = sf.Admin.Password
		}
		if sf.Campaign.Name != "" {
			campaignCfg.Name = sf.Campaign.Name
		}
		if sf.Campaign.TokenBudget > 0 {
			campaignCfg.TokenBudget = sf.Campaign.TokenBudget
		}
		if !sf.Campaign.StartsAt.IsZero() {
			campaignCfg.StartsAt = sf.Campaign.StartsAt
		}
		if !sf.Campaign.EndsAt.IsZero() {
			campaignCfg.EndsAt = sf.Campaign.EndsAt
		}
		logger.Info("Loaded seed overrides", zap.String("path", path))
	}

	if err := seedDefaultAdmin(ctx, db.EntClient, username, password); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedCampaign(ctx, db, campaignCfg); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// adminPermissions returns the permission set granted to the default
// admin: explicit grants plus the super-admin permission.
func adminPermissions() []string {
	return append(middleware.AllPermissions(), middleware.PermPlatformAdmin)
}

// seedDefaultAdmin creates the default admin user. Credentials default
// to admin/admin unless a seed file overrides them; change the password
// immediately on real deployments.
func seedDefaultAdmin(ctx context.Context, client *ent.Client, username, password string) error {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = client.User.Create().
		SetID(defaultAdminID).
		SetUsername(username).
		SetPasswordHash(string(hashBytes)).
		SetPermissions(adminPermissions()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user", zap.String("username", username))
	return nil
}

// seedCampaign creates the campaign ledger row from config. An existing
// campaign is left untouched: budgets are never silently resized.
func seedCampaign(ctx context.Context, db *infrastructure.DatabaseClients, cfg config.CampaignConfig) error {
	if cfg.TokenBudget <= 0 {
		logger.Info("Campaign token budget not configured, skipping campaign seed")
		return nil
	}

	startsAt := cfg.StartsAt
	if startsAt.IsZero() {
		startsAt = time.Now().UTC()
	}
	endsAt := cfg.EndsAt
	if endsAt.IsZero() {
		endsAt = startsAt.Add(30 * 24 * time.Hour)
	}

	controller := campaign.NewController(db.EntClient, db.Pool, domain.NewEventDispatcher())
	if err := controller.Ensure(ctx, campaign.SeedConfig{
		Name:        cfg.Name,
		TokenBudget: cfg.TokenBudget,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	}); err != nil {
		return err
	}

	logger.Info("Campaign ledger ready",
		zap.String("name", cfg.Name),
		zap.Int64("token_budget", cfg.TokenBudget),
	)
	return nil
}
