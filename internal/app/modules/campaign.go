package modules

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"a11ysentinel.io/sentinel/internal/campaign"
	"a11ysentinel.io/sentinel/internal/jobs"
)

// CampaignModule owns the token-budget admission controller and its
// periodic window check.
type CampaignModule struct {
	infra      *Infrastructure
	controller *campaign.Controller
	tickWorker *jobs.CampaignTickWorker
}

// NewCampaignModule creates the campaign module.
func NewCampaignModule(infra *Infrastructure) *CampaignModule {
	controller := campaign.NewController(infra.EntClient, infra.Pool, infra.Events)
	return &CampaignModule{
		infra:      infra,
		controller: controller,
		tickWorker: jobs.NewCampaignTickWorker(controller),
	}
}

// Controller exposes the admission controller to sibling modules.
func (m *CampaignModule) Controller() *campaign.Controller {
	return m.controller
}

// Seed creates the campaign row from config on first boot. An existing
// campaign is never resized.
func (m *CampaignModule) Seed(ctx context.Context) error {
	cfg := m.infra.Config.Campaign
	if cfg.TokenBudget <= 0 {
		return fmt.Errorf("campaign token budget is not configured")
	}
	startsAt := cfg.StartsAt
	if startsAt.IsZero() {
		startsAt = time.Now().UTC()
	}
	endsAt := cfg.EndsAt
	if endsAt.IsZero() {
		endsAt = startsAt.Add(30 * 24 * time.Hour)
	}
	return m.controller.Ensure(ctx, campaign.SeedConfig{
		Name:        cfg.Name,
		TokenBudget: cfg.TokenBudget,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	})
}

func (m *CampaignModule) Name() string { return "campaign" }

func (m *CampaignModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, m.tickWorker)
}

func (m *CampaignModule) Shutdown(context.Context) error { return nil }
