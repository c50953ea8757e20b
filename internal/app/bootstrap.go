// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"a11ysentinel.io/sentinel/internal/api/handlers"
	"a11ysentinel.io/sentinel/internal/app/modules"
	"a11ysentinel.io/sentinel/internal/config"
	"a11ysentinel.io/sentinel/internal/infrastructure"
	"a11ysentinel.io/sentinel/internal/jobs"
	"a11ysentinel.io/sentinel/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	campaignModule := modules.NewCampaignModule(infra)
	scanModule := modules.NewScanModule(infra, campaignModule.Controller())
	allModules := []modules.Module{campaignModule, scanModule}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	periodic := jobs.PeriodicJobs(cfg.Scan.StaleSweepEvery, cfg.Campaign.TickEvery)
	if err := infra.InitRiver(workers, periodic); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	if err := campaignModule.Seed(ctx); err != nil {
		infra.Close()
		return nil, fmt.Errorf("seed campaign: %w", err)
	}
	if err := scanModule.BindRiver(infra); err != nil {
		infra.Close()
		return nil, fmt.Errorf("bind scan module: %w", err)
	}

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(server, serverDeps.JWTCfg, cfg.Security.CORSOrigins),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
