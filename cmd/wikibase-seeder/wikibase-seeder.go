package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/kbsync/wikibase/internal/pkg/application/seeder"
	"github.com/kbsync/wikibase/pkg/wikibase/client"
)

const (
	appName string = "wikibase-seeder"
)

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	apiURL := env.GetVariableOrDefault(ctx, "WIKIBASE_API_URL", "http://localhost:8181/w/api.php")
	accessToken := env.GetVariableOrDefault(ctx, "WIKIBASE_ACCESS_TOKEN", "")
	debug := env.GetVariableOrDefault(ctx, "WIKIBASE_CLIENT_DEBUG", "false")
	seedFile := env.GetVariableOrDefault(ctx, "SEED_FILE", "/opt/wikibase-seeder/seed.yaml")

	cfg, err := loadConfiguration(seedFile)
	if err != nil {
		log.Error("failed to load seed plan", "err", err.Error())
		os.Exit(1)
	}

	store := client.NewStoreClient(apiURL, client.Debug(debug), client.AccessToken(accessToken))

	app, err := seeder.New(store, cfg)
	if err != nil {
		log.Error("failed to create seeder", "err", err.Error())
		os.Exit(1)
	}

	createdIDs, err := app.Seed(ctx)
	if err != nil {
		log.Error("seeding failed", "err", err.Error(), slog.Int("created", len(createdIDs)))
		os.Exit(1)
	}

	log.Info("done seeding", slog.Int("created", len(createdIDs)))
}

func loadConfiguration(path string) (*seeder.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return seeder.LoadConfiguration(f)
}
