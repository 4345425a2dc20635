package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/kbsync/wikibase/pkg/wikibase/client"
	"github.com/kbsync/wikibase/pkg/wikibase/datatypes"
	"github.com/kbsync/wikibase/pkg/wikibase/entities"
)

// Seeder creates the entities of a seed plan in a store and verifies
// that each of them can be fetched back.
type Seeder interface {
	Seed(ctx context.Context) ([]string, error)
}

type seederApp struct {
	factory *entities.Factory
	config  *Config
}

func New(store client.StoreClient, cfg *Config) (Seeder, error) {
	options := []func(*entities.Factory){}

	if cfg.Language != "" {
		options = append(options, entities.Language(cfg.Language))
	}

	return &seederApp{
		factory: entities.NewFactory(store, options...),
		config:  cfg,
	}, nil
}

func (app *seederApp) Seed(ctx context.Context) ([]string, error) {
	log := logging.GetFromContext(ctx)

	createdIDs := make([]string, 0, len(app.config.Properties)+len(app.config.Items))

	for _, seed := range app.config.Properties {
		property := app.factory.NewProperty()

		options := []entities.CreateOption{}
		if seed.DataType != "" {
			options = append(options, entities.DataType(datatypes.Type(seed.DataType)))
		}

		err := property.Create(ctx, seed.Label, options...)
		if err != nil {
			return createdIDs, fmt.Errorf("failed to seed property %q: %w", seed.Label, err)
		}

		log.Info("seeded property", slog.String("entity_id", property.ID()), slog.String("label", seed.Label))
		createdIDs = append(createdIDs, property.ID())

		if err := verify(ctx, property); err != nil {
			return createdIDs, err
		}
	}

	for _, seed := range app.config.Items {
		item := app.factory.NewItem()

		err := item.Create(ctx, seed.Label)
		if err != nil {
			return createdIDs, fmt.Errorf("failed to seed item %q: %w", seed.Label, err)
		}

		log.Info("seeded item", slog.String("entity_id", item.ID()), slog.String("label", seed.Label))
		createdIDs = append(createdIDs, item.ID())

		if err := verify(ctx, item); err != nil {
			return createdIDs, err
		}
	}

	return createdIDs, nil
}

func verify(ctx context.Context, e *entities.Entity) error {
	fetched, err := e.Get(ctx, entities.WithAttributes(entities.AttributeLabels))
	if err != nil {
		return fmt.Errorf("failed to fetch %s back after seeding: %w", e.ID(), err)
	}

	if len(fetched) != 1 || fetched[0].ID() != e.ID() {
		return fmt.Errorf("store returned unexpected entities when verifying %s", e.ID())
	}

	return nil
}
