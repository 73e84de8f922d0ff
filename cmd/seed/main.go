// Comando de resiembra: sobreescribe el directorio de usuarios del store
// configurado con los usuarios de demostración. El API siembra solo cuando
// el directorio está vacío; este comando fuerza la resiembra.
package main

import (
	"context"

	"github.com/dominickcapital/crm-api/internal/infrastructure/crmstore"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
	"github.com/dominickcapital/crm-api/pkg/config"
	"github.com/dominickcapital/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Service: "crm-seed", Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el blob store")
	}
	defer cleanup()

	users := crmstore.SeedUsers()
	if err := store.Set(storage.KeyUsers, users); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios")
	}
	log.Info().
		Int("usuarios", len(users)).
		Str("storage", cfg.Storage.Driver).
		Msg("directorio de usuarios sembrado")
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "postgres":
		pool, err := storage.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		store, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
