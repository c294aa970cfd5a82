package routes

import (
	"context"
	"fmt"

	"taller_mecanico/internal/adapter/persistence/memory"
	"taller_mecanico/internal/adapter/persistence/postgres"
	"taller_mecanico/internal/adapter/persistence/repository"
	"taller_mecanico/internal/infrastructure/config"
	"taller_mecanico/internal/infrastructure/database"
	"taller_mecanico/internal/usecase/interfaces"
)

type stores struct {
	catalog  interfaces.ICatalogRepository
	ledger   interfaces.ILedgerRepository
	calendar interfaces.ICalendarRepository
	users    interfaces.IUserRepository
	close    func()
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return newMemoryStores(), nil

	case config.StoragePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return stores{}, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return stores{}, err
		}
		return stores{
			catalog:  postgres.NewCatalogRepository(pool),
			ledger:   postgres.NewLedgerRepository(pool),
			calendar: postgres.NewCalendarRepository(pool),
			users:    postgres.NewUserRepository(pool),
			close:    pool.Close,
		}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return stores{}, err
		}
		return stores{
			catalog:  repository.NewCatalogDynamoRepository(ddb, cfg.Tables),
			ledger:   repository.NewLedgerDynamoRepository(ddb, cfg.Tables),
			calendar: repository.NewCalendarDynamoRepository(ddb, cfg.Tables),
			users:    repository.NewUserDynamoRepository(ddb, cfg.Tables),
			close:    func() {},
		}, nil
	}
	return stores{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func newMemoryStores() stores {
	return stores{
		catalog:  memory.NewCatalog(),
		ledger:   memory.NewLedger(),
		calendar: memory.NewCalendar(),
		users:    memory.NewUsers(),
		close:    func() {},
	}
}
