package routes

import (
	"context"
	"fmt"

	"lista_presentes/internal/adapter/persistence/repository"
	"lista_presentes/internal/infrastructure/config"
	"lista_presentes/internal/infrastructure/database"
	"lista_presentes/internal/usecase/interfaces"
)

type storage struct {
	items   interfaces.IGiftItemRepository
	revoked interfaces.IRevokedTokenRepository
	close   func() error
}

func openStorage(ctx context.Context, cfg config.Config) (storage, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return storage{}, err
		}
		return storage{
			items:   repository.NewGiftItemDynamoRepository(ddb, cfg.DynamoDB.GiftItemsTable),
			revoked: repository.NewRevokedTokenDynamoRepository(ddb, cfg.DynamoDB.RevokedTokensTable),
			close:   func() error { return nil },
		}, nil
	case config.StorageBackendPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return storage{}, err
		}
		return storage{
			items:   repository.NewGiftItemPostgresRepository(db),
			revoked: repository.NewRevokedTokenPostgresRepository(db),
			close:   db.Close,
		}, nil
	default:
		return storage{}, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
