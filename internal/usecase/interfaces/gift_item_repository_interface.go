package interfaces

import (
	"context"
	"lista_presentes/internal/domain/entities"
)

// IGiftItemRepository abstracts persistence for GiftItem.
//
// Lookups return a zero GiftItem (ID == 0) when the row does not exist.
// UpdatePurchased and Delete do not report whether a row matched.

type IGiftItemRepository interface {
	List(ctx context.Context) ([]entities.GiftItem, error)
	GetByID(ctx context.Context, id int64) (entities.GiftItem, error)
	Create(ctx context.Context, item entities.GiftItem) (entities.GiftItem, error)
	UpdatePurchased(ctx context.Context, id int64, purchased bool) error
	Delete(ctx context.Context, id int64) error
}
