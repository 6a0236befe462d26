package usecase

import (
	"context"
	"errors"
	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrGiftItemNotFound     = errors.New("gift item not found")
	ErrInvalidGiftItemID    = errors.New("invalid gift item id")
	ErrInvalidGiftItemPrice = errors.New("invalid gift item price")
)

// IGiftItemUseCase exposes the gift list operations.
//
// Every call is its own unit of work; nothing spans requests.

type IGiftItemUseCase interface {
	List(ctx context.Context) ([]entities.GiftItem, error)
	GetByID(ctx context.Context, id int64) (entities.GiftItem, error)
	Create(ctx context.Context, item entities.GiftItem) (entities.GiftItem, error)
	UpdatePurchased(ctx context.Context, id int64, purchased bool) error
	Delete(ctx context.Context, id int64) error
}

type GiftItemUseCase struct {
	repo interfaces.IGiftItemRepository
}

var _ IGiftItemUseCase = (*GiftItemUseCase)(nil)

func NewGiftItemUseCase(repo interfaces.IGiftItemRepository) *GiftItemUseCase {
	return &GiftItemUseCase{repo: repo}
}

func (u *GiftItemUseCase) List(ctx context.Context) ([]entities.GiftItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.GiftItem{}
	}
	return items, nil
}

func (u *GiftItemUseCase) GetByID(ctx context.Context, id int64) (entities.GiftItem, error) {
	if id < 0 {
		return entities.GiftItem{}, ErrInvalidGiftItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.GiftItem{}, err
	}
	if item.ID == 0 {
		return entities.GiftItem{}, ErrGiftItemNotFound
	}
	return item, nil
}

// Create stores the item with its fields exactly as given. Presence of the
// required fields is checked by the caller; only a negative id or price is
// rejected here.
func (u *GiftItemUseCase) Create(ctx context.Context, item entities.GiftItem) (entities.GiftItem, error) {
	if item.ID < 0 {
		return entities.GiftItem{}, ErrInvalidGiftItemID
	}
	if item.Price < 0 {
		return entities.GiftItem{}, ErrInvalidGiftItemPrice
	}

	// New entries always start as not purchased.
	item.Purchased = false

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		logging.Log.WithFields(logrus.Fields{"id": item.ID, "nome": item.Name}).
			Errorf("[gift][usecase] create failed err=%v", err)
		return entities.GiftItem{}, err
	}
	logging.Log.WithField("id", created.ID).Info("[gift][usecase] create success")
	return created, nil
}

func (u *GiftItemUseCase) UpdatePurchased(ctx context.Context, id int64, purchased bool) error {
	if id < 0 {
		return ErrInvalidGiftItemID
	}

	if err := u.repo.UpdatePurchased(ctx, id, purchased); err != nil {
		logging.Log.WithField("id", id).Errorf("[gift][usecase] update comprado failed err=%v", err)
		return err
	}
	logging.Log.WithFields(logrus.Fields{"id": id, "comprado": purchased}).Info("[gift][usecase] update comprado success")
	return nil
}

func (u *GiftItemUseCase) Delete(ctx context.Context, id int64) error {
	if id < 0 {
		return ErrInvalidGiftItemID
	}
	return u.repo.Delete(ctx, id)
}
