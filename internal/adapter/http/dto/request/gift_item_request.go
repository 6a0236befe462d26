package request

import (
	"errors"
	"lista_presentes/internal/domain/entities"
)

var (
	ErrMissingGiftItemFields = errors.New("missing required gift item fields")
	ErrMissingPurchasedFlag  = errors.New("missing comprado flag")
)

// GiftItemCreateRequest is the POST /produtos payload.
//
// Pointers distinguish an absent field from a zero value: valor 0 is a
// valid price, a missing valor is not.
type GiftItemCreateRequest struct {
	ID           *int64   `json:"id"`
	Category     *string  `json:"categoria"`
	Name         *string  `json:"nome"`
	Description  *string  `json:"descricao"`
	Price        *float64 `json:"valor"`
	PurchaseLink *string  `json:"link_compra"`
}

func (r GiftItemCreateRequest) ToGiftItem() (entities.GiftItem, error) {
	if r.Name == nil || r.Description == nil || r.Price == nil || r.PurchaseLink == nil {
		return entities.GiftItem{}, ErrMissingGiftItemFields
	}

	item := entities.GiftItem{
		Category:     r.Category,
		Name:         *r.Name,
		Description:  *r.Description,
		Price:        *r.Price,
		PurchaseLink: *r.PurchaseLink,
	}
	if r.ID != nil {
		item.ID = *r.ID
	}
	return item, nil
}

// GiftItemUpdateRequest is the PUT /produtos/{id} payload. Only comprado can
// change after creation; a non-boolean value fails JSON binding.
type GiftItemUpdateRequest struct {
	Purchased *bool `json:"comprado"`
}

func (r GiftItemUpdateRequest) ResolvePurchased() (bool, error) {
	if r.Purchased == nil {
		return false, ErrMissingPurchasedFlag
	}
	return *r.Purchased, nil
}
