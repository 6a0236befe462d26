package response

import "lista_presentes/internal/domain/entities"

type GiftItemResponse struct {
	ID           int64   `json:"id"`
	Category     *string `json:"categoria"`
	Name         string  `json:"nome"`
	Description  string  `json:"descricao"`
	Price        float64 `json:"valor"`
	PurchaseLink string  `json:"link_compra"`
	Purchased    bool    `json:"comprado"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromGiftItem(g entities.GiftItem) GiftItemResponse {
	return GiftItemResponse{
		ID:           g.ID,
		Category:     g.Category,
		Name:         g.Name,
		Description:  g.Description,
		Price:        g.Price,
		PurchaseLink: g.PurchaseLink,
		Purchased:    g.Purchased,
	}
}

func FromGiftItems(items []entities.GiftItem) []GiftItemResponse {
	out := make([]GiftItemResponse, 0, len(items))
	for _, g := range items {
		out = append(out, FromGiftItem(g))
	}
	return out
}
