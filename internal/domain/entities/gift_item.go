package entities

// GiftItem is a single gift-registry entry (produto da lista de presentes).
//
// Storage model (PostgreSQL):
//   - table lista_de_presentes, PK: id
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// Lifecycle:
//   - created by POST, id is caller-chosen or generated by the store
//   - only Purchased (comprado) changes after creation
//   - removed by DELETE, no soft delete
type GiftItem struct {
	ID           int64   `json:"id"`
	Category     *string `json:"categoria"`
	Name         string  `json:"nome"`
	Description  string  `json:"descricao"`
	Price        float64 `json:"valor"`
	PurchaseLink string  `json:"link_compra"`
	Purchased    bool    `json:"comprado"`
}

// HasID reports whether the caller chose the primary key.
func (g GiftItem) HasID() bool {
	return g.ID > 0
}
