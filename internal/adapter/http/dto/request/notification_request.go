package request

import "lista_presentes/internal/domain/entities"

// PurchaseConfirmationRequest is the POST /send-email payload.
type PurchaseConfirmationRequest struct {
	UserName    string `json:"nome_usuario" binding:"required"`
	ProductName string `json:"nome_produto" binding:"required"`
}

func (r PurchaseConfirmationRequest) ToPurchaseConfirmation() entities.PurchaseConfirmation {
	return entities.PurchaseConfirmation{
		UserName:    r.UserName,
		ProductName: r.ProductName,
	}
}
