package entities

// PurchaseConfirmation is the payload of the confirmation email sent when a
// guest reports having bought a gift.
type PurchaseConfirmation struct {
	UserName    string
	ProductName string
}
