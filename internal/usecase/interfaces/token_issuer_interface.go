package interfaces

import "lista_presentes/internal/domain/entities"

// ITokenIssuer signs and verifies bearer tokens.
type ITokenIssuer interface {
	Issue(subject string) (entities.AccessToken, error)
	Parse(token string) (entities.TokenClaims, error)
}
