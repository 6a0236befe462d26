package response

import (
	"lista_presentes/internal/domain/entities"
	"time"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromAccessToken(t entities.AccessToken) LoginResponse {
	return LoginResponse{
		AccessToken: t.Token,
		TokenType:   "Bearer",
		ExpiresAt:   t.ExpiresAt,
	}
}
