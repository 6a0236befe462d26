package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/infrastructure/logging"
	"lista_presentes/internal/usecase/interfaces"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrRevokedToken       = errors.New("revoked token")
)

// Credentials are the single fixed login accepted by the API.
//
// When PasswordHash (bcrypt) is set it takes precedence over Password.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// IAuthUseCase is the auth gate: login, bearer verification and logout.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.AccessToken, error)
	Authenticate(ctx context.Context, token string) (entities.TokenClaims, error)
	Logout(ctx context.Context, token string) error
}

type AuthUseCase struct {
	credentials Credentials
	tokens      interfaces.ITokenIssuer
	revoked     interfaces.IRevokedTokenRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(credentials Credentials, tokens interfaces.ITokenIssuer, revoked interfaces.IRevokedTokenRepository) *AuthUseCase {
	return &AuthUseCase{credentials: credentials, tokens: tokens, revoked: revoked}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.AccessToken, error) {
	if !u.checkCredentials(username, password) {
		logging.Log.WithField("username", username).Warn("[auth][usecase] login rejected")
		return entities.AccessToken{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(username)
	if err != nil {
		return entities.AccessToken{}, fmt.Errorf("issue token: %w", err)
	}
	logging.Log.WithField("jti", token.ID).Info("[auth][usecase] login success")
	return token, nil
}

func (u *AuthUseCase) checkCredentials(username, password string) bool {
	if username == "" || password == "" || u.credentials.Username == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.credentials.Username)) == 1

	var passOK bool
	switch {
	case u.credentials.PasswordHash != "":
		passOK = bcrypt.CompareHashAndPassword([]byte(u.credentials.PasswordHash), []byte(password)) == nil
	case u.credentials.Password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(u.credentials.Password)) == 1
	}
	return userOK && passOK
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.TokenClaims{}, ErrInvalidToken
	}

	claims, err := u.tokens.Parse(token)
	if err != nil {
		return entities.TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if u.revoked != nil && claims.ID != "" {
		revoked, err := u.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return entities.TokenClaims{}, err
		}
		if revoked {
			return entities.TokenClaims{}, ErrRevokedToken
		}
	}
	return claims, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := u.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if u.revoked == nil {
		return errors.New("revoked token repository not configured")
	}
	if err := u.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt); err != nil {
		return err
	}
	logging.Log.WithField("jti", claims.ID).Info("[auth][usecase] token revoked")
	return nil
}
