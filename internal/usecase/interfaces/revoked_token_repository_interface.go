package interfaces

import (
	"context"
	"time"
)

// IRevokedTokenRepository keeps the ids (jti) of access tokens revoked by
// logout. Entries only matter until the token would have expired anyway.

type IRevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
