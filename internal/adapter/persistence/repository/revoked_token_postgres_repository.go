package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lista_presentes/internal/usecase/interfaces"
)

// RevokedTokenPostgresRepository stores logged-out token ids.

type RevokedTokenPostgresRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IRevokedTokenRepository = (*RevokedTokenPostgresRepository)(nil)

func NewRevokedTokenPostgresRepository(db *sql.DB) *RevokedTokenPostgresRepository {
	return &RevokedTokenPostgresRepository{db: db, now: time.Now}
}

func (r *RevokedTokenPostgresRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_tokens (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, tokenID, expiresAt.UTC()); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *RevokedTokenPostgresRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM revoked_tokens
			WHERE jti = $1 AND expires_at > $2
		)
	`
	var revoked bool
	if err := r.db.QueryRowContext(ctx, query, tokenID, r.now().UTC()).Scan(&revoked); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return revoked, nil
}
