package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRevokedTokenRepoWithMock(t *testing.T) (*RevokedTokenPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRevokedTokenPostgresRepository(db), mock
}

func TestRevokedTokenRepository_Revoke(t *testing.T) {
	repo, mock := newRevokedTokenRepoWithMock(t)
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	q := `(?s)INSERT\s+INTO\s+revoked_tokens\s+\(jti,\s*expires_at\)\s+VALUES\s+\(\$1,\s*\$2\)\s+ON CONFLICT \(jti\) DO NOTHING`
	mock.ExpectExec(q).WithArgs("jti-1", expires).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Revoke(context.Background(), "jti-1", expires))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokedTokenRepository_Revoke_DBError(t *testing.T) {
	repo, mock := newRevokedTokenRepoWithMock(t)
	mock.ExpectExec(`INSERT\s+INTO\s+revoked_tokens`).WillReturnError(errors.New("db down"))

	err := repo.Revoke(context.Background(), "jti-1", time.Now())
	require.Error(t, err)
	assert.Regexp(t, `error performing sql request: .*db down`, err.Error())
}

func TestRevokedTokenRepository_IsRevoked(t *testing.T) {
	repo, mock := newRevokedTokenRepoWithMock(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	q := `(?s)SELECT EXISTS \(\s*SELECT 1 FROM revoked_tokens\s+WHERE jti = \$1 AND expires_at > \$2\s*\)`
	mock.ExpectQuery(q).WithArgs("jti-1", now).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q).WithArgs("jti-2", now).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	revoked, err := repo.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(context.Background(), "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokedTokenRepository_IsRevoked_DBError(t *testing.T) {
	repo, mock := newRevokedTokenRepoWithMock(t)
	mock.ExpectQuery(`revoked_tokens`).WillReturnError(errors.New("db down"))

	_, err := repo.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}
