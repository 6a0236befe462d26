package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lista_presentes/internal/domain/entities"
	"lista_presentes/internal/usecase/interfaces"
)

const giftItemsTable = "lista_de_presentes"

// syncGiftItemSequence moves the identity sequence past caller-chosen ids.
const syncGiftItemSequence = `
		SELECT setval(pg_get_serial_sequence('lista_de_presentes', 'id'), GREATEST(MAX(id), 1))
		FROM lista_de_presentes
	`

const selectGiftItems = `
		SELECT id, categoria, nome, descricao, valor, link_compra, comprado
		FROM lista_de_presentes
	`

// GiftItemPostgresRepository persists GiftItem rows in PostgreSQL.
//
// Each method runs one statement on a connection taken from the pool.

type GiftItemPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IGiftItemRepository = (*GiftItemPostgresRepository)(nil)

func NewGiftItemPostgresRepository(db *sql.DB) *GiftItemPostgresRepository {
	return &GiftItemPostgresRepository{db: db}
}

func (r *GiftItemPostgresRepository) List(ctx context.Context) ([]entities.GiftItem, error) {
	rows, err := r.db.QueryContext(ctx, selectGiftItems+"ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.GiftItem, 0)
	for rows.Next() {
		item, err := scanGiftItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *GiftItemPostgresRepository) GetByID(ctx context.Context, id int64) (entities.GiftItem, error) {
	item, err := scanGiftItem(r.db.QueryRowContext(ctx, selectGiftItems+"WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.GiftItem{}, nil
		}
		return entities.GiftItem{}, err
	}
	return item, nil
}

// Create inserts the item inside its own transaction; a failed insert is
// rolled back before the error is returned. When the caller picks the id the
// identity sequence is advanced in the same transaction.
func (r *GiftItemPostgresRepository) Create(ctx context.Context, item entities.GiftItem) (entities.GiftItem, error) {
	explicitID := item.HasID()
	columns, values := giftItemInsertColumns(item)
	query, err := insertStatement(giftItemsTable, columns, values, "id")
	if err != nil {
		return entities.GiftItem{}, err
	}

	err = withTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		if err := tx.QueryRowContext(ctx, query, values...).Scan(&item.ID); err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
		if !explicitID {
			return nil
		}
		if _, err := tx.ExecContext(ctx, syncGiftItemSequence); err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.GiftItem{}, err
	}
	return item, nil
}

func (r *GiftItemPostgresRepository) UpdatePurchased(ctx context.Context, id int64, purchased bool) error {
	query := `
		UPDATE lista_de_presentes
		SET comprado = $1
		WHERE id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, purchased, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *GiftItemPostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM lista_de_presentes
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// giftItemInsertColumns maps fields to columns explicitly. id is only sent
// when the caller chose one; otherwise the identity column assigns it.
func giftItemInsertColumns(item entities.GiftItem) ([]string, []any) {
	columns := make([]string, 0, 7)
	values := make([]any, 0, 7)

	if item.HasID() {
		columns = append(columns, "id")
		values = append(values, item.ID)
	}
	columns = append(columns, "categoria", "nome", "descricao", "valor", "link_compra", "comprado")
	values = append(values, nullableString(item.Category), item.Name, item.Description, item.Price, item.PurchaseLink, item.Purchased)
	return columns, values
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGiftItem(s rowScanner) (entities.GiftItem, error) {
	var (
		item     entities.GiftItem
		category sql.NullString
	)
	err := s.Scan(&item.ID, &category, &item.Name, &item.Description, &item.Price, &item.PurchaseLink, &item.Purchased)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.GiftItem{}, err
		}
		return entities.GiftItem{}, fmt.Errorf("db error: %w", err)
	}
	if category.Valid {
		c := category.String
		item.Category = &c
	}
	return item, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
