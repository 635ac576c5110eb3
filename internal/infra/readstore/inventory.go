package readstore

import (
	"context"

	"github.com/bothrasports-ops/arena-manager/internal/infra"
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/pgconv"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const inventoryColumns = `id, name, price, created_at, updated_at`

type InventoryReadStore struct {
	dbtx db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{dbtx: dbtx}
}

func (r *InventoryReadStore) FindAll(ctx context.Context) ([]*queries.InventoryItemView, error) {
	rows, err := r.dbtx.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventory ORDER BY name ASC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory", err)
	}
	defer rows.Close()

	items := []*queries.InventoryItemView{}
	for rows.Next() {
		view, err := scanInventoryItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory row", err)
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inventory rows", err)
	}

	return items, nil
}

func (r *InventoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InventoryItemView, error) {
	row := r.dbtx.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`,
		id,
	)

	view, err := scanInventoryItem(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory item", err)
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventoryItem(row rowScanner) (*queries.InventoryItemView, error) {
	var (
		view      queries.InventoryItemView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Name, &view.Price, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
