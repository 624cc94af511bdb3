package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/FeriaStock-api/internal/domain"
	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
	"github.com/jhoicas/FeriaStock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación del puerto StockItemRepository sobre PostgreSQL.
// Los SELECT usan COALESCE en los campos opcionales para tolerar registros
// antiguos con columnas en NULL (se degradan a 0 / "" en vez de fallar).
type StockItemRepo struct {
	pool *pgxpool.Pool
}

// NewStockItemRepository construye el adaptador de persistencia para ítems.
func NewStockItemRepository(pool *pgxpool.Pool) *StockItemRepo {
	return &StockItemRepo{pool: pool}
}

// Create persiste un nuevo ítem. Devuelve ErrItemAlreadyExists si ya hay un
// ítem para el mismo (exhibitor_name, item_type).
func (r *StockItemRepo) Create(ctx context.Context, item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, exhibitor_name, item_type, open_stock, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.ExhibitorName, item.ItemType, item.OpenStock, item.Location, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrItemAlreadyExists
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *StockItemRepo) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	query := selectItems + ` WHERE id = $1`
	var it entity.StockItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.ExhibitorName, &it.ItemType, &it.OpenStock, &it.Location, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item by id: %w", err)
	}
	return &it, nil
}

// GetByExhibitorAndType obtiene el ítem por su clave lógica; nil si no existe.
// El constraint único en (exhibitor_name, item_type) garantiza a lo sumo una fila.
func (r *StockItemRepo) GetByExhibitorAndType(ctx context.Context, exhibitorName, itemType string) (*entity.StockItem, error) {
	query := selectItems + ` WHERE exhibitor_name = $1 AND item_type = $2`
	var it entity.StockItem
	err := r.pool.QueryRow(ctx, query, exhibitorName, itemType).Scan(
		&it.ID, &it.ExhibitorName, &it.ItemType, &it.OpenStock, &it.Location, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item by exhibitor/type: %w", err)
	}
	return &it, nil
}

// List devuelve el catálogo completo de ítems.
func (r *StockItemRepo) List(ctx context.Context) ([]*entity.StockItem, error) {
	rows, err := r.pool.Query(ctx, selectItems)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.ID, &it.ExhibitorName, &it.ItemType, &it.OpenStock, &it.Location, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateLocation sobrescribe la ubicación del ítem.
func (r *StockItemRepo) UpdateLocation(ctx context.Context, id, location string) error {
	_, err := r.pool.Exec(ctx, `UPDATE stock_items SET location = $2 WHERE id = $1`, id, location)
	if err != nil {
		return fmt.Errorf("update stock item location: %w", err)
	}
	return nil
}

const selectItems = `
	SELECT id, exhibitor_name, item_type, COALESCE(open_stock, 0), COALESCE(location, ''), created_at
	FROM stock_items`
