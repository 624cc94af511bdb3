package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
	"github.com/jhoicas/FeriaStock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Solo inserta y lee: el libro de movimientos es append-only.
type MovementRepo struct {
	pool *pgxpool.Pool
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepo {
	return &MovementRepo{pool: pool}
}

// Create persiste un nuevo movimiento. Escritura de una sola fila, sin
// transacción con otras tablas: la suma agregada es conmutativa y tolera
// cualquier intercalado entre sesiones concurrentes.
func (r *MovementRepo) Create(ctx context.Context, mov *entity.Movement) error {
	query := `
		INSERT INTO stock_movements (id, stock_item_id, movement_date, movement_type, quantity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		mov.ID, mov.StockItemID, mov.Date, mov.Type, mov.Quantity, mov.Notes, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve el libro completo de movimientos.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	rows, err := r.pool.Query(ctx, selectMovements)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByItem devuelve el historial de un ítem, fecha más reciente primero.
// movement_date es texto ISO-8601, así que el orden lexicográfico descendente
// coincide con el cronológico.
func (r *MovementRepo) ListByItem(ctx context.Context, stockItemID string) ([]*entity.Movement, error) {
	query := selectMovements + ` WHERE stock_item_id = $1 ORDER BY movement_date DESC, created_at DESC`
	rows, err := r.pool.Query(ctx, query, stockItemID)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

const selectMovements = `
	SELECT id, stock_item_id, COALESCE(movement_date, ''), COALESCE(movement_type, ''),
	       COALESCE(quantity, 0), COALESCE(notes, ''), created_at
	FROM stock_movements`

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.StockItemID, &m.Date, &m.Type, &m.Quantity, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
