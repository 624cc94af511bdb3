package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement representa un movimiento de stock (entrada o salida) de un ítem.
// Los movimientos son append-only: nunca se editan ni se borran. La referencia
// a StockItem es débil; si el ítem desapareciera, el movimiento queda huérfano.
type Movement struct {
	ID          string
	StockItemID string
	Date        string // fecha ISO-8601 (YYYY-MM-DD), igual que la almacena el store
	Type        string // IN, OUT
	Quantity    int    // siempre positivo; el signo lo aporta Type
	Notes       string
	CreatedAt   time.Time
}
