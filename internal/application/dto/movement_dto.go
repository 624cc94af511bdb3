package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento. El ítem se
// resuelve por (exhibitor_name, item_type); si Location viene no vacío se
// sobrescribe la ubicación del ítem.
type RegisterMovementRequest struct {
	ExhibitorName string `json:"exhibitor_name" validate:"required"`
	ItemType      string `json:"item_type" validate:"required"`
	Type          string `json:"movement_type" validate:"required,oneof=IN OUT"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	Date          string `json:"movement_date" validate:"required,datetime=2006-01-02"`
	Location      string `json:"location" validate:"omitempty,max=200"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID          string    `json:"id"`
	StockItemID string    `json:"stock_item_id"`
	Date        string    `json:"movement_date"`
	Type        string    `json:"movement_type"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterMovementResponse movimiento creado más el stock actual resultante
// del ítem (para el widget de la pantalla de movimientos).
type RegisterMovementResponse struct {
	Movement     MovementResponse `json:"movement"`
	CurrentStock int              `json:"current_stock"`
}

// MovementHistoryResponse historial de un ítem, fecha más reciente primero.
type MovementHistoryResponse struct {
	Item      StockItemResponse  `json:"item"`
	Movements []MovementResponse `json:"movements"`
}
