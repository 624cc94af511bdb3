package dto

import "time"

// CreateStockItemRequest entrada para crear un ítem con su stock de apertura.
type CreateStockItemRequest struct {
	ExhibitorName string `json:"exhibitor_name" validate:"required,min=1,max=200"`
	ItemType      string `json:"item_type" validate:"required,min=1,max=100"`
	OpenStock     int    `json:"open_stock" validate:"min=0"`
	Location      string `json:"location" validate:"omitempty,max=200"`
}

// StockItemResponse salida de un ítem con su stock actual calculado.
type StockItemResponse struct {
	ID            string    `json:"id"`
	ExhibitorName string    `json:"exhibitor_name"`
	ItemType      string    `json:"item_type"`
	OpenStock     int       `json:"open_stock"`
	Location      string    `json:"location"`
	MovementDelta int       `json:"movement_delta"`
	CurrentStock  int       `json:"current_stock"` // puede ser negativo; no se recorta
	CreatedAt     time.Time `json:"created_at"`
}

// ExhibitorTypesResponse tipos de ítem existentes para un expositor
// (alimenta el selector de la pantalla de movimientos).
type ExhibitorTypesResponse struct {
	ExhibitorName string   `json:"exhibitor_name"`
	ItemTypes     []string `json:"item_types"`
}
