package entity

import "time"

// StockItem representa el stock de apertura de un expositor para un tipo de ítem.
// OpenStock es la línea base inmutable; Location es el único campo mutable
// (se sobrescribe al registrar un movimiento).
type StockItem struct {
	ID            string
	ExhibitorName string
	ItemType      string // categoría libre: "Book", "Stationery", etc.
	OpenStock     int    // conteo inicial, nunca negativo, fijado al crear
	Location      string // última ubicación conocida
	CreatedAt     time.Time
}
