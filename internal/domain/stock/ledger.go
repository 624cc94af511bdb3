// Package stock contiene el cálculo puro del stock actual a partir del
// catálogo de ítems y el libro de movimientos.
package stock

import (
	"sort"
	"strings"

	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
)

// Snapshot es la vista derivada de un ítem: delta neto de movimientos y
// stock actual. No se persiste; se recalcula en cada lectura.
type Snapshot struct {
	Item          entity.StockItem
	MovementDelta int
	CurrentStock  int
}

// MovementSign mapea el tipo de movimiento a su signo: IN → +1, OUT → -1.
// Normaliza espacios y mayúsculas antes de comparar, de modo que variantes
// almacenadas como "in" o " OUT " no corrompan los totales; cualquier otro
// valor aporta 0.
func MovementSign(movementType string) int {
	switch strings.ToUpper(strings.TrimSpace(movementType)) {
	case entity.MovementTypeIN:
		return 1
	case entity.MovementTypeOUT:
		return -1
	default:
		return 0
	}
}

// ComputeStockView calcula la vista de stock actual de todos los ítems:
// current_stock = open_stock + Σ sign(type)·quantity.
//
// La suma es conmutativa, así que el orden de los movimientos es irrelevante.
// Un ítem sin movimientos tiene delta 0. El resultado NO se recorta en cero:
// un stock negativo señala una discrepancia de conteo que el operador debe
// revisar, no un error del cálculo.
//
// El orden de salida es por ExhibitorName y luego ItemType, ambos ascendentes
// con comparación byte a byte de Go (sensible a mayúsculas).
func ComputeStockView(items []*entity.StockItem, movements []*entity.Movement) []Snapshot {
	deltas := make(map[string]int, len(items))
	for _, m := range movements {
		deltas[m.StockItemID] += m.Quantity * MovementSign(m.Type)
	}

	view := make([]Snapshot, 0, len(items))
	for _, it := range items {
		d := deltas[it.ID]
		view = append(view, Snapshot{
			Item:          *it,
			MovementDelta: d,
			CurrentStock:  it.OpenStock + d,
		})
	}

	sort.Slice(view, func(i, j int) bool {
		a, b := view[i].Item, view[j].Item
		if a.ExhibitorName != b.ExhibitorName {
			return a.ExhibitorName < b.ExhibitorName
		}
		return a.ItemType < b.ItemType
	})

	return view
}
