package stock_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
	"github.com/jhoicas/FeriaStock-api/internal/domain/stock"
)

func item(id, exhibitor, itemType string, openStock int) *entity.StockItem {
	return &entity.StockItem{ID: id, ExhibitorName: exhibitor, ItemType: itemType, OpenStock: openStock}
}

func mov(itemID, movType string, qty int, date string) *entity.Movement {
	return &entity.Movement{ID: itemID + "-" + date + "-" + movType, StockItemID: itemID, Type: movType, Quantity: qty, Date: date}
}

// ──────────────────────────────────────────────────────────────────────────────
// MovementSign — normalización de tipos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementSign_Normalizacion(t *testing.T) {
	// Variantes de almacenamiento que deben contar como IN/OUT
	assert.Equal(t, 1, stock.MovementSign("IN"))
	assert.Equal(t, 1, stock.MovementSign("in"))
	assert.Equal(t, 1, stock.MovementSign(" In "))
	assert.Equal(t, -1, stock.MovementSign("OUT"))
	assert.Equal(t, -1, stock.MovementSign("out"))
	assert.Equal(t, -1, stock.MovementSign("\tOUT\n"))

	// Valores no reconocidos aportan 0, no corrompen el total
	assert.Equal(t, 0, stock.MovementSign("XYZ"))
	assert.Equal(t, 0, stock.MovementSign(""))
	assert.Equal(t, 0, stock.MovementSign("INOUT"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStockView
// ──────────────────────────────────────────────────────────────────────────────

// Ítem sin movimientos: delta 0 (presente, no ausente) y stock actual = apertura.
func TestComputeStockView_SinMovimientos(t *testing.T) {
	items := []*entity.StockItem{item("i1", "Acme", "Book", 10)}

	view := stock.ComputeStockView(items, nil)

	require.Len(t, view, 1)
	assert.Equal(t, 0, view[0].MovementDelta)
	assert.Equal(t, 10, view[0].CurrentStock)
}

// Ejemplo de punta a punta: apertura 10, IN 5, OUT 3 → delta 2, stock 12.
func TestComputeStockView_EjemploAcme(t *testing.T) {
	items := []*entity.StockItem{item("i1", "Acme", "Book", 10)}
	movements := []*entity.Movement{
		mov("i1", "IN", 5, "2026-03-01"),
		mov("i1", "OUT", 3, "2026-03-02"),
	}

	view := stock.ComputeStockView(items, movements)

	require.Len(t, view, 1)
	assert.Equal(t, 2, view[0].MovementDelta)
	assert.Equal(t, 12, view[0].CurrentStock)
}

// La suma es conmutativa: reordenar los movimientos no cambia el resultado.
func TestComputeStockView_InvarianteBajoReorden(t *testing.T) {
	items := []*entity.StockItem{item("i1", "Acme", "Book", 0)}
	movements := []*entity.Movement{
		mov("i1", "IN", 5, "2026-03-01"),
		mov("i1", "OUT", 2, "2026-03-02"),
		mov("i1", "IN", 3, "2026-03-03"),
	}

	base := stock.ComputeStockView(items, movements)[0]
	require.Equal(t, 6, base.MovementDelta)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*entity.Movement, len(movements))
		copy(shuffled, movements)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := stock.ComputeStockView(items, shuffled)[0]
		assert.Equal(t, base.MovementDelta, got.MovementDelta)
		assert.Equal(t, base.CurrentStock, got.CurrentStock)
	}
}

// Tipos no reconocidos aportan 0 al delta; los reconocidos con otra caja sí cuentan.
func TestComputeStockView_TiposNoReconocidos(t *testing.T) {
	items := []*entity.StockItem{item("i1", "Acme", "Book", 10)}
	movements := []*entity.Movement{
		mov("i1", "in", 5, "2026-03-01"),    // cuenta como IN tras normalizar
		mov("i1", "XYZ", 100, "2026-03-02"), // aporta 0
	}

	view := stock.ComputeStockView(items, movements)

	require.Len(t, view, 1)
	assert.Equal(t, 5, view[0].MovementDelta)
	assert.Equal(t, 15, view[0].CurrentStock)
}

// El stock actual puede ser negativo; no se recorta en cero porque señala una
// discrepancia que el operador debe investigar.
func TestComputeStockView_StockNegativoNoSeRecorta(t *testing.T) {
	items := []*entity.StockItem{item("i1", "Acme", "Book", 0)}
	movements := []*entity.Movement{mov("i1", "OUT", 5, "2026-03-01")}

	view := stock.ComputeStockView(items, movements)

	require.Len(t, view, 1)
	assert.Equal(t, -5, view[0].MovementDelta)
	assert.Equal(t, -5, view[0].CurrentStock)
}

// Movimientos de ítems ajenos (o huérfanos) no contaminan otros ítems.
func TestComputeStockView_MovimientosDeOtrosItems(t *testing.T) {
	items := []*entity.StockItem{
		item("i1", "Acme", "Book", 10),
		item("i2", "Acme", "Stationery", 4),
	}
	movements := []*entity.Movement{
		mov("i2", "IN", 7, "2026-03-01"),
		mov("huerfano", "IN", 99, "2026-03-01"), // ítem inexistente, se ignora
	}

	view := stock.ComputeStockView(items, movements)

	require.Len(t, view, 2)
	assert.Equal(t, 10, view[0].CurrentStock) // Book sin movimientos
	assert.Equal(t, 11, view[1].CurrentStock) // Stationery 4 + 7
}

// Orden de salida: exhibitor_name y luego item_type, ascendente y byte a byte
// (sensible a mayúsculas: "Zeta" < "acme" porque 'Z' < 'a' en ASCII).
func TestComputeStockView_Orden(t *testing.T) {
	items := []*entity.StockItem{
		item("i1", "acme", "Book", 1),
		item("i2", "Beta", "Stationery", 1),
		item("i3", "Beta", "Book", 1),
		item("i4", "Zeta", "Book", 1),
	}

	view := stock.ComputeStockView(items, nil)

	require.Len(t, view, 4)
	assert.Equal(t, "Beta", view[0].Item.ExhibitorName)
	assert.Equal(t, "Book", view[0].Item.ItemType)
	assert.Equal(t, "Beta", view[1].Item.ExhibitorName)
	assert.Equal(t, "Stationery", view[1].Item.ItemType)
	assert.Equal(t, "Zeta", view[2].Item.ExhibitorName)
	assert.Equal(t, "acme", view[3].Item.ExhibitorName) // minúscula ordena al final
}

// Catálogo vacío: vista vacía, sin pánicos.
func TestComputeStockView_CatalogoVacio(t *testing.T) {
	view := stock.ComputeStockView(nil, []*entity.Movement{mov("x", "IN", 1, "2026-03-01")})
	assert.Empty(t, view)
}
