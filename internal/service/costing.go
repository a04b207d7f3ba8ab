package service

import (
	"sort"

	"go-inventory-kardex/internal/model"

	"github.com/shopspring/decimal"
)

// costLayer is a surviving (quantity, unit cost) chunk of a past entry
type costLayer struct {
	quantity int
	unitCost decimal.Decimal
}

func (l costLayer) value() decimal.Decimal {
	return l.unitCost.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// costLayers is consumed from the front; the order of the slice decides
// whether that front is the oldest (FIFO) or the newest (LIFO) purchase.
type costLayers []costLayer

func newCostLayers(entries []model.Transaction) costLayers {
	layers := make(costLayers, 0, len(entries))
	for _, e := range entries {
		layers = append(layers, costLayer{quantity: e.Quantity, unitCost: e.UnitCost})
	}
	return layers
}

// consume takes qty units from the front layers. A layer that covers the
// remaining quantity is reduced in place; fully drained layers are dropped.
// It returns how many units were actually available and their cost.
func (l *costLayers) consume(qty int) (int, decimal.Decimal) {
	layers := *l
	consumed := 0
	cost := decimal.Zero

	for qty > 0 && len(layers) > 0 {
		front := &layers[0]
		if front.quantity <= qty {
			consumed += front.quantity
			cost = cost.Add(front.value())
			qty -= front.quantity
			layers = layers[1:]
			continue
		}

		// Partial consumption of this layer
		front.quantity -= qty
		consumed += qty
		cost = cost.Add(front.unitCost.Mul(decimal.NewFromInt(int64(qty))))
		qty = 0
	}

	*l = layers
	return consumed, cost
}

func (l costLayers) totals() (int, decimal.Decimal) {
	quantity := 0
	value := decimal.Zero
	for _, layer := range l {
		quantity += layer.quantity
		value = value.Add(layer.value())
	}
	return quantity, value
}

// byDate returns a sorted copy; ties keep storage order
func byDate(txs []model.Transaction, descending bool) []model.Transaction {
	sorted := append([]model.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Date.After(sorted[j].Date.Time)
		}
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})
	return sorted
}

// chronological orders a mixed set of transactions by date. On the same
// instant entries come before exits, otherwise storage order is kept.
func chronological(txs []model.Transaction) []model.Transaction {
	sorted := append([]model.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.Before(b.Date.Time)
		}
		return a.IsEntry() && !b.IsEntry()
	})
	return sorted
}

// layeredCost runs FIFO (newestFirst=false) or LIFO (newestFirst=true).
// Entries are layered once, then every exit is applied in date order.
func layeredCost(entries, exits []model.Transaction, newestFirst bool) (int, decimal.Decimal) {
	layers := newCostLayers(byDate(entries, newestFirst))
	for _, exit := range byDate(exits, false) {
		layers.consume(exit.Quantity)
	}
	return layers.totals()
}

// weightedCost pools all entries, then removes each exit at the pool's
// current average. Exits that arrive once the pool is empty are skipped.
func weightedCost(entries, exits []model.Transaction) (int, decimal.Decimal) {
	units := 0
	value := decimal.Zero
	for _, e := range entries {
		units += e.Quantity
		value = value.Add(e.UnitCost.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}

	for _, exit := range byDate(exits, false) {
		if units <= 0 {
			continue
		}
		// qty * (value / units), multiplied first so only one rounding happens
		value = value.Sub(value.Mul(decimal.NewFromInt(int64(exit.Quantity))).Div(decimal.NewFromInt(int64(units))))
		units -= exit.Quantity
	}
	return units, value
}

// buildKardex replays the transactions in chronological order against a
// FIFO layer stack and records purchase, sale and balance columns per row.
func buildKardex(txs []model.Transaction) []model.KardexRow {
	rows := make([]model.KardexRow, 0, len(txs))
	var layers costLayers

	for _, tx := range chronological(txs) {
		row := model.KardexRow{
			TransactionID: tx.ID,
			Date:          tx.Date,
			Type:          tx.Type,
			Notes:         tx.Notes,
		}

		if tx.IsEntry() {
			layer := costLayer{quantity: tx.Quantity, unitCost: tx.UnitCost}
			layers = append(layers, layer)
			row.Purchase = &model.KardexColumns{
				Quantity: tx.Quantity,
				UnitCost: tx.UnitCost,
				Total:    layer.value(),
			}
		} else {
			consumed, cost := layers.consume(tx.Quantity)
			row.Sale = &model.KardexColumns{
				Quantity: tx.Quantity,
				UnitCost: unitCost(cost, consumed),
				Total:    cost,
			}
			row.Shortfall = tx.Quantity - consumed
		}

		quantity, value := layers.totals()
		row.Balance = model.KardexColumns{
			Quantity: quantity,
			UnitCost: unitCost(value, quantity),
			Total:    value,
		}
		rows = append(rows, row)
	}
	return rows
}

// unitCost is total/quantity, or zero when nothing is left
func unitCost(total decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(quantity)))
}
