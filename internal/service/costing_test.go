package service

import (
	"testing"

	"go-inventory-kardex/internal/model"

	"github.com/stretchr/testify/assert"
)

func tx(typ model.TransactionType, date model.Date, qty int, cost string) model.Transaction {
	t := model.Transaction{Type: typ, Date: date, Quantity: qty}
	if cost != "" {
		t.UnitCost = dec(cost)
	}
	return t
}

func TestCostLayers_Consume(t *testing.T) {
	layers := costLayers{
		{quantity: 4, unitCost: dec("1")},
		{quantity: 6, unitCost: dec("2")},
	}

	consumed, cost := layers.consume(5)
	assert.Equal(t, 5, consumed)
	assertDecimal(t, "6", cost)
	assert.Len(t, layers, 1)
	assert.Equal(t, 5, layers[0].quantity)

	// asking for more than is layered drains everything
	consumed, cost = layers.consume(9)
	assert.Equal(t, 5, consumed)
	assertDecimal(t, "10", cost)
	assert.Empty(t, layers)

	quantity, value := layers.totals()
	assert.Equal(t, 0, quantity)
	assert.True(t, value.IsZero())
}

func TestChronological_EntriesFirstOnTies(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TxExit, day(2), 1, ""),
		tx(model.TxEntry, day(2), 2, "1"),
		tx(model.TxEntry, day(1), 3, "1"),
	}

	sorted := chronological(txs)
	assert.Equal(t, 3, sorted[0].Quantity)
	assert.Equal(t, 2, sorted[1].Quantity)
	assert.Equal(t, 1, sorted[2].Quantity)

	// input untouched
	assert.Equal(t, model.TxExit, txs[0].Type)
}

func TestLayeredCost_ExitsAppliedByDate(t *testing.T) {
	entries := []model.Transaction{
		tx(model.TxEntry, day(1), 5, "1"),
		tx(model.TxEntry, day(2), 5, "4"),
	}
	exits := []model.Transaction{
		tx(model.TxExit, day(4), 2, ""),
		tx(model.TxExit, day(3), 4, ""),
	}

	remaining, total := layeredCost(entries, exits, false)
	assert.Equal(t, 4, remaining)
	assertDecimal(t, "16", total)

	remaining, total = layeredCost(entries, exits, true)
	assert.Equal(t, 4, remaining)
	assertDecimal(t, "4", total)
}

func TestWeightedCost(t *testing.T) {
	t.Run("no entries skips exits", func(t *testing.T) {
		units, value := weightedCost(nil, []model.Transaction{tx(model.TxExit, day(1), 3, "")})
		assert.Equal(t, 0, units)
		assert.True(t, value.IsZero())
	})

	t.Run("successive exits at the running average", func(t *testing.T) {
		entries := []model.Transaction{
			tx(model.TxEntry, day(1), 4, "1"),
			tx(model.TxEntry, day(1), 4, "3"),
		}
		exits := []model.Transaction{
			tx(model.TxExit, day(2), 2, ""),
			tx(model.TxExit, day(3), 2, ""),
		}
		units, value := weightedCost(entries, exits)
		assert.Equal(t, 4, units)
		assertDecimal(t, "8", value)
	})
}

func TestAvailableForExit(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TxEntry, day(1), 10, "1"),
		tx(model.TxExit, day(5), 7, ""),
		tx(model.TxEntry, day(7), 2, "1"),
	}

	assert.Equal(t, 0, availableForExit(txs, day(0)))
	assert.Equal(t, 3, availableForExit(txs, day(2)))
	assert.Equal(t, 3, availableForExit(txs, day(5)))
	assert.Equal(t, 3, availableForExit(txs, day(6)))
	assert.Equal(t, 5, availableForExit(txs, day(7)))
	assert.Equal(t, 5, availableForExit(txs, day(30)))
}

func TestUnitCost(t *testing.T) {
	assert.True(t, unitCost(dec("10"), 0).IsZero())
	assertDecimal(t, "2.5", unitCost(dec("10"), 4))
}
