package service

import (
	"time"

	"go-inventory-kardex/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerReader is the read side of the ledger the engine works from
type LedgerReader interface {
	Transactions() []model.Transaction
}

// ValuationService computes stock and cost reports over a date window.
// It never fails on data: unknown products and empty windows give a
// zero-valued report.
type ValuationService interface {
	GetProductTransactions(productID uuid.UUID, startDate, endDate time.Time) []model.Transaction
	CalculateInventoryCost(productID uuid.UUID, method model.CostingMethod, startDate, endDate time.Time) model.Report
}

type valuationService struct {
	ledger LedgerReader
}

func NewValuationService(ledger LedgerReader) ValuationService {
	return &valuationService{ledger: ledger}
}

// GetProductTransactions returns the product's transactions dated within
// [startDate, endDate], in ledger storage order
func (s *valuationService) GetProductTransactions(productID uuid.UUID, startDate, endDate time.Time) []model.Transaction {
	result := make([]model.Transaction, 0)
	for _, t := range s.ledger.Transactions() {
		if t.ProductID == productID && t.Date.Within(startDate, endDate) {
			result = append(result, t)
		}
	}
	return result
}

func (s *valuationService) CalculateInventoryCost(productID uuid.UUID, method model.CostingMethod, startDate, endDate time.Time) model.Report {
	txs := s.GetProductTransactions(productID, startDate, endDate)

	valuation := model.Valuation{
		ProductID:   productID,
		Method:      method,
		StartDate:   startDate,
		EndDate:     endDate,
		Entries:     make([]model.Transaction, 0),
		Exits:       make([]model.Transaction, 0),
		TotalCost:   decimal.Zero,
		AverageCost: decimal.Zero,
	}
	for _, t := range txs {
		if t.IsEntry() {
			valuation.Entries = append(valuation.Entries, t)
		} else {
			valuation.Exits = append(valuation.Exits, t)
		}
	}

	switch method {
	case model.FIFO:
		valuation.RemainingStock, valuation.TotalCost = layeredCost(valuation.Entries, valuation.Exits, false)
		valuation.AverageCost = unitCost(valuation.TotalCost, valuation.RemainingStock)
		return &model.FIFOReport{Valuation: valuation, Kardex: buildKardex(txs)}
	case model.LIFO:
		valuation.RemainingStock, valuation.TotalCost = layeredCost(valuation.Entries, valuation.Exits, true)
	case model.Weighted:
		valuation.RemainingStock, valuation.TotalCost = weightedCost(valuation.Entries, valuation.Exits)
	}
	valuation.AverageCost = unitCost(valuation.TotalCost, valuation.RemainingStock)
	return &model.StandardReport{Valuation: valuation}
}
