package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report is the result of a valuation. It is either a *StandardReport
// (LIFO, weighted) or a *FIFOReport which also carries the kardex.
type Report interface {
	Summary() *Valuation
	report()
}

// Valuation holds the figures common to every costing method
type Valuation struct {
	ProductID      uuid.UUID       `json:"productId"`
	Method         CostingMethod   `json:"method"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	Entries        []Transaction   `json:"entries"`
	Exits          []Transaction   `json:"exits"`
	RemainingStock int             `json:"remainingStock"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	AverageCost    decimal.Decimal `json:"averageCost"`
}

func (v *Valuation) Summary() *Valuation { return v }

type StandardReport struct {
	Valuation
}

func (*StandardReport) report() {}

type FIFOReport struct {
	Valuation
	Kardex []KardexRow `json:"kardex"`
}

func (*FIFOReport) report() {}

// KardexColumns is one quantity / unit cost / total triple of a kardex row
type KardexColumns struct {
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
	Total    decimal.Decimal `json:"total"`
}

// KardexRow is the running-ledger line written after applying one transaction.
// Purchase is set for entries, Sale for exits; Balance is always set.
// Shortfall counts sold units no purchase inside the window covered, which
// happens when the window starts after stock was bought; they carry no cost.
type KardexRow struct {
	TransactionID uuid.UUID       `json:"transactionId"`
	Date          Date            `json:"date"`
	Type          TransactionType `json:"type"`
	Notes         string          `json:"notes,omitempty"`
	Purchase      *KardexColumns  `json:"purchase,omitempty"`
	Sale          *KardexColumns  `json:"sale,omitempty"`
	Shortfall     int             `json:"shortfall,omitempty"`
	Balance       KardexColumns   `json:"balance"`
}
