package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxEntry TransactionType = "entry"
	TxExit  TransactionType = "exit"
)

// Transaction is a ledger line. Once appended it is never edited or removed.
// UnitCost is only meaningful for entries.
type Transaction struct {
	BaseModel
	ProductID uuid.UUID       `json:"productId" validate:"uuid_required"`
	Type      TransactionType `json:"type" validate:"required,oneof=entry exit"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost" validate:"decimal_gte0"`
	Date      Date            `json:"date"`
	Notes     string          `json:"notes"`
}

// IsEntry reports whether the transaction adds stock
func (t Transaction) IsEntry() bool { return t.Type == TxEntry }

// Delta is the signed effect of the transaction on stock
func (t Transaction) Delta() int {
	if t.Type == TxEntry {
		return t.Quantity
	}
	return -t.Quantity
}
