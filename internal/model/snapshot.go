package model

import "github.com/shopspring/decimal"

// Snapshot is the bulk import/export document and the shape of the persisted
// collections: { categories: [...], products: [...], transactions: [...] }
type Snapshot struct {
	Categories   []Category    `json:"categories"`
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
}

// Collection names used as keys by the persistence layer
const (
	CollectionCategories   = "categories"
	CollectionProducts     = "products"
	CollectionTransactions = "transactions"
)

func init() {
	// Monetary fields travel as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}
