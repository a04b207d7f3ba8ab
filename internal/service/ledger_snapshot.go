package service

import (
	"fmt"

	"go-inventory-kardex/internal/model"

	"github.com/google/uuid"
)

// Import replaces the whole ledger with a snapshot document (the seed
// dataset). The document is checked as a unit before anything is replaced:
// referential integrity, field validation, unique ids and SKUs, and a stock
// that never goes negative when each product's ledger is replayed by date.
// Entities without an id get a fresh one.
func (s *ledgerService) Import(snapshot *model.Snapshot) error {
	categories := append([]model.Category{}, snapshot.Categories...)
	products := append([]model.Product{}, snapshot.Products...)
	transactions := append([]model.Transaction{}, snapshot.Transactions...)

	categoryIDs := make(map[uuid.UUID]bool, len(categories))
	for i := range categories {
		c := &categories[i]
		if c.ID == uuid.Nil {
			c.AssignID()
		}
		if err := validate(c); err != nil {
			return fmt.Errorf("category %d: %w", i, err)
		}
		if categoryIDs[c.ID] {
			return fmt.Errorf("%w: category %s", ErrDuplicateID, c.ID)
		}
		categoryIDs[c.ID] = true
	}

	productIDs := make(map[uuid.UUID]bool, len(products))
	skus := make(map[string]bool, len(products))
	for i := range products {
		p := &products[i]
		if p.ID == uuid.Nil {
			p.AssignID()
		}
		if err := validate(p); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
		if !categoryIDs[p.CategoryID] {
			return fmt.Errorf("product '%s': %w", p.Name, ErrCategoryNotFound)
		}
		if productIDs[p.ID] {
			return fmt.Errorf("%w: product %s", ErrDuplicateID, p.ID)
		}
		if skus[p.SKU] {
			return fmt.Errorf("%w: %s", ErrDuplicateSKU, p.SKU)
		}
		productIDs[p.ID] = true
		skus[p.SKU] = true
	}

	txIDs := make(map[uuid.UUID]bool, len(transactions))
	byProduct := make(map[uuid.UUID][]model.Transaction)
	for i := range transactions {
		t := &transactions[i]
		if t.ID == uuid.Nil {
			t.AssignID()
		}
		if err := validate(t); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		if t.Date.IsZero() {
			return fmt.Errorf("transaction %d: %w", i, &ValidationError{Field: "Transaction.Date", Tag: "required"})
		}
		if !productIDs[t.ProductID] {
			return fmt.Errorf("transaction %d: %w", i, ErrProductNotFound)
		}
		if txIDs[t.ID] {
			return fmt.Errorf("%w: transaction %s", ErrDuplicateID, t.ID)
		}
		txIDs[t.ID] = true
		byProduct[t.ProductID] = append(byProduct[t.ProductID], *t)
	}

	for productID, txs := range byProduct {
		balance := 0
		for _, t := range chronological(txs) {
			balance += t.Delta()
			if balance < 0 {
				return fmt.Errorf("%w: product %s goes negative on %s", ErrInsufficientStock, productID, t.Date)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = categories
	s.products = products
	s.transactions = transactions
	s.persist(model.CollectionCategories)
	s.persist(model.CollectionProducts)
	s.persist(model.CollectionTransactions)

	s.notify("snapshot_imported", map[string]interface{}{
		"categories":   len(categories),
		"products":     len(products),
		"transactions": len(transactions),
	}, fmt.Sprintf("imported %d transactions", len(transactions)))
	return nil
}

// Export returns the current ledger in the snapshot document shape
func (s *ledgerService) Export() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.Snapshot{
		Categories:   append([]model.Category{}, s.categories...),
		Products:     append([]model.Product{}, s.products...),
		Transactions: append([]model.Transaction{}, s.transactions...),
	}
}
