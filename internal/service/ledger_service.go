package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/repository"

	"github.com/google/uuid"
)

// LedgerService is the authoritative holder of categories, products and the
// append-only transaction ledger.
type LedgerService interface {
	Load() error

	AddCategory(req *model.Category) (*model.Category, error)
	UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error

	AddProduct(req *model.Product) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error

	AddTransaction(req *model.Transaction) (*model.Transaction, error)

	GetProductStock(productID uuid.UUID) int
	GetCategoryStock(categoryID uuid.UUID) []model.ProductStock
	GetLowStockProducts() []model.Product

	Categories() []model.Category
	Products() []model.Product
	Transactions() []model.Transaction
	Category(id uuid.UUID) (*model.Category, error)
	Product(id uuid.UUID) (*model.Product, error)
	Transaction(id uuid.UUID) (*model.Transaction, error)

	Import(snapshot *model.Snapshot) error
	Export() model.Snapshot
}

type ledgerService struct {
	mu       sync.RWMutex
	repo     repository.CollectionRepository
	notifier Notifier
	now      func() time.Time

	categories   []model.Category
	products     []model.Product
	transactions []model.Transaction
}

func NewLedgerService(repo repository.CollectionRepository, notifier Notifier) LedgerService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &ledgerService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Load reads the three collections once, at process start
func (s *ledgerService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCollection(model.CollectionCategories, &s.categories); err != nil {
		return err
	}
	if err := s.loadCollection(model.CollectionProducts, &s.products); err != nil {
		return err
	}
	return s.loadCollection(model.CollectionTransactions, &s.transactions)
}

func (s *ledgerService) loadCollection(name string, into interface{}) error {
	payload, err := s.repo.Load(name)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	if payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, into); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// persist rewrites one collection. Failures are logged only: the in-memory
// ledger stays authoritative until the next successful write.
func (s *ledgerService) persist(name string) {
	var data interface{}
	switch name {
	case model.CollectionCategories:
		data = s.categories
	case model.CollectionProducts:
		data = s.products
	case model.CollectionTransactions:
		data = s.transactions
	}

	payload, err := json.Marshal(data)
	if err == nil {
		err = s.repo.Save(name, payload)
	}
	if err != nil {
		log.Printf("Warning: failed to persist %s: %v", name, err)
	}
}

// ============ CATEGORIES ============

func (s *ledgerService) AddCategory(req *model.Category) (*model.Category, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := *req
	category.AssignID()
	s.categories = append(s.categories, category)
	s.persist(model.CollectionCategories)

	s.notify("category_created", map[string]interface{}{"category": category},
		fmt.Sprintf("category '%s' created", category.Name))
	return &category, nil
}

func (s *ledgerService) UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	s.categories[i].Name = req.Name
	s.categories[i].Description = req.Description
	updated := s.categories[i]
	s.persist(model.CollectionCategories)

	s.notify("category_updated", map[string]interface{}{"category": updated},
		fmt.Sprintf("category '%s' updated", updated.Name))
	return &updated, nil
}

func (s *ledgerService) DeleteCategory(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return ErrCategoryNotFound
	}
	for _, p := range s.products {
		if p.CategoryID == id {
			return fmt.Errorf("%w: category '%s' has products", ErrReferentialConflict, s.categories[i].Name)
		}
	}

	removed := s.categories[i]
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	s.persist(model.CollectionCategories)

	s.notify("category_deleted", map[string]interface{}{"category_id": id},
		fmt.Sprintf("category '%s' deleted", removed.Name))
	return nil
}

// ============ PRODUCTS ============

func (s *ledgerService) checkProduct(req *model.Product, self uuid.UUID) error {
	if err := validate(req); err != nil {
		return err
	}
	if s.categoryIndex(req.CategoryID) < 0 {
		return ErrCategoryNotFound
	}
	for _, p := range s.products {
		if p.SKU == req.SKU && p.ID != self {
			return fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
		}
	}
	return nil
}

func (s *ledgerService) AddProduct(req *model.Product) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkProduct(req, uuid.Nil); err != nil {
		return nil, err
	}

	product := *req
	product.AssignID()
	s.products = append(s.products, product)
	s.persist(model.CollectionProducts)

	s.notify("product_created", map[string]interface{}{"product": product},
		fmt.Sprintf("product '%s' created", product.Name))
	return &product, nil
}

func (s *ledgerService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	if err := s.checkProduct(req, id); err != nil {
		return nil, err
	}

	updated := *req
	updated.ID = id
	s.products[i] = updated
	s.persist(model.CollectionProducts)

	s.notify("product_updated", map[string]interface{}{"product": updated},
		fmt.Sprintf("product '%s' updated", updated.Name))
	return &updated, nil
}

func (s *ledgerService) DeleteProduct(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return ErrProductNotFound
	}
	for _, t := range s.transactions {
		if t.ProductID == id {
			return fmt.Errorf("%w: product '%s' has transactions", ErrReferentialConflict, s.products[i].Name)
		}
	}

	removed := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.persist(model.CollectionProducts)

	s.notify("product_deleted", map[string]interface{}{"product_id": id},
		fmt.Sprintf("product '%s' deleted", removed.Name))
	return nil
}

// ============ TRANSACTIONS ============

func (s *ledgerService) AddTransaction(req *model.Transaction) (*model.Transaction, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(req.ProductID)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	product := s.products[i]

	tx := *req
	if tx.Date.IsZero() {
		tx.Date = model.Date{Time: s.now().UTC()}
	}

	if tx.Type == model.TxExit {
		available := availableForExit(s.productTransactions(tx.ProductID), tx.Date)
		if tx.Quantity > available {
			return nil, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, tx.Quantity, available)
		}
	}

	tx.AssignID()
	s.transactions = append(s.transactions, tx)
	s.persist(model.CollectionTransactions)

	newStock := stockOf(s.productTransactions(tx.ProductID))
	actionVerb := "added"
	if tx.Type == model.TxExit {
		actionVerb = "removed"
	}
	s.notify("transaction_created", map[string]interface{}{
		"transaction": map[string]interface{}{
			"id":         tx.ID,
			"type":       tx.Type,
			"quantity":   tx.Quantity,
			"product_id": product.ID,
			"product": map[string]interface{}{
				"name": product.Name,
				"sku":  product.SKU,
			},
			"new_stock": newStock,
		},
	}, fmt.Sprintf("%s %d units of '%s'", actionVerb, tx.Quantity, product.Name))

	return &tx, nil
}

// availableForExit is the largest quantity an exit dated at `at` can take
// without the running balance dropping below zero at that date or later.
func availableForExit(txs []model.Transaction, at model.Date) int {
	balance := 0
	available := 0
	reached := false

	for _, t := range chronological(txs) {
		if t.Date.After(at.Time) && !reached {
			available = balance
			reached = true
		}
		balance += t.Delta()
		if reached && balance < available {
			available = balance
		}
	}
	if !reached {
		available = balance
	}
	if available < 0 {
		return 0
	}
	return available
}

func stockOf(txs []model.Transaction) int {
	stock := 0
	for _, t := range txs {
		stock += t.Delta()
	}
	return stock
}

// ============ QUERIES ============

// GetProductStock is the order-independent sum of the product's ledger
func (s *ledgerService) GetProductStock(productID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return stockOf(s.productTransactions(productID))
}

func (s *ledgerService) GetCategoryStock(categoryID uuid.UUID) []model.ProductStock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stocks := make([]model.ProductStock, 0)
	for _, p := range s.products {
		if p.CategoryID != categoryID {
			continue
		}
		stocks = append(stocks, model.ProductStock{
			ProductID: p.ID,
			Stock:     stockOf(s.productTransactions(p.ID)),
		})
	}
	return stocks
}

// GetLowStockProducts returns products whose stock is at or below MinStock
func (s *ledgerService) GetLowStockProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	low := make([]model.Product, 0)
	for _, p := range s.products {
		if stockOf(s.productTransactions(p.ID)) <= p.MinStock {
			low = append(low, p)
		}
	}
	return low
}

func (s *ledgerService) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category{}, s.categories...)
}

func (s *ledgerService) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product{}, s.products...)
}

func (s *ledgerService) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Transaction{}, s.transactions...)
}

func (s *ledgerService) Category(id uuid.UUID) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.categoryIndex(id)
	if i < 0 {
		return nil, ErrCategoryNotFound
	}
	category := s.categories[i]
	return &category, nil
}

func (s *ledgerService) Product(id uuid.UUID) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.productIndex(id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	product := s.products[i]
	return &product, nil
}

func (s *ledgerService) Transaction(id uuid.UUID) (*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.ID == id {
			tx := t
			return &tx, nil
		}
	}
	return nil, ErrTransactionNotFound
}

// ============ HELPERS ============

func (s *ledgerService) categoryIndex(id uuid.UUID) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *ledgerService) productIndex(id uuid.UUID) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// productTransactions keeps storage order; callers must hold the lock
func (s *ledgerService) productTransactions(productID uuid.UUID) []model.Transaction {
	var txs []model.Transaction
	for _, t := range s.transactions {
		if t.ProductID == productID {
			txs = append(txs, t)
		}
	}
	return txs
}

func (s *ledgerService) notify(action string, fields map[string]interface{}, message string) {
	payload := map[string]interface{}{
		"type":    "stock_update",
		"action":  action,
		"message": message,
	}
	for k, v := range fields {
		payload[k] = v
	}
	s.notifier.Notify(payload)
}
