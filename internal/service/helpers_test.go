package service

import (
	"errors"
	"testing"
	"time"

	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day is a calendar date in January 2024
func day(n int) model.Date { return model.NewDate(2024, time.January, n) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

type recordingNotifier struct {
	events []map[string]interface{}
}

func (n *recordingNotifier) Notify(payload map[string]interface{}) {
	n.events = append(n.events, payload)
}

func (n *recordingNotifier) actions() []string {
	actions := make([]string, 0, len(n.events))
	for _, e := range n.events {
		actions = append(actions, e["action"].(string))
	}
	return actions
}

type failingRepo struct {
	repository.CollectionRepository
}

func (failingRepo) Save(string, []byte) error { return errors.New("disk full") }

func newTestLedger(t *testing.T) (LedgerService, repository.CollectionRepository) {
	t.Helper()
	repo := repository.NewMemoryCollectionRepo()
	ledger := NewLedgerService(repo, nil)
	require.NoError(t, ledger.Load())
	return ledger, repo
}

func addCategory(t *testing.T, ledger LedgerService, name string) *model.Category {
	t.Helper()
	c, err := ledger.AddCategory(&model.Category{Name: name})
	require.NoError(t, err)
	return c
}

func addProduct(t *testing.T, ledger LedgerService, categoryID uuid.UUID, sku string, minStock int) *model.Product {
	t.Helper()
	p, err := ledger.AddProduct(&model.Product{
		Name:       "Product " + sku,
		CategoryID: categoryID,
		SKU:        sku,
		MinStock:   minStock,
		Price:      dec("9.99"),
	})
	require.NoError(t, err)
	return p
}

func entry(t *testing.T, ledger LedgerService, productID uuid.UUID, date model.Date, qty int, cost string) *model.Transaction {
	t.Helper()
	tx, err := ledger.AddTransaction(&model.Transaction{
		ProductID: productID,
		Type:      model.TxEntry,
		Quantity:  qty,
		UnitCost:  dec(cost),
		Date:      date,
	})
	require.NoError(t, err)
	return tx
}

func exit(t *testing.T, ledger LedgerService, productID uuid.UUID, date model.Date, qty int) *model.Transaction {
	t.Helper()
	tx, err := ledger.AddTransaction(&model.Transaction{
		ProductID: productID,
		Type:      model.TxExit,
		Quantity:  qty,
		Date:      date,
	})
	require.NoError(t, err)
	return tx
}
