package service

import (
	"sort"
	"time"

	"go-inventory-kardex/internal/model"
)

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalCategories   int `json:"total_categories"`
	TotalProducts     int `json:"total_products"`
	TotalTransactions int `json:"total_transactions"`
	LowStockCount     int `json:"low_stock_count"`
	UnitsOnHand       int `json:"units_on_hand"`
}

type DashboardService interface {
	GetStockMovement(days int) []StockMovementData
	GetDashboardStats() *DashboardStats
}

type dashboardService struct {
	ledger LedgerService
	now    func() time.Time
}

func NewDashboardService(ledger LedgerService) DashboardService {
	return &dashboardService{ledger: ledger, now: time.Now}
}

// GetStockMovement aggregates entry and exit units per day over the last
// `days` days, ascending by day. Days without movement are omitted.
func (s *dashboardService) GetStockMovement(days int) []StockMovementData {
	endDate := s.now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	perDay := make(map[string]*StockMovementData)
	for _, t := range s.ledger.Transactions() {
		if !t.Date.Within(startDate, endDate) {
			continue
		}
		day := t.Date.UTC().Format(model.DateFormat)
		data, ok := perDay[day]
		if !ok {
			data = &StockMovementData{Date: day}
			perDay[day] = data
		}
		if t.IsEntry() {
			data.Inbound += t.Quantity
		} else {
			data.Outbound += t.Quantity
		}
	}

	results := make([]StockMovementData, 0, len(perDay))
	for _, data := range perDay {
		results = append(results, *data)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })
	return results
}

func (s *dashboardService) GetDashboardStats() *DashboardStats {
	snapshot := s.ledger.Export()

	stats := &DashboardStats{
		TotalCategories:   len(snapshot.Categories),
		TotalProducts:     len(snapshot.Products),
		TotalTransactions: len(snapshot.Transactions),
		LowStockCount:     len(s.ledger.GetLowStockProducts()),
	}
	for _, t := range snapshot.Transactions {
		stats.UnitsOnHand += t.Delta()
	}
	return stats
}
