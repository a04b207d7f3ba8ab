package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"type": "entry", "quantity": 2, "unitCost": "1.50", "date": "2024-03-01"}`), &tx))
	assert.True(t, tx.Date.Equal(NewDate(2024, time.March, 1).Time))
	assert.True(t, tx.UnitCost.Equal(decimal.RequireFromString("1.5")))

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2024-03-01"`)
	assert.Contains(t, string(data), `"unitCost":1.5`)

	require.NoError(t, json.Unmarshal([]byte(`{"date": "2024-03-01T10:15:00+07:00"}`), &tx))
	assert.Equal(t, 3, tx.Date.UTC().Hour())
	assert.False(t, tx.Date.IsCalendarDay())

	data, err = json.Marshal(tx.Date)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:15:00+07:00"`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"date": "01/03/2024"}`), &tx))
	assert.Error(t, json.Unmarshal([]byte(`{"date": 20240301}`), &tx))
}

func TestDate_JSONEmpty(t *testing.T) {
	for _, body := range []string{`{"date": null}`, `{"date": ""}`, `{}`} {
		tx := Transaction{Date: NewDate(2024, time.March, 1)}
		require.NoError(t, json.Unmarshal([]byte(body), &tx), body)
		if body == `{}` {
			assert.False(t, tx.Date.IsZero(), body)
			continue
		}
		assert.True(t, tx.Date.IsZero(), body)
	}
}

func TestParseWindow(t *testing.T) {
	start, end, err := ParseWindow("", "")
	require.NoError(t, err)
	assert.Equal(t, WindowStart, start)
	assert.Equal(t, WindowEnd, end)

	// a calendar end covers the whole day
	start, end, err = ParseWindow("2024-01-02", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 2).Time, start)
	assert.Equal(t, time.Date(2024, time.January, 3, 23, 59, 59, 999999999, time.UTC), end)
	assert.True(t, Date{time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC)}.Within(start, end))

	// an explicit instant is taken as written, even at midnight
	_, end, err = ParseWindow("", "2024-01-03T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 3).Time, end)

	_, end, err = ParseWindow("2024-01-02", "")
	require.NoError(t, err)
	assert.Equal(t, WindowEnd, end)

	_, _, err = ParseWindow("yesterday", "")
	assert.Error(t, err)
	_, _, err = ParseWindow("", "03/01/2024")
	assert.Error(t, err)
}

func TestDate_Within(t *testing.T) {
	d := NewDate(2024, time.January, 15)
	assert.True(t, d.Within(d.Time, d.Time))
	assert.True(t, d.Within(NewDate(2024, time.January, 1).Time, NewDate(2024, time.January, 31).Time))
	assert.False(t, d.Within(NewDate(2024, time.January, 16).Time, NewDate(2024, time.January, 31).Time))
	assert.False(t, d.Within(NewDate(2024, time.January, 1).Time, NewDate(2024, time.January, 14).Time))
}

func TestParseCostingMethod(t *testing.T) {
	tests := []struct {
		in   string
		want CostingMethod
	}{
		{"FIFO", FIFO},
		{"fifo", FIFO},
		{" Lifo ", LIFO},
		{"weighted", Weighted},
		{"AVERAGE", Weighted},
	}
	for _, tt := range tests {
		got, err := ParseCostingMethod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCostingMethod("median")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestTransaction_Delta(t *testing.T) {
	assert.Equal(t, 4, Transaction{Type: TxEntry, Quantity: 4}.Delta())
	assert.Equal(t, -4, Transaction{Type: TxExit, Quantity: 4}.Delta())
	assert.True(t, Transaction{Type: TxEntry}.IsEntry())
}

func TestReport_Summary(t *testing.T) {
	var report Report = &FIFOReport{Valuation: Valuation{RemainingStock: 3}}
	assert.Equal(t, 3, report.Summary().RemainingStock)

	report = &StandardReport{Valuation: Valuation{Method: LIFO}}
	assert.Equal(t, LIFO, report.Summary().Method)
}
