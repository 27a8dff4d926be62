package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tradebook/internal/models"
	"tradebook/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// BaseTime is the reference timestamp fixtures are built around. Fixed so
// date-window assertions stay deterministic.
var BaseTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// NewTrade returns a valid BUY trade with a unique trade ID and trader.
func NewTrade(t *testing.T) models.Trade {
	t.Helper()

	n := nextID()
	return models.Trade{
		TradeID:        fmt.Sprintf("trade-%d", n),
		InstrumentID:   fmt.Sprintf("INST%d", n),
		InstrumentName: fmt.Sprintf("Instrument %d", n),
		AssetClass:     "Equities (Stocks)",
		Counterparty:   "Counterparty1",
		Trader:         fmt.Sprintf("Trader %d", n),
		TradeDateTime:  BaseTime.Add(time.Duration(n) * time.Minute),
		TradeDetails: models.TradeDetails{
			BuySellIndicator: models.BuySellIndicatorBuy,
			Price:            100,
			Quantity:         10,
		},
	}
}

// NewTradeWithTrader returns a valid trade executed by the given trader.
func NewTradeWithTrader(t *testing.T, trader string) models.Trade {
	t.Helper()

	trade := NewTrade(t)
	trade.Trader = trader
	return trade
}

// NewTradeWithPrice returns a valid trade at the given price.
func NewTradeWithPrice(t *testing.T, price float64) models.Trade {
	t.Helper()

	trade := NewTrade(t)
	trade.TradeDetails.Price = price
	return trade
}

// AddTrades inserts the given trades into the store, failing the test on
// the first rejection. Insertion order follows argument order.
func AddTrades(t *testing.T, s *store.Store, trades ...models.Trade) {
	t.Helper()

	for _, trade := range trades {
		if err := s.Add(trade); err != nil {
			t.Fatalf("failed to add trade %s: %v", trade.TradeID, err)
		}
	}
}
