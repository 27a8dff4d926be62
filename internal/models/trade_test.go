package models

import (
	"testing"
	"time"
)

func validTrade() Trade {
	return Trade{
		TradeID:        "trade-1",
		InstrumentID:   "TSLA",
		InstrumentName: "Tesla, Inc. stock",
		AssetClass:     "Equities (Stocks)",
		Counterparty:   "Counterparty1",
		Trader:         "John Smith",
		TradeDateTime:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		TradeDetails: TradeDetails{
			BuySellIndicator: BuySellIndicatorBuy,
			Price:            101.5,
			Quantity:         100,
		},
	}
}

func TestTradeValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		trade := validTrade()
		if err := trade.Validate(); err != nil {
			t.Fatalf("expected valid trade, got %v", err)
		}
	})

	t.Run("zero_price_is_valid", func(t *testing.T) {
		trade := validTrade()
		trade.TradeDetails.Price = 0
		if err := trade.Validate(); err != nil {
			t.Fatalf("expected price 0 to be valid, got %v", err)
		}
	})

	rejected := []struct {
		name   string
		mutate func(*Trade)
	}{
		{"missing_trade_id", func(tr *Trade) { tr.TradeID = "" }},
		{"blank_trade_id", func(tr *Trade) { tr.TradeID = "   " }},
		{"missing_instrument_id", func(tr *Trade) { tr.InstrumentID = "" }},
		{"missing_instrument_name", func(tr *Trade) { tr.InstrumentName = "" }},
		{"missing_trader", func(tr *Trade) { tr.Trader = "" }},
		{"zero_trade_date_time", func(tr *Trade) { tr.TradeDateTime = time.Time{} }},
		{"negative_price", func(tr *Trade) { tr.TradeDetails.Price = -0.01 }},
		{"zero_quantity", func(tr *Trade) { tr.TradeDetails.Quantity = 0 }},
		{"negative_quantity", func(tr *Trade) { tr.TradeDetails.Quantity = -5 }},
		{"bad_indicator", func(tr *Trade) { tr.TradeDetails.BuySellIndicator = "HOLD" }},
		{"lowercase_indicator", func(tr *Trade) { tr.TradeDetails.BuySellIndicator = "buy" }},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			trade := validTrade()
			tc.mutate(&trade)
			if err := trade.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestBuySellIndicatorValid(t *testing.T) {
	if !BuySellIndicatorBuy.Valid() || !BuySellIndicatorSell.Valid() {
		t.Error("expected BUY and SELL to be valid")
	}
	if BuySellIndicator("").Valid() {
		t.Error("expected empty indicator to be invalid")
	}
	if BuySellIndicator("SHORT").Valid() {
		t.Error("expected SHORT to be invalid")
	}
}
