package seed

import (
	"testing"
	"time"

	"tradebook/internal/store"
	"tradebook/internal/testutil"
)

func TestTrades(t *testing.T) {
	t.Run("generates_requested_count", func(t *testing.T) {
		trades := Trades(25, 1)
		if len(trades) != 25 {
			t.Fatalf("expected 25 trades, got %d", len(trades))
		}
	})

	t.Run("all_trades_valid", func(t *testing.T) {
		for _, trade := range Trades(50, 1) {
			if err := trade.Validate(); err != nil {
				t.Errorf("generated invalid trade %s: %v", trade.TradeID, err)
			}
		}
	})

	t.Run("trade_ids_unique", func(t *testing.T) {
		trades := Trades(100, 1)
		seen := make(map[string]struct{}, len(trades))
		for _, trade := range trades {
			if _, dup := seen[trade.TradeID]; dup {
				t.Fatalf("duplicate trade_id %s", trade.TradeID)
			}
			seen[trade.TradeID] = struct{}{}
		}
	})

	t.Run("always_includes_known_trader", func(t *testing.T) {
		for _, n := range []int{1, 2, 10} {
			found := false
			for _, trade := range Trades(n, 7) {
				if trade.Trader == knownTrader {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected %q among %d generated trades", knownTrader, n)
			}
		}
	})

	t.Run("prices_and_quantities_in_range", func(t *testing.T) {
		for _, trade := range Trades(50, 1) {
			price := trade.TradeDetails.Price
			if price < 50 || price > 5000 {
				t.Errorf("price %v outside [50, 5000]", price)
			}
			qty := trade.TradeDetails.Quantity
			if qty < 1 || qty > 1000 {
				t.Errorf("quantity %d outside [1, 1000]", qty)
			}
		}
	})

	t.Run("dates_within_last_30_days", func(t *testing.T) {
		now := time.Now()
		for _, trade := range Trades(20, 1) {
			if trade.TradeDateTime.After(now) || trade.TradeDateTime.Before(now.AddDate(0, 0, -31)) {
				t.Errorf("trade_date_time %v outside the last 30 days", trade.TradeDateTime)
			}
		}
	})

	t.Run("zero_count", func(t *testing.T) {
		if trades := Trades(0, 1); len(trades) != 0 {
			t.Errorf("expected no trades, got %d", len(trades))
		}
	})
}

func TestPopulate(t *testing.T) {
	s := store.New()
	testutil.AssertNoError(t, Populate(s, 10, 1))

	if s.Len() != 10 {
		t.Fatalf("expected 10 trades in store, got %d", s.Len())
	}

	// Every seeded trade must be resolvable by its primary key.
	for _, trade := range s.All() {
		got, err := s.GetByID(trade.TradeID)
		testutil.AssertNoError(t, err)
		if got.TradeID != trade.TradeID {
			t.Errorf("expected trade %s, got %s", trade.TradeID, got.TradeID)
		}
	}
}
