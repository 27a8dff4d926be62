// Package store holds the authoritative in-memory set of trades and offers
// the read primitives the query pipeline is built from. A Store is populated
// once at startup and treated as an immutable snapshot afterwards; the lock
// only matters while seeding is still in flight.
package store

import (
	"strings"
	"sync"
	"time"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
)

// FilterParams holds the optional constraints applied by Filter. Absent
// fields impose no restriction; supplied fields combine with AND semantics.
// Time and price bounds are inclusive.
type FilterParams struct {
	AssetClasses []string
	Start        *time.Time
	End          *time.Time
	MinPrice     *float64
	MaxPrice     *float64
	TradeType    *models.BuySellIndicator
}

// Store is an insertion-ordered, in-memory collection of trades indexed by
// trade ID. Construct it with New and pass it by reference into the service
// layer; there is no package-level instance.
type Store struct {
	mu     sync.RWMutex
	trades []models.Trade
	byID   map[string]int
}

// New creates an empty Store.
func New() *Store {
	return &Store{byID: make(map[string]int)}
}

// Add validates and inserts a trade. Trades with a duplicate trade_id are
// rejected with a VALIDATION_ERROR and leave the store unchanged.
func (s *Store) Add(trade models.Trade) error {
	if err := trade.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[trade.TradeID]; exists {
		return apperrors.WithMessage(apperrors.ErrValidation, "duplicate trade_id "+trade.TradeID)
	}

	s.byID[trade.TradeID] = len(s.trades)
	s.trades = append(s.trades, trade)
	return nil
}

// GetByID returns the trade with the given ID, or ErrTradeNotFound.
func (s *Store) GetByID(id string) (models.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return models.Trade{}, apperrors.ErrTradeNotFound
	}
	return s.trades[idx], nil
}

// Search returns all trades where text appears, case-insensitively, as a
// substring of the instrument ID, instrument name, counterparty, or trader.
// Results keep insertion order.
func (s *Store) Search(text string) []models.Trade {
	query := strings.ToLower(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Trade, 0)
	for _, trade := range s.trades {
		if strings.Contains(strings.ToLower(trade.InstrumentID), query) ||
			strings.Contains(strings.ToLower(trade.InstrumentName), query) ||
			strings.Contains(strings.ToLower(trade.Counterparty), query) ||
			strings.Contains(strings.ToLower(trade.Trader), query) {
			result = append(result, trade)
		}
	}
	return result
}

// Filter returns all trades satisfying every supplied constraint, in
// insertion order. With zero constraints it returns the full store.
func (s *Store) Filter(params FilterParams) []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Trade, 0)
	for _, trade := range s.trades {
		if matches(trade, params) {
			result = append(result, trade)
		}
	}
	return result
}

// All returns a copy of the full store in insertion order.
func (s *Store) All() []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Trade, len(s.trades))
	copy(result, s.trades)
	return result
}

// Len returns the number of trades in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

func matches(trade models.Trade, params FilterParams) bool {
	if len(params.AssetClasses) > 0 && !contains(params.AssetClasses, trade.AssetClass) {
		return false
	}
	if params.Start != nil && trade.TradeDateTime.Before(*params.Start) {
		return false
	}
	if params.End != nil && trade.TradeDateTime.After(*params.End) {
		return false
	}
	if params.MinPrice != nil && trade.TradeDetails.Price < *params.MinPrice {
		return false
	}
	if params.MaxPrice != nil && trade.TradeDetails.Price > *params.MaxPrice {
		return false
	}
	if params.TradeType != nil && trade.TradeDetails.BuySellIndicator != *params.TradeType {
		return false
	}
	return true
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
