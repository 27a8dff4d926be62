package models

import (
	"strings"
	"time"

	apperrors "tradebook/internal/errors"
)

// BuySellIndicator represents the direction of a trade from the trader's perspective.
type BuySellIndicator string

const (
	BuySellIndicatorBuy  BuySellIndicator = "BUY"
	BuySellIndicatorSell BuySellIndicator = "SELL"
)

// Valid reports whether the indicator is one of the known directions.
func (b BuySellIndicator) Valid() bool {
	return b == BuySellIndicatorBuy || b == BuySellIndicatorSell
}

// TradeDetails holds the economics of a trade. It is a value type embedded
// in Trade and never mutated after construction.
//
// The buySellIndicator JSON key is camelCase for compatibility with the
// existing wire format; all other fields use snake_case.
type TradeDetails struct {
	BuySellIndicator BuySellIndicator `json:"buySellIndicator"`
	Price            float64          `json:"price"`
	Quantity         int              `json:"quantity"`
}

// Trade represents one immutable record of an executed financial transaction.
// trade_id is the primary key, assigned at creation and never reassigned.
type Trade struct {
	TradeID        string       `json:"trade_id"`
	InstrumentID   string       `json:"instrument_id"`
	InstrumentName string       `json:"instrument_name"`
	AssetClass     string       `json:"asset_class,omitempty"`
	Counterparty   string       `json:"counterparty,omitempty"`
	Trader         string       `json:"trader"`
	TradeDateTime  time.Time    `json:"trade_date_time"`
	TradeDetails   TradeDetails `json:"trade_details"`
}

// Validate checks the construction invariants. It returns a VALIDATION_ERROR
// AppError naming the first offending field, or nil if the trade is valid.
// Stores must reject invalid trades before insertion.
func (t *Trade) Validate() error {
	switch {
	case strings.TrimSpace(t.TradeID) == "":
		return apperrors.WithMessage(apperrors.ErrValidation, "trade_id is required")
	case strings.TrimSpace(t.InstrumentID) == "":
		return apperrors.WithMessage(apperrors.ErrValidation, "instrument_id is required")
	case strings.TrimSpace(t.InstrumentName) == "":
		return apperrors.WithMessage(apperrors.ErrValidation, "instrument_name is required")
	case strings.TrimSpace(t.Trader) == "":
		return apperrors.WithMessage(apperrors.ErrValidation, "trader is required")
	case t.TradeDateTime.IsZero():
		return apperrors.WithMessage(apperrors.ErrValidation, "trade_date_time is required")
	case !t.TradeDetails.BuySellIndicator.Valid():
		return apperrors.WithMessage(apperrors.ErrValidation, "buySellIndicator must be BUY or SELL")
	case t.TradeDetails.Price < 0:
		return apperrors.WithMessage(apperrors.ErrValidation, "price must not be negative")
	case t.TradeDetails.Quantity <= 0:
		return apperrors.WithMessage(apperrors.ErrValidation, "quantity must be positive")
	}
	return nil
}
