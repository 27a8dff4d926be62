package services

import (
	"fmt"
	"sort"
	"strings"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
)

// lessFuncs is the static mapping from recognized sort field names to
// ascending comparators. Sort keys are validated against this map up front;
// unknown names fail with a VALIDATION_ERROR instead of being ignored.
var lessFuncs = map[string]func(a, b models.Trade) bool{
	"trade_id":        func(a, b models.Trade) bool { return a.TradeID < b.TradeID },
	"instrument_id":   func(a, b models.Trade) bool { return a.InstrumentID < b.InstrumentID },
	"instrument_name": func(a, b models.Trade) bool { return a.InstrumentName < b.InstrumentName },
	"asset_class":     func(a, b models.Trade) bool { return a.AssetClass < b.AssetClass },
	"counterparty":    func(a, b models.Trade) bool { return a.Counterparty < b.Counterparty },
	"trader":          func(a, b models.Trade) bool { return a.Trader < b.Trader },
	"trade_date_time": func(a, b models.Trade) bool { return a.TradeDateTime.Before(b.TradeDateTime) },
	"price":           func(a, b models.Trade) bool { return a.TradeDetails.Price < b.TradeDetails.Price },
	"quantity":        func(a, b models.Trade) bool { return a.TradeDetails.Quantity < b.TradeDetails.Quantity },
}

// sortKey is one parsed entry of a sort_by list.
type sortKey struct {
	less func(a, b models.Trade) bool
	desc bool
}

// parseSortKeys resolves field names to comparators. A leading "-" marks a
// key as descending.
func parseSortKeys(fields []string) ([]sortKey, error) {
	keys := make([]sortKey, 0, len(fields))
	for _, field := range fields {
		name := strings.TrimPrefix(field, "-")
		less, ok := lessFuncs[name]
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, fmt.Sprintf("unknown sort field %q", name))
		}
		keys = append(keys, sortKey{less: less, desc: name != field})
	}
	return keys, nil
}

// applySort runs one stable sort per key, in key order. Each pass reorders
// the output of the previous one, so the last key ends up as the primary
// order and earlier keys survive only as tie-breaks among elements the last
// pass treats as equal. See DESIGN.md ("Multi-key sort") before switching
// this to a single lexicographic compare.
func applySort(trades []models.Trade, keys []sortKey) {
	for _, key := range keys {
		less := key.less
		if key.desc {
			asc := less
			less = func(a, b models.Trade) bool { return asc(b, a) }
		}
		sort.SliceStable(trades, func(i, j int) bool {
			return less(trades[i], trades[j])
		})
	}
}
