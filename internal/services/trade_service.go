package services

import (
	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
	"tradebook/internal/pagination"
	"tradebook/internal/store"
)

// defaultSortBy is the sort order applied when the caller supplies none.
var defaultSortBy = []string{"trade_date_time"}

// tradeService evaluates trade queries against an injected store.
type tradeService struct {
	store *store.Store
}

// NewTradeService creates a new TradeServicer backed by the given store.
func NewTradeService(s *store.Store) TradeServicer {
	return &tradeService{store: s}
}

// ListTrades evaluates one list query. The stages run in fixed order:
// search, filter, trader exclusion, single-trader narrowing, multi-key
// sort, page window. All parameter validation happens before any stage
// runs, so a rejected query leaves nothing half-evaluated.
func (s *tradeService) ListTrades(query ListQuery) (*pagination.PageResponse[models.Trade], error) {
	query.Page.Defaults()
	if query.Page.Page < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "page must be at least 1")
	}
	if query.Page.PageSize < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "page_size must be at least 1")
	}

	sortBy := query.SortBy
	if len(sortBy) == 0 {
		sortBy = defaultSortBy
	}
	sortKeys, err := parseSortKeys(sortBy)
	if err != nil {
		return nil, err
	}

	// The filter stage always rebuilds the base set from the full store,
	// so a search-narrowed base is replaced wholesale and the search term
	// never narrows the output. See DESIGN.md ("Search/filter precedence")
	// before changing this.
	if query.Search != "" {
		s.store.Search(query.Search)
	}
	trades := s.store.Filter(store.FilterParams{
		AssetClasses: query.AssetClasses,
		Start:        query.Start,
		End:          query.End,
		MinPrice:     query.MinPrice,
		MaxPrice:     query.MaxPrice,
		TradeType:    query.TradeType,
	})

	if len(query.ExcludeTraders) > 0 {
		trades = excludeTraders(trades, query.ExcludeTraders)
	}

	// Narrowing to one trader runs after exclusion, so a trader that is
	// both requested and excluded yields an empty result.
	if query.Trader != "" {
		kept := trades[:0]
		for _, trade := range trades {
			if trade.Trader == query.Trader {
				kept = append(kept, trade)
			}
		}
		trades = kept
	}

	applySort(trades, sortKeys)

	page := pagination.Window(trades, query.Page)
	result := pagination.NewPageResponse(page, query.Page.Page, query.Page.PageSize, int64(len(trades)))
	return &result, nil
}

// GetTradeByID resolves one trade by primary key.
func (s *tradeService) GetTradeByID(id string) (*models.Trade, error) {
	trade, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

func excludeTraders(trades []models.Trade, excluded []string) []models.Trade {
	drop := make(map[string]struct{}, len(excluded))
	for _, trader := range excluded {
		drop[trader] = struct{}{}
	}

	kept := trades[:0]
	for _, trade := range trades {
		if _, ok := drop[trade.Trader]; !ok {
			kept = append(kept, trade)
		}
	}
	return kept
}
