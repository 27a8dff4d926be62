package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
	"tradebook/internal/pagination"
	"tradebook/internal/services"
)

// TradeHandler handles trade query requests.
type TradeHandler struct {
	tradeService services.TradeServicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService services.TradeServicer) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// ListTradesRequest represents the scalar query parameters of a list query.
// List-valued parameters (asset_classes, sort_by, exclude_traders) and the
// date bounds are parsed by hand in buildListQuery.
type ListTradesRequest struct {
	MinPrice  *float64 `form:"min_price"`
	MaxPrice  *float64 `form:"max_price"`
	TradeType string   `form:"trade_type" binding:"omitempty,trade_type"`
	Trader    string   `form:"trader"`
	Search    string   `form:"search"`
}

// ListTrades handles listing trades with search, filtering, sorting and pagination.
// @Summary     List trades
// @Description Query trades with optional free-text search, structured filters, multi-key sorting and pagination
// @Tags        trades
// @Produce     json
// @Param       search          query string   false "Free-text search over instrument ID, instrument name, counterparty and trader (case-insensitive substring)"
// @Param       asset_classes   query []string false "Asset classes to include (repeatable or comma-separated)" collectionFormat(multi)
// @Param       start           query string   false "Minimum trade date-time, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       end             query string   false "Maximum trade date-time, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       min_price       query number   false "Minimum price, inclusive"
// @Param       max_price       query number   false "Maximum price, inclusive"
// @Param       trade_type      query string   false "Trade direction (BUY or SELL)"
// @Param       trader          query string   false "Restrict to trades by this exact trader"
// @Param       exclude_traders query []string false "Traders to exclude (repeatable)" collectionFormat(multi)
// @Param       sort_by         query []string false "Sort keys in order; prefix with - for descending (default trade_date_time)" collectionFormat(multi)
// @Param       page            query int      false "Page number (default 1)"
// @Param       page_size       query int      false "Items per page (default 10)"
// @Success     200 {object} pagination.PageResponse[models.Trade] "Paginated trades"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /trades [get]
func (h *TradeHandler) ListTrades(c *gin.Context) {
	var req ListTradesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	query, err := buildListQuery(c, req, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.tradeService.ListTrades(query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrade handles retrieving a single trade by its ID.
// @Summary     Get trade by ID
// @Description Get a specific trade by trade_id
// @Tags        trades
// @Produce     json
// @Param       id path string true "Trade ID"
// @Success     200 {object} map[string]models.Trade "Trade details"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Router      /trades/{id} [get]
func (h *TradeHandler) GetTrade(c *gin.Context) {
	trade, err := h.tradeService.GetTradeByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trade": trade})
}

// buildListQuery assembles the service-layer query from the bound scalar
// parameters plus the hand-parsed list and date parameters.
func buildListQuery(c *gin.Context, req ListTradesRequest, page pagination.PageRequest) (services.ListQuery, error) {
	query := services.ListQuery{
		AssetClasses:   splitCSV(c.QueryArray("asset_classes")),
		MinPrice:       req.MinPrice,
		MaxPrice:       req.MaxPrice,
		Trader:         req.Trader,
		Search:         req.Search,
		ExcludeTraders: c.QueryArray("exclude_traders"),
		SortBy:         c.QueryArray("sort_by"),
		Page:           page,
	}

	if req.TradeType != "" {
		tradeType := models.BuySellIndicator(req.TradeType)
		query.TradeType = &tradeType
	}

	if v := c.Query("start"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return query, apperrors.WithMessage(apperrors.ErrValidation, "invalid start format, use RFC3339 or YYYY-MM-DD")
		}
		query.Start = &t
	}

	if v := c.Query("end"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return query, apperrors.WithMessage(apperrors.ErrValidation, "invalid end format, use RFC3339 or YYYY-MM-DD")
		}
		query.End = &t
	}

	return query, nil
}

// splitCSV expands repeated query values that may themselves be
// comma-separated lists, dropping empty entries.
func splitCSV(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
