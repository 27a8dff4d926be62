package services

import (
	"time"

	"tradebook/internal/models"
	"tradebook/internal/pagination"
)

// ListQuery holds every parameter of one trade list query. Pointer fields
// are optional constraints; nil imposes nothing.
type ListQuery struct {
	AssetClasses   []string
	Start          *time.Time
	End            *time.Time
	MinPrice       *float64
	MaxPrice       *float64
	TradeType      *models.BuySellIndicator
	Trader         string
	Search         string
	ExcludeTraders []string
	SortBy         []string
	Page           pagination.PageRequest
}

// TradeServicer defines the contract for trade query evaluation.
type TradeServicer interface {
	ListTrades(query ListQuery) (*pagination.PageResponse[models.Trade], error)
	GetTradeByID(id string) (*models.Trade, error)
}
