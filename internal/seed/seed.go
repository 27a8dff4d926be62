// Package seed generates synthetic trades and loads them into a store at
// process start. It is a data seeding concern only: the store accepts any
// pre-built valid trades regardless of origin.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"tradebook/internal/models"
	"tradebook/internal/store"
)

// knownTrader is always present in seeded data so the exclude_traders
// behavior can be demonstrated against a predictable name.
const knownTrader = "John Smith"

var assetClasses = []string{
	"Equities (Stocks)",
	"Fixed Income (Bonds)",
	"Cash and Cash Equivalents",
	"Real Estate Investment Trusts (REITs)",
	"Alternative Investments",
	"Foreign Exchange (Forex)",
	"Cryptocurrencies",
	"Private Equity",
	"Venture Capital",
	"Collectibles and Tangible Assets",
	"Infrastructure Investments",
	"Emerging Markets",
	"Precious Metals",
	"Government Bonds",
	"Corporate Bonds",
	"Convertible Bonds",
	"Mortgage-Backed Securities (MBS)",
	"Energy Commodities",
	"Agricultural Commodities",
	"Industrial Metals",
	"Environmental, Social, and Governance (ESG) Investments",
}

var counterparties = []string{
	"Counterparty1",
	"Counterparty2",
	"Counterparty3",
	"Counterparty4",
	"Counterparty5",
}

var instruments = []string{
	"TSLA (Tesla, Inc. stock)",
	"GOOG (Alphabet Inc. stock)",
	"AMZN (Amazon.com, Inc. stock)",
	"AAPL (Apple Inc. stock)",
	"FB (Meta Platforms, Inc. stock)",
	"MSFT (Microsoft Corporation stock)",
	"Amazon (AMZN stock)",
	"Tesla (TSLA stock)",
	"Alibaba Group Holding Ltd (BABA stock)",
	"NASDAQ Composite Index (Equity Index)",
	"Dow Jones Industrial Average (Equity Index)",
	"EURUSD (Euro/US Dollar forex pair)",
	"EURGBP (Euro/British Pound forex pair)",
	"USDJPY (US Dollar/Japanese Yen forex pair)",
	"GBPUSD (British Pound/US Dollar forex pair)",
	"EURJPY (Euro/Japanese Yen forex pair)",
	"AUDUSD (Australian Dollar/US Dollar forex pair)",
	"GOLD (Gold commodity)",
	"SILVER (Silver commodity)",
	"NATGAS (Natural Gas commodity)",
	"WTI Crude Oil (OIL commodity)",
	"Bitcoin (BTC cryptocurrency)",
	"Ethereum (ETH cryptocurrency)",
	"Ripple (XRP cryptocurrency)",
	"Bonds (Fixed Income)",
	"10-Year US Treasury Note (Government Bond)",
	"30-Year US Treasury Bond (Government Bond)",
	"Cryptocurrencies",
	"Stocks (Equities)",
}

var buySellIndicators = []string{
	string(models.BuySellIndicatorBuy),
	string(models.BuySellIndicatorSell),
}

// Trades generates n random valid trades. Trade times fall in the last 30
// days. When n > 0 at least one trade is by the known trader. A zero seed
// gives fresh randomness per call; any other value is reproducible.
func Trades(n int, seed uint64) []models.Trade {
	faker := gofakeit.New(seed)
	now := time.Now()

	trades := make([]models.Trade, 0, n)
	hasKnownTrader := false

	for i := 0; i < n; i++ {
		trader := faker.Name()
		if !hasKnownTrader && (i == n-1 || faker.Bool()) {
			trader = knownTrader
			hasKnownTrader = true
		}

		trades = append(trades, models.Trade{
			TradeID:        uuid.NewString(),
			InstrumentID:   faker.RandomString(instruments),
			InstrumentName: "Random Instrument",
			AssetClass:     faker.RandomString(assetClasses),
			Counterparty:   faker.RandomString(counterparties),
			Trader:         trader,
			TradeDateTime:  faker.DateRange(now.AddDate(0, 0, -30), now),
			TradeDetails: models.TradeDetails{
				BuySellIndicator: models.BuySellIndicator(faker.RandomString(buySellIndicators)),
				Price:            faker.Float64Range(50, 5000),
				Quantity:         faker.Number(1, 1000),
			},
		})
	}

	return trades
}

// Populate generates n trades and inserts them into the store, failing on
// the first rejected trade.
func Populate(s *store.Store, n int, seed uint64) error {
	for _, trade := range Trades(n, seed) {
		if err := s.Add(trade); err != nil {
			return fmt.Errorf("seed trade %s: %w", trade.TradeID, err)
		}
	}
	return nil
}
