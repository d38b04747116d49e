package provider

import "context"

// Quote is the normalized shape returned by the price feed.
// Symbol is always trimmed and uppercased.
type Quote struct {
	Symbol   string  `json:"symbol"`
	PriceUSD float64 `json:"price_usd"`
}

// Sentiment labels returned by AnalyzeSentiment and carried on portfolio
// results. NotAvailable covers every internal failure path of the provider;
// Error is set by the engine when the provider call itself fails.
const (
	SentimentPositive     = "Positive"
	SentimentNegative     = "Negative"
	SentimentNeutral      = "Neutral"
	SentimentNotAvailable = "N/A"
	SentimentError        = "Error"
)

// PriceProvider fetches current prices from a ticker feed.
//
//go:generate mockgen -package=portfolio_test -destination=../portfolio/mock_providers_test.go -source=provider.go PriceProvider,SentimentProvider
//
// The coinlore implementation degrades to an empty slice on any upstream
// failure and never returns a non-nil error. The error return exists for
// substitute implementations; callers must treat it as fatal because no
// result set is meaningful without prices.
type PriceProvider interface {
	Name() string
	FetchCurrentPrices(ctx context.Context) ([]Quote, error)
}

// SentimentProvider classifies the aggregate news tone for a symbol.
//
// The real implementation resolves every internal failure to
// SentimentNotAvailable and a nil error. A non-nil error signals an
// unexpected failure of the call itself, which the engine records as
// SentimentError for that entry only.
type SentimentProvider interface {
	Name() string
	AnalyzeSentiment(ctx context.Context, symbol string) (string, error)
}
