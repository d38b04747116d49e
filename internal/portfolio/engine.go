package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DoroteyaTodorova/Crypto/internal/provider"
)

// Entry is one position submitted by the client.
type Entry struct {
	Coin     string  `json:"coin"`
	Amount   float64 `json:"amount"`
	BuyPrice float64 `json:"buyPrice"`
}

// Result is an Entry resolved against current prices. Coin carries the
// normalized (trimmed, uppercased) symbol. ChangePercent is nil when
// BuyPrice is not positive.
type Result struct {
	Entry
	CurrentPrice  *float64 `json:"currentPrice"`
	ChangePercent *float64 `json:"changePercent"`
	Sentiment     string   `json:"sentiment"`
}

// Engine combines a portfolio request with price data and, optionally,
// per-coin sentiment. Providers are injected so tests can substitute
// doubles.
type Engine struct {
	prices    provider.PriceProvider
	sentiment provider.SentimentProvider
	log       zerolog.Logger
}

func NewEngine(prices provider.PriceProvider, sentiment provider.SentimentProvider, log zerolog.Logger) *Engine {
	return &Engine{
		prices:    prices,
		sentiment: sentiment,
		log:       log.With().Str("component", "portfolio").Logger(),
	}
}

// Calculate resolves each entry against one batch price fetch, in input
// order. Entries with a blank coin or a symbol missing from the price data
// are skipped, never nulled. A failure of the price fetch itself is fatal
// for the whole batch; per-entry enrichment failures surface as the Error
// sentiment and the batch continues.
func (e *Engine) Calculate(ctx context.Context, entries []Entry, includeSentiment bool) ([]Result, error) {
	quotes, err := e.prices.FetchCurrentPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch current prices: %w", err)
	}

	// Last write wins for duplicate symbols.
	priceBySymbol := make(map[string]float64, len(quotes))
	for _, q := range quotes {
		priceBySymbol[strings.ToUpper(strings.TrimSpace(q.Symbol))] = q.PriceUSD
	}

	e.log.Info().Int("entries", len(entries)).Bool("sentiment", includeSentiment).Msg("processing portfolio")

	results := []Result{}
	for _, item := range entries {
		symbol := strings.ToUpper(strings.TrimSpace(item.Coin))
		if symbol == "" {
			e.log.Warn().Msg("skipped entry with missing coin symbol")
			continue
		}
		currentPrice, ok := priceBySymbol[symbol]
		if !ok {
			e.log.Warn().Str("symbol", symbol).Msg("symbol not found in price data")
			continue
		}

		var change *float64
		if item.BuyPrice > 0 {
			v := (currentPrice - item.BuyPrice) / item.BuyPrice * 100
			change = &v
		}

		label := provider.SentimentNotAvailable
		if includeSentiment {
			// Sequential by design: one provider round trip per entry,
			// duplicates included.
			s, err := e.sentiment.AnalyzeSentiment(ctx, symbol)
			if err != nil {
				e.log.Error().Err(err).Str("symbol", symbol).Msg("sentiment analysis failed")
				label = provider.SentimentError
			} else {
				label = s
			}
		}

		price := currentPrice
		results = append(results, Result{
			Entry:         Entry{Coin: symbol, Amount: item.Amount, BuyPrice: item.BuyPrice},
			CurrentPrice:  &price,
			ChangePercent: change,
			Sentiment:     label,
		})
	}

	e.log.Info().Int("results", len(results)).Msg("portfolio calculation completed")
	return results, nil
}
