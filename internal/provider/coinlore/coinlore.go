package coinlore

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/DoroteyaTodorova/Crypto/internal/httpx"
	"github.com/DoroteyaTodorova/Crypto/internal/provider"
)

// Config controls the CoinLore provider behavior.
type Config struct {
	Name     string
	Endpoint string
}

// Provider fetches current prices from the CoinLore ticker feed.
// It is tolerant of malformed entries: records with a blank symbol or a
// blank or non-numeric price are skipped individually, and any upstream
// failure yields an empty result rather than an error.
type Provider struct {
	cfg    Config
	client *httpx.Client
	log    zerolog.Logger
}

func New(cfg Config, hc *httpx.Client, log zerolog.Logger) *Provider {
	if cfg.Name == "" {
		cfg.Name = "CoinLore"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.coinlore.net/api/tickers/"
	}
	return &Provider{cfg: cfg, client: hc, log: log.With().Str("component", "coinlore").Logger()}
}

func (p *Provider) Name() string { return p.cfg.Name }

// tickersResponse mirrors the feed payload. Prices arrive as
// string-encoded decimals.
type tickersResponse struct {
	Data []tickerEntry `json:"data"`
}

type tickerEntry struct {
	Symbol   string `json:"symbol"`
	PriceUSD string `json:"price_usd"`
}

// FetchCurrentPrices issues one GET to the ticker feed and returns the
// parsed quotes with uppercased symbols. The error return is always nil;
// failures degrade to an empty slice and are logged.
func (p *Provider) FetchCurrentPrices(ctx context.Context) ([]provider.Quote, error) {
	out := []provider.Quote{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.Endpoint, http.NoBody)
	if err != nil {
		p.log.Error().Err(err).Msg("building ticker request")
		return out, nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		p.log.Error().Err(err).Str("url", p.cfg.Endpoint).Msg("fetching ticker data")
		return out, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.Error().Int("status", resp.StatusCode).Str("url", p.cfg.Endpoint).Msg("ticker feed returned non-success status")
		return out, nil
	}

	var body tickersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		p.log.Error().Err(err).Msg("decoding ticker response")
		return out, nil
	}
	if len(body.Data) == 0 {
		p.log.Warn().Msg("ticker feed returned no data")
		return out, nil
	}

	for _, coin := range body.Data {
		if strings.TrimSpace(coin.Symbol) == "" || strings.TrimSpace(coin.PriceUSD) == "" {
			continue
		}
		// Locale-invariant: '.' separator, no grouping.
		price, err := decimal.NewFromString(strings.TrimSpace(coin.PriceUSD))
		if err != nil {
			p.log.Warn().Str("symbol", coin.Symbol).Str("price", coin.PriceUSD).Msg("skipping unparseable price")
			continue
		}
		f, _ := price.Float64()
		out = append(out, provider.Quote{
			Symbol:   strings.ToUpper(strings.TrimSpace(coin.Symbol)),
			PriceUSD: f,
		})
	}
	return out, nil
}
