package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DoroteyaTodorova/Crypto/internal/httpx"
	"github.com/DoroteyaTodorova/Crypto/internal/provider"
)

// Config controls the sentiment provider behavior.
type Config struct {
	Name string
	// NewsURL is the base URL for per-symbol headlines; the symbol is
	// appended as a path segment.
	NewsURL string
	// ClassifyURL receives {"text": ...} and answers with label/score
	// pairs in one of several shapes.
	ClassifyURL string
}

// Provider classifies the aggregate tone of recent headlines for a symbol.
// Every internal failure path resolves to provider.SentimentNotAvailable;
// AnalyzeSentiment never returns a non-nil error.
type Provider struct {
	cfg    Config
	client *httpx.Client
	log    zerolog.Logger
}

func New(cfg Config, hc *httpx.Client, log zerolog.Logger) *Provider {
	if cfg.Name == "" {
		cfg.Name = "NewsSentiment"
	}
	return &Provider{cfg: cfg, client: hc, log: log.With().Str("component", "sentiment").Logger()}
}

func (p *Provider) Name() string { return p.cfg.Name }

// AnalyzeSentiment fetches headlines for symbol, joins their titles and
// asks the classification endpoint for a label. The neutral band: a
// positive or negative label with a score in [0.4, 0.6] is reported as
// Neutral.
func (p *Provider) AnalyzeSentiment(ctx context.Context, symbol string) (string, error) {
	titles, ok := p.fetchTitles(ctx, symbol)
	if !ok || len(titles) == 0 {
		return provider.SentimentNotAvailable, nil
	}

	label, score, ok := p.classify(ctx, symbol, strings.Join(titles, ". "))
	if !ok {
		return provider.SentimentNotAvailable, nil
	}

	label = strings.ToLower(label)
	if label == "" {
		return provider.SentimentNotAvailable, nil
	}
	if (label == "positive" || label == "negative") && score >= 0.4 && score <= 0.6 {
		return provider.SentimentNeutral, nil
	}
	return strings.ToUpper(label[:1]) + label[1:], nil
}

// fetchTitles returns the non-blank headline titles for symbol. ok is
// false when the feed is unreachable or the payload has an unexpected
// shape.
func (p *Provider) fetchTitles(ctx context.Context, symbol string) ([]string, bool) {
	url := strings.TrimRight(p.cfg.NewsURL, "/") + "/" + symbol
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		p.log.Error().Err(err).Str("symbol", symbol).Msg("building news request")
		return nil, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		p.log.Warn().Err(err).Str("symbol", symbol).Msg("fetching news")
		return nil, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.Warn().Int("status", resp.StatusCode).Str("symbol", symbol).Msg("news feed returned non-success status")
		return nil, false
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		p.log.Warn().Err(err).Str("symbol", symbol).Msg("decoding news response")
		return nil, false
	}
	results, ok := body["results"].([]any)
	if !ok {
		p.log.Warn().Str("symbol", symbol).Msg("unexpected news payload shape")
		return nil, false
	}

	titles := make([]string, 0, len(results))
	for _, raw := range results {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		title, _ := item["title"].(string)
		if strings.TrimSpace(title) == "" {
			continue
		}
		titles = append(titles, title)
	}
	if len(titles) == 0 {
		p.log.Info().Str("symbol", symbol).Msg("no news titles found")
	}
	return titles, true
}

// classify posts the joined headlines and extracts a (label, score) pair.
func (p *Provider) classify(ctx context.Context, symbol, text string) (string, float64, bool) {
	payload, _ := json.Marshal(map[string]string{"text": text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ClassifyURL, bytes.NewReader(payload))
	if err != nil {
		p.log.Error().Err(err).Str("symbol", symbol).Msg("building classify request")
		return "", 0, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		p.log.Warn().Err(err).Str("symbol", symbol).Msg("calling classification endpoint")
		return "", 0, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.Warn().Int("status", resp.StatusCode).Str("symbol", symbol).Msg("classification endpoint returned non-success status")
		return "", 0, false
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		p.log.Warn().Err(err).Str("symbol", symbol).Msg("decoding classification response")
		return "", 0, false
	}

	label, score, ok := extractClassification(body)
	if !ok {
		p.log.Warn().Str("symbol", symbol).Msg("unexpected classification payload shape")
	}
	return label, score, ok
}

// extractClassification resolves a label/score pair from the model
// response. Accepted shapes: a flat array of {label, score}, a nested
// array of arrays (first element of the first sub-array), or a plain
// single object as fallback.
func extractClassification(body any) (string, float64, bool) {
	target := body
	if arr, ok := body.([]any); ok {
		if len(arr) == 0 {
			return "", 0, false
		}
		target = arr[0]
		if inner, ok := target.([]any); ok {
			if len(inner) == 0 {
				return "", 0, false
			}
			target = inner[0]
		}
	}
	obj, ok := target.(map[string]any)
	if !ok {
		return "", 0, false
	}
	label, ok := obj["label"].(string)
	if !ok {
		return "", 0, false
	}
	score, ok := obj["score"].(float64)
	if !ok {
		return "", 0, false
	}
	return label, score, true
}
