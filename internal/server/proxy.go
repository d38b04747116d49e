package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleNews proxies per-symbol headline requests to the upstream news
// feed so the API key stays server-side. The upstream body is passed
// through untouched.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	s.log.Info().Str("symbol", symbol).Msg("fetching news")

	q := url.Values{}
	q.Set("auth_token", s.news.APIKey)
	q.Set("currencies", strings.ToLower(symbol))
	q.Set("public", "true")
	newsURL := s.news.Endpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, newsURL, http.NoBody)
	if err != nil {
		s.log.Error().Err(err).Msg("building news request")
		s.writeError(w, http.StatusInternalServerError, "failed to fetch news")
		return
	}
	resp, err := s.client.Do(r.Context(), req)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("news feed unreachable")
		s.writeError(w, http.StatusInternalServerError, "failed to fetch news")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Warn().Int("status", resp.StatusCode).Str("symbol", symbol).Msg("news feed returned non-success status")
		s.writeError(w, http.StatusInternalServerError, "failed to fetch news")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.log.Error().Err(err).Msg("streaming news response")
	}
}

type sentimentRequest struct {
	Text string `json:"text"`
}

// handleSentiment forwards text to the classification model, translating
// the local {"text"} shape into the model's {"inputs"} shape and adding
// Bearer auth. The model body is passed through untouched.
func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	var req sentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	payload, _ := json.Marshal(map[string]string{"inputs": req.Text})
	upstream, err := http.NewRequestWithContext(r.Context(), http.MethodPost, s.model.Endpoint, bytes.NewReader(payload))
	if err != nil {
		s.log.Error().Err(err).Msg("building classification request")
		s.writeError(w, http.StatusInternalServerError, "failed to analyze sentiment")
		return
	}
	upstream.Header.Set("Content-Type", "application/json")
	if s.model.APIKey != "" {
		upstream.Header.Set("Authorization", "Bearer "+s.model.APIKey)
	}

	resp, err := s.client.Do(r.Context(), upstream)
	if err != nil {
		s.log.Warn().Err(err).Msg("classification model unreachable")
		s.writeError(w, http.StatusInternalServerError, "failed to analyze sentiment")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Warn().Int("status", resp.StatusCode).Msg("classification model returned non-success status")
		s.writeError(w, http.StatusInternalServerError, "failed to analyze sentiment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.log.Error().Err(err).Msg("streaming classification response")
	}
}
