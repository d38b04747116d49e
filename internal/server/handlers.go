package server

import (
	"encoding/json"
	"net/http"

	"github.com/DoroteyaTodorova/Crypto/internal/portfolio"
)

// calculateRequest is the portfolio calculation request body.
type calculateRequest struct {
	Portfolio        []portfolio.Entry `json:"portfolio"`
	IncludeSentiment bool              `json:"includeSentiment"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "crypto-portfolio",
	})
}

// handlePortfolioCalculate validates the request, runs the engine and
// returns the result list verbatim. Internal failure detail is logged but
// never leaked to the caller.
func (s *Server) handlePortfolioCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Portfolio) == 0 {
		s.log.Warn().Msg("received empty portfolio request")
		s.writeError(w, http.StatusBadRequest, "portfolio is empty or missing")
		return
	}

	results, err := s.engine.Calculate(r.Context(), req.Portfolio, req.IncludeSentiment)
	if err != nil {
		s.log.Error().Err(err).Msg("portfolio calculation failed")
		s.writeError(w, http.StatusInternalServerError, "an error occurred while processing your request")
		return
	}
	s.writeJSON(w, http.StatusOK, results)
}

type appendLogRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleAppendLog(w http.ResponseWriter, r *http.Request) {
	var req appendLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.logs.Append(req.Message); err != nil {
		s.log.Error().Err(err).Msg("appending activity log")
		s.writeError(w, http.StatusInternalServerError, "failed to append log")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleGetLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := s.logs.Last(10)
	if err != nil {
		s.log.Error().Err(err).Msg("reading activity log")
		s.writeError(w, http.StatusInternalServerError, "failed to read logs")
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("encoding JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
