package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Clark-Hu/movies-dashboard/internal/dashboard"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type dashboardResponse struct {
	dashboard.Snapshot
	Metrics []dashboard.Metric `json:"metrics"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	criteria, err := buildCriteria(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.cfg.DashboardTimeoutSecs)*time.Second)
	defer cancel()

	snap, err := dashboard.Compute(ctx, s.table, criteria)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.respondError(w, http.StatusServiceUnavailable, "TIMEOUT", "Dashboard computation timed out")
			return
		}
		s.logger.Printf("compute dashboard error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute dashboard")
		return
	}

	s.respondJSON(w, http.StatusOK, dashboardResponse{
		Snapshot: snap,
		Metrics:  snap.KPIs.Metrics(),
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.OptionsLimit
	if val := strings.TrimSpace(r.URL.Query().Get("limit")); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 0 {
			s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid limit value")
			return
		}
		limit = parsed
	}
	s.respondJSON(w, http.StatusOK, s.options.Limit(limit))
}

// buildCriteria reads year, genre, ratingMin and ratingMax. year and genre
// may repeat; years may also be comma-separated. Genre cells contain commas
// themselves, so they are never split.
func buildCriteria(query url.Values) (dashboard.Criteria, error) {
	var years []int
	for _, raw := range query["year"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			year, err := strconv.Atoi(part)
			if err != nil {
				return dashboard.Criteria{}, fmt.Errorf("invalid year value")
			}
			years = append(years, year)
		}
	}

	var genres []string
	for _, raw := range query["genre"] {
		if val := strings.TrimSpace(raw); val != "" {
			genres = append(genres, val)
		}
	}

	rating := dashboard.FullRange()
	if val := strings.TrimSpace(query.Get("ratingMin")); val != "" {
		low, err := parseRatingBound(val)
		if err != nil {
			return dashboard.Criteria{}, fmt.Errorf("invalid ratingMin value")
		}
		rating.Low = low
	}
	if val := strings.TrimSpace(query.Get("ratingMax")); val != "" {
		high, err := parseRatingBound(val)
		if err != nil {
			return dashboard.Criteria{}, fmt.Errorf("invalid ratingMax value")
		}
		rating.High = high
	}
	if rating.Low > rating.High {
		return dashboard.Criteria{}, fmt.Errorf("ratingMin cannot exceed ratingMax")
	}

	return dashboard.NewCriteria(years, genres, rating), nil
}

func parseRatingBound(val string) (float64, error) {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < dashboard.MinRating || v > dashboard.MaxRating {
		return 0, fmt.Errorf("rating %v out of range", v)
	}
	return v, nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Printf("failed to encode response: %v", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
