// Package api provides the HTTP API for the narration script service.
// GET endpoints are public read-only catalog access; the generate endpoint
// is rate-limited per client IP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"scriptdesk/internal/archive"
	"scriptdesk/internal/knowledge"
	"scriptdesk/internal/phrase"
	"scriptdesk/internal/script"
)

// Version reported by the status endpoint.
const Version = "1.0.0"

// Server serves the script catalog and composer over HTTP.
type Server struct {
	KB       *knowledge.Base
	Bank     *phrase.Bank
	Composer *script.Composer
	Archive  *archive.DB // optional; nil disables the archive endpoints
	Port     int
	Origins  []string // extra allowed CORS origins
}

// Handler builds the full route table. Exposed so tests can drive the
// server through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	generateLimiter := NewRateLimiter(60, time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/cities", s.handleCities)
	mux.HandleFunc("/api/v1/cities/", s.handleCityLandmarks)
	mux.HandleFunc("/api/v1/generate", RateLimitMiddleware(generateLimiter, s.handleGenerate))
	mux.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/v1/scripts", s.handleScripts)
	mux.HandleFunc("/api/v1/scripts/", s.handleScriptByID)

	return s.corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	handler := s.Handler()
	go func() {
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Localhost dev servers are always allowed; extra origins come from config.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowed := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	for _, origin := range s.Origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed[origin] = true
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	archived := 0
	if s.Archive != nil {
		if n, err := s.Archive.Count(); err == nil {
			archived = n
		}
	}

	writeJSON(w, map[string]any{
		"service":   "scriptdesk",
		"version":   Version,
		"cities":    len(s.KB.Cities()),
		"landmarks": s.KB.LandmarkCount(),
		"tones":     s.Bank.Tones(),
		"lengths":   []script.LengthClass{script.LengthShort, script.LengthMedium, script.LengthLong},
		"archived":  archived,
	})
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	type citySummary struct {
		Name      string `json:"name"`
		Region    string `json:"region,omitempty"`
		Landmarks int    `json:"landmarks_count"`
	}

	cities := s.KB.Cities()
	result := make([]citySummary, 0, len(cities))
	for _, c := range cities {
		result = append(result, citySummary{
			Name:      c.Name,
			Region:    c.Region,
			Landmarks: len(c.Landmarks),
		})
	}
	writeJSON(w, map[string]any{"success": true, "cities": result})
}

// handleCityLandmarks serves GET /api/v1/cities/{city}/landmarks.
func (s *Server) handleCityLandmarks(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// api / v1 / cities / {city} / landmarks
	if len(parts) != 5 || parts[4] != "landmarks" {
		http.NotFound(w, r)
		return
	}
	cityName := parts[3]

	city, err := s.KB.City(cityName)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	type landmarkSummary struct {
		Name             string             `json:"name"`
		Category         knowledge.Category `json:"category"`
		Description      string             `json:"description"`
		Facts            int                `json:"facts_count"`
		HasVisitingNotes bool               `json:"has_visiting_notes"`
	}

	result := make([]landmarkSummary, 0, len(city.Landmarks))
	for _, lm := range city.Landmarks {
		result = append(result, landmarkSummary{
			Name:             lm.Name,
			Category:         lm.Category,
			Description:      lm.Description,
			Facts:            len(lm.Facts),
			HasVisitingNotes: lm.VisitingNotes != "",
		})
	}

	writeJSON(w, map[string]any{
		"success": true,
		"city": map[string]any{
			"name":   city.Name,
			"region": city.Region,
		},
		"landmarks": result,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req struct {
		City     string `json:"city"`
		Landmark string `json:"landmark"`
		Tone     string `json:"tone"`
		Length   string `json:"length"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.City == "" {
		writeError(w, http.StatusBadRequest, "missing required field: city")
		return
	}

	composed, err := s.Composer.Compose(script.Request{
		City:     req.City,
		Landmark: req.Landmark,
		Tone:     req.Tone,
		Length:   script.LengthClass(req.Length),
	})
	if err != nil {
		var notFound *knowledge.NotFoundError
		switch {
		case errors.As(err, &notFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, script.ErrUnknownTone), errors.Is(err, script.ErrUnknownLength):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("compose failed", "city", req.City, "landmark", req.Landmark, "error", err)
			writeError(w, http.StatusInternalServerError, "script generation failed")
		}
		return
	}

	// Archive best-effort; the composed script is already in hand.
	if s.Archive != nil {
		entry := archive.Entry{
			ID:        composed.ID,
			City:      composed.City,
			Landmark:  composed.Landmark,
			Tone:      composed.Metadata.Tone,
			Length:    req.Length,
			WordCount: composed.Metadata.WordCount,
			Text:      composed.Text,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.Archive.Save(entry); err != nil {
			slog.Error("archive save failed", "id", composed.ID, "error", err)
		}
	}

	writeJSON(w, map[string]any{"success": true, "script": composed})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req struct {
		Script string `json:"script"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Script) == "" {
		writeError(w, http.StatusBadRequest, "missing script text")
		return
	}

	writeJSON(w, map[string]any{"success": true, "analysis": script.Analyze(req.Script)})
}

func (s *Server) handleScripts(w http.ResponseWriter, r *http.Request) {
	if s.Archive == nil {
		writeError(w, http.StatusNotFound, "archive disabled")
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := s.Archive.Recent(limit)
	if err != nil {
		slog.Error("archive listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "archive listing failed")
		return
	}

	type entrySummary struct {
		ID        string `json:"id"`
		City      string `json:"city"`
		Landmark  string `json:"landmark"`
		Tone      string `json:"tone"`
		Length    string `json:"length"`
		WordCount int    `json:"word_count"`
		Generated string `json:"generated"`
	}

	result := make([]entrySummary, 0, len(entries))
	for _, e := range entries {
		result = append(result, entrySummary{
			ID:        e.ID,
			City:      e.City,
			Landmark:  e.Landmark,
			Tone:      e.Tone,
			Length:    e.Length,
			WordCount: e.WordCount,
			Generated: humanize.Time(e.CreatedAt),
		})
	}
	writeJSON(w, map[string]any{"success": true, "scripts": result})
}

func (s *Server) handleScriptByID(w http.ResponseWriter, r *http.Request) {
	if s.Archive == nil {
		writeError(w, http.StatusNotFound, "archive disabled")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/scripts/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid script id")
		return
	}

	entry, err := s.Archive.Get(id)
	if errors.Is(err, archive.ErrNotFound) {
		writeError(w, http.StatusNotFound, "script not found")
		return
	}
	if err != nil {
		slog.Error("archive read failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "archive read failed")
		return
	}
	writeJSON(w, map[string]any{"success": true, "script": entry})
}
