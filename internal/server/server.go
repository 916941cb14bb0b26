package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hyspell/internal/corrector"
)

// Speller is the correction surface the handlers need.
type Speller interface {
	Check(ctx context.Context, word string) (corrector.Result, error)
	CheckText(ctx context.Context, text string) ([]corrector.TokenResult, error)
	VocabularySize() int
}

type Handler struct {
	speller Speller
	log     *slog.Logger
	timeout time.Duration
}

// NewHandler builds the HTTP API. timeout bounds a single request's correction work.
func NewHandler(speller Speller, logger *slog.Logger, timeout time.Duration) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{speller: speller, log: logger, timeout: timeout}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/correct", h.correct)
	mux.HandleFunc("/api/v1/check", h.check)
	mux.HandleFunc("/healthz", h.health)
	return h.withRequestID(mux)
}

type correctResponse struct {
	Word string `json:"word"`
	corrector.Result
}

func (h *Handler) correct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	word := strings.TrimSpace(req.Word)

	ctx, cancel := h.requestContext(r)
	defer cancel()
	res, err := h.speller.Check(ctx, word)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, correctResponse{Word: word, Result: res})
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()
	tokens, err := h.speller.CheckText(ctx, req.Text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if tokens == nil {
		tokens = []corrector.TokenResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"text":   req.Text,
		"tokens": tokens,
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"vocabulary": h.speller.VocabularySize(),
	})
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	h.log.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.String("request_id", w.Header().Get(requestIDHeader)),
		slog.Any("error", err),
	)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
