package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/legenre/internal/domain"
	"github.com/heartmarshall/legenre/internal/service/lookup"
)

// lookupService defines the minimal interface needed by LookupHandler.
type lookupService interface {
	Lookup(ctx context.Context, word string) (*lookup.Result, error)
	Random(ctx context.Context) (*lookup.RandomResult, error)
}

// LookupHandler serves the gender lookup API.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

type lookupResponse struct {
	Word    string                `json:"word"`
	Found   bool                  `json:"found"`
	Source  string                `json:"source,omitempty"`
	Results []domain.LexicalEntry `json:"results"`
}

type randomResponse struct {
	Word    string                `json:"word"`
	Found   bool                  `json:"found"`
	Results []domain.LexicalEntry `json:"results"`
}

// Lookup handles GET /api/lookup?word=<w>. Every resolution outcome,
// including not-found, is a 200.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")

	res, err := h.svc.Lookup(r.Context(), word)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Word:    res.Word,
		Found:   res.Found,
		Source:  string(res.Source),
		Results: nonNil(res.Entries),
	})
}

// Random handles GET /api/random.
func (h *LookupHandler) Random(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Random(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, randomResponse{
		Word:    res.Word,
		Found:   true,
		Results: nonNil(res.Entries),
	})
}

func (h *LookupHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "word parameter is required")
	case errors.Is(err, domain.ErrIndexEmpty):
		writeError(w, http.StatusServiceUnavailable, "no words available")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func nonNil(entries []domain.LexicalEntry) []domain.LexicalEntry {
	if entries == nil {
		return []domain.LexicalEntry{}
	}
	return entries
}
