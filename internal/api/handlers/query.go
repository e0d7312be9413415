package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cloo-solutions/finassist/internal/api"
	"github.com/cloo-solutions/finassist/internal/domain"
	"github.com/cloo-solutions/finassist/internal/service"
)

// ResolveService is the pipeline entry point consumed by the HTTP surface.
type ResolveService interface {
	Resolve(ctx context.Context, query string) (domain.Answer, error)
}

// StatsProvider reports tier sizes for the status endpoint.
type StatsProvider interface {
	Stats() service.Stats
}

type QueryHandler struct {
	svc   ResolveService
	stats StatsProvider
}

func NewQueryHandler(svc ResolveService, stats StatsProvider) *QueryHandler {
	return &QueryHandler{svc: svc, stats: stats}
}

type ResolveRequest struct {
	Query string `json:"query"`
}

// Resolve handles POST /resolve. Every well-formed request receives a
// complete Answer; the pipeline never surfaces tier faults to the caller.
func (h *QueryHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		api.HandleError(w, domain.ErrEmptyQuery)
		return
	}

	answer, err := h.svc.Resolve(r.Context(), req.Query)
	if err != nil {
		// Only pool shutdown or caller cancellation reach here.
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, answer)
}

// Status handles GET /status.
func (h *QueryHandler) Status(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, h.stats.Stats())
}
