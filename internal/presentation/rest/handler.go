package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
)

// The handler depends on the use cases through minimal interfaces so tests
// can stub them without a database or a model artifact.

type incomeEstimator interface {
	Execute(ctx context.Context, clientID int64, requestID, source string) (dto.IncomeEstimateResponse, error)
}

type predictionExplainer interface {
	Execute(ctx context.Context, clientID int64) (dto.ExplanationResponse, error)
}

type productRecommender interface {
	Execute(ctx context.Context, clientID int64) ([]dto.RecommendationResponse, error)
}

type profileReader interface {
	Execute(ctx context.Context, clientID int64) (dto.ClientProfileResponse, error)
}

type metricsReader interface {
	Execute(ctx context.Context) (dto.ModelMetricsResponse, error)
}

type incomeBackfiller interface {
	Execute(ctx context.Context, clientID int64, actual float64) (dto.BackfillResponse, error)
}

// Handler exposes the scoring API over REST.
type Handler struct {
	estimate  incomeEstimator
	explain   predictionExplainer
	recommend productRecommender
	profile   profileReader
	metrics   metricsReader
	backfill  incomeBackfiller
	logger    *slog.Logger
}

// NewHandler creates the REST handler over the scoring use cases.
func NewHandler(
	estimate incomeEstimator,
	explain predictionExplainer,
	recommend productRecommender,
	profile profileReader,
	metrics metricsReader,
	backfill incomeBackfiller,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		estimate:  estimate,
		explain:   explain,
		recommend: recommend,
		profile:   profile,
		metrics:   metrics,
		backfill:  backfill,
		logger:    logger,
	}
}

// RegisterRoutes registers the scoring API routes on the provided ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/clients/{id}", h.GetClient)
	mux.HandleFunc("GET /api/v1/clients/{id}/income", h.GetIncome)
	mux.HandleFunc("GET /api/v1/clients/{id}/explanation", h.GetExplanation)
	mux.HandleFunc("GET /api/v1/clients/{id}/recommendations", h.GetRecommendations)
	mux.HandleFunc("POST /api/v1/clients/{id}/actual-income", h.PostActualIncome)
	mux.HandleFunc("GET /api/v1/metrics/model", h.GetModelMetrics)
}

// GetClient returns the client profile.
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r)
	if !ok {
		return
	}
	resp, err := h.profile.Execute(r.Context(), clientID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetIncome returns the bounded income estimate.
func (h *Handler) GetIncome(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r)
	if !ok {
		return
	}

	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	source := r.URL.Query().Get("source")
	if source == "" {
		source = "dashboard"
	}

	resp, err := h.estimate.Execute(r.Context(), clientID, requestID, source)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetExplanation returns the per-feature attribution bundle.
func (h *Handler) GetExplanation(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r)
	if !ok {
		return
	}
	resp, err := h.explain.Execute(r.Context(), clientID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetRecommendations returns the rule-based product offers.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r)
	if !ok {
		return
	}
	resp, err := h.recommend.Execute(r.Context(), clientID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// actualIncomeRequest is the backfill request body.
type actualIncomeRequest struct {
	ActualIncome float64 `json:"actual_income"`
}

// PostActualIncome records the observed income against logged predictions.
func (h *Handler) PostActualIncome(w http.ResponseWriter, r *http.Request) {
	clientID, ok := h.clientID(w, r)
	if !ok {
		return
	}

	var req actualIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ActualIncome < 0 {
		writeErrorJSON(w, http.StatusBadRequest, "actual_income must be non-negative")
		return
	}

	resp, err := h.backfill.Execute(r.Context(), clientID, req.ActualIncome)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetModelMetrics returns the model monitoring view.
func (h *Handler) GetModelMetrics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.metrics.Execute(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// clientID parses the path's client id; a non-numeric id is a 400, never a
// repository round trip.
func (h *Handler) clientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "client id must be an integer")
		return 0, false
	}
	return id, true
}

// writeError maps domain errors onto HTTP statuses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrClientNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrSchemaMismatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrModelUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, model.ErrMetricsUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, model.ErrPredictionFailed):
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}
	writeErrorJSON(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
