package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/dto"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/model"
	"github.com/Woolfer0097/AlfaHackathon/internal/presentation/rest"
)

// --- Stub use cases ---

type stubEstimator struct {
	resp dto.IncomeEstimateResponse
	err  error

	gotRequestID string
	gotSource    string
}

func (s *stubEstimator) Execute(_ context.Context, _ int64, requestID, source string) (dto.IncomeEstimateResponse, error) {
	s.gotRequestID = requestID
	s.gotSource = source
	return s.resp, s.err
}

type stubExplainer struct {
	resp dto.ExplanationResponse
	err  error
}

func (s *stubExplainer) Execute(context.Context, int64) (dto.ExplanationResponse, error) {
	return s.resp, s.err
}

type stubRecommender struct {
	resp []dto.RecommendationResponse
	err  error
}

func (s *stubRecommender) Execute(context.Context, int64) ([]dto.RecommendationResponse, error) {
	return s.resp, s.err
}

type stubProfileReader struct {
	resp dto.ClientProfileResponse
	err  error
}

func (s *stubProfileReader) Execute(context.Context, int64) (dto.ClientProfileResponse, error) {
	return s.resp, s.err
}

type stubMetricsReader struct {
	resp dto.ModelMetricsResponse
	err  error
}

func (s *stubMetricsReader) Execute(context.Context) (dto.ModelMetricsResponse, error) {
	return s.resp, s.err
}

type stubBackfiller struct {
	resp      dto.BackfillResponse
	err       error
	gotActual float64
}

func (s *stubBackfiller) Execute(_ context.Context, _ int64, actual float64) (dto.BackfillResponse, error) {
	s.gotActual = actual
	return s.resp, s.err
}

type stubs struct {
	estimate  *stubEstimator
	explain   *stubExplainer
	recommend *stubRecommender
	profile   *stubProfileReader
	metrics   *stubMetricsReader
	backfill  *stubBackfiller
}

func newServer(t *testing.T, s stubs) *httptest.Server {
	t.Helper()
	if s.estimate == nil {
		s.estimate = &stubEstimator{}
	}
	if s.explain == nil {
		s.explain = &stubExplainer{}
	}
	if s.recommend == nil {
		s.recommend = &stubRecommender{}
	}
	if s.profile == nil {
		s.profile = &stubProfileReader{}
	}
	if s.metrics == nil {
		s.metrics = &stubMetricsReader{}
	}
	if s.backfill == nil {
		s.backfill = &stubBackfiller{}
	}

	handler := rest.NewHandler(
		s.estimate, s.explain, s.recommend, s.profile, s.metrics, s.backfill,
		slog.New(slog.DiscardHandler),
	)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// --- Tests ---

func TestGetIncome(t *testing.T) {
	estimate := &stubEstimator{resp: dto.IncomeEstimateResponse{
		PredictedIncome: 98_500,
		LowerBound:      78_800,
		UpperBound:      118_200,
		ModelVersion:    "2025-06-01",
	}}
	srv := newServer(t, stubs{estimate: estimate})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/clients/42/income?source=crm", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body dto.IncomeEstimateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 98_500.0, body.PredictedIncome)
	assert.Equal(t, "2025-06-01", body.ModelVersion)

	assert.Equal(t, "req-1", estimate.gotRequestID)
	assert.Equal(t, "crm", estimate.gotSource)
}

func TestGetIncomeDefaultsRequestMetadata(t *testing.T) {
	estimate := &stubEstimator{}
	srv := newServer(t, stubs{estimate: estimate})

	resp, err := http.Get(srv.URL + "/api/v1/clients/42/income")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, estimate.gotRequestID)
	assert.Equal(t, "dashboard", estimate.gotSource)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown client", fmt.Errorf("%w: client 42", model.ErrClientNotFound), http.StatusNotFound},
		{"schema mismatch", fmt.Errorf("%w: row lacks features", model.ErrSchemaMismatch), http.StatusUnprocessableEntity},
		{"model unavailable", fmt.Errorf("%w: artifact not loaded", model.ErrModelUnavailable), http.StatusServiceUnavailable},
		{"prediction failed", fmt.Errorf("%w: bad vector", model.ErrPredictionFailed), http.StatusInternalServerError},
		{"unexpected", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, stubs{estimate: &stubEstimator{err: tt.err}})

			resp, err := http.Get(srv.URL + "/api/v1/clients/42/income")
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestNonNumericClientID(t *testing.T) {
	srv := newServer(t, stubs{})

	resp, err := http.Get(srv.URL + "/api/v1/clients/abc/income")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetExplanation(t *testing.T) {
	explain := &stubExplainer{resp: dto.ExplanationResponse{
		TextExplanation: "The strongest factors behind this income estimate: income increased the estimate.",
		BaseValue:       11.0,
		Features: []dto.FeatureAttributionResponse{
			{FeatureName: "incomeValue", Value: "120000", Contribution: 0.3, Direction: "positive", HasDescription: false},
		},
	}}
	srv := newServer(t, stubs{explain: explain})

	resp, err := http.Get(srv.URL + "/api/v1/clients/42/explanation")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ExplanationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Features, 1)
	assert.Equal(t, "incomeValue", body.Features[0].FeatureName)
}

func TestGetRecommendationsEmptyIsOK(t *testing.T) {
	srv := newServer(t, stubs{recommend: &stubRecommender{resp: []dto.RecommendationResponse{}}})

	resp, err := http.Get(srv.URL + "/api/v1/clients/42/recommendations")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []dto.RecommendationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body)
}

func TestGetClientProfileRoute(t *testing.T) {
	srv := newServer(t, stubs{profile: &stubProfileReader{resp: dto.ClientProfileResponse{
		ID:      42,
		Segment: "Premium",
	}}})

	resp, err := http.Get(srv.URL + "/api/v1/clients/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ClientProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "Premium", body.Segment)
}

func TestGetModelMetricsRoute(t *testing.T) {
	srv := newServer(t, stubs{metrics: &stubMetricsReader{resp: dto.ModelMetricsResponse{
		WMAEValidation:   0.2134,
		PredictionsCount: 1234,
	}}})

	resp, err := http.Get(srv.URL + "/api/v1/metrics/model")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ModelMetricsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0.2134, body.WMAEValidation)
}

func TestGetModelMetricsUnavailable(t *testing.T) {
	srv := newServer(t, stubs{metrics: &stubMetricsReader{
		err: fmt.Errorf("%w: file missing", model.ErrMetricsUnavailable),
	}})

	resp, err := http.Get(srv.URL + "/api/v1/metrics/model")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestPostActualIncome(t *testing.T) {
	backfill := &stubBackfiller{resp: dto.BackfillResponse{ClientID: 42, RowsUpdated: 3}}
	srv := newServer(t, stubs{backfill: backfill})

	resp, err := http.Post(
		srv.URL+"/api/v1/clients/42/actual-income",
		"application/json",
		strings.NewReader(`{"actual_income": 105000}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 105_000.0, backfill.gotActual)

	var body dto.BackfillResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.RowsUpdated)
}

func TestPostActualIncomeRejectsBadBody(t *testing.T) {
	srv := newServer(t, stubs{})

	resp, err := http.Post(srv.URL+"/api/v1/clients/42/actual-income", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/v1/clients/42/actual-income", "application/json", strings.NewReader(`{"actual_income": -5}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
