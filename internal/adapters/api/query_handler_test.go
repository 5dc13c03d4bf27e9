package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coolassistant.app/internal/core/forecast"
	"coolassistant.app/internal/core/heatmap"
	"coolassistant.app/internal/core/place"
	"coolassistant.app/internal/mocks"
	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

func setupHeatmapTestRouter(t *testing.T) (*gin.Engine, *mocks.SurveyRepository) {
	repo := mocks.NewSurveyRepository(t)
	config := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)
	allowLogging(logger)
	config.EXPECT().GetHeatmapConfig().Return(ports.HeatmapConfig{RowLimit: 1000}).Maybe()

	uc, err := heatmap.NewUseCase(heatmap.UseCaseDependencies{
		Repository: repo,
		Config:     config,
		Logger:     logger,
	})
	require.NoError(t, err)

	return newTestServer(t, &HTTPServerAdapter{heatmapUseCase: uc}), repo
}

func TestHeatmapHandler(t *testing.T) {
	rows := []*ports.SurveyResponseData{
		{ID: 1, Timestamp: testNow, UserEmail: "a@example.com", Feeling: "bad", Latitude: 36.19, Longitude: 44.01},
		{ID: 2, Timestamp: testNow.Add(-time.Hour), UserEmail: "a@example.com", Feeling: "good", Latitude: 36.21, Longitude: 44.03},
	}

	t.Run("RawPoints", func(t *testing.T) {
		router, repo := setupHeatmapTestRouter(t)
		repo.EXPECT().ListRecent(mock.Anything, 10).Return(rows, nil)

		w := doJSON(router, http.MethodGet, "/api/heatmap?limit=10&aggregate=none", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var doc heatmap.Heatmap
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Len(t, doc.Points, 2)
		assert.False(t, doc.Aggregated)
		assert.Equal(t, 2, doc.Rows)
	})

	t.Run("DailyAggregate", func(t *testing.T) {
		router, repo := setupHeatmapTestRouter(t)
		repo.EXPECT().ListRecent(mock.Anything, 1000).Return(rows, nil)

		w := doJSON(router, http.MethodGet, "/api/heatmap?aggregate=daily", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var doc heatmap.Heatmap
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Len(t, doc.Points, 1)
		assert.True(t, doc.Aggregated)
	})

	t.Run("ReadFailureStillRenders", func(t *testing.T) {
		router, repo := setupHeatmapTestRouter(t)
		repo.EXPECT().ListRecent(mock.Anything, 1000).Return(nil, errors.NewDatabaseError("boom", nil))

		w := doJSON(router, http.MethodGet, "/api/heatmap", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var doc heatmap.Heatmap
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.True(t, doc.Empty)
		assert.NotEmpty(t, doc.Error)
		assert.Empty(t, doc.Points)
	})

	t.Run("BadAggregate", func(t *testing.T) {
		router, _ := setupHeatmapTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/heatmap?aggregate=weekly", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type forecastTestDeps struct {
	airQuality *mocks.AirQualityProviderManager
	forecasts  *mocks.ForecastProvider
	cache      *mocks.JSONCache
}

func setupForecastTestRouter(t *testing.T) (*gin.Engine, forecastTestDeps) {
	deps := forecastTestDeps{
		airQuality: mocks.NewAirQualityProviderManager(t),
		forecasts:  mocks.NewForecastProvider(t),
		cache:      mocks.NewJSONCache(t),
	}
	config := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)
	allowLogging(logger)
	config.EXPECT().GetForecastConfig().Return(ports.ForecastConfig{
		CacheTTL:         10 * time.Minute,
		DefaultCity:      "Erbil,IQ",
		DefaultLatitude:  36.206,
		DefaultLongitude: 44.009,
	}).Maybe()
	deps.forecasts.EXPECT().GetProviderName().Return("openweathermap").Maybe()
	deps.cache.EXPECT().SetJSON(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	uc, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		AirQuality: deps.airQuality,
		Forecasts:  deps.forecasts,
		Cache:      deps.cache,
		Config:     config,
		Logger:     logger,
		Clock:      clockwork.NewFakeClockAt(testNow),
	})
	require.NoError(t, err)

	return newTestServer(t, &HTTPServerAdapter{forecastUseCase: uc}), deps
}

func TestForecastHandler_DailyTip(t *testing.T) {
	router, _ := setupForecastTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/forecast/tip", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var tip forecast.Tip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tip))
	assert.Equal(t, forecast.TipFor(testNow), tip)
	assert.Equal(t, "2025-07-01", tip.Date)
}

func cacheMiss() error { return errors.NewNotFoundError("cache miss") }

func TestForecastHandler_AirQuality(t *testing.T) {
	t.Run("AtPoint", func(t *testing.T) {
		router, deps := setupForecastTestRouter(t)
		deps.cache.EXPECT().GetJSON(mock.Anything, "forecast:air-quality:35.5600:45.4300", mock.Anything).Return(cacheMiss())
		deps.airQuality.EXPECT().GetAirQuality(mock.Anything, 35.56, 45.43).Return(&ports.AirQualityData{
			PM10:     floatPtr(220),
			Provider: "openweathermap",
		}, nil)

		w := doJSON(router, http.MethodGet, "/api/forecast/air-quality?lat=35.56&lon=45.43", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var report forecast.AirQualityReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, "openweathermap", report.Provider)
		assert.Equal(t, "No data", report.Readings[0].Level.Label)
	})

	t.Run("DefaultPoint", func(t *testing.T) {
		router, deps := setupForecastTestRouter(t)
		deps.cache.EXPECT().GetJSON(mock.Anything, "forecast:air-quality:36.2060:44.0090", mock.Anything).Return(cacheMiss())
		deps.airQuality.EXPECT().GetAirQuality(mock.Anything, 36.206, 44.009).Return(&ports.AirQualityData{Provider: "openmeteo"}, nil)

		w := doJSON(router, http.MethodGet, "/api/forecast/air-quality", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("HalfAPoint", func(t *testing.T) {
		router, _ := setupForecastTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/forecast/air-quality?lat=35.56", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("AllProvidersDown", func(t *testing.T) {
		router, deps := setupForecastTestRouter(t)
		deps.cache.EXPECT().GetJSON(mock.Anything, mock.Anything, mock.Anything).Return(cacheMiss())
		deps.airQuality.EXPECT().GetAirQuality(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("all air quality providers failed (tried 2): %w", errors.NewExternalAPIError("timeout", nil)))

		w := doJSON(router, http.MethodGet, "/api/forecast/air-quality", nil, "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestForecastHandler_Outlooks(t *testing.T) {
	t.Run("Dust", func(t *testing.T) {
		router, deps := setupForecastTestRouter(t)
		deps.cache.EXPECT().GetJSON(mock.Anything, mock.Anything, mock.Anything).Return(cacheMiss())
		deps.forecasts.EXPECT().GetPollutionForecast(mock.Anything, 36.206, 44.009).Return([]ports.PollutionSample{
			{Time: testNow, PM10: 120},
			{Time: testNow.Add(3 * time.Hour), PM10: 260},
		}, nil)

		w := doJSON(router, http.MethodGet, "/api/forecast/dust", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var outlook forecast.DustOutlook
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outlook))
		require.Len(t, outlook.Days, 1)
		assert.Equal(t, 260.0, outlook.Days[0].Value)
		assert.Equal(t, "High", outlook.Days[0].Level.Label)
	})

	t.Run("HeatUnknownCity", func(t *testing.T) {
		router, deps := setupForecastTestRouter(t)
		deps.cache.EXPECT().GetJSON(mock.Anything, "forecast:heat:atlantis", mock.Anything).Return(cacheMiss())
		deps.forecasts.EXPECT().GetTemperatureForecast(mock.Anything, "Atlantis").
			Return(nil, errors.NewNotFoundError("city not found: Atlantis"))

		w := doJSON(router, http.MethodGet, "/api/forecast/heat?city=Atlantis", nil, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "city not found: Atlantis", decodeError(t, w).Error)
	})
}

func setupPlaceTestRouter(t *testing.T) (*gin.Engine, *mocks.Geocoder, *mocks.JSONCache) {
	geocoder := mocks.NewGeocoder(t)
	cache := mocks.NewJSONCache(t)
	config := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)
	allowLogging(logger)
	config.EXPECT().GetPlaceConfig().Return(ports.PlaceConfig{CacheTTL: 24 * time.Hour}).Maybe()

	uc, err := place.NewUseCase(place.UseCaseDependencies{
		Geocoder: geocoder,
		Cache:    cache,
		Config:   config,
		Logger:   logger,
	})
	require.NoError(t, err)

	return newTestServer(t, &HTTPServerAdapter{placeUseCase: uc}), geocoder, cache
}

func TestPlaceHandler_ReverseGeocode(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, geocoder, cache := setupPlaceTestRouter(t)
		cache.EXPECT().GetJSON(mock.Anything, "place:36.1912:44.0094", mock.Anything).Return(cacheMiss())
		geocoder.EXPECT().ReverseGeocode(mock.Anything, 36.1912, 44.0094).Return(&ports.PlaceData{
			DisplayName: "Erbil, Erbil Governorate, Iraq",
			City:        "Erbil",
			Country:     "Iraq",
		}, nil)
		cache.EXPECT().SetJSON(mock.Anything, "place:36.1912:44.0094", mock.Anything, 24*time.Hour).Return(nil)

		w := doJSON(router, http.MethodGet, "/api/places/reverse?lat=36.19123&lon=44.00937", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var label place.Label
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &label))
		assert.Equal(t, "Erbil", label.City)
	})

	t.Run("MissingCoordinates", func(t *testing.T) {
		router, _, _ := setupPlaceTestRouter(t)

		w := doJSON(router, http.MethodGet, "/api/places/reverse?lat=36.19", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type stubHealthChecker map[string]ports.HealthStatus

func (s stubHealthChecker) CheckAll(context.Context) map[string]ports.HealthStatus {
	return s
}

type stubStatsReporter struct {
	metrics map[string]interface{}
	err     error
}

func (s stubStatsReporter) GetMetrics(context.Context) (map[string]interface{}, error) {
	return s.metrics, s.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		results        stubHealthChecker
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Healthy",
			results: stubHealthChecker{
				"database": {Component: "database", Status: "healthy"},
				"cache":    {Component: "cache", Status: "healthy"},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "healthy",
		},
		{
			name: "Degraded",
			results: stubHealthChecker{
				"database":  {Component: "database", Status: "healthy"},
				"providers": {Component: "providers", Status: "degraded"},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "degraded",
		},
		{
			name: "Unhealthy",
			results: stubHealthChecker{
				"database":  {Component: "database", Status: "unhealthy", Error: "connection refused"},
				"providers": {Component: "providers", Status: "degraded"},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestServer(t, &HTTPServerAdapter{healthChecker: tt.results})

			w := doJSON(router, http.MethodGet, "/api/health", nil, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp["status"])
			assert.Len(t, resp["components"], len(tt.results))
		})
	}
}

func TestMetricsHandlers(t *testing.T) {
	router := newTestServer(t, &HTTPServerAdapter{statsReporter: stubStatsReporter{
		metrics: map[string]interface{}{"survey_responses": 12},
	}})

	w := doJSON(router, http.MethodGet, "/api/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"survey_responses":12}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	failing := newTestServer(t, &HTTPServerAdapter{statsReporter: stubStatsReporter{
		err: errors.NewDatabaseError("failed to count survey responses", nil),
	}})
	w = doJSON(failing, http.MethodGet, "/api/metrics", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "survey use case is required")
}
