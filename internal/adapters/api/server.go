// Package api exposes the survey, heat map, forecast and place use cases over HTTP
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coolassistant.app/internal/core/forecast"
	"coolassistant.app/internal/core/heatmap"
	"coolassistant.app/internal/core/place"
	"coolassistant.app/internal/core/survey"
	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port       int
	StaticDir  string
	UserHeader string
}

// HTTPServerAdapter implements the HTTP server using gin
type HTTPServerAdapter struct {
	router          *gin.Engine
	server          *http.Server
	config          ServerConfig
	surveyUseCase   SurveyUseCase
	heatmapUseCase  HeatmapUseCase
	forecastUseCase ForecastUseCase
	placeUseCase    PlaceUseCase
	healthChecker   ports.SystemHealthChecker
	statsReporter   StatsReporter
}

// Use case interfaces that the HTTP adapter depends on
type SurveyUseCase interface {
	CreateDraft(ctx context.Context) (*survey.Draft, error)
	GetDraft(ctx context.Context, id string) (*survey.Draft, error)
	SelectFeeling(ctx context.Context, id, feeling string) (*survey.Draft, error)
	ToggleIssue(ctx context.Context, id, issue string) (*survey.Draft, error)
	SetLocation(ctx context.Context, id string, lat, lon float64) (*survey.Draft, error)
	SubmitDraft(ctx context.Context, req survey.SubmitDraftRequest) (*survey.SubmitResult, error)
	Submit(ctx context.Context, req survey.SubmitRequest) (*survey.Response, error)
	ListRecent(ctx context.Context, limit int) ([]*survey.Response, error)
	History(ctx context.Context, email string, limit int) ([]*survey.Response, error)
}

type HeatmapUseCase interface {
	Build(ctx context.Context, req heatmap.Request) *heatmap.Heatmap
}

type ForecastUseCase interface {
	AirQuality(ctx context.Context, req forecast.PointRequest) (*forecast.AirQualityReport, error)
	DustOutlook(ctx context.Context, req forecast.PointRequest) (*forecast.DustOutlook, error)
	HeatOutlook(ctx context.Context, req forecast.CityRequest) (*forecast.HeatOutlook, error)
	DailyTip() forecast.Tip
}

type PlaceUseCase interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*place.Label, error)
}

type StatsReporter interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	SurveyUseCase   SurveyUseCase
	HeatmapUseCase  HeatmapUseCase
	ForecastUseCase ForecastUseCase
	PlaceUseCase    PlaceUseCase
	HealthChecker   ports.SystemHealthChecker
	StatsReporter   StatsReporter
	// Gatherer serves /metrics; prometheus.DefaultGatherer when nil
	Gatherer prometheus.Gatherer
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.SurveyUseCase == nil {
		return errors.NewValidationError("survey use case is required")
	}
	if opts.HeatmapUseCase == nil {
		return errors.NewValidationError("heatmap use case is required")
	}
	if opts.ForecastUseCase == nil {
		return errors.NewValidationError("forecast use case is required")
	}
	if opts.PlaceUseCase == nil {
		return errors.NewValidationError("place use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.StatsReporter == nil {
		return errors.NewValidationError("stats reporter is required")
	}
	if opts.Config.UserHeader == "" {
		return errors.NewValidationError("user header name is required")
	}
	return nil
}

func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	s := &HTTPServerAdapter{
		router:          router,
		config:          opts.Config,
		surveyUseCase:   opts.SurveyUseCase,
		heatmapUseCase:  opts.HeatmapUseCase,
		forecastUseCase: opts.ForecastUseCase,
		placeUseCase:    opts.PlaceUseCase,
		healthChecker:   opts.HealthChecker,
		statsReporter:   opts.StatsReporter,
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s.setupRoutes(gatherer)
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		drafts := api.Group("/drafts")
		drafts.POST("", s.createDraft)
		drafts.GET("/:id", s.getDraft)
		drafts.PUT("/:id/feeling", s.selectFeeling)
		drafts.POST("/:id/issues/:issue", s.toggleIssue)
		drafts.PUT("/:id/location", s.setLocation)
		drafts.POST("/:id/submit", s.requireUser(), s.submitDraft)

		api.GET("/responses", s.listRecent)
		api.POST("/responses", s.requireUser(), s.submit)
		api.GET("/responses/me", s.requireUser(), s.history)

		api.GET("/heatmap", s.getHeatmap)

		api.GET("/forecast/air-quality", s.getAirQuality)
		api.GET("/forecast/dust", s.getDustOutlook)
		api.GET("/forecast/heat", s.getHeatOutlook)
		api.GET("/forecast/tip", s.getDailyTip)

		api.GET("/places/reverse", s.reverseGeocode)

		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	s.setupStaticFiles()
}

func (s *HTTPServerAdapter) setupStaticFiles() {
	dir := s.config.StaticDir
	if dir == "" {
		return
	}
	s.router.Static("/static", filepath.Join(dir, "static"))
	s.router.StaticFile("/", filepath.Join(dir, "index.html"))
	s.router.StaticFile(survey.HeatmapPath, filepath.Join(dir, "index.html"))
}

// Start serves HTTP until Shutdown is called
func (s *HTTPServerAdapter) Start() error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
