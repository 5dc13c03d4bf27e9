package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coolassistant.app/internal/core/forecast"
	"coolassistant.app/internal/core/heatmap"
	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const healthCheckTimeout = 5 * time.Second

type pointQuery struct {
	Latitude  *float64 `form:"lat" binding:"omitempty,latitude"`
	Longitude *float64 `form:"lon" binding:"omitempty,longitude"`
}

// point returns nil when neither coordinate is given
func (q pointQuery) point() (*forecast.Coordinates, error) {
	if q.Latitude == nil && q.Longitude == nil {
		return nil, nil
	}
	if q.Latitude == nil || q.Longitude == nil {
		return nil, errors.NewValidationError("lat and lon must be given together")
	}
	return &forecast.Coordinates{Latitude: *q.Latitude, Longitude: *q.Longitude}, nil
}

// GET /api/heatmap
func (s *HTTPServerAdapter) getHeatmap(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		s.handleError(c, err)
		return
	}

	req := heatmap.Request{Limit: limit}
	switch c.Query("aggregate") {
	case "":
	case "daily":
		on := true
		req.Aggregate = &on
	case "none":
		off := false
		req.Aggregate = &off
	default:
		s.handleError(c, errors.NewValidationError("aggregate must be daily or none"))
		return
	}

	c.JSON(http.StatusOK, s.heatmapUseCase.Build(c.Request.Context(), req))
}

func (s *HTTPServerAdapter) pointRequest(c *gin.Context) (forecast.PointRequest, bool) {
	var q pointQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, bindError(err))
		return forecast.PointRequest{}, false
	}
	point, err := q.point()
	if err != nil {
		s.handleError(c, err)
		return forecast.PointRequest{}, false
	}
	return forecast.PointRequest{Point: point}, true
}

// GET /api/forecast/air-quality
func (s *HTTPServerAdapter) getAirQuality(c *gin.Context) {
	req, ok := s.pointRequest(c)
	if !ok {
		return
	}

	report, err := s.forecastUseCase.AirQuality(c.Request.Context(), req)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/forecast/dust
func (s *HTTPServerAdapter) getDustOutlook(c *gin.Context) {
	req, ok := s.pointRequest(c)
	if !ok {
		return
	}

	outlook, err := s.forecastUseCase.DustOutlook(c.Request.Context(), req)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, outlook)
}

// GET /api/forecast/heat
func (s *HTTPServerAdapter) getHeatOutlook(c *gin.Context) {
	outlook, err := s.forecastUseCase.HeatOutlook(c.Request.Context(), forecast.CityRequest{City: c.Query("city")})
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, outlook)
}

// GET /api/forecast/tip
func (s *HTTPServerAdapter) getDailyTip(c *gin.Context) {
	c.JSON(http.StatusOK, s.forecastUseCase.DailyTip())
}

// GET /api/places/reverse
func (s *HTTPServerAdapter) reverseGeocode(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		s.handleError(c, errors.NewValidationError("lat and lon query parameters are required"))
		return
	}

	label, err := s.placeUseCase.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, label)
}

// GET /api/health
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	results := s.healthChecker.CheckAll(ctx)
	status := ports.OverallHealth(results)

	code := http.StatusOK
	if status == ports.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":     status,
		"timestamp":  time.Now().UTC(),
		"components": results,
	})
}

// GET /api/metrics
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.statsReporter.GetMetrics(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
