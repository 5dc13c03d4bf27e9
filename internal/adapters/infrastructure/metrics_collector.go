package infrastructure

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"coolassistant.app/internal/ports"
)

// PrometheusMetricsAdapter implements the MetricsCollector port with
// Prometheus counters registered on the given registerer
type PrometheusMetricsAdapter struct {
	cacheLookups  *prometheus.CounterVec
	providerCalls *prometheus.CounterVec
	submissions   *prometheus.CounterVec
	cleanupRuns   *prometheus.CounterVec
	deletedRows   prometheus.Counter
	heatmapPoints prometheus.Histogram
}

func NewPrometheusMetricsAdapter(reg prometheus.Registerer) (*PrometheusMetricsAdapter, error) {
	m := &PrometheusMetricsAdapter{
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coolassistant_cache_lookups_total",
			Help: "Cache lookups by cache name and result.",
		}, []string{"cache", "result"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coolassistant_provider_calls_total",
			Help: "Third-party provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coolassistant_survey_submissions_total",
			Help: "Survey submissions by outcome.",
		}, []string{"outcome"}),
		cleanupRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coolassistant_dedup_runs_total",
			Help: "Duplicate cleanup passes by outcome.",
		}, []string{"outcome"}),
		deletedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coolassistant_dedup_deleted_rows_total",
			Help: "Survey rows removed by duplicate cleanup.",
		}),
		heatmapPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "coolassistant_heatmap_points",
			Help:    "Number of points in served heat maps.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		}),
	}

	for _, c := range []prometheus.Collector{
		m.cacheLookups, m.providerCalls, m.submissions, m.cleanupRuns, m.deletedRows, m.heatmapPoints,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func (m *PrometheusMetricsAdapter) RecordCacheHit(_ context.Context, cache string) {
	m.cacheLookups.WithLabelValues(cache, "hit").Inc()
}

func (m *PrometheusMetricsAdapter) RecordCacheMiss(_ context.Context, cache string) {
	m.cacheLookups.WithLabelValues(cache, "miss").Inc()
}

func (m *PrometheusMetricsAdapter) RecordProviderCall(_ context.Context, provider string, success bool) {
	m.providerCalls.WithLabelValues(provider, outcome(success)).Inc()
}

func (m *PrometheusMetricsAdapter) RecordSubmission(_ context.Context, result string) {
	m.submissions.WithLabelValues(result).Inc()
}

func (m *PrometheusMetricsAdapter) RecordCleanupRun(_ context.Context, deleted int64, success bool) {
	m.cleanupRuns.WithLabelValues(outcome(success)).Inc()
	if deleted > 0 {
		m.deletedRows.Add(float64(deleted))
	}
}

func (m *PrometheusMetricsAdapter) RecordHeatmapPoints(_ context.Context, points int) {
	m.heatmapPoints.Observe(float64(points))
}

var _ ports.MetricsCollector = (*PrometheusMetricsAdapter)(nil)

// StatsReporter builds the JSON view served on /api/metrics
type StatsReporter struct {
	cacheMetrics ports.CacheMetrics
	airQuality   ports.AirQualityProviderManager
	surveys      ports.SurveyRepository
}

type StatsReporterConfig struct {
	CacheMetrics ports.CacheMetrics
	AirQuality   ports.AirQualityProviderManager
	Surveys      ports.SurveyRepository
}

func NewStatsReporter(cfg StatsReporterConfig) *StatsReporter {
	return &StatsReporter{
		cacheMetrics: cfg.CacheMetrics,
		airQuality:   cfg.AirQuality,
		surveys:      cfg.Surveys,
	}
}

// GetMetrics returns cache statistics, provider chain details and the stored response count
func (s *StatsReporter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if s.cacheMetrics != nil {
		out["cache"] = s.cacheMetrics.GetStats()
	}
	if s.airQuality != nil {
		out["air_quality_providers"] = s.airQuality.GetProviderInfo()
	}
	if s.surveys != nil {
		count, err := s.surveys.Count(ctx)
		if err != nil {
			return nil, err
		}
		out["survey_responses"] = count
	}
	return out, nil
}
