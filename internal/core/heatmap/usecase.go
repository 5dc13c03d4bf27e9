package heatmap

import (
	"context"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

type UseCase struct {
	repo    ports.SurveyRepository
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.MetricsCollector
}

type UseCaseDependencies struct {
	Repository ports.SurveyRepository
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("survey repository is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &UseCase{
		repo:    deps.Repository,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: metrics,
	}, nil
}

// Build reads recent responses and produces the heat-layer document.
// A failed read is reported inside the document rather than returned.
func (uc *UseCase) Build(ctx context.Context, req Request) *Heatmap {
	cfg := uc.config.GetHeatmapConfig()

	limit := cfg.RowLimit
	if req.Limit > 0 && req.Limit < limit {
		limit = req.Limit
	}
	aggregate := cfg.DailyAggregation
	if req.Aggregate != nil {
		aggregate = *req.Aggregate
	}

	doc := &Heatmap{
		Center:     DefaultCenter,
		Layer:      DefaultLayerOptions(),
		Points:     []Point{},
		Legend:     Legend(),
		Aggregated: aggregate,
	}

	rows, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to load responses for heat map",
			ports.F("limit", limit),
			ports.F("error", err))
		doc.Empty = true
		doc.Error = "Could not load survey responses. Please try again later."
		return doc
	}

	doc.Rows = len(rows)
	if len(rows) == 0 {
		doc.Empty = true
		doc.Message = EmptyMessage
		return doc
	}

	if aggregate {
		doc.Points = AggregateDaily(rows)
	} else {
		doc.Points = ToPoints(rows)
	}

	uc.metrics.RecordHeatmapPoints(ctx, len(doc.Points))
	uc.logger.Debug("Heat map built",
		ports.F("rows", len(rows)),
		ports.F("points", len(doc.Points)))
	return doc
}
