package heatmap

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mocks "coolassistant.app/internal/mocks"
	"coolassistant.app/internal/ports"
)

func TestWeightOf(t *testing.T) {
	assert.Equal(t, 1.0, WeightOf("good"))
	assert.Equal(t, 0.66, WeightOf("neutral"))
	assert.Equal(t, 0.33, WeightOf("uncomfortable"))
	assert.Equal(t, 0.0, WeightOf("bad"))
	assert.Equal(t, 1.0, WeightOf("😃"))
	assert.Equal(t, DefaultWeight, WeightOf("sleepy"))
	assert.Equal(t, DefaultWeight, WeightOf(""))
}

func TestWeightOf_MonotonicWithComfort(t *testing.T) {
	for i := 1; i < len(weightTable); i++ {
		assert.Greater(t, weightTable[i-1].Weight, weightTable[i].Weight,
			"%s should weigh more than %s", weightTable[i-1].Feeling, weightTable[i].Feeling)
	}
}

func TestLegend(t *testing.T) {
	legend := Legend()
	require.Len(t, legend, 4)
	assert.Equal(t, LegendEntry{Feeling: "good", Emoji: "😃", Label: "Good", Color: "green"}, legend[0])
	assert.Equal(t, "red", legend[3].Color)
}

func TestAggregateDaily(t *testing.T) {
	day := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	rows := []*ports.SurveyResponseData{
		{UserEmail: "a@example.com", Timestamp: day.Add(5 * time.Hour), Latitude: 36.0, Longitude: 44.0, Feeling: "good"},
		{UserEmail: "a@example.com", Timestamp: day, Latitude: 37.0, Longitude: 45.0, Feeling: "bad"},
		{UserEmail: "a@example.com", Timestamp: day.Add(24 * time.Hour), Latitude: 30.0, Longitude: 40.0, Feeling: "neutral"},
		{UserEmail: "b@example.com", Timestamp: day, Latitude: 10.0, Longitude: 20.0, Feeling: "uncomfortable"},
	}

	points := AggregateDaily(rows)

	require.Len(t, points, 3)
	assert.InDelta(t, 36.5, points[0][0], 1e-9)
	assert.InDelta(t, 44.5, points[0][1], 1e-9)
	assert.InDelta(t, 0.5, points[0][2], 1e-9)
	assert.Equal(t, Point{30.0, 40.0, 0.66}, points[1])
	assert.Equal(t, Point{10.0, 20.0, 0.33}, points[2])
}

func TestToPoints(t *testing.T) {
	rows := []*ports.SurveyResponseData{
		{Latitude: 36.19, Longitude: 44.01, Feeling: "good"},
		{Latitude: 36.20, Longitude: 44.02, Feeling: "unknown"},
	}

	assert.Equal(t, []Point{{36.19, 44.01, 1.0}, {36.20, 44.02, 0.5}}, ToPoints(rows))
}

func allowLogging(l *mocks.Logger) {
	for n := 0; n <= 3; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func newTestUseCase(t *testing.T, cfg ports.HeatmapConfig) (*UseCase, *mocks.SurveyRepository) {
	repo := mocks.NewSurveyRepository(t)
	config := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)
	allowLogging(logger)
	config.EXPECT().GetHeatmapConfig().Return(cfg)

	uc, err := NewUseCase(UseCaseDependencies{Repository: repo, Config: config, Logger: logger})
	require.NoError(t, err)
	return uc, repo
}

func TestUseCase_Build_Empty(t *testing.T) {
	uc, repo := newTestUseCase(t, ports.HeatmapConfig{RowLimit: 1000, DailyAggregation: true})
	repo.EXPECT().ListRecent(mock.Anything, 1000).Return([]*ports.SurveyResponseData{}, nil)

	doc := uc.Build(context.Background(), Request{})

	assert.True(t, doc.Empty)
	assert.Equal(t, EmptyMessage, doc.Message)
	assert.Empty(t, doc.Points)
	assert.Len(t, doc.Legend, 4)
	assert.Empty(t, doc.Error)
}

func TestUseCase_Build_FetchErrorIsInline(t *testing.T) {
	uc, repo := newTestUseCase(t, ports.HeatmapConfig{RowLimit: 1000})
	repo.EXPECT().ListRecent(mock.Anything, 1000).Return(nil, fmt.Errorf("connection reset"))

	doc := uc.Build(context.Background(), Request{})

	assert.NotEmpty(t, doc.Error)
	assert.NotContains(t, doc.Error, "connection reset")
	assert.Len(t, doc.Legend, 4)
	assert.NotNil(t, doc.Points)
}

func TestUseCase_Build_RequestOverrides(t *testing.T) {
	uc, repo := newTestUseCase(t, ports.HeatmapConfig{RowLimit: 1000, DailyAggregation: true})
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	repo.EXPECT().ListRecent(mock.Anything, 50).Return([]*ports.SurveyResponseData{
		{UserEmail: "a@example.com", Timestamp: now, Latitude: 36.0, Longitude: 44.0, Feeling: "good"},
		{UserEmail: "a@example.com", Timestamp: now, Latitude: 36.0, Longitude: 44.0, Feeling: "bad"},
	}, nil)

	off := false
	doc := uc.Build(context.Background(), Request{Limit: 50, Aggregate: &off})

	assert.False(t, doc.Aggregated)
	assert.Equal(t, 2, doc.Rows)
	assert.Len(t, doc.Points, 2)
}

func TestUseCase_Build_LimitCannotExceedConfig(t *testing.T) {
	uc, repo := newTestUseCase(t, ports.HeatmapConfig{RowLimit: 100})
	repo.EXPECT().ListRecent(mock.Anything, 100).Return([]*ports.SurveyResponseData{}, nil)

	uc.Build(context.Background(), Request{Limit: 5000})
}

func TestHeatmap_JSONShape(t *testing.T) {
	doc := Heatmap{
		Center: DefaultCenter,
		Layer:  DefaultLayerOptions(),
		Points: []Point{{36.19, 44.01, 1}},
		Legend: Legend(),
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []interface{}{[]interface{}{36.19, 44.01, 1.0}}, decoded["points"])
	layer := decoded["layer"].(map[string]interface{})
	assert.Equal(t, 35.0, layer["radius"])
	assert.Equal(t, "green", layer["gradient"].(map[string]interface{})["1"])
	assert.NotContains(t, decoded, "error")
}
