package heatmap

import (
	"coolassistant.app/internal/ports"
)

// ToPoints weights every row without grouping
func ToPoints(rows []*ports.SurveyResponseData) []Point {
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, Point{row.Latitude, row.Longitude, WeightOf(row.Feeling)})
	}
	return points
}

type dayKey struct {
	user string
	day  string
}

type dayBucket struct {
	lat, lon, weight float64
	n                int
}

// AggregateDaily collapses rows to one point per user and UTC calendar day by
// averaging position and weight. Points keep the order of each group's first row.
func AggregateDaily(rows []*ports.SurveyResponseData) []Point {
	buckets := make(map[dayKey]*dayBucket)
	order := make([]dayKey, 0)

	for _, row := range rows {
		key := dayKey{user: row.UserEmail, day: row.Timestamp.UTC().Format("2006-01-02")}
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{}
			buckets[key] = b
			order = append(order, key)
		}
		b.lat += row.Latitude
		b.lon += row.Longitude
		b.weight += WeightOf(row.Feeling)
		b.n++
	}

	points := make([]Point, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		n := float64(b.n)
		points = append(points, Point{b.lat / n, b.lon / n, b.weight / n})
	}
	return points
}
