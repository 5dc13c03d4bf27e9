package heatmap

import (
	"coolassistant.app/internal/core/survey"
)

// DefaultWeight is used for feelings missing from the weight table
const DefaultWeight = 0.5

// EmptyMessage is shown when there are no responses to plot
const EmptyMessage = "No data yet."

// FeelingWeight maps a feeling to its comfort score and legend colour
type FeelingWeight struct {
	Feeling survey.Feeling
	Label   string
	Weight  float64
	Color   string
}

// weightTable is ordered from most to least comfortable
var weightTable = []FeelingWeight{
	{Feeling: survey.FeelingGood, Label: "Good", Weight: 1.0, Color: "green"},
	{Feeling: survey.FeelingNeutral, Label: "Neutral", Weight: 0.66, Color: "blue"},
	{Feeling: survey.FeelingUncomfortable, Label: "Uncomfortable", Weight: 0.33, Color: "orange"},
	{Feeling: survey.FeelingBad, Label: "Bad", Weight: 0.0, Color: "red"},
}

// WeightOf returns the comfort score for a stored feeling value
func WeightOf(feeling string) float64 {
	f, err := survey.ParseFeeling(feeling)
	if err != nil {
		return DefaultWeight
	}
	for _, w := range weightTable {
		if w.Feeling == f {
			return w.Weight
		}
	}
	return DefaultWeight
}

// LegendEntry is one row of the static legend
type LegendEntry struct {
	Feeling string `json:"feeling"`
	Emoji   string `json:"emoji"`
	Label   string `json:"label"`
	Color   string `json:"color"`
}

// Legend lists every feeling with its colour, whether or not it appears in the data
func Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(weightTable))
	for _, w := range weightTable {
		entries = append(entries, LegendEntry{
			Feeling: string(w.Feeling),
			Emoji:   w.Feeling.Emoji(),
			Label:   w.Label,
			Color:   w.Color,
		})
	}
	return entries
}

// Point is a weighted heat-layer sample encoded as [lat, lon, weight]
type Point [3]float64

// Center is the initial map view
type Center struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Zoom      int     `json:"zoom"`
}

// LayerOptions are the fixed heat-layer rendering parameters
type LayerOptions struct {
	Radius     int               `json:"radius"`
	Blur       int               `json:"blur"`
	MinOpacity float64           `json:"min_opacity"`
	MaxOpacity float64           `json:"max_opacity"`
	Gradient   map[string]string `json:"gradient"`
}

// DefaultCenter is the initial view over Kurdistan
var DefaultCenter = Center{Latitude: 36.206, Longitude: 44.009, Zoom: 6}

// DefaultLayerOptions returns the red-to-green gradient layer settings
func DefaultLayerOptions() LayerOptions {
	return LayerOptions{
		Radius:     35,
		Blur:       20,
		MinOpacity: 0.25,
		MaxOpacity: 0.9,
		Gradient: map[string]string{
			"0":    "red",
			"0.33": "orange",
			"0.66": "blue",
			"1":    "green",
		},
	}
}

// Heatmap is the document rendered by the map page
type Heatmap struct {
	Center     Center        `json:"center"`
	Layer      LayerOptions  `json:"layer"`
	Points     []Point       `json:"points"`
	Legend     []LegendEntry `json:"legend"`
	Rows       int           `json:"rows"`
	Aggregated bool          `json:"aggregated"`
	Empty      bool          `json:"empty"`
	Message    string        `json:"message,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// Request selects how many rows to read and whether to average per user and day
type Request struct {
	Limit     int
	Aggregate *bool
}
