package forecast

// Range is a half-open interval [Lower, Upper) with its label and colour
type Range struct {
	Lower float64
	Upper float64
	Label string
	Color string
}

// Level is the classification of a single reading
type Level struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// NoData is returned for missing or out-of-table values
var NoData = Level{Label: "No data", Color: "grey"}

// European AQI bands
var AQIRanges = []Range{
	{0, 25, "Good", "green"},
	{25, 50, "Fair", "limegreen"},
	{50, 75, "Moderate", "yellow"},
	{75, 100, "Poor", "orange"},
	{100, 1e9, "Very poor", "red"},
}

// PM2.5 bands in µg/m³
var PM25Ranges = []Range{
	{0, 10, "Good", "green"},
	{10, 20, "Fair", "limegreen"},
	{20, 25, "Moderate", "yellow"},
	{25, 50, "Poor", "orange"},
	{50, 75, "Very poor", "red"},
	{75, 800, "Extremely poor", "darkred"},
}

// PM10 bands in µg/m³
var PM10Ranges = []Range{
	{0, 20, "Good", "green"},
	{20, 40, "Fair", "limegreen"},
	{40, 50, "Moderate", "yellow"},
	{50, 100, "Poor", "orange"},
	{100, 150, "Very poor", "red"},
	{150, 1200, "Extremely poor", "darkred"},
}

// NO2 bands in µg/m³
var NO2Ranges = []Range{
	{0, 40, "Good", "green"},
	{40, 90, "Fair", "limegreen"},
	{90, 120, "Moderate", "yellow"},
	{120, 230, "Poor", "orange"},
	{230, 340, "Very poor", "red"},
	{340, 1000, "Extremely poor", "darkred"},
}

// DustRiskRanges buckets the daily PM10 maximum of the outlook
var DustRiskRanges = []Range{
	{0, 100, "Low", "green"},
	{100, 200, "Moderate", "yellow"},
	{200, 300, "High", "orange"},
	{300, 1e9, "Very High", "red"},
}

// HeatRanges buckets the daily temperature maximum in °C
var HeatRanges = []Range{
	{-273.15, 38, "Warm", "green"},
	{38, 43, "Hot", "orange"},
	{43, 1e3, "Heat-Wave", "red"},
}

// Classify finds the range containing value
func Classify(value *float64, table []Range) Level {
	if value == nil {
		return NoData
	}
	for _, r := range table {
		if r.Lower <= *value && *value < r.Upper {
			return Level{Label: r.Label, Color: r.Color}
		}
	}
	return NoData
}
