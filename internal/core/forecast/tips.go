package forecast

import "time"

var dailyTips = []string{
	"Close windows during the midday heat; ventilate late at night or early in the morning.",
	"Hang damp cotton curtains. They pre-filter dust and cool incoming air.",
	"Add weather-stripping to doors to keep hot, dusty air outside.",
}

// Tip is the comfort advice shown for one calendar day
type Tip struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// TipFor picks the tip for the UTC day containing t. The choice only changes
// at midnight so every visitor sees the same advice that day.
func TipFor(t time.Time) Tip {
	day := t.UTC()
	return Tip{
		Date: day.Format(time.DateOnly),
		Text: dailyTips[day.YearDay()%len(dailyTips)],
	}
}
