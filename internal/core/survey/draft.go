package survey

import (
	"fmt"
	"sort"
	"time"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/validation"
)

// DraftState is the stage of the submission flow a draft is in
type DraftState string

const (
	DraftStateStart         DraftState = "start"
	DraftStateFeelingChosen DraftState = "feeling_chosen"
	DraftStateReady         DraftState = "ready"
)

// Location is a picked map point
type Location struct {
	Latitude  float64
	Longitude float64
}

// Draft is an in-progress submission. The location picker only becomes
// available once a feeling has been chosen.
type Draft struct {
	ID        string
	Feeling   Feeling
	Issues    map[Issue]bool
	Location  *Location
	UpdatedAt time.Time
}

// NewDraft returns an empty draft in the start state
func NewDraft(id string, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Issues:    make(map[Issue]bool),
		UpdatedAt: now,
	}
}

// State derives the flow stage from the filled fields
func (d *Draft) State() DraftState {
	switch {
	case d.Feeling == "":
		return DraftStateStart
	case d.Location == nil:
		return DraftStateFeelingChosen
	default:
		return DraftStateReady
	}
}

// SelectFeeling sets or overwrites the feeling
func (d *Draft) SelectFeeling(f Feeling) error {
	if !f.IsValid() {
		return fmt.Errorf("unknown feeling %q", f)
	}
	d.Feeling = f
	return nil
}

// ToggleIssue flips membership of the tag
func (d *Draft) ToggleIssue(i Issue) error {
	if !i.IsValid() {
		return fmt.Errorf("unknown issue %q", i)
	}
	if d.Issues == nil {
		d.Issues = make(map[Issue]bool)
	}
	if d.Issues[i] {
		delete(d.Issues, i)
	} else {
		d.Issues[i] = true
	}
	return nil
}

// SetLocation records the last clicked point
func (d *Draft) SetLocation(lat, lon float64) error {
	if d.Feeling == "" {
		return fmt.Errorf("choose a feeling before picking a location")
	}
	if !validation.IsValidLatitude(lat) || !validation.IsValidLongitude(lon) {
		return fmt.Errorf("location %.4f, %.4f is out of range", lat, lon)
	}
	d.Location = &Location{Latitude: lat, Longitude: lon}
	return nil
}

// CanSubmit is true once both a feeling and a location are set. Issues are optional.
func (d *Draft) CanSubmit() bool {
	return d.Feeling != "" && d.Location != nil
}

// Reset clears the draft back to the start state
func (d *Draft) Reset() {
	d.Feeling = ""
	d.Issues = make(map[Issue]bool)
	d.Location = nil
}

// SelectedIssues returns the chosen tags sorted by name
func (d *Draft) SelectedIssues() []Issue {
	issues := make([]Issue, 0, len(d.Issues))
	for i := range d.Issues {
		issues = append(issues, i)
	}
	sort.Slice(issues, func(a, b int) bool { return issues[a] < issues[b] })
	return issues
}

// ToResponse builds the row to store for the given user
func (d *Draft) ToResponse(userEmail string, now time.Time) (*Response, error) {
	if !d.CanSubmit() {
		return nil, fmt.Errorf("draft is not ready: feeling and location are required")
	}
	r := &Response{
		Timestamp: now.UTC(),
		UserEmail: userEmail,
		Latitude:  d.Location.Latitude,
		Longitude: d.Location.Longitude,
		Feeling:   d.Feeling,
		Issues:    d.SelectedIssues(),
	}
	if err := r.IsValid(); err != nil {
		return nil, err
	}
	return r, nil
}

func (d *Draft) toData() *ports.DraftData {
	data := &ports.DraftData{
		ID:        d.ID,
		Feeling:   string(d.Feeling),
		Issues:    make([]string, 0, len(d.Issues)),
		UpdatedAt: d.UpdatedAt,
	}
	for _, i := range d.SelectedIssues() {
		data.Issues = append(data.Issues, string(i))
	}
	if d.Location != nil {
		lat, lon := d.Location.Latitude, d.Location.Longitude
		data.Latitude = &lat
		data.Longitude = &lon
	}
	return data
}

func draftFromData(data *ports.DraftData) *Draft {
	d := &Draft{
		ID:        data.ID,
		Feeling:   Feeling(data.Feeling),
		Issues:    make(map[Issue]bool, len(data.Issues)),
		UpdatedAt: data.UpdatedAt,
	}
	for _, i := range data.Issues {
		d.Issues[Issue(i)] = true
	}
	if data.Latitude != nil && data.Longitude != nil {
		d.Location = &Location{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}
	return d
}
