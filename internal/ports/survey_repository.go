package ports

import (
	"context"
	"time"
)

// SurveyResponseData represents a persisted survey response row
type SurveyResponseData struct {
	ID        uint
	Timestamp time.Time
	UserEmail string
	Latitude  float64
	Longitude float64
	Feeling   string
	Issues    string
}

// TimelineEntry is the minimal projection used by the deduplication pass
type TimelineEntry struct {
	ID        uint
	UserEmail string
	Timestamp time.Time
}

// SurveyRepository defines the contract for survey response persistence
type SurveyRepository interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, row *SurveyResponseData) error
	ListRecent(ctx context.Context, limit int) ([]*SurveyResponseData, error)
	ListByUser(ctx context.Context, email string, limit int) ([]*SurveyResponseData, error)
	LatestByUser(ctx context.Context, email string) (*SurveyResponseData, error)
	ListTimeline(ctx context.Context) ([]TimelineEntry, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// DraftData is the serialized form of an in-progress survey submission
type DraftData struct {
	ID        string    `json:"id"`
	Feeling   string    `json:"feeling,omitempty"`
	Issues    []string  `json:"issues"`
	Latitude  *float64  `json:"lat,omitempty"`
	Longitude *float64  `json:"lon,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DraftStore keeps drafts between requests
type DraftStore interface {
	Get(ctx context.Context, id string) (*DraftData, error)
	Save(ctx context.Context, draft *DraftData) error
	Delete(ctx context.Context, id string) error
	// Lock claims the draft for one submission; false means another holds it
	Lock(ctx context.Context, id string) (bool, error)
	Unlock(ctx context.Context, id string) error
}
