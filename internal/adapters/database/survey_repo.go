package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const deleteBatchSize = 500

// SurveyResponseModel represents the database model for survey responses.
// Rows are insert-only and removed with hard deletes.
type SurveyResponseModel struct {
	ID        uint      `gorm:"primaryKey"`
	Timestamp time.Time `gorm:"column:ts;not null;index"`
	UserEmail string    `gorm:"column:user_email;not null;index"`
	Latitude  float64   `gorm:"column:lat;not null"`
	Longitude float64   `gorm:"column:lon;not null"`
	Feeling   string    `gorm:"column:feeling;not null"`
	Issues    string    `gorm:"column:issues;not null"`
}

func (SurveyResponseModel) TableName() string {
	return "survey_responses"
}

// SurveyRepositoryAdapter implements the SurveyRepository port using GORM
type SurveyRepositoryAdapter struct {
	db *gorm.DB
}

// NewSurveyRepositoryAdapter creates a new survey repository adapter
func NewSurveyRepositoryAdapter(db *gorm.DB) ports.SurveyRepository {
	return &SurveyRepositoryAdapter{db: db}
}

// EnsureSchema creates the table and indexes when they are missing
func (r *SurveyRepositoryAdapter) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&SurveyResponseModel{}); err != nil {
		return errors.NewDatabaseError("failed to ensure survey schema", err)
	}
	return nil
}

// Insert appends a response and assigns its ID
func (r *SurveyRepositoryAdapter) Insert(ctx context.Context, row *ports.SurveyResponseData) error {
	if row == nil {
		return errors.NewValidationError("survey response cannot be nil")
	}

	model := r.dataToModel(row)
	model.ID = 0
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("failed to insert survey response", result.Error)
	}

	row.ID = model.ID
	return nil
}

// ListRecent returns up to limit responses, newest first
func (r *SurveyRepositoryAdapter) ListRecent(ctx context.Context, limit int) ([]*ports.SurveyResponseData, error) {
	if limit < 1 {
		return nil, errors.NewValidationError("limit must be positive")
	}

	var models []SurveyResponseModel
	result := r.db.WithContext(ctx).
		Order("ts DESC").Order("id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list recent survey responses", result.Error)
	}

	return r.modelsToData(models), nil
}

// ListByUser returns up to limit responses of one user, newest first
func (r *SurveyRepositoryAdapter) ListByUser(ctx context.Context, email string, limit int) ([]*ports.SurveyResponseData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}
	if limit < 1 {
		return nil, errors.NewValidationError("limit must be positive")
	}

	var models []SurveyResponseModel
	result := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("ts DESC").Order("id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list survey responses by user", result.Error)
	}

	return r.modelsToData(models), nil
}

// LatestByUser returns the newest response of one user
func (r *SurveyRepositoryAdapter) LatestByUser(ctx context.Context, email string) (*ports.SurveyResponseData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	var model SurveyResponseModel
	result := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("ts DESC").Order("id DESC").
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no survey responses for user")
		}
		return nil, errors.NewDatabaseError("failed to find latest survey response", result.Error)
	}

	return r.modelToData(&model), nil
}

// ListTimeline returns every row's id, user and timestamp ordered per user by time
func (r *SurveyRepositoryAdapter) ListTimeline(ctx context.Context) ([]ports.TimelineEntry, error) {
	var models []SurveyResponseModel
	result := r.db.WithContext(ctx).
		Select("id", "user_email", "ts").
		Order("user_email ASC").Order("ts ASC").Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to load survey timeline", result.Error)
	}

	entries := make([]ports.TimelineEntry, len(models))
	for i, model := range models {
		entries[i] = ports.TimelineEntry{
			ID:        model.ID,
			UserEmail: model.UserEmail,
			Timestamp: model.Timestamp.UTC(),
		}
	}
	return entries, nil
}

// DeleteByIDs hard deletes the given rows in batches within one transaction
func (r *SurveyRepositoryAdapter) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(ids); start += deleteBatchSize {
			end := start + deleteBatchSize
			if end > len(ids) {
				end = len(ids)
			}
			result := tx.Where("id IN ?", ids[start:end]).Delete(&SurveyResponseModel{})
			if result.Error != nil {
				return result.Error
			}
			deleted += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, errors.NewDatabaseError("failed to delete survey responses", err)
	}

	return deleted, nil
}

// Count returns the number of stored responses
func (r *SurveyRepositoryAdapter) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&SurveyResponseModel{}).Count(&count)
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to count survey responses", result.Error)
	}

	return count, nil
}

// dataToModel converts port data to database model
func (r *SurveyRepositoryAdapter) dataToModel(data *ports.SurveyResponseData) *SurveyResponseModel {
	return &SurveyResponseModel{
		ID:        data.ID,
		Timestamp: data.Timestamp.UTC(),
		UserEmail: data.UserEmail,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Feeling:   data.Feeling,
		Issues:    data.Issues,
	}
}

// modelToData converts database model to port data
func (r *SurveyRepositoryAdapter) modelToData(model *SurveyResponseModel) *ports.SurveyResponseData {
	return &ports.SurveyResponseData{
		ID:        model.ID,
		Timestamp: model.Timestamp.UTC(),
		UserEmail: model.UserEmail,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Feeling:   model.Feeling,
		Issues:    model.Issues,
	}
}

func (r *SurveyRepositoryAdapter) modelsToData(models []SurveyResponseModel) []*ports.SurveyResponseData {
	rows := make([]*ports.SurveyResponseData, len(models))
	for i := range models {
		rows[i] = r.modelToData(&models[i])
	}
	return rows
}
