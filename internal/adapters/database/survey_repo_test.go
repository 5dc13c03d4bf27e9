package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

var baseTime = time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

func setupSurveyTestDB(t *testing.T) (*gorm.DB, ports.SurveyRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every new connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := NewSurveyRepositoryAdapter(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return db, repo
}

func insertRow(t *testing.T, repo ports.SurveyRepository, email string, ts time.Time, feeling string) *ports.SurveyResponseData {
	row := &ports.SurveyResponseData{
		Timestamp: ts,
		UserEmail: email,
		Latitude:  36.19,
		Longitude: 44.01,
		Feeling:   feeling,
		Issues:    "",
	}
	require.NoError(t, repo.Insert(context.Background(), row))
	return row
}

func TestSurveyRepository_EnsureSchemaIsIdempotent(t *testing.T) {
	_, repo := setupSurveyTestDB(t)

	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestSurveyRepository_InsertRoundTrip(t *testing.T) {
	_, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	row := &ports.SurveyResponseData{
		Timestamp: baseTime,
		UserEmail: "user@example.com",
		Latitude:  36.19,
		Longitude: 44.01,
		Feeling:   "good",
		Issues:    "dust, heat",
	}
	require.NoError(t, repo.Insert(ctx, row))
	assert.NotZero(t, row.ID)

	rows, err := repo.ListByUser(ctx, "user@example.com", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row.ID, rows[0].ID)
	assert.Equal(t, "good", rows[0].Feeling)
	assert.Equal(t, 36.19, rows[0].Latitude)
	assert.Equal(t, 44.01, rows[0].Longitude)
	assert.Equal(t, "dust, heat", rows[0].Issues)
	assert.True(t, baseTime.Equal(rows[0].Timestamp))
}

func TestSurveyRepository_InsertAllowsRepeats(t *testing.T) {
	_, repo := setupSurveyTestDB(t)

	first := insertRow(t, repo, "user@example.com", baseTime, "good")
	second := insertRow(t, repo, "user@example.com", baseTime, "good")

	assert.NotEqual(t, first.ID, second.ID)
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSurveyRepository_ListRecentOrderingAndLimit(t *testing.T) {
	_, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	insertRow(t, repo, "a@example.com", baseTime, "good")
	insertRow(t, repo, "b@example.com", baseTime.Add(2*time.Hour), "bad")
	insertRow(t, repo, "c@example.com", baseTime.Add(time.Hour), "neutral")

	rows, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b@example.com", rows[0].UserEmail)
	assert.Equal(t, "c@example.com", rows[1].UserEmail)

	_, err = repo.ListRecent(ctx, 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestSurveyRepository_LatestByUser(t *testing.T) {
	_, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	_, err := repo.LatestByUser(ctx, "nobody@example.com")
	assert.True(t, errors.IsNotFoundError(err))

	insertRow(t, repo, "a@example.com", baseTime, "good")
	latest := insertRow(t, repo, "a@example.com", baseTime.Add(3*time.Hour), "bad")
	insertRow(t, repo, "b@example.com", baseTime.Add(5*time.Hour), "bad")

	found, err := repo.LatestByUser(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, latest.ID, found.ID)
}

func TestSurveyRepository_TimelineAndDelete(t *testing.T) {
	_, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	keep := insertRow(t, repo, "a@example.com", baseTime, "good")
	dup := insertRow(t, repo, "a@example.com", baseTime.Add(time.Hour), "good")
	later := insertRow(t, repo, "a@example.com", baseTime.Add(30*time.Hour), "bad")
	other := insertRow(t, repo, "b@example.com", baseTime, "neutral")

	timeline, err := repo.ListTimeline(ctx)
	require.NoError(t, err)
	require.Len(t, timeline, 4)
	assert.Equal(t, []uint{keep.ID, dup.ID, later.ID, other.ID},
		[]uint{timeline[0].ID, timeline[1].ID, timeline[2].ID, timeline[3].ID})
	assert.True(t, baseTime.Add(time.Hour).Equal(timeline[1].Timestamp))

	deleted, err := repo.DeleteByIDs(ctx, []uint{dup.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.DeleteByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSurveyRepository_DeleteByIDsBatches(t *testing.T) {
	_, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	ids := make([]uint, 0, deleteBatchSize+20)
	for i := 0; i < deleteBatchSize+20; i++ {
		row := insertRow(t, repo, fmt.Sprintf("u%d@example.com", i), baseTime, "good")
		ids = append(ids, row.ID)
	}

	deleted, err := repo.DeleteByIDs(ctx, ids)

	require.NoError(t, err)
	assert.Equal(t, int64(deleteBatchSize+20), deleted)
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, ports.SurveyRepository) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return mock, NewSurveyRepositoryAdapter(db)
}

func TestSurveyRepository_DatabaseErrors(t *testing.T) {
	ctx := context.Background()
	boom := fmt.Errorf("connection reset by peer")

	t.Run("Insert", func(t *testing.T) {
		mock, repo := setupMockDB(t)
		mock.ExpectQuery(`INSERT INTO "survey_responses"`).WillReturnError(boom)

		err := repo.Insert(ctx, &ports.SurveyResponseData{UserEmail: "a@example.com", Feeling: "good", Timestamp: baseTime})

		assert.True(t, errors.IsDatabaseError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListRecent", func(t *testing.T) {
		mock, repo := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "survey_responses" ORDER BY ts DESC`).WillReturnError(boom)

		_, err := repo.ListRecent(ctx, 10)

		assert.True(t, errors.IsDatabaseError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListTimeline", func(t *testing.T) {
		mock, repo := setupMockDB(t)
		mock.ExpectQuery(`SELECT .+ FROM "survey_responses" ORDER BY user_email ASC`).WillReturnError(boom)

		_, err := repo.ListTimeline(ctx)

		assert.True(t, errors.IsDatabaseError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteRollsBack", func(t *testing.T) {
		mock, repo := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "survey_responses" WHERE id IN`).WillReturnError(boom)
		mock.ExpectRollback()

		deleted, err := repo.DeleteByIDs(ctx, []uint{1, 2})

		assert.Zero(t, deleted)
		assert.True(t, errors.IsDatabaseError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count", func(t *testing.T) {
		mock, repo := setupMockDB(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "survey_responses"`).WillReturnError(boom)

		_, err := repo.Count(ctx)

		assert.True(t, errors.IsDatabaseError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
