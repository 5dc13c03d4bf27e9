package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coolassistant.app/internal/adapters/external"
	"coolassistant.app/internal/adapters/infrastructure"
	"coolassistant.app/internal/core/survey"
	"coolassistant.app/internal/mocks"
	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const schedulerWait = 2 * time.Second

func waitForBlockers(t *testing.T, clock *clockwork.FakeClock) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), schedulerWait)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1), "cleanup ticker was never created")
}

func requireStopped(t *testing.T, stop func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(schedulerWait):
		t.Fatal("scheduler did not stop")
	}
}

func TestApplication_SchedulerCleansAtStartAndOnEveryTick(t *testing.T) {
	app := setupTestApplication(t)
	clock := clockwork.NewFakeClock()
	app.clock = clock
	ctx := context.Background()
	body := gin.H{"feeling": "bad", "lat": 36.19, "lon": 44.01}

	for i := 0; i < 2; i++ {
		w, _ := call(t, app, http.MethodPost, "/api/responses", body, testUser)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	count := func() int64 {
		n, _ := app.ports.SurveyRepository.Count(ctx)
		return n
	}

	app.startBackgroundJobs(ctx)

	assert.Eventually(t, func() bool { return count() == 1 }, schedulerWait, 10*time.Millisecond,
		"first pass should run at start")

	for i := 0; i < 2; i++ {
		w, _ := call(t, app, http.MethodPost, "/api/responses", body, testUser)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	require.Equal(t, int64(3), count())

	waitForBlockers(t, clock)
	clock.Advance(app.ports.ConfigProvider.GetSurveyConfig().CleanupInterval)

	assert.Eventually(t, func() bool { return count() == 1 }, schedulerWait, 10*time.Millisecond,
		"a pass should run on the interval tick")

	requireStopped(t, func() { assert.NoError(t, app.Shutdown(ctx)) })
}

func TestApplication_SchedulerRetriesAfterFailedPass(t *testing.T) {
	repo := mocks.NewSurveyRepository(t)
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetSurveyConfig().Return(ports.SurveyConfig{
		Cooldown:        24 * time.Hour,
		CleanupInterval: time.Hour,
		DraftTTL:        time.Hour,
	}).Maybe()

	uc, err := survey.NewUseCase(survey.UseCaseDependencies{
		Repository: repo,
		Drafts:     mocks.NewDraftStore(t),
		Config:     config,
		Logger:     infrastructure.NewSlogLoggerAdapter(slog.Default()),
	})
	require.NoError(t, err)

	passes := make(chan string, 3)
	start := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	repo.EXPECT().ListTimeline(mock.Anything).RunAndReturn(func(context.Context) ([]ports.TimelineEntry, error) {
		passes <- "startup"
		return nil, nil
	}).Once()
	repo.EXPECT().ListTimeline(mock.Anything).RunAndReturn(func(context.Context) ([]ports.TimelineEntry, error) {
		passes <- "failed"
		return nil, errors.NewDatabaseError("timeline query failed", fmt.Errorf("connection reset"))
	}).Once()
	repo.EXPECT().ListTimeline(mock.Anything).Return([]ports.TimelineEntry{
		{ID: 1, UserEmail: testUser, Timestamp: start},
		{ID: 2, UserEmail: testUser, Timestamp: start.Add(time.Hour)},
	}, nil).Once()
	repo.EXPECT().DeleteByIDs(mock.Anything, []uint{2}).RunAndReturn(func(context.Context, []uint) (int64, error) {
		passes <- "deleted"
		return 1, nil
	}).Once()

	clock := clockwork.NewFakeClock()
	app := &Application{
		surveyUseCase: uc,
		container:     &DependencyContainer{cache: external.NewMemoryCacheProvider()},
		ports:         &ports.ApplicationPorts{ConfigProvider: config},
		clock:         clock,
		stopChan:      make(chan struct{}),
	}

	next := func() string {
		select {
		case pass := <-passes:
			return pass
		case <-time.After(schedulerWait):
			t.Fatal("cleanup pass did not run")
			return ""
		}
	}

	app.startBackgroundJobs(context.Background())
	assert.Equal(t, "startup", next())

	waitForBlockers(t, clock)
	clock.Advance(time.Hour)
	assert.Equal(t, "failed", next())

	waitForBlockers(t, clock)
	clock.Advance(time.Hour)
	assert.Equal(t, "deleted", next())

	requireStopped(t, func() {
		app.stopOnce.Do(func() { close(app.stopChan) })
		app.wg.Wait()
	})
}
