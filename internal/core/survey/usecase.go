package survey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
	"coolassistant.app/pkg/validation"
)

// HeatmapPath is where clients are sent after a successful submission
const HeatmapPath = "/heatmap"

type UseCase struct {
	repo    ports.SurveyRepository
	drafts  ports.DraftStore
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.MetricsCollector
	clock   clockwork.Clock
	newID   func() string
}

type UseCaseDependencies struct {
	Repository ports.SurveyRepository
	Drafts     ports.DraftStore
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	Clock      clockwork.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("survey repository is required")
	}
	if deps.Drafts == nil {
		return nil, errors.NewValidationError("draft store is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &UseCase{
		repo:    deps.Repository,
		drafts:  deps.Drafts,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: metrics,
		clock:   clock,
		newID:   uuid.NewString,
	}, nil
}

// CreateDraft starts a new submission in the start state
func (uc *UseCase) CreateDraft(ctx context.Context) (*Draft, error) {
	draft := NewDraft(uc.newID(), uc.clock.Now().UTC())
	if err := uc.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	uc.logger.Debug("Draft created", ports.F("draft_id", draft.ID))
	return draft, nil
}

func (uc *UseCase) GetDraft(ctx context.Context, id string) (*Draft, error) {
	if !validation.IsNotEmpty(id) {
		return nil, errors.NewValidationError("draft id is required")
	}
	data, err := uc.drafts.Get(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("load draft %s: %w", id, err)
	}
	return draftFromData(data), nil
}

func (uc *UseCase) SelectFeeling(ctx context.Context, id, feeling string) (*Draft, error) {
	f, err := ParseFeeling(feeling)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return uc.updateDraft(ctx, id, func(d *Draft) error {
		return d.SelectFeeling(f)
	})
}

func (uc *UseCase) ToggleIssue(ctx context.Context, id, issue string) (*Draft, error) {
	i, err := ParseIssue(issue)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return uc.updateDraft(ctx, id, func(d *Draft) error {
		return d.ToggleIssue(i)
	})
}

func (uc *UseCase) SetLocation(ctx context.Context, id string, lat, lon float64) (*Draft, error) {
	return uc.updateDraft(ctx, id, func(d *Draft) error {
		return d.SetLocation(lat, lon)
	})
}

func (uc *UseCase) updateDraft(ctx context.Context, id string, apply func(*Draft) error) (*Draft, error) {
	draft, err := uc.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(draft); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	draft.UpdatedAt = uc.clock.Now().UTC()
	if err := uc.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (uc *UseCase) saveDraft(ctx context.Context, draft *Draft) error {
	if err := uc.drafts.Save(ctx, draft.toData()); err != nil {
		return fmt.Errorf("save draft %s: %w", draft.ID, err)
	}
	return nil
}

// SubmitDraft stores the draft as a response for the user. On success the
// draft is reset; on failure it is left as it was so the user can retry.
// The draft is locked for the duration so a double submit stores one row.
func (uc *UseCase) SubmitDraft(ctx context.Context, req SubmitDraftRequest) (*SubmitResult, error) {
	email, err := uc.authorize(req.UserEmail)
	if err != nil {
		return nil, err
	}

	locked, err := uc.drafts.Lock(ctx, req.DraftID)
	if err != nil {
		return nil, fmt.Errorf("lock draft: %w", err)
	}
	if !locked {
		return nil, errors.NewValidationError("this draft is already being submitted")
	}
	defer func() {
		if err := uc.drafts.Unlock(ctx, req.DraftID); err != nil {
			uc.logger.Warn("Failed to unlock draft",
				ports.F("draft_id", req.DraftID),
				ports.F("error", err))
		}
	}()

	draft, err := uc.GetDraft(ctx, req.DraftID)
	if err != nil {
		return nil, err
	}
	if !draft.CanSubmit() {
		return nil, errors.NewValidationError("a feeling and a location are required before submitting")
	}

	response, err := uc.store(ctx, draft, email)
	if err != nil {
		return nil, err
	}

	draft.Reset()
	draft.UpdatedAt = uc.clock.Now().UTC()
	if err := uc.saveDraft(ctx, draft); err != nil {
		// the response is already stored
		uc.logger.Warn("Failed to reset draft after submit",
			ports.F("draft_id", draft.ID),
			ports.F("error", err))
	}

	return &SubmitResult{Response: response, Draft: draft, Redirect: HeatmapPath}, nil
}

// Submit stores a response in one call, applying the same rules as a draft
func (uc *UseCase) Submit(ctx context.Context, req SubmitRequest) (*Response, error) {
	email, err := uc.authorize(req.UserEmail)
	if err != nil {
		return nil, err
	}

	draft := NewDraft("", uc.clock.Now().UTC())
	feeling, err := ParseFeeling(req.Feeling)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := draft.SelectFeeling(feeling); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	for _, raw := range req.Issues {
		issue, err := ParseIssue(raw)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		draft.Issues[issue] = true
	}
	if err := draft.SetLocation(req.Latitude, req.Longitude); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	return uc.store(ctx, draft, email)
}

func (uc *UseCase) authorize(email string) (string, error) {
	if !validation.IsValidEmail(email) {
		return "", errors.NewUnauthorizedError("a signed-in user is required to submit")
	}
	return email, nil
}

func (uc *UseCase) store(ctx context.Context, draft *Draft, email string) (*Response, error) {
	now := uc.clock.Now().UTC()
	response, err := draft.ToResponse(email, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	cfg := uc.config.GetSurveyConfig()
	if cfg.RejectOnCooldown {
		if err := uc.checkCooldown(ctx, email, now, cfg.Cooldown); err != nil {
			uc.metrics.RecordSubmission(ctx, ports.SubmissionRejected)
			return nil, err
		}
	}

	row := toData(response)
	if err := uc.repo.Insert(ctx, row); err != nil {
		uc.metrics.RecordSubmission(ctx, ports.SubmissionFailed)
		uc.logger.Error("Failed to store survey response",
			ports.F("user", email),
			ports.F("error", err))
		return nil, fmt.Errorf("store survey response: %w", err)
	}
	response.ID = row.ID

	uc.metrics.RecordSubmission(ctx, ports.SubmissionAccepted)
	uc.logger.Info("Survey response stored",
		ports.F("id", response.ID),
		ports.F("feeling", string(response.Feeling)))
	return response, nil
}

func (uc *UseCase) checkCooldown(ctx context.Context, email string, now time.Time, cooldown time.Duration) error {
	latest, err := uc.repo.LatestByUser(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("check cooldown: %w", err)
	}
	elapsed := now.Sub(latest.Timestamp)
	if elapsed >= cooldown {
		return nil
	}
	return errors.NewCooldownError(
		fmt.Sprintf("only one response per %s is kept", cooldown), cooldown-elapsed)
}

// ListRecent returns the newest responses across all users
func (uc *UseCase) ListRecent(ctx context.Context, limit int) ([]*Response, error) {
	if limit < 1 {
		return nil, errors.NewValidationError("limit must be positive")
	}
	if rowLimit := uc.config.GetHeatmapConfig().RowLimit; rowLimit > 0 && limit > rowLimit {
		limit = rowLimit
	}
	rows, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent responses: %w", err)
	}
	return fromDataList(rows), nil
}

// History returns the user's own responses, newest first
func (uc *UseCase) History(ctx context.Context, email string, limit int) ([]*Response, error) {
	if !validation.IsValidEmail(email) {
		return nil, errors.NewUnauthorizedError("a signed-in user is required to view history")
	}
	if limit < 1 {
		limit = uc.config.GetSurveyConfig().HistoryLimit
	}
	rows, err := uc.repo.ListByUser(ctx, email, limit)
	if err != nil {
		return nil, fmt.Errorf("list history for %s: %w", email, err)
	}
	return fromDataList(rows), nil
}

// CleanupDuplicates removes responses that fall inside another response's
// cooldown window for the same user. It returns the number of deleted rows.
func (uc *UseCase) CleanupDuplicates(ctx context.Context) (int64, error) {
	cooldown := uc.config.GetSurveyConfig().Cooldown

	timeline, err := uc.repo.ListTimeline(ctx)
	if err != nil {
		uc.metrics.RecordCleanupRun(ctx, 0, false)
		return 0, fmt.Errorf("load timeline: %w", err)
	}

	ids := FindDuplicates(timeline, cooldown)
	if len(ids) == 0 {
		uc.metrics.RecordCleanupRun(ctx, 0, true)
		uc.logger.Debug("No duplicate responses found", ports.F("rows", len(timeline)))
		return 0, nil
	}

	deleted, err := uc.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		uc.metrics.RecordCleanupRun(ctx, 0, false)
		return 0, fmt.Errorf("delete duplicates: %w", err)
	}

	uc.metrics.RecordCleanupRun(ctx, deleted, true)
	uc.logger.Info("Duplicate responses removed",
		ports.F("deleted", deleted),
		ports.F("cooldown", cooldown.String()))
	return deleted, nil
}

func toData(r *Response) *ports.SurveyResponseData {
	return &ports.SurveyResponseData{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		UserEmail: r.UserEmail,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Feeling:   string(r.Feeling),
		Issues:    JoinIssues(r.Issues),
	}
}

// FromData converts a stored row into a Response
func FromData(row *ports.SurveyResponseData) *Response {
	return &Response{
		ID:        row.ID,
		Timestamp: row.Timestamp,
		UserEmail: row.UserEmail,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		Feeling:   Feeling(row.Feeling),
		Issues:    SplitIssues(row.Issues),
	}
}

func fromDataList(rows []*ports.SurveyResponseData) []*Response {
	responses := make([]*Response, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, FromData(row))
	}
	return responses
}
