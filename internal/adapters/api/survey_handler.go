package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coolassistant.app/internal/core/survey"
	"coolassistant.app/pkg/errors"
)

const defaultRecentLimit = 50

type feelingRequest struct {
	Feeling string `json:"feeling" binding:"required,feeling"`
}

type locationRequest struct {
	Latitude  *float64 `json:"lat" binding:"required,latitude"`
	Longitude *float64 `json:"lon" binding:"required,longitude"`
}

type submitRequest struct {
	Feeling   string   `json:"feeling" binding:"required,feeling"`
	Issues    []string `json:"issues" binding:"omitempty,dive,issue"`
	Latitude  *float64 `json:"lat" binding:"required,latitude"`
	Longitude *float64 `json:"lon" binding:"required,longitude"`
}

// LocationResponse is a picked map point
type LocationResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// DraftResponse is the client view of a draft
type DraftResponse struct {
	ID        string            `json:"id"`
	State     string            `json:"state"`
	Feeling   string            `json:"feeling,omitempty"`
	Emoji     string            `json:"emoji,omitempty"`
	Issues    []string          `json:"issues"`
	Location  *LocationResponse `json:"location,omitempty"`
	CanSubmit bool              `json:"can_submit"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SurveyResponse is a stored answer without the submitter's identity
type SurveyResponse struct {
	ID        uint      `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Feeling   string    `json:"feeling"`
	Emoji     string    `json:"emoji"`
	Issues    []string  `json:"issues"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
}

// SubmitResponse is returned after a draft is stored
type SubmitResponse struct {
	Response SurveyResponse `json:"response"`
	Draft    DraftResponse  `json:"draft"`
	Redirect string         `json:"redirect"`
}

func toDraftResponse(d *survey.Draft) DraftResponse {
	resp := DraftResponse{
		ID:        d.ID,
		State:     string(d.State()),
		Issues:    issueStrings(d.SelectedIssues()),
		CanSubmit: d.CanSubmit(),
		UpdatedAt: d.UpdatedAt,
	}
	if d.Feeling != "" {
		resp.Feeling = string(d.Feeling)
		resp.Emoji = d.Feeling.Emoji()
	}
	if d.Location != nil {
		resp.Location = &LocationResponse{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude}
	}
	return resp
}

func toSurveyResponse(r *survey.Response) SurveyResponse {
	return SurveyResponse{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Feeling:   string(r.Feeling),
		Emoji:     r.Feeling.Emoji(),
		Issues:    issueStrings(r.Issues),
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

func toSurveyResponses(rows []*survey.Response) []SurveyResponse {
	out := make([]SurveyResponse, len(rows))
	for i, r := range rows {
		out[i] = toSurveyResponse(r)
	}
	return out
}

func issueStrings(issues []survey.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = string(issue)
	}
	return out
}

// queryInt reads an optional positive integer query parameter
func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, errors.NewValidationError(name + " must be a positive integer")
	}
	return v, nil
}

// POST /api/drafts
func (s *HTTPServerAdapter) createDraft(c *gin.Context) {
	draft, err := s.surveyUseCase.CreateDraft(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDraftResponse(draft))
}

// GET /api/drafts/:id
func (s *HTTPServerAdapter) getDraft(c *gin.Context) {
	draft, err := s.surveyUseCase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// PUT /api/drafts/:id/feeling
func (s *HTTPServerAdapter) selectFeeling(c *gin.Context) {
	var req feelingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}

	draft, err := s.surveyUseCase.SelectFeeling(c.Request.Context(), c.Param("id"), req.Feeling)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// POST /api/drafts/:id/issues/:issue
func (s *HTTPServerAdapter) toggleIssue(c *gin.Context) {
	draft, err := s.surveyUseCase.ToggleIssue(c.Request.Context(), c.Param("id"), c.Param("issue"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// PUT /api/drafts/:id/location
func (s *HTTPServerAdapter) setLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}

	draft, err := s.surveyUseCase.SetLocation(c.Request.Context(), c.Param("id"), *req.Latitude, *req.Longitude)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// POST /api/drafts/:id/submit
func (s *HTTPServerAdapter) submitDraft(c *gin.Context) {
	result, err := s.surveyUseCase.SubmitDraft(c.Request.Context(), survey.SubmitDraftRequest{
		DraftID:   c.Param("id"),
		UserEmail: userEmail(c),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{
		Response: toSurveyResponse(result.Response),
		Draft:    toDraftResponse(result.Draft),
		Redirect: result.Redirect,
	})
}

// POST /api/responses
func (s *HTTPServerAdapter) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}

	response, err := s.surveyUseCase.Submit(c.Request.Context(), survey.SubmitRequest{
		UserEmail: userEmail(c),
		Feeling:   req.Feeling,
		Issues:    req.Issues,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSurveyResponse(response))
}

// GET /api/responses
func (s *HTTPServerAdapter) listRecent(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultRecentLimit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	rows, err := s.surveyUseCase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": toSurveyResponses(rows)})
}

// GET /api/responses/me
func (s *HTTPServerAdapter) history(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		s.handleError(c, err)
		return
	}

	rows, err := s.surveyUseCase.History(c.Request.Context(), userEmail(c), limit)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userEmail(c), "responses": toSurveyResponses(rows)})
}
