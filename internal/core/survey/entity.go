package survey

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"coolassistant.app/pkg/validation"
)

// Feeling is the subjective comfort rating, ordered most to least comfortable
type Feeling string

const (
	FeelingGood          Feeling = "good"
	FeelingNeutral       Feeling = "neutral"
	FeelingUncomfortable Feeling = "uncomfortable"
	FeelingBad           Feeling = "bad"
)

// Feelings lists every rating in display order
var Feelings = []Feeling{FeelingGood, FeelingNeutral, FeelingUncomfortable, FeelingBad}

var feelingEmoji = map[Feeling]string{
	FeelingGood:          "😃",
	FeelingNeutral:       "😐",
	FeelingUncomfortable: "\u2639\uFE0F",
	FeelingBad:           "😫",
}

// Emoji returns the face shown for the feeling
func (f Feeling) Emoji() string {
	return feelingEmoji[f]
}

// IsValid checks the feeling belongs to the closed set
func (f Feeling) IsValid() bool {
	_, ok := feelingEmoji[f]
	return ok
}

// ParseFeeling accepts either the symbolic name or the emoji
func ParseFeeling(s string) (Feeling, error) {
	s = strings.TrimSpace(s)
	if f := Feeling(strings.ToLower(s)); f.IsValid() {
		return f, nil
	}
	for f, emoji := range feelingEmoji {
		// the frowning face is sometimes sent without its variation selector
		if s == emoji || s == strings.TrimSuffix(emoji, "\uFE0F") {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown feeling %q", s)
}

// Issue is a discomfort cause tag
type Issue string

// Issues is the fixed vocabulary of issue tags
var Issues = []Issue{
	"heat", "dust", "wind", "pollution", "humidity",
	"uv", "storm", "rain", "cold", "fog",
}

const issueSeparator = ", "

// IsValid checks the tag is part of the vocabulary
func (i Issue) IsValid() bool {
	for _, known := range Issues {
		if i == known {
			return true
		}
	}
	return false
}

// ParseIssue normalizes and validates an issue tag
func ParseIssue(s string) (Issue, error) {
	i := Issue(strings.ToLower(strings.TrimSpace(s)))
	if !i.IsValid() {
		return "", fmt.Errorf("unknown issue %q", s)
	}
	return i, nil
}

// JoinIssues renders a set of issues in the persisted sorted form
func JoinIssues(issues []Issue) string {
	parts := make([]string, 0, len(issues))
	seen := make(map[Issue]bool, len(issues))
	for _, i := range issues {
		if seen[i] {
			continue
		}
		seen[i] = true
		parts = append(parts, string(i))
	}
	sort.Strings(parts)
	return strings.Join(parts, issueSeparator)
}

// SplitIssues parses the persisted form back into tags
func SplitIssues(s string) []Issue {
	if strings.TrimSpace(s) == "" {
		return []Issue{}
	}
	parts := strings.Split(s, ",")
	issues := make([]Issue, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			issues = append(issues, Issue(p))
		}
	}
	return issues
}

// Response is one stored survey answer
type Response struct {
	ID        uint
	Timestamp time.Time
	UserEmail string
	Latitude  float64
	Longitude float64
	Feeling   Feeling
	Issues    []Issue
}

// IsValid validates a response before it is written
func (r *Response) IsValid() error {
	if !validation.IsNotEmpty(r.UserEmail) {
		return fmt.Errorf("user email cannot be empty")
	}
	if !r.Feeling.IsValid() {
		return fmt.Errorf("feeling %q is not one of good, neutral, uncomfortable, bad", r.Feeling)
	}
	if !validation.IsValidLatitude(r.Latitude) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(r.Longitude) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	for _, i := range r.Issues {
		if !i.IsValid() {
			return fmt.Errorf("unknown issue %q", i)
		}
	}
	return nil
}

// SubmitRequest is a one-shot submission from an API client
type SubmitRequest struct {
	UserEmail string
	Feeling   string
	Issues    []string
	Latitude  float64
	Longitude float64
}

// SubmitDraftRequest submits a stored draft on behalf of a user
type SubmitDraftRequest struct {
	DraftID   string
	UserEmail string
}

// SubmitResult is returned after a successful write
type SubmitResult struct {
	Response *Response
	Draft    *Draft
	Redirect string
}
