package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"ainamoi-portal-be/config"
	"ainamoi-portal-be/models"
)

// AnonymousReporter is stored when the reporter leaves their name blank
const AnonymousReporter = "Anonymous"

var (
	ErrUnpairedLocation = errors.New("location latitude and longitude must be set together")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidWard      = errors.New("invalid ward")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
)

// IssueStore is the persistence capability the service depends on
type IssueStore interface {
	Insert(ctx context.Context, issue *models.Issue) error
	ListNewestFirst(ctx context.Context) ([]models.Issue, error)
	SetStatus(ctx context.Context, id string, status models.IssueStatus) error
	SetPriority(ctx context.Context, id string, priority models.IssuePriority) error
}

// SubmitInput is the payload accepted from the public submission form
type SubmitInput struct {
	Title         string   `json:"title" binding:"required,min=5"`
	Description   string   `json:"description" binding:"required,min=20"`
	Category      string   `json:"category" binding:"required"`
	Ward          string   `json:"ward" binding:"required"`
	ReporterName  string   `json:"reporter_name"`
	ReporterPhone *string  `json:"reporter_phone,omitempty"`
	LocationLat   *float64 `json:"location_lat,omitempty"`
	LocationLng   *float64 `json:"location_lng,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

// IssueService owns the submission and moderation workflow
type IssueService struct {
	store IssueStore
}

func NewIssueService(store IssueStore) *IssueService {
	return &IssueService{store: store}
}

// Submit validates and persists a citizen report. Status and priority are
// always server-assigned: the request shape has no field for either.
func (s *IssueService) Submit(ctx context.Context, in SubmitInput) (*models.Issue, error) {
	if !models.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	if !models.ValidWard(in.Ward) {
		return nil, ErrInvalidWard
	}
	if (in.LocationLat == nil) != (in.LocationLng == nil) {
		return nil, ErrUnpairedLocation
	}

	name := strings.TrimSpace(in.ReporterName)
	if name == "" {
		name = AnonymousReporter
	}

	phone := in.ReporterPhone
	if phone != nil && strings.TrimSpace(*phone) == "" {
		phone = nil
	}

	now := time.Now()
	issue := &models.Issue{
		Title:         in.Title,
		Description:   in.Description,
		Category:      models.IssueCategory(in.Category),
		Ward:          in.Ward,
		ReporterName:  name,
		ReporterPhone: phone,
		LocationLat:   in.LocationLat,
		LocationLng:   in.LocationLng,
		ImageURL:      in.ImageURL,
		Status:        models.Received,
		Priority:      models.PriorityNormal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Insert(ctx, issue); err != nil {
		config.Log.WithError(err).Error("failed to persist issue report")
		return nil, err
	}

	config.IssuesSubmitted.WithLabelValues(issue.Ward, string(issue.Category)).Inc()
	return issue, nil
}

// List returns every report, newest first
func (s *IssueService) List(ctx context.Context) ([]models.Issue, error) {
	return s.store.ListNewestFirst(ctx)
}

// UpdateStatus overwrites the triage stage of one report. Any member of the
// status enum is reachable from any other; the overwrite is unguarded.
func (s *IssueService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.store.SetStatus(ctx, id, models.IssueStatus(status)); err != nil {
		config.Log.WithError(err).WithField("issue_id", id).Error("failed to update issue status")
		return err
	}
	config.IssueStatusUpdates.WithLabelValues(status).Inc()
	return nil
}

// UpdatePriority overwrites the severity of one report
func (s *IssueService) UpdatePriority(ctx context.Context, id, priority string) error {
	if !models.ValidPriority(priority) {
		return ErrInvalidPriority
	}
	if err := s.store.SetPriority(ctx, id, models.IssuePriority(priority)); err != nil {
		config.Log.WithError(err).WithField("issue_id", id).Error("failed to update issue priority")
		return err
	}
	return nil
}
