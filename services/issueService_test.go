package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ainamoi-portal-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssueStore struct {
	insertErr   error
	updateErr   error
	inserted    []*models.Issue
	issues      []models.Issue
	listErr     error
	statusSets  map[string]models.IssueStatus
	prioritySet map[string]models.IssuePriority
}

func newFakeIssueStore() *fakeIssueStore {
	return &fakeIssueStore{
		statusSets:  map[string]models.IssueStatus{},
		prioritySet: map[string]models.IssuePriority{},
	}
}

func (f *fakeIssueStore) Insert(_ context.Context, issue *models.Issue) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, issue)
	return nil
}

func (f *fakeIssueStore) ListNewestFirst(_ context.Context) ([]models.Issue, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.issues, nil
}

func (f *fakeIssueStore) SetStatus(_ context.Context, id string, status models.IssueStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusSets[id] = status
	return nil
}

func (f *fakeIssueStore) SetPriority(_ context.Context, id string, priority models.IssuePriority) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.prioritySet[id] = priority
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func TestSubmitAssignsServerDefaults(t *testing.T) {
	store := newFakeIssueStore()
	svc := NewIssueService(store)

	issue, err := svc.Submit(context.Background(), SubmitInput{
		Title:        "Broken streetlight",
		Description:  "The streetlight near the stage has been dark for a week",
		Category:     "Security",
		Ward:         "Ainamoi",
		ReporterName: "Jane K",
	})
	require.NoError(t, err)

	assert.Equal(t, models.Received, issue.Status)
	assert.Equal(t, models.PriorityNormal, issue.Priority)
	assert.Equal(t, "Jane K", issue.ReporterName)
	assert.WithinDuration(t, time.Now(), issue.CreatedAt, time.Second)
	require.Len(t, store.inserted, 1)
}

func TestSubmitDefaultsAnonymousReporter(t *testing.T) {
	store := newFakeIssueStore()
	svc := NewIssueService(store)

	issue, err := svc.Submit(context.Background(), SubmitInput{
		Title:       "Blocked drainage",
		Description: "Storm drainage along the main road is completely blocked",
		Category:    "Roads",
		Ward:        "Kapsoit",
	})
	require.NoError(t, err)
	assert.Equal(t, AnonymousReporter, issue.ReporterName)

	// Whitespace-only names count as absent too
	issue, err = svc.Submit(context.Background(), SubmitInput{
		Title:        "Blocked drainage",
		Description:  "Storm drainage along the main road is completely blocked",
		Category:     "Roads",
		Ward:         "Kapsoit",
		ReporterName: "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, AnonymousReporter, issue.ReporterName)
}

func TestSubmitNormalizesAbsentOptionals(t *testing.T) {
	store := newFakeIssueStore()
	svc := NewIssueService(store)

	issue, err := svc.Submit(context.Background(), SubmitInput{
		Title:       "Broken water pipe",
		Description: "The main pipe near the market has been leaking for three days",
		Category:    "Water",
		Ward:        "Kapsoit",
	})
	require.NoError(t, err)

	assert.Equal(t, "Broken water pipe", issue.Title)
	assert.Equal(t, models.Received, issue.Status)
	assert.Equal(t, models.PriorityNormal, issue.Priority)
	assert.Equal(t, AnonymousReporter, issue.ReporterName)
	assert.Nil(t, issue.ReporterPhone)
	assert.Nil(t, issue.LocationLat)
	assert.Nil(t, issue.LocationLng)
	assert.Nil(t, issue.ImageURL)

	// Empty phone strings are stored as null, not ""
	issue, err = svc.Submit(context.Background(), SubmitInput{
		Title:         "Broken water pipe",
		Description:   "The main pipe near the market has been leaking for three days",
		Category:      "Water",
		Ward:          "Kapsoit",
		ReporterPhone: strPtr(" "),
	})
	require.NoError(t, err)
	assert.Nil(t, issue.ReporterPhone)
}

func TestSubmitRejectsUnpairedLocation(t *testing.T) {
	store := newFakeIssueStore()
	svc := NewIssueService(store)

	_, err := svc.Submit(context.Background(), SubmitInput{
		Title:       "Collapsed bridge railing",
		Description: "The footbridge railing collapsed and it is dangerous at night",
		Category:    "Roads",
		Ward:        "Kipchebor",
		LocationLat: floatPtr(-0.366),
	})
	assert.ErrorIs(t, err, ErrUnpairedLocation)

	_, err = svc.Submit(context.Background(), SubmitInput{
		Title:       "Collapsed bridge railing",
		Description: "The footbridge railing collapsed and it is dangerous at night",
		Category:    "Roads",
		Ward:        "Kipchebor",
		LocationLng: floatPtr(35.283),
	})
	assert.ErrorIs(t, err, ErrUnpairedLocation)
	assert.Empty(t, store.inserted)

	issue, err := svc.Submit(context.Background(), SubmitInput{
		Title:       "Collapsed bridge railing",
		Description: "The footbridge railing collapsed and it is dangerous at night",
		Category:    "Roads",
		Ward:        "Kipchebor",
		LocationLat: floatPtr(-0.366),
		LocationLng: floatPtr(35.283),
	})
	require.NoError(t, err)
	assert.Equal(t, -0.366, *issue.LocationLat)
	assert.Equal(t, 35.283, *issue.LocationLng)
}

func TestSubmitRejectsUnknownEnums(t *testing.T) {
	store := newFakeIssueStore()
	svc := NewIssueService(store)

	_, err := svc.Submit(context.Background(), SubmitInput{
		Title:       "Dumping near the river",
		Description: "People are dumping construction waste next to the river bank",
		Category:    "Garbage",
		Ward:        "Kapsaos",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Submit(context.Background(), SubmitInput{
		Title:       "Dumping near the river",
		Description: "People are dumping construction waste next to the river bank",
		Category:    "Other",
		Ward:        "Nairobi",
	})
	assert.ErrorIs(t, err, ErrInvalidWard)
	assert.Empty(t, store.inserted)
}

func TestSubmitSurfacesPersistenceFailure(t *testing.T) {
	store := newFakeIssueStore()
	store.insertErr = errors.New("connection reset")
	svc := NewIssueService(store)

	_, err := svc.Submit(context.Background(), SubmitInput{
		Title:       "Broken water pipe",
		Description: "The main pipe near the market has been leaking for three days",
		Category:    "Water",
		Ward:        "Kapsoit",
	})
	assert.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	store := newFakeIssueStore()
	svc := NewIssueService(store)

	err := svc.UpdateStatus(context.Background(), "abc123", "Under Review")
	require.NoError(t, err)
	assert.Equal(t, models.UnderReview, store.statusSets["abc123"])

	// Any stage is reachable from any other, including backwards
	err = svc.UpdateStatus(context.Background(), "abc123", "Received")
	require.NoError(t, err)
	assert.Equal(t, models.Received, store.statusSets["abc123"])

	err = svc.UpdateStatus(context.Background(), "abc123", "Closed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusSurfacesStoreFailure(t *testing.T) {
	store := newFakeIssueStore()
	store.updateErr = errors.New("write concern error")
	svc := NewIssueService(store)

	err := svc.UpdateStatus(context.Background(), "abc123", "Forwarded")
	assert.Error(t, err)
	assert.Empty(t, store.statusSets)
}

func TestUpdatePriority(t *testing.T) {
	store := newFakeIssueStore()
	svc := NewIssueService(store)

	err := svc.UpdatePriority(context.Background(), "abc123", "Critical")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityCritical, store.prioritySet["abc123"])

	err = svc.UpdatePriority(context.Background(), "abc123", "Urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestListPassesThrough(t *testing.T) {
	store := newFakeIssueStore()
	store.issues = []models.Issue{
		{Title: "Newest"},
		{Title: "Oldest"},
	}
	svc := NewIssueService(store)

	issues, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "Newest", issues[0].Title)
}
