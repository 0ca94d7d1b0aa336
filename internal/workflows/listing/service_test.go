// internal/workflows/listing/service_test.go
package listing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/models"
)

type fakeAPI struct {
	createCalls  []models.ListingDraft
	createMonths []int
	createErr    error
	listings     []models.Job
	listingsErr  error
	deleteCalls  []string
	deleteErr    error
}

func (f *fakeAPI) CreateListing(_ context.Context, draft models.ListingDraft, months int) error {
	f.createCalls = append(f.createCalls, draft)
	f.createMonths = append(f.createMonths, months)
	return f.createErr
}

func (f *fakeAPI) CompanyListings(_ context.Context) ([]models.Job, error) {
	return f.listings, f.listingsErr
}

func (f *fakeAPI) DeleteListing(_ context.Context, listingID string) error {
	f.deleteCalls = append(f.deleteCalls, listingID)
	return f.deleteErr
}

type fakeConfirmer struct {
	answer bool
	asked  int
}

func (f *fakeConfirmer) Confirm(string) bool {
	f.asked++
	return f.answer
}

func fillValidDraft(d *Draft) {
	_ = d.SetField(FieldTitle, "Backend Engineer")
	_ = d.SetField(FieldDescription, "Build services")
	_ = d.SetField(FieldLocation, "Berlin")
	_ = d.SetField(FieldWorkType, "Remote")
	_ = d.SetField(FieldJobType, "Full-Time")
	_ = d.SetField(FieldExperienceLevel, "Associate")
	_ = d.SetField(FieldExperienceMonths, "24")
	_ = d.SetField(FieldSalaryRange, "50k - 75k")
	d.AddSkill("Go")
}

func TestCreate_ValidDraftSubmitsResetsAndRefetches(t *testing.T) {
	api := &fakeAPI{listings: []models.Job{{ID: "listing-1"}}}
	svc := NewService(api, &fakeConfirmer{answer: true}, logger.NewNoOpLogger())
	fillValidDraft(svc.Draft())

	require.NoError(t, svc.Create(context.Background()))

	require.Len(t, api.createCalls, 1)
	assert.Equal(t, "Backend Engineer", api.createCalls[0].Title)
	assert.Equal(t, []int{24}, api.createMonths)
	assert.Equal(t, models.ListingDraft{}, svc.Draft().Form(), "draft is discarded after submission")
	assert.Len(t, svc.Listings(), 1, "collection comes from the re-fetch")
}

func TestCreate_LeadingZeroMonthsNormalized(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, &fakeConfirmer{answer: true}, logger.NewNoOpLogger())
	fillValidDraft(svc.Draft())
	require.NoError(t, svc.Draft().SetField(FieldExperienceMonths, "007"))

	require.NoError(t, svc.Create(context.Background()))
	assert.Equal(t, []int{7}, api.createMonths)
}

func TestCreate_InvalidDraftNeverSubmits(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"unknown work type", FieldWorkType, "Moon"},
		{"unknown salary range", FieldSalaryRange, "1M+"},
		{"negative months", FieldExperienceMonths, "-3"},
		{"non-numeric months", FieldExperienceMonths, "two years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			svc := NewService(api, &fakeConfirmer{answer: true}, logger.NewNoOpLogger())
			fillValidDraft(svc.Draft())
			require.NoError(t, svc.Draft().SetField(tt.field, tt.value))

			err := svc.Create(context.Background())
			require.Error(t, err)
			assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeValidationFailed))
			assert.Empty(t, api.createCalls)
			assert.NotEqual(t, models.ListingDraft{}, svc.Draft().Form(), "draft survives a failed validation")
		})
	}
}

func TestCreate_MissingRequiredFieldsRejected(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, &fakeConfirmer{answer: true}, logger.NewNoOpLogger())
	require.NoError(t, svc.Draft().SetField(FieldTitle, "No description"))

	err := svc.Create(context.Background())
	require.Error(t, err)
	assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeValidationFailed))
	assert.Empty(t, api.createCalls)
}

func TestCreate_BackendFailureKeepsDraft(t *testing.T) {
	api := &fakeAPI{createErr: commonerrors.NewAPIStatusError(500, "Unable to process request")}
	svc := NewService(api, &fakeConfirmer{answer: true}, logger.NewNoOpLogger())
	fillValidDraft(svc.Draft())

	err := svc.Create(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Backend Engineer", svc.Draft().Form().Title)
}

func TestDraft_AddSkillDeduplicates(t *testing.T) {
	d := NewDraft()
	d.AddSkill("Go")
	d.AddSkill(" Go ")
	d.AddSkill("")
	d.AddSkill("SQL")

	assert.Equal(t, []string{"Go", "SQL"}, d.Form().RequiredSkills)
}

func TestDelete_DeclinedIssuesNoRequest(t *testing.T) {
	api := &fakeAPI{}
	confirmer := &fakeConfirmer{answer: false}
	svc := NewService(api, confirmer, logger.NewNoOpLogger())

	err := svc.Delete(context.Background(), "listing-1")
	require.Error(t, err)
	assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeConfirmationDeclined))
	assert.Equal(t, 1, confirmer.asked)
	assert.Empty(t, api.deleteCalls)
}

func TestDelete_SuccessRefetchesCollection(t *testing.T) {
	api := &fakeAPI{listings: []models.Job{{ID: "listing-2"}}}
	svc := NewService(api, &fakeConfirmer{answer: true}, logger.NewNoOpLogger())

	require.NoError(t, svc.Delete(context.Background(), "listing-1"))
	assert.Equal(t, []string{"listing-1"}, api.deleteCalls)
	require.Len(t, svc.Listings(), 1)
	assert.Equal(t, "listing-2", svc.Listings()[0].ID)
}

func TestDelete_FailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAPI{
		listings:  []models.Job{{ID: "listing-1"}},
		deleteErr: commonerrors.NewAPIStatusError(403, "You are not authorized to delete this listing"),
	}
	svc := NewService(api, &fakeConfirmer{answer: true}, logger.NewNoOpLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.Delete(context.Background(), "listing-1")
	require.Error(t, err)
	assert.Equal(t, "You are not authorized to delete this listing", commonerrors.UserMessage(err))
	assert.Len(t, svc.Listings(), 1)
}
