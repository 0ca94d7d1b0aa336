// internal/workflows/jobsearch/service_test.go
package jobsearch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/models"
)

type fakeSearchClient struct {
	mu      sync.Mutex
	calls   []models.FilterCriteria
	respond func(call int, criteria models.FilterCriteria) ([]models.Job, error)
}

func (f *fakeSearchClient) SearchJobs(_ context.Context, criteria models.FilterCriteria) ([]models.Job, error) {
	f.mu.Lock()
	f.calls = append(f.calls, criteria)
	call := len(f.calls)
	respond := f.respond
	f.mu.Unlock()

	if respond == nil {
		return []models.Job{}, nil
	}
	return respond(call, criteria)
}

func (f *fakeSearchClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSetField_TriggersQueryWithFullCriteria(t *testing.T) {
	client := &fakeSearchClient{}
	svc := NewService(client, logger.NewNoOpLogger())
	ctx := context.Background()

	require.NoError(t, svc.SetField(ctx, FieldWorkType, "Remote"))
	require.NoError(t, svc.SetField(ctx, FieldJobType, "Contract"))

	require.Equal(t, 2, client.callCount())
	last := client.calls[1]
	assert.Equal(t, "Remote", last.WorkType)
	assert.Equal(t, "Contract", last.JobType)
}

func TestSetField_UnknownFieldRejected(t *testing.T) {
	client := &fakeSearchClient{}
	svc := NewService(client, logger.NewNoOpLogger())

	err := svc.SetField(context.Background(), "salary", "100k")
	require.Error(t, err)
	assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeValidationFailed))
	assert.Equal(t, 0, client.callCount(), "rejected update must not query")
	assert.True(t, svc.Criteria().IsEmpty())
}

func TestAddSkill_IdempotentAndTrimmed(t *testing.T) {
	client := &fakeSearchClient{}
	svc := NewService(client, logger.NewNoOpLogger())
	ctx := context.Background()

	svc.AddSkill(ctx, " Go ")
	svc.AddSkill(ctx, "Go")
	svc.AddSkill(ctx, "")

	assert.Equal(t, []string{"Go"}, svc.Criteria().RequiredSkills)
	assert.Equal(t, 1, client.callCount(), "no-op adds must not re-query")
}

func TestFetch_FailureYieldsEmptySetAndMessage(t *testing.T) {
	client := &fakeSearchClient{
		respond: func(call int, _ models.FilterCriteria) ([]models.Job, error) {
			if call == 1 {
				return []models.Job{{ID: "a", Title: "Backend Engineer"}}, nil
			}
			return nil, commonerrors.NewTransportError("connection refused")
		},
	}
	svc := NewService(client, logger.NewNoOpLogger())
	ctx := context.Background()

	require.NoError(t, svc.SetField(ctx, FieldWorkType, "Remote"))
	require.Len(t, svc.Jobs(), 1)
	assert.Empty(t, svc.ErrMessage())

	require.NoError(t, svc.SetField(ctx, FieldJobType, "Contract"))
	assert.Empty(t, svc.Jobs(), "failed query replaces the set with empty")
	assert.NotEmpty(t, svc.ErrMessage())

	// a later success clears the recorded failure
	client.respond = func(int, models.FilterCriteria) ([]models.Job, error) {
		return []models.Job{{ID: "b"}}, nil
	}
	svc.Refresh(ctx)
	assert.Len(t, svc.Jobs(), 1)
	assert.Empty(t, svc.ErrMessage())
}

func TestFetch_StaleResponseNeverOverwritesNewer(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	client := &fakeSearchClient{
		respond: func(call int, _ models.FilterCriteria) ([]models.Job, error) {
			if call == 1 {
				close(firstStarted)
				<-releaseFirst
				return []models.Job{{ID: "stale"}}, nil
			}
			return []models.Job{{ID: "fresh"}}, nil
		},
	}
	svc := NewService(client, logger.NewNoOpLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.SetField(ctx, FieldWorkType, "Remote")
	}()

	<-firstStarted
	require.NoError(t, svc.SetField(ctx, FieldJobType, "Contract"))
	require.Len(t, svc.Jobs(), 1)
	require.Equal(t, "fresh", svc.Jobs()[0].ID)

	close(releaseFirst)
	wg.Wait()

	require.Len(t, svc.Jobs(), 1)
	assert.Equal(t, "fresh", svc.Jobs()[0].ID, "slow stale response must be discarded")
}

func TestCriteria_ReturnsCopy(t *testing.T) {
	client := &fakeSearchClient{}
	svc := NewService(client, logger.NewNoOpLogger())
	ctx := context.Background()

	svc.AddSkill(ctx, "Go")
	criteria := svc.Criteria()
	criteria.RequiredSkills[0] = "mutated"

	assert.Equal(t, []string{"Go"}, svc.Criteria().RequiredSkills)
}
