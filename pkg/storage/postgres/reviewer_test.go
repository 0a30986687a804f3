package postgres_test

import (
	"context"
	"sync"
	"testing"

	"lending/pkg/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_EligibleReviewersRanking(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	stored, err := pg.StoreReviewers(ctx,
		domain.Reviewer{
			Name:           "Busy Senior",
			Role:           "senior_underwriter",
			AuthorityLimit: decimal.NewFromInt(5000000),
			MaxWorkload:    4,
			Active:         true,
		},
		domain.Reviewer{
			Name:           "Idle Junior",
			Role:           "underwriter",
			AuthorityLimit: decimal.NewFromInt(1000000),
			MaxWorkload:    6,
			Active:         true,
		},
		domain.Reviewer{
			Name:           "Low Authority",
			Role:           "underwriter",
			AuthorityLimit: decimal.NewFromInt(100000),
			MaxWorkload:    6,
			Active:         true,
		},
		domain.Reviewer{
			Name:           "Inactive",
			Role:           "senior_underwriter",
			AuthorityLimit: decimal.NewFromInt(5000000),
			MaxWorkload:    6,
			Active:         false,
		},
	)
	require.NoError(t, err)
	require.Len(t, stored, 4)

	// Load the senior reviewer with three open tasks.
	for range 3 {
		ok, err := pg.IncrementWorkload(ctx, stored[0].ID)
		require.NoError(t, err)
		require.True(t, ok)
	}

	eligible, err := pg.EligibleReviewers(ctx, decimal.NewFromInt(500000))
	require.NoError(t, err)

	// Low-authority and inactive reviewers are filtered out, the rest are
	// ranked by spare capacity.
	require.Len(t, eligible, 2)
	assert.Equal(t, "Idle Junior", eligible[0].Name)
	assert.Equal(t, "Busy Senior", eligible[1].Name)
}

func TestPgSQL_IncrementWorkloadBoundedUnderConcurrency(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored, err := pg.StoreReviewers(ctx, domain.Reviewer{
		Name:           "Sam Okafor",
		Role:           "underwriter",
		AuthorityLimit: decimal.NewFromInt(1000000),
		MaxWorkload:    5,
		Active:         true,
	})
	require.NoError(t, err)
	id := stored[0].ID

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := pg.IncrementWorkload(ctx, id)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Exactly max_workload increments win; the rest are refused.
	assert.Equal(t, 5, granted)

	after, err := pg.ReviewerByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, after.CurrentWorkload)
	assert.Equal(t, 0, after.SpareCapacity())
}

func TestPgSQL_DecrementWorkloadClampsAtZero(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored, err := pg.StoreReviewers(ctx, domain.Reviewer{
		Name:           "Sam Okafor",
		Role:           "underwriter",
		AuthorityLimit: decimal.NewFromInt(1000000),
		MaxWorkload:    5,
		Active:         true,
	})
	require.NoError(t, err)
	id := stored[0].ID

	ok, err := pg.IncrementWorkload(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, pg.DecrementWorkload(ctx, id))
	require.NoError(t, pg.DecrementWorkload(ctx, id))

	after, err := pg.ReviewerByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, after.CurrentWorkload)
}
