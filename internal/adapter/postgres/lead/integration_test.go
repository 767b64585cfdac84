//go:build integration

package lead_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/lead"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/lifecycle"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/testhelper"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

func createLead(t *testing.T, repo *lead.Repo) *domain.Lead {
	t.Helper()
	l, err := repo.Create(context.Background(), &domain.Lead{
		CustomerName: "Race Test",
		Phone:        "+91-90000-00001",
	})
	require.NoError(t, err)
	require.Equal(t, domain.LeadStatusPending, l.Status)
	return l
}

func TestUpdateStatus_CASRace(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := lead.New(pool)
	ctx := context.Background()

	l := createLead(t, repo)

	// Move into a state with more than one outgoing transition.
	_, err := repo.UpdateStatus(ctx, l.ID, domain.LeadStatusPending, domain.LeadStatusWaiting)
	require.NoError(t, err)

	// Two concurrent transitions from the same observed status. Exactly one
	// may win; the loser must see the concurrent modification error, never
	// a silent second write.
	targets := []domain.LeadStatus{domain.LeadStatusInterested, domain.LeadStatusCancelled}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.UpdateStatus(ctx, l.ID, domain.LeadStatusWaiting, target)
		}()
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrConcurrentModification):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactly one transition must win")
	assert.Equal(t, 1, losses, "the other must lose with ErrConcurrentModification")

	// The stored status is one of the two targets.
	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Contains(t, targets, got.Status)
}

func TestUpdateStatus_StaleFrom(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := lead.New(pool)
	ctx := context.Background()

	l := createLead(t, repo)

	// The lead is pending; a CAS conditioned on waiting must fail without
	// touching the row.
	_, err := repo.UpdateStatus(ctx, l.ID, domain.LeadStatusWaiting, domain.LeadStatusInterested)
	require.ErrorIs(t, err, domain.ErrConcurrentModification)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusPending, got.Status)
}

func TestUpdateStatus_MissingLead(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := lead.New(pool)

	_, err := repo.UpdateStatus(context.Background(), 99999999,
		domain.LeadStatusPending, domain.LeadStatusWaiting)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSoftDelete_Idempotent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := lead.New(pool)
	store := lifecycle.New(pool, schema.Leads)
	ctx := context.Background()

	l := createLead(t, repo)

	first, err := store.SoftDelete(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, true, first["is_deleted"])
	require.NotNil(t, first["deleted_at"])

	// Deleting again succeeds and refreshes the timestamp.
	second, err := store.SoftDelete(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, true, second["is_deleted"])
	require.NotNil(t, second["deleted_at"])
}
