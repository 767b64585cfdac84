package lead

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurdesk/brokerage-backend/internal/domain"
	"github.com/insurdesk/brokerage-backend/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (func fields)
// ===========================================================================

type mockLeadRepo struct {
	CreateFunc func(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	return nil, domain.ErrNotFound
}

func (m *mockLeadRepo) List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, error) {
	return nil, nil
}

func (m *mockLeadRepo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	out := *l
	out.ID = 1
	out.Status = domain.LeadStatusPending
	return &out, nil
}

type mockAuditRepo struct {
	records []domain.AuditRecord
}

func (m *mockAuditRepo) Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error) {
	m.records = append(m.records, rec)
	return rec, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_Create(t *testing.T) {
	audit := &mockAuditRepo{}
	svc := New(&mockLeadRepo{}, audit, passthroughTx{})

	ctx := ctxutil.WithActorID(context.Background(), 42)
	created, err := svc.Create(ctx, CreateInput{CustomerName: "Asha Verma", Phone: "9822011223"})

	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusPending, created.Status)

	require.Len(t, audit.records, 1)
	assert.Equal(t, domain.AuditActionCreate, audit.records[0].Action)
	require.NotNil(t, audit.records[0].ActorID)
	assert.Equal(t, int64(42), *audit.records[0].ActorID)
}

func TestService_Create_Validation(t *testing.T) {
	svc := New(&mockLeadRepo{}, &mockAuditRepo{}, passthroughTx{})

	_, err := svc.Create(context.Background(), CreateInput{Phone: "9822011223"})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = svc.Create(context.Background(), CreateInput{CustomerName: "Asha Verma"})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestService_Create_RepoFailureAbortsAudit(t *testing.T) {
	cause := errors.New("insert failed")
	audit := &mockAuditRepo{}
	svc := New(&mockLeadRepo{
		CreateFunc: func(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
			return nil, cause
		},
	}, audit, passthroughTx{})

	_, err := svc.Create(context.Background(), CreateInput{CustomerName: "X", Phone: "1"})

	assert.True(t, errors.Is(err, cause))
	assert.Empty(t, audit.records)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := New(&mockLeadRepo{}, &mockAuditRepo{}, passthroughTx{})

	_, err := svc.List(context.Background(), domain.LeadFilter{Status: "bogus"})

	assert.True(t, errors.Is(err, domain.ErrValidation))
}
