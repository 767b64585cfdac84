package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock
}

func cityRows(id int64, deleted bool, active bool) *pgxmock.Rows {
	now := time.Now()
	var deletedAt *time.Time
	if deleted {
		deletedAt = &now
	}
	return pgxmock.NewRows(schema.Cities.Columns).
		AddRow(id, "Pune", "Maharashtra", active, deleted, deletedAt, now, now)
}

func TestStore_SoftDelete(t *testing.T) {
	mock := newMock(t)
	store := New(mock, schema.Cities)

	mock.ExpectQuery(`UPDATE cities SET is_deleted = \$1, deleted_at = now\(\), updated_at = now\(\)`).
		WithArgs(true, int64(5)).
		WillReturnRows(cityRows(5, true, true))

	rec, err := store.SoftDelete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), rec.ID())
	assert.Equal(t, true, rec["is_deleted"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SoftDelete_NotFound(t *testing.T) {
	mock := newMock(t)
	store := New(mock, schema.Cities)

	mock.ExpectQuery(`UPDATE cities`).
		WithArgs(true, int64(99)).
		WillReturnRows(pgxmock.NewRows(schema.Cities.Columns))

	_, err := store.SoftDelete(context.Background(), 99)

	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SoftDelete_UnsupportedTable(t *testing.T) {
	mock := newMock(t)
	store := New(mock, schema.PaymentModes)

	_, err := store.SoftDelete(context.Background(), 1)

	assert.True(t, errors.Is(err, domain.ErrUnsupportedOperation), "got %v", err)
	// No SQL expectations: nothing may reach the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ToggleActive(t *testing.T) {
	mock := newMock(t)
	store := New(mock, schema.Cities)

	mock.ExpectQuery(`UPDATE cities SET is_active = NOT is_active, updated_at = now\(\)`).
		WithArgs(int64(5)).
		WillReturnRows(cityRows(5, false, false))

	rec, err := store.ToggleActive(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, false, rec["is_active"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ToggleActive_UnsupportedTable(t *testing.T) {
	mock := newMock(t)
	store := New(mock, schema.Leads)

	_, err := store.ToggleActive(context.Background(), 1)

	assert.True(t, errors.Is(err, domain.ErrUnsupportedOperation), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SoftDelete_StorageFaultSurfaced(t *testing.T) {
	mock := newMock(t)
	store := New(mock, schema.Cities)

	cause := errors.New("connection reset")
	mock.ExpectQuery(`UPDATE cities`).
		WithArgs(true, int64(5)).
		WillReturnError(cause)

	_, err := store.SoftDelete(context.Background(), 5)

	assert.True(t, errors.Is(err, cause), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
