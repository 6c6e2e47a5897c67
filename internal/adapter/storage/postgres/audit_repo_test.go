package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"cashout-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditLog() *domain.AuditLog {
	return &domain.AuditLog{
		ID:           uuid.New(),
		UserID:       "USR_1",
		Action:       domain.AuditActionExternalPayment,
		ResourceType: "payment",
		ResourceID:   "TX-1",
		Details:      `{"amount":"25.50"}`,
		IPAddress:    "10.0.0.1",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	l := newTestAuditLog()

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(l.ID, l.UserID, string(l.Action), l.ResourceType, l.ResourceID, l.Details, l.IPAddress, l.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_EmptyDetailsIsNull(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	l := newTestAuditLog()
	l.Details = ""

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(l.ID, l.UserID, string(l.Action), l.ResourceType, l.ResourceID, nil, l.IPAddress, l.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnError(errors.New("connection reset"))

	err = NewAuditRepository(mock).Create(context.Background(), newTestAuditLog())
	assert.ErrorContains(t, err, "insert audit log")
}

func TestAuditRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	l := newTestAuditLog()

	rows := pgxmock.NewRows([]string{"id", "user_id", "action", "resource_type", "resource_id", "details", "ip_address", "created_at"}).
		AddRow(l.ID, l.UserID, string(l.Action), l.ResourceType, l.ResourceID, l.Details, l.IPAddress, l.CreatedAt)
	mock.ExpectQuery("SELECT .+ FROM audit_logs WHERE user_id").
		WithArgs("USR_1", 10).
		WillReturnRows(rows)

	logs, err := repo.ListByUser(context.Background(), "USR_1", 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, l.ID, logs[0].ID)
	assert.Equal(t, domain.AuditActionExternalPayment, logs[0].Action)
	assert.Equal(t, l.Details, logs[0].Details)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_ListByUser_DefaultLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM audit_logs").
		WithArgs("USR_1", defaultAuditListLimit).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "action", "resource_type", "resource_id", "details", "ip_address", "created_at"}))

	logs, err := NewAuditRepository(mock).ListByUser(context.Background(), "USR_1", 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
