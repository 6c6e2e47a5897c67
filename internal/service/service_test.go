package service

import (
	"context"
	"io"
	"net/http"
	"testing"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func assertAppError(t *testing.T, err error, expectedCode string) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
	return appErr
}

func upstreamFailure(status int, body string) error {
	return &ports.UpstreamError{Service: "test", Status: status, Body: []byte(body), Message: http.StatusText(status)}
}

// auditRecorder is an in-process ports.AuditService for assertions.
type auditRecorder struct {
	entries []*domain.AuditLog
}

func (r *auditRecorder) Log(_ context.Context, entry *domain.AuditLog) {
	r.entries = append(r.entries, entry)
}

func (r *auditRecorder) actions() []domain.AuditAction {
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}
