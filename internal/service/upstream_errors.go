package service

import (
	"net/http"

	"cashout-gateway/internal/core/ports"
	"cashout-gateway/pkg/apperror"
)

// upstreamError wraps a failed remote call, carrying the remote body to the
// client as details.
func upstreamError(message string, status int, err error) *apperror.AppError {
	appErr := apperror.Upstream(message, status, err)
	if ue, ok := ports.AsUpstreamError(err); ok {
		return appErr.WithDetails(ue.Details())
	}
	return appErr
}

// relayStatus is the status a failed remote call maps to: remote 5xx is
// passed through, everything else is a bad gateway.
func relayStatus(err error) int {
	if ue, ok := ports.AsUpstreamError(err); ok {
		return ue.RelayStatus()
	}
	return http.StatusBadGateway
}

// rejectedError is returned when the remote service answered Success=false.
func rejectedError(message, remoteMessage string) *apperror.AppError {
	appErr := apperror.Upstream(message, http.StatusBadGateway, nil)
	if remoteMessage != "" {
		return appErr.WithDetails(remoteMessage)
	}
	return appErr
}

// paymentFailed is the generic failure of a purchase step.
func paymentFailed(err error) *apperror.AppError {
	appErr := apperror.ErrPaymentFailed(err)
	if ue, ok := ports.AsUpstreamError(err); ok {
		return appErr.WithDetails(ue.Details())
	}
	return appErr
}

// remoteRejection returns the remote message when err is a Success=false
// answer delivered with a 2xx status.
func remoteRejection(err error) (string, bool) {
	ue, ok := ports.AsUpstreamError(err)
	if !ok || ue.Status < http.StatusOK || ue.Status >= http.StatusMultipleChoices {
		return "", false
	}
	return ue.Message, true
}
