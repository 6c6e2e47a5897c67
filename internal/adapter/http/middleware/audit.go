package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"cashout-gateway/internal/core/domain"
	"cashout-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records what the services do not audit themselves: referral
// housekeeping and requests refused at the edge (401 and 429).
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		action, resourceType := mapRequestToAction(c.FullPath(), c.Request.Method, status)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       UserID(c),
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRequestToAction(route, method string, status int) (domain.AuditAction, string) {
	switch status {
	case http.StatusUnauthorized:
		return domain.AuditActionAccessDenied, "session"
	case http.StatusTooManyRequests:
		return domain.AuditActionRateLimited, "session"
	}
	if status < 200 || status >= 300 {
		return "", ""
	}

	switch {
	case route == "/api/v1/referrals/apply" && method == http.MethodPost:
		return domain.AuditActionReferralApplied, "referral"
	case route == "/api/v1/referrals/gate" && method == http.MethodDelete:
		return domain.AuditActionGateCleared, "referral"
	}
	return "", ""
}
