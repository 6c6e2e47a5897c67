package handler

import (
	"errors"
	"net/http"

	"cashout-gateway/internal/adapter/http/dto"
	"cashout-gateway/pkg/apperror"
	"cashout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body into req, writing the error
// envelope and returning false when it cannot.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrBodyTooLarge())
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}
