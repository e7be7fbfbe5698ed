package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// Failure statuses carried in the "status" field of error envelopes
const (
	statusSuccess       = "success"
	statusBadRequest    = "Bad request"
	statusForbidden     = "Forbidden"
	statusNotFound      = "Not found"
	statusInternalError = "Internal server error"
)

// SuccessResponse is the envelope for successful operations
type SuccessResponse struct {
	Status  string      `json:"status" example:"success"`
	Message string      `json:"message" example:"Organisation created successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed operations
type ErrorResponse struct {
	Status     string `json:"status" example:"Bad request"`
	Message    string `json:"message" example:"Registration unsuccessful"`
	StatusCode int    `json:"statusCode" example:"400"`
}

// ValidationErrorResponse lists every invalid request field
type ValidationErrorResponse struct {
	Errors apperrors.ValidationErrors `json:"errors"`
}

func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, SuccessResponse{Status: statusSuccess, Message: message, Data: data})
}

func respondFailure(c *gin.Context, code int, status, message string) {
	c.JSON(code, ErrorResponse{Status: status, Message: message, StatusCode: code})
}

// respondError maps the error taxonomy onto HTTP responses. Anything outside the
// taxonomy is logged and reported as a bare 500.
func respondError(c *gin.Context, err error) {
	if fieldErrs, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	switch {
	case apperrors.IsAuthentication(err):
		respondFailure(c, http.StatusUnauthorized, statusBadRequest, err.Error())
	case apperrors.IsAuthorization(err):
		respondFailure(c, http.StatusForbidden, statusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		respondFailure(c, http.StatusNotFound, statusNotFound, err.Error())
	case apperrors.IsPersistence(err):
		respondFailure(c, http.StatusBadRequest, statusBadRequest, err.Error())
	default:
		logger.WithContext(c).WithError(err).Error("Request failed")
		respondFailure(c, http.StatusInternalServerError, statusInternalError, statusInternalError)
	}
}

// bindJSON decodes the request body into obj. An absent body decodes as an empty
// object so field validation can report what is missing; a malformed one is a 400.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		respondFailure(c, http.StatusBadRequest, statusBadRequest, "Invalid request body")
		return false
	}
	return true
}
