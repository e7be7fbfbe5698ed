package handlers

import (
	"net/http"

	"organisation-api/internal/auth"
	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser handles GET /api/users/:id
// @Summary Get user by ID
// @Description Get a user visible to the caller: the caller themselves or someone sharing an organisation
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.UserResponse} "User record fetched successfully"
// @Failure 403 {object} ErrorResponse "Missing or invalid credential"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrUserNotFound)
		return
	}

	user, err := h.service.GetUser(c, identity.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User record fetched successfully", user)
}
