package handlers

import (
	"net/http"

	"organisation-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create a user together with a default organisation and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param account body service.RegisterRequest true "Account data"
// @Success 201 {object} SuccessResponse{data=service.AuthResponse} "Registration successful"
// @Failure 400 {object} ErrorResponse "Registration unsuccessful"
// @Failure 422 {object} ValidationErrorResponse "Missing or invalid fields"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.service.Register(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Registration successful", response)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} SuccessResponse{data=service.AuthResponse} "Login successful"
// @Failure 401 {object} ErrorResponse "Authentication failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.service.Login(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", response)
}
