package handlers

import (
	"net/http"

	"organisation-api/internal/auth"
	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganisationHandler handles HTTP requests for organisations
type OrganisationHandler struct {
	service service.OrganisationServiceInterface
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(service service.OrganisationServiceInterface) *OrganisationHandler {
	return &OrganisationHandler{service: service}
}

// ListOrganisations handles GET /api/organisations
// @Summary List the caller's organisations
// @Description List every organisation the caller is a member of, oldest first
// @Tags organisations
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse{data=service.OrganisationListResponse} "Organisations fetched successfully"
// @Failure 403 {object} ErrorResponse "Missing or invalid credential"
// @Security BearerAuth
// @Router /api/organisations [get]
func (h *OrganisationHandler) ListOrganisations(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	orgs, err := h.service.ListForMember(c, identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Organisations fetched successfully", service.OrganisationListResponse{Organisations: orgs})
}

// GetOrganisation handles GET /api/organisations/:orgId
// @Summary Get organisation by ID
// @Description Get a specific organisation by its UUID
// @Tags organisations
// @Accept json
// @Produce json
// @Param orgId path string true "Organisation ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.OrganisationResponse} "Organisation record fetched successfully"
// @Failure 403 {object} ErrorResponse "Missing or invalid credential"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Security BearerAuth
// @Router /api/organisations/{orgId} [get]
func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		respondError(c, apperrors.ErrOrganisationNotFound)
		return
	}

	org, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Organisation record fetched successfully", org)
}

// CreateOrganisation handles POST /api/organisations
// @Summary Create a new organisation
// @Description Create an organisation with the caller as its first member
// @Tags organisations
// @Accept json
// @Produce json
// @Param organisation body service.CreateOrganisationRequest true "Organisation data"
// @Success 201 {object} SuccessResponse{data=service.OrganisationResponse} "Organisation created successfully"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Missing or invalid credential"
// @Failure 422 {object} ValidationErrorResponse "Name is required"
// @Security BearerAuth
// @Router /api/organisations [post]
func (h *OrganisationHandler) CreateOrganisation(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	var req service.CreateOrganisationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Create(c, identity.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Organisation created successfully", org)
}

// AddUser handles POST /api/organisations/:orgId/users
// @Summary Add a user to an organisation
// @Description Make an existing user a member of the organisation. Adding an existing member succeeds without change.
// @Tags organisations
// @Accept json
// @Produce json
// @Param orgId path string true "Organisation ID (UUID)"
// @Param member body service.AddUserRequest true "User to add"
// @Success 200 {object} SuccessResponse "User added to organisation successfully"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Missing or invalid credential"
// @Failure 404 {object} ErrorResponse "Organisation or user not found"
// @Failure 422 {object} ValidationErrorResponse "User id is required"
// @Security BearerAuth
// @Router /api/organisations/{orgId}/users [post]
func (h *OrganisationHandler) AddUser(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		respondError(c, apperrors.ErrOrganisationNotFound)
		return
	}

	var req service.AddUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.AddUser(c, orgID, &req); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User added to organisation successfully", nil)
}
