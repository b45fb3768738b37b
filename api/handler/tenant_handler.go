package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/fekalegi/property-management-system/api/dto"
	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/fekalegi/property-management-system/internal/tenant"
	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	msgTenantNotFound = "Tenant not found"
)

// TenantHandler handles tenant operations
type TenantHandler struct {
	service *tenant.Service
}

// NewTenantHandler creates a new TenantHandler instance
func NewTenantHandler(s *tenant.Service) *TenantHandler {
	return &TenantHandler{service: s}
}

// RegisterTenantRoutes registers tenant-related HTTP routes
func (h *TenantHandler) RegisterTenantRoutes(g *echo.Group) {
	g.GET("/tenants", h.ListTenants)
	g.POST("/tenants", h.CreateTenant)
	g.PUT("/tenants/:id/status", h.ToggleStatus)
	g.PUT("/tenants/:id", h.UpdateTenant)
	g.DELETE("/tenants/:id", h.DeleteTenant)
}

// ListTenants godoc
// @Summary List tenants
// @Description Returns every tenant in creation order. Passing page or limit switches on pagination (page defaults to 1, limit to 10, limit is capped at 100).
// @Tags tenants
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {array} domain.Tenant
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tenants [get]
func (h *TenantHandler) ListTenants(c echo.Context) error {
	opts, err := parsePagination(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	tenants, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return respondInternal(c, err, "Failed to fetch tenants")
	}
	return c.JSON(http.StatusOK, tenants)
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Description Creates a tenant. Status defaults to Active.
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body dto.CreateTenantRequest true "Tenant"
// @Success 201 {object} domain.Tenant
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tenants [post]
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	var req dto.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errInvalidBody})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "status must be Active or Inactive"})
	}

	t, err := h.service.Create(c.Request().Context(), tenant.CreateInput{
		Name:      req.Name,
		Apartment: req.Apartment,
		Contact:   req.Contact,
		Status:    domain.TenantStatus(req.Status),
	})
	if err != nil {
		return respondInternal(c, err, "Failed to create tenant")
	}
	return c.JSON(http.StatusCreated, t)
}

// ToggleStatus godoc
// @Summary Toggle tenant status
// @Description Flips the tenant between Active and Inactive.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} domain.Tenant
// @Failure 404 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tenants/{id}/status [put]
func (h *TenantHandler) ToggleStatus(c echo.Context) error {
	t, err := h.service.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, msgTenantNotFound, "Failed to update status")
	}
	return c.JSON(http.StatusOK, t)
}

// UpdateTenant godoc
// @Summary Update a tenant
// @Description Overwrites name, apartment and contact. Omitted fields are kept.
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param request body dto.UpdateTenantRequest true "Fields to overwrite"
// @Success 200 {object} domain.Tenant
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c echo.Context) error {
	var req dto.UpdateTenantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errInvalidBody})
	}

	t, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.TenantPatch{
		Name:      req.Name,
		Apartment: req.Apartment,
		Contact:   req.Contact,
	})
	if err != nil {
		return respondError(c, err, msgTenantNotFound, "Failed to update tenant")
	}
	return c.JSON(http.StatusOK, t)
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Description Deletes a tenant by its ID.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err, msgTenantNotFound, "Failed to delete tenant")
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tenant deleted successfully"})
}

func parsePagination(c echo.Context) (domain.ListOptions, error) {
	pageStr := c.QueryParam("page")
	limitStr := c.QueryParam("limit")
	if pageStr == "" && limitStr == "" {
		return domain.ListOptions{}, nil
	}

	page, limit := defaultPage, defaultLimit
	var err error
	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return domain.ListOptions{}, errBadQuery("page")
		}
	}
	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return domain.ListOptions{}, errBadQuery("limit")
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	// The offset must fit in an int.
	if page-1 > math.MaxInt/limit {
		return domain.ListOptions{}, errBadQuery("page")
	}

	return domain.ListOptions{Offset: (page - 1) * limit, Limit: limit}, nil
}

type errBadQuery string

func (e errBadQuery) Error() string {
	return "Invalid '" + string(e) + "' parameter. Must be a positive integer."
}
