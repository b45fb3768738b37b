package handler

import (
	"net/http"

	"github.com/fekalegi/property-management-system/api/dto"
	"github.com/fekalegi/property-management-system/internal/contact"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	service *contact.Service
}

func NewContactHandler(s *contact.Service) *ContactHandler {
	return &ContactHandler{service: s}
}

func (h *ContactHandler) RegisterContactRoutes(g *echo.Group) {
	g.POST("/contact", h.Submit)
	g.GET("/contacts", h.ListContacts)
}

// Submit godoc
// @Summary     Submit the contact form
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Param       request body dto.ContactRequest true "Contact form"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errInvalidBody})
	}

	_, err := h.service.Submit(c.Request().Context(), contact.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return respondInternal(c, err, "Failed to save contact")
	}
	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Form submitted successfully!"})
}

// ListContacts godoc
// @Summary     List contact submissions
// @Tags        contacts
// @Produce     json
// @Success     200 {array} domain.Contact
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondInternal(c, err, "Failed to fetch contacts")
	}
	return c.JSON(http.StatusOK, contacts)
}
