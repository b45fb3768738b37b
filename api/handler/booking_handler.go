package handler

import (
	"net/http"

	"github.com/fekalegi/property-management-system/api/dto"
	"github.com/fekalegi/property-management-system/internal/booking"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	service *booking.Service
}

func NewBookingHandler(s *booking.Service) *BookingHandler {
	return &BookingHandler{service: s}
}

func (h *BookingHandler) RegisterBookingRoutes(g *echo.Group) {
	g.POST("/book-house", h.BookHouse)
	g.GET("/bookings", h.ListBookings)
}

// BookHouse godoc
// @Summary     Book a house
// @Description Records a booking request. All four fields are required; date is RFC 3339 or YYYY-MM-DD.
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       request body dto.BookHouseRequest true "Booking"
// @Success     201 {object} dto.BookingResponse
// @Failure     400 {object} dto.ErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/book-house [post]
func (h *BookingHandler) BookHouse(c echo.Context) error {
	var req dto.BookHouseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errInvalidBody})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All fields are required"})
	}

	b, err := h.service.Create(c.Request().Context(), booking.CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Date:  req.Date,
		House: req.House,
	})
	if err != nil {
		return respondInternal(c, err, "Failed to create booking")
	}

	return c.JSON(http.StatusCreated, dto.BookingResponse{
		Message: "Booking confirmed!",
		Booking: b,
	})
}

// ListBookings godoc
// @Summary     List bookings
// @Tags        bookings
// @Produce     json
// @Success     200 {array} domain.Booking
// @Failure     500 {object} dto.ErrorResponse
// @Router      /api/bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondInternal(c, err, "Failed to fetch bookings")
	}
	return c.JSON(http.StatusOK, bookings)
}
