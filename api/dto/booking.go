package dto

import "github.com/fekalegi/property-management-system/internal/domain"

type BookHouseRequest struct {
	Name  string `json:"name" validate:"required" example:"John Smith"`
	Email string `json:"email" validate:"required" example:"john@example.com"`
	Date  string `json:"date" validate:"required" example:"2025-03-01"`
	House string `json:"house" validate:"required" example:"Villa Rosa"`
}

type BookingResponse struct {
	Message string          `json:"message" example:"Booking confirmed!"`
	Booking *domain.Booking `json:"booking"`
}
