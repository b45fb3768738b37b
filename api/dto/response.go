package dto

type MessageResponse struct {
	Message string `json:"message" example:"Tenant deleted successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch tenants"`
}
