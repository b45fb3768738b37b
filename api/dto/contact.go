package dto

type ContactRequest struct {
	Name    string `json:"name" example:"Ada"`
	Email   string `json:"email" example:"ada@example.com"`
	Phone   string `json:"phone" example:"555-0199"`
	Message string `json:"message" example:"Is the two-bedroom still available?"`
}
