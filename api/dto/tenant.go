package dto

type CreateTenantRequest struct {
	Name      string `json:"name" example:"Jane Doe"`
	Apartment string `json:"apartment" example:"101"`
	Contact   string `json:"contact" example:"555-0100"`
	Status    string `json:"status" validate:"omitempty,oneof=Active Inactive" example:"Active" enums:"Active,Inactive"`
}

// UpdateTenantRequest fields left out of the body are not modified.
type UpdateTenantRequest struct {
	Name      *string `json:"name,omitempty" example:"Jane Doe"`
	Apartment *string `json:"apartment,omitempty" example:"102"`
	Contact   *string `json:"contact,omitempty" example:"555-0101"`
}
