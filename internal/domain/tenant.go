package domain

import "time"

type TenantStatus string

const (
	TenantActive   TenantStatus = "Active"
	TenantInactive TenantStatus = "Inactive"
)

func (s TenantStatus) Valid() bool {
	return s == TenantActive || s == TenantInactive
}

// Toggled returns the opposite status. Anything that is not Active flips to Active.
func (s TenantStatus) Toggled() TenantStatus {
	if s == TenantActive {
		return TenantInactive
	}
	return TenantActive
}

type Tenant struct {
	ID        string       `json:"_id"`
	Name      string       `json:"name"`
	Apartment string       `json:"apartment"`
	Contact   string       `json:"contact"`
	Status    TenantStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// TenantPatch carries the overwritable tenant fields. Nil fields are left unchanged.
type TenantPatch struct {
	Name      *string
	Apartment *string
	Contact   *string
}

// Apply writes the non-nil fields of p onto t.
func (p TenantPatch) Apply(t *Tenant) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Apartment != nil {
		t.Apartment = *p.Apartment
	}
	if p.Contact != nil {
		t.Contact = *p.Contact
	}
}
