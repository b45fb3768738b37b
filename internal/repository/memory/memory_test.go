package memory

import (
	"testing"

	"github.com/fekalegi/property-management-system/internal/repository/repotest"
	"github.com/google/uuid"
)

func TestTenantRepository(t *testing.T) {
	repotest.TenantRepository(t, NewTenantRepository(), uuid.NewString(), "not-an-id")
}

func TestBookingRepository(t *testing.T) {
	repotest.BookingRepository(t, NewBookingRepository())
}

func TestContactRepository(t *testing.T) {
	repotest.ContactRepository(t, NewContactRepository())
}
