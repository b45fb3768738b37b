package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantStatus_Toggled(t *testing.T) {
	assert.Equal(t, TenantInactive, TenantActive.Toggled())
	assert.Equal(t, TenantActive, TenantInactive.Toggled())
	assert.Equal(t, TenantActive, TenantStatus("").Toggled())
	assert.Equal(t, TenantActive, TenantActive.Toggled().Toggled())
}

func TestTenantStatus_Valid(t *testing.T) {
	assert.True(t, TenantActive.Valid())
	assert.True(t, TenantInactive.Valid())
	assert.False(t, TenantStatus("active").Valid())
	assert.False(t, TenantStatus("").Valid())
}

func TestTenantPatch_Apply(t *testing.T) {
	name := "B"
	tn := Tenant{Name: "A", Apartment: "101", Contact: "555"}

	TenantPatch{Name: &name}.Apply(&tn)

	assert.Equal(t, Tenant{Name: "B", Apartment: "101", Contact: "555"}, tn)
}

func TestListOptions_Window(t *testing.T) {
	tests := []struct {
		opts       ListOptions
		n          int
		start, end int
	}{
		{ListOptions{}, 5, 0, 5},
		{ListOptions{Limit: 2}, 5, 0, 2},
		{ListOptions{Offset: 4, Limit: 2}, 5, 4, 5},
		{ListOptions{Offset: 10, Limit: 2}, 5, 5, 5},
		{ListOptions{Offset: -1}, 3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%+v/%d", tt.opts, tt.n), func(t *testing.T) {
			start, end := tt.opts.Window(tt.n)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestDetail(t *testing.T) {
	err := fmt.Errorf("%w: All fields are required", ErrInvalidInput)
	assert.Equal(t, "All fields are required", Detail(err))
}
