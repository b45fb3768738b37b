package tenant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/fekalegi/property-management-system/internal/repository/memory"
	"github.com/fekalegi/property-management-system/internal/tenant"
	"github.com/fekalegi/property-management-system/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenRepository fails every call with err.
type brokenRepository struct{ err error }

func (r brokenRepository) List(context.Context, domain.ListOptions) ([]*domain.Tenant, error) {
	return nil, r.err
}
func (r brokenRepository) Create(context.Context, *domain.Tenant) error { return r.err }
func (r brokenRepository) ToggleStatus(context.Context, string) (*domain.Tenant, error) {
	return nil, r.err
}
func (r brokenRepository) Update(context.Context, string, domain.TenantPatch) (*domain.Tenant, error) {
	return nil, r.err
}
func (r brokenRepository) Delete(context.Context, string) error { return r.err }

func newService(t *testing.T) (*tenant.Service, *testutil.RecordingPublisher) {
	t.Helper()
	pub := &testutil.RecordingPublisher{}
	return tenant.NewService(memory.NewTenantRepository(), pub, zerolog.Nop()), pub
}

func TestCreate_DefaultsStatusToActive(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, tenant.CreateInput{Name: "A", Apartment: "101", Contact: "555"})
	require.NoError(t, err)
	assert.Equal(t, domain.TenantActive, created.Status)

	all, err := svc.List(ctx, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, domain.TenantActive, all[0].Status)

	assert.Equal(t, []string{domain.EventTenantCreated}, pub.Types())
}

func TestCreate_KeepsExplicitStatus(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), tenant.CreateInput{Name: "A", Status: domain.TenantInactive})
	require.NoError(t, err)
	assert.Equal(t, domain.TenantInactive, created.Status)
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc, pub := newService(t)

	_, err := svc.Create(context.Background(), tenant.CreateInput{Name: "A", Status: "Evicted"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, pub.Types())
}

func TestCreate_AllowsEmptyFields(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), tenant.CreateInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestToggleStatus_TwiceRestoresOriginal(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, tenant.CreateInput{Name: "A"})
	require.NoError(t, err)

	once, err := svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TenantInactive, once.Status)

	twice, err := svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Status, twice.Status)

	assert.Equal(t, []string{
		domain.EventTenantCreated,
		domain.EventTenantStatusToggled,
		domain.EventTenantStatusToggled,
	}, pub.Types())
}

func TestUpdate_MissingTenantLeavesStoreUnchanged(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, tenant.CreateInput{Name: "A", Apartment: "101"})
	require.NoError(t, err)

	name := "B"
	_, err = svc.Update(ctx, "00000000-0000-0000-0000-000000000000", domain.TenantPatch{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)

	all, err := svc.List(ctx, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.Name, all[0].Name)
	assert.Equal(t, []string{domain.EventTenantCreated}, pub.Types())
}

func TestDelete_RemovesFromList(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	keep, err := svc.Create(ctx, tenant.CreateInput{Name: "keep"})
	require.NoError(t, err)
	gone, err := svc.Create(ctx, tenant.CreateInput{Name: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, gone.ID))

	all, err := svc.List(ctx, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	assert.ErrorIs(t, svc.Delete(ctx, gone.ID), domain.ErrNotFound)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	pub := &testutil.RecordingPublisher{Err: errors.New("broker down")}
	svc := tenant.NewService(memory.NewTenantRepository(), pub, zerolog.Nop())

	created, err := svc.Create(context.Background(), tenant.CreateInput{Name: "A"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, pub.Types(), 1)
}

func TestStorageFailuresPropagate(t *testing.T) {
	storageErr := errors.New("connection reset")
	svc := tenant.NewService(brokenRepository{err: storageErr}, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.List(ctx, domain.ListOptions{})
	assert.ErrorIs(t, err, storageErr)
	_, err = svc.Create(ctx, tenant.CreateInput{})
	assert.ErrorIs(t, err, storageErr)
	_, err = svc.ToggleStatus(ctx, "x")
	assert.ErrorIs(t, err, storageErr)
	_, err = svc.Update(ctx, "x", domain.TenantPatch{})
	assert.ErrorIs(t, err, storageErr)
	assert.ErrorIs(t, svc.Delete(ctx, "x"), storageErr)
}
