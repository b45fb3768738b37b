// Package repotest holds the behaviour every store backend must satisfy.
// Each backend's tests call these functions against an empty store.
package repotest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekalegi/property-management-system/internal/booking"
	"github.com/fekalegi/property-management-system/internal/contact"
	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/fekalegi/property-management-system/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func createTenant(t *testing.T, repo tenant.Repository, name string) *domain.Tenant {
	t.Helper()
	tn := &domain.Tenant{Name: name, Apartment: "101", Contact: "555", Status: domain.TenantActive}
	require.NoError(t, repo.Create(context.Background(), tn))
	require.NotEmpty(t, tn.ID)
	return tn
}

// TenantRepository exercises tenant.Repository. missingID must be a
// well-formed identifier that does not exist; malformedID must not parse.
func TenantRepository(t *testing.T, repo tenant.Repository, missingID, malformedID string) {
	ctx := context.Background()

	t.Run("CreateAssignsIdentifierAndTimestamps", func(t *testing.T) {
		tn := createTenant(t, repo, "create")
		assert.False(t, tn.CreatedAt.IsZero())
		assert.False(t, tn.UpdatedAt.IsZero())
	})

	t.Run("ListReturnsCreatedInOrder", func(t *testing.T) {
		a := createTenant(t, repo, "list-a")
		b := createTenant(t, repo, "list-b")

		all, err := repo.List(ctx, domain.ListOptions{})
		require.NoError(t, err)

		ids := make([]string, 0, len(all))
		for _, tn := range all {
			ids = append(ids, tn.ID)
		}
		require.Contains(t, ids, a.ID)
		require.Contains(t, ids, b.ID)
		assert.Less(t, indexOf(ids, a.ID), indexOf(ids, b.ID))
	})

	t.Run("ListPaginates", func(t *testing.T) {
		all, err := repo.List(ctx, domain.ListOptions{})
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), 3)

		page, err := repo.List(ctx, domain.ListOptions{Offset: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, all[1].ID, page[0].ID)
		assert.Equal(t, all[2].ID, page[1].ID)

		past, err := repo.List(ctx, domain.ListOptions{Offset: len(all) + 5, Limit: 2})
		require.NoError(t, err)
		assert.Empty(t, past)
	})

	t.Run("ToggleStatusTwiceRestoresStatus", func(t *testing.T) {
		tn := createTenant(t, repo, "toggle")

		once, err := repo.ToggleStatus(ctx, tn.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TenantInactive, once.Status)
		assert.Equal(t, tn.Name, once.Name)

		twice, err := repo.ToggleStatus(ctx, tn.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TenantActive, twice.Status)
	})

	t.Run("UpdateOverwritesOnlyGivenFields", func(t *testing.T) {
		tn := createTenant(t, repo, "update")

		updated, err := repo.Update(ctx, tn.ID, domain.TenantPatch{
			Name:    strPtr("renamed"),
			Contact: strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, tn.ID, updated.ID)
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, "101", updated.Apartment)
		assert.Equal(t, "", updated.Contact)
		assert.Equal(t, domain.TenantActive, updated.Status)
	})

	t.Run("MissingIdentifiersAreNotFound", func(t *testing.T) {
		before, err := repo.List(ctx, domain.ListOptions{})
		require.NoError(t, err)

		for _, id := range []string{missingID, malformedID} {
			_, err := repo.ToggleStatus(ctx, id)
			assert.ErrorIs(t, err, domain.ErrNotFound, "toggle %q", id)

			_, err = repo.Update(ctx, id, domain.TenantPatch{Name: strPtr("ghost")})
			assert.ErrorIs(t, err, domain.ErrNotFound, "update %q", id)

			err = repo.Delete(ctx, id)
			assert.ErrorIs(t, err, domain.ErrNotFound, "delete %q", id)
		}

		after, err := repo.List(ctx, domain.ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, len(before), len(after))
	})

	t.Run("DeleteRemovesFromList", func(t *testing.T) {
		tn := createTenant(t, repo, "delete")
		require.NoError(t, repo.Delete(ctx, tn.ID))

		all, err := repo.List(ctx, domain.ListOptions{})
		require.NoError(t, err)
		for _, other := range all {
			assert.NotEqual(t, tn.ID, other.ID)
		}
		assert.ErrorIs(t, repo.Delete(ctx, tn.ID), domain.ErrNotFound)
	})

	t.Run("ConcurrentTogglesAreAtomic", func(t *testing.T) {
		tn := createTenant(t, repo, "concurrent")

		const n = 20
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.ToggleStatus(ctx, tn.ID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// An even number of flips lands back on the starting status.
		final, err := repo.ToggleStatus(ctx, tn.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TenantInactive, final.Status)
	})
}

func BookingRepository(t *testing.T, repo booking.Repository) {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	first := &domain.Booking{Name: "John", Email: "john@example.com", Date: date, House: "Villa Rosa"}
	second := &domain.Booking{Name: "Mary", Email: "mary@example.com", Date: date.AddDate(0, 0, 7), House: "Casa Azul"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, "Villa Rosa", all[0].House)
	assert.True(t, date.Equal(all[0].Date), "date round-trips: %s", all[0].Date)
	assert.Equal(t, second.ID, all[1].ID)
}

func ContactRepository(t *testing.T, repo contact.Repository) {
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	c := &domain.Contact{Name: "Ada", Email: "ada@example.com", Phone: "555", Message: "hello"}
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Create(ctx, &domain.Contact{}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, c.ID, all[0].ID)
	assert.Equal(t, "hello", all[0].Message)
	assert.Equal(t, "", all[1].Name)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
