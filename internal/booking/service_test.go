package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/fekalegi/property-management-system/internal/booking"
	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/fekalegi/property-management-system/internal/repository/memory"
	"github.com/fekalegi/property-management-system/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-01-10", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"2025-01-10T14:30", time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)},
		{"2025-01-10T14:30:00Z", time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)},
		{"2025-01-10T14:30:00+02:00", time.Date(2025, 1, 10, 12, 30, 0, 0, time.UTC)},
		{" 2025-01-10 ", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := booking.ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"tomorrow", "2025-13-01", "10/01/2025", ""} {
		_, err := booking.ParseDate(in)
		assert.Error(t, err, in)
	}
}

func TestCreate(t *testing.T) {
	pub := &testutil.RecordingPublisher{}
	svc := booking.NewService(memory.NewBookingRepository(), pub, zerolog.Nop())
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateInput{
		Name:  "Ann",
		Email: "ann@example.com",
		Date:  "2025-01-10",
		House: "Villa",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Villa", b.House)
	assert.True(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC).Equal(b.Date))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, []string{domain.EventBookingCreated}, pub.Types())
}

func TestCreate_MissingFields(t *testing.T) {
	svc := booking.NewService(memory.NewBookingRepository(), nil, zerolog.Nop())
	full := booking.CreateInput{Name: "Ann", Email: "ann@example.com", Date: "2025-01-10", House: "Villa"}

	cases := map[string]func(*booking.CreateInput){
		"name":  func(in *booking.CreateInput) { in.Name = "" },
		"email": func(in *booking.CreateInput) { in.Email = "" },
		"date":  func(in *booking.CreateInput) { in.Date = "" },
		"house": func(in *booking.CreateInput) { in.House = "" },
	}
	for name, drop := range cases {
		t.Run(name, func(t *testing.T) {
			in := full
			drop(&in)
			_, err := svc.Create(context.Background(), in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, "All fields are required", domain.Detail(err))
		})
	}

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_InvalidDate(t *testing.T) {
	svc := booking.NewService(memory.NewBookingRepository(), nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), booking.CreateInput{
		Name: "Ann", Email: "ann@example.com", Date: "next week", House: "Villa",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Invalid date", domain.Detail(err))
}
