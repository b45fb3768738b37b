package contact_test

import (
	"context"
	"testing"

	"github.com/fekalegi/property-management-system/internal/contact"
	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/fekalegi/property-management-system/internal/repository/memory"
	"github.com/fekalegi/property-management-system/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	pub := &testutil.RecordingPublisher{}
	svc := contact.NewService(memory.NewContactRepository(), pub, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.Submit(ctx, contact.SubmitInput{
		Name:    "Bob",
		Email:   "bob@example.com",
		Phone:   "555-0100",
		Message: "Is the loft still available?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Is the loft still available?", all[0].Message)
	assert.Equal(t, []string{domain.EventContactSubmitted}, pub.Types())
}

func TestSubmit_EmptyFormIsStored(t *testing.T) {
	svc := contact.NewService(memory.NewContactRepository(), nil, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Submit(ctx, contact.SubmitInput{})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
