//go:build unit

package federation_test

import (
	"context"
	"testing"

	"stayhub/internal/federation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to the resolver registered for the typename", func(t *testing.T) {
		registry := federation.NewRegistry()

		id := uuid.New()
		registry.Register(federation.TypeListing, federation.EntityResolverFunc(
			func(_ context.Context, got uuid.UUID) (any, error) {
				assert.Equal(t, id, got)
				return map[string]any{"id": got.String(), "title": "The Nostromo"}, nil
			}))

		entity, err := registry.Resolve(ctx, federation.NewStub(federation.TypeListing, id))
		require.NoError(t, err)

		resolved, ok := entity.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "The Nostromo", resolved["title"])
	})

	t.Run("unregistered typename", func(t *testing.T) {
		registry := federation.NewRegistry()
		registry.Register(federation.TypeListing, federation.EntityResolverFunc(
			func(context.Context, uuid.UUID) (any, error) { return nil, nil }))

		_, err := registry.Resolve(ctx, federation.NewStub(federation.TypeReview, uuid.New()))
		require.ErrorIs(t, err, federation.ErrUnknownTypename)
	})

	t.Run("resolver miss propagates as entity not found", func(t *testing.T) {
		registry := federation.NewRegistry()
		registry.Register(federation.TypeBooking, federation.EntityResolverFunc(
			func(context.Context, uuid.UUID) (any, error) {
				return nil, federation.ErrEntityNotFound
			}))

		_, err := registry.Resolve(ctx, federation.NewStub(federation.TypeBooking, uuid.New()))
		require.ErrorIs(t, err, federation.ErrEntityNotFound)
	})

	t.Run("typenames lists every registration", func(t *testing.T) {
		registry := federation.NewRegistry()
		registry.Register(federation.TypeGuest, federation.EntityResolverFunc(
			func(context.Context, uuid.UUID) (any, error) { return nil, nil }))
		registry.Register(federation.TypeHost, federation.EntityResolverFunc(
			func(context.Context, uuid.UUID) (any, error) { return nil, nil }))

		assert.ElementsMatch(t, []string{federation.TypeGuest, federation.TypeHost}, registry.Typenames())
	})
}
