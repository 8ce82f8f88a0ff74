package api

import (
	"context"
	"errors"
	"net/http"

	"stayhub/internal/federation"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewEntityRegistry wires a resolver per owned typename. Resolvers return
// response DTOs so hydrated entities nest the same cross-service stubs the
// regular endpoints do.
func NewEntityRegistry(
	listingQueries queries.ListingQueries,
	bookingQueries queries.BookingQueries,
	userQueries queries.UserQueries,
	reviewQueries queries.ReviewQueries,
) *federation.Registry {
	registry := federation.NewRegistry()

	registry.Register(federation.TypeListing, federation.EntityResolverFunc(
		func(ctx context.Context, id uuid.UUID) (any, error) {
			view, err := listingQueries.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, queries.ErrListingNotFound) {
					return nil, errs.Mark(err, federation.ErrEntityNotFound)
				}
				return nil, err
			}
			return resdto.FromListingView(view), nil
		}))

	registry.Register(federation.TypeBooking, federation.EntityResolverFunc(
		func(ctx context.Context, id uuid.UUID) (any, error) {
			view, err := bookingQueries.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, queries.ErrBookingNotFound) {
					return nil, errs.Mark(err, federation.ErrEntityNotFound)
				}
				return nil, err
			}
			return resdto.FromBookingView(view), nil
		}))

	registry.Register(federation.TypeReview, federation.EntityResolverFunc(
		func(ctx context.Context, id uuid.UUID) (any, error) {
			view, err := reviewQueries.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, queries.ErrReviewNotFound) {
					return nil, errs.Mark(err, federation.ErrEntityNotFound)
				}
				return nil, err
			}
			return resdto.FromReviewView(view), nil
		}))

	registry.Register(federation.TypeGuest, userResolver(userQueries, queries.RoleGuest))
	registry.Register(federation.TypeHost, userResolver(userQueries, queries.RoleHost))

	return registry
}

func userResolver(userQueries queries.UserQueries, role string) federation.EntityResolver {
	return federation.EntityResolverFunc(func(ctx context.Context, id uuid.UUID) (any, error) {
		view, err := userQueries.GetByIDWithRole(ctx, id, role)
		if err != nil {
			if errors.Is(err, queries.ErrUserNotFound) {
				return nil, errs.Mark(err, federation.ErrEntityNotFound)
			}
			return nil, err
		}
		return resdto.FromUserView(view), nil
	})
}

type EntitiesHandler struct {
	registry *federation.Registry
}

func NewEntitiesHandler(registry *federation.Registry) *EntitiesHandler {
	return &EntitiesHandler{registry: registry}
}

// @Summary Resolve entity references
// @Description Hydrate {__typename, id} stubs into full records. Unauthenticated: auth was enforced at the field that produced each reference.
// @Tags federation
// @Accept json
// @Produce json
// @Param request body reqdto.ResolveEntitiesRequest true "Stubs to resolve"
// @Success 200 {object} map[string][]any
// @Failure 400 {object} map[string]string
// @Router /entities [post]
func (h *EntitiesHandler) Resolve(c *gin.Context) {
	var req reqdto.ResolveEntitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Result slots stay aligned with the request; a missing entity
	// resolves to null rather than failing the whole batch.
	entities := make([]any, len(req.Representations))
	for i, stub := range req.Representations {
		entity, err := h.registry.Resolve(c.Request.Context(), stub)
		if err != nil {
			switch {
			case errors.Is(err, federation.ErrUnknownTypename):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown typename: " + stub.Typename})
				return
			case errors.Is(err, federation.ErrEntityNotFound):
				entities[i] = nil
				continue
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
		}
		entities[i] = entity
	}

	c.JSON(http.StatusOK, gin.H{"entities": entities})
}
