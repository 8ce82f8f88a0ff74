package federation

import (
	"context"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownTypename = errs.New("no resolver registered for typename")
	ErrEntityNotFound  = errs.New("referenced entity not found")
)

// EntityResolver turns a stub's id into the fully populated view of an
// entity this service owns. Resolution runs without caller authentication:
// auth is enforced at the field that produced the reference, not here.
// Implementations must mark lookup misses with ErrEntityNotFound.
type EntityResolver interface {
	ResolveReference(ctx context.Context, id uuid.UUID) (any, error)
}

// EntityResolverFunc adapts a plain resolution function to EntityResolver.
type EntityResolverFunc func(ctx context.Context, id uuid.UUID) (any, error)

func (f EntityResolverFunc) ResolveReference(ctx context.Context, id uuid.UUID) (any, error) {
	return f(ctx, id)
}

// Registry maps typenames to the resolver for records this service owns.
// Registration happens once at wiring time; lookups are read-only after
// that, so no locking is needed.
type Registry struct {
	resolvers map[string]EntityResolver
}

func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]EntityResolver)}
}

func (r *Registry) Register(typename string, resolver EntityResolver) {
	r.resolvers[typename] = resolver
}

func (r *Registry) Resolve(ctx context.Context, stub Stub) (any, error) {
	resolver, ok := r.resolvers[stub.Typename]
	if !ok {
		return nil, ErrUnknownTypename
	}
	return resolver.ResolveReference(ctx, stub.ID)
}

func (r *Registry) Typenames() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	return names
}
