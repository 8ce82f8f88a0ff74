package request

import (
	"stayhub/internal/federation"
)

// ResolveEntitiesRequest is the gateway's batch of stubs to hydrate.
type ResolveEntitiesRequest struct {
	Representations []federation.Stub `json:"representations" binding:"required,min=1"`
}
