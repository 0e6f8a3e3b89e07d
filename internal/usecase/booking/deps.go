package booking

import (
	"context"

	"github.com/google/uuid"
)

// CacheInvalidator descarta listagens de disponibilidade em cache
// depois que um slot muda de estado.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, providerID uuid.UUID)
}

type NoCache struct{}

func (NoCache) Invalidate(context.Context, uuid.UUID) {}
