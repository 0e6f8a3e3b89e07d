package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/braider-booking/internal/domain/availability"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// Availability guarda listagens de slots no Redis.
// Cada provider tem uma geração; invalidar é incrementá-la, o que
// torna órfãs todas as chaves antigas até expirarem pelo TTL.
type Availability struct {
	inner availability.Repository
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewAvailability(
	inner availability.Repository,
	rdb *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *Availability {
	return &Availability{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

func generationKey(providerID uuid.UUID) string {
	return fmt.Sprintf("avail:gen:%s", providerID)
}

func listKey(providerID uuid.UUID, gen int64, r availability.DateRange, freeOnly bool) string {
	scope := "all"
	if freeOnly {
		scope = "free"
	}
	return fmt.Sprintf("avail:%s:%d:%s:%s:%s", providerID, gen, r.From, r.To, scope)
}

func (c *Availability) generation(ctx context.Context, providerID uuid.UUID) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(providerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *Availability) ListSlots(
	ctx context.Context,
	providerID uuid.UUID,
	r availability.DateRange,
	freeOnly bool,
) ([]models.AvailabilitySlot, error) {

	gen, err := c.generation(ctx, providerID)
	if err != nil {
		c.log.Warn("availability cache unavailable", zap.Error(err))
		return c.inner.ListSlots(ctx, providerID, r, freeOnly)
	}

	key := listKey(providerID, gen, r, freeOnly)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var slots []models.AvailabilitySlot
		if err := json.Unmarshal(raw, &slots); err == nil {
			return slots, nil
		}
	}

	slots, err := c.inner.ListSlots(ctx, providerID, r, freeOnly)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(slots); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warn("availability cache write failed", zap.Error(err))
		}
	}
	return slots, nil
}

// Invalidate descarta as listagens em cache do provider.
func (c *Availability) Invalidate(ctx context.Context, providerID uuid.UUID) {
	if err := c.rdb.Incr(ctx, generationKey(providerID)).Err(); err != nil {
		c.log.Warn("availability cache invalidation failed",
			zap.String("provider_id", providerID.String()),
			zap.Error(err),
		)
	}
}

func (c *Availability) CreateSlot(ctx context.Context, slot *models.AvailabilitySlot) error {
	if err := c.inner.CreateSlot(ctx, slot); err != nil {
		return err
	}
	c.Invalidate(ctx, slot.ProviderID)
	return nil
}

func (c *Availability) GetSlot(ctx context.Context, slotID uuid.UUID) (*models.AvailabilitySlot, error) {
	return c.inner.GetSlot(ctx, slotID)
}

func (c *Availability) DeleteFreeSlot(ctx context.Context, providerID, slotID uuid.UUID) error {
	if err := c.inner.DeleteFreeSlot(ctx, providerID, slotID); err != nil {
		return err
	}
	c.Invalidate(ctx, providerID)
	return nil
}

var _ availability.Repository = (*Availability)(nil)
