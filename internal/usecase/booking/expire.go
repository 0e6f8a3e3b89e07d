package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/timezone"
)

// ExpirePendingHolds cancela bookings pending mais antigos que ttl.
// Cada um passa pela transição normal de cancelamento.
type ExpirePendingHolds struct {
	store      domain.Store
	transition *Transition
	ttl        time.Duration
	clock      timezone.Clock
	log        *zap.Logger
}

func NewExpirePendingHolds(
	store domain.Store,
	transition *Transition,
	ttl time.Duration,
	clock timezone.Clock,
	log *zap.Logger,
) *ExpirePendingHolds {
	return &ExpirePendingHolds{
		store:      store,
		transition: transition,
		ttl:        ttl,
		clock:      clock,
		log:        log,
	}
}

// Execute devolve quantos bookings foram cancelados.
func (uc *ExpirePendingHolds) Execute(ctx context.Context) (int, error) {
	if uc.ttl <= 0 {
		return 0, nil
	}

	cutoff := uc.clock().Add(-uc.ttl)
	stale, err := uc.store.ListPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, b := range stale {
		_, err := uc.transition.Execute(ctx, TransitionInput{
			BookingID: b.ID,
			Action:    domain.ActionCancel,
			Actor:     Actor{Kind: ActorSystem},
		})
		switch {
		case err == nil:
			expired++
		case httperr.IsBusiness(err, httperr.CodeInvalidTransition):
			// confirmado ou cancelado entre a leitura e a transição
		default:
			uc.log.Warn("hold expiry failed",
				zap.String("booking_id", b.ID.String()),
				zap.Error(err),
			)
		}
	}

	if expired > 0 {
		uc.log.Info("expired pending holds", zap.Int("count", expired))
	}
	return expired, nil
}
