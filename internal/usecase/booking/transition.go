package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/events"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
	"github.com/BruksfildServices01/braider-booking/internal/timezone"
)

type ActorKind string

const (
	ActorProvider ActorKind = "provider"
	ActorClient   ActorKind = "client"
	ActorSystem   ActorKind = "system"
)

// Actor identifica quem pede a transição.
type Actor struct {
	Kind        ActorKind
	ProviderID  uuid.UUID
	ClientEmail string
}

func ProviderActor(providerID uuid.UUID) Actor {
	return Actor{Kind: ActorProvider, ProviderID: providerID}
}

func ClientActor(email string) Actor {
	return Actor{Kind: ActorClient, ClientEmail: email}
}

type TransitionInput struct {
	BookingID uuid.UUID
	Action    domain.Action
	Actor     Actor
}

type Transition struct {
	store  domain.Store
	events events.Publisher
	cache  CacheInvalidator
	clock  timezone.Clock
}

func NewTransition(
	store domain.Store,
	publisher events.Publisher,
	cache CacheInvalidator,
	clock timezone.Clock,
) *Transition {
	if cache == nil {
		cache = NoCache{}
	}
	return &Transition{
		store:  store,
		events: publisher,
		cache:  cache,
		clock:  clock,
	}
}

// authorize esconde bookings de outros atores como NotFound.
func authorize(b *models.Booking, actor Actor, action domain.Action) error {
	switch actor.Kind {
	case ActorProvider:
		if b.ProviderID != actor.ProviderID {
			return httperr.New(httperr.CodeNotFound, "booking não encontrado")
		}
	case ActorClient:
		email := strings.ToLower(strings.TrimSpace(actor.ClientEmail))
		if email == "" || email != b.ClientEmail {
			return httperr.New(httperr.CodeNotFound, "booking não encontrado")
		}
		if action != domain.ActionCancel {
			return httperr.New(httperr.CodeValidation, "cliente só pode cancelar")
		}
	case ActorSystem:
		if action != domain.ActionCancel {
			return httperr.New(httperr.CodeValidation, "sistema só pode cancelar")
		}
	default:
		return httperr.New(httperr.CodeValidation, "ator desconhecido")
	}
	return nil
}

func (uc *Transition) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Booking, error) {

	if !in.Action.Valid() {
		return nil, httperr.Newf(httperr.CodeValidation, "ação desconhecida: %q", in.Action)
	}

	now := uc.clock()
	var updated *models.Booking

	err := uc.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		b, err := tx.GetBooking(ctx, in.BookingID)
		if err != nil {
			return err
		}

		if err := authorize(b, in.Actor, in.Action); err != nil {
			return err
		}

		from := b.Status
		next, err := domain.Next(from, in.Action)
		if err != nil {
			return err
		}

		domain.Apply(b, next, now)
		if err := tx.UpdateBookingStatus(ctx, b, from); err != nil {
			return err
		}

		if domain.ReleasesSlot(next) {
			if err := tx.MarkSlotFree(ctx, b.SlotID); err != nil {
				return err
			}
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if domain.ReleasesSlot(updated.Status) {
		uc.cache.Invalidate(ctx, updated.ProviderID)
	}
	if typ, ok := events.ForStatus(updated.Status); ok {
		uc.events.Publish(events.FromBooking(typ, updated, now))
	}

	return updated, nil
}
