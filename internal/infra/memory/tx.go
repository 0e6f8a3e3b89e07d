package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// op é uma escrita pendente: check valida contra o estado atual,
// apply grava, undo desfaz se uma op posterior falhar no commit.
type op struct {
	check func() error
	apply func()
	undo  func()
}

type tx struct {
	s   *Store
	ops []op
}

// WithinTx executa fn e aplica as escritas de forma atômica.
// Se fn falhar, nada é gravado.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx booking.Tx) error) error {
	t := &tx{s: s}
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return httperr.Storage(err)
	}
	return t.commit()
}

func (t *tx) commit() error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for i, o := range t.ops {
		if err := o.check(); err != nil {
			for j := i - 1; j >= 0; j-- {
				t.ops[j].undo()
			}
			return err
		}
		o.apply()
	}
	return nil
}

func (t *tx) GetSlot(ctx context.Context, slotID uuid.UUID) (*models.AvailabilitySlot, error) {
	return t.s.GetSlot(ctx, slotID)
}

func (t *tx) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	return t.s.GetBooking(ctx, bookingID)
}

func (t *tx) MarkSlotBooked(ctx context.Context, slotID uuid.UUID) error {
	// checagem antecipada: falha rápido sem esperar o commit
	slot, err := t.s.GetSlot(ctx, slotID)
	if err != nil {
		return httperr.New(httperr.CodeSlotUnavailable, "slot não existe mais")
	}
	if slot.IsBooked {
		return httperr.New(httperr.CodeSlotUnavailable, "slot já reservado")
	}

	t.ops = append(t.ops, op{
		check: func() error {
			cur, ok := t.s.slots[slotID]
			if !ok || cur.IsBooked {
				return httperr.New(httperr.CodeSlotUnavailable, "slot já reservado")
			}
			return nil
		},
		apply: func() { t.s.setBooked(slotID, true) },
		undo:  func() { t.s.setBooked(slotID, false) },
	})
	return nil
}

func (t *tx) MarkSlotFree(ctx context.Context, slotID uuid.UUID) error {
	var prev bool
	t.ops = append(t.ops, op{
		check: func() error {
			cur, ok := t.s.slots[slotID]
			if !ok {
				return notFound("slot")
			}
			prev = cur.IsBooked
			return nil
		},
		apply: func() { t.s.setBooked(slotID, false) },
		undo:  func() { t.s.setBooked(slotID, prev) },
	})
	return nil
}

func (t *tx) CreateBooking(ctx context.Context, b *models.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := t.s.now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	row := *b

	t.ops = append(t.ops, op{
		check: func() error {
			// equivalente ao índice único parcial em slot_id
			for _, other := range t.s.bookings {
				if other.SlotID == row.SlotID && other.Status.Active() {
					return httperr.New(httperr.CodeSlotUnavailable, "slot já possui booking ativo")
				}
			}
			return nil
		},
		apply: func() { t.s.bookings[row.ID] = row },
		undo:  func() { delete(t.s.bookings, row.ID) },
	})
	return nil
}

func (t *tx) UpdateBookingStatus(ctx context.Context, b *models.Booking, from models.BookingStatus) error {
	row := *b
	var prev models.Booking

	t.ops = append(t.ops, op{
		check: func() error {
			cur, ok := t.s.bookings[row.ID]
			if !ok {
				return notFound("booking")
			}
			if cur.Status != from {
				return httperr.Newf(httperr.CodeInvalidTransition, "booking já está %s", cur.Status)
			}
			prev = cur
			return nil
		},
		apply: func() {
			// o slot vinculado é imutável
			row.SlotID = prev.SlotID
			t.s.bookings[row.ID] = row
		},
		undo: func() { t.s.bookings[row.ID] = prev },
	})
	return nil
}

// setBooked exige o lock de escrita.
func (s *Store) setBooked(slotID uuid.UUID, booked bool) {
	slot, ok := s.slots[slotID]
	if !ok {
		return
	}
	slot.IsBooked = booked
	slot.UpdatedAt = s.now()
	s.slots[slotID] = slot
}
