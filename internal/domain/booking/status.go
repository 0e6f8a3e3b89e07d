package booking

import (
	"time"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// ===============================
// Ações sobre o booking
// ===============================

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

func (a Action) Valid() bool {
	return a == ActionConfirm || a == ActionReject || a == ActionCancel
}

var transitions = map[models.BookingStatus]map[Action]models.BookingStatus{
	models.BookingPending: {
		ActionConfirm: models.BookingConfirmed,
		ActionReject:  models.BookingRejected,
		ActionCancel:  models.BookingCancelled,
	},
	models.BookingConfirmed: {
		ActionCancel: models.BookingCancelled,
	},
}

// InitialStatus é o status de todo booking recém-criado.
func InitialStatus() models.BookingStatus {
	return models.BookingPending
}

// Next resolve o próximo status; cancelled e rejected são terminais.
func Next(current models.BookingStatus, action Action) (models.BookingStatus, error) {
	if !action.Valid() {
		return "", httperr.Newf(httperr.CodeValidation, "ação desconhecida: %q", action)
	}
	next, ok := transitions[current][action]
	if !ok {
		return "", httperr.Newf(httperr.CodeInvalidTransition, "não é possível %s um booking %s", action, current)
	}
	return next, nil
}

// ReleasesSlot indica se o status devolve o slot para a agenda.
func ReleasesSlot(status models.BookingStatus) bool {
	return status == models.BookingCancelled || status == models.BookingRejected
}

// Apply grava o novo status e o carimbo de tempo correspondente.
func Apply(b *models.Booking, next models.BookingStatus, now time.Time) {
	b.Status = next
	b.UpdatedAt = now
	switch next {
	case models.BookingConfirmed:
		b.ConfirmedAt = &now
	case models.BookingCancelled:
		b.CancelledAt = &now
	case models.BookingRejected:
		b.RejectedAt = &now
	}
}
