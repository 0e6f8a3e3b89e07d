package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

func TestNext_TransitionTable(t *testing.T) {
	tests := []struct {
		from   models.BookingStatus
		action Action
		want   models.BookingStatus
		code   string
	}{
		{models.BookingPending, ActionConfirm, models.BookingConfirmed, ""},
		{models.BookingPending, ActionReject, models.BookingRejected, ""},
		{models.BookingPending, ActionCancel, models.BookingCancelled, ""},
		{models.BookingConfirmed, ActionCancel, models.BookingCancelled, ""},
		{models.BookingConfirmed, ActionConfirm, "", httperr.CodeInvalidTransition},
		{models.BookingConfirmed, ActionReject, "", httperr.CodeInvalidTransition},
		{models.BookingCancelled, ActionCancel, "", httperr.CodeInvalidTransition},
		{models.BookingCancelled, ActionConfirm, "", httperr.CodeInvalidTransition},
		{models.BookingRejected, ActionCancel, "", httperr.CodeInvalidTransition},
		{models.BookingRejected, ActionConfirm, "", httperr.CodeInvalidTransition},
		{models.BookingPending, Action("reschedule"), "", httperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			got, err := Next(tt.from, tt.action)
			if tt.code != "" {
				if !httperr.IsBusiness(err, tt.code) {
					t.Fatalf("err = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("next = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReleasesSlot(t *testing.T) {
	if ReleasesSlot(models.BookingConfirmed) || ReleasesSlot(models.BookingPending) {
		t.Fatalf("active statuses must keep the slot")
	}
	if !ReleasesSlot(models.BookingCancelled) || !ReleasesSlot(models.BookingRejected) {
		t.Fatalf("cancelled and rejected must release the slot")
	}
}

func TestApply_SetsTimestamp(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: models.BookingPending}

	Apply(b, models.BookingRejected, now)

	if b.Status != models.BookingRejected {
		t.Fatalf("status = %q", b.Status)
	}
	if b.RejectedAt == nil || !b.RejectedAt.Equal(now) {
		t.Fatalf("rejected_at = %v, want %v", b.RejectedAt, now)
	}
	if b.CancelledAt != nil || b.ConfirmedAt != nil {
		t.Fatalf("unexpected timestamps: %+v", b)
	}
}
