package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type ReservationDTO struct {
	BookingID uuid.UUID            `json:"booking_id"`
	Status    models.BookingStatus `json:"status"`
	Date      string               `json:"date"`
	Time      string               `json:"time"`
}

type BookingStatusDTO struct {
	BookingID uuid.UUID            `json:"booking_id"`
	Status    models.BookingStatus `json:"status"`
}

type BookingDTO struct {
	BookingID       uuid.UUID              `json:"booking_id"`
	ServiceID       uuid.UUID              `json:"service_id"`
	SlotID          uuid.UUID              `json:"slot_id"`
	Status          models.BookingStatus   `json:"status"`
	AppointmentType models.AppointmentType `json:"appointment_type"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`

	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	ClientAddress string `json:"client_address,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
}

func Reservation(b *models.Booking) ReservationDTO {
	return ReservationDTO{BookingID: b.ID, Status: b.Status, Date: b.Date, Time: b.Time}
}

func BookingStatus(b *models.Booking) BookingStatusDTO {
	return BookingStatusDTO{BookingID: b.ID, Status: b.Status}
}

func Booking(b *models.Booking) BookingDTO {
	return BookingDTO{
		BookingID:       b.ID,
		ServiceID:       b.ServiceID,
		SlotID:          b.SlotID,
		Status:          b.Status,
		AppointmentType: b.AppointmentType,
		Date:            b.Date,
		Time:            b.Time,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		ClientAddress:   b.ClientAddress,
		CreatedAt:       b.CreatedAt,
		ConfirmedAt:     b.ConfirmedAt,
		CancelledAt:     b.CancelledAt,
		RejectedAt:      b.RejectedAt,
	}
}

func Bookings(bs []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bs))
	for i := range bs {
		out = append(out, Booking(&bs[i]))
	}
	return out
}
