package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// FreeSlotDTO é a forma pública: não expõe o flag de reserva.
type FreeSlotDTO struct {
	SlotID    uuid.UUID `json:"slot_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type SlotDTO struct {
	SlotID    uuid.UUID `json:"slot_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
}

func FreeSlots(slots []models.AvailabilitySlot) []FreeSlotDTO {
	out := make([]FreeSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, FreeSlotDTO{
			SlotID:    s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return out
}

func Slot(s *models.AvailabilitySlot) SlotDTO {
	return SlotDTO{
		SlotID:    s.ID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsBooked:  s.IsBooked,
	}
}

func Slots(slots []models.AvailabilitySlot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for i := range slots {
		out = append(out, Slot(&slots[i]))
	}
	return out
}
