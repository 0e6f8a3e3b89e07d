package availability

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	TimeLayout  = "15:04"

	// MaxRangeDays limita a janela de consulta de slots.
	MaxRangeDays = 92
)

// ===============================
// Validações de slot
// ===============================

// NormalizeSlot valida data e horários e devolve os valores no formato canônico.
func NormalizeSlot(date, start, end string) (string, string, string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", "", "", httperr.New(httperr.CodeInvalidRange, "data inválida")
	}
	st, err := time.Parse(TimeLayout, start)
	if err != nil {
		return "", "", "", httperr.New(httperr.CodeInvalidRange, "horário de início inválido")
	}
	et, err := time.Parse(TimeLayout, end)
	if err != nil {
		return "", "", "", httperr.New(httperr.CodeInvalidRange, "horário de fim inválido")
	}
	if !st.Before(et) {
		return "", "", "", httperr.New(httperr.CodeInvalidRange, "início deve ser antes do fim")
	}
	return d.Format(DateLayout), st.Format(TimeLayout), et.Format(TimeLayout), nil
}

// Overlaps compara intervalos semiabertos [start, end) no mesmo dia.
// Horários canônicos (HH:MM) comparam corretamente como string.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasOverlap verifica o novo intervalo contra os slots existentes do mesmo dia.
func HasOverlap(existing []models.AvailabilitySlot, date, start, end string) bool {
	for _, s := range existing {
		if s.Date != date {
			continue
		}
		if Overlaps(s.StartTime, s.EndTime, start, end) {
			return true
		}
	}
	return false
}

// SortSlots ordena por data, início e id.
func SortSlots(slots []models.AvailabilitySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID.String() < b.ID.String()
	})
}

// ===============================
// Janela de datas
// ===============================

// DateRange é inclusivo nas duas pontas.
type DateRange struct {
	From string
	To   string
}

func (r DateRange) Contains(date string) bool {
	return date >= r.From && date <= r.To
}

func MonthRange(month string) (DateRange, error) {
	m, err := time.Parse(MonthLayout, month)
	if err != nil {
		return DateRange{}, httperr.New(httperr.CodeValidation, "mês inválido, use YYYY-MM")
	}
	return monthOf(m), nil
}

func CurrentMonth(now time.Time) DateRange {
	return monthOf(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC))
}

func monthOf(first time.Time) DateRange {
	last := first.AddDate(0, 1, -1)
	return DateRange{From: first.Format(DateLayout), To: last.Format(DateLayout)}
}

func NewDateRange(from, to string) (DateRange, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return DateRange{}, httperr.New(httperr.CodeValidation, "data inicial inválida")
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return DateRange{}, httperr.New(httperr.CodeValidation, "data final inválida")
	}
	if t.Before(f) {
		return DateRange{}, httperr.New(httperr.CodeValidation, "data final antes da inicial")
	}
	if t.Sub(f) > MaxRangeDays*24*time.Hour {
		return DateRange{}, httperr.New(httperr.CodeValidation, "janela de datas muito longa")
	}
	return DateRange{From: f.Format(DateLayout), To: t.Format(DateLayout)}, nil
}

// ResolveRange escolhe a janela a partir dos parâmetros de consulta:
// month tem prioridade, depois from/to, e por fim o mês corrente.
func ResolveRange(month, from, to string, now time.Time) (DateRange, error) {
	switch {
	case month != "":
		return MonthRange(month)
	case from != "" || to != "":
		if from == "" {
			from = to
		}
		if to == "" {
			to = from
		}
		return NewDateRange(from, to)
	}
	return CurrentMonth(now), nil
}
