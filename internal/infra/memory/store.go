package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/domain/availability"
	"github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// Store guarda tudo em memória. Escritas de uma Tx ficam pendentes
// até o commit, que valida e aplica tudo sob o mesmo lock.
type Store struct {
	mu        sync.RWMutex
	providers map[uuid.UUID]models.Provider
	services  map[uuid.UUID]models.Service
	slots     map[uuid.UUID]models.AvailabilitySlot
	bookings  map[uuid.UUID]models.Booking
	now       func() time.Time
}

func New() *Store {
	return &Store{
		providers: make(map[uuid.UUID]models.Provider),
		services:  make(map[uuid.UUID]models.Service),
		slots:     make(map[uuid.UUID]models.AvailabilitySlot),
		bookings:  make(map[uuid.UUID]models.Booking),
		now:       time.Now,
	}
}

func notFound(what string) error {
	return httperr.Newf(httperr.CodeNotFound, "%s não encontrado", what)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (s *Store) CreateProvider(ctx context.Context, p *models.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = models.ProviderPending
	}
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	s.providers[p.ID] = *p
	return nil
}

func (s *Store) GetProvider(ctx context.Context, providerID uuid.UUID) (*models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.providers[providerID]
	if !ok {
		return nil, notFound("provider")
	}
	return &p, nil
}

func (s *Store) UpdateProvider(ctx context.Context, p *models.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.providers[p.ID]; !ok {
		return notFound("provider")
	}
	p.UpdatedAt = s.now()
	s.providers[p.ID] = *p
	return nil
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.providers[svc.ProviderID]; !ok {
		return notFound("provider")
	}
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	now := s.now()
	svc.CreatedAt, svc.UpdatedAt = now, now
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) GetService(ctx context.Context, providerID, serviceID uuid.UUID) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[serviceID]
	if !ok || svc.ProviderID != providerID {
		return nil, notFound("serviço")
	}
	return &svc, nil
}

func (s *Store) ListServices(ctx context.Context, providerID uuid.UUID, onlyAvailable bool) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Service{}
	for _, svc := range s.services {
		if svc.ProviderID != providerID || (onlyAvailable && !svc.Available) {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *Store) UpdateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.services[svc.ID]
	if !ok || cur.ProviderID != svc.ProviderID {
		return notFound("serviço")
	}
	svc.UpdatedAt = s.now()
	s.services[svc.ID] = *svc
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (s *Store) CreateSlot(ctx context.Context, slot *models.AvailabilitySlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.providers[slot.ProviderID]; !ok {
		return notFound("provider")
	}

	for _, existing := range s.slots {
		if existing.ProviderID != slot.ProviderID || existing.Date != slot.Date {
			continue
		}
		if availability.Overlaps(existing.StartTime, existing.EndTime, slot.StartTime, slot.EndTime) {
			return httperr.New(httperr.CodeOverlap, "já existe um slot nesse horário")
		}
	}

	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	now := s.now()
	slot.CreatedAt, slot.UpdatedAt = now, now
	s.slots[slot.ID] = *slot
	return nil
}

func (s *Store) GetSlot(ctx context.Context, slotID uuid.UUID) (*models.AvailabilitySlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[slotID]
	if !ok {
		return nil, notFound("slot")
	}
	return &slot, nil
}

func (s *Store) ListSlots(ctx context.Context, providerID uuid.UUID, r availability.DateRange, freeOnly bool) ([]models.AvailabilitySlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.AvailabilitySlot{}
	for _, slot := range s.slots {
		if slot.ProviderID != providerID || !r.Contains(slot.Date) {
			continue
		}
		if freeOnly && slot.IsBooked {
			continue
		}
		out = append(out, slot)
	}
	availability.SortSlots(out)
	return out, nil
}

func (s *Store) DeleteFreeSlot(ctx context.Context, providerID, slotID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[slotID]
	if !ok || slot.ProviderID != providerID {
		return notFound("slot")
	}
	if slot.IsBooked {
		return httperr.New(httperr.CodeSlotBooked, "slot reservado não pode ser removido")
	}
	delete(s.slots, slotID)
	return nil
}

// --------------------------------------------------
// Bookings (leitura)
// --------------------------------------------------

func (s *Store) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, notFound("booking")
	}
	return &b, nil
}

func (s *Store) ListBookings(ctx context.Context, providerID uuid.UUID, status models.BookingStatus) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.ProviderID != providerID || (status != "" && b.Status != status) {
			continue
		}
		out = append(out, b)
	}
	sortBookings(out)
	return out, nil
}

func (s *Store) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.Status == models.BookingPending && b.CreatedAt.Before(cutoff) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func sortBookings(bs []models.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		a, b := bs[i], bs[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID.String() < b.ID.String()
	})
}

// Compile-time check
var (
	_ availability.Repository = (*Store)(nil)
	_ booking.Store           = (*Store)(nil)
	_ catalog.Repository      = (*Store)(nil)
)
