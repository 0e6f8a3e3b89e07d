package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	availdomain "github.com/BruksfildServices01/braider-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/events"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/infra/memory"
	"github.com/BruksfildServices01/braider-booking/internal/models"
	"github.com/BruksfildServices01/braider-booking/internal/timezone"
)

var now = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

// ------------------------------------------------------
// fakes
// ------------------------------------------------------

type fakePublisher struct {
	mu  sync.Mutex
	got []events.Event
}

func (p *fakePublisher) Publish(ev events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, ev)
}

func (p *fakePublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.got))
	for _, ev := range p.got {
		out = append(out, ev.Type)
	}
	return out
}

type fakeCache struct {
	mu      sync.Mutex
	touched []uuid.UUID
}

func (c *fakeCache) Invalidate(_ context.Context, providerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched = append(c.touched, providerID)
}

// ------------------------------------------------------
// fixture
// ------------------------------------------------------

type fixture struct {
	store    *memory.Store
	pub      *fakePublisher
	cache    *fakeCache
	reserve  *Reserve
	trans    *Transition
	provider *models.Provider
	service  *models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := memory.New()
	pub := &fakePublisher{}
	cache := &fakeCache{}
	clock := timezone.FixedClock(now)

	p := &models.Provider{Name: "Ada", Status: models.ProviderApproved, Active: true}
	if err := store.CreateProvider(ctx, p); err != nil {
		t.Fatalf("provider: %v", err)
	}
	svc := &models.Service{ProviderID: p.ID, Name: "Box braids", Price: 120, DurationMin: 180, Available: true}
	if err := store.CreateService(ctx, svc); err != nil {
		t.Fatalf("service: %v", err)
	}

	return &fixture{
		store:    store,
		pub:      pub,
		cache:    cache,
		reserve:  NewReserve(store, store, pub, cache, clock),
		trans:    NewTransition(store, pub, cache, clock),
		provider: p,
		service:  svc,
	}
}

func (f *fixture) slot(t *testing.T, date, start, end string) *models.AvailabilitySlot {
	t.Helper()
	s := &models.AvailabilitySlot{ProviderID: f.provider.ID, Date: date, StartTime: start, EndTime: end}
	if err := f.store.CreateSlot(context.Background(), s); err != nil {
		t.Fatalf("slot: %v", err)
	}
	return s
}

func (f *fixture) input(slotID uuid.UUID, email string) ReserveInput {
	return ReserveInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		SlotID:     slotID,
		Client: domain.ClientInfo{
			Name:  "Cliente",
			Email: email,
			Phone: "+5511999990000",
		},
		AppointmentType: models.AtProvider,
	}
}

func (f *fixture) freeSlots(t *testing.T, month string) []models.AvailabilitySlot {
	t.Helper()
	rng, err := availdomain.MonthRange(month)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	slots, err := f.store.ListSlots(context.Background(), f.provider.ID, rng, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return slots
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("err = %v, want %s", err, code)
	}
}

// ------------------------------------------------------
// Reserve
// ------------------------------------------------------

func TestReserve_ScenarioBookCancelRelist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.slot(t, "2025-08-01", "09:00", "10:00")

	b1, err := f.reserve.Execute(ctx, f.input(s.ID, "a@example.com"))
	if err != nil {
		t.Fatalf("reserve A: %v", err)
	}
	if b1.Status != models.BookingPending || b1.Date != "2025-08-01" || b1.Time != "09:00" {
		t.Fatalf("unexpected booking %+v", b1)
	}
	if got, _ := f.store.GetSlot(ctx, s.ID); !got.IsBooked {
		t.Fatalf("slot should be booked")
	}

	_, err = f.reserve.Execute(ctx, f.input(s.ID, "b@example.com"))
	wantCode(t, err, httperr.CodeSlotUnavailable)

	cancelled, err := f.trans.Execute(ctx, TransitionInput{
		BookingID: b1.ID,
		Action:    domain.ActionCancel,
		Actor:     ProviderActor(f.provider.ID),
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != models.BookingCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("unexpected booking %+v", cancelled)
	}

	free := f.freeSlots(t, "2025-08")
	if len(free) != 1 || free[0].ID != s.ID {
		t.Fatalf("slot should be free again, got %+v", free)
	}

	want := []events.Type{events.BookingCreated, events.BookingCancelled}
	got := f.pub.types()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestReserve_ConcurrentSingleWinner(t *testing.T) {
	f := newFixture(t)
	s := f.slot(t, "2025-08-02", "14:00", "15:00")

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)

	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.reserve.Execute(context.Background(), f.input(s.ID, "c@example.com"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case httperr.IsBusiness(err, httperr.CodeSlotUnavailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if winners != 1 || conflicts != n-1 {
		t.Fatalf("winners=%d conflicts=%d", winners, conflicts)
	}

	bookings, _ := f.store.ListBookings(context.Background(), f.provider.ID, models.BookingPending)
	if len(bookings) != 1 {
		t.Fatalf("active bookings = %d, want 1", len(bookings))
	}
	if got := f.pub.types(); len(got) != 1 {
		t.Fatalf("events = %v, want exactly one", got)
	}
}

func TestReserve_FreeListingShrinksByBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var slots []*models.AvailabilitySlot
	for _, h := range [][2]string{
		{"08:00", "09:00"},
		{"09:00", "10:00"},
		{"10:00", "11:00"},
		{"11:00", "12:00"},
		{"12:00", "13:00"},
	} {
		slots = append(slots, f.slot(t, "2025-08-05", h[0], h[1]))
	}

	for _, s := range slots[:2] {
		if _, err := f.reserve.Execute(ctx, f.input(s.ID, "d@example.com")); err != nil {
			t.Fatalf("reserve: %v", err)
		}
	}

	if free := f.freeSlots(t, "2025-08"); len(free) != 3 {
		t.Fatalf("free = %d, want 3", len(free))
	}
}

func TestReserve_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.slot(t, "2025-08-03", "09:00", "10:00")

	other := &models.Provider{Name: "Bea", Status: models.ProviderApproved, Active: true}
	if err := f.store.CreateProvider(ctx, other); err != nil {
		t.Fatalf("provider: %v", err)
	}
	foreign := &models.AvailabilitySlot{ProviderID: other.ID, Date: "2025-08-03", StartTime: "09:00", EndTime: "10:00"}
	if err := f.store.CreateSlot(ctx, foreign); err != nil {
		t.Fatalf("slot: %v", err)
	}

	hidden := &models.Provider{Name: "Cy", Status: models.ProviderPending, Active: true}
	if err := f.store.CreateProvider(ctx, hidden); err != nil {
		t.Fatalf("provider: %v", err)
	}

	offline := &models.Service{ProviderID: f.provider.ID, Name: "Twists", Price: 80, DurationMin: 60}
	if err := f.store.CreateService(ctx, offline); err != nil {
		t.Fatalf("service: %v", err)
	}

	cases := []struct {
		name string
		mod  func(in *ReserveInput)
		code string
	}{
		{"missing name", func(in *ReserveInput) { in.Client.Name = "" }, httperr.CodeValidation},
		{"bad email", func(in *ReserveInput) { in.Client.Email = "nope" }, httperr.CodeValidation},
		{"bad type", func(in *ReserveInput) { in.AppointmentType = "drive-in" }, httperr.CodeValidation},
		{"home without address", func(in *ReserveInput) { in.AppointmentType = models.AtHome }, httperr.CodeValidation},
		{"unknown provider", func(in *ReserveInput) { in.ProviderID = uuid.New() }, httperr.CodeNotFound},
		{"hidden provider", func(in *ReserveInput) { in.ProviderID = hidden.ID }, httperr.CodeNotFound},
		{"unknown service", func(in *ReserveInput) { in.ServiceID = uuid.New() }, httperr.CodeNotFound},
		{"unavailable service", func(in *ReserveInput) { in.ServiceID = offline.ID }, httperr.CodeValidation},
		{"unknown slot", func(in *ReserveInput) { in.SlotID = uuid.New() }, httperr.CodeNotFound},
		{"slot of other provider", func(in *ReserveInput) { in.SlotID = foreign.ID }, httperr.CodeNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := f.input(s.ID, "e@example.com")
			tc.mod(&in)
			_, err := f.reserve.Execute(ctx, in)
			wantCode(t, err, tc.code)
		})
	}

	if got, _ := f.store.GetSlot(ctx, s.ID); got.IsBooked {
		t.Fatalf("failed reservations must not book the slot")
	}
	if got := f.pub.types(); len(got) != 0 {
		t.Fatalf("no event expected, got %v", got)
	}
}

func TestReserve_AtHomeKeepsAddress(t *testing.T) {
	f := newFixture(t)
	s := f.slot(t, "2025-08-04", "09:00", "10:00")

	in := f.input(s.ID, "  Ada@Example.COM ")
	in.AppointmentType = models.AtHome
	in.Client.Address = "Rua A, 10"

	b, err := f.reserve.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if b.ClientAddress != "Rua A, 10" || b.ClientEmail != "ada@example.com" {
		t.Fatalf("unexpected booking %+v", b)
	}
	if len(f.cache.touched) != 1 || f.cache.touched[0] != f.provider.ID {
		t.Fatalf("cache invalidations = %v", f.cache.touched)
	}
}

// ------------------------------------------------------
// Transition
// ------------------------------------------------------

func (f *fixture) booked(t *testing.T, date string) (*models.Booking, *models.AvailabilitySlot) {
	t.Helper()
	s := f.slot(t, date, "09:00", "10:00")
	b, err := f.reserve.Execute(context.Background(), f.input(s.ID, "client@example.com"))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	return b, s
}

func (f *fixture) act(b *models.Booking, a domain.Action, actor Actor) (*models.Booking, error) {
	return f.trans.Execute(context.Background(), TransitionInput{BookingID: b.ID, Action: a, Actor: actor})
}

func TestTransition_ConfirmKeepsSlotBooked(t *testing.T) {
	f := newFixture(t)
	b, s := f.booked(t, "2025-08-06")

	got, err := f.act(b, domain.ActionConfirm, ProviderActor(f.provider.ID))
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.Status != models.BookingConfirmed || got.ConfirmedAt == nil {
		t.Fatalf("unexpected %+v", got)
	}
	if slot, _ := f.store.GetSlot(context.Background(), s.ID); !slot.IsBooked {
		t.Fatalf("confirmed booking must keep slot booked")
	}
}

func TestTransition_RejectFreesSlot(t *testing.T) {
	f := newFixture(t)
	b, s := f.booked(t, "2025-08-07")

	if _, err := f.act(b, domain.ActionReject, ProviderActor(f.provider.ID)); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if slot, _ := f.store.GetSlot(context.Background(), s.ID); slot.IsBooked {
		t.Fatalf("rejected booking must free the slot")
	}

	// o slot liberado pode ser reservado de novo
	if _, err := f.reserve.Execute(context.Background(), f.input(s.ID, "z@example.com")); err != nil {
		t.Fatalf("re-reserve: %v", err)
	}
}

func TestTransition_TerminalStatesAreImmutable(t *testing.T) {
	f := newFixture(t)
	owner := ProviderActor(f.provider.ID)

	for _, tc := range []struct {
		first domain.Action
		date  string
	}{
		{domain.ActionCancel, "2025-08-08"},
		{domain.ActionReject, "2025-08-09"},
	} {
		b, _ := f.booked(t, tc.date)

		done, err := f.act(b, tc.first, owner)
		if err != nil {
			t.Fatalf("%s: %v", tc.first, err)
		}

		for _, a := range []domain.Action{domain.ActionConfirm, domain.ActionReject, domain.ActionCancel} {
			_, err := f.act(b, a, owner)
			wantCode(t, err, httperr.CodeInvalidTransition)
		}

		stored, _ := f.store.GetBooking(context.Background(), b.ID)
		if stored.Status != done.Status {
			t.Fatalf("status changed to %s after terminal %s", stored.Status, done.Status)
		}
	}
}

func TestTransition_ConfirmedCanOnlyCancel(t *testing.T) {
	f := newFixture(t)
	owner := ProviderActor(f.provider.ID)
	b, s := f.booked(t, "2025-08-10")

	if _, err := f.act(b, domain.ActionConfirm, owner); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	_, err := f.act(b, domain.ActionReject, owner)
	wantCode(t, err, httperr.CodeInvalidTransition)
	_, err = f.act(b, domain.ActionConfirm, owner)
	wantCode(t, err, httperr.CodeInvalidTransition)

	if _, err := f.act(b, domain.ActionCancel, owner); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if slot, _ := f.store.GetSlot(context.Background(), s.ID); slot.IsBooked {
		t.Fatalf("cancel must free the slot")
	}
}

func TestTransition_Actors(t *testing.T) {
	f := newFixture(t)
	b, _ := f.booked(t, "2025-08-11")

	_, err := f.act(b, domain.ActionConfirm, ProviderActor(uuid.New()))
	wantCode(t, err, httperr.CodeNotFound)

	_, err = f.act(b, domain.ActionCancel, ClientActor("other@example.com"))
	wantCode(t, err, httperr.CodeNotFound)

	_, err = f.act(b, domain.ActionConfirm, ClientActor("client@example.com"))
	wantCode(t, err, httperr.CodeValidation)

	_, err = f.act(b, "archive", ProviderActor(f.provider.ID))
	wantCode(t, err, httperr.CodeValidation)

	got, err := f.act(b, domain.ActionCancel, ClientActor(" CLIENT@example.com "))
	if err != nil {
		t.Fatalf("client cancel: %v", err)
	}
	if got.Status != models.BookingCancelled {
		t.Fatalf("status = %s", got.Status)
	}
}

func TestTransition_EmitsOneEventPerSuccess(t *testing.T) {
	f := newFixture(t)
	owner := ProviderActor(f.provider.ID)
	b, _ := f.booked(t, "2025-08-12")

	_, _ = f.act(b, domain.ActionConfirm, owner)
	_, _ = f.act(b, domain.ActionConfirm, owner) // inválida
	_, _ = f.act(b, domain.ActionCancel, owner)

	want := []events.Type{events.BookingCreated, events.BookingConfirmed, events.BookingCancelled}
	got := f.pub.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

// ------------------------------------------------------
// Queries / expiry
// ------------------------------------------------------

func TestListBookings_FilterAndOrder(t *testing.T) {
	f := newFixture(t)
	owner := ProviderActor(f.provider.ID)

	late, _ := f.booked(t, "2025-08-20")
	early, _ := f.booked(t, "2025-08-15")
	if _, err := f.act(late, domain.ActionConfirm, owner); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	uc := NewListBookings(f.store)

	all, err := uc.Execute(context.Background(), f.provider.ID, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].ID != early.ID || all[1].ID != late.ID {
		t.Fatalf("unexpected order %+v", all)
	}

	pending, _ := uc.Execute(context.Background(), f.provider.ID, models.BookingPending)
	if len(pending) != 1 || pending[0].ID != early.ID {
		t.Fatalf("pending = %+v", pending)
	}

	_, err = uc.Execute(context.Background(), f.provider.ID, "archived")
	wantCode(t, err, httperr.CodeValidation)
}

func TestGetBooking_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	b, _ := f.booked(t, "2025-08-16")
	uc := NewGetBooking(f.store)

	if _, err := uc.Execute(context.Background(), f.provider.ID, b.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	_, err := uc.Execute(context.Background(), uuid.New(), b.ID)
	wantCode(t, err, httperr.CodeNotFound)
}

func TestExpirePendingHolds(t *testing.T) {
	f := newFixture(t)
	owner := ProviderActor(f.provider.ID)

	stale, staleSlot := f.booked(t, "2025-08-17")
	confirmed, _ := f.booked(t, "2025-08-18")
	if _, err := f.act(confirmed, domain.ActionConfirm, owner); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	later := timezone.FixedClock(now.Add(2 * time.Hour))
	tr := NewTransition(f.store, f.pub, f.cache, later)
	uc := NewExpirePendingHolds(f.store, tr, time.Hour, later, zaptest.NewLogger(t))

	n, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 1 {
		t.Fatalf("expired = %d, want 1", n)
	}

	got, _ := f.store.GetBooking(context.Background(), stale.ID)
	if got.Status != models.BookingCancelled {
		t.Fatalf("stale status = %s", got.Status)
	}
	if slot, _ := f.store.GetSlot(context.Background(), staleSlot.ID); slot.IsBooked {
		t.Fatalf("expired hold must free the slot")
	}
	kept, _ := f.store.GetBooking(context.Background(), confirmed.ID)
	if kept.Status != models.BookingConfirmed {
		t.Fatalf("confirmed booking must be untouched")
	}
}

func TestExpirePendingHolds_DisabledWithZeroTTL(t *testing.T) {
	f := newFixture(t)
	f.booked(t, "2025-08-19")

	far := timezone.FixedClock(now.Add(24 * time.Hour))
	uc := NewExpirePendingHolds(f.store, f.trans, 0, far, zaptest.NewLogger(t))

	n, err := uc.Execute(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("n=%d err=%v, want no-op", n, err)
	}
}
