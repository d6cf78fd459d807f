package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/data/repository"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("store down")

type fakeSeatRepo struct {
	seats map[int64][]*entity.Seat
}

func (f *fakeSeatRepo) FindBySchedule(_ context.Context, scheduleID int64) ([]*entity.Seat, error) {
	return f.seats[scheduleID], nil
}

func (f *fakeSeatRepo) FindByScheduleAndID(_ context.Context, scheduleID, seatID int64) (*entity.Seat, error) {
	for _, s := range f.seats[scheduleID] {
		if s.ID == seatID {
			return s, nil
		}
	}
	return nil, nil
}

type fakeScheduleRepo struct {
	schedules []*entity.Schedule
}

func (f *fakeScheduleRepo) FindByID(_ context.Context, id int64) (*entity.Schedule, error) {
	for _, s := range f.schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) FindByDate(_ context.Context, date string) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range f.schedules {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBookingIntentRepo struct {
	mu      sync.Mutex
	intents []*entity.BookingIntent
	err     error
}

func (f *fakeBookingIntentRepo) Create(_ context.Context, intent *entity.BookingIntent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.intents = append(f.intents, intent)
	return nil
}

func (f *fakeBookingIntentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BookingIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, i := range f.intents {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingIntentRepo) FindBySchedule(_ context.Context, scheduleID int64, limit, offset int) ([]*entity.BookingIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.BookingIntent
	for _, i := range f.intents {
		if i.ScheduleID == scheduleID {
			matched = append(matched, i)
		}
	}
	if offset >= len(matched) {
		return []*entity.BookingIntent{}, nil
	}
	return matched[offset:min(offset+limit, len(matched))], nil
}

func (f *fakeBookingIntentRepo) CountBySchedule(_ context.Context, scheduleID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, i := range f.intents {
		if i.ScheduleID == scheduleID {
			n++
		}
	}
	return n, nil
}

// fakeSelectionRepo holds its lock across the read-modify-write in Update,
// matching the store's atomic contract. readDelay widens the window between
// reading and writing the cart.
type fakeSelectionRepo struct {
	mu        sync.Mutex
	items     map[string]*entity.Selection
	readDelay time.Duration
}

func selKey(sessionID uuid.UUID, scheduleID int64) string {
	return fmt.Sprintf("%s:%d", sessionID, scheduleID)
}

func cloneSelection(sel *entity.Selection) *entity.Selection {
	if sel == nil {
		return nil
	}
	cp := *sel
	cp.SeatNames = slices.Clone(sel.SeatNames)
	cp.SeatIDs = slices.Clone(sel.SeatIDs)
	return &cp
}

func (f *fakeSelectionRepo) Delete(_ context.Context, sessionID uuid.UUID, scheduleID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, selKey(sessionID, scheduleID))
	return nil
}

func (f *fakeSelectionRepo) Update(_ context.Context, sessionID uuid.UUID, scheduleID int64, fn repository.SelectionUpdateFunc) (*entity.Selection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := cloneSelection(f.items[selKey(sessionID, scheduleID)])
	time.Sleep(f.readDelay)

	updated, err := fn(current)
	if err != nil {
		return nil, err
	}
	f.items[selKey(sessionID, scheduleID)] = cloneSelection(updated)
	return updated, nil
}

func (f *fakeSelectionRepo) Take(_ context.Context, sessionID uuid.UUID, scheduleID int64) (*entity.Selection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := selKey(sessionID, scheduleID)
	sel := f.items[key]
	delete(f.items, key)
	return cloneSelection(sel), nil
}

type fakeIntentStore struct {
	mu      sync.Mutex
	intents map[uuid.UUID]*entity.BookingIntent
	findErr error
}

func (f *fakeIntentStore) Find(_ context.Context, sessionID uuid.UUID) (*entity.BookingIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.intents[sessionID], nil
}

func (f *fakeIntentStore) Save(_ context.Context, intent *entity.BookingIntent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents[intent.SessionID] = intent
	return nil
}

type pushedNotice struct {
	notice *entity.Notice
	ttl    time.Duration
}

type fakeNoticeRepo struct {
	mu      sync.Mutex
	notices map[uuid.UUID]pushedNotice
}

func (f *fakeNoticeRepo) Push(_ context.Context, sessionID uuid.UUID, notice *entity.Notice, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices[sessionID] = pushedNotice{notice: notice, ttl: ttl}
	return nil
}

func (f *fakeNoticeRepo) Find(_ context.Context, sessionID uuid.UUID) (*entity.Notice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.notices[sessionID]
	if !ok {
		return nil, nil
	}
	return p.notice, nil
}

func (f *fakeNoticeRepo) Dismiss(_ context.Context, sessionID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.notices, sessionID)
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []any
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, payload)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type fixture struct {
	repo       *repository.Repository
	seats      *fakeSeatRepo
	schedules  *fakeScheduleRepo
	intents    *fakeBookingIntentRepo
	selections *fakeSelectionRepo
	store      *fakeIntentStore
	notices    *fakeNoticeRepo
	publisher  *fakePublisher
}

// newFixture seeds schedule 42 (Inception, Room A) with A1 NORMAL 75000,
// A2 VIP 95000, A3 reserved and C1..C9 NORMAL 50000.
func newFixture() *fixture {
	seats := []*entity.Seat{
		{ID: 1, ScheduleID: 42, Name: "A1", Type: entity.SeatTypeNormal, Price: 75000},
		{ID: 2, ScheduleID: 42, Name: "A2", Type: entity.SeatTypeVIP, Price: 95000},
		{ID: 3, ScheduleID: 42, Name: "A3", Type: entity.SeatTypeNormal, Price: 75000, IsReserved: true},
	}
	for i := 1; i <= 9; i++ {
		seats = append(seats, &entity.Seat{
			ID:         int64(100 + i),
			ScheduleID: 42,
			Name:       fmt.Sprintf("C%d", i),
			Type:       entity.SeatTypeNormal,
			Price:      50000,
		})
	}

	f := &fixture{
		seats: &fakeSeatRepo{seats: map[int64][]*entity.Seat{42: seats}},
		schedules: &fakeScheduleRepo{schedules: []*entity.Schedule{
			{ID: 42, MovieID: 1, RoomID: 1, MovieName: "Inception", RoomName: "Room A", Date: "2024-11-01", TimeStart: "18:00", TimeEnd: "20:10"},
			{ID: 43, MovieID: 1, RoomID: 2, MovieName: "Inception", RoomName: "Room B", Date: "2024-11-01", TimeStart: "21:00", TimeEnd: "23:10"},
			{ID: 44, MovieID: 2, RoomID: 1, MovieName: "Dune", RoomName: "Room A", Date: "2024-11-01", TimeStart: "20:30", TimeEnd: "23:15"},
			{ID: 45, MovieID: 2, RoomID: 1, MovieName: "Dune", RoomName: "Room A", Date: "2024-11-02", TimeStart: "10:00", TimeEnd: "12:45"},
		}},
		intents:    &fakeBookingIntentRepo{},
		selections: &fakeSelectionRepo{items: map[string]*entity.Selection{}},
		store:      &fakeIntentStore{intents: map[uuid.UUID]*entity.BookingIntent{}},
		notices:    &fakeNoticeRepo{notices: map[uuid.UUID]pushedNotice{}},
		publisher:  &fakePublisher{},
	}
	f.repo = &repository.Repository{
		Seat:          f.seats,
		Schedule:      f.schedules,
		BookingIntent: f.intents,
		Selection:     f.selections,
		IntentStore:   f.store,
		Notice:        f.notices,
	}
	return f
}
