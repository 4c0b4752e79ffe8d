package memory

import (
	"fmt"
	"slices"
	"sync"

	"bookingRegistry/internal/lib/clock"
	"bookingRegistry/internal/models"
	"bookingRegistry/internal/storage"
)

// Storage keeps bookings in process memory. Creation order is kept in ids;
// nextID only ever grows, so an id is never handed out twice. A single mutex
// serializes every read and write.
type Storage struct {
	mu       sync.Mutex
	clock    clock.Clock
	ids      []int
	bookings map[int]*models.Booking
	nextID   int
}

func New(clk clock.Clock) *Storage {
	return &Storage{
		clock:    clk,
		bookings: make(map[int]*models.Booking),
		nextID:   1,
	}
}

func (s *Storage) ListBookings() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]models.Booking, 0, len(s.ids))
	for _, id := range s.ids {
		list = append(list, s.bookings[id].Clone())
	}

	return list, nil
}

// CreateBooking stores a new booking built from an already validated payload.
func (s *Storage) CreateBooking(p models.BookingPayload) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(models.NewBooking(s.nextID, p, s.clock.Now())), nil
}

func (s *Storage) GetBooking(id int) (models.Booking, error) {
	const op = "storage.memory.GetBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	return b.Clone(), nil
}

// UpdateBooking applies an already validated payload to the booking in place.
func (s *Storage) UpdateBooking(id int, p models.BookingPayload) (models.Booking, error) {
	const op = "storage.memory.UpdateBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	b.Apply(p, s.clock.Now())

	return b.Clone(), nil
}

// CancelBooking removes the booking and returns it as it was.
func (s *Storage) CancelBooking(id int) (models.Booking, error) {
	const op = "storage.memory.CancelBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	delete(s.bookings, id)
	s.ids = slices.DeleteFunc(s.ids, func(v int) bool { return v == id })

	return *b, nil
}

func (s *Storage) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}

// insert must be called with mu held.
func (s *Storage) insert(b models.Booking) models.Booking {
	s.nextID = b.ID + 1
	s.ids = append(s.ids, b.ID)
	s.bookings[b.ID] = &b

	return b.Clone()
}
