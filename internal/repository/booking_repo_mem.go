package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, tab domain.ListTab) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	CompleteBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error)
}

// MemBookingRepository keeps bookings in insertion order in memory.
// Persistence across sessions is out of scope, but the interface above is
// cut so a database-backed implementation can replace this one.
type MemBookingRepository struct {
	mu       sync.RWMutex
	order    []string
	bookings map[string]domain.Booking
}

func NewBookingRepository() *MemBookingRepository {
	return &MemBookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *MemBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.order = append(r.order, booking.ID)
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *MemBookingRepository) List(ctx context.Context, tab domain.ListTab) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Booking, 0, len(r.order))
	for _, id := range r.order {
		if b := r.bookings[id]; tab.Matches(b.Status) {
			result = append(result, b)
		}
	}
	return result, nil
}

// UpdateStatus applies one of the external terminal transitions. Only an
// upcoming booking can move; completed and cancelled never change again.
func (r *MemBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if b.Status.Terminal() {
		return nil, domain.ErrStatusFinal
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return &b, nil
}

// CompleteBefore marks upcoming bookings created before the deadline as
// completed and returns them, oldest first.
func (r *MemBookingRepository) CompleteBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var completed []domain.Booking
	for _, id := range r.order {
		b := r.bookings[id]
		if b.Status != domain.BookingStatusUpcoming || !b.CreatedAt.Before(deadline) {
			continue
		}
		b.Status = domain.BookingStatusCompleted
		b.UpdatedAt = time.Now()
		r.bookings[id] = b
		completed = append(completed, b)
	}
	return completed, nil
}

var _ BookingRepository = (*MemBookingRepository)(nil)
