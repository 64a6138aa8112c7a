package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/seatmap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context, tab domain.ListTab) ([]domain.Booking, error)
	CompleteBooking(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	CompleteDeparted(ctx context.Context) ([]domain.Booking, error)
}

// Flights is the slice of the flight use case this service needs.
type Flights interface {
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	SeatMap(ctx context.Context, flightID string) (*seatmap.SeatMap, error)
}

type Cache interface {
	AcquireSeatHold(ctx context.Context, flightID, seatID string, ttl time.Duration) (bool, error)
	ReleaseSeatHold(ctx context.Context, flightID, seatID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

// publishRetries bounds redelivery attempts for booking-topic events;
// notifications are best-effort and published once.
const publishRetries = 3

type BookingService struct {
	bookings           repository.BookingRepository
	flights            Flights
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	seatHoldTTL        time.Duration
	completeAfter      time.Duration
}

type CreateBookingInput struct {
	FlightID   string `json:"flight_id"`
	SeatID     string `json:"seat_id"`
	Passengers int    `json:"passengers"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights Flights,
	cache Cache,
	producer Producer,
	bookingTopic string,
	seatHoldTTL, completeAfter time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:      bookings,
		flights:       flights,
		cache:         cache,
		producer:      producer,
		bookingTopic:  bookingTopic,
		seatHoldTTL:   seatHoldTTL,
		completeAfter: completeAfter,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking runs one booking attempt end to end: look up the flight,
// select the seat on a fresh selector, then drive the workflow through
// chooseSeat and confirm. Selector and workflow are scoped to this one
// attempt; nothing carries over to the next request.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	seatMap, err := s.flights.SeatMap(ctx, flight.ID)
	if err != nil {
		return nil, err
	}

	selector := seatmap.NewSelector(seatMap)
	if err := selector.Select(input.SeatID); err != nil {
		return nil, err
	}

	held := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSeatHold(ctx, flight.ID, input.SeatID, s.seatHoldTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrSeatUnavailable
		}
		held = true
	}

	wf := Begin(*flight)
	if err := wf.ChooseSeat(selector); err != nil {
		s.releaseHold(ctx, held, flight.ID, input.SeatID)
		return nil, err
	}
	booking, err := wf.Confirm(input.Passengers)
	if err != nil {
		s.releaseHold(ctx, held, flight.ID, input.SeatID)
		return nil, err
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.releaseHold(ctx, held, flight.ID, input.SeatID)
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		fmt.Printf("WARNING: Failed to publish booking_created event for booking %s: %v\n", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context, tab domain.ListTab) ([]domain.Booking, error) {
	return s.bookings.List(ctx, tab)
}

// CompleteBooking applies the external UPCOMING -> COMPLETED transition.
func (s *BookingService) CompleteBooking(ctx context.Context, id string) (*domain.Booking, error) {
	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "booking_completed", updated); err != nil {
		fmt.Printf("WARNING: Failed to publish booking_completed event for booking %s: %v\n", updated.ID, err)
	}
	return updated, nil
}

// CancelBooking applies the external UPCOMING -> CANCELLED transition and
// releases the seat hold.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.ReleaseSeatHold(ctx, updated.FlightID, updated.SeatID)
	}
	if err := s.publish(ctx, "booking_cancelled", updated); err != nil {
		fmt.Printf("WARNING: Failed to publish booking_cancelled event for booking %s: %v\n", updated.ID, err)
	}
	return updated, nil
}

// CompleteDeparted is the worker sweep standing in for the time-based
// process that completes bookings after their flight has departed.
func (s *BookingService) CompleteDeparted(ctx context.Context) ([]domain.Booking, error) {
	deadline := time.Now().Add(-s.completeAfter)
	completed, err := s.bookings.CompleteBefore(ctx, deadline)
	if err != nil {
		return nil, err
	}
	for _, b := range completed {
		_ = s.publish(ctx, "booking_completed", &b)
		if s.cache != nil {
			_ = s.cache.ReleaseSeatHold(ctx, b.FlightID, b.SeatID)
		}
	}
	return completed, nil
}

// RunCompletionSweep periodically applies the time-based completion
// transition until the context is canceled. It must run in the process
// that owns the booking store: with the in-memory repository there is no
// shared state for a separate process to sweep.
func (s *BookingService) RunCompletionSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			completed, err := s.CompleteDeparted(ctx)
			if err != nil {
				log.Printf("complete departed bookings error: %v", err)
				continue
			}
			if len(completed) > 0 {
				log.Printf("completed %d bookings", len(completed))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *BookingService) releaseHold(ctx context.Context, held bool, flightID, seatID string) {
	if held && s.cache != nil {
		_ = s.cache.ReleaseSeatHold(ctx, flightID, seatID)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		FlightID:   booking.FlightID,
		SeatID:     booking.SeatID,
		Passengers: booking.PassengerCount,
		Status:     string(booking.Status),
		Total:      booking.Fare.Total,
	}
	if err := s.producer.PublishWithRetry(ctx, s.bookingTopic, booking.ID, event, publishRetries); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
