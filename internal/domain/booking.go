package domain

import "time"

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "UPCOMING"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Terminal reports whether no further status transitions are allowed.
// A booking leaves UPCOMING exactly once and never returns.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// FareBreakdown splits a flight's total price into base fare and the
// fixed taxes-and-fees component. BaseFare + TaxesAndFees == Total.
type FareBreakdown struct {
	BaseFare     int64 `json:"base_fare"`
	TaxesAndFees int64 `json:"taxes_and_fees"`
	Total        int64 `json:"total"`
}

// Booking is the record produced when a flight and seat are confirmed.
// It references the flight by id rather than embedding a copy, and it
// snapshots the fare computed at confirmation time.
type Booking struct {
	ID             string        `json:"id"`
	FlightID       string        `json:"flight_id"`
	SeatID         string        `json:"seat_id"`
	PassengerCount int           `json:"passenger_count"`
	Status         BookingStatus `json:"status"`
	Fare           FareBreakdown `json:"fare"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ListTab mirrors the three-way tab on the bookings screen.
type ListTab string

const (
	TabUpcoming ListTab = "upcoming"
	TabPast     ListTab = "past"
	TabAll      ListTab = "all"
)

func ParseListTab(s string) (ListTab, bool) {
	switch ListTab(s) {
	case TabUpcoming, TabPast, TabAll:
		return ListTab(s), true
	case "":
		return TabUpcoming, true
	}
	return "", false
}

// Matches reports whether a booking with the given status belongs on the tab.
func (t ListTab) Matches(s BookingStatus) bool {
	switch t {
	case TabUpcoming:
		return s == BookingStatusUpcoming
	case TabPast:
		return s == BookingStatusCompleted || s == BookingStatusCancelled
	default:
		return true
	}
}
