package provider

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/seatmap"
)

var seatColumns = []string{"A", "B", "C", "D", "E", "F"}

const (
	seatRows          = 6
	unavailablePerMap = 6
)

// MockProvider serves a fixed in-memory flight collection, simulating the
// upstream flights feed. The optional latency makes the fetch behave like
// a network call, it honors context cancellation.
type MockProvider struct {
	flights []domain.Flight
	latency time.Duration
}

func NewMockProvider(latency time.Duration) *MockProvider {
	return &MockProvider{flights: mockFlights(), latency: latency}
}

func (p *MockProvider) Fetch(ctx context.Context) ([]domain.Flight, error) {
	if p.latency > 0 {
		select {
		case <-time.After(p.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	out := make([]domain.Flight, len(p.flights))
	copy(out, p.flights)
	return out, nil
}

// SeatMapFor builds the seat grid for a flight. The unavailable set is
// derived from the flight id, so repeated calls return the same layout.
func (p *MockProvider) SeatMapFor(flight domain.Flight) *seatmap.SeatMap {
	h := fnv.New64a()
	h.Write([]byte(flight.ID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	taken := make(map[string]struct{}, unavailablePerMap)
	unavailable := make([]string, 0, unavailablePerMap)
	for len(unavailable) < unavailablePerMap {
		row := rng.Intn(seatRows) + 1
		col := seatColumns[rng.Intn(len(seatColumns))]
		id := seatmap.SeatID(row, col)
		if _, dup := taken[id]; dup {
			continue
		}
		taken[id] = struct{}{}
		unavailable = append(unavailable, id)
	}
	return seatmap.New(seatRows, seatColumns, unavailable)
}

func mockFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:               "f1",
			Airline:          "SkyAir",
			FlightNumber:     "SA1234",
			DepartureCity:    "New York",
			DepartureAirport: "JFK",
			DepartureTime:    "09:45 AM",
			ArrivalCity:      "Los Angeles",
			ArrivalAirport:   "LAX",
			ArrivalTime:      "01:15 PM",
			Duration:         "6h 30m",
			Price:            289,
			Amenities:        []domain.Amenity{domain.AmenityWifi, domain.AmenityEntertainment},
			Stops:            0,
		},
		{
			ID:               "f2",
			Airline:          "Global Airways",
			FlightNumber:     "GA5678",
			DepartureCity:    "San Francisco",
			DepartureAirport: "SFO",
			DepartureTime:    "02:30 PM",
			ArrivalCity:      "Chicago",
			ArrivalAirport:   "ORD",
			ArrivalTime:      "08:45 PM",
			Duration:         "4h 15m",
			Price:            425,
			Amenities:        []domain.Amenity{domain.AmenityWifi, domain.AmenityFood},
			Stops:            1,
		},
		{
			ID:               "f3",
			Airline:          "Horizon",
			FlightNumber:     "HZ9012",
			DepartureCity:    "Miami",
			DepartureAirport: "MIA",
			DepartureTime:    "11:20 AM",
			ArrivalCity:      "New York",
			ArrivalAirport:   "JFK",
			ArrivalTime:      "02:10 PM",
			Duration:         "2h 50m",
			Price:            199,
			Amenities:        []domain.Amenity{domain.AmenityWifi},
			Stops:            0,
		},
		{
			ID:               "f4",
			Airline:          "Ocean Pacific",
			FlightNumber:     "OP3456",
			DepartureCity:    "Los Angeles",
			DepartureAirport: "LAX",
			DepartureTime:    "08:15 AM",
			ArrivalCity:      "Denver",
			ArrivalAirport:   "DEN",
			ArrivalTime:      "11:30 AM",
			Duration:         "2h 15m",
			Price:            645,
			Amenities:        []domain.Amenity{domain.AmenityWifi, domain.AmenityFood, domain.AmenityEntertainment},
			Stops:            1,
		},
		{
			ID:               "f5",
			Airline:          "SkyAir",
			FlightNumber:     "SA7890",
			DepartureCity:    "Boston",
			DepartureAirport: "BOS",
			DepartureTime:    "04:40 PM",
			ArrivalCity:      "Seattle",
			ArrivalAirport:   "SEA",
			ArrivalTime:      "08:05 PM",
			Duration:         "6h 25m",
			Price:            1120,
			Amenities:        []domain.Amenity{domain.AmenityWifi, domain.AmenityFood, domain.AmenityEntertainment},
			Stops:            2,
		},
		{
			ID:               "f6",
			Airline:          "Horizon",
			FlightNumber:     "HZ3344",
			DepartureCity:    "Chicago",
			DepartureAirport: "ORD",
			DepartureTime:    "07:10 AM",
			ArrivalCity:      "Miami",
			ArrivalAirport:   "MIA",
			ArrivalTime:      "11:05 AM",
			Duration:         "2h 55m",
			Price:            600,
			Amenities:        []domain.Amenity{domain.AmenityFood},
			Stops:            0,
		},
	}
}
