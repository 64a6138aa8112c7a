package provider

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/seatmap"
)

// FlightProvider is the contract the catalog depends on. A network-backed
// provider can replace the mock one without touching the core.
type FlightProvider interface {
	Fetch(ctx context.Context) ([]domain.Flight, error)
	SeatMapFor(flight domain.Flight) *seatmap.SeatMap
}
