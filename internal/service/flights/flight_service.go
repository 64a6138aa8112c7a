package flights

import (
	"context"
	"fmt"
	"sync"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/filter"
	"github.com/Domenick1991/skybooking/internal/provider"
	"github.com/Domenick1991/skybooking/internal/seatmap"
)

type FlightUseCase interface {
	Search(ctx context.Context, criteria filter.Criteria) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	SeatMap(ctx context.Context, flightID string) (*seatmap.SeatMap, error)
	Refresh(ctx context.Context) error
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	provider provider.FlightProvider
	catalog  *catalog.Catalog
	cache    FlightCache

	mu       sync.Mutex
	seatMaps map[string]*seatmap.SeatMap
}

func NewFlightService(p provider.FlightProvider, cache FlightCache) *FlightService {
	return &FlightService{
		provider: p,
		catalog:  catalog.New(),
		cache:    cache,
		seatMaps: make(map[string]*seatmap.SeatMap),
	}
}

// Search loads the catalog if needed and applies the criteria to the
// snapshot. The result preserves catalog order; an empty slice is a
// valid outcome rendered as an empty state, not an error.
func (s *FlightService) Search(ctx context.Context, criteria filter.Criteria) ([]domain.Flight, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return filter.Apply(s.catalog.All(), criteria), nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.catalog.FindByID(id)
}

// SeatMap returns the seat grid for a flight. Grids are generated once
// per flight and reused; the transient seat selection is owned by the
// booking session, not by the map.
func (s *FlightService) SeatMap(ctx context.Context, flightID string) (*seatmap.SeatMap, error) {
	flight, err := s.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.seatMaps[flightID]; ok {
		return m, nil
	}
	m := s.provider.SeatMapFor(*flight)
	s.seatMaps[flightID] = m
	return m, nil
}

// Refresh fetches the collection from the provider and replaces the
// snapshot. Concurrent refreshes are not deduplicated: whichever fetch
// resolves last overwrites the snapshot, and in-flight fetches are not
// cancelled when a new one starts.
func (s *FlightService) Refresh(ctx context.Context) error {
	flights, err := s.provider.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	s.catalog.Load(flights)
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return nil
}

func (s *FlightService) ensureLoaded(ctx context.Context) error {
	if s.catalog.Len() > 0 {
		return nil
	}
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			s.catalog.Load(cached)
			return nil
		}
	}
	return s.Refresh(ctx)
}

var _ FlightUseCase = (*FlightService)(nil)
