package flights

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/filter"
	"github.com/Domenick1991/skybooking/internal/seatmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Fetch(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockProvider) SeatMapFor(flight domain.Flight) *seatmap.SeatMap {
	args := m.Called(flight)
	return args.Get(0).(*seatmap.SeatMap)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func sampleFlights() []domain.Flight {
	return []domain.Flight{
		{ID: "f1", Airline: "SkyAir", Price: 250, Stops: 0},
		{ID: "f2", Airline: "Horizon", Price: 700, Stops: 1},
	}
}

func TestFlightService_Search_CacheMiss(t *testing.T) {
	mockProvider := &MockProvider{}
	mockCache := &MockCache{}

	service := NewFlightService(mockProvider, mockCache)

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockProvider.On("Fetch", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.Search(ctx, filter.Default())

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockProvider.AssertExpectations(t)
}

func TestFlightService_Search_CacheHit(t *testing.T) {
	mockProvider := &MockProvider{}
	mockCache := &MockCache{}

	service := NewFlightService(mockProvider, mockCache)

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(flights, nil).Once()

	result, err := service.Search(ctx, filter.Default())

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockProvider.AssertNotCalled(t, "Fetch")
}

func TestFlightService_Search_AppliesCriteria(t *testing.T) {
	mockProvider := &MockProvider{}

	service := NewFlightService(mockProvider, nil)

	ctx := context.Background()
	mockProvider.On("Fetch", ctx).Return(sampleFlights(), nil).Once()

	result, err := service.Search(ctx, filter.Criteria{
		PriceRange: filter.PriceUnder300,
		Airline:    filter.AirlineAll,
		Stops:      filter.StopsDirect,
	})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "f1", result[0].ID)
}

func TestFlightService_Search_FetchError(t *testing.T) {
	mockProvider := &MockProvider{}

	service := NewFlightService(mockProvider, nil)

	ctx := context.Background()
	mockProvider.On("Fetch", ctx).Return(nil, errors.New("upstream down")).Once()

	result, err := service.Search(ctx, filter.Default())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockProvider := &MockProvider{}

	service := NewFlightService(mockProvider, nil)

	ctx := context.Background()
	mockProvider.On("Fetch", ctx).Return(sampleFlights(), nil).Once()

	_, err := service.GetByID(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFlightService_SeatMap_GeneratedOncePerFlight(t *testing.T) {
	mockProvider := &MockProvider{}

	service := NewFlightService(mockProvider, nil)

	ctx := context.Background()
	flights := sampleFlights()
	grid := seatmap.New(6, []string{"A", "B", "C", "D", "E", "F"}, []string{"3C"})

	mockProvider.On("Fetch", ctx).Return(flights, nil).Once()
	mockProvider.On("SeatMapFor", flights[0]).Return(grid).Once()

	first, err := service.SeatMap(ctx, "f1")
	assert.NoError(t, err)
	second, err := service.SeatMap(ctx, "f1")
	assert.NoError(t, err)

	assert.Same(t, first, second)
	mockProvider.AssertExpectations(t)
}

func TestFlightService_Refresh_Overwrites(t *testing.T) {
	mockProvider := &MockProvider{}

	service := NewFlightService(mockProvider, nil)

	ctx := context.Background()
	mockProvider.On("Fetch", ctx).Return(sampleFlights(), nil).Once()
	assert.NoError(t, service.Refresh(ctx))

	replacement := []domain.Flight{{ID: "f9", Airline: "Global Airways", Price: 410, Stops: 1}}
	mockProvider.On("Fetch", ctx).Return(replacement, nil).Once()
	assert.NoError(t, service.Refresh(ctx))

	result, err := service.Search(ctx, filter.Default())
	assert.NoError(t, err)
	assert.Equal(t, replacement, result)
}
