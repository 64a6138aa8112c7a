package filter

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type PriceRange string

const (
	PriceAll       PriceRange = "all"
	PriceUnder300  PriceRange = "under300"
	Price300to600  PriceRange = "300-600"
	Price600to1000 PriceRange = "600-1000"
	PriceOver1000  PriceRange = "over1000"
)

type StopsFilter string

const (
	StopsAny    StopsFilter = "any"
	StopsDirect StopsFilter = "direct"
	StopsOne    StopsFilter = "1stop"
)

// AirlineAll disables the airline criterion; any other value is matched
// case-insensitively against the flight's airline name.
const AirlineAll = "all"

// Criteria is the three-dimensional filter selection applied to a flight
// collection. The zero value is not valid, use Default.
type Criteria struct {
	PriceRange PriceRange
	Airline    string
	Stops      StopsFilter
}

// Default matches every flight.
func Default() Criteria {
	return Criteria{PriceRange: PriceAll, Airline: AirlineAll, Stops: StopsAny}
}

func ParsePriceRange(s string) (PriceRange, error) {
	switch PriceRange(s) {
	case PriceAll, PriceUnder300, Price300to600, Price600to1000, PriceOver1000:
		return PriceRange(s), nil
	case "":
		return PriceAll, nil
	}
	return "", fmt.Errorf("unknown price range %q", s)
}

func ParseStops(s string) (StopsFilter, error) {
	switch StopsFilter(s) {
	case StopsAny, StopsDirect, StopsOne:
		return StopsFilter(s), nil
	case "":
		return StopsAny, nil
	}
	return "", fmt.Errorf("unknown stops filter %q", s)
}

// Apply selects the subset of flights matching every active criterion.
// It is pure and order-preserving: flights are only removed, never
// reordered. An empty result is a valid outcome, not an error.
func Apply(flights []domain.Flight, c Criteria) []domain.Flight {
	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if matchesPrice(f.Price, c.PriceRange) && matchesAirline(f.Airline, c.Airline) && matchesStops(f.Stops, c.Stops) {
			result = append(result, f)
		}
	}
	return result
}

// Boundary prices 300, 600 and 1000 land in the lower bucket that names
// them: 300 and 600 are inside 300-600, 600 and 1000 inside 600-1000.
func matchesPrice(price int64, r PriceRange) bool {
	switch r {
	case PriceUnder300:
		return price < 300
	case Price300to600:
		return price >= 300 && price <= 600
	case Price600to1000:
		return price >= 600 && price <= 1000
	case PriceOver1000:
		return price > 1000
	default:
		return true
	}
}

func matchesAirline(airline, want string) bool {
	if want == AirlineAll {
		return true
	}
	return strings.EqualFold(airline, want)
}

// Flights with two or more stops pass only under StopsAny.
func matchesStops(stops int, f StopsFilter) bool {
	switch f {
	case StopsDirect:
		return stops == 0
	case StopsOne:
		return stops == 1
	default:
		return true
	}
}
