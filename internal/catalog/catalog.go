package catalog

import (
	"sync/atomic"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type snapshot struct {
	flights []domain.Flight
	byID    map[string]domain.Flight
}

// Catalog is a read-only view over the flight collection supplied by the
// data provider. Load replaces the whole snapshot at once; a superseding
// load simply overwrites whatever resolved earlier. There are no other
// mutation methods, every read works against one consistent snapshot.
type Catalog struct {
	current atomic.Pointer[snapshot]
}

func New() *Catalog {
	c := &Catalog{}
	c.current.Store(&snapshot{byID: map[string]domain.Flight{}})
	return c
}

// Load replaces the in-memory collection. Insertion order is preserved
// and returned as-is by All.
func (c *Catalog) Load(flights []domain.Flight) {
	snap := &snapshot{
		flights: make([]domain.Flight, len(flights)),
		byID:    make(map[string]domain.Flight, len(flights)),
	}
	copy(snap.flights, flights)
	for _, f := range snap.flights {
		snap.byID[f.ID] = f
	}
	c.current.Store(snap)
}

// All returns the flights in catalog order. The returned slice is shared
// with the snapshot and must not be modified by callers.
func (c *Catalog) All() []domain.Flight {
	return c.current.Load().flights
}

func (c *Catalog) FindByID(id string) (*domain.Flight, error) {
	f, ok := c.current.Load().byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

func (c *Catalog) Len() int {
	return len(c.current.Load().flights)
}
