package seatmap

import (
	"fmt"
	"strconv"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// SeatMap describes one flight's seat grid. A seat id is the row number
// concatenated with the column letter, e.g. "3C". The map is built once
// per flight and never modified afterwards; selection state lives in a
// Selector owned by the session.
type SeatMap struct {
	Rows        int      `json:"rows"`
	Columns     []string `json:"columns"`
	Unavailable []string `json:"unavailable_seats"`

	unavailable map[string]struct{}
	columns     map[string]struct{}
}

func New(rows int, columns []string, unavailable []string) *SeatMap {
	m := &SeatMap{
		Rows:        rows,
		Columns:     columns,
		Unavailable: unavailable,
		unavailable: make(map[string]struct{}, len(unavailable)),
		columns:     make(map[string]struct{}, len(columns)),
	}
	for _, s := range unavailable {
		m.unavailable[s] = struct{}{}
	}
	for _, c := range columns {
		m.columns[c] = struct{}{}
	}
	return m
}

func SeatID(row int, column string) string {
	return fmt.Sprintf("%d%s", row, column)
}

// Contains reports whether the seat id names a valid grid coordinate.
func (m *SeatMap) Contains(seatID string) bool {
	if len(seatID) < 2 {
		return false
	}
	column := seatID[len(seatID)-1:]
	if _, ok := m.columns[column]; !ok {
		return false
	}
	row, err := strconv.Atoi(seatID[:len(seatID)-1])
	if err != nil {
		return false
	}
	return row >= 1 && row <= m.Rows
}

func (m *SeatMap) Available(seatID string) bool {
	_, taken := m.unavailable[seatID]
	return m.Contains(seatID) && !taken
}

// Selector holds the transient single-seat selection for one flight.
// A new Selector is constructed whenever the flight changes; selection
// state never carries across flights.
type Selector struct {
	seatMap  *SeatMap
	selected string
}

func NewSelector(m *SeatMap) *Selector {
	return &Selector{seatMap: m}
}

// Select moves the selection to seatID. An out-of-grid id or an
// unavailable seat leaves the current selection untouched. Selecting a
// second valid seat silently replaces the first; there is no explicit
// deselect operation.
func (s *Selector) Select(seatID string) error {
	if _, taken := s.seatMap.unavailable[seatID]; taken {
		return domain.ErrSeatUnavailable
	}
	if !s.seatMap.Contains(seatID) {
		return domain.ErrInvalidSeat
	}
	s.selected = seatID
	return nil
}

// Current returns the selected seat id, if any.
func (s *Selector) Current() (string, bool) {
	return s.selected, s.selected != ""
}
