package booking

import (
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/fare"
	"github.com/Domenick1991/skybooking/internal/seatmap"
	"github.com/google/uuid"
)

type WorkflowState int

const (
	StateDraft WorkflowState = iota
	StateReadySeat
	StateConfirmed
	StateRejected
)

// Workflow drives one booking attempt for one flight. It assumes
// single-threaded, one-call-at-a-time usage; Confirmed and Rejected are
// terminal, a new attempt starts with Begin.
type Workflow struct {
	state  WorkflowState
	flight domain.Flight
	seatID string
}

func Begin(flight domain.Flight) *Workflow {
	return &Workflow{state: StateDraft, flight: flight}
}

func (w *Workflow) State() WorkflowState {
	return w.state
}

// ChooseSeat takes the seat currently selected on the selector. Without
// a selection the workflow stays in Draft.
func (w *Workflow) ChooseSeat(sel *seatmap.Selector) error {
	if w.state == StateConfirmed || w.state == StateRejected {
		return domain.ErrWorkflowFinished
	}
	seatID, ok := sel.Current()
	if !ok {
		return domain.ErrNoSeatSelected
	}
	w.seatID = seatID
	w.state = StateReadySeat
	return nil
}

// Confirm produces the booking record. Confirming straight from Draft
// rejects the attempt for good; the caller must Begin again.
func (w *Workflow) Confirm(passengers int) (*domain.Booking, error) {
	switch w.state {
	case StateConfirmed, StateRejected:
		return nil, domain.ErrWorkflowFinished
	case StateDraft:
		w.state = StateRejected
		return nil, domain.ErrSeatRequired
	}
	if passengers < 1 {
		return nil, domain.ErrInvalidPassengers
	}

	w.state = StateConfirmed
	return &domain.Booking{
		ID:             uuid.NewString(),
		FlightID:       w.flight.ID,
		SeatID:         w.seatID,
		PassengerCount: passengers,
		Status:         domain.BookingStatusUpcoming,
		Fare:           fare.Breakdown(w.flight),
	}, nil
}
