package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skybooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify booking %s: %s for flight %s seat %s (%d passengers)\n",
		event.BookingID, event.Type, event.FlightID, event.SeatID, event.Passengers)
	return nil
}
