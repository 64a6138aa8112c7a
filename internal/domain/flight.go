package domain

type Amenity string

const (
	AmenityWifi          Amenity = "wifi"
	AmenityFood          Amenity = "food"
	AmenityEntertainment Amenity = "entertainment"
)

// Flight is an immutable value supplied by the flight data provider.
// Times and duration are display strings from the upstream feed and are
// not parsed as real time values. Price is a whole number of currency
// units and is always positive; Stops is never negative.
type Flight struct {
	ID               string    `json:"id"`
	Airline          string    `json:"airline"`
	FlightNumber     string    `json:"flight_number"`
	DepartureCity    string    `json:"departure_city"`
	DepartureAirport string    `json:"departure_airport"`
	DepartureTime    string    `json:"departure_time"`
	ArrivalCity      string    `json:"arrival_city"`
	ArrivalAirport   string    `json:"arrival_airport"`
	ArrivalTime      string    `json:"arrival_time"`
	Duration         string    `json:"duration"`
	Price            int64     `json:"price"`
	Amenities        []Amenity `json:"amenities"`
	Stops            int       `json:"stops"`
}

func (f Flight) HasAmenity(a Amenity) bool {
	for _, have := range f.Amenities {
		if have == a {
			return true
		}
	}
	return false
}
