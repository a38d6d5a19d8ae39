package shared

// Seat represents one of the four table positions, in fixed clockwise
// order south, west, north, east.
type Seat string

const (
	South Seat = "south"
	West  Seat = "west"
	North Seat = "north"
	East  Seat = "east"
)

// Seats lists the seats in clockwise play order.
var Seats = [4]Seat{South, West, North, East}

// TeamEnum represents the two partnerships.
type TeamEnum int

const (
	Team1 TeamEnum = 1 // south and north
	Team2 TeamEnum = 2 // west and east
)

// SeatAt returns the seat at the given clockwise index (mod 4).
func SeatAt(i int) Seat {
	return Seats[((i%4)+4)%4]
}

// Index returns the seat's clockwise index, 0 for south through 3 for east.
func (s Seat) Index() int {
	for i, seat := range Seats {
		if seat == s {
			return i
		}
	}
	return -1
}

// Next returns the seat to the left, i.e. the next seat clockwise.
func (s Seat) Next() Seat {
	return SeatAt(s.Index() + 1)
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return SeatAt(s.Index() + 2)
}

// Team returns the partnership the seat belongs to.
func (s Seat) Team() TeamEnum {
	if s == South || s == North {
		return Team1
	}
	return Team2
}

// IsValidSeat reports whether the string names one of the four seats.
func IsValidSeat(s Seat) bool {
	return s.Index() != -1
}
