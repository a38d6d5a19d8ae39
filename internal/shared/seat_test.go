package shared

import "testing"

func TestSeatOrderAndPartners(t *testing.T) {
	cases := []struct {
		seat    Seat
		next    Seat
		partner Seat
		team    TeamEnum
	}{
		{South, West, North, Team1},
		{West, North, East, Team2},
		{North, East, South, Team1},
		{East, South, West, Team2},
	}

	for _, tc := range cases {
		if got := tc.seat.Next(); got != tc.next {
			t.Errorf("%s.Next() = %s, want %s", tc.seat, got, tc.next)
		}
		if got := tc.seat.Partner(); got != tc.partner {
			t.Errorf("%s.Partner() = %s, want %s", tc.seat, got, tc.partner)
		}
		if got := tc.seat.Team(); got != tc.team {
			t.Errorf("%s.Team() = %d, want %d", tc.seat, got, tc.team)
		}
	}
}

func TestSameColor(t *testing.T) {
	pairs := map[Suit]Suit{
		Hearts:   Diamonds,
		Diamonds: Hearts,
		Clubs:    Spades,
		Spades:   Clubs,
	}
	for suit, want := range pairs {
		if got := SameColor(suit); got != want {
			t.Errorf("SameColor(%s) = %s, want %s", suit, got, want)
		}
	}
}

func TestIsValidSeat(t *testing.T) {
	for _, seat := range Seats {
		if !IsValidSeat(seat) {
			t.Errorf("IsValidSeat(%s) = false", seat)
		}
	}
	if IsValidSeat("") || IsValidSeat("dealer") {
		t.Error("invalid seat accepted")
	}
}
