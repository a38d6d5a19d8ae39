package shared

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas24UniqueCards(t *testing.T) {
	deck := NewDeck()
	if len(deck.Cards) != DeckSize {
		t.Fatalf("deck has %d cards, want %d", len(deck.Cards), DeckSize)
	}

	seen := map[Card]bool{}
	for _, c := range deck.Cards {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestShuffleKeepsAllCards(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(7)))

	seen := map[Card]bool{}
	for _, c := range deck.Cards {
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("shuffle lost cards: %d unique, want %d", len(seen), DeckSize)
	}
}

// The 3-2/2-3 deal pattern with dealer east: south (left of the dealer)
// receives deck[0:3] and deck[10:12], west deck[3:5] and deck[12:15],
// north deck[5:8] and deck[15:17], east deck[8:10] and deck[17:20]. The
// turn-up is deck[20] and the kitty holds the last three cards.
func TestDealPatternDealerEast(t *testing.T) {
	deck := NewDeck()
	ordered := make([]Card, DeckSize)
	copy(ordered, deck.Cards)

	hands, turnUp, kitty := deck.Deal(East)

	wantRanges := map[Seat][][2]int{
		South: {{0, 3}, {10, 12}},
		West:  {{3, 5}, {12, 15}},
		North: {{5, 8}, {15, 17}},
		East:  {{8, 10}, {17, 20}},
	}

	for seat, ranges := range wantRanges {
		var want []Card
		for _, r := range ranges {
			want = append(want, ordered[r[0]:r[1]]...)
		}
		got := hands[seat]
		if len(got) != HandSize {
			t.Fatalf("%s holds %d cards, want %d", seat, len(got), HandSize)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s card %d = %v, want %v", seat, i, got[i], want[i])
			}
		}
	}

	if turnUp != ordered[20] {
		t.Errorf("turn-up = %v, want deck[20] = %v", turnUp, ordered[20])
	}
	if len(kitty) != 3 {
		t.Fatalf("kitty has %d cards, want 3", len(kitty))
	}
	for i, c := range kitty {
		if c != ordered[21+i] {
			t.Errorf("kitty[%d] = %v, want %v", i, c, ordered[21+i])
		}
	}
}

func TestDealPartitionsDeck(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(42)))

	hands, turnUp, kitty := deck.Deal(North)

	seen := map[Card]bool{}
	total := 0
	record := func(c Card) {
		if seen[c] {
			t.Errorf("card %v dealt twice", c)
		}
		seen[c] = true
		total++
	}

	for _, seat := range Seats {
		for _, c := range hands[seat] {
			record(c)
		}
	}
	record(turnUp)
	for _, c := range kitty {
		record(c)
	}

	if total != DeckSize {
		t.Fatalf("dealt %d cards total, want %d", total, DeckSize)
	}
}

func TestSortHandGroupsBySuitThenRank(t *testing.T) {
	hand := []Card{
		{Rank: "A", Suit: Spades},
		{Rank: "9", Suit: Hearts},
		{Rank: "J", Suit: Spades},
		{Rank: "K", Suit: Hearts},
		{Rank: "10", Suit: Clubs},
	}
	SortHand(hand)

	want := []Card{
		{Rank: "9", Suit: Hearts},
		{Rank: "K", Suit: Hearts},
		{Rank: "10", Suit: Clubs},
		{Rank: "J", Suit: Spades},
		{Rank: "A", Suit: Spades},
	}
	for i := range want {
		if hand[i] != want[i] {
			t.Errorf("hand[%d] = %v, want %v", i, hand[i], want[i])
		}
	}
}
