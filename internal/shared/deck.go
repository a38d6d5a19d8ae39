package shared

import (
	"log"
	"math/rand"
	"sort"
)

// HandSize is the number of cards each seat holds at the start of a hand.
const HandSize = 5

// DeckSize is the number of cards in a Euchre deck (6 ranks × 4 suits).
const DeckSize = 24

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the standard 24-card Euchre deck.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck using the provided
// random source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal distributes five cards to each seat in the alternating 3-2/2-3
// pattern, starting with the seat left of the dealer. The next card is
// the turn-up and the remaining three form the kitty.
func (d *Deck) Deal(dealer Seat) (hands map[Seat][]Card, turnUp Card, kitty []Card) {
	if len(d.Cards) != DeckSize {
		log.Panicf("Deal called on deck of %d cards, want %d", len(d.Cards), DeckSize)
	}

	// Seats left of the dealer get 3-2, alternating with 2-3.
	dealPattern := [4][2]int{{3, 2}, {2, 3}, {3, 2}, {2, 3}}

	hands = make(map[Seat][]Card, 4)
	idx := 0
	for round := 0; round < 2; round++ {
		for i := 0; i < 4; i++ {
			seat := SeatAt(dealer.Index() + 1 + i)
			n := dealPattern[i][round]
			hands[seat] = append(hands[seat], d.Cards[idx:idx+n]...)
			idx += n
		}
	}

	turnUp = d.Cards[idx]
	idx++

	kitty = make([]Card, DeckSize-idx)
	copy(kitty, d.Cards[idx:])

	d.Cards = nil
	return hands, turnUp, kitty
}

// SortHand orders a hand by suit group then base rank for display. The
// ordering has no effect on legality or AI decisions.
func SortHand(hand []Card) {
	sort.SliceStable(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return suitOrder[hand[i].Suit] < suitOrder[hand[j].Suit]
		}
		return rankOrder[hand[i].Rank] < rankOrder[hand[j].Rank]
	})
}
