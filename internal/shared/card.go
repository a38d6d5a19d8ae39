package shared

// Suit represents the suit of a card.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists the four suits in canonical display order.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// Ranks lists the six Euchre ranks from lowest to highest base rank.
var Ranks = [6]string{"9", "10", "J", "Q", "K", "A"}

// Card represents a single card in the Euchre game.
type Card struct {
	Rank string `json:"rank"` // "9", "10", "J", "Q", "K" or "A"
	Suit Suit   `json:"suit"`
}

// Base rank order within a suit, ignoring trump (bowers are handled by the
// game rules, not here).
var rankOrder = map[string]int{
	"9":  0,
	"10": 1,
	"J":  2,
	"Q":  3,
	"K":  4,
	"A":  5,
}

var suitOrder = map[Suit]int{
	Hearts:   0,
	Diamonds: 1,
	Clubs:    2,
	Spades:   3,
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

// RankOrder returns the base (non-trump) strength of a rank, 0 for "9" up
// to 5 for "A".
func RankOrder(rank string) int {
	return rankOrder[rank]
}

// SameColor returns the other suit of the same color (hearts↔diamonds,
// clubs↔spades). The jack of this suit is the left bower when s is trump.
func SameColor(s Suit) Suit {
	switch s {
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	case Clubs:
		return Spades
	default:
		return Clubs
	}
}

// Symbol returns the one-rune suit symbol.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// IsRed reports whether the suit is hearts or diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (c Card) String() string {
	return c.Rank + c.Suit.Symbol()
}
