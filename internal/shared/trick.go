package shared

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Seat Seat `json:"player"`
	Card Card `json:"card"`
}

// Trick represents a single trick in play: an ordered sequence of up to
// four (seat, card) plays. Winner determination lives in the game package
// because it depends on the declared trump.
type Trick struct {
	Cards []PlayedCard
}

// NewTrick creates an empty trick.
func NewTrick() *Trick {
	return &Trick{Cards: []PlayedCard{}}
}

// AddCard appends a play to the trick.
func (t *Trick) AddCard(seat Seat, card Card) {
	t.Cards = append(t.Cards, PlayedCard{Seat: seat, Card: card})
}

// Lead returns the first card played, and false if the trick is empty.
func (t *Trick) Lead() (Card, bool) {
	if len(t.Cards) == 0 {
		return Card{}, false
	}
	return t.Cards[0].Card, true
}

// IsComplete reports whether all four seats have played.
func (t *Trick) IsComplete() bool {
	return len(t.Cards) == 4
}
