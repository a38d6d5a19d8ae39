package game

import "euchre-game/internal/shared"

// Snapshot is the full externally visible state of a session: a plain
// structured record emitted after every accepted action, safe to
// serialize for any transport.
type Snapshot struct {
	GamePhase      Phase                        `json:"gamePhase"`
	DealerPosition int                          `json:"dealerPosition"`
	Hands          map[shared.Seat][]shared.Card `json:"hands"`
	TurnUpCard     *shared.Card                 `json:"turnUpCard"`
	TrumpSuit      shared.Suit                  `json:"trumpSuit"`
	Maker          shared.Seat                  `json:"maker"`
	CurrentTrick   []shared.PlayedCard          `json:"currentTrick"`
	CurrentPlayer  shared.Seat                  `json:"currentPlayer"`
	TrickWinner    shared.Seat                  `json:"trickWinner"`
	TricksWon      map[shared.Seat]int          `json:"tricksWon"`
	TeamScores     [2]int                       `json:"teamScores"`
	BidsMade       int                          `json:"bidsMade"`
	// AwaitingDiscard is set while the dealer owes a discard for the
	// picked-up turn-up.
	AwaitingDiscard bool `json:"awaitingDiscard"`
}

// snapshot copies the session state into an immutable record. Lock held.
func (s *Session) snapshot() Snapshot {
	hands := make(map[shared.Seat][]shared.Card, len(s.hands))
	for seat, hand := range s.hands {
		cp := make([]shared.Card, len(hand))
		copy(cp, hand)
		hands[seat] = cp
	}

	trick := make([]shared.PlayedCard, len(s.currentTrick.Cards))
	copy(trick, s.currentTrick.Cards)

	tricksWon := make(map[shared.Seat]int, len(s.tricksWon))
	for seat, n := range s.tricksWon {
		tricksWon[seat] = n
	}

	var turnUp *shared.Card
	if s.turnUp != nil {
		c := *s.turnUp
		turnUp = &c
	}

	return Snapshot{
		GamePhase:       s.phase,
		DealerPosition:  s.dealer.Index(),
		Hands:           hands,
		TurnUpCard:      turnUp,
		TrumpSuit:       s.trumpSuit,
		Maker:           s.maker,
		CurrentTrick:    trick,
		CurrentPlayer:   s.currentPlayer,
		TrickWinner:     s.trickWinner,
		TricksWon:       tricksWon,
		TeamScores:      s.teamScores,
		BidsMade:        s.bidsMade,
		AwaitingDiscard: s.awaitingDiscard,
	}
}
