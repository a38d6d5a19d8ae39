package game

import (
	"log"

	"euchre-game/internal/shared"
)

// isRightBower reports whether the card is the jack of the trump suit.
func isRightBower(c shared.Card, trump shared.Suit) bool {
	return trump != "" && c.Rank == "J" && c.Suit == trump
}

// isLeftBower reports whether the card is the jack of the suit sharing
// trump's color.
func isLeftBower(c shared.Card, trump shared.Suit) bool {
	return trump != "" && c.Rank == "J" && c.Suit == shared.SameColor(trump)
}

// effectiveSuit returns the suit a card counts as for legality and
// ranking. The left bower counts as trump; every other card keeps its
// natural suit.
func effectiveSuit(c shared.Card, trump shared.Suit) shared.Suit {
	if isRightBower(c, trump) || isLeftBower(c, trump) {
		return trump
	}
	return c.Suit
}

// compareTrumpRanks orders two trump cards: right bower, then left bower,
// then A, K, Q, 10, 9.
func compareTrumpRanks(a, b shared.Card, trump shared.Suit) int {
	switch {
	case isRightBower(a, trump):
		if isRightBower(b, trump) {
			return 0
		}
		return 1
	case isRightBower(b, trump):
		return -1
	case isLeftBower(a, trump):
		if isLeftBower(b, trump) {
			return 0
		}
		return 1
	case isLeftBower(b, trump):
		return -1
	}
	return shared.RankOrder(a.Rank) - shared.RankOrder(b.Rank)
}

// compareCards reports whether a outranks b (>0), b outranks a (<0) or,
// for two cards irrelevant to the trick, neither (0). Trump beats
// non-trump; among non-trump cards the led effective suit beats off-suit;
// otherwise base rank decides.
func compareCards(a, b shared.Card, lead, trump shared.Suit) int {
	suitA := effectiveSuit(a, trump)
	suitB := effectiveSuit(b, trump)

	if trump != "" {
		if suitA == trump && suitB != trump {
			return 1
		}
		if suitA != trump && suitB == trump {
			return -1
		}
		if suitA == trump && suitB == trump {
			return compareTrumpRanks(a, b, trump)
		}
	}

	if lead != "" {
		if suitA == lead && suitB != lead {
			return 1
		}
		if suitA != lead && suitB == lead {
			return -1
		}
	}

	return shared.RankOrder(a.Rank) - shared.RankOrder(b.Rank)
}

// isValidPlay checks the follow-suit rule: the first card of a trick is
// always legal; afterwards a card is legal if its effective suit matches
// the lead, or the hand holds no card of the lead's effective suit.
func isValidPlay(hand []shared.Card, c shared.Card, trick *shared.Trick, trump shared.Suit) bool {
	leadCard, ok := trick.Lead()
	if !ok {
		return true
	}

	lead := effectiveSuit(leadCard, trump)
	hasSuit := false
	for _, held := range hand {
		if effectiveSuit(held, trump) == lead {
			hasSuit = true
			break
		}
	}
	if hasSuit {
		return effectiveSuit(c, trump) == lead
	}
	return true
}

// winningPlay returns the play currently winning the trick.
func winningPlay(trick *shared.Trick, trump shared.Suit) shared.PlayedCard {
	if len(trick.Cards) == 0 {
		log.Panicf("winningPlay called on empty trick")
	}

	winner := trick.Cards[0]
	lead := effectiveSuit(winner.Card, trump)
	for _, play := range trick.Cards[1:] {
		if compareCards(play.Card, winner.Card, lead, trump) > 0 {
			winner = play
		}
	}
	return winner
}
