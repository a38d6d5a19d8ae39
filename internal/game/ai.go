package game

import (
	"math/rand"

	"euchre-game/internal/shared"
)

// AI heuristics for seats without a human. All decisions are
// deterministic given the hand and table state, except the explicit
// accept/reject draws in round-one bidding, which use the session's
// injected random source.

// bidThreshold grades a hand against the proposed trump suit and returns
// the probability of ordering it up: 0.8 for a strong hand, 0.4 for a
// decent one, 0.1 otherwise.
func bidThreshold(hand []shared.Card, suit shared.Suit) float64 {
	sameColor := shared.SameColor(suit)

	trumpCount, jackCount, aceCount := 0, 0, 0
	for _, c := range hand {
		if c.Suit == suit || (c.Rank == "J" && c.Suit == sameColor) {
			trumpCount++
		}
		if c.Rank == "J" {
			jackCount++
		}
		if c.Rank == "A" {
			aceCount++
		}
	}

	switch {
	case trumpCount >= 3 || (trumpCount >= 2 && jackCount >= 1) || (trumpCount >= 2 && aceCount >= 2):
		return 0.8
	case trumpCount >= 2:
		return 0.4
	default:
		return 0.1
	}
}

// evaluateBid decides whether to order up the turn-up suit in round one.
func evaluateBid(hand []shared.Card, suit shared.Suit, rng *rand.Rand) bool {
	return rng.Float64() < bidThreshold(hand, suit)
}

// suitStrength sums the weighted strength of the hand under a candidate
// trump suit: A 4, K 3, Q 2, 10 1, right bower 5, left bower 4.5.
func suitStrength(hand []shared.Card, suit shared.Suit) float64 {
	sameColor := shared.SameColor(suit)

	strength := 0.0
	for _, c := range hand {
		if c.Suit == suit {
			switch c.Rank {
			case "A":
				strength += 4
			case "K":
				strength += 3
			case "Q":
				strength += 2
			case "10":
				strength += 1
			case "J":
				strength += 5
			}
		} else if c.Rank == "J" && c.Suit == sameColor {
			strength += 4.5
		}
	}
	return strength
}

// evaluateBestSuit picks the strongest callable suit in round two, or
// reports false to pass. The threshold drops from 6 to 4 once six or more
// bids have been made over the hand's bidding sequence, so a fourth
// all-pass re-deal becomes less likely.
func evaluateBestSuit(hand []shared.Card, turnedDown shared.Suit, bidsTotal int) (shared.Suit, bool) {
	var bestSuit shared.Suit
	maxStrength := 0.0

	for _, suit := range shared.Suits {
		if suit == turnedDown {
			continue
		}
		if strength := suitStrength(hand, suit); strength > maxStrength {
			maxStrength = strength
			bestSuit = suit
		}
	}

	if maxStrength >= 6 || (bidsTotal >= 6 && maxStrength >= 4) {
		return bestSuit, true
	}
	return "", false
}

// selectDiscard picks the card the dealer trades for the turn-up: the
// lowest-ranked card whose natural suit differs from the new trump.
func selectDiscard(hand []shared.Card, trump shared.Suit) int {
	lowestIndex := 0
	lowestValue := len(shared.Ranks)

	for i, c := range hand {
		if c.Suit != trump && shared.RankOrder(c.Rank) < lowestValue {
			lowestValue = shared.RankOrder(c.Rank)
			lowestIndex = i
		}
	}
	return lowestIndex
}

// selectLeadCard chooses a card to open a trick: a bower or ace of trump
// if held, else the first non-trump ace, else the highest non-trump card,
// else (trump-only hand) the lowest trump.
func selectLeadCard(hand []shared.Card, trump shared.Suit) int {
	highTrump, lowTrump := -1, -1
	for i, c := range hand {
		if effectiveSuit(c, trump) != trump {
			continue
		}
		if highTrump == -1 || compareTrumpRanks(c, hand[highTrump], trump) > 0 {
			highTrump = i
		}
		if lowTrump == -1 || compareTrumpRanks(c, hand[lowTrump], trump) < 0 {
			lowTrump = i
		}
	}
	if highTrump != -1 && (hand[highTrump].Rank == "J" || hand[highTrump].Rank == "A") {
		return highTrump
	}

	for i, c := range hand {
		if c.Rank == "A" && effectiveSuit(c, trump) != trump {
			return i
		}
	}

	highOff := -1
	for i, c := range hand {
		if effectiveSuit(c, trump) == trump {
			continue
		}
		if highOff == -1 || compareCards(c, hand[highOff], "", trump) > 0 {
			highOff = i
		}
	}
	if highOff != -1 {
		return highOff
	}

	return lowTrump
}

// selectCardToPlay chooses the index of the card an AI seat plays.
// Following with the led suit in hand: the lowest card that beats the
// best card on the table, or the lowest follower if none can. Unable to
// follow: the lowest trump, unless the partner is winning the trick, in
// which case the lowest card overall.
func selectCardToPlay(hand []shared.Card, trick *shared.Trick, trump shared.Suit, seat shared.Seat) int {
	leadCard, ok := trick.Lead()
	if !ok {
		return selectLeadCard(hand, trump)
	}
	lead := effectiveSuit(leadCard, trump)

	winning := winningPlay(trick, trump)

	lowFollow, lowWinner := -1, -1
	for i, c := range hand {
		if effectiveSuit(c, trump) != lead {
			continue
		}
		if lowFollow == -1 || compareCards(c, hand[lowFollow], lead, trump) < 0 {
			lowFollow = i
		}
		if compareCards(c, winning.Card, lead, trump) > 0 {
			if lowWinner == -1 || compareCards(c, hand[lowWinner], lead, trump) < 0 {
				lowWinner = i
			}
		}
	}
	if lowWinner != -1 {
		return lowWinner
	}
	if lowFollow != -1 {
		return lowFollow
	}

	partnerWinning := winning.Seat == seat.Partner()

	lowTrump := -1
	for i, c := range hand {
		if effectiveSuit(c, trump) != trump {
			continue
		}
		if lowTrump == -1 || compareTrumpRanks(c, hand[lowTrump], trump) < 0 {
			lowTrump = i
		}
	}
	if lowTrump != -1 && !partnerWinning {
		return lowTrump
	}

	lowest := 0
	for i := 1; i < len(hand); i++ {
		if compareCards(hand[i], hand[lowest], lead, trump) < 0 {
			lowest = i
		}
	}
	return lowest
}
