package game

import (
	"testing"

	"euchre-game/internal/shared"
)

func card(rank string, suit shared.Suit) shared.Card {
	return shared.Card{Rank: rank, Suit: suit}
}

func TestEffectiveSuit(t *testing.T) {
	for _, trump := range shared.Suits {
		if got := effectiveSuit(card("J", trump), trump); got != trump {
			t.Errorf("right bower J%s under trump %s: effective suit %s", trump, trump, got)
		}

		left := shared.SameColor(trump)
		if got := effectiveSuit(card("J", left), trump); got != trump {
			t.Errorf("left bower J%s under trump %s: effective suit %s, want %s", left, trump, got, trump)
		}

		// Jacks of the other color keep their own suit.
		for _, suit := range shared.Suits {
			if suit == trump || suit == left {
				continue
			}
			if got := effectiveSuit(card("J", suit), trump); got != suit {
				t.Errorf("off-color J%s under trump %s: effective suit %s, want %s", suit, trump, got, suit)
			}
		}

		// Non-jacks always keep their suit.
		for _, suit := range shared.Suits {
			for _, rank := range []string{"9", "10", "Q", "K", "A"} {
				if got := effectiveSuit(card(rank, suit), trump); got != suit {
					t.Errorf("%s%s under trump %s: effective suit %s", rank, suit, trump, got)
				}
			}
		}
	}
}

// Full trump ordering under every declared trump: right bower, left
// bower, then A K Q 10 9, and any trump above any non-trump card.
func TestCompareCardsTrumpOrdering(t *testing.T) {
	for _, trump := range shared.Suits {
		ordered := []shared.Card{
			card("J", trump),
			card("J", shared.SameColor(trump)),
			card("A", trump),
			card("K", trump),
			card("Q", trump),
			card("10", trump),
			card("9", trump),
		}

		for i := 0; i < len(ordered); i++ {
			for j := i + 1; j < len(ordered); j++ {
				if compareCards(ordered[i], ordered[j], "", trump) <= 0 {
					t.Errorf("trump %s: %v should beat %v", trump, ordered[i], ordered[j])
				}
				if compareCards(ordered[j], ordered[i], "", trump) >= 0 {
					t.Errorf("trump %s: %v should lose to %v", trump, ordered[j], ordered[i])
				}
			}
		}

		// Every trump card beats every non-trump card.
		for _, tc := range ordered {
			for _, suit := range shared.Suits {
				if suit == trump {
					continue
				}
				for _, rank := range []string{"9", "10", "Q", "K", "A"} {
					other := card(rank, suit)
					if effectiveSuit(other, trump) == trump {
						continue
					}
					if compareCards(tc, other, suit, trump) <= 0 {
						t.Errorf("trump %s: %v should beat non-trump %v", trump, tc, other)
					}
				}
			}
		}
	}
}

func TestCompareCardsLeadSuit(t *testing.T) {
	trump := shared.Hearts
	lead := shared.Spades

	if compareCards(card("9", shared.Spades), card("A", shared.Clubs), lead, trump) <= 0 {
		t.Error("a low lead-suit card should beat a high off-suit card")
	}
	if compareCards(card("K", shared.Spades), card("Q", shared.Spades), lead, trump) <= 0 {
		t.Error("K should beat Q within the lead suit")
	}
}

// With spades as trump, the J♣ is the left bower and outranks every
// spade except the J♠.
func TestLeftBowerBeatsAllSpadesButRightBower(t *testing.T) {
	trump := shared.Spades
	leftBower := card("J", shared.Clubs)

	for _, rank := range []string{"9", "10", "Q", "K", "A"} {
		if compareCards(leftBower, card(rank, shared.Spades), shared.Spades, trump) <= 0 {
			t.Errorf("J♣ should beat %s♠ with spades trump", rank)
		}
	}
	if compareCards(leftBower, card("J", shared.Spades), shared.Spades, trump) >= 0 {
		t.Error("J♣ should lose to J♠ with spades trump")
	}
}

func TestIsValidPlay(t *testing.T) {
	trump := shared.Hearts

	trick := shared.NewTrick()
	trick.AddCard(shared.West, card("K", shared.Spades))

	hand := []shared.Card{
		card("9", shared.Spades),
		card("A", shared.Clubs),
		card("10", shared.Hearts),
	}

	if !isValidPlay(hand, hand[0], trick, trump) {
		t.Error("following suit must be legal")
	}
	if isValidPlay(hand, hand[1], trick, trump) {
		t.Error("off-suit play must be rejected while the hand holds the lead suit")
	}
	if isValidPlay(hand, hand[2], trick, trump) {
		t.Error("trumping in must be rejected while the hand holds the lead suit")
	}

	noSpades := []shared.Card{card("A", shared.Clubs), card("10", shared.Hearts)}
	for _, c := range noSpades {
		if !isValidPlay(noSpades, c, trick, trump) {
			t.Errorf("any card must be legal when unable to follow suit, got rejection for %v", c)
		}
	}

	if !isValidPlay(hand, hand[1], shared.NewTrick(), trump) {
		t.Error("leading a trick must always be legal")
	}
}

// The left bower counts as trump for following suit: a hand whose only
// club is the J♣ cannot use it to follow a club lead when spades are
// trump.
func TestIsValidPlayLeftBowerFollowsTrump(t *testing.T) {
	trump := shared.Spades

	trick := shared.NewTrick()
	trick.AddCard(shared.West, card("A", shared.Clubs))

	hand := []shared.Card{
		card("J", shared.Clubs), // effectively a spade
		card("9", shared.Diamonds),
	}

	if !isValidPlay(hand, hand[1], trick, trump) {
		t.Error("hand holds no effective clubs, any card should be legal")
	}

	// And conversely a spade lead must be followed by the J♣.
	spadeTrick := shared.NewTrick()
	spadeTrick.AddCard(shared.West, card("9", shared.Spades))
	if isValidPlay(hand, hand[1], spadeTrick, trump) {
		t.Error("J♣ is effectively trump and must follow the spade lead")
	}
	if !isValidPlay(hand, hand[0], spadeTrick, trump) {
		t.Error("J♣ must be accepted on a spade lead")
	}
}

func TestWinningPlay(t *testing.T) {
	trump := shared.Hearts

	trick := shared.NewTrick()
	trick.AddCard(shared.South, card("A", shared.Spades))
	trick.AddCard(shared.West, card("K", shared.Spades))
	trick.AddCard(shared.North, card("9", shared.Hearts))
	trick.AddCard(shared.East, card("A", shared.Clubs))

	if win := winningPlay(trick, trump); win.Seat != shared.North {
		t.Errorf("lowest trump should win over lead-suit ace, winner = %s", win.Seat)
	}

	// Without any trump the highest lead-suit card wins.
	plain := shared.NewTrick()
	plain.AddCard(shared.South, card("10", shared.Spades))
	plain.AddCard(shared.West, card("A", shared.Clubs))
	plain.AddCard(shared.North, card("Q", shared.Spades))
	plain.AddCard(shared.East, card("9", shared.Spades))

	if win := winningPlay(plain, trump); win.Seat != shared.North {
		t.Errorf("highest lead-suit card should win, winner = %s", win.Seat)
	}
}
