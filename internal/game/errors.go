package game

import "errors"

// Action rejections. Every rejection leaves session state untouched:
// validation completes before any mutation begins.
var (
	// ErrNotYourTurn is returned when the acting seat is not the current
	// player for a turn-scoped action.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrWrongPhase is returned when the action is not valid in the
	// current game phase.
	ErrWrongPhase = errors.New("action not valid in current phase")

	// ErrMustFollowSuit is returned when the played card violates the
	// follow-suit rule while the hand still holds the led suit.
	ErrMustFollowSuit = errors.New("must follow suit")

	// ErrInvalidSuitSelection is returned when a round-two bid names the
	// turned-down suit, or a bid names a suit where none is allowed.
	ErrInvalidSuitSelection = errors.New("invalid suit selection")

	// ErrInvalidDiscardTarget is returned when a discard comes from a
	// seat other than the dealer or outside the discard window.
	ErrInvalidDiscardTarget = errors.New("invalid discard")

	// ErrOutOfRange is returned when a card index does not exist in the
	// acting seat's hand.
	ErrOutOfRange = errors.New("card index out of range")
)
