package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"euchre-game/internal/shared"

	"github.com/google/uuid"
)

// Phase represents the current state of the game.
type Phase string

const (
	PhaseIdle     Phase = "idle"     // between hands, waiting for a deal
	PhaseBidding1 Phase = "bidding1" // order-up round on the turn-up suit
	PhaseBidding2 Phase = "bidding2" // name-any-other-suit round
	PhasePlaying  Phase = "playing"  // trick play
	PhaseGameOver Phase = "gameover" // a team reached the target score
)

// TargetScore is the cumulative team score that ends the game.
const TargetScore = 10

// SeatOracle reports whether a seat is currently controlled by a human.
// It is re-queried at every turn, so a seat abandoned mid-hand simply
// falls to the AI on its next turn.
type SeatOracle func(shared.Seat) bool

// EventType identifies a game event for observer feeds.
type EventType string

const (
	EventDeal     EventType = "deal"
	EventBid      EventType = "bid"
	EventPlayCard EventType = "play_card"
	EventTrickWon EventType = "trick_won"
	EventGameOver EventType = "game_over"
	EventNewGame  EventType = "new_game"
)

// Event describes a single accepted game action.
type Event struct {
	Action      EventType       `json:"action"`
	Seat        shared.Seat     `json:"player,omitempty"`
	Bid         bool            `json:"bid,omitempty"`
	Suit        shared.Suit     `json:"suit,omitempty"`
	Card        *shared.Card    `json:"card,omitempty"`
	WinningTeam shared.TeamEnum `json:"winningTeam,omitempty"`
	TeamScores  [2]int          `json:"teamScores,omitempty"`
}

// Config carries the collaborators a Session needs. Zero values are
// usable: a time-seeded random source, no humans, no observers, and
// synchronous AI turns.
type Config struct {
	Rand    *rand.Rand
	IsHuman SeatOracle
	OnState func(Snapshot)
	OnEvent func(Event)
	// AIDelay defers AI turns for presentation. Zero runs them
	// synchronously inside the triggering action.
	AIDelay time.Duration
}

// Session owns all engine state for one table and is its single source of
// truth. Every external interaction goes through the action methods; each
// one validates fully before mutating and emits a snapshot on success.
// The AI is driven through the same internals, never around them.
type Session struct {
	ID string

	mu      sync.Mutex
	rng     *rand.Rand
	isHuman SeatOracle
	onState func(Snapshot)
	onEvent func(Event)
	aiDelay time.Duration
	stopped bool

	phase           Phase
	dealer          shared.Seat
	hands           map[shared.Seat][]shared.Card
	turnUp          *shared.Card
	kitty           []shared.Card
	trumpSuit       shared.Suit
	maker           shared.Seat
	currentTrick    *shared.Trick
	currentPlayer   shared.Seat
	trickWinner     shared.Seat
	tricksWon       map[shared.Seat]int
	teamScores      [2]int
	bidsMade        int
	bidsTotal       int // bids across both rounds of this hand
	awaitingDiscard bool

	// nextDeck, when set, is consumed unshuffled by the next deal.
	nextDeck *shared.Deck
}

// NewSession creates an idle session with east as the first dealer, so
// south bids and leads first.
func NewSession(cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	isHuman := cfg.IsHuman
	if isHuman == nil {
		isHuman = func(shared.Seat) bool { return false }
	}

	return &Session{
		ID:           uuid.NewString(),
		rng:          rng,
		isHuman:      isHuman,
		onState:      cfg.OnState,
		onEvent:      cfg.OnEvent,
		aiDelay:      cfg.AIDelay,
		phase:        PhaseIdle,
		dealer:       shared.East,
		hands:        map[shared.Seat][]shared.Card{},
		currentTrick: shared.NewTrick(),
		tricksWon:    map[shared.Seat]int{},
	}
}

// Resume re-checks whether an AI seat is due to act. Collaborators call
// it after the seat occupancy map changes, e.g. when a human leaves a
// seat the game was waiting on.
func (s *Session) Resume() {
	s.maybeRunAI()
}

// Stop halts AI scheduling; used when the table empties.
func (s *Session) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

// Deal starts a new hand: builds and shuffles the deck, deals the hands,
// exposes the turn-up and opens the first bidding round.
func (s *Session) Deal() error {
	s.mu.Lock()
	err := s.deal()
	s.mu.Unlock()
	if err == nil {
		s.maybeRunAI()
	}
	return err
}

// Bid submits a bidding decision for the seat. In round one accept orders
// up the turn-up suit; suit must be empty or echo it. In round two accept
// requires a suit other than the turned-down one.
func (s *Session) Bid(seat shared.Seat, accept bool, suit shared.Suit) error {
	s.mu.Lock()
	err := s.bid(seat, accept, suit)
	s.mu.Unlock()
	if err == nil {
		s.maybeRunAI()
	}
	return err
}

// Discard resolves the dealer's pending exchange after an order-up: the
// indexed card leaves the hand for the kitty and the turn-up replaces it.
func (s *Session) Discard(seat shared.Seat, cardIndex int) error {
	s.mu.Lock()
	err := s.discard(seat, cardIndex)
	s.mu.Unlock()
	if err == nil {
		s.maybeRunAI()
	}
	return err
}

// PlayCard plays the indexed card from the seat's hand into the current
// trick.
func (s *Session) PlayCard(seat shared.Seat, cardIndex int) error {
	s.mu.Lock()
	err := s.playCard(seat, cardIndex)
	s.mu.Unlock()
	if err == nil {
		s.maybeRunAI()
	}
	return err
}

// NewGame resets the team scores and returns to idle, keeping the current
// dealer.
func (s *Session) NewGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIdle && s.phase != PhaseGameOver {
		return ErrWrongPhase
	}

	s.teamScores = [2]int{}
	s.phase = PhaseIdle
	s.emitEvent(Event{Action: EventNewGame})
	s.emitState()
	return nil
}

// Snapshot returns a copy of the externally visible state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// --- Action internals (lock held) ---

func (s *Session) deal() error {
	if s.phase != PhaseIdle {
		return ErrWrongPhase
	}

	deck := s.nextDeck
	s.nextDeck = nil
	if deck == nil {
		deck = shared.NewDeck()
		deck.Shuffle(s.rng)
	}

	hands, turnUp, kitty := deck.Deal(s.dealer)
	for _, hand := range hands {
		shared.SortHand(hand)
	}
	s.hands = hands
	s.turnUp = &turnUp
	s.kitty = kitty

	s.trumpSuit = ""
	s.maker = ""
	s.currentTrick = shared.NewTrick()
	s.trickWinner = ""
	s.bidsMade = 0
	s.bidsTotal = 0
	s.awaitingDiscard = false
	for _, seat := range shared.Seats {
		s.tricksWon[seat] = 0
	}

	s.phase = PhaseBidding1
	s.currentPlayer = s.dealer.Next()

	log.Printf("Session %s: dealt. Dealer %s, turn-up %s, %s bids first.",
		s.ID, s.dealer, turnUp, s.currentPlayer)

	s.emitEvent(Event{Action: EventDeal, Seat: s.dealer})
	s.emitState()
	return nil
}

func (s *Session) bid(seat shared.Seat, accept bool, suit shared.Suit) error {
	if s.phase != PhaseBidding1 && s.phase != PhaseBidding2 {
		return ErrWrongPhase
	}
	if s.awaitingDiscard {
		return ErrWrongPhase
	}
	if seat != s.currentPlayer {
		return ErrNotYourTurn
	}

	if !accept {
		log.Printf("Session %s: %s passes.", s.ID, seat)
		s.emitEvent(Event{Action: EventBid, Seat: seat})
		s.nextBidder()
		return nil
	}

	if s.phase == PhaseBidding1 {
		// Ordering up takes the turn-up suit; a caller may echo it but
		// cannot name another.
		if suit != "" && suit != s.turnUp.Suit {
			return ErrInvalidSuitSelection
		}
		s.orderUp(seat)
		return nil
	}

	// Round two: any suit except the turned-down one.
	if suit == "" || suit == s.turnUp.Suit || !validSuit(suit) {
		return ErrInvalidSuitSelection
	}

	s.trumpSuit = suit
	s.maker = seat
	log.Printf("Session %s: %s calls %s.", s.ID, seat, suit)
	s.emitEvent(Event{Action: EventBid, Seat: seat, Bid: true, Suit: suit})
	s.startPlay()
	return nil
}

func validSuit(suit shared.Suit) bool {
	for _, s := range shared.Suits {
		if s == suit {
			return true
		}
	}
	return false
}

// orderUp declares the turn-up suit as trump and opens the dealer's
// discard exchange. A human dealer is asked to pick the discard; an AI
// dealer exchanges immediately.
func (s *Session) orderUp(seat shared.Seat) {
	s.trumpSuit = s.turnUp.Suit
	s.maker = seat
	log.Printf("Session %s: %s orders up %s.", s.ID, seat, s.trumpSuit)
	s.emitEvent(Event{Action: EventBid, Seat: seat, Bid: true, Suit: s.trumpSuit})

	if s.isHuman(s.dealer) {
		s.awaitingDiscard = true
		s.currentPlayer = s.dealer
		s.emitState()
		return
	}

	s.exchangeTurnUp(selectDiscard(s.hands[s.dealer], s.trumpSuit))
	s.startPlay()
}

// exchangeTurnUp swaps the indexed dealer card for the turn-up. The
// discarded card joins the kitty so every card stays accounted for.
func (s *Session) exchangeTurnUp(cardIndex int) {
	hand := s.hands[s.dealer]
	discarded := hand[cardIndex]
	hand[cardIndex] = *s.turnUp
	s.kitty = append(s.kitty, discarded)
	s.turnUp = nil
	s.awaitingDiscard = false
	shared.SortHand(hand)
	log.Printf("Session %s: dealer %s exchanges %s for the turn-up.", s.ID, s.dealer, discarded)
}

func (s *Session) discard(seat shared.Seat, cardIndex int) error {
	if s.phase != PhaseBidding1 {
		return ErrWrongPhase
	}
	if !s.awaitingDiscard || seat != s.dealer {
		return ErrInvalidDiscardTarget
	}
	if cardIndex < 0 || cardIndex >= len(s.hands[seat]) {
		return ErrOutOfRange
	}

	s.exchangeTurnUp(cardIndex)
	s.startPlay()
	return nil
}

// nextBidder advances the bidding turn, rolling over to round two after
// four passes on the turn-up, and voiding the hand after four passes in
// round two.
func (s *Session) nextBidder() {
	s.bidsMade++
	s.bidsTotal++
	s.currentPlayer = s.currentPlayer.Next()

	if s.bidsMade < 4 {
		s.emitState()
		return
	}

	if s.phase == PhaseBidding1 {
		s.phase = PhaseBidding2
		s.bidsMade = 0
		s.currentPlayer = s.dealer.Next()
		log.Printf("Session %s: turn-up declined by all, second bidding round.", s.ID)
	} else {
		// All four passed on naming a suit: void the hand, advance the
		// dealer, and wait for a re-deal. The dealer is never forced to
		// name trump.
		s.dealer = s.dealer.Next()
		s.phase = PhaseIdle
		log.Printf("Session %s: no trump named, hand voided. Dealer advances to %s.", s.ID, s.dealer)
	}
	s.emitState()
}

func (s *Session) startPlay() {
	s.phase = PhasePlaying
	s.currentPlayer = s.dealer.Next()
	s.currentTrick = shared.NewTrick()
	log.Printf("Session %s: trump is %s, %s leads.", s.ID, s.trumpSuit, s.currentPlayer)
	s.emitState()
}

func (s *Session) playCard(seat shared.Seat, cardIndex int) error {
	if s.phase != PhasePlaying {
		return ErrWrongPhase
	}
	if seat != s.currentPlayer {
		return ErrNotYourTurn
	}
	hand := s.hands[seat]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return ErrOutOfRange
	}
	card := hand[cardIndex]
	if !isValidPlay(hand, card, s.currentTrick, s.trumpSuit) {
		return ErrMustFollowSuit
	}

	if len(s.currentTrick.Cards) == 0 {
		s.trickWinner = ""
	}
	s.currentTrick.AddCard(seat, card)
	s.hands[seat] = append(hand[:cardIndex], hand[cardIndex+1:]...)
	log.Printf("Session %s: %s plays %s.", s.ID, seat, card)
	played := card
	s.emitEvent(Event{Action: EventPlayCard, Seat: seat, Card: &played})

	if s.currentTrick.IsComplete() {
		s.resolveTrick()
	} else {
		s.currentPlayer = s.currentPlayer.Next()
		s.emitState()
	}
	return nil
}

// resolveTrick determines the winner of a completed trick, credits it,
// and either opens the next trick or scores the hand.
func (s *Session) resolveTrick() {
	winner := winningPlay(s.currentTrick, s.trumpSuit)
	s.trickWinner = winner.Seat
	s.tricksWon[winner.Seat]++
	log.Printf("Session %s: %s wins the trick with %s.", s.ID, winner.Seat, winner.Card)
	s.emitEvent(Event{Action: EventTrickWon, Seat: winner.Seat, Card: &winner.Card})

	s.currentTrick = shared.NewTrick()
	s.currentPlayer = winner.Seat

	if s.handComplete() {
		s.scoreHand()
	}
	s.emitState()
}

func (s *Session) handComplete() bool {
	for _, seat := range shared.Seats {
		if len(s.hands[seat]) > 0 {
			return false
		}
	}
	return true
}

// --- AI driving ---

// maybeRunAI lets AI seats act whenever the game is waiting on one. With
// no configured delay the turns run synchronously; otherwise each step is
// scheduled after the delay so humans can follow the play.
func (s *Session) maybeRunAI() {
	if s.aiDelay > 0 {
		time.AfterFunc(s.aiDelay, func() {
			if s.aiStep() {
				s.maybeRunAI()
			}
		})
		return
	}
	for s.aiStep() {
	}
}

// aiStep performs at most one AI action and reports whether it acted.
func (s *Session) aiStep() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}

	switch s.phase {
	case PhaseBidding1:
		if s.awaitingDiscard {
			if s.isHuman(s.dealer) {
				return false
			}
			s.exchangeTurnUp(selectDiscard(s.hands[s.dealer], s.trumpSuit))
			s.startPlay()
			return true
		}
		seat := s.currentPlayer
		if s.isHuman(seat) {
			return false
		}
		if err := s.bid(seat, evaluateBid(s.hands[seat], s.turnUp.Suit, s.rng), ""); err != nil {
			log.Panicf("Session %s: AI bid rejected: %v", s.ID, err)
		}
		return true

	case PhaseBidding2:
		seat := s.currentPlayer
		if s.isHuman(seat) {
			return false
		}
		suit, call := evaluateBestSuit(s.hands[seat], s.turnUp.Suit, s.bidsTotal)
		if err := s.bid(seat, call, suit); err != nil {
			log.Panicf("Session %s: AI call rejected: %v", s.ID, err)
		}
		return true

	case PhasePlaying:
		seat := s.currentPlayer
		if s.isHuman(seat) {
			return false
		}
		idx := selectCardToPlay(s.hands[seat], s.currentTrick, s.trumpSuit, seat)
		if err := s.playCard(seat, idx); err != nil {
			log.Panicf("Session %s: AI play rejected: %v", s.ID, err)
		}
		return true
	}

	return false
}

// --- Observer emission (lock held) ---

func (s *Session) emitState() {
	if s.onState != nil {
		s.onState(s.snapshot())
	}
}

func (s *Session) emitEvent(e Event) {
	if s.onEvent != nil {
		s.onEvent(e)
	}
}
