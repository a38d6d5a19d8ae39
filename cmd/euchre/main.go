package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"euchre-game/internal/game"
	"euchre-game/internal/shared"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Offline single-process mode: the local player sits south, the other
// three seats are played by the AI, and the engine runs in-process with
// no transport attached.

func main() {
	if os.Getenv("EUCHRE_DEBUG") == "" {
		log.SetOutput(io.Discard)
	}

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Eu", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chre", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter your name").
		WithDefaultValue("Player").Show()
	pterm.Info.Printfln("%s, you are seated south. North is your partner; west and east oppose you.", name)

	session := game.NewSession(game.Config{
		IsHuman: func(seat shared.Seat) bool { return seat == shared.South },
		OnEvent: printEvent,
	})

	for {
		snap := session.Snapshot()

		switch {
		case snap.GamePhase == game.PhaseIdle:
			printScores(snap)
			choice, _ := pterm.DefaultInteractiveSelect.
				WithOptions([]string{"Deal", "Quit"}).Show("Next hand?")
			if choice != "Deal" {
				return
			}
			if err := session.Deal(); err != nil {
				pterm.Error.Println(err)
				return
			}

		case snap.GamePhase == game.PhaseGameOver:
			printScores(snap)
			choice, _ := pterm.DefaultInteractiveSelect.
				WithOptions([]string{"New game", "Quit"}).Show("Play again?")
			if choice != "New game" {
				return
			}
			if err := session.NewGame(); err != nil {
				pterm.Error.Println(err)
				return
			}

		case snap.CurrentPlayer != shared.South:
			// An AI seat is due; let it act.
			session.Resume()

		case snap.GamePhase == game.PhaseBidding1 && snap.AwaitingDiscard:
			promptDiscard(session, snap)

		case snap.GamePhase == game.PhaseBidding1:
			promptOrderUp(session, snap)

		case snap.GamePhase == game.PhaseBidding2:
			promptSuit(session, snap)

		case snap.GamePhase == game.PhasePlaying:
			promptPlay(session, snap)
		}
	}
}

func printScores(snap game.Snapshot) {
	pterm.DefaultSection.Printfln("Score: south/north %d, west/east %d",
		snap.TeamScores[0], snap.TeamScores[1])
}

func printTable(snap game.Snapshot) {
	if snap.TrumpSuit != "" {
		pterm.Println(pterm.LightYellow(fmt.Sprintf("Trump: %s %s (called by %s)",
			snap.TrumpSuit, snap.TrumpSuit.Symbol(), snap.Maker)))
	}
	if len(snap.CurrentTrick) > 0 {
		line := "On the table:"
		for _, play := range snap.CurrentTrick {
			line += fmt.Sprintf("  %s %s", play.Seat, play.Card)
		}
		pterm.Println(line)
	}
	pterm.Println("Your hand: " + handLine(snap.Hands[shared.South]))
}

func handLine(hand []shared.Card) string {
	line := ""
	for i, c := range hand {
		if i > 0 {
			line += "  "
		}
		s := c.String()
		if c.Suit.IsRed() {
			s = pterm.LightRed(s)
		}
		line += s
	}
	return line
}

// cardOptions renders a hand as selectable labels; labels are unique
// because no card repeats.
func cardOptions(hand []shared.Card) ([]string, map[string]int) {
	options := make([]string, len(hand))
	index := make(map[string]int, len(hand))
	for i, c := range hand {
		options[i] = c.String()
		index[options[i]] = i
	}
	return options, index
}

func promptOrderUp(session *game.Session, snap game.Snapshot) {
	printTable(snap)
	pterm.Printfln("Dealer is %s. Turn-up card: %s", shared.SeatAt(snap.DealerPosition), snap.TurnUpCard)

	orderUp := fmt.Sprintf("Order up %s", snap.TurnUpCard.Suit)
	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{orderUp, "Pass"}).Show("First bidding round")

	if err := session.Bid(shared.South, choice == orderUp, ""); err != nil {
		pterm.Warning.Println(err)
	}
}

func promptSuit(session *game.Session, snap game.Snapshot) {
	printTable(snap)
	turnedDown := snap.TurnUpCard.Suit

	options := []string{}
	for _, suit := range shared.Suits {
		if suit != turnedDown {
			options = append(options, string(suit))
		}
	}
	options = append(options, "Pass")

	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show(fmt.Sprintf("Name trump (anything but %s)", turnedDown))

	if choice == "Pass" {
		if err := session.Bid(shared.South, false, ""); err != nil {
			pterm.Warning.Println(err)
		}
		return
	}
	if err := session.Bid(shared.South, true, shared.Suit(choice)); err != nil {
		pterm.Warning.Println(err)
	}
}

func promptDiscard(session *game.Session, snap game.Snapshot) {
	pterm.Printfln("You pick up the %s. Choose a card to discard.", snap.TurnUpCard)
	options, index := cardOptions(snap.Hands[shared.South])
	choice, _ := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Discard")

	if err := session.Discard(shared.South, index[choice]); err != nil {
		pterm.Warning.Println(err)
	}
}

func promptPlay(session *game.Session, snap game.Snapshot) {
	printTable(snap)
	options, index := cardOptions(snap.Hands[shared.South])
	choice, _ := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Play a card")

	if err := session.PlayCard(shared.South, index[choice]); err != nil {
		// Illegal choices leave the state untouched; the loop re-prompts.
		pterm.Warning.Println(err)
	}
}

func printEvent(e game.Event) {
	switch e.Action {
	case game.EventBid:
		if e.Seat == shared.South {
			return
		}
		if e.Bid {
			pterm.Printfln("%s calls %s.", e.Seat, e.Suit)
		} else {
			pterm.Printfln("%s passes.", e.Seat)
		}
	case game.EventPlayCard:
		if e.Seat != shared.South {
			pterm.Printfln("%s plays %s.", e.Seat, e.Card)
		}
	case game.EventTrickWon:
		pterm.Printfln("%s takes the trick with %s.", e.Seat, e.Card)
	case game.EventGameOver:
		team := "South/North"
		if e.WinningTeam == shared.Team2 {
			team = "West/East"
		}
		pterm.Success.Printfln("Game over, %s win! Final score %d-%d.", team, e.TeamScores[0], e.TeamScores[1])
	}
}
