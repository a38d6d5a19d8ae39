package game

import (
	"log"

	"euchre-game/internal/shared"
)

// scoreHand applies Euchre hand scoring once all five tricks are played:
// the maker's team scores 1 for three or four tricks, 2 for a march, and
// concedes 2 to the opponents when euchred. Reaching the target score
// ends the game; otherwise the dealer rotates and the table returns to
// idle for the next deal. Lock held.
func (s *Session) scoreHand() {
	team1Tricks := s.tricksWon[shared.South] + s.tricksWon[shared.North]
	team2Tricks := s.tricksWon[shared.West] + s.tricksWon[shared.East]

	makerTeam := s.maker.Team()
	makerTricks := team1Tricks
	if makerTeam == shared.Team2 {
		makerTricks = team2Tricks
	}

	points := 0
	scoringTeam := makerTeam
	switch {
	case makerTricks == 5:
		points = 2
		log.Printf("Session %s: team %d marched, scoring 2.", s.ID, makerTeam)
	case makerTricks >= 3:
		points = 1
		log.Printf("Session %s: team %d made their bid, scoring 1.", s.ID, makerTeam)
	default:
		points = 2
		if makerTeam == shared.Team1 {
			scoringTeam = shared.Team2
		} else {
			scoringTeam = shared.Team1
		}
		log.Printf("Session %s: team %d was euchred, team %d scores 2.", s.ID, makerTeam, scoringTeam)
	}

	s.teamScores[scoringTeam-1] += points

	if s.teamScores[0] >= TargetScore || s.teamScores[1] >= TargetScore {
		winner := shared.Team1
		if s.teamScores[1] >= TargetScore {
			winner = shared.Team2
		}
		s.phase = PhaseGameOver
		log.Printf("Session %s: game over, team %d wins %d-%d.",
			s.ID, winner, s.teamScores[0], s.teamScores[1])
		s.emitEvent(Event{Action: EventGameOver, WinningTeam: winner, TeamScores: s.teamScores})
		return
	}

	s.dealer = s.dealer.Next()
	s.phase = PhaseIdle
}
