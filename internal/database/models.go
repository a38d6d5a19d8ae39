package database

// GameResult records one completed game: who sat where and the final
// team scores. Seats without a human hold the name "cpu".
type GameResult struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	South       string `json:"south"`
	West        string `json:"west"`
	North       string `json:"north"`
	East        string `json:"east"`
	Team1Score  int    `json:"team1_score"`
	Team2Score  int    `json:"team2_score"`
	WinningTeam int    `json:"winning_team"`
}
