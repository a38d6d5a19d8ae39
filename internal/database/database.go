package database

import (
	"database/sql"
	"os"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	table_name string
}

var (
	tableName  = "euchre"
	dbInstance *Service
)

// New opens the results store. The driver and DSN come from
// EUCHRE_DB_DRIVER ("sqlite3" or "pgx") and EUCHRE_DB, defaulting to a
// local sqlite file.
func New() Service {
	driver := os.Getenv("EUCHRE_DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}
	dsn := os.Getenv("EUCHRE_DB")
	if dsn == "" {
		dsn = "./euchre.db"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		panic(err)
	}

	sqlStmt := `
	create table if not exists euchre (
		id string not null primary key,
		created_at string,
		south string,
		west string,
		north string,
		east string,
		team1_score integer,
		team2_score integer,
		winning_team integer
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		panic(err)
	}

	dbInstance = &Service{
		db:         db,
		table_name: tableName,
		m:          &sync.Mutex{},
	}

	return *dbInstance
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

func (s *Service) GetAll() ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM " + s.table_name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.South,
			&result.West,
			&result.North,
			&result.East,
			&result.Team1Score,
			&result.Team2Score,
			&result.WinningTeam); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) GetByID(id string) (GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var result GameResult
	err := s.db.QueryRow("SELECT * FROM "+s.table_name+" WHERE id = ?", id).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.South,
		&result.West,
		&result.North,
		&result.East,
		&result.Team1Score,
		&result.Team2Score,
		&result.WinningTeam)
	if err != nil {
		return GameResult{}, err
	}
	return result, nil
}

func (s *Service) Insert(result GameResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec("INSERT INTO "+s.table_name+
		" (id, created_at, south, west, north, east, team1_score, team2_score, winning_team) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		result.ID,
		result.CreatedAt,
		result.South,
		result.West,
		result.North,
		result.East,
		result.Team1Score,
		result.Team2Score,
		result.WinningTeam)

	if err != nil {
		return err
	}

	return nil
}

func (s *Service) GetByPlayer(player_name string) ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM "+s.table_name+
		" WHERE south = ? OR west = ? OR north = ? OR east = ?",
		player_name,
		player_name,
		player_name,
		player_name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.South,
			&result.West,
			&result.North,
			&result.East,
			&result.Team1Score,
			&result.Team2Score,
			&result.WinningTeam); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, sql.ErrNoRows // No results found
	}

	return results, nil
}
