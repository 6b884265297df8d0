package games

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/engine"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/rating"
)

// GamesRepository defines what the app layer needs from the repository
type GamesRepository interface {
	CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error)
	GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error)
	ListUnplayedBySeasonWeek(ctx context.Context, seasonID uuid.UUID, week int) ([]models.Game, error)
	ListUnplayedBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error)
	ListGamesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error)
	EnsureStandingsRow(ctx context.Context, seasonID, teamID uuid.UUID) error
	FinalizeGame(ctx context.Context, req FinalizeGameRequest) (*models.Game, error)
}

// RosterProvider defines what the app layer needs from the rosters domain
type RosterProvider interface {
	GetTeamRoster(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
}

// App simulates games: it loads the matchup and both rosters, derives ratings,
// plays the game through the engine, and commits the result atomically.
type App struct {
	repo    GamesRepository
	rosters RosterProvider
	// newRand supplies an independent random source per game, so concurrent
	// simulations never share one.
	newRand func() engine.Rand
}

// NewApp creates a new games App
func NewApp(repo GamesRepository, rosters RosterProvider, newRand func() engine.Rand) *App {
	return &App{
		repo:    repo,
		rosters: rosters,
		newRand: newRand,
	}
}

// CreateGame schedules a game with validation
func (a *App) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	if req.Week <= 0 {
		return nil, fmt.Errorf("week must be positive")
	}
	if req.HomeTeamID == req.AwayTeamID {
		return nil, fmt.Errorf("a team cannot play itself")
	}

	game, err := a.repo.CreateGame(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

// GetGame retrieves a game by ID
func (a *App) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	return a.repo.GetGame(ctx, id)
}

// ListGamesBySeason retrieves a season's schedule
func (a *App) ListGamesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error) {
	return a.repo.ListGamesBySeason(ctx, seasonID)
}

// ListUnplayedBySeasonWeek retrieves one week's unplayed games in simulation order
func (a *App) ListUnplayedBySeasonWeek(ctx context.Context, seasonID uuid.UUID, week int) ([]models.Game, error) {
	return a.repo.ListUnplayedBySeasonWeek(ctx, seasonID, week)
}

// ListUnplayedBySeason retrieves a season's unplayed games in simulation order
func (a *App) ListUnplayedBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error) {
	return a.repo.ListUnplayedBySeason(ctx, seasonID)
}

// SimulateGame plays one scheduled game to completion and persists the
// result. An already-played game is a no-op that returns the stored result,
// including when a concurrent simulation wins the finalize race.
func (a *App) SimulateGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	game, err := a.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Played {
		return game, nil
	}

	home, err := a.loadSide(ctx, game.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load home team %s: %w", game.HomeTeamID, err)
	}
	away, err := a.loadSide(ctx, game.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load away team %s: %w", game.AwayTeamID, err)
	}

	out := engine.NewSimulator(a.newRand()).PlayGame(home, away)

	req := FinalizeGameRequest{
		GameID:    gameID,
		HomeScore: out.Home.Score,
		AwayScore: out.Away.Score,
		Analytics: GameAnalytics{
			Pace:               out.Pace,
			Possessions:        out.Possessions,
			HomeOpened:         out.HomeOpened,
			HomeYardsEstimates: out.Home.YardsEstimates,
			AwayYardsEstimates: out.Away.YardsEstimates,
		},
	}
	req.StatLines = append(req.StatLines, sideStatLines(home, out.Home)...)
	req.StatLines = append(req.StatLines, sideStatLines(away, out.Away)...)

	finalized, err := a.repo.FinalizeGame(ctx, req)
	if errors.Is(err, ErrGameAlreadyFinal) {
		// Lost the race; the committed result is authoritative.
		return a.repo.GetGame(ctx, gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to finalize game %s: %w", gameID, err)
	}

	log.Printf("Simulated game %s: %d-%d over %d possessions",
		gameID, finalized.HomeScore, finalized.AwayScore, out.Possessions)
	return finalized, nil
}

// loadSide builds one team's simulation input: derived ratings plus the
// best-rated starter in each stat slot.
func (a *App) loadSide(ctx context.Context, teamID uuid.UUID) (engine.TeamSide, error) {
	players, err := a.rosters.GetTeamRoster(ctx, teamID)
	if err != nil {
		return engine.TeamSide{}, err
	}

	tr := rating.Compute(players)
	return engine.TeamSide{
		TeamID: teamID,
		Offense: engine.OffenseRatings{
			Overall:  tr.Overall,
			QB:       tr.Units[rating.UnitQB],
			RB:       tr.Units[rating.UnitRB],
			Receiver: tr.Units[rating.UnitReceiver],
		},
		Defense:   tr.Defense,
		QBStarter: starterAt(players, models.PositionQB),
		RBStarter: starterAt(players, models.PositionRB),
		WRStarter: starterAt(players, models.PositionWR),
	}, nil
}

// starterAt picks the highest-rated player at pos. The roster comes back
// ordered by rating, so the first match wins. Nil when the slot is unfilled.
func starterAt(players []models.Player, pos models.Position) *uuid.UUID {
	for i := range players {
		if players[i].Position == pos {
			return &players[i].ID
		}
	}
	return nil
}

// sideStatLines converts a side's slot stats into persistable lines. Slots
// with no starter or an empty line produce no row.
func sideStatLines(side engine.TeamSide, result engine.SideResult) []StatLineInput {
	slots := []struct {
		player *uuid.UUID
		stats  models.StatLine
	}{
		{side.QBStarter, result.Stats.QB},
		{side.RBStarter, result.Stats.RB},
		{side.WRStarter, result.Stats.WR},
	}

	var lines []StatLineInput
	for _, slot := range slots {
		if slot.player == nil || slot.stats.IsZero() {
			continue
		}
		lines = append(lines, StatLineInput{
			TeamID:   side.TeamID,
			PlayerID: *slot.player,
			Stats:    slot.stats,
		})
	}
	return lines
}
