package games

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mcdev12/gridiron/go/internal/engine"
	"github.com/mcdev12/gridiron/go/internal/models"
)

type fakeRepo struct {
	games         map[uuid.UUID]*models.Game
	created       []CreateGameRequest
	standingsRows []uuid.UUID
	finalized     []FinalizeGameRequest

	finalizeErr error
	createErr   error
	// finalWinner is the committed state a losing finalize attempt reveals.
	finalWinner *models.Game
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{games: make(map[uuid.UUID]*models.Game)}
}

func (f *fakeRepo) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	g := &models.Game{
		ID:         uuid.New(),
		SeasonID:   req.SeasonID,
		Week:       req.Week,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Status:     models.GameStatusScheduled,
	}
	f.games[g.ID] = g
	return g, nil
}

func (f *fakeRepo) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (f *fakeRepo) ListUnplayedBySeasonWeek(ctx context.Context, seasonID uuid.UUID, week int) ([]models.Game, error) {
	return nil, nil
}

func (f *fakeRepo) ListUnplayedBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error) {
	return nil, nil
}

func (f *fakeRepo) ListGamesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error) {
	return nil, nil
}

func (f *fakeRepo) EnsureStandingsRow(ctx context.Context, seasonID, teamID uuid.UUID) error {
	f.standingsRows = append(f.standingsRows, teamID)
	return nil
}

func (f *fakeRepo) FinalizeGame(ctx context.Context, req FinalizeGameRequest) (*models.Game, error) {
	if f.finalizeErr != nil {
		if f.finalWinner != nil {
			f.games[f.finalWinner.ID] = f.finalWinner
		}
		return nil, f.finalizeErr
	}
	f.finalized = append(f.finalized, req)
	g := f.games[req.GameID]
	final := *g
	final.HomeScore = req.HomeScore
	final.AwayScore = req.AwayScore
	final.Played = true
	final.Status = models.GameStatusFinal
	f.games[req.GameID] = &final
	return &final, nil
}

type fakeRosters struct {
	rosters map[uuid.UUID][]models.Player
	err     error
}

func (f *fakeRosters) GetTeamRoster(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rosters[teamID], nil
}

func testRoster(teamID uuid.UUID) []models.Player {
	mk := func(pos models.Position, ratingVal int) models.Player {
		return models.Player{ID: uuid.New(), Position: pos, Rating: ratingVal, TeamID: &teamID}
	}
	// Rating-descending, matching the repository's roster ordering.
	return []models.Player{
		mk(models.PositionQB, 88),
		mk(models.PositionWR, 84),
		mk(models.PositionRB, 80),
		mk(models.PositionDL, 78),
		mk(models.PositionLB, 76),
		mk(models.PositionCB, 74),
		mk(models.PositionS, 72),
		mk(models.PositionOL, 70),
	}
}

func newTestApp(repo *fakeRepo, rosters *fakeRosters) *App {
	return NewApp(repo, rosters, func() engine.Rand { return engine.NewRand(42) })
}

func scheduleGame(t *testing.T, repo *fakeRepo, home, away uuid.UUID) *models.Game {
	t.Helper()
	g, err := repo.CreateGame(context.Background(), CreateGameRequest{
		SeasonID:   uuid.New(),
		Week:       1,
		HomeTeamID: home,
		AwayTeamID: away,
	})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	return g
}

func TestCreateGameValidation(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo, &fakeRosters{})
	teamA, teamB := uuid.New(), uuid.New()

	if _, err := app.CreateGame(context.Background(), CreateGameRequest{Week: 0, HomeTeamID: teamA, AwayTeamID: teamB}); err == nil {
		t.Error("expected error for non-positive week")
	}
	if _, err := app.CreateGame(context.Background(), CreateGameRequest{Week: 1, HomeTeamID: teamA, AwayTeamID: teamA}); err == nil {
		t.Error("expected error for a team playing itself")
	}
	if _, err := app.CreateGame(context.Background(), CreateGameRequest{Week: 1, HomeTeamID: teamA, AwayTeamID: teamB}); err != nil {
		t.Errorf("valid request failed: %v", err)
	}
}

func TestSimulateGamePersistsResult(t *testing.T) {
	repo := newFakeRepo()
	home, away := uuid.New(), uuid.New()
	rosters := &fakeRosters{rosters: map[uuid.UUID][]models.Player{
		home: testRoster(home),
		away: testRoster(away),
	}}
	app := newTestApp(repo, rosters)
	g := scheduleGame(t, repo, home, away)

	got, err := app.SimulateGame(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("SimulateGame: %v", err)
	}
	if !got.Played || got.Status != models.GameStatusFinal {
		t.Fatalf("game not finalized: %+v", got)
	}
	if len(repo.finalized) != 1 {
		t.Fatalf("FinalizeGame called %d times, want 1", len(repo.finalized))
	}

	req := repo.finalized[0]
	if req.HomeScore != got.HomeScore || req.AwayScore != got.AwayScore {
		t.Errorf("finalize scores %d-%d, returned game %d-%d",
			req.HomeScore, req.AwayScore, got.HomeScore, got.AwayScore)
	}
	if req.Analytics.Possessions <= 0 {
		t.Errorf("Possessions = %d, want > 0", req.Analytics.Possessions)
	}
	if req.Analytics.Pace < 1.8 || req.Analytics.Pace > 3.2 {
		t.Errorf("Pace = %v, outside simulation bounds", req.Analytics.Pace)
	}
	for _, line := range req.StatLines {
		if line.TeamID != home && line.TeamID != away {
			t.Errorf("stat line attributed to unknown team %s", line.TeamID)
		}
		if line.Stats.IsZero() {
			t.Error("empty stat line persisted")
		}
	}
}

func TestSimulateGameAlreadyPlayedIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	home, away := uuid.New(), uuid.New()
	app := newTestApp(repo, &fakeRosters{}) // roster loads would fail; must not be reached
	g := scheduleGame(t, repo, home, away)
	g.Played = true
	g.Status = models.GameStatusFinal
	g.HomeScore, g.AwayScore = 21, 14

	got, err := app.SimulateGame(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("SimulateGame: %v", err)
	}
	if got.HomeScore != 21 || got.AwayScore != 14 {
		t.Errorf("stored result not returned: %+v", got)
	}
	if len(repo.finalized) != 0 {
		t.Errorf("FinalizeGame called on a played game")
	}
}

func TestSimulateGameNotFound(t *testing.T) {
	app := newTestApp(newFakeRepo(), &fakeRosters{})
	_, err := app.SimulateGame(context.Background(), uuid.New())
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("err = %v, want ErrGameNotFound", err)
	}
}

func TestSimulateGameLostFinalizeRace(t *testing.T) {
	repo := newFakeRepo()
	home, away := uuid.New(), uuid.New()
	rosters := &fakeRosters{rosters: map[uuid.UUID][]models.Player{
		home: testRoster(home),
		away: testRoster(away),
	}}
	app := newTestApp(repo, rosters)
	g := scheduleGame(t, repo, home, away)

	winner := *g
	winner.Played = true
	winner.Status = models.GameStatusFinal
	winner.HomeScore, winner.AwayScore = 10, 7
	repo.finalizeErr = ErrGameAlreadyFinal
	repo.finalWinner = &winner

	// GetGame still shows the game unplayed at load time, so the simulation
	// runs, loses the finalize race, and must surface the committed result.
	got, err := app.SimulateGame(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("SimulateGame: %v", err)
	}
	if got.HomeScore != 10 || got.AwayScore != 7 {
		t.Errorf("race loser returned %d-%d, want the winner's 10-7", got.HomeScore, got.AwayScore)
	}
}

func TestSimulateGameRosterLoadFailure(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo, &fakeRosters{err: errors.New("roster query failed")})
	g := scheduleGame(t, repo, uuid.New(), uuid.New())

	if _, err := app.SimulateGame(context.Background(), g.ID); err == nil {
		t.Fatal("expected roster load failure to propagate")
	}
	if len(repo.finalized) != 0 {
		t.Error("FinalizeGame called despite roster load failure")
	}
}

func TestSideStatLinesSkipsUnfilledSlots(t *testing.T) {
	teamID := uuid.New()
	qbID := uuid.New()
	side := engine.TeamSide{
		TeamID:    teamID,
		QBStarter: &qbID,
		RBStarter: nil, // no back on the roster
	}
	result := engine.SideResult{Stats: engine.SlotStats{
		QB: models.StatLine{PassYards: 120, PassTDs: 1},
		RB: models.StatLine{RushYards: 40}, // dropped, nobody to credit
		WR: models.StatLine{},              // dropped, zero line
	}}

	lines := sideStatLines(side, result)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].PlayerID != qbID || lines[0].TeamID != teamID {
		t.Errorf("line attribution = %+v", lines[0])
	}
	if lines[0].Stats.PassYards != 120 {
		t.Errorf("PassYards = %d, want 120", lines[0].Stats.PassYards)
	}
}

func TestStarterAtPicksFirstMatch(t *testing.T) {
	teamID := uuid.New()
	players := testRoster(teamID)
	got := starterAt(players, models.PositionQB)
	if got == nil || *got != players[0].ID {
		t.Fatalf("starterAt(QB) = %v, want the top-rated quarterback", got)
	}
	if starterAt(players, models.PositionK) != nil {
		t.Fatal("starterAt returned a player for an unfilled position")
	}
}
