package standings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mcdev12/gridiron/go/internal/models"
)

type rowKey struct {
	seasonID uuid.UUID
	teamID   uuid.UUID
}

type fakeStandingsRepo struct {
	rows map[rowKey]*models.StandingsRow
}

func newFakeStandingsRepo() *fakeStandingsRepo {
	return &fakeStandingsRepo{rows: make(map[rowKey]*models.StandingsRow)}
}

func (f *fakeStandingsRepo) EnsureRow(ctx context.Context, seasonID, teamID uuid.UUID) error {
	key := rowKey{seasonID, teamID}
	if _, ok := f.rows[key]; !ok {
		f.rows[key] = &models.StandingsRow{SeasonID: seasonID, TeamID: teamID}
	}
	return nil
}

func (f *fakeStandingsRepo) ApplyGameResult(ctx context.Context, seasonID, teamID uuid.UUID, wins, losses, ties, pointsFor, pointsAgainst int) error {
	row, ok := f.rows[rowKey{seasonID, teamID}]
	if !ok {
		return ErrRowNotFound
	}
	row.Wins += wins
	row.Losses += losses
	row.Ties += ties
	row.PointsFor += pointsFor
	row.PointsAgainst += pointsAgainst
	return nil
}

func (f *fakeStandingsRepo) GetRow(ctx context.Context, seasonID, teamID uuid.UUID) (*models.StandingsRow, error) {
	row, ok := f.rows[rowKey{seasonID, teamID}]
	if !ok {
		return nil, ErrRowNotFound
	}
	return row, nil
}

func (f *fakeStandingsRepo) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.StandingsRow, error) {
	var out []models.StandingsRow
	for key, row := range f.rows {
		if key.seasonID == seasonID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func seededApp(t *testing.T, seasonID uuid.UUID, teams ...uuid.UUID) (*App, *fakeStandingsRepo) {
	t.Helper()
	repo := newFakeStandingsRepo()
	app := NewApp(repo)
	for _, teamID := range teams {
		if err := app.EnsureRow(context.Background(), seasonID, teamID); err != nil {
			t.Fatalf("EnsureRow: %v", err)
		}
	}
	return app, repo
}

func TestRecordResultOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		homeScore int
		awayScore int
		homeRow   models.StandingsRow
		awayRow   models.StandingsRow
	}{
		{
			name:      "home win",
			homeScore: 24, awayScore: 17,
			homeRow: models.StandingsRow{Wins: 1, PointsFor: 24, PointsAgainst: 17},
			awayRow: models.StandingsRow{Losses: 1, PointsFor: 17, PointsAgainst: 24},
		},
		{
			name:      "away win",
			homeScore: 13, awayScore: 20,
			homeRow: models.StandingsRow{Losses: 1, PointsFor: 13, PointsAgainst: 20},
			awayRow: models.StandingsRow{Wins: 1, PointsFor: 20, PointsAgainst: 13},
		},
		{
			name:      "tie credits both",
			homeScore: 10, awayScore: 10,
			homeRow: models.StandingsRow{Ties: 1, PointsFor: 10, PointsAgainst: 10},
			awayRow: models.StandingsRow{Ties: 1, PointsFor: 10, PointsAgainst: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seasonID := uuid.New()
			home, away := uuid.New(), uuid.New()
			app, _ := seededApp(t, seasonID, home, away)

			if err := app.RecordResult(context.Background(), seasonID, home, away, tt.homeScore, tt.awayScore); err != nil {
				t.Fatalf("RecordResult: %v", err)
			}

			check := func(teamID uuid.UUID, want models.StandingsRow) {
				got, err := app.GetRow(context.Background(), seasonID, teamID)
				if err != nil {
					t.Fatalf("GetRow: %v", err)
				}
				want.SeasonID, want.TeamID = seasonID, teamID
				if *got != want {
					t.Errorf("row = %+v, want %+v", *got, want)
				}
			}
			check(home, tt.homeRow)
			check(away, tt.awayRow)
		})
	}
}

func TestRecordResultRejectsNegativeScores(t *testing.T) {
	seasonID := uuid.New()
	home, away := uuid.New(), uuid.New()
	app, _ := seededApp(t, seasonID, home, away)

	if err := app.RecordResult(context.Background(), seasonID, home, away, -1, 10); err == nil {
		t.Fatal("expected error for a negative score")
	}
}

func TestRecordResultMissingRow(t *testing.T) {
	seasonID := uuid.New()
	home, away := uuid.New(), uuid.New()
	// Only the home row exists; the away update must fail.
	app, _ := seededApp(t, seasonID, home)

	err := app.RecordResult(context.Background(), seasonID, home, away, 21, 7)
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("err = %v, want ErrRowNotFound", err)
	}
}

func TestRecordResultAccumulatesAcrossGames(t *testing.T) {
	seasonID := uuid.New()
	home, away := uuid.New(), uuid.New()
	app, _ := seededApp(t, seasonID, home, away)

	results := [][2]int{{21, 14}, {7, 28}, {17, 17}}
	for _, r := range results {
		if err := app.RecordResult(context.Background(), seasonID, home, away, r[0], r[1]); err != nil {
			t.Fatalf("RecordResult: %v", err)
		}
	}

	got, err := app.GetRow(context.Background(), seasonID, home)
	if err != nil {
		t.Fatalf("GetRow: %v", err)
	}
	if got.Wins != 1 || got.Losses != 1 || got.Ties != 1 {
		t.Errorf("record = %d-%d-%d, want 1-1-1", got.Wins, got.Losses, got.Ties)
	}
	if got.GamesPlayed() != 3 {
		t.Errorf("GamesPlayed = %d, want 3", got.GamesPlayed())
	}
	if got.PointsFor != 45 || got.PointsAgainst != 59 {
		t.Errorf("points = %d/%d, want 45/59", got.PointsFor, got.PointsAgainst)
	}
}

func TestEnsureRowIdempotent(t *testing.T) {
	seasonID := uuid.New()
	home, away := uuid.New(), uuid.New()
	app, repo := seededApp(t, seasonID, home, away)

	if err := app.RecordResult(context.Background(), seasonID, home, away, 14, 7); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	// Re-ensuring must not reset the accumulated record.
	if err := app.EnsureRow(context.Background(), seasonID, home); err != nil {
		t.Fatalf("EnsureRow: %v", err)
	}
	row := repo.rows[rowKey{seasonID, home}]
	if row.Wins != 1 {
		t.Fatalf("EnsureRow reset the row: %+v", row)
	}
}
