package engine

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/mcdev12/gridiron/go/internal/models"
)

func testSides() (TeamSide, TeamSide) {
	home := TeamSide{
		TeamID:  uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Offense: OffenseRatings{Overall: 82, QB: 85, RB: 78, Receiver: 80},
		Defense: 74,
	}
	away := TeamSide{
		TeamID:  uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Offense: OffenseRatings{Overall: 69, QB: 66, RB: 72, Receiver: 70},
		Defense: 68,
	}
	return home, away
}

func TestPlayGameDeterministicUnderSeed(t *testing.T) {
	home, away := testSides()

	first := NewSimulator(NewRand(1234)).PlayGame(home, away)
	second := NewSimulator(NewRand(1234)).PlayGame(home, away)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different outcomes:\n%+v\n%+v", first, second)
	}

	third := NewSimulator(NewRand(5678)).PlayGame(home, away)
	if reflect.DeepEqual(first, third) {
		t.Fatal("different seeds produced identical outcomes")
	}
}

func TestPlayGameScoreMatchesScoringEvents(t *testing.T) {
	home, away := testSides()

	for seed := int64(0); seed < 25; seed++ {
		out := NewSimulator(NewRand(seed)).PlayGame(home, away)

		for _, side := range []struct {
			name string
			r    SideResult
		}{{"home", out.Home}, {"away", out.Away}} {
			want := side.r.Touchdowns*TouchdownPoints + side.r.FieldGoals*FieldGoalPoints
			if side.r.Score != want {
				t.Fatalf("seed %d %s: Score = %d, want %d (%d TD, %d FG)",
					seed, side.name, side.r.Score, want, side.r.Touchdowns, side.r.FieldGoals)
			}
		}
	}
}

func TestPlayGamePossessionAccounting(t *testing.T) {
	home, away := testSides()
	out := NewSimulator(NewRand(99)).PlayGame(home, away)

	if out.Possessions <= 0 {
		t.Fatalf("Possessions = %d, want > 0", out.Possessions)
	}
	total := len(out.Home.YardsEstimates) + len(out.Away.YardsEstimates)
	if total != out.Possessions {
		t.Fatalf("yards estimates = %d entries, want one per possession (%d)", total, out.Possessions)
	}
	// A full game alternates possession, so neither side sits out more than
	// one extra drive.
	diff := len(out.Home.YardsEstimates) - len(out.Away.YardsEstimates)
	if diff < -1 || diff > 1 {
		t.Fatalf("possession split %d/%d, want alternation",
			len(out.Home.YardsEstimates), len(out.Away.YardsEstimates))
	}
}

func TestPaceBounds(t *testing.T) {
	tests := []struct {
		name string
		home float64
		away float64
		want float64
	}{
		{"weak teams", 30, 30, 1.9},   // 2.2 + (60-120)/200
		{"elite teams", 99, 99, 2.59}, // 2.2 + (198-120)/200
		{"midpoint", 60, 60, 2.2},
		{"clamped to floor", 10, 10, 1.8},
		{"clamped to ceiling", 200, 200, 3.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pace(tt.home, tt.away)
			if got < paceMin || got > paceMax {
				t.Fatalf("pace(%v, %v) = %v, outside [%v, %v]", tt.home, tt.away, got, paceMin, paceMax)
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("pace(%v, %v) = %v, want %v", tt.home, tt.away, got, tt.want)
			}
		})
	}
}

func TestApplyPossessionAccumulates(t *testing.T) {
	var side SideResult
	applyPossession(&side, Possession{
		Outcome:       OutcomeTouchdown,
		Points:        TouchdownPoints,
		YardsEstimate: 12.5,
		Elapsed:       90,
		Stats:         SlotStats{QB: models.StatLine{PassYards: 25}, RB: models.StatLine{RushYards: 8}},
	})
	applyPossession(&side, Possession{
		Outcome:       OutcomeFieldGoal,
		Points:        FieldGoalPoints,
		YardsEstimate: -3.0,
		Elapsed:       75,
		Stats:         SlotStats{QB: models.StatLine{PassYards: 10}},
	})

	if side.Score != 10 || side.Touchdowns != 1 || side.FieldGoals != 1 {
		t.Fatalf("side = %+v, want 10 points from 1 TD and 1 FG", side)
	}
	if side.Stats.QB.PassYards != 35 {
		t.Errorf("QB pass yards = %d, want 35", side.Stats.QB.PassYards)
	}
	if side.Stats.RB.RushYards != 8 {
		t.Errorf("RB rush yards = %d, want 8", side.Stats.RB.RushYards)
	}
	if len(side.YardsEstimates) != 2 {
		t.Errorf("yards estimates = %d entries, want 2", len(side.YardsEstimates))
	}
}
