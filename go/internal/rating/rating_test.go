package rating

import (
	"math"
	"testing"

	"github.com/mcdev12/gridiron/go/internal/models"
)

func intPtr(v int) *int { return &v }

func player(pos models.Position, ratingVal int, attrs *models.PlayerAttributes) models.Player {
	return models.Player{Position: pos, Rating: ratingVal, Attributes: attrs}
}

func TestOverallEmptyRoster(t *testing.T) {
	if got := Overall(nil); got != FallbackRating {
		t.Fatalf("Overall(empty) = %v, want %v", got, FallbackRating)
	}
}

func TestOverallRankWeights(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{
			name:    "single player counts x1.25",
			ratings: []int{80},
			want:    100, // 80*1.25
		},
		{
			name:    "two players",
			ratings: []int{80, 60},
			// (80*1.25 + 60*1.10) / 2 = 83
			want: 83,
		},
		{
			name: "twelve players hits every tier",
			// rank 1 x1.25, ranks 2-5 x1.10, ranks 6-11 x1.00, rank 12 x0.85
			ratings: []int{90, 80, 80, 80, 80, 70, 70, 70, 70, 70, 70, 50},
			want:    math.Round((90*1.25 + 4*80*1.10 + 6*70*1.00 + 50*0.85) / 12),
		},
		{
			name: "order of input does not matter",
			// same as "two players" reversed
			ratings: []int{60, 80},
			want:    83,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := make([]models.Player, len(tt.ratings))
			for i, r := range tt.ratings {
				players[i] = player(models.PositionWR, r, nil)
			}
			if got := Overall(players); got != tt.want {
				t.Errorf("Overall(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

func TestUnitRatingEmptyUnit(t *testing.T) {
	players := []models.Player{player(models.PositionRB, 70, nil)}
	if got := UnitRating(players, UnitQB); got != FallbackRating {
		t.Fatalf("UnitRating(no QBs) = %v, want %v", got, FallbackRating)
	}
}

func TestUnitRatingQBBlend(t *testing.T) {
	qb := player(models.PositionQB, 80, &models.PlayerAttributes{
		ThrowPower:    intPtr(90),
		ThrowAccuracy: intPtr(80),
		Awareness:     intPtr(70),
	})
	// 90*0.35 + 80*0.45 + 70*0.20 = 81.5 -> 82
	if got := UnitRating([]models.Player{qb}, UnitQB); got != 82 {
		t.Fatalf("UnitRating(QB) = %v, want 82", got)
	}
}

func TestUnitRatingMissingAttributesDefault(t *testing.T) {
	// No attribute row at all: every attribute reads as 50, so any blend
	// that sums to 1 yields 50.
	qb := player(models.PositionQB, 80, nil)
	if got := UnitRating([]models.Player{qb}, UnitQB); got != 50 {
		t.Fatalf("UnitRating(QB, no attrs) = %v, want 50", got)
	}

	// Partially missing: throw_accuracy absent reads as 50.
	qb2 := player(models.PositionQB, 80, &models.PlayerAttributes{
		ThrowPower: intPtr(90),
		Awareness:  intPtr(70),
	})
	// 90*0.35 + 50*0.45 + 70*0.20 = 68
	if got := UnitRating([]models.Player{qb2}, UnitQB); got != 68 {
		t.Fatalf("UnitRating(QB, partial attrs) = %v, want 68", got)
	}
}

func TestUnitRatingReceiverIncludesTE(t *testing.T) {
	wr := player(models.PositionWR, 80, &models.PlayerAttributes{
		Catching: intPtr(80), Speed: intPtr(80), Agility: intPtr(80), Awareness: intPtr(80),
	})
	te := player(models.PositionTE, 70, &models.PlayerAttributes{
		Catching: intPtr(60), Speed: intPtr(60), Agility: intPtr(60), Awareness: intPtr(60),
	})
	// Each blends to exactly their flat value; mean of 80 and 60 is 70.
	if got := UnitRating([]models.Player{wr, te}, UnitReceiver); got != 70 {
		t.Fatalf("UnitRating(receiver) = %v, want 70", got)
	}
}

func TestDefenseClampBounds(t *testing.T) {
	// Uniform 99 attributes put every defensive unit at 99, clamped high end.
	elite := &models.PlayerAttributes{
		Speed: intPtr(99), Strength: intPtr(99), Agility: intPtr(99),
		Tackling: intPtr(99), Awareness: intPtr(99), Stamina: intPtr(99),
	}
	strong := []models.Player{
		player(models.PositionDL, 99, elite),
		player(models.PositionLB, 99, elite),
		player(models.PositionCB, 99, elite),
		player(models.PositionS, 99, elite),
	}
	if got := Defense(strong); got != 99 {
		t.Fatalf("Defense(elite) = %v, want 99", got)
	}

	// Uniform 0 attributes blend to 0, clamped to the floor.
	awful := &models.PlayerAttributes{
		Speed: intPtr(0), Strength: intPtr(0), Agility: intPtr(0),
		Tackling: intPtr(0), Awareness: intPtr(0), Stamina: intPtr(0),
	}
	weak := []models.Player{
		player(models.PositionDL, 40, awful),
		player(models.PositionLB, 40, awful),
		player(models.PositionCB, 40, awful),
		player(models.PositionS, 40, awful),
	}
	if got := Defense(weak); got != 30 {
		t.Fatalf("Defense(awful) = %v, want 30", got)
	}
}

func TestDefenseBlendWeights(t *testing.T) {
	flat := func(v int) *models.PlayerAttributes {
		return &models.PlayerAttributes{
			Speed: intPtr(v), Strength: intPtr(v), Agility: intPtr(v),
			Tackling: intPtr(v), Awareness: intPtr(v), Stamina: intPtr(v),
		}
	}
	players := []models.Player{
		player(models.PositionDL, 80, flat(80)),
		player(models.PositionLB, 70, flat(70)),
		player(models.PositionCB, 60, flat(60)),
		player(models.PositionS, 90, flat(90)),
	}
	// 80*0.35 + 70*0.35 + 60*0.15 + 90*0.15 = 75
	if got := Defense(players); got != 75 {
		t.Fatalf("Defense = %v, want 75", got)
	}
}

func TestComputeEmptyRoster(t *testing.T) {
	tr := Compute(nil)
	if tr.Overall != FallbackRating {
		t.Errorf("Overall = %v, want %v", tr.Overall, FallbackRating)
	}
	for unit, v := range tr.Units {
		if v != FallbackRating {
			t.Errorf("Units[%s] = %v, want %v", unit, v, FallbackRating)
		}
	}
	// Every defensive unit falls back to 60, which blends to 60.
	if tr.Defense != 60 {
		t.Errorf("Defense = %v, want 60", tr.Defense)
	}
}
