// Package engine is the stochastic possession and game simulator. It converts
// two teams' derived ratings into scores and per-slot stat lines; persistence
// belongs to its callers.
package engine

import (
	"math"

	"github.com/mcdev12/gridiron/go/internal/models"
)

// OutcomeType classifies how a possession ended.
type OutcomeType string

const (
	OutcomeTouchdown OutcomeType = "touchdown"
	OutcomeFieldGoal OutcomeType = "field_goal"
	OutcomeEmpty     OutcomeType = "empty"
)

// Points per scoring outcome.
const (
	TouchdownPoints = 7
	FieldGoalPoints = 3
)

// Probability and clock bounds. Every probability is clamped, so a draw
// outside [0,1) can only mean a programming bug upstream.
const (
	tdProbFloor = 0.05
	tdProbCeil  = 0.45
	fgProbFloor = 0.05
	fgProbCeil  = 0.35

	driveSecondsMin = 60
	driveSecondsMax = 160
)

// OffenseRatings is the offensive side of a possession: the team overall plus
// the unit ratings the outcome model draws on.
type OffenseRatings struct {
	Overall  float64
	QB       float64
	RB       float64
	Receiver float64
}

// unitStrength is the aggregate offensive unit signal behind the touchdown model.
func (o OffenseRatings) unitStrength() float64 {
	return (o.QB + o.RB + o.Receiver) / 3
}

// SlotStats are the stat deltas a possession credits to the offense's
// starter slots.
type SlotStats struct {
	QB models.StatLine
	RB models.StatLine
	WR models.StatLine
}

// Possession is one drive's outcome.
type Possession struct {
	Outcome OutcomeType
	Points  int
	// YardsEstimate is a latent signal of how the drive moved the ball. The
	// outcome selection is probability-driven, not yardage-driven; the value
	// is surfaced for analytics only.
	YardsEstimate float64
	Elapsed       int
	Stats         SlotStats
}

// PossessionEngine simulates one possession at a time.
type PossessionEngine struct {
	rnd Rand
}

// NewPossessionEngine returns an engine drawing from rnd.
func NewPossessionEngine(rnd Rand) *PossessionEngine {
	return &PossessionEngine{rnd: rnd}
}

// Run simulates one possession for an offense against a defense rating.
// remaining caps the drive's elapsed seconds to what is left in the quarter.
//
// Touchdown and field goal are decided by two independent draws, not a single
// partitioned draw. That slightly overestimates combined scoring probability
// and is intentional game balance; do not collapse it into one draw.
func (e *PossessionEngine) Run(off OffenseRatings, defense, pace float64, remaining int) Possession {
	p := Possession{Outcome: OutcomeEmpty}

	p.YardsEstimate = off.QB*0.25 + off.RB*0.20 + off.Receiver*0.20 + off.Overall*0.15 -
		defense*0.8 + float64(e.rnd.IntBetween(-25, 25))

	tdProb := clampF(tdProbFloor, tdProbCeil, (off.unitStrength()-defense)/120+0.18)
	fgProb := clampF(fgProbFloor, fgProbCeil, (off.Overall-defense)/160+0.10)

	if e.rnd.Float64() < tdProb {
		p.Outcome = OutcomeTouchdown
		p.Points = TouchdownPoints
		e.creditTouchdown(&p.Stats)
	} else if e.rnd.Float64() < fgProb {
		p.Outcome = OutcomeFieldGoal
		p.Points = FieldGoalPoints
		e.creditFieldGoal(&p.Stats)
	} else {
		e.creditEmpty(&p.Stats)
	}

	drive := int(math.Round(float64(110+e.rnd.IntBetween(-50, 50)) / pace))
	p.Elapsed = clampI(driveSecondsMin, driveSecondsMax, drive)
	if p.Elapsed > remaining {
		p.Elapsed = remaining
	}

	return p
}

// creditTouchdown writes the scoring drive's stat deltas: a passing-heavy QB
// line, then either a receiving or a rushing touchdown for the skill slot.
func (e *PossessionEngine) creditTouchdown(s *SlotStats) {
	s.QB.PassAttempts += e.rnd.IntBetween(3, 6)
	s.QB.PassCompletions += e.rnd.IntBetween(2, 5)
	s.QB.PassYards += e.rnd.IntBetween(15, 40)
	s.QB.PassTDs++

	if e.rnd.Float64() < 0.45 {
		s.WR.Receptions += e.rnd.IntBetween(1, 2)
		s.WR.ReceivingYards += e.rnd.IntBetween(10, 25)
		s.WR.ReceivingTDs++
	} else {
		s.RB.RushAttempts += e.rnd.IntBetween(1, 3)
		s.RB.RushYards += e.rnd.IntBetween(5, 15)
		s.RB.RushTDs++
	}
}

// creditFieldGoal writes a small generic stat line for a drive that stalled
// into a field goal.
func (e *PossessionEngine) creditFieldGoal(s *SlotStats) {
	s.QB.PassAttempts += e.rnd.IntBetween(2, 4)
	s.QB.PassCompletions += e.rnd.IntBetween(1, 3)
	s.QB.PassYards += e.rnd.IntBetween(8, 20)
	if e.rnd.Float64() < 0.08 {
		s.QB.Interceptions++
	}
	s.RB.RushAttempts += e.rnd.IntBetween(1, 2)
	s.RB.RushYards += e.rnd.IntBetween(3, 8)
	s.WR.Receptions += e.rnd.IntBetween(1, 2)
	s.WR.ReceivingYards += e.rnd.IntBetween(6, 12)
}

// creditEmpty occasionally records a drive-ending interception.
func (e *PossessionEngine) creditEmpty(s *SlotStats) {
	if e.rnd.Float64() < 0.10 {
		s.QB.PassAttempts++
		s.QB.Interceptions++
	}
}

func clampF(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
