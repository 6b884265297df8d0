package engine

import (
	"github.com/google/uuid"
)

// Clock constants for a regulation game.
const (
	Quarters       = 4
	QuarterSeconds = 900
	// clockCutoff ends a quarter once too little time remains for another snap.
	clockCutoff = 20
)

// Pace bounds: possessions-per-time-unit shared by both teams for the game.
const (
	paceMin = 1.8
	paceMax = 3.2
)

// TeamSide is one team's simulation input: its derived ratings plus the
// starter ids stats are attributed to. A nil starter pointer means the slot
// has nobody to credit and its stats are dropped.
type TeamSide struct {
	TeamID  uuid.UUID
	Offense OffenseRatings
	Defense float64

	QBStarter *uuid.UUID
	RBStarter *uuid.UUID
	WRStarter *uuid.UUID
}

// SideResult accumulates one team's side of the outcome.
type SideResult struct {
	Score      int
	Touchdowns int
	FieldGoals int
	Stats      SlotStats
	// YardsEstimates carries the latent per-possession yardage signal for analytics.
	YardsEstimates []float64
}

// Outcome is the full result of simulating a game.
type Outcome struct {
	Home SideResult
	Away SideResult
	// HomeOpened records which side won the opening possession draw.
	HomeOpened bool
	Pace       float64
	Possessions int
}

// Simulator drives full games through the possession engine.
type Simulator struct {
	rnd    Rand
	engine *PossessionEngine
}

// NewSimulator returns a game simulator drawing from rnd.
func NewSimulator(rnd Rand) *Simulator {
	return &Simulator{rnd: rnd, engine: NewPossessionEngine(rnd)}
}

// PlayGame simulates four quarters between home and away and returns the
// accumulated scores and stat deltas. It touches no storage; the caller owns
// loading inputs and committing the result.
func (s *Simulator) PlayGame(home, away TeamSide) Outcome {
	out := Outcome{
		HomeOpened: s.rnd.Float64() < 0.5,
		Pace:       pace(home.Offense.Overall, away.Offense.Overall),
	}

	homeOffense := out.HomeOpened
	for q := 0; q < Quarters; q++ {
		clock := QuarterSeconds
		for clock > clockCutoff {
			var p Possession
			if homeOffense {
				p = s.engine.Run(home.Offense, away.Defense, out.Pace, clock)
				applyPossession(&out.Home, p)
			} else {
				p = s.engine.Run(away.Offense, home.Defense, out.Pace, clock)
				applyPossession(&out.Away, p)
			}
			out.Possessions++
			clock -= p.Elapsed
			homeOffense = !homeOffense
		}
	}

	return out
}

// pace derives the shared possessions-per-time-unit parameter from both
// teams' overall strength.
func pace(homeOverall, awayOverall float64) float64 {
	return clampF(paceMin, paceMax, 2.2+(homeOverall+awayOverall-120)/200)
}

func applyPossession(side *SideResult, p Possession) {
	side.Score += p.Points
	switch p.Outcome {
	case OutcomeTouchdown:
		side.Touchdowns++
	case OutcomeFieldGoal:
		side.FieldGoals++
	}
	side.Stats.QB.Add(p.Stats.QB)
	side.Stats.RB.Add(p.Stats.RB)
	side.Stats.WR.Add(p.Stats.WR)
	side.YardsEstimates = append(side.YardsEstimates, p.YardsEstimate)
}
