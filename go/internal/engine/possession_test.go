package engine

import (
	"testing"
)

// scriptRand replays fixed draw sequences so a test can steer the engine down
// a specific branch. It fails the test if the engine draws more than scripted.
type scriptRand struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scriptRand) Float64() float64 {
	if len(s.floats) == 0 {
		s.t.Fatal("unexpected Float64 draw")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptRand) IntBetween(lo, hi int) int {
	if len(s.ints) == 0 {
		s.t.Fatalf("unexpected IntBetween(%d, %d) draw", lo, hi)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < lo || v > hi {
		s.t.Fatalf("scripted draw %d outside requested range [%d, %d]", v, lo, hi)
	}
	return v
}

func evenOffense() OffenseRatings {
	return OffenseRatings{Overall: 70, QB: 70, RB: 70, Receiver: 70}
}

func TestRunTouchdownReceivingBranch(t *testing.T) {
	rnd := &scriptRand{
		t:      t,
		floats: []float64{0.0, 0.40}, // touchdown, then the receiving branch
		ints:   []int{0, 4, 3, 20, 1, 15, 0},
	}
	e := NewPossessionEngine(rnd)

	p := e.Run(evenOffense(), 70, 2.2, QuarterSeconds)

	if p.Outcome != OutcomeTouchdown {
		t.Fatalf("Outcome = %v, want touchdown", p.Outcome)
	}
	if p.Points != TouchdownPoints {
		t.Errorf("Points = %d, want %d", p.Points, TouchdownPoints)
	}
	if p.Stats.QB.PassTDs != 1 || p.Stats.QB.PassAttempts != 4 || p.Stats.QB.PassCompletions != 3 || p.Stats.QB.PassYards != 20 {
		t.Errorf("QB line = %+v, want 4/3/20 with a passing touchdown", p.Stats.QB)
	}
	if p.Stats.WR.ReceivingTDs != 1 || p.Stats.WR.Receptions != 1 || p.Stats.WR.ReceivingYards != 15 {
		t.Errorf("WR line = %+v, want the receiving touchdown", p.Stats.WR)
	}
	if p.Stats.RB.RushTDs != 0 || p.Stats.RB.RushAttempts != 0 {
		t.Errorf("RB line = %+v, want untouched on the receiving branch", p.Stats.RB)
	}
}

func TestRunTouchdownRushingBranch(t *testing.T) {
	rnd := &scriptRand{
		t:      t,
		floats: []float64{0.0, 0.60}, // touchdown, then the rushing branch
		ints:   []int{0, 3, 2, 25, 2, 10, 0},
	}
	e := NewPossessionEngine(rnd)

	p := e.Run(evenOffense(), 70, 2.2, QuarterSeconds)

	if p.Outcome != OutcomeTouchdown {
		t.Fatalf("Outcome = %v, want touchdown", p.Outcome)
	}
	if p.Stats.RB.RushTDs != 1 || p.Stats.RB.RushAttempts != 2 || p.Stats.RB.RushYards != 10 {
		t.Errorf("RB line = %+v, want the rushing touchdown", p.Stats.RB)
	}
	if p.Stats.WR.ReceivingTDs != 0 || p.Stats.WR.Receptions != 0 {
		t.Errorf("WR line = %+v, want untouched on the rushing branch", p.Stats.WR)
	}
	if p.Stats.QB.PassTDs != 1 {
		t.Errorf("QB PassTDs = %d, want 1", p.Stats.QB.PassTDs)
	}
}

func TestRunFieldGoal(t *testing.T) {
	rnd := &scriptRand{
		t:      t,
		floats: []float64{0.99, 0.0, 0.99}, // no touchdown, field goal, no interception
		ints:   []int{0, 3, 2, 12, 1, 5, 2, 8, 0},
	}
	e := NewPossessionEngine(rnd)

	p := e.Run(evenOffense(), 70, 2.2, QuarterSeconds)

	if p.Outcome != OutcomeFieldGoal {
		t.Fatalf("Outcome = %v, want field_goal", p.Outcome)
	}
	if p.Points != FieldGoalPoints {
		t.Errorf("Points = %d, want %d", p.Points, FieldGoalPoints)
	}
	if p.Stats.QB.Interceptions != 0 {
		t.Errorf("Interceptions = %d, want 0", p.Stats.QB.Interceptions)
	}
	if p.Stats.QB.PassYards != 12 || p.Stats.RB.RushYards != 5 || p.Stats.WR.ReceivingYards != 8 {
		t.Errorf("stall-drive stats = %+v, want QB 12 / RB 5 / WR 8 yards", p.Stats)
	}
	if p.Stats.QB.PassTDs != 0 || p.Stats.RB.RushTDs != 0 || p.Stats.WR.ReceivingTDs != 0 {
		t.Errorf("field goal drive credited a touchdown: %+v", p.Stats)
	}
}

func TestRunFieldGoalInterception(t *testing.T) {
	rnd := &scriptRand{
		t:      t,
		floats: []float64{0.99, 0.0, 0.05}, // the 0.08 draw lands an interception
		ints:   []int{0, 2, 1, 8, 1, 3, 1, 6, 0},
	}
	e := NewPossessionEngine(rnd)

	p := e.Run(evenOffense(), 70, 2.2, QuarterSeconds)

	if p.Stats.QB.Interceptions != 1 {
		t.Fatalf("Interceptions = %d, want 1", p.Stats.QB.Interceptions)
	}
}

func TestRunEmptyDrive(t *testing.T) {
	rnd := &scriptRand{
		t:      t,
		floats: []float64{0.99, 0.99, 0.50}, // neither score, no turnover
		ints:   []int{0, 0},
	}
	e := NewPossessionEngine(rnd)

	p := e.Run(evenOffense(), 70, 2.2, QuarterSeconds)

	if p.Outcome != OutcomeEmpty {
		t.Fatalf("Outcome = %v, want empty", p.Outcome)
	}
	if p.Points != 0 {
		t.Errorf("Points = %d, want 0", p.Points)
	}
	if p.Stats != (SlotStats{}) {
		t.Errorf("empty drive credited stats: %+v", p.Stats)
	}
}

func TestRunEmptyDriveInterception(t *testing.T) {
	rnd := &scriptRand{
		t:      t,
		floats: []float64{0.99, 0.99, 0.05}, // the 0.10 draw lands a turnover
		ints:   []int{0, 0},
	}
	e := NewPossessionEngine(rnd)

	p := e.Run(evenOffense(), 70, 2.2, QuarterSeconds)

	if p.Stats.QB.PassAttempts != 1 || p.Stats.QB.Interceptions != 1 {
		t.Fatalf("QB line = %+v, want one attempt and one interception", p.Stats.QB)
	}
}

func TestRunTouchdownProbabilityClamps(t *testing.T) {
	t.Run("floor", func(t *testing.T) {
		// Weak offense against an elite defense clamps tdProb to 0.05.
		off := OffenseRatings{Overall: 30, QB: 30, RB: 30, Receiver: 30}

		rnd := &scriptRand{t: t, floats: []float64{0.049, 0.40}, ints: []int{0, 4, 3, 20, 1, 15, 0}}
		p := NewPossessionEngine(rnd).Run(off, 99, 2.2, QuarterSeconds)
		if p.Outcome != OutcomeTouchdown {
			t.Errorf("draw below floor: Outcome = %v, want touchdown", p.Outcome)
		}

		// At the threshold the touchdown is off, and the field goal floor (also
		// clamped to 0.05) rejects a 0.05 draw too.
		rnd = &scriptRand{t: t, floats: []float64{0.05, 0.05, 0.50}, ints: []int{0, 0}}
		p = NewPossessionEngine(rnd).Run(off, 99, 2.2, QuarterSeconds)
		if p.Outcome != OutcomeEmpty {
			t.Errorf("draws at floor: Outcome = %v, want empty", p.Outcome)
		}
	})

	t.Run("ceiling", func(t *testing.T) {
		// Elite offense against a weak defense clamps tdProb to 0.45.
		off := OffenseRatings{Overall: 99, QB: 99, RB: 99, Receiver: 99}

		rnd := &scriptRand{t: t, floats: []float64{0.449, 0.40}, ints: []int{0, 4, 3, 20, 1, 15, 0}}
		p := NewPossessionEngine(rnd).Run(off, 30, 2.2, QuarterSeconds)
		if p.Outcome != OutcomeTouchdown {
			t.Errorf("draw below ceiling: Outcome = %v, want touchdown", p.Outcome)
		}

		// At 0.45 the touchdown misses; the fgProb ceiling is 0.35 so a 0.349
		// draw converts the field goal.
		rnd = &scriptRand{t: t, floats: []float64{0.45, 0.349}, ints: []int{0, 3, 2, 12, 1, 5, 2, 8, 0}}
		p = NewPossessionEngine(rnd).Run(off, 30, 2.2, QuarterSeconds)
		if p.Outcome != OutcomeFieldGoal {
			t.Errorf("draws at ceiling: Outcome = %v, want field_goal", p.Outcome)
		}
	})
}

func TestRunElapsedBounds(t *testing.T) {
	tests := []struct {
		name      string
		draw      int
		pace      float64
		remaining int
		want      int
	}{
		{"fast pace clamps to floor", -50, 3.2, QuarterSeconds, 60}, // 60/3.2 rounds to 19
		{"slow pace stays in bounds", 50, 1.8, QuarterSeconds, 89},  // 160/1.8 rounds to 89
		{"midrange draw", 0, 2.2, QuarterSeconds, 50},               // 110/2.2 = 50
		{"remaining caps the drive", 0, 2.2, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := &scriptRand{t: t, floats: []float64{0.99, 0.99, 0.50}, ints: []int{0, tt.draw}}
			p := NewPossessionEngine(rnd).Run(evenOffense(), 70, tt.pace, tt.remaining)
			if p.Elapsed != tt.want {
				t.Errorf("Elapsed = %d, want %d", p.Elapsed, tt.want)
			}
		})
	}
}

func TestRunElapsedAlwaysInBounds(t *testing.T) {
	rnd := NewRand(7)
	e := NewPossessionEngine(rnd)
	for i := 0; i < 500; i++ {
		p := e.Run(evenOffense(), 70, 2.5, QuarterSeconds)
		if p.Elapsed < driveSecondsMin || p.Elapsed > driveSecondsMax {
			t.Fatalf("Elapsed = %d, want within [%d, %d]", p.Elapsed, driveSecondsMin, driveSecondsMax)
		}
	}
}

func TestRunOutcomePointsConsistency(t *testing.T) {
	rnd := NewRand(11)
	e := NewPossessionEngine(rnd)
	off := OffenseRatings{Overall: 85, QB: 88, RB: 80, Receiver: 84}

	for i := 0; i < 1000; i++ {
		p := e.Run(off, 65, 2.4, QuarterSeconds)
		switch p.Outcome {
		case OutcomeTouchdown:
			if p.Points != TouchdownPoints {
				t.Fatalf("touchdown worth %d points", p.Points)
			}
			if p.Stats.QB.PassTDs != 1 {
				t.Fatalf("touchdown without a passing touchdown credit: %+v", p.Stats.QB)
			}
			if p.Stats.WR.ReceivingTDs+p.Stats.RB.RushTDs != 1 {
				t.Fatalf("touchdown credited %d skill touchdowns, want exactly 1", p.Stats.WR.ReceivingTDs+p.Stats.RB.RushTDs)
			}
		case OutcomeFieldGoal:
			if p.Points != FieldGoalPoints {
				t.Fatalf("field goal worth %d points", p.Points)
			}
			if p.Stats.QB.PassTDs != 0 || p.Stats.RB.RushTDs != 0 || p.Stats.WR.ReceivingTDs != 0 {
				t.Fatalf("field goal drive credited a touchdown: %+v", p.Stats)
			}
		case OutcomeEmpty:
			if p.Points != 0 {
				t.Fatalf("empty drive worth %d points", p.Points)
			}
		default:
			t.Fatalf("unknown outcome %q", p.Outcome)
		}
	}
}
