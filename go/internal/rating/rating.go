// Package rating derives scalar team and unit ratings from roster attributes.
// Everything here is a pure function of the roster snapshot it is handed.
package rating

import (
	"math"
	"sort"

	"github.com/mcdev12/gridiron/go/internal/models"
)

// FallbackRating is returned when a roster (or unit) has no eligible players.
const FallbackRating = 60

// Unit identifies a role group for unit-rating purposes.
type Unit string

const (
	UnitQB         Unit = "qb"
	UnitRB         Unit = "rb"
	UnitReceiver   Unit = "receiver" // WR + TE
	UnitCorner     Unit = "corner"
	UnitSafety     Unit = "safety"
	UnitLinebacker Unit = "linebacker"
	UnitDLine      Unit = "dline"
	UnitOLine      Unit = "oline"
)

// TeamRating is the full derived rating snapshot for one roster.
type TeamRating struct {
	Overall float64         `json:"overall"`
	Defense float64         `json:"defense"`
	Units   map[Unit]float64 `json:"units"`
}

// Compute derives the complete rating snapshot for a roster.
func Compute(players []models.Player) TeamRating {
	units := map[Unit]float64{
		UnitQB:         UnitRating(players, UnitQB),
		UnitRB:         UnitRating(players, UnitRB),
		UnitReceiver:   UnitRating(players, UnitReceiver),
		UnitCorner:     UnitRating(players, UnitCorner),
		UnitSafety:     UnitRating(players, UnitSafety),
		UnitLinebacker: UnitRating(players, UnitLinebacker),
		UnitDLine:      UnitRating(players, UnitDLine),
		UnitOLine:      UnitRating(players, UnitOLine),
	}
	return TeamRating{
		Overall: Overall(players),
		Defense: defenseFromUnits(units),
		Units:   units,
	}
}

// Overall is the rank-weighted roster rating: the best player counts x1.25,
// ranks 2-5 x1.10, ranks 6-11 x1.00, everyone else x0.85. The result is the
// rounded mean of the weighted values, FallbackRating for an empty roster.
func Overall(players []models.Player) float64 {
	if len(players) == 0 {
		return FallbackRating
	}

	ratings := make([]float64, len(players))
	for i, p := range players {
		ratings[i] = float64(p.Rating)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ratings)))

	var sum float64
	for i, r := range ratings {
		switch {
		case i == 0:
			sum += r * 1.25
		case i <= 4:
			sum += r * 1.10
		case i <= 10:
			sum += r * 1.00
		default:
			sum += r * 0.85
		}
	}
	return math.Round(sum / float64(len(ratings)))
}

type attrWeight struct {
	kind   models.AttributeKind
	weight float64
}

// unitBlends maps each unit to its attribute blend. Weights sum to 1.
var unitBlends = map[Unit][]attrWeight{
	UnitQB: {
		{models.AttrThrowPower, 0.35},
		{models.AttrThrowAccuracy, 0.45},
		{models.AttrAwareness, 0.20},
	},
	UnitRB: {
		{models.AttrSpeed, 0.30},
		{models.AttrAgility, 0.25},
		{models.AttrStrength, 0.25},
		{models.AttrAwareness, 0.20},
	},
	UnitReceiver: {
		{models.AttrCatching, 0.35},
		{models.AttrSpeed, 0.30},
		{models.AttrAgility, 0.20},
		{models.AttrAwareness, 0.15},
	},
	UnitCorner: {
		{models.AttrSpeed, 0.30},
		{models.AttrAgility, 0.25},
		{models.AttrAwareness, 0.25},
		{models.AttrTackling, 0.20},
	},
	UnitSafety: {
		{models.AttrSpeed, 0.30},
		{models.AttrAgility, 0.25},
		{models.AttrAwareness, 0.25},
		{models.AttrTackling, 0.20},
	},
	UnitLinebacker: {
		{models.AttrTackling, 0.35},
		{models.AttrStrength, 0.25},
		{models.AttrAwareness, 0.20},
		{models.AttrAgility, 0.20},
	},
	UnitDLine: {
		{models.AttrStrength, 0.45},
		{models.AttrTackling, 0.35},
		{models.AttrAwareness, 0.20},
	},
	UnitOLine: {
		{models.AttrStrength, 0.50},
		{models.AttrAwareness, 0.30},
		{models.AttrStamina, 0.20},
	},
}

// unitPositions maps each unit to the positions eligible for it.
var unitPositions = map[Unit][]models.Position{
	UnitQB:         {models.PositionQB},
	UnitRB:         {models.PositionRB},
	UnitReceiver:   {models.PositionWR, models.PositionTE},
	UnitCorner:     {models.PositionCB},
	UnitSafety:     {models.PositionS},
	UnitLinebacker: {models.PositionLB},
	UnitDLine:      {models.PositionDL},
	UnitOLine:      {models.PositionOL},
}

// UnitRating blends the unit's attributes across its eligible players and
// returns the rounded mean, FallbackRating when the unit is empty. Missing
// attributes contribute the neutral default.
func UnitRating(players []models.Player, unit Unit) float64 {
	blend := unitBlends[unit]
	eligible := unitPositions[unit]
	if blend == nil || eligible == nil {
		return FallbackRating
	}

	var sum float64
	var count int
	for i := range players {
		p := &players[i]
		if !positionIn(p.Position, eligible) {
			continue
		}
		var v float64
		for _, aw := range blend {
			v += p.Attr(aw.kind) * aw.weight
		}
		sum += v
		count++
	}
	if count == 0 {
		return FallbackRating
	}
	return math.Round(sum / float64(count))
}

// Defense blends the defensive units into one scalar, clamped to [30, 99].
func Defense(players []models.Player) float64 {
	return defenseFromUnits(map[Unit]float64{
		UnitDLine:      UnitRating(players, UnitDLine),
		UnitLinebacker: UnitRating(players, UnitLinebacker),
		UnitCorner:     UnitRating(players, UnitCorner),
		UnitSafety:     UnitRating(players, UnitSafety),
	})
}

func defenseFromUnits(units map[Unit]float64) float64 {
	blended := units[UnitDLine]*0.35 +
		units[UnitLinebacker]*0.35 +
		units[UnitCorner]*0.15 +
		units[UnitSafety]*0.15
	return clamp(30, 99, blended)
}

func positionIn(pos models.Position, set []models.Position) bool {
	for _, p := range set {
		if pos == p {
			return true
		}
	}
	return false
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
