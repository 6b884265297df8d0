package models

import (
	"time"

	"github.com/google/uuid"
)

// Position is the closed set of roster positions.
type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
	PositionOL Position = "OL"
	PositionDL Position = "DL"
	PositionLB Position = "LB"
	PositionCB Position = "CB"
	PositionS  Position = "S"
	PositionK  Position = "K"
	PositionP  Position = "P"
)

// ValidPositions lists every position the schema accepts.
var ValidPositions = []Position{
	PositionQB, PositionRB, PositionWR, PositionTE, PositionOL,
	PositionDL, PositionLB, PositionCB, PositionS, PositionK, PositionP,
}

// IsValid reports whether p is one of the known positions.
func (p Position) IsValid() bool {
	for _, v := range ValidPositions {
		if p == v {
			return true
		}
	}
	return false
}

// AttributeKind is the closed set of player attributes. Attribute writes
// dispatch through this enum, never through a runtime-resolved column name.
type AttributeKind string

const (
	AttrSpeed         AttributeKind = "speed"
	AttrStrength      AttributeKind = "strength"
	AttrAgility       AttributeKind = "agility"
	AttrThrowPower    AttributeKind = "throw_power"
	AttrThrowAccuracy AttributeKind = "throw_accuracy"
	AttrCatching      AttributeKind = "catching"
	AttrTackling      AttributeKind = "tackling"
	AttrAwareness     AttributeKind = "awareness"
	AttrStamina       AttributeKind = "stamina"
)

// DefaultAttributeValue substitutes for any attribute the roster has no data for.
const DefaultAttributeValue = 50

// PlayerAttributes holds one player's attribute row. Any field may be nil when
// the scouting data is incomplete; readers go through Get for the neutral default.
type PlayerAttributes struct {
	PlayerID      uuid.UUID `json:"player_id"`
	Speed         *int      `json:"speed,omitempty"`
	Strength      *int      `json:"strength,omitempty"`
	Agility       *int      `json:"agility,omitempty"`
	ThrowPower    *int      `json:"throw_power,omitempty"`
	ThrowAccuracy *int      `json:"throw_accuracy,omitempty"`
	Catching      *int      `json:"catching,omitempty"`
	Tackling      *int      `json:"tackling,omitempty"`
	Awareness     *int      `json:"awareness,omitempty"`
	Stamina       *int      `json:"stamina,omitempty"`
}

// Get returns the value for kind, or DefaultAttributeValue when the attribute
// is missing. A nil receiver stands in for a player with no attribute row.
func (a *PlayerAttributes) Get(kind AttributeKind) float64 {
	if a == nil {
		return DefaultAttributeValue
	}
	var v *int
	switch kind {
	case AttrSpeed:
		v = a.Speed
	case AttrStrength:
		v = a.Strength
	case AttrAgility:
		v = a.Agility
	case AttrThrowPower:
		v = a.ThrowPower
	case AttrThrowAccuracy:
		v = a.ThrowAccuracy
	case AttrCatching:
		v = a.Catching
	case AttrTackling:
		v = a.Tackling
	case AttrAwareness:
		v = a.Awareness
	case AttrStamina:
		v = a.Stamina
	}
	if v == nil {
		return DefaultAttributeValue
	}
	return float64(*v)
}

// Player represents one player on a roster. TeamID is nil for free agents.
type Player struct {
	ID         uuid.UUID         `json:"id"`
	FullName   string            `json:"full_name"`
	Position   Position          `json:"position"`
	Rating     int               `json:"rating"` // 40-99 scalar
	TeamID     *uuid.UUID        `json:"team_id,omitempty"`
	Attributes *PlayerAttributes `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Attr is shorthand for the player's attribute value with the missing-data default.
func (p *Player) Attr(kind AttributeKind) float64 {
	return p.Attributes.Get(kind)
}
