package games

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// Matchup pairs two teams for one week.
type Matchup struct {
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
}

// RoundRobinPairings builds a single round-robin: every team plays every
// other team exactly once, one game per team per week. Odd team counts get a
// rotating bye. Home advantage alternates by round so no team hosts every week.
func RoundRobinPairings(teamIDs []uuid.UUID) [][]Matchup {
	if len(teamIDs) < 2 {
		return nil
	}

	// Circle method: fix the first entry, rotate the rest each round.
	rotation := make([]uuid.UUID, len(teamIDs))
	copy(rotation, teamIDs)
	if len(rotation)%2 != 0 {
		rotation = append(rotation, uuid.Nil) // bye slot
	}

	n := len(rotation)
	rounds := make([][]Matchup, 0, n-1)
	for round := 0; round < n-1; round++ {
		var week []Matchup
		for i := 0; i < n/2; i++ {
			a, b := rotation[i], rotation[n-1-i]
			if a == uuid.Nil || b == uuid.Nil {
				continue
			}
			if round%2 == 1 {
				a, b = b, a
			}
			week = append(week, Matchup{HomeTeamID: a, AwayTeamID: b})
		}
		rounds = append(rounds, week)

		last := rotation[n-1]
		copy(rotation[2:], rotation[1:n-1])
		rotation[1] = last
	}

	return rounds
}

// GenerateSchedule creates a full round-robin schedule for the season and
// seeds the standings row for every participating team. The standings rows
// exist before any game can finalize.
func (a *App) GenerateSchedule(ctx context.Context, seasonID uuid.UUID, teamIDs []uuid.UUID) ([]models.Game, error) {
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("need at least 2 teams to schedule, got %d", len(teamIDs))
	}
	seen := make(map[uuid.UUID]bool, len(teamIDs))
	for _, id := range teamIDs {
		if seen[id] {
			return nil, fmt.Errorf("duplicate team %s in schedule request", id)
		}
		seen[id] = true
	}

	for _, teamID := range teamIDs {
		if err := a.repo.EnsureStandingsRow(ctx, seasonID, teamID); err != nil {
			return nil, fmt.Errorf("failed to seed standings for team %s: %w", teamID, err)
		}
	}

	rounds := RoundRobinPairings(teamIDs)
	var games []models.Game
	for i, week := range rounds {
		for _, m := range week {
			game, err := a.repo.CreateGame(ctx, CreateGameRequest{
				SeasonID:   seasonID,
				Week:       i + 1,
				HomeTeamID: m.HomeTeamID,
				AwayTeamID: m.AwayTeamID,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create week %d game: %w", i+1, err)
			}
			games = append(games, *game)
		}
	}

	log.Printf("Generated schedule for season %s: %d games across %d weeks",
		seasonID, len(games), len(rounds))
	return games, nil
}
