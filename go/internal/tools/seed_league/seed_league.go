package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/gridiron/go/internal/dbconfig"
	"github.com/mcdev12/gridiron/go/internal/games"
)

// Deterministic seed so repeated runs build the same league.
const seed = 42

var franchises = []struct {
	City string
	Name string
	Code string
}{
	{"Austin", "Armadillos", "AUS"},
	{"Boulder", "Bison", "BLD"},
	{"Camden", "Captains", "CAM"},
	{"Dayton", "Drifters", "DAY"},
	{"Eugene", "Elks", "EUG"},
	{"Fresno", "Foxes", "FRS"},
}

// rosterSlot describes how many players to generate at a position and the
// ranges their scouting attributes draw from.
type rosterSlot struct {
	position string
	count    int
	attrs    map[string][2]int
}

var rosterTemplate = []rosterSlot{
	{"QB", 1, map[string][2]int{"awareness": {55, 85}, "throw_power": {60, 95}, "throw_accuracy": {55, 90}, "speed": {40, 70}}},
	{"RB", 2, map[string][2]int{"speed": {60, 95}, "strength": {45, 85}, "awareness": {40, 70}}},
	{"WR", 3, map[string][2]int{"speed": {60, 99}, "agility": {50, 90}, "catching": {45, 90}}},
	{"TE", 1, map[string][2]int{"catching": {50, 85}, "strength": {55, 85}, "speed": {45, 75}}},
	{"OL", 2, map[string][2]int{"strength": {60, 95}, "awareness": {45, 80}, "stamina": {55, 90}}},
	{"DL", 2, map[string][2]int{"strength": {60, 95}, "tackling": {55, 90}, "stamina": {50, 85}}},
	{"LB", 2, map[string][2]int{"tackling": {55, 95}, "speed": {50, 85}, "awareness": {45, 85}}},
	{"CB", 2, map[string][2]int{"speed": {65, 99}, "agility": {55, 90}, "awareness": {40, 80}}},
	{"S", 1, map[string][2]int{"speed": {55, 90}, "tackling": {50, 85}, "awareness": {45, 85}}},
	{"K", 1, map[string][2]int{"awareness": {50, 90}}},
}

var attrColumns = []string{
	"speed", "strength", "agility", "throw_power", "throw_accuracy",
	"catching", "tackling", "awareness", "stamina",
}

func main() {
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	rng := rand.New(rand.NewSource(seed))
	ctx := context.Background()

	teamIDs := make([]uuid.UUID, 0, len(franchises))
	players := 0
	for _, f := range franchises {
		teamID := uuid.New()
		_, err := pool.Exec(ctx,
			`INSERT INTO teams (id, name, city, code) VALUES ($1, $2, $3, $4)`,
			teamID, f.Name, f.City, f.Code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting team %s: %v\n", f.Code, err)
			os.Exit(1)
		}
		teamIDs = append(teamIDs, teamID)

		n, err := seedRoster(ctx, pool, rng, teamID, f.City+" "+f.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error seeding roster for %s: %v\n", f.Code, err)
			os.Exit(1)
		}
		players += n
	}

	seasonID := uuid.New()
	weeks := len(teamIDs) - 1
	_, err = pool.Exec(ctx,
		`INSERT INTO seasons (id, year, weeks) VALUES ($1, $2, $3)`,
		seasonID, 2026, weeks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error inserting season: %v\n", err)
		os.Exit(1)
	}

	scheduled := 0
	for _, teamID := range teamIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO standings (season_id, team_id) VALUES ($1, $2)
             ON CONFLICT (season_id, team_id) DO NOTHING`,
			seasonID, teamID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting standings row: %v\n", err)
			os.Exit(1)
		}
	}
	for week, matchups := range games.RoundRobinPairings(teamIDs) {
		for _, m := range matchups {
			_, err := pool.Exec(ctx,
				`INSERT INTO games (id, season_id, week, home_team_id, away_team_id)
                 VALUES ($1, $2, $3, $4, $5)`,
				uuid.New(), seasonID, week+1, m.HomeTeamID, m.AwayTeamID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error inserting game: %v\n", err)
				os.Exit(1)
			}
			scheduled++
		}
	}

	fmt.Printf("League seed complete: %d teams, %d players, season %s with %d games over %d weeks\n",
		len(teamIDs), players, seasonID, scheduled, weeks)
}

func seedRoster(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, teamID uuid.UUID, teamName string) (int, error) {
	count := 0
	for _, slot := range rosterTemplate {
		for i := 0; i < slot.count; i++ {
			playerID := uuid.New()
			name := fmt.Sprintf("%s %s", teamName, slot.position)
			if slot.count > 1 {
				name = fmt.Sprintf("%s %s%d", teamName, slot.position, i+1)
			}
			rating := 55 + rng.Intn(36) // 55-90

			_, err := pool.Exec(ctx,
				`INSERT INTO players (id, full_name, position, rating, team_id)
                 VALUES ($1, $2, $3, $4, $5)`,
				playerID, name, slot.position, rating, teamID)
			if err != nil {
				return count, fmt.Errorf("insert player %s: %w", name, err)
			}

			// Attribute columns the template does not cover stay NULL; the
			// rating engine substitutes its neutral default on read.
			values := make([]interface{}, 0, len(attrColumns)+1)
			values = append(values, playerID)
			for _, col := range attrColumns {
				if r, ok := slot.attrs[col]; ok {
					values = append(values, r[0]+rng.Intn(r[1]-r[0]+1))
				} else {
					values = append(values, nil)
				}
			}
			_, err = pool.Exec(ctx,
				`INSERT INTO player_attributes (player_id, speed, strength, agility,
                     throw_power, throw_accuracy, catching, tackling, awareness, stamina)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				values...)
			if err != nil {
				return count, fmt.Errorf("insert attributes for %s: %w", name, err)
			}
			count++
		}
	}
	return count, nil
}
