package games

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func teamIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestRoundRobinPairingsEvenCount(t *testing.T) {
	ids := teamIDs(6)
	rounds := RoundRobinPairings(ids)

	if len(rounds) != 5 {
		t.Fatalf("got %d rounds for 6 teams, want 5", len(rounds))
	}

	type pair [2]uuid.UUID
	ordered := func(a, b uuid.UUID) pair {
		if a.String() < b.String() {
			return pair{a, b}
		}
		return pair{b, a}
	}

	seen := make(map[pair]int)
	for week, matchups := range rounds {
		if len(matchups) != 3 {
			t.Fatalf("week %d has %d games for 6 teams, want 3", week+1, len(matchups))
		}
		playing := make(map[uuid.UUID]bool)
		for _, m := range matchups {
			if m.HomeTeamID == m.AwayTeamID {
				t.Fatalf("week %d: team %s paired with itself", week+1, m.HomeTeamID)
			}
			for _, id := range []uuid.UUID{m.HomeTeamID, m.AwayTeamID} {
				if playing[id] {
					t.Fatalf("week %d: team %s plays twice", week+1, id)
				}
				playing[id] = true
			}
			seen[ordered(m.HomeTeamID, m.AwayTeamID)]++
		}
	}

	if len(seen) != 15 {
		t.Fatalf("got %d distinct pairings, want 15", len(seen))
	}
	for p, count := range seen {
		if count != 1 {
			t.Errorf("pairing %v occurs %d times, want exactly once", p, count)
		}
	}
}

func TestRoundRobinPairingsOddCountByes(t *testing.T) {
	ids := teamIDs(5)
	rounds := RoundRobinPairings(ids)

	// Five teams get a sixth bye slot: 5 rounds of 2 games each.
	if len(rounds) != 5 {
		t.Fatalf("got %d rounds for 5 teams, want 5", len(rounds))
	}

	byes := make(map[uuid.UUID]int)
	for week, matchups := range rounds {
		if len(matchups) != 2 {
			t.Fatalf("week %d has %d games for 5 teams, want 2", week+1, len(matchups))
		}
		playing := make(map[uuid.UUID]bool)
		for _, m := range matchups {
			playing[m.HomeTeamID] = true
			playing[m.AwayTeamID] = true
		}
		for _, id := range ids {
			if !playing[id] {
				byes[id]++
			}
		}
	}

	// Every team sits out exactly once across the rotation.
	for _, id := range ids {
		if byes[id] != 1 {
			t.Errorf("team %s has %d byes, want 1", id, byes[id])
		}
	}
}

func TestRoundRobinPairingsHomeAwaySplit(t *testing.T) {
	ids := teamIDs(4)
	rounds := RoundRobinPairings(ids)

	hosts := make(map[uuid.UUID]int)
	for _, matchups := range rounds {
		for _, m := range matchups {
			hosts[m.HomeTeamID]++
		}
	}
	// With alternating home advantage across 3 rounds, no team hosts all of
	// its games.
	for id, n := range hosts {
		if n == 3 {
			t.Errorf("team %s hosts every week", id)
		}
	}
}

func TestRoundRobinPairingsTooFewTeams(t *testing.T) {
	if got := RoundRobinPairings(nil); got != nil {
		t.Errorf("RoundRobinPairings(nil) = %v, want nil", got)
	}
	if got := RoundRobinPairings(teamIDs(1)); got != nil {
		t.Errorf("RoundRobinPairings(1 team) = %v, want nil", got)
	}
}

func TestGenerateScheduleCreatesGamesAndStandings(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo, &fakeRosters{})
	seasonID := uuid.New()
	ids := teamIDs(4)

	games, err := app.GenerateSchedule(context.Background(), seasonID, ids)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	// 4 teams: 3 weeks of 2 games.
	if len(games) != 6 {
		t.Fatalf("got %d games, want 6", len(games))
	}
	if len(repo.standingsRows) != 4 {
		t.Fatalf("seeded %d standings rows, want 4", len(repo.standingsRows))
	}
	for _, g := range games {
		if g.SeasonID != seasonID {
			t.Errorf("game %s created for season %s, want %s", g.ID, g.SeasonID, seasonID)
		}
		if g.Week < 1 || g.Week > 3 {
			t.Errorf("game %s scheduled for week %d", g.ID, g.Week)
		}
	}
}

func TestGenerateScheduleValidation(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo, &fakeRosters{})
	seasonID := uuid.New()

	if _, err := app.GenerateSchedule(context.Background(), seasonID, teamIDs(1)); err == nil {
		t.Error("expected error for fewer than 2 teams")
	}

	dup := uuid.New()
	if _, err := app.GenerateSchedule(context.Background(), seasonID, []uuid.UUID{dup, uuid.New(), dup}); err == nil {
		t.Error("expected error for duplicate team")
	}
	if len(repo.created) != 0 {
		t.Errorf("invalid requests created %d games", len(repo.created))
	}
}
