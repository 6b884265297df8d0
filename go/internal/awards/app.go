// Package awards ranks players across a season from their aggregated stats.
package awards

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// Impact score weights. Passing production outweighs rushing, and receiving
// fills the yac role from the event-level model.
const (
	rushYardWeight      = 0.7
	passYardWeight      = 1.1
	receivingYardWeight = 0.3
	rushTDWeight        = 20.0
	passTDWeight        = 25.0
)

// DefaultTopN is the MVP shortlist size.
const DefaultTopN = 3

// MVPCandidate is one entry on the MVP shortlist.
type MVPCandidate struct {
	PlayerID      uuid.UUID `json:"player_id"`
	PlayerName    string    `json:"player_name"`
	Score         float64   `json:"score"`
	Justification string    `json:"justification"`
}

// StatsProvider defines what the award engine needs from the stats domain
type StatsProvider interface {
	ListSeasonTotals(ctx context.Context, seasonID uuid.UUID) ([]models.SeasonStatTotals, error)
}

// PlayerProvider defines what the award engine needs from the rosters domain
type PlayerProvider interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

// App computes season awards
type App struct {
	stats   StatsProvider
	players PlayerProvider
}

// NewApp creates a new awards App
func NewApp(stats StatsProvider, players PlayerProvider) *App {
	return &App{
		stats:   stats,
		players: players,
	}
}

// ComputeMVP ranks the season's players by impact score and returns the top
// candidates with a justification for each.
func (a *App) ComputeMVP(ctx context.Context, seasonID uuid.UUID, topN int) ([]MVPCandidate, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	totals, err := a.stats.ListSeasonTotals(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load season totals: %w", err)
	}

	type scored struct {
		totals models.SeasonStatTotals
		score  float64
	}
	candidates := make([]scored, len(totals))
	for i, t := range totals {
		candidates[i] = scored{totals: t, score: impactScore(t.StatLine)}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		// Stable order for equal scores.
		return candidates[i].totals.PlayerID.String() < candidates[j].totals.PlayerID.String()
	})

	if topN > len(candidates) {
		topN = len(candidates)
	}

	results := make([]MVPCandidate, 0, topN)
	for _, c := range candidates[:topN] {
		player, err := a.players.GetPlayer(ctx, c.totals.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load MVP candidate %s: %w", c.totals.PlayerID, err)
		}
		results = append(results, MVPCandidate{
			PlayerID:      player.ID,
			PlayerName:    player.FullName,
			Score:         math.Round(c.score*100) / 100,
			Justification: justification(c.totals.StatLine),
		})
	}

	return results, nil
}

func impactScore(s models.StatLine) float64 {
	return float64(s.RushYards)*rushYardWeight +
		float64(s.PassYards)*passYardWeight +
		float64(s.ReceivingYards)*receivingYardWeight +
		float64(s.RushTDs)*rushTDWeight +
		float64(s.PassTDs)*passTDWeight
}

// justification names the standout stats behind a candidate's score.
func justification(s models.StatLine) string {
	var reasons []string
	if s.PassYards > 200 {
		reasons = append(reasons, fmt.Sprintf("%d passing yards", s.PassYards))
	}
	if s.RushYards > 200 {
		reasons = append(reasons, fmt.Sprintf("%d rushing yards", s.RushYards))
	}
	if s.ReceivingYards > 200 {
		reasons = append(reasons, fmt.Sprintf("%d receiving yards", s.ReceivingYards))
	}
	if total := s.PassTDs + s.RushTDs + s.ReceivingTDs; total > 2 {
		reasons = append(reasons, fmt.Sprintf("%d total TDs", total))
	}
	if len(reasons) == 0 {
		return "consistently high impact plays"
	}
	return strings.Join(reasons, "; ")
}
