package main

import (
	"database/sql"
	"math/rand"
	"time"

	"github.com/mcdev12/gridiron/go/internal/awards"
	"github.com/mcdev12/gridiron/go/internal/engine"
	"github.com/mcdev12/gridiron/go/internal/games"
	"github.com/mcdev12/gridiron/go/internal/rosters"
	rostersdb "github.com/mcdev12/gridiron/go/internal/rosters/db"
	"github.com/mcdev12/gridiron/go/internal/season"
	"github.com/mcdev12/gridiron/go/internal/standings"
	standingsdb "github.com/mcdev12/gridiron/go/internal/standings/db"
	"github.com/mcdev12/gridiron/go/internal/stats"
	statsdb "github.com/mcdev12/gridiron/go/internal/stats/db"
)

type Services struct {
	Rosters   *rosters.App
	Games     *games.App
	Season    *season.App
	Stats     *stats.App
	Standings *standings.App
	Awards    *awards.App
}

func setupServices(database *sql.DB) *Services {
	// Database layer → Repository layer → App layer

	rostersRepo := rosters.NewRepository(rostersdb.New(database))
	rostersApp := rosters.NewApp(rostersRepo)

	// Each simulated game gets a freshly seeded source.
	newRand := func() engine.Rand {
		return engine.NewRand(time.Now().UnixNano() + rand.Int63())
	}

	gamesRepo := games.NewRepository(database)
	gamesApp := games.NewApp(gamesRepo, rostersApp, newRand)

	seasonApp := season.NewApp(gamesApp)

	statsRepo := stats.NewRepository(statsdb.New(database))
	statsApp := stats.NewApp(statsRepo)

	standingsRepo := standings.NewRepository(standingsdb.New(database))
	standingsApp := standings.NewApp(standingsRepo)

	awardsApp := awards.NewApp(statsApp, rostersApp)

	return &Services{
		Rosters:   rostersApp,
		Games:     gamesApp,
		Season:    seasonApp,
		Stats:     statsApp,
		Standings: standingsApp,
		Awards:    awardsApp,
	}
}
