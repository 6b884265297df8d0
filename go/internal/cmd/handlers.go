package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mcdev12/gridiron/go/internal/games"
	"github.com/mcdev12/gridiron/go/internal/rosters"
)

// apiHandlers is the JSON surface over the domain apps.
type apiHandlers struct {
	services *Services
}

func newAPIHandlers(services *Services) *apiHandlers {
	return &apiHandlers{services: services}
}

func (h *apiHandlers) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /teams", h.createTeam)
	mux.HandleFunc("GET /teams", h.listTeams)
	mux.HandleFunc("GET /teams/{id}", h.getTeam)
	mux.HandleFunc("GET /teams/{id}/roster", h.getTeamRoster)
	mux.HandleFunc("GET /teams/{id}/rating", h.getTeamRating)

	mux.HandleFunc("POST /players", h.createPlayer)
	mux.HandleFunc("PUT /players/{id}/attributes", h.updatePlayerAttribute)

	mux.HandleFunc("POST /seasons", h.createSeason)
	mux.HandleFunc("POST /seasons/{id}/schedule", h.generateSchedule)
	mux.HandleFunc("GET /seasons/{id}/games", h.listSeasonGames)
	mux.HandleFunc("GET /seasons/{id}/standings", h.listStandings)
	mux.HandleFunc("GET /seasons/{id}/stats", h.listSeasonStats)
	mux.HandleFunc("GET /seasons/{id}/mvp", h.computeMVP)
	mux.HandleFunc("POST /seasons/{id}/simulate", h.simulateSeason)
	mux.HandleFunc("POST /seasons/{id}/weeks/{week}/simulate", h.simulateWeek)

	mux.HandleFunc("GET /games/{id}", h.getGame)
	mux.HandleFunc("GET /games/{id}/stats", h.listGameStats)
	mux.HandleFunc("POST /games/{id}/simulate", h.simulateGame)
}

func (h *apiHandlers) createTeam(w http.ResponseWriter, r *http.Request) {
	var req rosters.CreateTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	team, err := h.services.Rosters.CreateTeam(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

func (h *apiHandlers) listTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.services.Rosters.ListTeams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *apiHandlers) getTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	team, err := h.services.Rosters.GetTeam(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (h *apiHandlers) getTeamRoster(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	players, err := h.services.Rosters.GetTeamRoster(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *apiHandlers) getTeamRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	teamRating, err := h.services.Rosters.ComputeTeamRating(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, teamRating)
}

func (h *apiHandlers) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req rosters.CreatePlayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	player, err := h.services.Rosters.CreatePlayer(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, player)
}

func (h *apiHandlers) updatePlayerAttribute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req rosters.UpdatePlayerAttributeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.PlayerID = id
	if err := h.services.Rosters.UpdatePlayerAttribute(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *apiHandlers) createSeason(w http.ResponseWriter, r *http.Request) {
	var req rosters.CreateSeasonRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	season, err := h.services.Rosters.CreateSeason(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, season)
}

func (h *apiHandlers) generateSchedule(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		TeamIDs []uuid.UUID `json:"team_ids"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.services.Games.GenerateSchedule(r.Context(), seasonID, req.TeamIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *apiHandlers) listSeasonGames(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.services.Games.ListGamesBySeason(r.Context(), seasonID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *apiHandlers) listStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	table, err := h.services.Standings.ListBySeason(r.Context(), seasonID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *apiHandlers) listSeasonStats(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	totals, err := h.services.Stats.ListSeasonTotals(r.Context(), seasonID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *apiHandlers) computeMVP(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	topN, _ := strconv.Atoi(r.URL.Query().Get("top"))
	candidates, err := h.services.Awards.ComputeMVP(r.Context(), seasonID, topN)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

func (h *apiHandlers) simulateSeason(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	result, err := h.services.Season.SimulateSeason(r.Context(), seasonID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *apiHandlers) simulateWeek(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid week"))
		return
	}
	result, err := h.services.Season.SimulateWeek(r.Context(), seasonID, week)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *apiHandlers) getGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	game, err := h.services.Games.GetGame(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, games.ErrGameNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *apiHandlers) listGameStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	lines, err := h.services.Stats.ListGameStatLines(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *apiHandlers) simulateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	game, err := h.services.Games.SimulateGame(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, games.ErrGameNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(key))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid "+key))
		return uuid.Nil, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
