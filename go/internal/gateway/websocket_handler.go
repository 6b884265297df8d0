package gateway

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler handles WebSocket upgrade requests for season feeds
type WebSocketHandler struct {
	connectionManager *ConnectionManager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(cm *ConnectionManager) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
	}
}

// HandleSeasonConnection handles WebSocket connections for a season's live feed
func (h *WebSocketHandler) HandleSeasonConnection(w http.ResponseWriter, r *http.Request) {
	seasonIDStr := r.URL.Query().Get("season_id")
	if seasonIDStr == "" {
		http.Error(w, "season_id is required", http.StatusBadRequest)
		return
	}

	seasonID, err := uuid.Parse(seasonIDStr)
	if err != nil {
		http.Error(w, "invalid season_id format", http.StatusBadRequest)
		return
	}

	if err := h.connectionManager.UpgradeConnection(w, r, seasonID); err != nil {
		log.Error().
			Err(err).
			Str("season_id", seasonID.String()).
			Msg("failed to upgrade WebSocket connection")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
		return
	}
}

// HandleConnectionStats returns statistics about active connections
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	total, seasons := h.connectionManager.GetConnectionStats()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"total_connections":%d,"active_seasons":%d}`, total, seasons)
}

// RegisterRoutes registers WebSocket routes with an HTTP mux
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/season", h.HandleSeasonConnection)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
