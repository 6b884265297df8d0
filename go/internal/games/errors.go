package games

import "errors"

var (
	// ErrGameNotFound means the game id does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameAlreadyFinal means another writer finalized the game first. The
	// caller should reload and treat the stored result as authoritative.
	ErrGameAlreadyFinal = errors.New("game already finalized")

	// ErrStandingsRowMissing means a finalize hit a (season, team) with no
	// standings row. Schedule generation creates these rows, so this is a
	// setup defect, and the whole finalize transaction rolls back.
	ErrStandingsRowMissing = errors.New("standings row missing for team")
)
