package game

import (
	"github.com/KirkDiggler/dealgame/internal/boxes"
	"github.com/KirkDiggler/dealgame/internal/models"
)

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoBoxSelected         GameError = "player has not chosen a box"
	ErrBoxAlreadyOpen        GameError = "box has already been opened"
	ErrPlayerBoxSelected     GameError = "the player's own box cannot be opened"
	ErrRoundComplete         GameError = "all boxes for this round have been opened"
	ErrRoundIncomplete       GameError = "boxes remain to be opened this round"
	ErrRoundOverflow         GameError = "no rounds remain"
	ErrCorruptHighScoreData  GameError = "stored high score is corrupt"
	ErrHighScoreWriteFailure GameError = "failed to save high score"
	ErrInvalidConfig         GameError = "invalid game configuration"
	ErrNilConfig             GameError = "config cannot be nil"
	ErrNilHighScoreRepo      GameError = "high score repository cannot be nil"
	ErrNilRandom             GameError = "random source cannot be nil"
	ErrNilClock              GameError = "clock cannot be nil"
	ErrNilUUIDGenerator      GameError = "UUID generator cannot be nil"
)

// Errors raised by the boxes themselves, re-exported so callers only need this package
var (
	ErrIndexOutOfRange = boxes.ErrIndexOutOfRange
	ErrInvalidValue    = models.ErrInvalidValue
)
