package game

import (
	"context"

	"github.com/KirkDiggler/dealgame/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dealgame/internal/services/game Service

// Service is one play-through of the game. It is driven by a single caller
// and is not safe for concurrent use.
type Service interface {
	// ID returns the session identifier
	ID() string

	// Status returns where the session is in its lifecycle
	Status() models.GameStatus

	// SelectBox records the player's box on the first call and opens the box at index afterwards
	SelectBox(index int) error

	// HasPlayerChosenBox reports whether the player's box has been recorded
	HasPlayerChosenBox() bool

	// PlayerBoxIndex returns the index of the player's box
	PlayerBoxIndex() (int, error)

	// PlayerBoxValue returns the value in the player's box
	PlayerBoxValue() (float64, error)

	// NumBoxes returns how many boxes are in play
	NumBoxes() int

	// IsBoxOpen reports whether the box at index has been opened
	IsBoxOpen(index int) (bool, error)

	// ValueInBox returns the value of the box at index
	ValueInBox(index int) (float64, error)

	// UnopenedValues returns the values still in play, sorted ascending
	UnopenedValues() []float64

	// Round returns the current round, starting at 1
	Round() int

	// NumRounds returns the number of configured rounds
	NumRounds() int

	// BoxesOpenedThisRound returns how many boxes were opened in the current round
	BoxesOpenedThisRound() int

	// BoxesOpenedTotal returns how many boxes were opened over the whole game
	BoxesOpenedTotal() int

	// BoxesRemainingToOpenThisRound returns how many boxes are left to open this round
	BoxesRemainingToOpenThisRound() int

	// IsEndOfRound reports whether this round's boxes have all been opened
	IsEndOfRound() bool

	// IsFinalRound reports whether the current round is the last one
	IsFinalRound() bool

	// StartNextRound advances to the next round once the current one is over
	StartNextRound() error

	// CurrentOffer returns the banker's offer for the boxes still closed
	CurrentOffer() float64

	// HighScore returns the best payout known to this session
	HighScore() float64

	// IsNewHighScore records value as the high score if it beats the current one
	IsNewHighScore(ctx context.Context, value float64) (bool, error)
}
