package models

// GameStatus represents the current state of a game session
type GameStatus string

const (
	// GameStatusAwaitingChoice indicates the player has not picked their box yet
	GameStatusAwaitingChoice GameStatus = "awaiting_choice"

	// GameStatusRoundInProgress indicates the player is opening boxes
	GameStatusRoundInProgress GameStatus = "round_in_progress"

	// GameStatusFinished indicates every configured round has been played out
	GameStatusFinished GameStatus = "finished"
)

// Reference game setup used when no other configuration is provided
var (
	// DefaultBoxValues are the 26 monetary amounts of the televised game
	DefaultBoxValues = []float64{
		0.01, 1, 5, 10, 25, 50, 75,
		100, 200, 300, 400, 500,
		750, 1000, 5000, 10000,
		25000, 50000, 75000,
		100000, 200000, 300000,
		400000, 500000, 750000,
		1000000,
	}

	// DefaultBoxesPerRound holds how many boxes are opened in each round, starting at round 1
	DefaultBoxesPerRound = []int{6, 5, 4, 3, 2, 1, 1, 1, 1, 1}
)

const (
	// DefaultNumRounds is the number of rounds in the reference game
	DefaultNumRounds = 10

	// DefaultShuffleSwaps is the number of pairwise swaps used by the swap shuffle
	DefaultShuffleSwaps = 500

	// OfferDivisor scales the banker's offer: average * round / OfferDivisor
	OfferDivisor = 10
)
