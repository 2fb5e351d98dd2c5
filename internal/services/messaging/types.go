package messaging

import (
	"github.com/KirkDiggler/dealgame/internal/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneSympathetic is used when the player loses a big value
	ToneSympathetic MessageTone = "sympathetic"

	// ToneCelebration is used when the player knocks out a small value
	ToneCelebration MessageTone = "celebration"

	// ToneSarcastic is the banker's usual tone
	ToneSarcastic MessageTone = "sarcastic"
)

// Thresholds separating small, middling and big box values
const (
	SmallValue = 1000
	BigValue   = 100000
)

// Config holds configuration for the messaging service
type Config struct {
	// Random picks between equivalent lines
	Random random.Source
}

// GetBoxOpenedMessageInput contains parameters for a box opened message
type GetBoxOpenedMessageInput struct {
	// Value is what the opened box contained
	Value float64
}

// GetBoxOpenedMessageOutput contains the host's reaction
type GetBoxOpenedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetOfferMessageInput contains parameters for an offer message
type GetOfferMessageInput struct {
	// Round is the round that just ended
	Round int

	// NumRounds is the number of rounds in the game
	NumRounds int
}

// GetOfferMessageOutput contains the banker's line
type GetOfferMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the explanation
type GetErrorMessageOutput struct {
	Message string
}
