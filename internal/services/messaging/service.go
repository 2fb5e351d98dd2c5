package messaging

import (
	"context"
	"errors"

	"github.com/KirkDiggler/dealgame/internal/random"
	"github.com/KirkDiggler/dealgame/internal/services/game"
)

// service implements the Service interface
type service struct {
	random random.Source
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &service{
		random: cfg.Random,
	}, nil
}

// GetBoxOpenedMessage picks a reaction based on how much the opened box held
func (s *service) GetBoxOpenedMessage(ctx context.Context, input *GetBoxOpenedMessageInput) (*GetBoxOpenedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	var tone MessageTone

	switch {
	case input.Value >= BigValue:
		tone = ToneSympathetic
		messages = []string{
			"Ouch. That one hurts.",
			"The banker is smiling now.",
			"Big money gone. Shake it off!",
			"That's going to bring the offer down.",
		}
	case input.Value <= SmallValue:
		tone = ToneCelebration
		messages = []string{
			"Great pick! Keep them coming.",
			"Knocked out a small one!",
			"The banker won't like that.",
			"That's exactly what you wanted to see.",
		}
	default:
		tone = ToneNeutral
		messages = []string{
			"Not bad, not great.",
			"The board is still in play.",
			"On to the next one.",
		}
	}

	return &GetBoxOpenedMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetOfferMessage picks the banker's line; offers start low and the banker gets
// more serious as the game nears its end
func (s *service) GetOfferMessage(ctx context.Context, input *GetOfferMessageInput) (*GetOfferMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := ToneSarcastic

	if input.Round*2 <= input.NumRounds {
		messages = []string{
			"The banker is feeling generous. Not very, but a little.",
			"It's early. The banker knows you won't take this.",
			"Consider it a warm-up offer.",
		}
	} else {
		tone = ToneNeutral
		messages = []string{
			"The banker is getting nervous.",
			"This is a serious offer now.",
			"Time to think about what's really in your box.",
		}
	}

	return &GetOfferMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetErrorMessage explains why a selection was rejected
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var message string
	switch {
	case errors.Is(input.Err, game.ErrIndexOutOfRange):
		message = "There is no box with that number."
	case errors.Is(input.Err, game.ErrBoxAlreadyOpen):
		message = "That box has already been opened."
	case errors.Is(input.Err, game.ErrPlayerBoxSelected):
		message = "That's your box! Pick another one."
	case errors.Is(input.Err, game.ErrRoundComplete):
		message = "That's all the boxes for this round."
	default:
		message = "Something went wrong: " + input.Err.Error()
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.IntN(len(messages))]
}
