package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dealgame/internal/services/messaging Service

// Service is the interface for the host's commentary
type Service interface {
	// GetBoxOpenedMessage returns the host's reaction to a box being opened
	GetBoxOpenedMessage(ctx context.Context, input *GetBoxOpenedMessageInput) (*GetBoxOpenedMessageOutput, error)

	// GetOfferMessage returns the banker's line when making an offer
	GetOfferMessage(ctx context.Context, input *GetOfferMessageInput) (*GetOfferMessageOutput, error)

	// GetErrorMessage returns a player-friendly message for a rejected action
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
