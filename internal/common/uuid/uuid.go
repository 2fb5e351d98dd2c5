package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/dealgame/internal/common/uuid UUID

// UUID generates the identifiers given to game sessions
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (version 4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
