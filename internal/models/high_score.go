package models

import (
	"time"
)

// HighScore is the best payout achieved across all play-throughs
type HighScore struct {
	// Value is the payout that set the record
	Value float64

	// SessionID is the game session that set the record, empty if unknown
	SessionID string

	// AchievedAt is when the record was set, zero if unknown
	AchievedAt time.Time
}
