package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// BoxError is a custom error type for box-related errors
type BoxError string

// Error implements the error interface
func (e BoxError) Error() string {
	return string(e)
}

// ErrInvalidValue is returned when a box is created with a negative or non-finite value
const ErrInvalidValue BoxError = "box value must be a non-negative number"

// Box is a sealed container holding one monetary value.
// The value is fixed at creation and a box never closes once opened.
type Box struct {
	value float64
	open  bool
}

// NewBox creates a closed box holding value
func NewBox(value float64) (*Box, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, value)
	}

	return &Box{
		value: value,
	}, nil
}

// Value returns the amount in the box whether or not it has been opened
func (b *Box) Value() float64 {
	return b.value
}

// IsOpen returns true once the box has been opened
func (b *Box) IsOpen() bool {
	return b.open
}

// Open marks the box as opened. Opening an open box has no effect.
func (b *Box) Open() {
	b.open = true
}

// String returns a diagnostic rendering of the box
func (b *Box) String() string {
	return fmt.Sprintf("Open: %t Value: %v", b.open, b.value)
}

// MarshalJSON renders the box for logs and snapshots
func (b *Box) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value float64 `json:"value"`
		Open  bool    `json:"open"`
	}{
		Value: b.value,
		Open:  b.open,
	})
}
