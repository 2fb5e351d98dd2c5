package game

import (
	"fmt"

	"github.com/KirkDiggler/dealgame/internal/models"
)

// SelectBox records the player's box on the first call. Every later call opens
// the box at index and counts it against the current round.
func (s *session) SelectBox(index int) error {
	open, err := s.boxes.IsOpen(index)
	if err != nil {
		return err
	}

	if open {
		return fmt.Errorf("%w: box %d", ErrBoxAlreadyOpen, index)
	}

	if !s.hasPlayerChosenBox {
		s.playerBoxIndex = index
		s.hasPlayerChosenBox = true

		s.log.Debug().Int("box", index).Msg("player chose box")
		return nil
	}

	if index == s.playerBoxIndex {
		return fmt.Errorf("%w: box %d", ErrPlayerBoxSelected, index)
	}

	if s.IsEndOfRound() {
		return fmt.Errorf("%w: round %d", ErrRoundComplete, s.round)
	}

	if err := s.boxes.Open(index); err != nil {
		return err
	}
	s.boxesOpenedThisRound++
	s.boxesOpenedTotal++

	s.log.Debug().
		Int("box", index).
		Int("round", s.round).
		Int("remaining", s.BoxesRemainingToOpenThisRound()).
		Msg("box opened")

	return nil
}

// HasPlayerChosenBox reports whether the player's box has been recorded
func (s *session) HasPlayerChosenBox() bool {
	return s.hasPlayerChosenBox
}

// PlayerBoxIndex returns the index of the player's box
func (s *session) PlayerBoxIndex() (int, error) {
	if !s.hasPlayerChosenBox {
		return 0, ErrNoBoxSelected
	}
	return s.playerBoxIndex, nil
}

// PlayerBoxValue returns the value in the player's box
func (s *session) PlayerBoxValue() (float64, error) {
	if !s.hasPlayerChosenBox {
		return 0, ErrNoBoxSelected
	}
	return s.boxes.Value(s.playerBoxIndex)
}

// NumBoxes returns how many boxes are in play
func (s *session) NumBoxes() int {
	return s.boxes.Len()
}

// IsBoxOpen reports whether the box at index has been opened
func (s *session) IsBoxOpen(index int) (bool, error) {
	return s.boxes.IsOpen(index)
}

// ValueInBox returns the value of the box at index
func (s *session) ValueInBox(index int) (float64, error) {
	return s.boxes.Value(index)
}

// UnopenedValues returns the values still in play, sorted ascending
func (s *session) UnopenedValues() []float64 {
	return s.boxes.UnopenedValues()
}

// Round returns the current round, starting at 1
func (s *session) Round() int {
	return s.round
}

// NumRounds returns the number of configured rounds
func (s *session) NumRounds() int {
	return s.numRounds
}

// BoxesOpenedThisRound returns how many boxes were opened in the current round
func (s *session) BoxesOpenedThisRound() int {
	return s.boxesOpenedThisRound
}

// BoxesOpenedTotal returns how many boxes were opened over the whole game
func (s *session) BoxesOpenedTotal() int {
	return s.boxesOpenedTotal
}

// BoxesRemainingToOpenThisRound returns how many boxes are left to open this round
func (s *session) BoxesRemainingToOpenThisRound() int {
	return s.boxesInRound() - s.boxesOpenedThisRound
}

// IsEndOfRound reports whether this round's boxes have all been opened
func (s *session) IsEndOfRound() bool {
	return s.boxesOpenedThisRound >= s.boxesInRound()
}

// IsFinalRound reports whether the current round is the last one
func (s *session) IsFinalRound() bool {
	return s.round == s.numRounds
}

// StartNextRound moves to the next round and resets the round's open count
func (s *session) StartNextRound() error {
	if !s.IsEndOfRound() {
		return fmt.Errorf("%w: %d left in round %d",
			ErrRoundIncomplete, s.BoxesRemainingToOpenThisRound(), s.round)
	}

	if s.round >= s.numRounds {
		return fmt.Errorf("%w: round %d is the last", ErrRoundOverflow, s.round)
	}

	s.round++
	s.boxesOpenedThisRound = 0

	s.log.Debug().Int("round", s.round).Msg("round started")
	return nil
}

// CurrentOffer returns the banker's offer: the average of the closed boxes,
// including the player's, scaled by round / 10
func (s *session) CurrentOffer() float64 {
	return s.boxes.AverageValueOfUnopenedBoxes() * float64(s.round) / models.OfferDivisor
}

// boxesInRound returns the number of boxes to open in the current round
func (s *session) boxesInRound() int {
	return s.boxesPerRound[s.round-1]
}
