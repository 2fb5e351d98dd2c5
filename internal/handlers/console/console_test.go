package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/dealgame/internal/common/clock"
	"github.com/KirkDiggler/dealgame/internal/common/uuid"
	"github.com/KirkDiggler/dealgame/internal/models"
	"github.com/KirkDiggler/dealgame/internal/random"
	highScoreRepo "github.com/KirkDiggler/dealgame/internal/repositories/high_score"
	"github.com/KirkDiggler/dealgame/internal/services/game"
	"github.com/KirkDiggler/dealgame/internal/services/game/mocks"
	"github.com/KirkDiggler/dealgame/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConsoleTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     highScoreRepo.Repository
	messages messaging.Service
	out      *bytes.Buffer
}

func (s *ConsoleTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.out = &bytes.Buffer{}

	repo, err := highScoreRepo.NewFile(&highScoreRepo.FileConfig{
		Path: filepath.Join(s.T().TempDir(), "highscore.txt"),
	})
	s.Require().NoError(err)
	s.repo = repo

	messages, err := messaging.New(&messaging.Config{
		Random: random.New(&random.Config{Seed: 1}),
	})
	s.Require().NoError(err)
	s.messages = messages
}

func TestConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

// newConsole plays an unshuffled reference game with the given input lines
func (s *ConsoleTestSuite) newConsole(lines ...string) *Console {
	svc, err := game.New(s.ctx, &game.Config{
		BoxValues:     models.DefaultBoxValues,
		BoxesPerRound: models.DefaultBoxesPerRound,
		NumRounds:     models.DefaultNumRounds,
		HighScoreRepo: s.repo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	c, err := New(&Config{
		In:       strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:      s.out,
		Game:     svc,
		Messages: s.messages,
	})
	s.Require().NoError(err)
	return c
}

func (s *ConsoleTestSuite) TestRun_NoDealToTheEnd() {
	lines := []string{"1"}
	box := 2
	for round, count := range models.DefaultBoxesPerRound {
		for i := 0; i < count; i++ {
			lines = append(lines, fmt.Sprint(box))
			box++
		}
		if round < models.DefaultNumRounds-1 {
			lines = append(lines, "n")
		}
	}

	result, err := s.newConsole(lines...).Run(s.ctx)
	s.Require().NoError(err)

	s.False(result.TookDeal)
	s.Equal(0.01, result.PlayerBoxValue)
	s.Equal(0.01, result.Payout)
	s.True(result.NewHighScore)
	s.Contains(s.out.String(), "Your box contained $0.01. You won $0.01!")

	stored, err := s.repo.GetHighScore(s.ctx)
	s.Require().NoError(err)
	s.Equal(0.01, stored.Value)
}

func (s *ConsoleTestSuite) TestRun_TakeTheDeal() {
	result, err := s.newConsole("1", "2", "3", "4", "5", "6", "7", "d").Run(s.ctx)
	s.Require().NoError(err)

	s.True(result.TookDeal)
	s.InDelta(17091.25005, result.Payout, 1e-6)
	s.Equal(0.01, result.PlayerBoxValue)
	s.True(result.NewHighScore)

	output := s.out.String()
	s.Contains(output, "End of round 1. The banker offers $17,091.25.")
	s.Contains(output, "Box 7 contained $75.")
	s.Contains(output, "That's a new high score!")
}

func (s *ConsoleTestSuite) TestRun_RejectsBadSelections() {
	result, err := s.newConsole(
		"abc",    // not a number
		"0",      // no such box
		"26",     // player's box
		"26",     // cannot open own box
		"1", "1", // already open
		"2", "3", "4", "5", "6",
		"maybe", "d",
	).Run(s.ctx)
	s.Require().NoError(err)
	s.True(result.TookDeal)
	s.Equal(1000000.0, result.PlayerBoxValue)

	output := s.out.String()
	s.Contains(output, "Please enter a box number.")
	s.Contains(output, "There is no box with that number.")
	s.Contains(output, "That's your box! Pick another one.")
	s.Contains(output, "That box has already been opened.")
	s.Contains(output, "Please answer d or n.")
	s.Contains(output, "[26]")
}

func (s *ConsoleTestSuite) TestRun_InputClosed() {
	_, err := s.newConsole("1", "2").Run(s.ctx)
	s.ErrorIs(err, ErrInputClosed)
}

func (s *ConsoleTestSuite) TestRun_HighScoreNotBeaten() {
	s.Require().NoError(s.repo.SaveHighScore(s.ctx, &highScoreRepo.SaveHighScoreInput{
		HighScore: &models.HighScore{Value: 500000},
	}))

	result, err := s.newConsole("1", "2", "3", "4", "5", "6", "7", "d").Run(s.ctx)
	s.Require().NoError(err)
	s.False(result.NewHighScore)
	s.NotContains(s.out.String(), "new high score")
	s.Contains(s.out.String(), "High score: $500,000")
}

func (s *ConsoleTestSuite) TestRun_HighScoreWriteFailure() {
	ctrl := gomock.NewController(s.T())
	mockGame := mocks.NewMockService(ctrl)

	mockGame.EXPECT().HighScore().Return(0.0)
	mockGame.EXPECT().NumBoxes().Return(2).AnyTimes()
	gomock.InOrder(
		mockGame.EXPECT().HasPlayerChosenBox().Return(false),
		mockGame.EXPECT().SelectBox(0).Return(nil),
		mockGame.EXPECT().HasPlayerChosenBox().Return(true),
	)
	mockGame.EXPECT().IsEndOfRound().Return(true)
	mockGame.EXPECT().IsFinalRound().Return(true)
	mockGame.EXPECT().PlayerBoxValue().Return(10.0, nil)
	mockGame.EXPECT().
		IsNewHighScore(gomock.Any(), 10.0).
		Return(false, game.ErrHighScoreWriteFailure)

	c, err := New(&Config{
		In:       strings.NewReader("1\n"),
		Out:      s.out,
		Game:     mockGame,
		Messages: s.messages,
	})
	s.Require().NoError(err)

	_, err = c.Run(s.ctx)
	s.ErrorIs(err, game.ErrHighScoreWriteFailure)
}

func (s *ConsoleTestSuite) TestNew_InvalidConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out})
	s.Error(err)

	ctrl := gomock.NewController(s.T())
	_, err = New(&Config{In: strings.NewReader(""), Out: s.out, Game: mocks.NewMockService(ctrl)})
	s.Error(err)
}

func (s *ConsoleTestSuite) TestMoney() {
	s.Equal("$0.01", money(0.01))
	s.Equal("$0.50", money(0.5))
	s.Equal("$1,000,000", money(1000000))
	s.Equal("$13,147.75", money(13147.753884615382))
	s.Equal("$13,147.70", money(13147.7))
}

// cancelReader hands out one line per read and cancels on the given read
type cancelReader struct {
	lines    []string
	cancelAt int
	cancel   context.CancelFunc
	reads    int
}

func (r *cancelReader) Read(p []byte) (int, error) {
	r.reads++
	if r.reads == r.cancelAt {
		r.cancel()
	}
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	line := r.lines[0] + "\n"
	r.lines = r.lines[1:]
	return copy(p, line), nil
}

func (s *ConsoleTestSuite) TestRun_CancelledMidRound() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	c := s.newConsole()
	c.in = &cancelReader{
		lines:    []string{"1", "2", "3", "4", "5", "6", "7"},
		cancelAt: 2,
		cancel:   cancel,
	}

	_, err := c.Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, c.game.BoxesOpenedTotal())
	s.NotContains(s.out.String(), "contained")
}

func (s *ConsoleTestSuite) TestRun_AlreadyCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newConsole("1", "2").Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.NotContains(s.out.String(), "You chose box")
}
