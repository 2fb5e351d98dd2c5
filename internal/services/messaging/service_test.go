package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/dealgame/internal/random/mocks"
	"github.com/KirkDiggler/dealgame/internal/services/game"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRandom *mocks.MockSource
	service    *service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRandom = mocks.NewMockSource(s.ctrl)
	s.ctx = context.Background()

	svc, err := New(&Config{Random: s.mockRandom})
	s.Require().NoError(err)
	s.service = svc
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNew_InvalidConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetBoxOpenedMessage_Tones() {
	testCases := []struct {
		value float64
		tone  MessageTone
		count int
	}{
		{value: 0.01, tone: ToneCelebration, count: 4},
		{value: 1000, tone: ToneCelebration, count: 4},
		{value: 50000, tone: ToneNeutral, count: 3},
		{value: 100000, tone: ToneSympathetic, count: 4},
		{value: 1000000, tone: ToneSympathetic, count: 4},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprint(tc.value), func() {
			s.mockRandom.EXPECT().IntN(tc.count).Return(0)

			output, err := s.service.GetBoxOpenedMessage(s.ctx, &GetBoxOpenedMessageInput{Value: tc.value})
			s.Require().NoError(err)
			s.Equal(tc.tone, output.Tone)
			s.NotEmpty(output.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetBoxOpenedMessage_PicksFromRandom() {
	s.mockRandom.EXPECT().IntN(4).Return(0)
	first, err := s.service.GetBoxOpenedMessage(s.ctx, &GetBoxOpenedMessageInput{Value: 1000000})
	s.Require().NoError(err)

	s.mockRandom.EXPECT().IntN(4).Return(3)
	last, err := s.service.GetBoxOpenedMessage(s.ctx, &GetBoxOpenedMessageInput{Value: 1000000})
	s.Require().NoError(err)

	s.Equal("Ouch. That one hurts.", first.Message)
	s.Equal("That's going to bring the offer down.", last.Message)
}

func (s *MessagingServiceTestSuite) TestGetOfferMessage_EarlyAndLate() {
	s.mockRandom.EXPECT().IntN(3).Return(1).Times(2)

	early, err := s.service.GetOfferMessage(s.ctx, &GetOfferMessageInput{Round: 1, NumRounds: 10})
	s.Require().NoError(err)
	s.Equal(ToneSarcastic, early.Tone)
	s.Equal("It's early. The banker knows you won't take this.", early.Message)

	late, err := s.service.GetOfferMessage(s.ctx, &GetOfferMessageInput{Round: 9, NumRounds: 10})
	s.Require().NoError(err)
	s.Equal(ToneNeutral, late.Tone)
	s.Equal("This is a serious offer now.", late.Message)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "out of range",
			err:      fmt.Errorf("%w: 30", game.ErrIndexOutOfRange),
			expected: "There is no box with that number.",
		},
		{
			name:     "already open",
			err:      game.ErrBoxAlreadyOpen,
			expected: "That box has already been opened.",
		},
		{
			name:     "player box",
			err:      game.ErrPlayerBoxSelected,
			expected: "That's your box! Pick another one.",
		},
		{
			name:     "round complete",
			err:      game.ErrRoundComplete,
			expected: "That's all the boxes for this round.",
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			expected: "Something went wrong: boom",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
			s.Require().NoError(err)
			s.Equal(tc.expected, output.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetBoxOpenedMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetOfferMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{})
	s.Error(err)
}
