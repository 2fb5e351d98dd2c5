package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dealgame/internal/services/game"
	"github.com/KirkDiggler/dealgame/internal/services/messaging"
	"github.com/rs/zerolog"
)

// ErrInputClosed is returned when input ends before the game does
var ErrInputClosed = errors.New("input closed before the game finished")

// Config holds the configuration for the console driver
type Config struct {
	// In is read for the player's choices
	In io.Reader

	// Out receives the prompts and the board
	Out io.Writer

	// Game is the session to play
	Game game.Service

	// Messages provides the host's commentary
	Messages messaging.Service

	// Logger is optional
	Logger *zerolog.Logger
}

// Console plays one game session over a text stream
type Console struct {
	in       io.Reader
	lines    chan inputLine
	out      io.Writer
	game     game.Service
	messages messaging.Service
	log      zerolog.Logger
}

// Result is the outcome of a finished game
type Result struct {
	// Payout is what the player walks away with
	Payout float64

	// TookDeal is true when the player accepted an offer
	TookDeal bool

	// PlayerBoxValue is the value that was in the player's box
	PlayerBoxValue float64

	// NewHighScore is true when Payout set a new high score
	NewHighScore bool
}

// New creates a new console driver
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	if cfg.Game == nil {
		return nil, errors.New("game cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messages cannot be nil")
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Console{
		in:       cfg.In,
		out:      cfg.Out,
		game:     cfg.Game,
		messages: cfg.Messages,
		log:      log,
	}, nil
}

// Run plays the game until the player takes a deal or every round is over
func (c *Console) Run(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.lines = readLines(ctx, c.in)

	c.printf("Welcome to Deal or No Deal! High score: %s\n", money(c.game.HighScore()))

	if err := c.chooseBox(ctx); err != nil {
		return nil, err
	}

	result := &Result{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for !c.game.IsEndOfRound() {
			if err := c.openBox(ctx); err != nil {
				return nil, err
			}
		}

		if c.game.IsFinalRound() {
			break
		}

		offer := c.game.CurrentOffer()
		c.printf("\nEnd of round %d. The banker offers %s.\n", c.game.Round(), money(offer))

		line, err := c.messages.GetOfferMessage(ctx, &messaging.GetOfferMessageInput{
			Round:     c.game.Round(),
			NumRounds: c.game.NumRounds(),
		})
		if err != nil {
			return nil, err
		}
		c.printf("%s\n", line.Message)

		deal, err := c.askDeal(ctx)
		if err != nil {
			return nil, err
		}

		if deal {
			result.Payout = offer
			result.TookDeal = true
			break
		}

		if err := c.game.StartNextRound(); err != nil {
			return nil, err
		}
	}

	playerBoxValue, err := c.game.PlayerBoxValue()
	if err != nil {
		return nil, err
	}
	result.PlayerBoxValue = playerBoxValue

	if !result.TookDeal {
		result.Payout = playerBoxValue
	}
	c.printf("\nYour box contained %s. You won %s!\n", money(playerBoxValue), money(result.Payout))

	isNew, err := c.game.IsNewHighScore(ctx, result.Payout)
	if err != nil {
		return nil, err
	}
	result.NewHighScore = isNew

	if isNew {
		c.printf("That's a new high score!\n")
	}

	c.log.Info().
		Float64("payout", result.Payout).
		Bool("took_deal", result.TookDeal).
		Bool("new_high_score", isNew).
		Msg("game finished")

	return result, nil
}

func (c *Console) chooseBox(ctx context.Context) error {
	for !c.game.HasPlayerChosenBox() {
		index, err := c.readBox(ctx, fmt.Sprintf("Choose your box (1-%d): ", c.game.NumBoxes()))
		if err != nil {
			return err
		}

		if err := c.game.SelectBox(index); err != nil {
			if err := c.reject(ctx, err); err != nil {
				return err
			}
			continue
		}
		c.printf("You chose box %d.\n", index+1)
	}
	return nil
}

func (c *Console) openBox(ctx context.Context) error {
	c.printf("\n%s", renderBoard(c.game))

	prompt := fmt.Sprintf("Round %d: open a box (%d left this round): ",
		c.game.Round(), c.game.BoxesRemainingToOpenThisRound())
	index, err := c.readBox(ctx, prompt)
	if err != nil {
		return err
	}

	if err := c.game.SelectBox(index); err != nil {
		return c.reject(ctx, err)
	}

	value, err := c.game.ValueInBox(index)
	if err != nil {
		return err
	}
	reaction, err := c.messages.GetBoxOpenedMessage(ctx, &messaging.GetBoxOpenedMessageInput{
		Value: value,
	})
	if err != nil {
		return err
	}
	c.printf("Box %d contained %s. %s\n", index+1, money(value), reaction.Message)
	return nil
}

// reject tells the player why a selection was refused
func (c *Console) reject(ctx context.Context, selectErr error) error {
	c.log.Debug().Err(selectErr).Msg("selection rejected")

	output, err := c.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err: selectErr,
	})
	if err != nil {
		return err
	}
	c.printf("%s\n", output.Message)
	return nil
}

// readBox reads a 1-based box number and returns its index
func (c *Console) readBox(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Please enter a box number.\n")
			continue
		}
		return n - 1, nil
	}
}

func (c *Console) askDeal(ctx context.Context) (bool, error) {
	for {
		line, err := c.readLine(ctx, "Deal or no deal? (d/n): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "d", "deal", "y", "yes":
			return true, nil
		case "n", "no", "no deal":
			return false, nil
		}
		c.printf("Please answer d or n.\n")
	}
}

// readLine waits for the next line of input or for ctx to be done. A line that
// arrives after cancellation is dropped.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.printf("%s", prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !ok {
			return "", ErrInputClosed
		}
		if line.err != nil {
			return "", fmt.Errorf("failed to read input: %w", line.err)
		}
		return line.text, nil
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The channel is closed when input ends or ctx is done.
func readLines(ctx context.Context, in io.Reader) chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: strings.TrimSpace(scanner.Text())}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
