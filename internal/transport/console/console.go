package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	cmdExit    = "e"
	cmdStats   = "p"
	cmdHistory = "h"

	clearScreen = "\033[H\033[2J"
)

var ErrInvalidInput = errors.New(`invalid input, please enter row and column as "row:col"`)

type gameEngine interface {
	MakeMove(row, col int) error
	Reset()
	CurrentPlayer() entity.Player
	Outcome() entity.Outcome
	HasEnded() bool
	Board() entity.Board
	Stats() entity.Stats
}

type statsStore interface {
	Load(ctx context.Context) entity.Stats
	Save(ctx context.Context, session entity.Stats) error
}

type Options struct {
	Color bool
	// ClearScreen wipes the terminal before redrawing the board.
	ClearScreen bool
}

// Console runs the interactive prompt loop on top of a game.
type Console struct {
	logger *slog.Logger
	game   gameEngine
	stats  statsStore
	in     io.Reader
	out    io.Writer
	theme  *Theme
	clear  bool
}

func New(logger *slog.Logger, game gameEngine, stats statsStore, in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		game:   game,
		stats:  stats,
		in:     in,
		out:    out,
		theme:  NewTheme(opts.Color),
		clear:  opts.ClearScreen,
	}
}

// Start blocks until the player exits, the input ends or ctx is cancelled.
// The session stats are saved on every way out once a game was started.
func (that *Console) Start(ctx context.Context) error {
	lines := that.readLines(ctx)

	fmt.Fprint(that.out, "Do you want to play a game of Tic Tac Toe? (y/n) ")

	answer, ok := next(ctx, lines)
	if !ok || !isYes(answer) {
		fmt.Fprintln(that.out, "Maybe next time!")
		return nil
	}

	that.logger.Info("session started")

	that.clearScreen()
	that.printBoard()
	fmt.Fprintln(that.out, that.theme.Help(`Press "e" to exit, "p" to print stats, "h" to print history`))

	for {
		fmt.Fprintln(that.out)

		if that.game.HasEnded() {
			that.printGameResult()
		}

		fmt.Fprintf(that.out, "%s > ", that.inputMessage())

		line, ok := next(ctx, lines)
		if !ok {
			fmt.Fprintln(that.out)
			return that.quit(ctx)
		}

		input := strings.TrimSpace(line)

		switch strings.ToLower(input) {
		case cmdExit:
			return that.quit(ctx)
		case cmdStats:
			that.printStats()
		case cmdHistory:
			that.printHistory(ctx)
		case "":
			that.handleEnter()
		default:
			that.handleMove(input)
		}
	}
}

func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func next(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (that *Console) handleMove(input string) {
	row, col, err := ParseMove(input)
	if err != nil {
		that.printError(err)
		return
	}

	if err = that.game.MakeMove(row, col); err != nil {
		that.logger.Debug("move rejected", "row", row, "col", col, "error", err)
		that.printError(err)
		return
	}

	that.logger.Debug("move accepted", "row", row, "col", col, "outcome", that.game.Outcome().String())

	that.clearScreen()
	that.printBoard()
}

func (that *Console) handleEnter() {
	if !that.game.HasEnded() {
		fmt.Fprintln(that.out, that.theme.Error("You can only start a new game after the current game is over."))
		return
	}

	that.game.Reset()
	that.logger.Info("new round", "starts", that.game.CurrentPlayer().String())

	that.clearScreen()
	that.printBoard()
}

func (that *Console) quit(ctx context.Context) error {
	that.clearScreen()
	fmt.Fprintln(that.out, "Thanks for playing!")

	// the session must be written even when the loop was stopped by a signal
	if err := that.stats.Save(context.WithoutCancel(ctx), that.game.Stats()); err != nil {
		fmt.Fprintln(that.out, that.theme.Error("Could not save the stats history."))
	}

	that.logger.Info("session finished", "stats", that.game.Stats())

	return nil
}

// ParseMove reads "row:col" with integer components.
func ParseMove(input string) (int, int, error) {
	parts := strings.Split(input, ":")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidInput
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, ErrInvalidInput
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, ErrInvalidInput
	}

	return row, col, nil
}

func (that *Console) inputMessage() string {
	if that.game.HasEnded() {
		return `Press "Enter" to start a new game.`
	}

	return fmt.Sprintf("Player %s, enter your move (row:col)", that.theme.Player(that.game.CurrentPlayer()))
}

func (that *Console) printGameResult() {
	outcome := that.game.Outcome()

	if outcome.IsDraw() {
		fmt.Fprintln(that.out, "The game ended in a draw!")
		return
	}

	fmt.Fprintf(that.out, "Player %s wins!\n", that.theme.Player(outcome.Winner))
}

func (that *Console) printBoard() {
	board := that.game.Board()
	separator := strings.Repeat("-", len(board)*4-1)

	for row := range board {
		cells := make([]string, len(board[row]))
		for col, cell := range board[row] {
			cells[col] = that.theme.Cell(cell)
		}

		fmt.Fprintln(that.out, strings.Join(cells, " | "))

		if row < len(board)-1 {
			fmt.Fprintln(that.out, separator)
		}
	}
}

func (that *Console) printStats() {
	that.clearScreen()
	that.printRecord("Game Stats", that.game.Stats())
}

// printHistory shows the persisted totals including the rounds of this session.
func (that *Console) printHistory(ctx context.Context) {
	that.clearScreen()
	that.printRecord("Stats History", that.stats.Load(ctx).Add(that.game.Stats()))
}

func (that *Console) printRecord(title string, stats entity.Stats) {
	fmt.Fprintln(that.out, that.theme.Heading(title))
	fmt.Fprintf(that.out, "Player %s wins: %d\n", that.theme.Player(entity.PlayerX), stats.X)
	fmt.Fprintf(that.out, "Player %s wins: %d\n", that.theme.Player(entity.PlayerO), stats.O)
	fmt.Fprintf(that.out, "Draw games: %d\n", stats.Draw)
}

func (that *Console) printError(err error) {
	fmt.Fprintln(that.out, that.theme.Error(err.Error()))
}

func (that *Console) clearScreen() {
	if that.clear {
		fmt.Fprint(that.out, clearScreen)
	}
}
