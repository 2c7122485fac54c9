package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Theme colours the console output: X in blue, O in magenta.
type Theme struct {
	x       *color.Color
	o       *color.Color
	help    *color.Color
	heading *color.Color
	err     *color.Color
}

func NewTheme(enabled bool) *Theme {
	theme := &Theme{
		x:       color.New(color.FgBlue),
		o:       color.New(color.FgMagenta),
		help:    color.New(color.FgGreen),
		heading: color.New(color.Bold),
		err:     color.New(color.FgRed),
	}

	for _, c := range []*color.Color{theme.x, theme.o, theme.help, theme.heading, theme.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return theme
}

func (that *Theme) Player(player entity.Player) string {
	if player == entity.PlayerX {
		return that.x.Sprint(player)
	}
	return that.o.Sprint(player)
}

func (that *Theme) Cell(cell entity.Cell) string {
	switch cell {
	case entity.CellX:
		return that.Player(entity.PlayerX)
	case entity.CellO:
		return that.Player(entity.PlayerO)
	default:
		return " "
	}
}

func (that *Theme) Help(text string) string {
	return that.help.Sprint(text)
}

func (that *Theme) Heading(text string) string {
	return that.heading.Sprint(text)
}

func (that *Theme) Error(text string) string {
	return that.err.Sprint(text)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
