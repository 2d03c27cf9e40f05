package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/grid"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

// Game is the playing screen. Once gameOver or won is set the board is
// frozen: only the exit keys are still honoured.
type Game struct {
	logger  *logrus.Logger
	session string
	field   *mines.Minefield

	cursor   grid.Point
	gameOver bool
	won      bool

	w, h int
}

func NewGame(logger *logrus.Logger, session string, field *mines.Minefield) Game {
	return Game{
		logger:  logger,
		session: session,
		field:   field,
	}
}

func (g Game) Init() tea.Cmd {
	return nil
}

func (g Game) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.w, g.h = msg.Width, msg.Height
		return g, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return g, tea.Quit
		}

		if g.gameOver || g.won {
			return g, nil
		}

		switch msg.String() {
		case "up", "k":
			g.cursor = grid.Point{X: g.cursor.X, Y: g.cursor.Y - 1}.Clamp(g.field.Size())
		case "down", "j":
			g.cursor = grid.Point{X: g.cursor.X, Y: g.cursor.Y + 1}.Clamp(g.field.Size())
		case "left", "h":
			g.cursor = grid.Point{X: g.cursor.X - 1, Y: g.cursor.Y}.Clamp(g.field.Size())
		case "right", "l":
			g.cursor = grid.Point{X: g.cursor.X + 1, Y: g.cursor.Y}.Clamp(g.field.Size())
		case " ", "enter":
			g = g.open()
		case "f":
			g.field.Flag(g.cursor)
			g = g.checkWin()
		}
	}

	return g, nil
}

func (g Game) open() Game {
	kind, opened := g.field.Open(g.cursor)
	if opened && kind == mines.Mine {
		g.field.RevealAll()
		g.gameOver = true
		g.logger.WithFields(logrus.Fields{
			"session": g.session,
			"x":       g.cursor.X,
			"y":       g.cursor.Y,
		}).Info("stepped on a mine")
		return g
	}
	return g.checkWin()
}

func (g Game) checkWin() Game {
	if !g.field.OnlyMinesRemaining() {
		return g
	}
	g.field.RevealAll()
	g.won = true
	g.logger.WithField("session", g.session).Info("field cleared")
	return g
}

func (g Game) View() string {
	size := g.field.Size()

	rows := make([]string, 0, size.Height)
	for y := 0; y < size.Height; y++ {
		var b strings.Builder
		for x := 0; x < size.Width; x++ {
			p := grid.Point{X: x, Y: y}
			switch g.cursor {
			case p:
				b.WriteString(cursorStyle.Render("["))
			case (grid.Point{X: x - 1, Y: y}):
				b.WriteString(cursorStyle.Render("]"))
			default:
				b.WriteString(" ")
			}
			b.WriteString(g.cellGlyph(p))
		}
		if g.cursor == (grid.Point{X: size.Width - 1, Y: y}) {
			b.WriteString(cursorStyle.Render("]"))
		}
		rows = append(rows, b.String())
	}

	var b strings.Builder
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"Mines: %d  Flags: %d", g.field.MineCount(), g.field.FlagCount(),
	)))

	switch {
	case g.gameOver:
		b.WriteString("\n\n" + bannerStyle.Render("Game Over!"))
	case g.won:
		b.WriteString("\n\n" + bannerStyle.Render("You Won!"))
	default:
		b.WriteString("\n\n" + helpStyle.Render("arrows move  Space open  f flag  Esc quit"))
	}

	content := b.String()
	if g.w > 0 && g.h > 0 {
		return lipgloss.Place(g.w, g.h, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (g Game) cellGlyph(p grid.Point) string {
	view, ok := g.field.CellAt(p)
	if !ok {
		return " "
	}

	switch view.State {
	case mines.Flagged:
		return flagStyle.Render("F")
	case mines.Opened:
		if view.Kind == mines.Mine {
			return mineStyle.Render("M")
		}
		if view.NeighbourMines == 0 {
			return " "
		}
		return numberStyles[view.NeighbourMines].Render(strconv.Itoa(view.NeighbourMines))
	default:
		return closedStyle.Render("?")
	}
}
