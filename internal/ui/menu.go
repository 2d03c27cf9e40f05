package ui

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/grid"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

//go:embed assets/header.txt
var menuHeader string

type menuField int

const (
	fieldWidth menuField = iota
	fieldHeight
	fieldMines
	fieldStartGame
	menuFieldCount
)

func (f menuField) next() menuField {
	return (f + 1) % menuFieldCount
}

func (f menuField) prev() menuField {
	return (f + menuFieldCount - 1) % menuFieldCount
}

// Menu is the configuration screen shown on startup. Confirming Start Game
// hands the whole screen over to a fresh Game model.
type Menu struct {
	logger *logrus.Logger
	rand   *rand.Rand

	cursor    menuField
	width     int
	height    int
	mineCount int

	status string
	w, h   int
}

func NewMenu(logger *logrus.Logger, r *rand.Rand, board config.BoardConfig) Menu {
	return Menu{
		logger:    logger,
		rand:      r,
		cursor:    fieldStartGame,
		width:     board.Width,
		height:    board.Height,
		mineCount: board.MineCount,
	}
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "up", "k":
			m.cursor = m.cursor.prev()
		case "down", "j":
			m.cursor = m.cursor.next()
		case "left", "-":
			m = m.adjust(-1)
		case "right", "+", "=":
			m = m.adjust(1)
		case "enter":
			if m.cursor == fieldStartGame {
				return m.startGame()
			}
			m = m.adjust(1)
		}
	}

	return m, nil
}

// adjust increments or decrements the selected numeric field with a floor of
// one. The minefield itself never sees these values until Start Game.
func (m Menu) adjust(delta int) Menu {
	switch m.cursor {
	case fieldWidth:
		m.width = max(1, m.width+delta)
	case fieldHeight:
		m.height = max(1, m.height+delta)
	case fieldMines:
		m.mineCount = max(1, m.mineCount+delta)
	}
	return m
}

func (m Menu) startGame() (tea.Model, tea.Cmd) {
	size := grid.Size{Width: m.width, Height: m.height}
	generator := &mines.Generator{Rand: m.rand}

	field, err := generator.Generate(size, m.mineCount)
	if err != nil {
		m.status = err.Error()
		m.logger.WithError(err).Error("refusing to start game")
		return m, nil
	}

	session := uuid.NewString()
	m.logger.WithFields(logrus.Fields{
		"session": session,
		"width":   m.width,
		"height":  m.height,
		"mines":   m.mineCount,
	}).Info("new game")

	game := NewGame(m.logger, session, field)
	game.w, game.h = m.w, m.h
	return game, nil
}

func (m Menu) View() string {
	rows := []struct {
		label string
		value string
	}{
		{label: "Width", value: fmt.Sprintf("%d", m.width)},
		{label: "Height", value: fmt.Sprintf("%d", m.height)},
		{label: "Mines", value: fmt.Sprintf("%d", m.mineCount)},
		{label: "Start Game"},
	}

	var b strings.Builder
	for i, row := range rows {
		cursor := "  "
		style := menuStyle
		if menuField(i) == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		if row.value == "" {
			b.WriteString(cursor + style.Render(row.label) + "\n")
			continue
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%-8s %s", row.label+":", row.value)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move  ←/→ change  Enter start  Esc quit"))
	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}

	content := b.String()
	if header := m.header(); header != "" {
		content = header + "\n\n" + content
	}
	if m.w > 0 && m.h > 0 {
		return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// header renders the decorative art when the terminal has room for it.
func (m Menu) header() string {
	lines := strings.Split(strings.TrimRight(menuHeader, "\n"), "\n")

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	if m.w > 0 && m.w < width {
		return ""
	}
	if m.h > 0 && m.h < len(lines)+10 {
		return ""
	}

	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = rainbowStyles[i%len(rainbowStyles)].Render(line)
	}
	return strings.Join(rendered, "\n")
}
