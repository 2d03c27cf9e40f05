package ui

import "github.com/charmbracelet/lipgloss"

var (
	closedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	menuStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	bannerStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// numberStyles colours opened cells by neighbour mine count. Index 0 is never
// rendered (zero-count cells draw blank).
var numberStyles = [9]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	6: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	7: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	8: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// rainbowStyles colour the header art line by line.
var rainbowStyles = [...]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}
