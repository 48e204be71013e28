package tui

import (
	"ctchen222/Noughts-And-Crosses/internal/game"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#4204b5ff", Dark: "#8a6cffff"})
	humanStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	botStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000ff", Dark: "#fc7e7eff"}).Render
	bracketStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#ddda1dff"}).Render
)

const help = "arrows move • enter place • s start • n new game • e/h difficulty • c opponent • q quit"

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.view
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Noughts and Crosses"))
	sb.WriteString("\n\n")

	board := renderBoard(v.Board)
	chat := v.Chat
	if chat == "" {
		chat = " "
	}
	side := panelStyle.Render(fmt.Sprintf("Opponent: %s\nDifficulty: %s\n\n%s", v.Persona, v.Difficulty, chat))
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(board), side))
	sb.WriteString("\n")
	sb.WriteString(panelStyle.Render(v.Instructions))
	sb.WriteString("\n")
	sb.WriteString(helpStyle(help))
	sb.WriteString("\n")
	return sb.String()
}

// renderBoard draws the top row first; row 0 is the bottom of the board.
func renderBoard(b game.Board) string {
	var sb strings.Builder
	for r := game.BorderMax; r >= game.BorderMin; r-- {
		for c := range game.BoardSize {
			slot := b[r][c]
			mark := " "
			if owner, ok := slot.Cell.Occupant(); ok {
				mark = markFor(owner)
			} else if slot.Selected {
				mark = cursorStyle(game.Nobody.Mark())
			}

			left, right := bracketStyle("["), bracketStyle("]")
			if slot.Selected {
				left, right = cursorStyle("["), cursorStyle("]")
			}
			sb.WriteString(left + mark + right)
		}
		if r > game.BorderMin {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func markFor(owner game.Owner) string {
	switch owner {
	case game.Human:
		return humanStyle(owner.Mark())
	case game.Automated:
		return botStyle(owner.Mark())
	}
	return owner.Mark()
}
