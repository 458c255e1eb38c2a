// Package tui provides an interactive browser over classified transactions.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fbarros/fatura/internal/cli"
	"github.com/fbarros/fatura/internal/model"
)

// BrowserModel is the bubbletea model for the classification browser.
type BrowserModel struct {
	analysis model.BatchAnalysis
	table    table.Model
	width    int
	height   int
}

// NewBrowser builds the browser over a classified batch.
func NewBrowser(analysis model.BatchAnalysis) BrowserModel {
	columns := []table.Column{
		{Title: "Description", Width: 32},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 20},
		{Title: "Confidence", Width: 12},
	}

	rows := make([]table.Row, 0, len(analysis.Classified))
	for _, c := range analysis.Classified {
		confidence := "high"
		if c.Confidence == model.ConfidenceLow {
			confidence = "low"
		}
		rows = append(rows, table.Row{
			c.Transaction.Description,
			cli.Money(c.Transaction.Amount),
			c.Category.Icon + " " + c.Category.Label,
			confidence,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(minInt(len(rows)+1, 20)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SubtleColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(cli.PrimaryColor).
		Bold(true)
	t.SetStyles(s)

	return BrowserModel{analysis: analysis, table: t}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	header := cli.TitleStyle.Render(fmt.Sprintf("%s Transactions  %s  avg %s",
		cli.CardIcon, cli.Money(m.analysis.Total), cli.Money(m.analysis.AvgTicket)))
	footer := cli.SubtleStyle.Render("↑/↓ navigate • q quit")
	return header + "\n" + m.table.View() + "\n" + footer + "\n"
}

// Run starts the interactive browser and blocks until the user quits.
func Run(analysis model.BatchAnalysis) error {
	p := tea.NewProgram(NewBrowser(analysis), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running transaction browser: %w", err)
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
