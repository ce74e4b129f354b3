// Package tui provides the interactive Bubble Tea viewer for a computed
// projection: a table tab over the export view and a chart tab over the
// zero-clamped display view.
package tui

import (
	"fmt"
	"strconv"

	"pensionproj/internal/cli"
	"pensionproj/internal/projection"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabTable = iota
	tabChart
	tabCount
)

var tabNames = []string{"Table", "Chart"}

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorText).
			Background(cli.ColorAccent).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.ColorTextDim).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.ColorTextDim)
)

// App is the root Bubble Tea model.
type App struct {
	cfg     *projection.Config
	display []projection.Row

	tbl       table.Model
	activeTab int
	width     int
	height    int
}

// New builds the viewer over an already-computed series.
func New(cfg *projection.Config, series projection.Series) App {
	export := series.ExportView()

	columns := []table.Column{
		{Title: "Age", Width: 5},
		{Title: "Fund at start", Width: 16},
		{Title: "Growth", Width: 13},
		{Title: "Charges", Width: 12},
		{Title: "Fund at end", Width: 16},
	}

	rows := make([]table.Row, len(export))
	for i, r := range export {
		rows[i] = table.Row{
			strconv.Itoa(r.Age),
			cli.FormatGBP(r.StartingFundValue),
			cli.FormatGBP(r.ProjectedGrowth),
			cli.FormatGBP(r.Charges),
			cli.FormatGBP(r.EndingFundValue),
		}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(16),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.ColorAccent)
	styles.Selected = styles.Selected.Foreground(cli.ColorText).Background(cli.ColorBorder)
	tbl.SetStyles(styles)

	return App{
		cfg:     cfg,
		display: series.DisplayView(),
		tbl:     tbl,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if h := msg.Height - 8; h > 4 {
			a.tbl.SetHeight(h)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % tabCount
			return a, nil
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
			return a, nil
		}
	}

	if a.activeTab == tabTable {
		var cmd tea.Cmd
		a.tbl, cmd = a.tbl.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) View() string {
	var tabs string
	for i, name := range tabNames {
		if i == a.activeTab {
			tabs = lipgloss.JoinHorizontal(lipgloss.Top, tabs, activeTabStyle.Render(name))
		} else {
			tabs = lipgloss.JoinHorizontal(lipgloss.Top, tabs, inactiveTabStyle.Render(name))
		}
	}

	header := fmt.Sprintf("  %s — ages %d to %d", a.cfg.Name, a.cfg.Age, a.cfg.MaximumAge)

	var body string
	switch a.activeTab {
	case tabTable:
		body = a.tbl.View()
	case tabChart:
		body = a.chartView()
	}

	help := helpStyle.Render("  tab: switch view • ↑/↓: scroll • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, "", tabs, header, "", body, "", help)
}

func (a App) chartView() string {
	values := make([]float64, len(a.display))
	labels := make([]string, len(a.display))
	for i, r := range a.display {
		values[i] = r.EndingFundValue.InexactFloat64()
		labels[i] = strconv.Itoa(r.Age)
	}

	width, height := a.width, a.height-10
	if width < 40 {
		width = 80
	}
	if height < 6 {
		height = 16
	}
	return cli.BarChart(values, labels, width-4, height)
}
