// Package viz renders the engine state as a bubbletea program: a
// bordered canvas, per-body info, the settings panel with its selected
// entry highlighted, and the recent diagnostic log.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitlab/internal/canvas"
	"github.com/san-kum/orbitlab/internal/engine"
)

const (
	canvasWidth  = 80
	canvasHeight = 20
	sideWidth    = 46
	logLines     = 10
)

// TickMsg paces the run loop at the engine's fixed cadence.
type TickMsg time.Time

// App is the bubbletea model wrapping the simulation engine. All
// engine access happens on the program goroutine.
type App struct {
	eng   *engine.Engine
	cnv   *canvas.Canvas
	theme Theme
}

func NewApp(eng *engine.Engine, themeName string) *App {
	return &App{
		eng:   eng,
		cnv:   canvas.New(canvasWidth, canvasHeight),
		theme: GetTheme(themeName),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(engine.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (a *App) Init() tea.Cmd {
	return tickCmd()
}

// Update handles input and the fixed-cadence tick. The app claims
// ctrl+c and the theme-cycle key; everything else goes to the engine,
// which reserves quit/pause/reset/settings-navigation and forwards the
// rest to the scenario.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c":
			return a, tea.Quit
		case "t":
			a.theme = NextTheme(a.theme.Name)
		default:
			a.eng.HandleKey(key)
			if a.eng.Exiting() {
				return a, tea.Quit
			}
		}
	case TickMsg:
		a.eng.Tick(time.Time(msg))
		if a.eng.Exiting() {
			return a, tea.Quit
		}
		return a, tickCmd()
	}
	return a, nil
}

func (a *App) View() string {
	sim := a.eng.Sim()

	border := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(a.theme.Border)
	title := lipgloss.NewStyle().Foreground(a.theme.Title).Bold(true)
	muted := lipgloss.NewStyle().Foreground(a.theme.Muted)

	// Canvas panel.
	x1, x2, y1, y2 := sim.CanvasBounds()
	a.cnv.SetBounds(x1, x2, y1, y2)
	a.cnv.Clear()
	sim.Render(a.cnv)

	canvasHeader := lipgloss.PlaceHorizontal(canvasWidth, lipgloss.Center, title.Render(sim.CanvasTitle()))
	canvasFooter := lipgloss.PlaceHorizontal(canvasWidth, lipgloss.Center,
		muted.Render(" Quit <Q>  Reset <R>  Pause <Spacebar>  Theme <T> "))
	canvasPanel := border.Render(canvasHeader + "\n" + a.cnv.String() + "\n" + canvasFooter)

	// Info panel.
	var info strings.Builder
	info.WriteString(title.Render(sim.InfoTitle()) + "\n")
	for _, line := range sim.InfoLines() {
		glyph := lipgloss.NewStyle().Foreground(line.Color).Render(line.Glyph)
		info.WriteString(glyph + " " + line.Text + "\n")
	}

	// Settings panel.
	info.WriteString("\n" + title.Render(" Simulation Settings ") + "\n")
	selected := lipgloss.NewStyle().Foreground(a.theme.SelectedFg).Background(a.theme.SelectedBg)
	panel := sim.Settings()
	for i, s := range panel.Items() {
		line := fmt.Sprintf("%-12s %s", s.Label(), s.Display())
		if i == panel.Selected() {
			info.WriteString(selected.Render(line) + "\n")
		} else {
			info.WriteString(line + "\n")
		}
	}
	infoPanel := border.Render(lipgloss.NewStyle().Width(sideWidth).Render(strings.TrimRight(info.String(), "\n")))

	// Log panel with status and fps.
	status := "RUNNING"
	if a.eng.Paused() {
		status = "PAUSED"
	}
	var logs strings.Builder
	logs.WriteString(title.Render(" Logs ") + muted.Render(fmt.Sprintf(" %s  %dfps", status, a.eng.FPS())) + "\n")
	logs.WriteString(a.eng.Log().Tail(logLines))
	logPanel := border.Render(lipgloss.NewStyle().Width(sideWidth).Render(strings.TrimRight(logs.String(), "\n")))

	bottom := lipgloss.JoinHorizontal(lipgloss.Top, infoPanel, logPanel)
	return lipgloss.JoinVertical(lipgloss.Left, canvasPanel, bottom)
}

// Run starts the interactive program and blocks until exit.
func Run(eng *engine.Engine, themeName string) error {
	p := tea.NewProgram(NewApp(eng, themeName), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
