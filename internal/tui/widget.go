package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	padding  = 2
	maxWidth = 80
)

var doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

type tickMsg time.Time

type mode int

const (
	modeStage mode = iota
	modeFrames
	modeDone
)

// Widget renders the encode pipeline status: a spinner while a stage is
// starting, a bar while frames are flowing, a result line at the end.
type Widget struct {
	mode     mode
	title    string
	spinner  spinner.Model
	progress progress.Model
	percent  float64
}

func NewWidget() *Widget {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &Widget{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (w *Widget) ShowStage(title string) {
	w.mode = modeStage
	w.title = title
}

func (w *Widget) ShowFrames(title string, percent float64) {
	w.mode = modeFrames
	w.title = title
	w.percent = percent
}

func (w *Widget) ShowDone(title string) {
	w.mode = modeDone
	w.title = title
}

func (w *Widget) Init() tea.Cmd {
	return tea.Batch(tickCmd(), w.spinner.Tick)
}

func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return w, tea.Quit
		}
		return w, nil

	case tea.WindowSizeMsg:
		w.progress.Width = msg.Width - padding*2 - 4
		if w.progress.Width > maxWidth {
			w.progress.Width = maxWidth
		}
		return w, nil

	case tickMsg:
		cmd := w.progress.SetPercent(w.percent)
		return w, tea.Batch(tickCmd(), cmd)

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := w.progress.Update(msg)
		w.progress = progressModel.(progress.Model)
		return w, cmd

	default:
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd
	}
}

func (w *Widget) View() string {
	pad := strings.Repeat(" ", padding)

	switch w.mode {
	case modeStage:
		return fmt.Sprintf("\n\n%s%s %s\n\n", pad, w.spinner.View(), w.title)
	case modeFrames:
		return "\n" +
			pad + w.title + "\n\n" +
			pad + w.progress.View() + fmt.Sprintf("  %3.0f%%", w.percent*100) + "\n"
	case modeDone:
		return fmt.Sprintf("\n\n%s%s %s\n\n", pad, doneStyle.Render("✓"), w.title)
	}
	return ""
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
