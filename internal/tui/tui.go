package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1F47E/go-datamosh/internal/logger"
)

type TUI struct {
	ctx      context.Context
	eventsCh chan Event
}

func New(eventsCh chan Event, ctx context.Context) *TUI {
	return &TUI{ctx, eventsCh}
}

// Run drives the widget from the events channel until the context is done.
func (t *TUI) Run() {
	widget := NewWidget()
	program := tea.NewProgram(widget)
	go func() {
		if _, err := program.Run(); err != nil {
			logger.Log.Errorf("tui crashed: %v", err)
		}
	}()

	for {
		select {
		case <-t.ctx.Done():
			program.Quit()
			return

		case event := <-t.eventsCh:
			switch event.eventType {
			case eventTypeStage:
				widget.ShowStage(event.title())
			case eventTypeFrames:
				widget.ShowFrames(event.title(), event.percent())
			case eventTypeDone:
				widget.ShowDone(event.title())
			}
		}
	}
}
