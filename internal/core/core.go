package core

import (
	"context"

	"github.com/1F47E/go-datamosh/internal/config"
	"github.com/1F47E/go-datamosh/internal/tui"
	"github.com/1F47E/go-datamosh/internal/video"
)

type Core struct {
	ctx      context.Context
	eventsCh chan tui.Event
	settings *config.Settings
	writer   *video.Writer
}

func NewCore(ctx context.Context, eventsCh chan tui.Event, settings *config.Settings) *Core {
	return &Core{
		ctx:      ctx,
		eventsCh: eventsCh,
		settings: settings,
		writer:   video.NewWriter(settings.FFmpegBin),
	}
}

func (c *Core) event(e tui.Event) {
	if c.eventsCh == nil {
		return
	}
	select {
	case c.eventsCh <- e:
	case <-c.ctx.Done():
	}
}
