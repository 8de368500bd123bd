package core

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/1F47E/go-datamosh/internal/config"
	"github.com/1F47E/go-datamosh/internal/logger"
	"github.com/1F47E/go-datamosh/internal/mapper"
	"github.com/1F47E/go-datamosh/internal/tui"
	"github.com/1F47E/go-datamosh/internal/video"
)

var log = logger.Log

// ErrEmptySource means the source file has zero bytes: zero frames,
// nothing to put in a container.
var ErrEmptySource = errors.New("source file is empty, nothing to encode")

// Encode maps the file at path into frames and writes the video.
// Returns the output path. Any error aborts the run and removes the
// partial output, no silent success on partial data.
func (c *Core) Encode(path string, cfg config.RunConfig, outPath string) (string, error) {
	scoped := log.WithField("scope", "core encode")

	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening source file")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", errors.Wrap(err, "reading source file info")
	}
	size := info.Size()

	total, err := mapper.FrameCount(size, cfg.Width, cfg.Height)
	if err != nil {
		return "", err
	}
	if total == 0 {
		return "", errors.Wrapf(ErrEmptySource, "%s", path)
	}
	seconds, err := mapper.EstimateDuration(size, cfg.Width, cfg.Height, cfg.FPS)
	if err != nil {
		return "", err
	}
	scoped.Debugf("%s: %d bytes, %d frames, ~%.2fs at %s", path, size, total, seconds, cfg.Print())

	if outPath == "" {
		outPath = video.OutputPath(path)
	}

	m, err := mapper.New(cfg.Width, cfg.Height)
	if err != nil {
		return "", err
	}
	m.Buffer = c.settings.FrameBuffer

	// the mapper gets its own context so a failed writer stops it
	// at the next frame boundary instead of leaving it mid-stream
	mapCtx, stopMapper := context.WithCancel(c.ctx)
	defer stopMapper()

	c.event(tui.NewEventStage("Mapping frames..."))
	frames, mapErrCh := m.MapFrames(mapCtx, file)

	// proxy the frames to count progress for the bar
	counted := make(chan mapper.Frame, c.settings.FrameBuffer)
	go func() {
		defer close(counted)
		var done int64
		for f := range frames {
			counted <- f
			done++
			c.event(tui.NewEventFrames(done, total))
		}
	}()

	encErr := c.writer.Encode(c.ctx, counted, cfg, outPath)

	// stop the mapper and drain whatever was in flight so the
	// producer side always winds down, then collect its error
	stopMapper()
	for range counted {
	}
	mapErr := <-mapErrCh

	if encErr != nil || mapErr != nil {
		if rmErr := os.Remove(outPath); rmErr != nil && !os.IsNotExist(rmErr) {
			scoped.Warnf("cannot remove partial output %s: %v", outPath, rmErr)
		}
		// the writer's failure caused the mapper cancellation, not the
		// other way around, so it is the one worth reporting
		if encErr != nil {
			return "", encErr
		}
		return "", mapErr
	}

	c.event(tui.NewEventDone(fmt.Sprintf("Saved %s (%d frames, ~%.2fs)", outPath, total, seconds)))
	log.Infof("Video saved: %s", outPath)
	return outPath, nil
}
