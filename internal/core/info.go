package core

import (
	"os"

	"github.com/pkg/errors"

	"github.com/1F47E/go-datamosh/internal/config"
	"github.com/1F47E/go-datamosh/internal/mapper"
)

// Report holds the derived display values for a source file and a run
// config: resolved resolution, frame count and estimated duration.
// Recomputed on demand, never stored.
type Report struct {
	SizeBytes int64
	Width     int
	Height    int
	FPS       int
	Frames    int64
	Seconds   float64
}

// Info computes the report without mapping anything, only a stat call.
func (c *Core) Info(path string, cfg config.RunConfig) (Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Report{}, errors.Wrap(err, "reading source file info")
	}
	size := info.Size()

	frames, err := mapper.FrameCount(size, cfg.Width, cfg.Height)
	if err != nil {
		return Report{}, err
	}
	seconds, err := mapper.EstimateDuration(size, cfg.Width, cfg.Height, cfg.FPS)
	if err != nil {
		return Report{}, err
	}

	return Report{
		SizeBytes: size,
		Width:     cfg.Width,
		Height:    cfg.Height,
		FPS:       cfg.FPS,
		Frames:    frames,
		Seconds:   seconds,
	}, nil
}
