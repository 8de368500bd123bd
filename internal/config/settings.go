package config

import (
	"github.com/caarlos0/env/v11"
)

// Settings are process-level knobs, separate from the per-run RunConfig.
type Settings struct {
	FFmpegBin   string `env:"FFMPEG_BIN"   envDefault:""`
	FrameBuffer int    `env:"FRAME_BUFFER" envDefault:"4"`
}

func LoadSettings() (*Settings, error) {
	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, err
	}
	if s.FrameBuffer < 0 {
		s.FrameBuffer = 0
	}
	return s, nil
}
