package config

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// NOTE: frame pixels are written from left to right, top to bottom,
// every byte of the source lands on one RGB channel
const (
	Channels = 3 // RGB

	DefaultRatio     = Ratio169
	DefaultBaseWidth = 512
	DefaultFPS       = 1
)

var (
	ErrUnknownRatio     = errors.New("unknown aspect ratio")
	ErrUnknownBaseWidth = errors.New("unknown base width")
	ErrUnknownFrameRate = errors.New("unknown frame rate")
)

// AspectRatio is one of the preset ratio tags
type AspectRatio string

const (
	Ratio11  AspectRatio = "1:1"
	Ratio43  AspectRatio = "4:3"
	Ratio169 AspectRatio = "16:9"
	Ratio916 AspectRatio = "9:16"
)

// in presentation order
var AspectRatios = []AspectRatio{Ratio11, Ratio43, Ratio169, Ratio916}

var ratioParts = map[AspectRatio][2]int{
	Ratio11:  {1, 1},
	Ratio43:  {4, 3},
	Ratio169: {16, 9},
	Ratio916: {9, 16},
}

var BaseWidths = []int{256, 512, 1024}

var FrameRates = []int{1, 12, 24, 30}

func ParseAspectRatio(s string) (AspectRatio, error) {
	r := AspectRatio(s)
	if _, ok := ratioParts[r]; !ok {
		return "", errors.Wrapf(ErrUnknownRatio, "%q", s)
	}
	return r, nil
}

// Resolution resolves a ratio tag and a base width into exact pixel
// dimensions. Height is rounded to the nearest integer,
// e.g. 1024 at 9:16 gives 1820, 512 at 4:3 gives 384.
func Resolution(ratio AspectRatio, baseWidth int) (width, height int, err error) {
	parts, ok := ratioParts[ratio]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownRatio, "%q", ratio)
	}
	if !isPreset(baseWidth, BaseWidths) {
		return 0, 0, errors.Wrapf(ErrUnknownBaseWidth, "%d", baseWidth)
	}
	wr, hr := parts[0], parts[1]
	height = int(math.Round(float64(baseWidth) * float64(hr) / float64(wr)))
	if height < 1 {
		height = 1
	}
	return baseWidth, height, nil
}

// RunConfig is the immutable per-run selection: exact resolution and frame
// rate. Built once before mapping starts, never read from globals.
type RunConfig struct {
	Width  int
	Height int
	FPS    int
}

// NewRunConfig validates the choices against the preset sets and resolves
// the exact resolution. The mapper itself takes any positive integers, the
// presets only restrict what the CLI surface offers.
func NewRunConfig(ratio AspectRatio, baseWidth, fps int) (RunConfig, error) {
	w, h, err := Resolution(ratio, baseWidth)
	if err != nil {
		return RunConfig{}, err
	}
	if !isPreset(fps, FrameRates) {
		return RunConfig{}, errors.Wrapf(ErrUnknownFrameRate, "%d", fps)
	}
	return RunConfig{Width: w, Height: h, FPS: fps}, nil
}

func (c RunConfig) Print() string {
	return fmt.Sprintf("%dx%d @ %d fps", c.Width, c.Height, c.FPS)
}

func isPreset(v int, set []int) bool {
	for _, p := range set {
		if v == p {
			return true
		}
	}
	return false
}
