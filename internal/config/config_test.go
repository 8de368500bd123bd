package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolution(t *testing.T) {
	testCases := []struct {
		name       string
		ratio      AspectRatio
		baseWidth  int
		wantHeight int
	}{
		{name: "square 256", ratio: Ratio11, baseWidth: 256, wantHeight: 256},
		{name: "square 512", ratio: Ratio11, baseWidth: 512, wantHeight: 512},
		{name: "square 1024", ratio: Ratio11, baseWidth: 1024, wantHeight: 1024},
		{name: "4:3 256", ratio: Ratio43, baseWidth: 256, wantHeight: 192},
		{name: "4:3 512", ratio: Ratio43, baseWidth: 512, wantHeight: 384},
		{name: "4:3 1024", ratio: Ratio43, baseWidth: 1024, wantHeight: 768},
		{name: "16:9 256", ratio: Ratio169, baseWidth: 256, wantHeight: 144},
		{name: "16:9 512", ratio: Ratio169, baseWidth: 512, wantHeight: 288},
		{name: "16:9 1024", ratio: Ratio169, baseWidth: 1024, wantHeight: 576},
		{name: "9:16 256", ratio: Ratio916, baseWidth: 256, wantHeight: 455},
		{name: "9:16 512", ratio: Ratio916, baseWidth: 512, wantHeight: 910},
		{name: "9:16 1024", ratio: Ratio916, baseWidth: 1024, wantHeight: 1820},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, err := Resolution(tc.ratio, tc.baseWidth)
			require.NoError(t, err)
			assert.Equal(t, tc.baseWidth, w)
			assert.Equal(t, tc.wantHeight, h)
		})
	}
}

// every preset combination resolves, deterministically
func TestResolutionTotal(t *testing.T) {
	for _, ratio := range AspectRatios {
		for _, base := range BaseWidths {
			w1, h1, err := Resolution(ratio, base)
			require.NoError(t, err, "%s %d", ratio, base)
			assert.Equal(t, base, w1)
			assert.GreaterOrEqual(t, h1, 1)

			w2, h2, err := Resolution(ratio, base)
			require.NoError(t, err)
			assert.Equal(t, w1, w2)
			assert.Equal(t, h1, h2)
		}
	}
}

func TestResolutionUnknown(t *testing.T) {
	_, _, err := Resolution(AspectRatio("2:1"), 512)
	assert.ErrorIs(t, err, ErrUnknownRatio)

	_, _, err = Resolution(Ratio169, 300)
	assert.ErrorIs(t, err, ErrUnknownBaseWidth)
}

func TestParseAspectRatio(t *testing.T) {
	for _, ratio := range AspectRatios {
		got, err := ParseAspectRatio(string(ratio))
		require.NoError(t, err)
		assert.Equal(t, ratio, got)
	}

	_, err := ParseAspectRatio("21:9")
	assert.ErrorIs(t, err, ErrUnknownRatio)
}

func TestNewRunConfig(t *testing.T) {
	cfg, err := NewRunConfig(Ratio169, 512, 24)
	require.NoError(t, err)
	assert.Equal(t, RunConfig{Width: 512, Height: 288, FPS: 24}, cfg)
	assert.Equal(t, "512x288 @ 24 fps", cfg.Print())

	_, err = NewRunConfig(Ratio169, 512, 25)
	assert.ErrorIs(t, err, ErrUnknownFrameRate)

	_, err = NewRunConfig(AspectRatio("5:4"), 512, 24)
	assert.ErrorIs(t, err, ErrUnknownRatio)
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "", s.FFmpegBin)
	assert.Equal(t, 4, s.FrameBuffer)

	t.Setenv("FFMPEG_BIN", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("FRAME_BUFFER", "9")
	s, err = LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", s.FFmpegBin)
	assert.Equal(t, 9, s.FrameBuffer)

	t.Setenv("FRAME_BUFFER", "-1")
	s, err = LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 0, s.FrameBuffer)
}
