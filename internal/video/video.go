// Package video is the container writer: it pipes raw rgb24 frames into
// ffmpeg and saves an mp4 next to the source file.
package video

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/1F47E/go-datamosh/internal/config"
	"github.com/1F47E/go-datamosh/internal/logger"
	"github.com/1F47E/go-datamosh/internal/mapper"
)

// ErrEncode means ffmpeg failed to produce the container.
var ErrEncode = errors.New("video encoding failed")

const outputSuffix = "_datamosh.mp4"

// OutputPath is the conventional output name: <stem>_datamosh.mp4
// next to the source.
func OutputPath(src string) string {
	stem := strings.TrimSuffix(src, filepath.Ext(src))
	return stem + outputSuffix
}

type Writer struct {
	ffmpegBin string
}

// NewWriter creates a container writer. ffmpegBin overrides the ffmpeg
// binary path, empty means whatever is on PATH.
func NewWriter(ffmpegBin string) *Writer {
	return &Writer{ffmpegBin: ffmpegBin}
}

// graph builds the ffmpeg invocation: rawvideo rgb24 frames on stdin,
// h264 yuv420p mp4 out. One consumed frame is one displayed frame,
// in order, no reordering or drops.
func (w *Writer) graph(cfg config.RunConfig, outPath string) *ffmpeg.Stream {
	return ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgb24",
		"s":         fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"framerate": cfg.FPS,
	}).Output(outPath, ffmpeg.KwArgs{
		"c:v":      "libx264",
		"pix_fmt":  "yuv420p",
		"preset":   "slow",
		"r":        cfg.FPS,
		"movflags": "+faststart",
	}).OverWriteOutput()
}

// Encode consumes frames in order and writes the video file. Blocks until
// the frames channel is closed and ffmpeg exits. On cancellation ffmpeg is
// killed, the partial file is left for the caller to discard.
func (w *Writer) Encode(ctx context.Context, frames <-chan mapper.Frame, cfg config.RunConfig, outPath string) error {
	log := logger.Log.WithField("scope", "container writer")

	pr, pw := io.Pipe()
	stream := w.graph(cfg, outPath).WithInput(pr)
	if w.ffmpegBin != "" {
		stream = stream.SetFfmpegPath(w.ffmpegBin)
	}
	cmd := stream.Compile()
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debugf("ffmpeg args: %v", cmd.Args)
	if err := cmd.Start(); err != nil {
		pr.Close()
		// unblock the producer, frames are finite
		go func() {
			for range frames {
			}
		}()
		return errors.Wrapf(ErrEncode, "starting ffmpeg: %v", err)
	}

	// feed frames into ffmpeg stdin, strict input order
	writeErr := make(chan error, 1)
	go func() {
		for f := range frames {
			if _, err := pw.Write(f); err != nil {
				writeErr <- err
				// unblock the producer, frames are finite
				for range frames {
				}
				return
			}
		}
		pw.Close()
		writeErr <- nil
	}()

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		pr.Close()
		<-writeErr
		return errors.Wrapf(ErrEncode, "cancelled: %v", ctx.Err())
	case err := <-done:
		pr.Close()
		ferr := <-writeErr
		if err != nil {
			return errors.Wrapf(ErrEncode, "%v: %s", err, stderr.String())
		}
		if ferr != nil {
			return errors.Wrapf(ErrEncode, "feeding frames: %v", ferr)
		}
	}

	log.Debugf("video saved: %s", outPath)
	return nil
}
