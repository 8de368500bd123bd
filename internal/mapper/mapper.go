// Package mapper turns an opaque byte stream into fixed-size RGB frame
// buffers. Every frame is exactly width*height*3 bytes, the tail of the
// last frame is zero-padded. Concatenating all frames and truncating to
// the source length gives back the source byte for byte.
package mapper

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/1F47E/go-datamosh/internal/config"
	"github.com/1F47E/go-datamosh/internal/logger"
)

var log = logger.Log

// Frame is one frame worth of pixel bytes, row-major, RGB channel order.
// Freshly allocated per frame, never aliased to the source buffer.
type Frame []byte

// FrameSize is the byte size of a single frame at the given resolution.
func FrameSize(width, height int) int {
	return width * height * config.Channels
}

// FrameCount is the number of frames a stream of the given size maps to.
// Pure arithmetic, depends on size and resolution only: ceil(size/frameSize),
// zero for an empty stream.
func FrameCount(size int64, width, height int) (int64, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.Wrapf(ErrInvalidResolution, "%dx%d", width, height)
	}
	if size < 0 {
		return 0, errors.Errorf("negative stream size %d", size)
	}
	fs := int64(FrameSize(width, height))
	return (size + fs - 1) / fs, nil
}

// EstimateDuration is the output video length in seconds: frames/fps.
func EstimateDuration(size int64, width, height, fps int) (float64, error) {
	if fps <= 0 {
		return 0, errors.Wrapf(ErrInvalidFrameRate, "%d", fps)
	}
	frames, err := FrameCount(size, width, height)
	if err != nil {
		return 0, err
	}
	return float64(frames) / float64(fps), nil
}

type Mapper struct {
	width     int
	height    int
	frameSize int

	// Buffer is the depth of the frames channel, bounds how far the
	// producer can run ahead of the consumer.
	Buffer int
}

func New(width, height int) (*Mapper, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidResolution, "%dx%d", width, height)
	}
	return &Mapper{
		width:     width,
		height:    height,
		frameSize: FrameSize(width, height),
		Buffer:    4,
	}, nil
}

func (m *Mapper) FrameSize() int {
	return m.frameSize
}

// MapFrames reads the source sequentially, forward-only, and produces
// frames in input order on the returned channel. The channel is closed
// when the source is drained, the context is cancelled or reading fails;
// the error channel then carries at most one error. An empty source
// closes the channel after zero frames. Frames are only ever sent
// complete, cancellation lands on a frame boundary.
func (m *Mapper) MapFrames(ctx context.Context, r io.Reader) (<-chan Frame, <-chan error) {
	frames := make(chan Frame, m.Buffer)
	errCh := make(chan error, 1)
	log.Debugf("mapper: %dx%d, frame size %d bytes", m.width, m.height, m.frameSize)

	go func() {
		defer close(frames)
		defer close(errCh)

		var n int64
		for {
			buf := make([]byte, m.frameSize)
			read, err := io.ReadFull(r, buf)
			if err == io.EOF {
				log.Debugf("mapper: EOF after %d frames", n)
				return
			}
			if err != nil && err != io.ErrUnexpectedEOF {
				errCh <- errors.Wrapf(ErrStreamRead, "frame %d: %v", n+1, err)
				return
			}
			// a short read is the final frame, make() left the tail zero
			last := err == io.ErrUnexpectedEOF
			log.Debugf("mapper: frame %d, %d bytes read", n+1, read)

			select {
			case frames <- Frame(buf):
				n++
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
			if last {
				return
			}
		}
	}()

	return frames, errCh
}
