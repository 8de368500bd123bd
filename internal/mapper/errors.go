package mapper

import "github.com/pkg/errors"

var (
	// ErrInvalidResolution is returned for non-positive frame dimensions.
	// Dimensions come from collaborators, so this is checked, not assumed.
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrInvalidFrameRate is returned for a non-positive fps.
	ErrInvalidFrameRate = errors.New("invalid frame rate")

	// ErrStreamRead means the source became unreadable mid-mapping.
	// Frames already sent downstream are not retracted.
	ErrStreamRead = errors.New("stream read failed")
)
