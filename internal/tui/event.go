package tui

import "fmt"

type eventType int

const (
	eventTypeStage eventType = iota
	eventTypeFrames
	eventTypeDone
)

// Event is one pipeline status update for the terminal widget.
type Event struct {
	eventType eventType
	text      string
	done      int64
	total     int64
}

// NewEventStage marks the start of a pipeline stage, shown as a spinner.
func NewEventStage(text string) Event {
	return Event{
		eventType: eventTypeStage,
		text:      text,
	}
}

// NewEventFrames reports how many frames of the run have been handed to
// the encoder, shown as a progress bar.
func NewEventFrames(done, total int64) Event {
	return Event{
		eventType: eventTypeFrames,
		done:      done,
		total:     total,
	}
}

// NewEventDone shows the final result line.
func NewEventDone(text string) Event {
	return Event{
		eventType: eventTypeDone,
		text:      text,
	}
}

func (e Event) title() string {
	if e.eventType == eventTypeFrames {
		return fmt.Sprintf("Encoding frame %d/%d...", e.done, e.total)
	}
	return e.text
}

func (e Event) percent() float64 {
	if e.total <= 0 {
		return 0
	}
	return float64(e.done) / float64(e.total)
}
