// Package pipeline buffers arbitrarily sized sample chunks into fixed-size
// analysis frames.
package pipeline

import "fmt"

// FrameFunc receives one complete frame. The slice is only valid for the
// duration of the call and may point into the caller's input.
type FrameFunc func(frame []float32)

// Assembler cuts a stream of interleaved samples into frames of a fixed
// size and hands each completed frame to a FrameFunc.
//
// Between calls it holds fewer than one frame of pending samples. Splitting
// the same stream into different chunk sizes dispatches the same sequence
// of frames. It is not safe for concurrent use.
type Assembler struct {
	frameSize int
	pending   []float32 // len < frameSize between calls, cap == frameSize
	dispatch  FrameFunc

	// Statistics
	framesDirect   int64 // frames dispatched straight from the input
	framesBuffered int64 // frames dispatched from the pending buffer
}

// NewAssembler creates an assembler for frames of frameSize samples.
func NewAssembler(frameSize int, dispatch FrameFunc) *Assembler {
	if frameSize < 1 {
		panic(fmt.Sprintf("pipeline: invalid frame size %d", frameSize))
	}
	if dispatch == nil {
		panic("pipeline: nil frame func")
	}
	return &Assembler{
		frameSize: frameSize,
		pending:   make([]float32, 0, frameSize),
		dispatch:  dispatch,
	}
}

// FrameSize returns the frame size in samples.
func (a *Assembler) FrameSize() int {
	return a.frameSize
}

// Pending returns the number of buffered samples waiting for a full frame.
func (a *Assembler) Pending() int {
	return len(a.pending)
}

// Write consumes samples of any length, dispatching every frame completed.
//
// A partially filled pending buffer is topped up first. Whole frames left
// in the input are dispatched in place without copying, and the remaining
// tail is copied into the pending buffer.
func (a *Assembler) Write(samples []float32) {
	if len(a.pending) > 0 {
		need := a.frameSize - len(a.pending)
		if len(samples) < need {
			a.pending = append(a.pending, samples...)
			return
		}

		a.pending = append(a.pending, samples[:need]...)
		a.dispatch(a.pending)
		a.pending = a.pending[:0]
		a.framesBuffered++
		samples = samples[need:]
	}

	for len(samples) >= a.frameSize {
		a.dispatch(samples[:a.frameSize:a.frameSize])
		a.framesDirect++
		samples = samples[a.frameSize:]
	}

	a.pending = append(a.pending, samples...)
}

// Flush zero-pads the pending samples to a full frame and dispatches it.
// A frame is dispatched even when nothing is pending.
func (a *Assembler) Flush() {
	n := len(a.pending)
	a.pending = a.pending[:a.frameSize]
	clear(a.pending[n:])

	a.dispatch(a.pending)
	a.framesBuffered++
	a.pending = a.pending[:0]
}

// GetStatistics returns dispatch statistics.
func (a *Assembler) GetStatistics() map[string]int64 {
	return map[string]int64{
		"framesDirect":   a.framesDirect,
		"framesBuffered": a.framesBuffered,
		"pending":        int64(len(a.pending)),
	}
}
