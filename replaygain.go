package replaygain

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-replaygain/internal/engine"
	"github.com/tphakala/go-replaygain/internal/filter"
	"github.com/tphakala/go-replaygain/internal/pipeline"
	"github.com/tphakala/go-replaygain/internal/simdops"
)

// ErrUnsupportedRate is returned by New for sample rates without a
// coefficient set.
var ErrUnsupportedRate = errors.New("unsupported sample rate")

// ReferenceLoudness is the level in dB a track must measure to need no
// gain adjustment.
const ReferenceLoudness = engine.ReferenceLoudness

// MaxGain is the gain reported for a track that never rises above the
// histogram floor, including an all-silent track.
var MaxGain = engine.MaxGain(engine.ReferenceLoudness)

// state tracks the analyzer lifecycle.
type state int

const (
	stateAccumulating state = iota
	stateFinished
)

// Analyzer measures the ReplayGain loudness and peak of one stereo stream.
//
// Feed samples with ProcessSamples (any chunk length) or ProcessFrame
// (exactly FrameSize samples), then call Finish once. An Analyzer is not
// safe for concurrent use.
type Analyzer struct {
	rate      int
	engine    *engine.Analyzer
	assembler *pipeline.Assembler
	state     state

	// planar holds at most one frame of interleaved samples for ProcessPlanar
	planar []float32
}

// New creates an analyzer for the given sample rate in Hz.
// It returns an error wrapping ErrUnsupportedRate for any rate without a
// coefficient set; there is no nearest-rate fallback.
func New(sampleRate int) (*Analyzer, error) {
	p, ok := filter.Lookup(sampleRate)
	if !ok {
		return nil, fmt.Errorf("%w: %d Hz", ErrUnsupportedRate, sampleRate)
	}

	eng := engine.NewAnalyzer(p)
	return &Analyzer{
		rate:      sampleRate,
		engine:    eng,
		assembler: pipeline.NewAssembler(eng.FrameSize(), eng.ProcessFrame),
	}, nil
}

// SupportedRates returns every accepted sample rate in ascending order.
func SupportedRates() []int {
	return filter.SupportedRates()
}

// SampleRate returns the sample rate the analyzer was created for.
func (a *Analyzer) SampleRate() int {
	return a.rate
}

// FrameSize returns the number of interleaved samples (two per stereo pair)
// in one 50 ms analysis frame.
func (a *Analyzer) FrameSize() int {
	return a.engine.FrameSize()
}

// Pending returns the number of samples buffered by ProcessSamples that do
// not yet fill a frame.
func (a *Analyzer) Pending() int {
	return a.assembler.Pending()
}

// ProcessFrame analyzes exactly one frame of interleaved stereo samples.
//
// It panics if len(frame) != FrameSize, if ProcessSamples left samples
// pending, or if the analyzer is finished.
func (a *Analyzer) ProcessFrame(frame []float32) {
	a.mustAccumulate("ProcessFrame")
	if len(frame) != a.FrameSize() {
		panic(fmt.Sprintf("replaygain: ProcessFrame got %d samples, want %d", len(frame), a.FrameSize()))
	}
	if a.assembler.Pending() > 0 {
		panic("replaygain: ProcessFrame called with samples pending from ProcessSamples")
	}
	a.engine.ProcessFrame(frame)
}

// ProcessSamples analyzes interleaved stereo samples of any length.
// Splitting a stream into different chunk sizes gives the same result.
// It panics if the analyzer is finished.
func (a *Analyzer) ProcessSamples(samples []float32) {
	a.mustAccumulate("ProcessSamples")
	a.assembler.Write(samples)
}

// ProcessPlanar interleaves the left and right channels and analyzes them
// like ProcessSamples. It panics if the channel lengths differ or the
// analyzer is finished.
func (a *Analyzer) ProcessPlanar(left, right []float32) {
	a.mustAccumulate("ProcessPlanar")
	if len(left) != len(right) {
		panic(fmt.Sprintf("replaygain: ProcessPlanar channel lengths differ (%d != %d)", len(left), len(right)))
	}
	pairs := a.FrameSize() / stereoChannels
	for len(left) > 0 {
		n := min(pairs, len(left))
		a.planar = simdops.Interleave2(a.planar, left[:n], right[:n])
		a.assembler.Write(a.planar)
		left, right = left[n:], right[n:]
	}
}

// Finish zero-pads any pending samples to a final frame, analyzes it and
// returns the track result. The analyzer cannot be used afterwards: every
// later call, including Finish, panics.
func (a *Analyzer) Finish() Result {
	a.mustAccumulate("Finish")
	a.assembler.Flush()
	a.state = stateFinished

	return Result{
		Gain:      a.engine.Gain(),
		Peak:      a.engine.Peak(),
		histogram: a.engine.Histogram().Clone(),
	}
}

// GetStatistics returns processing statistics.
func (a *Analyzer) GetStatistics() map[string]int64 {
	stats := a.engine.GetStatistics()
	for k, v := range a.assembler.GetStatistics() {
		stats[k] = v
	}
	return stats
}

func (a *Analyzer) mustAccumulate(op string) {
	if a.state == stateFinished {
		panic("replaygain: " + op + " called after Finish")
	}
}
