package engine

// Peak tracks the largest absolute raw sample value seen so far.
// The value never decreases. NaN samples are ignored because no
// comparison with them succeeds.
type Peak struct {
	value float32
}

// Observe updates the peak from interleaved samples.
func (p *Peak) Observe(samples []float32) {
	peak := p.value
	for _, s := range samples {
		if s > peak {
			peak = s
		} else if -s > peak {
			peak = -s
		}
	}
	p.value = peak
}

// Value returns the current peak.
func (p *Peak) Value() float32 {
	return p.value
}
