package filter

import "math"

// Stage is one direct-form IIR section running over interleaved stereo
// samples. Both channels share one pair of history buffers: even slots
// hold the left channel, odd slots the right.
//
// The recursion for each channel is
//
//	y[n] = b0*x[n] + (b1*x[n-1] - a1*y[n-1] + ... + bN*x[n-N] - aN*y[n-N])
//
// summed left to right in float64. Outputs are rounded to float32 and the
// rounded value is what the feedback path sees.
type Stage struct {
	coeffs *Coefficients
	order  int

	in  [historyLen]float64 // input history
	out [historyLen]float64 // output history
	pos int                 // next write index (left channel)
}

// NewStage creates a stage with zeroed history.
// The coefficients are shared, not copied.
func NewStage(c *Coefficients) *Stage {
	order := c.Order()
	if order < 1 || len(c.A) != len(c.B) || channels*order >= historyLen {
		panic("filter: invalid stage coefficients")
	}
	return &Stage{
		coeffs: c,
		order:  order,
		pos:    channels * order,
	}
}

// Process filters interleaved stereo samples from src into dst.
// dst may alias src. A trailing odd sample is ignored.
//
// Each call starts by clearing a history that has decayed to silence, so
// callers that need reproducible results must call Process with the same
// block boundaries. The analysis engine always passes whole frames.
func (s *Stage) Process(dst, src []float32) {
	s.flushDenormals()

	lookback := channels * s.order
	i := s.pos

	for n := 0; n+1 < len(src); n += channels {
		s.in[i] = float64(src[n])
		s.in[i+1] = float64(src[n+1])

		dst[n] = s.step(i)
		dst[n+1] = s.step(i + 1)

		if i += channels; i == historyLen {
			copy(s.in[:lookback], s.in[historyLen-lookback:])
			copy(s.out[:lookback], s.out[historyLen-lookback:])
			i = lookback
		}
	}

	s.pos = i
}

// step evaluates one output sample for the channel whose newest input
// sits at index i. Explicit float64 conversions keep every product
// rounded on its own so no fused multiply-add changes the result.
func (s *Stage) step(i int) float32 {
	b, a := s.coeffs.B, s.coeffs.A

	acc := float64(b[1]*s.in[i-channels]) - float64(a[1]*s.out[i-channels])
	for k := 2; k <= s.order; k++ {
		acc += float64(b[k] * s.in[i-channels*k])
		acc -= float64(a[k] * s.out[i-channels*k])
	}

	y := float32(float64(b[0]*s.in[i]) + acc)
	s.out[i] = float64(y)
	return y
}

// flushDenormals clears the whole history when every live entry is
// within ±denormalThreshold. The comparison runs in float32, where the
// threshold rounds up to about 1.0000000133e-10.
func (s *Stage) flushDenormals() {
	const threshold = float32(denormalThreshold)
	for j := s.pos - channels*s.order; j < s.pos; j++ {
		if float32(math.Abs(s.in[j])) > threshold || float32(math.Abs(s.out[j])) > threshold {
			return
		}
	}
	clear(s.in[:])
	clear(s.out[:])
}

// Reset zeroes the history.
func (s *Stage) Reset() {
	clear(s.in[:])
	clear(s.out[:])
	s.pos = channels * s.order
}

// EqualLoudness is the two-stage cascade applied to every frame:
// the Yule-Walker stage followed by the Butterworth high-pass.
type EqualLoudness struct {
	yule   *Stage
	butter *Stage
}

// NewEqualLoudness creates a cascade for the given profile.
func NewEqualLoudness(p *Profile) *EqualLoudness {
	return &EqualLoudness{
		yule:   NewStage(&p.Yule),
		butter: NewStage(&p.Butter),
	}
}

// Process filters interleaved stereo samples from src into dst.
// dst must be at least len(src) long and may alias src.
func (f *EqualLoudness) Process(dst, src []float32) {
	dst = dst[:len(src)]
	f.yule.Process(dst, src)
	f.butter.Process(dst, dst)
}

// Reset zeroes both stages.
func (f *EqualLoudness) Reset() {
	f.yule.Reset()
	f.butter.Reset()
}
