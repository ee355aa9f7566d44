package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-replaygain/internal/mathutil"
)

// Response is a sampled magnitude response of the equal-loudness cascade.
type Response struct {
	// Freqs holds the bin centre frequencies in Hz, from DC to Nyquist.
	Freqs []float64

	// MagnitudeDB holds the magnitude at each frequency in dB.
	MagnitudeDB []float64
}

// MagnitudeResponse measures the cascade by running an n-sample impulse
// through a fresh filter and transforming the left channel's output.
// The result has n/2+1 points.
//
// This exercises the same Stage code the analyzer runs, including the
// float32 rounding of the outputs, so the floor of the measurement sits
// around -140 dB.
func MagnitudeResponse(p *Profile, n int) (*Response, error) {
	if n < minResponseLen {
		return nil, fmt.Errorf("impulse response length %d too short (min %d)", n, minResponseLen)
	}

	impulse := make([]float32, n*channels)
	impulse[0] = 1
	impulse[1] = 1

	filtered := make([]float32, n*channels)
	NewEqualLoudness(p).Process(filtered, impulse)

	left := make([]float64, n)
	for i := range left {
		left[i] = float64(filtered[i*channels])
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, left)

	resp := &Response{
		Freqs:       make([]float64, len(coeffs)),
		MagnitudeDB: make([]float64, len(coeffs)),
	}
	for i, c := range coeffs {
		resp.Freqs[i] = fft.Freq(i) * float64(p.Rate)
		resp.MagnitudeDB[i] = mathutil.AmplitudeToDB(cmplx.Abs(c))
	}

	return resp, nil
}

// ResponseAt evaluates the cascade's transfer function analytically at
// freq Hz and returns its magnitude in dB.
func ResponseAt(p *Profile, freq float64) float64 {
	z := cmplx.Exp(complex(0, -2*math.Pi*freq/float64(p.Rate)))
	h := transfer(&p.Yule, z) * transfer(&p.Butter, z)
	return mathutil.AmplitudeToDB(cmplx.Abs(h))
}

// transfer evaluates B(z)/A(z) with z already set to e^{-jω}.
func transfer(c *Coefficients, z complex128) complex128 {
	var num, den complex128
	zk := complex(1, 0)
	for k := range c.B {
		num += complex(c.B[k], 0) * zk
		den += complex(c.A[k], 0) * zk
		zk *= z
	}
	return num / den
}
