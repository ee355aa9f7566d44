// Command analyze-weighting prints the magnitude response of the
// equal-loudness filter used for a sample rate.
//
// Usage:
//
//	analyze-weighting -rate 44100
//	analyze-weighting -rate 37800 -n 16384 -all
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/tphakala/go-replaygain/internal/filter"
)

const (
	// Default analysis parameters
	defaultRate = 44100
	defaultLen  = 8192 // impulse response length in samples

	kHzToHz = 1000.0
)

// summaryFreqs are the frequencies printed in the summary table, in Hz.
var summaryFreqs = []float64{20, 50, 100, 150, 200, 500, 1000, 2000, 3000, 4000, 6000, 8000, 10000, 15000, 20000}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Sample rate in Hz")
	n := flag.Int("n", defaultLen, "Impulse response length (FFT size)")
	all := flag.Bool("all", false, "Print every FFT bin instead of the summary")
	flag.Parse()

	p, ok := filter.Lookup(*rate)
	if !ok {
		return fmt.Errorf("unsupported sample rate %d Hz (supported: %v)", *rate, filter.SupportedRates())
	}

	resp, err := filter.MagnitudeResponse(p, *n)
	if err != nil {
		return err
	}

	fmt.Printf("=== Equal-loudness filter, %d Hz ===\n", p.Rate)
	fmt.Printf("Frame: %d pairs (%d samples)\n", p.FrameLength(), p.FrameSize())
	fmt.Printf("Yule-Walker order: %d, Butterworth order: %d\n\n", p.Yule.Order(), p.Butter.Order())

	if *all {
		fmt.Println("   Freq (Hz)    Measured (dB)")
		for i, f := range resp.Freqs {
			fmt.Printf("  %10.1f  %14.4f\n", f, resp.MagnitudeDB[i])
		}
		return nil
	}

	nyquist := float64(p.Rate) / 2
	binWidth := float64(p.Rate) / float64(*n)

	fmt.Println("   Freq (Hz)    Analytic (dB)   Measured (dB)")
	var maxDiff float64
	for _, f := range summaryFreqs {
		if f >= nyquist {
			break
		}
		bin := int(math.Round(f / binWidth))
		binFreq := resp.Freqs[bin]
		analytic := filter.ResponseAt(p, binFreq)
		measured := resp.MagnitudeDB[bin]
		maxDiff = math.Max(maxDiff, math.Abs(measured-analytic))
		fmt.Printf("  %10.1f  %14.4f  %14.4f\n", binFreq, analytic, measured)
	}

	fmt.Printf("\nNyquist: %.1f kHz, bin width: %.2f Hz\n", nyquist/kHzToHz, binWidth)
	fmt.Printf("Max deviation of measured response: %.4f dB\n", maxDiff)

	return nil
}
