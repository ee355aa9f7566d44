// Command replaygain prints the ReplayGain track gain and peak of raw
// interleaved stereo float32 little-endian PCM read from standard input.
//
// Usage:
//
//	ffmpeg -i song.flac -f f32le -ac 2 -ar 44100 - | replaygain -rate 44100
//	replaygain -rate 48000 -chunk 16384 -v < audio.f32
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	replaygain "github.com/tphakala/go-replaygain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Sample rate of the input in Hz")
	chunk := flag.Int("chunk", defaultChunkBytes, "Read size in bytes")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *chunk < bytesPerSample {
		return fmt.Errorf("chunk size must be at least %d bytes", bytesPerSample)
	}

	if *verbose {
		log.Printf("Sample rate: %d Hz", *rate)
		log.Printf("Read size: %d bytes", *chunk)
	}

	res, stats, err := analyzeStream(os.Stdin, *rate, *chunk)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Frames: %d (%d buffered, %d direct)",
			stats["frames"], stats["framesBuffered"], stats["framesDirect"])
		log.Printf("Samples: %d", stats["samples"])
		if stats["trailingBytes"] > 0 {
			log.Printf("Ignored %d trailing bytes", stats["trailingBytes"])
		}
	}

	fmt.Printf("track_gain = %v dB\n", res.Gain)
	fmt.Printf("track_peak = %v\n", res.Peak)

	return nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] < input.f32\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reads interleaved stereo float32 little-endian samples from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSupported rates: %v\n", replaygain.SupportedRates())
	}
}
