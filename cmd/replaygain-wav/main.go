// Command replaygain-wav computes ReplayGain track and album values for
// stereo PCM WAV files.
//
// Usage:
//
//	replaygain-wav song.wav
//	replaygain-wav -v disc1/*.wav                # track and album values
//	replaygain-wav -parallel=false a.wav b.wav   # analyze one file at a time
//
// Files are analyzed concurrently by default, one analyzer per file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	parallel := flag.Bool("parallel", true, "Analyze files concurrently")
	album := flag.Bool("album", true, "Print album gain and peak when more than one file is given")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	paths := flag.Args()
	if len(paths) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav [input.wav ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s song.wav              # Track gain\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s disc1/*.wav           # Track and album gain\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	if *verbose {
		log.Printf("Files: %d", len(paths))
		if *parallel {
			log.Printf("Parallel: enabled (one analyzer per file)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	tracks, err := analyzeFiles(paths, *parallel, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var seconds float64
	for _, tr := range tracks {
		fmt.Printf("%s\n", filepath.Base(tr.path))
		fmt.Printf("  track_gain = %.2f dB\n", tr.result.Gain)
		fmt.Printf("  track_peak = %.6f (%.2f dBFS)\n", tr.result.Peak, tr.result.PeakDB())
		if *verbose {
			fmt.Printf("  %d Hz, %d-bit, %.2fs\n", tr.rate, tr.bitDepth, tr.duration().Seconds())
		}
		seconds += tr.duration().Seconds()
	}

	if *album && len(tracks) > 1 {
		res := albumResult(tracks)
		fmt.Printf("album_gain = %.2f dB\n", res.Gain)
		fmt.Printf("album_peak = %.6f (%.2f dBFS)\n", res.Peak, res.PeakDB())
	}

	if *verbose {
		log.Printf("Analyzed %.2fs of audio in %.2fs (%.1fx realtime)",
			seconds, elapsed.Seconds(), seconds/elapsed.Seconds())
	}

	return nil
}
