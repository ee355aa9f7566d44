package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	replaygain "github.com/tphakala/go-replaygain"
	"github.com/tphakala/go-replaygain/internal/simdops"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
// Only stereo integer PCM at 16, 24 or 32 bits is accepted.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	info := &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}

	if verbose {
		log.Printf("%s: %d Hz, %d channels, %d-bit", path, info.rate, info.channels, info.bitDepth)
	}

	if err := info.validate(); err != nil {
		_ = inputFile.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return info, nil
}

func (w *wavInputInfo) validate() error {
	if w.decoder.WavAudioFormat != wavFormatPCM {
		return fmt.Errorf("unsupported WAV format tag %d (integer PCM only)", w.decoder.WavAudioFormat)
	}
	if w.channels != stereoChannels {
		return fmt.Errorf("unsupported channel count %d (stereo only)", w.channels)
	}
	if getFullScale(w.bitDepth) == 0 {
		return fmt.Errorf("unsupported bit depth %d", w.bitDepth)
	}
	return nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// getFullScale returns the integer value that maps to 1.0 for a bit depth,
// or 0 for unsupported depths.
func getFullScale(bitDepth int) float32 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return 0
	}
}

// trackReport is the analysis of one file.
type trackReport struct {
	path     string
	rate     int
	bitDepth int
	pairs    int64
	result   replaygain.Result
}

// duration returns the analyzed length of the track.
func (t *trackReport) duration() time.Duration {
	if t.rate == 0 {
		return 0
	}
	return time.Duration(float64(t.pairs) / float64(t.rate) * float64(time.Second))
}

// analyzeWAV decodes a stereo WAV file and returns its ReplayGain values.
func analyzeWAV(path string, verbose bool) (*trackReport, error) {
	input, err := openWAVInput(path, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	analyzer, err := replaygain.New(input.rate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	intBuffer := &audio.IntBuffer{
		Data:   make([]int, bufferSize),
		Format: input.format,
	}
	samples := make([]float32, bufferSize)
	invScale := 1 / getFullScale(input.bitDepth)

	var total int64
	for {
		n, err := input.decoder.PCMBuffer(intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		convertPCM(samples[:n], intBuffer.Data[:n], invScale)
		analyzer.ProcessSamples(samples[:n])
		total += int64(n)
	}

	return &trackReport{
		path:     path,
		rate:     input.rate,
		bitDepth: input.bitDepth,
		pairs:    total / stereoChannels,
		result:   analyzer.Finish(),
	}, nil
}

// convertPCM converts integer PCM into float32 samples scaled to [-1, 1).
func convertPCM(dst []float32, src []int, invScale float32) {
	for i, v := range src {
		dst[i] = float32(v)
	}
	simdops.Scale(dst, dst, invScale)
}

// analyzeFiles analyzes every path and returns the reports in input order.
// In parallel mode each file gets its own goroutine and analyzer; the first
// error wins.
func analyzeFiles(paths []string, parallel, verbose bool) ([]*trackReport, error) {
	reports := make([]*trackReport, len(paths))

	if !parallel || len(paths) == 1 {
		for i, p := range paths {
			r, err := analyzeWAV(p, verbose)
			if err != nil {
				return nil, err
			}
			reports[i] = r
		}
		return reports, nil
	}

	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for i, p := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()
			r, err := analyzeWAV(path, verbose)
			if err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = err
				}
				errMu.Unlock()
				return
			}
			reports[index] = r
		}(i, p)
	}
	wg.Wait()

	if processErr != nil {
		return nil, processErr
	}

	return reports, nil
}

// albumResult combines the track results into album gain and peak.
func albumResult(tracks []*trackReport) replaygain.Result {
	album := replaygain.NewAlbum()
	for _, t := range tracks {
		album.Add(t.result)
	}
	return album.Result()
}
