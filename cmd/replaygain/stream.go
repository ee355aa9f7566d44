package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	replaygain "github.com/tphakala/go-replaygain"
)

// analyzeStream reads raw float32 little-endian stereo samples from r in
// reads of up to chunkBytes and returns the track result. Bytes that do
// not complete a sample are carried over to the next read; a partial
// sample at end of input is ignored and counted in the statistics.
func analyzeStream(r io.Reader, rate, chunkBytes int) (replaygain.Result, map[string]int64, error) {
	a, err := replaygain.New(rate)
	if err != nil {
		return replaygain.Result{}, nil, err
	}

	buf := make([]byte, chunkBytes+bytesPerSample)
	samples := make([]float32, 0, len(buf)/bytesPerSample)
	carry := 0

	for {
		n, err := r.Read(buf[carry : carry+chunkBytes])
		n += carry

		whole := n / bytesPerSample * bytesPerSample
		samples = decodeFloat32LE(samples[:0], buf[:whole])
		a.ProcessSamples(samples)

		carry = copy(buf, buf[whole:n])

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return replaygain.Result{}, nil, fmt.Errorf("failed to read input: %w", err)
		}
	}

	res := a.Finish()
	stats := a.GetStatistics()
	stats["trailingBytes"] = int64(carry)

	return res, stats, nil
}

// decodeFloat32LE appends the little-endian float32 values in b to dst.
// len(b) must be a multiple of four.
func decodeFloat32LE(dst []float32, b []byte) []float32 {
	for i := 0; i+bytesPerSample <= len(b); i += bytesPerSample {
		dst = append(dst, math.Float32frombits(binary.LittleEndian.Uint32(b[i:])))
	}
	return dst
}
