package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	replaygain "github.com/tphakala/go-replaygain"
	"github.com/tphakala/go-replaygain/internal/testutil"
)

func encodeFloat32LE(samples []float32) []byte {
	b := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(b[i*bytesPerSample:], math.Float32bits(s))
	}
	return b
}

func TestAnalyzeStream_MatchesLibrary(t *testing.T) {
	samples := testutil.Noise(11, 3*44100, 0.7)
	want, err := replaygain.AnalyzeInterleaved(samples, 44100)
	require.NoError(t, err)

	raw := encodeFloat32LE(samples)

	// Chunk sizes that are not multiples of four split samples across reads.
	for _, chunk := range []int{4, 7, 1001, 65536} {
		got, stats, err := analyzeStream(bytes.NewReader(raw), 44100, chunk)
		require.NoError(t, err, "chunk %d", chunk)
		assert.Equal(t, want.Gain, got.Gain, "chunk %d", chunk)
		assert.Equal(t, want.Peak, got.Peak, "chunk %d", chunk)
		assert.Zero(t, stats["trailingBytes"])
	}
}

func TestAnalyzeStream_OneByteReader(t *testing.T) {
	samples := []float32{0.25, -0.5, 0.125, 0}
	raw := encodeFloat32LE(samples)

	res, _, err := analyzeStream(iotest.OneByteReader(bytes.NewReader(raw)), 8000, 64)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), res.Peak)
}

func TestAnalyzeStream_TrailingBytes(t *testing.T) {
	raw := append(encodeFloat32LE([]float32{0.5, 0.5}), 0x01, 0x02)

	res, stats, err := analyzeStream(bytes.NewReader(raw), 48000, 16)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), res.Peak)
	assert.Equal(t, int64(2), stats["trailingBytes"])
	assert.Equal(t, int64(1), stats["frames"])
}

func TestAnalyzeStream_Empty(t *testing.T) {
	res, _, err := analyzeStream(bytes.NewReader(nil), 44100, 1024)
	require.NoError(t, err)
	assert.Equal(t, replaygain.MaxGain, res.Gain)
	assert.Zero(t, res.Peak)
}

func TestAnalyzeStream_UnsupportedRate(t *testing.T) {
	_, _, err := analyzeStream(bytes.NewReader(nil), 44000, 1024)
	require.ErrorIs(t, err, replaygain.ErrUnsupportedRate)
}

func TestAnalyzeStream_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader(encodeFloat32LE([]float32{0.1})), iotest.ErrReader(boom))

	_, _, err := analyzeStream(r, 44100, 1024)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to read input")
}

func TestDecodeFloat32LE(t *testing.T) {
	want := []float32{1, -1, 0.5, float32(math.Inf(1))}
	got := decodeFloat32LE(nil, encodeFloat32LE(want))
	assert.Equal(t, want, got)
}
