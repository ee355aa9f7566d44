package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameLog copies every dispatched frame.
type frameLog struct {
	frames [][]float32
}

func (l *frameLog) dispatch(frame []float32) {
	l.frames = append(l.frames, append([]float32(nil), frame...))
}

func ramp(n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(i + 1)
	}
	return s
}

func TestAssembler_ExactFrames(t *testing.T) {
	var log frameLog
	a := NewAssembler(4, log.dispatch)

	a.Write(ramp(12))

	require.Len(t, log.frames, 3)
	assert.Equal(t, []float32{1, 2, 3, 4}, log.frames[0])
	assert.Equal(t, []float32{9, 10, 11, 12}, log.frames[2])
	assert.Zero(t, a.Pending())

	stats := a.GetStatistics()
	assert.Equal(t, int64(3), stats["framesDirect"])
	assert.Equal(t, int64(0), stats["framesBuffered"])
}

func TestAssembler_TopUpThenDirect(t *testing.T) {
	var log frameLog
	a := NewAssembler(4, log.dispatch)
	input := ramp(15)

	a.Write(input[:3])
	assert.Empty(t, log.frames)
	assert.Equal(t, 3, a.Pending())

	a.Write(input[3:15])

	require.Len(t, log.frames, 3)
	assert.Equal(t, []float32{1, 2, 3, 4}, log.frames[0])
	assert.Equal(t, []float32{5, 6, 7, 8}, log.frames[1])
	assert.Equal(t, []float32{9, 10, 11, 12}, log.frames[2])
	assert.Equal(t, 3, a.Pending())

	stats := a.GetStatistics()
	assert.Equal(t, int64(2), stats["framesDirect"])
	assert.Equal(t, int64(1), stats["framesBuffered"])
	assert.Equal(t, int64(3), stats["pending"])
}

func TestAssembler_SmallWritesAccumulate(t *testing.T) {
	var log frameLog
	a := NewAssembler(5, log.dispatch)

	for _, v := range ramp(11) {
		a.Write([]float32{v})
		assert.Less(t, a.Pending(), 5)
	}
	a.Write(nil)

	require.Len(t, log.frames, 2)
	assert.Equal(t, []float32{6, 7, 8, 9, 10}, log.frames[1])
	assert.Equal(t, 1, a.Pending())
}

func TestAssembler_ChunkingInvariance(t *testing.T) {
	input := ramp(103)

	var want frameLog
	ref := NewAssembler(7, want.dispatch)
	ref.Write(input)
	ref.Flush()

	for _, size := range []int{1, 2, 3, 6, 7, 8, 13, 50, 103} {
		var got frameLog
		a := NewAssembler(7, got.dispatch)
		for off := 0; off < len(input); off += size {
			a.Write(input[off:min(off+size, len(input))])
		}
		a.Flush()

		assert.Equal(t, want.frames, got.frames, "chunk size %d", size)
	}
}

func TestAssembler_DirectFramesAreNotCopied(t *testing.T) {
	input := ramp(8)

	var seen [][]float32
	a := NewAssembler(4, func(frame []float32) {
		seen = append(seen, frame)
	})
	a.Write(input)

	require.Len(t, seen, 2)
	assert.Same(t, &input[0], &seen[0][0])
	assert.Same(t, &input[4], &seen[1][0])

	// The capacity is capped so a callee cannot append into the input.
	assert.Equal(t, 4, cap(seen[0]))
}

func TestAssembler_FlushPadsWithZeros(t *testing.T) {
	var log frameLog
	a := NewAssembler(4, log.dispatch)

	a.Write([]float32{1, 2, 3, 4, 5})
	a.Flush()

	require.Len(t, log.frames, 2)
	assert.Equal(t, []float32{5, 0, 0, 0}, log.frames[1])
	assert.Zero(t, a.Pending())
}

func TestAssembler_FlushAfterReuseClearsStaleSamples(t *testing.T) {
	var log frameLog
	a := NewAssembler(4, log.dispatch)

	a.Write([]float32{9, 9, 9})
	a.Write([]float32{9})
	a.Write([]float32{1})
	a.Flush()

	require.Len(t, log.frames, 2)
	assert.Equal(t, []float32{1, 0, 0, 0}, log.frames[1])
}

func TestAssembler_FlushEmpty(t *testing.T) {
	var log frameLog
	a := NewAssembler(3, log.dispatch)
	a.Flush()

	require.Len(t, log.frames, 1)
	assert.Equal(t, []float32{0, 0, 0}, log.frames[0])
}

func TestNewAssembler_Invalid(t *testing.T) {
	assert.Panics(t, func() { NewAssembler(0, func([]float32) {}) })
	assert.Panics(t, func() { NewAssembler(4, nil) })
	assert.Equal(t, 4, NewAssembler(4, func([]float32) {}).FrameSize())
}
