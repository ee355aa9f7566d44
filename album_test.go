package replaygain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-replaygain/internal/testutil"
)

func TestAlbum_Empty(t *testing.T) {
	album := NewAlbum()
	res := album.Result()

	assert.Equal(t, MaxGain, res.Gain)
	assert.Zero(t, res.Peak)
	assert.Zero(t, res.Windows())
	assert.Zero(t, album.Tracks())
}

func TestAlbum_SingleTrackMatchesTrack(t *testing.T) {
	samples := testutil.StereoSine(220, RateDAT, 0.3, 0, RateDAT*2)
	track, err := AnalyzeInterleaved(samples, RateDAT)
	require.NoError(t, err)

	album := NewAlbum()
	album.Add(track)
	res := album.Result()

	assert.Equal(t, track.Gain, res.Gain)
	assert.Equal(t, track.Peak, res.Peak)
	assert.Equal(t, track.Windows(), res.Windows())
}

func TestAlbum_CombinesTracks(t *testing.T) {
	const pairs = RateCD * 3

	tracks := [][]float32{
		testutil.StereoSine(1000, RateCD, 0.8, 0, pairs),
		testutil.StereoSine(1000, RateCD, 0.1, 0, pairs),
		testutil.StereoSine(1000, RateCD, 0.1, 0, pairs),
	}

	results, album, err := AnalyzeAlbum(tracks, RateCD)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Peak is the loudest track's peak.
	assert.Equal(t, results[0].Peak, album.Peak)

	// Album loudness lies between the quietest and loudest track.
	assert.GreaterOrEqual(t, album.Gain, results[0].Gain)
	assert.LessOrEqual(t, album.Gain, results[1].Gain)

	// The loud track holds a third of the windows, more than 5%, so the
	// album is measured at its level.
	assert.InDelta(t, results[0].Gain, album.Gain, testutil.BinTolerance)

	var windows uint64
	for _, r := range results {
		windows += r.Windows()
	}
	assert.Equal(t, windows, album.Windows())
}

func TestAlbum_ResultIsSnapshot(t *testing.T) {
	track, err := AnalyzeInterleaved(testutil.Noise(3, 8000, 0.5), RateTelephony)
	require.NoError(t, err)

	album := NewAlbum()
	album.Add(track)
	first := album.Result()
	album.Add(track)

	assert.Equal(t, track.Windows(), first.Windows())
	assert.Equal(t, 2*track.Windows(), album.Result().Windows())
	assert.Equal(t, 2, album.Tracks())
}

func TestAlbum_ZeroResult(t *testing.T) {
	album := NewAlbum()
	album.Add(Result{Peak: 0.5})

	res := album.Result()
	assert.Equal(t, float32(0.5), res.Peak)
	assert.Equal(t, MaxGain, res.Gain)
}

func TestAnalyze_UnsupportedRate(t *testing.T) {
	_, err := AnalyzeInterleaved(nil, 1234)
	require.ErrorIs(t, err, ErrUnsupportedRate)

	_, err = AnalyzePlanar(nil, nil, 1234)
	require.ErrorIs(t, err, ErrUnsupportedRate)

	_, _, err = AnalyzeAlbum([][]float32{nil}, 1234)
	require.ErrorIs(t, err, ErrUnsupportedRate)
}
