// Package replaygain computes ReplayGain track and album metadata for
// interleaved stereo float32 audio in pure Go.
//
// The analysis reproduces ffmpeg's replaygain filter: every 50 ms frame is
// passed through an equal-loudness filter (a 10th-order Yule-Walker stage
// followed by a 2nd-order Butterworth high-pass), its mean-square energy is
// converted to a level in dB and counted in a 0.01 dB histogram. The track
// loudness is the level that 95% of the frames do not exceed; the gain is
// the difference to the 89 dB SPL reference. The peak is the largest
// absolute raw sample value.
//
// # Quick Start
//
// For streaming analysis:
//
//	a, err := replaygain.New(44100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for chunk := range audioChunks {
//	    a.ProcessSamples(chunk) // any length
//	}
//
//	res := a.Finish()
//	fmt.Printf("track_gain = %.2f dB\n", res.Gain)
//	fmt.Printf("track_peak = %.6f\n", res.Peak)
//
// Callers that already cut their input into frames of exactly
// [Analyzer.FrameSize] samples can use [Analyzer.ProcessFrame] instead.
// The two entry points must not be mixed on one analyzer.
//
// # Supported Sample Rates
//
// 8000, 11025, 12000, 16000, 18900, 22050, 24000, 32000, 37800, 44100,
// 48000, 56000, 64000, 88200, 96000, 112000, 128000, 144000, 176400 and
// 192000 Hz. Any other rate is rejected by [New] with [ErrUnsupportedRate].
//
// # Album Gain
//
// [Album] combines the results of several finished tracks into album gain
// and peak:
//
//	album := replaygain.NewAlbum()
//	for _, track := range tracks {
//	    album.Add(track)
//	}
//	res := album.Result()
//
// # Errors and Panics
//
// An unsupported sample rate is an ordinary error. Misusing the API is not:
// a wrong frame length on [Analyzer.ProcessFrame], calling it while
// [Analyzer.ProcessSamples] holds pending samples, or any call after
// [Analyzer.Finish] panics.
//
// # Thread Safety
//
// An [Analyzer] is not safe for concurrent use. Independent analyzers share
// no mutable state and may run in parallel.
package replaygain
