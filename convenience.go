package replaygain

// AnalyzeInterleaved is a convenience function for one-shot analysis of a
// complete interleaved stereo buffer.
func AnalyzeInterleaved(samples []float32, sampleRate int) (Result, error) {
	a, err := New(sampleRate)
	if err != nil {
		return Result{}, err
	}
	a.ProcessSamples(samples)
	return a.Finish(), nil
}

// AnalyzePlanar is a convenience function for one-shot analysis of
// separate left and right channels. It panics if their lengths differ.
func AnalyzePlanar(left, right []float32, sampleRate int) (Result, error) {
	a, err := New(sampleRate)
	if err != nil {
		return Result{}, err
	}
	a.ProcessPlanar(left, right)
	return a.Finish(), nil
}

// AnalyzeAlbum analyzes each interleaved track at the same sample rate and
// returns the per-track results followed by the album result.
func AnalyzeAlbum(tracks [][]float32, sampleRate int) ([]Result, Result, error) {
	album := NewAlbum()
	results := make([]Result, 0, len(tracks))
	for _, t := range tracks {
		r, err := AnalyzeInterleaved(t, sampleRate)
		if err != nil {
			return nil, Result{}, err
		}
		album.Add(r)
		results = append(results, r)
	}
	return results, album.Result(), nil
}

// InterleaveToStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo(left, right []float32) []float32 {
	minLen := min(len(left), len(right))
	result := make([]float32, minLen*stereoChannels)
	for i := range minLen {
		result[i*stereoChannels] = left[i]
		result[i*stereoChannels+1] = right[i]
	}
	return result
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// A trailing odd sample is dropped.
func DeinterleaveFromStereo(interleaved []float32) (left, right []float32) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]float32, numSamples)
	right = make([]float32, numSamples)
	for i := range numSamples {
		left[i] = interleaved[i*stereoChannels]
		right[i] = interleaved[i*stereoChannels+1]
	}
	return left, right
}
