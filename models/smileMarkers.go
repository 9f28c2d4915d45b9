package models

import "math"

// The three risk markers extracted from a single expiry's quotes.
// A marker is NaN when its selection set was empty and the extractor
// ran in lenient mode.
type SmileMarkers struct {
	AtmIv    float64
	Call25Iv float64
	Put25Iv  float64
}

func (m SmileMarkers) IsComplete() bool {
	return !math.IsNaN(m.AtmIv) && !math.IsNaN(m.Call25Iv) && !math.IsNaN(m.Put25Iv)
}
