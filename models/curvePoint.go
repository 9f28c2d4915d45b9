package models

// One sampled point of a smile curve. Delta is the absolute put delta
// as a fraction. Defined is false when the sample could not be computed
// (NaN parameters in lenient mode); Iv is NaN in that case, never a
// coerced zero.
type CurvePoint struct {
	Delta   float64 `csv:"delta"`
	Iv      float64 `csv:"iv"`
	Defined bool    `csv:"defined"`
}
