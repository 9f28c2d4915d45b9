package models

import "math"

// Parameters of the Malz quadratic smile approximation.
type SmileParams struct {
	AtmIv        float64
	RiskReversal float64
	Butterfly    float64
}

func (p SmileParams) IsComplete() bool {
	return !math.IsNaN(p.AtmIv) && !math.IsNaN(p.RiskReversal) && !math.IsNaN(p.Butterfly)
}
