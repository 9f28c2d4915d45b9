package smile

import (
	"fmt"
	"math"

	"github.com/tantralabs/vol-smile/models"
	"github.com/tantralabs/vol-smile/utils"
)

// Iv evaluates the Malz quadratic smile approximation at a put delta
// in the open interval (0, 1), where 0.5 is at-the-money:
//
//	iv(d) = atm + 2*rr*(d - 0.5) + 16*fly*(d - 0.5)^2
//
// The parabola is exact only near the three calibration points (25
// delta put, ATM, 25 delta call) and degrades toward the wings; do
// not treat values far from those deltas as market-grade.
func Iv(delta float64, params models.SmileParams) (float64, error) {
	if math.IsNaN(delta) || delta <= 0 || delta >= 1 {
		return math.NaN(), InvalidDomainError{Reason: fmt.Sprintf("delta %v outside (0,1)", delta)}
	}
	if !params.IsComplete() {
		return math.NaN(), InvalidDomainError{Reason: "smile parameters are not well-defined"}
	}
	return malz(delta, params), nil
}

func malz(delta float64, params models.SmileParams) float64 {
	x := delta - 0.5
	return params.AtmIv + 2*params.RiskReversal*x + 16*params.Butterfly*x*x
}

// DeltaGrid builds the inclusive sampling grid [start, end] with the
// given step. The reference grid 0.01..0.99 step 0.01 has 99 points.
func DeltaGrid(start float64, end float64, step float64) []float64 {
	return utils.Arange(start, end, step)
}

// SampleCurve evaluates the smile at each supplied delta, in order.
// Strict mode fails on the first undefined sample. Lenient mode
// keeps going and marks undefined samples with Defined=false and a
// NaN vol; zero is a plausible volatility and is never used as a
// stand-in for "no value". Sampling is deterministic and stateless,
// so repeated calls yield identical sequences.
func SampleCurve(params models.SmileParams, deltas []float64, lenient bool) ([]models.CurvePoint, error) {
	curve := make([]models.CurvePoint, 0, len(deltas))
	for _, delta := range deltas {
		// A malformed delta is a caller bug and is rejected in
		// either mode; leniency only covers undefined parameters.
		if math.IsNaN(delta) || delta <= 0 || delta >= 1 {
			return nil, InvalidDomainError{Reason: fmt.Sprintf("delta %v outside (0,1)", delta)}
		}
		if !params.IsComplete() {
			if !lenient {
				return nil, InvalidDomainError{Reason: "smile parameters are not well-defined"}
			}
			curve = append(curve, models.CurvePoint{Delta: delta, Iv: math.NaN(), Defined: false})
			continue
		}
		curve = append(curve, models.CurvePoint{Delta: delta, Iv: malz(delta, params), Defined: true})
	}
	return curve, nil
}
