package smile

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/tantralabs/vol-smile/models"
)

// Fit refines smile parameters by least squares against observed
// (delta, mid vol) points, seeded from the closed-form values. The
// closed-form parameters match the market exactly only at the three
// calibration deltas; a Nelder-Mead pass over the observed put side
// spreads the error across the whole quoted range instead.
func Fit(seed models.SmileParams, observed []models.CurvePoint) (models.SmileParams, error) {
	if len(observed) == 0 {
		return seed, ErrEmptyInput
	}
	if !seed.IsComplete() {
		return seed, InvalidDomainError{Reason: "cannot fit from undefined seed parameters"}
	}

	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			return mse(paramsFromVector(par), observed)
		},
	}
	result, err := optimize.Minimize(problem, paramsToVector(seed), nil, &optimize.NelderMead{})
	if err != nil {
		return seed, err
	}
	return paramsFromVector(result.X), nil
}

// Mean squared error between the Malz curve and observed vols.
func mse(params models.SmileParams, observed []models.CurvePoint) float64 {
	loss := 0.0
	for i := range observed {
		v := malz(observed[i].Delta, params)
		loss += math.Pow(v-observed[i].Iv, 2)
	}
	return loss / float64(len(observed))
}

func paramsToVector(params models.SmileParams) []float64 {
	return []float64{params.AtmIv, params.RiskReversal, params.Butterfly}
}

func paramsFromVector(par []float64) models.SmileParams {
	return models.SmileParams{AtmIv: par[0], RiskReversal: par[1], Butterfly: par[2]}
}
