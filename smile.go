package smile

import (
	"sort"

	"github.com/fatih/structs"

	"github.com/tantralabs/vol-smile/logger"
	"github.com/tantralabs/vol-smile/models"
	"github.com/tantralabs/vol-smile/settings"
	"github.com/tantralabs/vol-smile/utils"
)

// A constructed smile for one expiry: the extracted markers, the
// derived Malz parameters, the sampled approximation curve and the
// observed put-side points for overlay comparison.
type Smile struct {
	Expiry   int
	Markers  models.SmileMarkers
	Params   models.SmileParams
	Curve    []models.CurvePoint
	Observed []models.CurvePoint
}

// Build runs the full construction pipeline on a raw quote snapshot:
// expiry selection, normalization, marker extraction, parameter
// derivation and curve sampling. Exactly one expiry's quotes are ever
// in scope; mixing maturities would silently corrupt the markers, so
// the filter happens before anything is aggregated.
func Build(quotes []models.Quote, config settings.Config) (Smile, error) {
	var result Smile

	expiry, err := SelectExpiry(quotes, ExpiryPolicy(config.ExpiryPolicy), config.TargetExpiry)
	if err != nil {
		return result, err
	}
	logger.Infof("Building smile for expiry %v (%v quotes in snapshot)", utils.TimestampToTime(expiry), len(quotes))

	normalized, err := Normalize(quotes, expiry)
	if err != nil {
		return result, err
	}

	markers, err := ExtractMarkers(normalized, MarkerConfig{AtmWindow: config.AtmWindow, Lenient: config.Lenient})
	if err != nil {
		return result, err
	}
	logger.Debugf("Extracted markers: %v", structs.Map(markers))

	params := CalcParams(markers)
	logger.Infof("Smile params: atm %.4f, rr %.4f, fly %.4f", params.AtmIv, params.RiskReversal, params.Butterfly)

	grid := DeltaGrid(config.GridStart, config.GridEnd, config.GridStep)
	curve, err := SampleCurve(params, grid, config.Lenient)
	if err != nil {
		return result, err
	}

	result = Smile{
		Expiry:   expiry,
		Markers:  markers,
		Params:   params,
		Curve:    curve,
		Observed: ObservedPutCurve(normalized),
	}
	return result, nil
}

// ObservedPutCurve extracts the put-side (|delta|, mid vol) points
// from a normalized quote set, ordered by delta, for comparison
// against the sampled approximation.
func ObservedPutCurve(quotes []models.MidVolQuote) []models.CurvePoint {
	var observed []models.CurvePoint
	for i := range quotes {
		if quotes[i].Side != models.Put {
			continue
		}
		delta := quotes[i].Delta
		if delta < 0 {
			delta = -delta
		}
		observed = append(observed, models.CurvePoint{Delta: delta, Iv: quotes[i].MidIv, Defined: true})
	}
	sort.Slice(observed, func(i, j int) bool {
		return observed[i].Delta < observed[j].Delta
	})
	return observed
}
