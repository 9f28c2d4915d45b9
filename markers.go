package smile

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tantralabs/vol-smile/models"
)

// MarkerConfig tunes marker extraction. AtmWindow is the absolute
// price distance from the mean underlying price inside which a quote
// counts as at-the-money; it is an absolute currency amount, not a
// percentage, and should be scaled to the instrument.
type MarkerConfig struct {
	AtmWindow float64
	Lenient   bool
}

const DefaultAtmWindow = 10.

// The 25 delta markers are built from the 20 and 30 buckets since an
// exact 25 delta strike rarely trades.
func is25DeltaBucket(bucket int) bool {
	return bucket == 20 || bucket == 30
}

// ExtractMarkers aggregates a normalized single-expiry quote set into
// the three smile markers. In strict mode an empty selection set for
// any marker fails with InsufficientDataError; in lenient mode the
// marker is NaN and the caller decides at the evaluator boundary.
func ExtractMarkers(quotes []models.MidVolQuote, cfg MarkerConfig) (models.SmileMarkers, error) {
	var markers models.SmileMarkers
	if len(quotes) == 0 {
		return markers, ErrEmptyInput
	}
	if cfg.AtmWindow == 0 {
		cfg.AtmWindow = DefaultAtmWindow
	}

	meanUnderlying := meanUnderlyingPrice(quotes)

	var atm, call25, put25 []float64
	for i := range quotes {
		q := &quotes[i]
		if math.Abs(q.Strike-meanUnderlying) <= cfg.AtmWindow {
			atm = append(atm, q.MidIv)
		}
		if !is25DeltaBucket(q.DeltaBucket) {
			continue
		}
		if q.Side == models.Call {
			call25 = append(call25, q.MidIv)
		} else if q.Side == models.Put {
			put25 = append(put25, q.MidIv)
		}
	}

	var err error
	if markers.AtmIv, err = markerMean(atm, "atm", cfg.Lenient); err != nil {
		return markers, err
	}
	if markers.Call25Iv, err = markerMean(call25, "call25", cfg.Lenient); err != nil {
		return markers, err
	}
	if markers.Put25Iv, err = markerMean(put25, "put25", cfg.Lenient); err != nil {
		return markers, err
	}
	return markers, nil
}

func meanUnderlyingPrice(quotes []models.MidVolQuote) float64 {
	prices := make([]float64, len(quotes))
	for i := range quotes {
		prices[i] = quotes[i].UnderlyingPrice
	}
	return stat.Mean(prices, nil)
}

func markerMean(vols []float64, marker string, lenient bool) (float64, error) {
	if len(vols) == 0 {
		if lenient {
			return math.NaN(), nil
		}
		return math.NaN(), InsufficientDataError{Marker: marker}
	}
	return stat.Mean(vols, nil), nil
}
