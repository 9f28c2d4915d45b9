package data

import (
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/tantralabs/vol-smile/models"
	"github.com/tantralabs/vol-smile/options"
)

// One row of a curve report. Undefined samples keep an empty iv cell
// so "no value" can never be confused with a computed zero vol.
type CurveRow struct {
	Delta   float64 `csv:"delta"`
	Iv      string  `csv:"iv"`
	Strike  float64 `csv:"strike"`
	Source  string  `csv:"source"`
	Defined bool    `csv:"defined"`
}

const ivPrecision = 6

// WriteCurveReport writes the sampled approximation and the observed
// put-side points to a csv file, with a Black-Scholes strike column
// so the delta grid can be read in strike space. timeLeft is in
// years.
func WriteCurveReport(csvFile string, curve []models.CurvePoint, observed []models.CurvePoint,
	underlyingPrice float64, timeLeft float64) error {
	rows := make([]*CurveRow, 0, len(curve)+len(observed))
	for i := range curve {
		rows = append(rows, curveRow(&curve[i], "approx", underlyingPrice, timeLeft))
	}
	for i := range observed {
		rows = append(rows, curveRow(&observed[i], "observed", underlyingPrice, timeLeft))
	}

	reportFile, err := os.OpenFile(csvFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, os.ModePerm)
	if err != nil {
		return err
	}
	defer reportFile.Close()
	return gocsv.MarshalFile(&rows, reportFile)
}

func curveRow(point *models.CurvePoint, source string, underlyingPrice float64, timeLeft float64) *CurveRow {
	row := &CurveRow{
		Delta:   point.Delta,
		Source:  source,
		Defined: point.Defined,
	}
	if point.Defined && !math.IsNaN(point.Iv) {
		row.Iv = decimal.NewFromFloat(point.Iv).Round(ivPrecision).String()
		row.Strike = options.DeltaToStrike(point.Delta, underlyingPrice, timeLeft, point.Iv, 0)
	}
	return row
}
