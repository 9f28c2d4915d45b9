package smile

import (
	"errors"
	"math"
	"testing"

	"github.com/tantralabs/vol-smile/models"
)

func TestFitRecoversParams(t *testing.T) {
	truth := models.SmileParams{AtmIv: 0.65, RiskReversal: -0.04, Butterfly: 0.015}
	grid := DeltaGrid(0.10, 0.90, 0.05)
	observed, err := SampleCurve(truth, grid, false)
	if err != nil {
		t.Fatalf("SampleCurve returned an error: %v", err)
	}

	// Seed deliberately off the mark
	seed := models.SmileParams{AtmIv: 0.70, RiskReversal: 0, Butterfly: 0}
	fitted, err := Fit(seed, observed)
	if err != nil {
		t.Fatalf("Fit returned an error: %v", err)
	}
	if !approxEqual(fitted.AtmIv, truth.AtmIv, 1e-3) {
		t.Errorf("Bad fitted atm: %v, expected %v", fitted.AtmIv, truth.AtmIv)
	}
	if !approxEqual(fitted.RiskReversal, truth.RiskReversal, 1e-3) {
		t.Errorf("Bad fitted rr: %v, expected %v", fitted.RiskReversal, truth.RiskReversal)
	}
	if !approxEqual(fitted.Butterfly, truth.Butterfly, 1e-3) {
		t.Errorf("Bad fitted fly: %v, expected %v", fitted.Butterfly, truth.Butterfly)
	}
}

func TestFitReducesError(t *testing.T) {
	// Noisy observations: the fit should not be worse than the seed
	observed := []models.CurvePoint{
		{Delta: 0.20, Iv: 0.26, Defined: true},
		{Delta: 0.30, Iv: 0.245, Defined: true},
		{Delta: 0.50, Iv: 0.23, Defined: true},
		{Delta: 0.70, Iv: 0.235, Defined: true},
		{Delta: 0.80, Iv: 0.25, Defined: true},
	}
	seed := models.SmileParams{AtmIv: 0.23, RiskReversal: -0.01, Butterfly: 0.02}
	fitted, err := Fit(seed, observed)
	if err != nil {
		t.Fatalf("Fit returned an error: %v", err)
	}
	if mse(fitted, observed) > mse(seed, observed)+tolerance {
		t.Errorf("Fit increased mse: %v -> %v", mse(seed, observed), mse(fitted, observed))
	}
}

func TestFitEmptyObservations(t *testing.T) {
	seed := models.SmileParams{AtmIv: 0.23, RiskReversal: 0, Butterfly: 0}
	_, err := Fit(seed, nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestFitUndefinedSeed(t *testing.T) {
	seed := models.SmileParams{AtmIv: math.NaN(), RiskReversal: 0, Butterfly: 0}
	_, err := Fit(seed, []models.CurvePoint{{Delta: 0.5, Iv: 0.2, Defined: true}})
	var invalid InvalidDomainError
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidDomainError, got %v", err)
	}
}
