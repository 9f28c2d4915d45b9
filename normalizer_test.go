package smile

import (
	"errors"
	"testing"

	"github.com/tantralabs/vol-smile/models"
)

const june26 = 1593158400000
const july3 = 1593763200000

func testQuotes() []models.Quote {
	return []models.Quote{
		{Symbol: "BTC-26JUN20-9000-P", Side: models.Put, Strike: 9000, Delta: -0.21, BidIv: 0.74, AskIv: 0.78, UnderlyingPrice: 9500, Expiry: june26},
		{Symbol: "BTC-26JUN20-9250-P", Side: models.Put, Strike: 9250, Delta: -0.29, BidIv: 0.72, AskIv: 0.76, UnderlyingPrice: 9500, Expiry: june26},
		{Symbol: "BTC-26JUN20-9500-C", Side: models.Call, Strike: 9500, Delta: 0.52, BidIv: 0.70, AskIv: 0.72, UnderlyingPrice: 9500, Expiry: june26},
		{Symbol: "BTC-26JUN20-9500-P", Side: models.Put, Strike: 9500, Delta: -0.48, BidIv: 0.69, AskIv: 0.73, UnderlyingPrice: 9500, Expiry: june26},
		{Symbol: "BTC-26JUN20-10000-C", Side: models.Call, Strike: 10000, Delta: 0.28, BidIv: 0.71, AskIv: 0.75, UnderlyingPrice: 9500, Expiry: june26},
		{Symbol: "BTC-26JUN20-10250-C", Side: models.Call, Strike: 10250, Delta: 0.22, BidIv: 0.73, AskIv: 0.77, UnderlyingPrice: 9500, Expiry: june26},
		{Symbol: "BTC-3JUL20-9500-C", Side: models.Call, Strike: 9500, Delta: 0.51, BidIv: 0.80, AskIv: 0.84, UnderlyingPrice: 9500, Expiry: july3},
	}
}

func TestExpiriesSorted(t *testing.T) {
	quotes := []models.Quote{
		{Expiry: july3}, {Expiry: june26}, {Expiry: july3}, {Expiry: june26},
	}
	expiries := Expiries(quotes)
	if len(expiries) != 2 {
		t.Fatalf("Expected 2 distinct expiries, got %v", len(expiries))
	}
	if expiries[0] != june26 || expiries[1] != july3 {
		t.Errorf("Expected ascending expiries [%v %v], got %v", june26, july3, expiries)
	}
}

func TestSelectExpiry(t *testing.T) {
	quotes := testQuotes()

	t.Run("Earliest", func(t *testing.T) {
		expiry, err := SelectExpiry(quotes, Earliest, 0)
		if err != nil {
			t.Fatalf("SelectExpiry returned an error: %v", err)
		}
		if expiry != june26 {
			t.Errorf("Expected earliest expiry %v, got %v", june26, expiry)
		}
	})

	t.Run("Nearest", func(t *testing.T) {
		expiry, err := SelectExpiry(quotes, Nearest, july3-1000)
		if err != nil {
			t.Fatalf("SelectExpiry returned an error: %v", err)
		}
		if expiry != july3 {
			t.Errorf("Expected nearest expiry %v, got %v", july3, expiry)
		}
	})

	t.Run("ExactMissing", func(t *testing.T) {
		_, err := SelectExpiry(quotes, Exact, 12345)
		var missing MissingExpiryError
		if !errors.As(err, &missing) {
			t.Fatalf("Expected MissingExpiryError, got %v", err)
		}
		if missing.Expiry != 12345 {
			t.Errorf("Expected missing expiry 12345, got %v", missing.Expiry)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := SelectExpiry(nil, Earliest, 0)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestNormalizeMidIv(t *testing.T) {
	// The midpoint is computed in decimal, so values that would pick
	// up binary noise under naive float arithmetic come out clean.
	cases := []struct {
		bidIv float64
		askIv float64
		midIv float64
	}{
		{0.74, 0.78, 0.76},
		{0.25, 0.35, 0.30},
		{0.70, 0.72, 0.71},
		{0.0, 0.0, 0.0},
	}
	for _, c := range cases {
		mid := midIv(c.bidIv, c.askIv)
		if mid != c.midIv {
			t.Errorf("Bad mid iv for %v/%v: %v, expected %v", c.bidIv, c.askIv, mid, c.midIv)
		}
	}
}

func TestDeltaBucket(t *testing.T) {
	cases := []struct {
		delta  float64
		bucket int
	}{
		{0.21, 20},
		{0.28, 30},
		{0.52, 50},
		{0.25, 30}, // exact tie rounds away from zero
		{0.04, 0},
		{0.99, 100},
	}
	for _, c := range cases {
		if got := DeltaBucket(c.delta); got != c.bucket {
			t.Errorf("Bad bucket for delta %v: %v, expected %v", c.delta, got, c.bucket)
		}
		// Bucketing is sign-invariant: puts bucket on |delta|
		if got := DeltaBucket(-c.delta); got != c.bucket {
			t.Errorf("Bad bucket for delta %v: %v, expected %v", -c.delta, got, c.bucket)
		}
	}
}

func TestNormalize(t *testing.T) {
	quotes := testQuotes()
	normalized, err := Normalize(quotes, june26)
	if err != nil {
		t.Fatalf("Normalize returned an error: %v", err)
	}
	if len(normalized) != 6 {
		t.Fatalf("Expected 6 quotes at expiry %v, got %v", june26, len(normalized))
	}
	for i := range normalized {
		if normalized[i].Expiry != june26 {
			t.Errorf("Quote %v leaked from another expiry: %v", normalized[i].Symbol, normalized[i].Expiry)
		}
	}
	if normalized[0].MidIv != 0.76 {
		t.Errorf("Bad mid iv: %v, expected 0.76", normalized[0].MidIv)
	}
	if normalized[0].DeltaBucket != 20 {
		t.Errorf("Bad delta bucket: %v, expected 20", normalized[0].DeltaBucket)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	quotes := testQuotes()
	original := testQuotes()
	if _, err := Normalize(quotes, june26); err != nil {
		t.Fatalf("Normalize returned an error: %v", err)
	}
	for i := range quotes {
		if quotes[i] != original[i] {
			t.Errorf("Input quote %v was mutated: %+v", i, quotes[i])
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	_, err := Normalize(nil, june26)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestNormalizeMissingExpiry(t *testing.T) {
	_, err := Normalize(testQuotes(), 999)
	var missing MissingExpiryError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingExpiryError, got %v", err)
	}
	if missing.Expiry != 999 {
		t.Errorf("Expected missing expiry 999, got %v", missing.Expiry)
	}
}
