package smile

import (
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"github.com/tantralabs/vol-smile/models"
	"github.com/tantralabs/vol-smile/utils"
)

// How to pick the expiry a smile is built for. The reference behavior
// is Earliest; Nearest and Exact take a target timestamp in ms.
type ExpiryPolicy string

const (
	Earliest ExpiryPolicy = "earliest"
	Nearest  ExpiryPolicy = "nearest"
	Exact    ExpiryPolicy = "exact"
)

const bucketInterval = 10.

// Get the distinct expiry timestamps present in a quote set, in
// ascending order. Collected through a red-black tree so the ordering
// is explicit rather than inherited from map iteration.
func Expiries(quotes []models.Quote) []int {
	tree := rbt.NewWithIntComparator()
	for i := range quotes {
		tree.Put(quotes[i].Expiry, struct{}{})
	}
	keys := tree.Keys()
	expiries := make([]int, len(keys))
	for i, k := range keys {
		expiries[i] = k.(int)
	}
	return expiries
}

// Resolve the expiry to build a smile for under the given policy.
func SelectExpiry(quotes []models.Quote, policy ExpiryPolicy, target int) (int, error) {
	expiries := Expiries(quotes)
	if len(expiries) == 0 {
		return 0, ErrEmptyInput
	}
	switch policy {
	case Nearest:
		nearest := expiries[0]
		for _, expiry := range expiries[1:] {
			if abs(expiry-target) < abs(nearest-target) {
				nearest = expiry
			}
		}
		return nearest, nil
	case Exact:
		for _, expiry := range expiries {
			if expiry == target {
				return expiry, nil
			}
		}
		return 0, MissingExpiryError{Expiry: target}
	default:
		return expiries[0], nil
	}
}

// Normalize restricts a quote set to a single expiry and derives the
// mid vol and delta bucket for every surviving quote. The input is
// never mutated.
//
// Buckets are the absolute delta times 100 rounded to the nearest
// multiple of 10, halves away from zero, so an exact 25 delta lands
// in the 30 bucket. Put deltas are sign-normalized before rounding,
// which makes bucketing side-invariant.
func Normalize(quotes []models.Quote, expiry int) ([]models.MidVolQuote, error) {
	if len(quotes) == 0 {
		return nil, ErrEmptyInput
	}
	var normalized []models.MidVolQuote
	for i := range quotes {
		if quotes[i].Expiry != expiry {
			continue
		}
		var mvq models.MidVolQuote
		if err := copier.Copy(&mvq.Quote, &quotes[i]); err != nil {
			return nil, err
		}
		mvq.MidIv = midIv(quotes[i].BidIv, quotes[i].AskIv)
		mvq.DeltaBucket = DeltaBucket(quotes[i].Delta)
		normalized = append(normalized, mvq)
	}
	if len(normalized) == 0 {
		return nil, MissingExpiryError{Expiry: expiry}
	}
	return normalized, nil
}

// DeltaBucket maps a signed delta fraction to its bucket (0..100).
func DeltaBucket(delta float64) int {
	return int(utils.RoundToNearest(math.Abs(delta)*100, bucketInterval))
}

// The bid/ask midpoint is computed in decimal so the result is exact.
func midIv(bidIv float64, askIv float64) float64 {
	mid := decimal.Avg(decimal.NewFromFloat(bidIv), decimal.NewFromFloat(askIv))
	f, _ := mid.Float64()
	return f
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
