package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Round x to the nearest multiple of interval. Uses math.Round, so
// exact halves round away from zero (25 -> 30 with interval 10).
func RoundToNearest(num float64, interval float64) float64 {
	return math.Round(num/interval) * interval
}

// Build an inclusive range [min, max] with the given step.
func Arange(min float64, max float64, step float64) []float64 {
	n := int(math.Round((max-min)/step)) + 1
	a := make([]float64, n)
	for i := range a {
		a[i] = min + float64(i)*step
	}
	return a
}

func TimestampToTime(timestamp int) time.Time {
	return time.Unix(int64(timestamp/1000), 0).UTC()
}

func TimeToTimestamp(timeObject time.Time) int {
	return int(timeObject.UnixNano() / int64(time.Millisecond))
}

// Deribit option symbols look like BTC-26JUN20-10000-C.
func GetDeribitOptionSymbol(expiry int, strike float64, currency string, optionType string) string {
	expiryTime := TimestampToTime(expiry)
	date := strings.ToUpper(expiryTime.Format("2Jan06"))
	cp := "C"
	if optionType == "put" {
		cp = "P"
	}
	return fmt.Sprintf("%s-%s-%d-%s", currency, date, int(strike), cp)
}

// Recover expiry, strike and option type from a Deribit symbol.
func ParseDeribitOptionSymbol(symbol string) (expiry int, strike float64, optionType string, err error) {
	parts := strings.Split(symbol, "-")
	if len(parts) != 4 {
		err = fmt.Errorf("cannot parse option symbol %v", symbol)
		return
	}
	expiryTime, perr := time.Parse("2Jan06", parts[1])
	if perr != nil {
		err = fmt.Errorf("cannot parse expiry in symbol %v: %v", symbol, perr)
		return
	}
	expiry = TimeToTimestamp(expiryTime)
	strike, perr = strconv.ParseFloat(parts[2], 64)
	if perr != nil {
		err = fmt.Errorf("cannot parse strike in symbol %v: %v", symbol, perr)
		return
	}
	switch parts[3] {
	case "C":
		optionType = "call"
	case "P":
		optionType = "put"
	default:
		err = fmt.Errorf("unknown option type %v in symbol %v", parts[3], symbol)
	}
	return
}
