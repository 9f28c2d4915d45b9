package options

import (
	"math"

	"github.com/chobie/go-gaussian"
)

const day = 86400

// Theoretical value and greeks for a single option under
// Black-Scholes. Times are ms timestamps; TimeLeft is in years.
type OptionTheo struct {
	Strike          float64
	UnderlyingPrice float64
	R               float64
	Volatility      float64
	CurrentTime     int
	Expiry          int
	TimeLeft        float64
	OptionType      string // "call" or "put"
	Theo            float64
	Delta           float64
	Gamma           float64
	Theta           float64
	Vega            float64
}

// Either theo or volatility is unknown (pass in -1.0 for unknown values)
func NewOptionTheo(optionType string, uPrice float64, strike float64,
	currentTime int, expiry int, r float64,
	volatility float64, theo float64) *OptionTheo {
	return &OptionTheo{
		Strike:          strike,
		UnderlyingPrice: uPrice,
		R:               r,
		CurrentTime:     currentTime,
		Expiry:          expiry,
		TimeLeft:        GetTimeLeft(currentTime, expiry),
		OptionType:      optionType,
		Volatility:      volatility,
		Theo:            theo,
	}
}

// Times in ms; return time left in years
func GetTimeLeft(currentTime int, expiry int) float64 {
	return float64(expiry-currentTime) / float64(1000*day*365)
}

func (o *OptionTheo) calcD1(volatility float64) float64 {
	return (math.Log(o.UnderlyingPrice/o.Strike) + (o.R+math.Pow(volatility, 2)/2)*o.TimeLeft) / (volatility * math.Sqrt(o.TimeLeft))
}

func (o *OptionTheo) calcD2(volatility float64) float64 {
	return o.calcD1(volatility) - volatility*math.Sqrt(o.TimeLeft)
}

// Use Black-Scholes pricing model to calculate theoretical option
// value, quoted in terms of the underlying. Greeks are filled in when
// calcGreeks is set.
func (o *OptionTheo) CalcBlackScholesTheo(calcGreeks bool) {
	norm := gaussian.NewGaussian(0, 1)
	if o.Volatility < 0 {
		o.Volatility = o.ImpliedVol()
	}
	d1 := o.calcD1(o.Volatility)
	d2 := o.calcD2(o.Volatility)
	if o.OptionType == "call" {
		o.Theo = o.UnderlyingPrice*norm.Cdf(d1) - o.Strike*math.Exp(-o.R*o.TimeLeft)*norm.Cdf(d2)
	} else if o.OptionType == "put" {
		o.Theo = o.Strike*math.Exp(-o.R*o.TimeLeft)*norm.Cdf(-d2) - o.UnderlyingPrice*norm.Cdf(-d1)
	}
	if calcGreeks {
		nPrime := norm.Pdf(d1)
		if o.OptionType == "call" {
			o.Delta = norm.Cdf(d1)
			o.Theta = (nPrime)*(-o.UnderlyingPrice*o.Volatility*0.5/math.Sqrt(o.TimeLeft)) - o.R*o.Strike*math.Exp(-o.R*o.TimeLeft)*norm.Cdf(d2)
		} else if o.OptionType == "put" {
			o.Delta = norm.Cdf(d1) - 1
			o.Theta = (nPrime)*(-o.UnderlyingPrice*o.Volatility*0.5/math.Sqrt(o.TimeLeft)) + o.R*o.Strike*math.Exp(-o.R*o.TimeLeft)*norm.Cdf(-d2)
		}
		o.Gamma = nPrime / (o.UnderlyingPrice * o.Volatility * math.Sqrt(o.TimeLeft))
		o.Vega = o.UnderlyingPrice * nPrime * math.Sqrt(o.TimeLeft)
	}
	o.Theo = o.Theo / o.UnderlyingPrice
}

// Use newton raphson method to find volatility
func (o *OptionTheo) ImpliedVol() float64 {
	norm := gaussian.NewGaussian(0, 1)
	v := math.Sqrt(2*math.Pi/o.TimeLeft) * o.Theo
	for i := 0; i < 100; i++ {
		d1 := o.calcD1(v)
		d2 := o.calcD2(v)
		vega := o.UnderlyingPrice * norm.Pdf(d1) * math.Sqrt(o.TimeLeft)
		cp := 1.0
		if o.OptionType == "put" {
			cp = -1.0
		}
		theo0 := cp*o.UnderlyingPrice*norm.Cdf(cp*d1) - cp*o.Strike*math.Exp(-o.R*o.TimeLeft)*norm.Cdf(cp*d2)
		theo0 = theo0 / o.UnderlyingPrice
		v = v - (theo0-o.Theo)/(vega/o.UnderlyingPrice)
		if math.Abs(theo0-o.Theo) < math.Pow(10, -10) {
			break
		}
	}
	return v
}

// DeltaToStrike inverts the Black-Scholes put delta so a smile quoted
// in delta space can be reported in strike space. putDelta is the
// absolute put delta in (0,1), timeLeft is in years.
func DeltaToStrike(putDelta float64, uPrice float64, timeLeft float64, volatility float64, r float64) float64 {
	norm := gaussian.NewGaussian(0, 1)
	// |put delta| = N(-d1)  =>  d1 = -Ppf(|put delta|)
	d1 := -norm.Ppf(putDelta)
	return uPrice * math.Exp((r+volatility*volatility/2)*timeLeft-d1*volatility*math.Sqrt(timeLeft))
}

// An option's value at expiration, in underlying terms.
func (o *OptionTheo) GetExpiryValue(currentPrice float64) float64 {
	expiryValue := 0.
	if o.OptionType == "call" {
		expiryValue = currentPrice - o.Strike
	} else if o.OptionType == "put" {
		expiryValue = o.Strike - currentPrice
	}
	if expiryValue < 0 {
		expiryValue = 0
	}
	return expiryValue / currentPrice
}
