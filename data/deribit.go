package data

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/tantralabs/vol-smile/models"
	"github.com/tantralabs/vol-smile/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Raw Deribit option ticker. The delta arrives nested under greeks
// and has to be flattened before the core sees the quote.
type OptionTicker struct {
	InstrumentName  string             `json:"instrument_name"`
	UnderlyingPrice float64            `json:"underlying_price"`
	Timestamp       int64              `json:"timestamp"`
	MarkIv          float64            `json:"mark_iv"`
	BidIv           float64            `json:"bid_iv"`
	AskIv           float64            `json:"ask_iv"`
	Greeks          OptionTickerGreeks `json:"greeks"`
}

type OptionTickerGreeks struct {
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
	Gamma float64 `json:"gamma"`
	Delta float64 `json:"delta"`
}

// ParseTickers flattens a raw Deribit ticker array into core quotes.
// Side, strike and expiry come from the instrument name; deribit
// quotes iv in percentage points, so vols are scaled to fractions.
func ParseTickers(raw []byte) ([]models.Quote, error) {
	var tickers []OptionTicker
	if err := json.Unmarshal(raw, &tickers); err != nil {
		return nil, err
	}
	quotes := make([]models.Quote, 0, len(tickers))
	for i := range tickers {
		quote, err := FlattenTicker(&tickers[i])
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func FlattenTicker(ticker *OptionTicker) (models.Quote, error) {
	expiry, strike, optionType, err := utils.ParseDeribitOptionSymbol(ticker.InstrumentName)
	if err != nil {
		return models.Quote{}, err
	}
	return models.Quote{
		Symbol:          ticker.InstrumentName,
		Side:            optionType,
		Strike:          strike,
		Delta:           ticker.Greeks.Delta,
		MarkIv:          ticker.MarkIv / 100,
		BidIv:           ticker.BidIv / 100,
		AskIv:           ticker.AskIv / 100,
		UnderlyingPrice: ticker.UnderlyingPrice,
		Expiry:          expiry,
	}, nil
}
