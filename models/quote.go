package models

const (
	Call = "call"
	Put  = "put"
)

// Represents one observed option quote for a single contract.
// Deltas follow exchange convention: calls in [0,1], puts in [-1,0].
// Quotes are read once from a snapshot and never mutated.
type Quote struct {
	Symbol          string  `csv:"instrument_name" json:"instrument_name"`
	Side            string  `csv:"side" json:"side"`
	Strike          float64 `csv:"strike" json:"strike"`
	Delta           float64 `csv:"delta" json:"delta"`
	MarkIv          float64 `csv:"mark_iv" json:"mark_iv"`
	BidIv           float64 `csv:"bid_iv" json:"bid_iv"`
	AskIv           float64 `csv:"ask_iv" json:"ask_iv"`
	UnderlyingPrice float64 `csv:"underlying_price" json:"underlying_price"`
	Expiry          int     `csv:"expiration_timestamp" json:"expiration_timestamp"`
}
