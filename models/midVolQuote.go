package models

// A quote decorated with its bid/ask midpoint vol and delta bucket.
// Derived from a Quote during normalization, one-to-one.
type MidVolQuote struct {
	Quote
	MidIv       float64
	DeltaBucket int
}
