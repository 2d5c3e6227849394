package core

// Exchange identifies a supported exchange. Canonical values carry an
// exchange tag so downstream aggregation can tell apart identically
// named assets listed on different venues.
type Exchange int

// Exchange constants define the closed set of supported exchanges.
const (
	// ExchangeBinance identifies the Binance exchange.
	ExchangeBinance Exchange = iota
	// ExchangeKucoin identifies the Kucoin exchange.
	ExchangeKucoin
)

// String returns the string representation of the exchange ("binance" or "kucoin").
func (e Exchange) String() string {
	return [...]string{"binance", "kucoin"}[e]
}

// MarshalJSON implements json.Marshaler for Exchange.
func (e Exchange) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Exchange.
// It accepts both lowercase and capitalized exchange names.
func (e *Exchange) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"binance"`, `"Binance"`:
		*e = ExchangeBinance
	case `"kucoin"`, `"Kucoin"`, `"KuCoin"`:
		*e = ExchangeKucoin
	}
	return nil
}
