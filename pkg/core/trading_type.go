package core

import "strings"

// TradingType represents the canonical market category of a trading pair.
type TradingType int

// Trading type constants define the closed set of canonical market categories.
const (
	// TradingTypeSpot indicates spot trading where assets settle immediately.
	TradingTypeSpot TradingType = iota
	// TradingTypePerpetual indicates perpetual swap contracts with no expiry.
	TradingTypePerpetual
	// TradingTypeMargin indicates leveraged spot trading on borrowed funds.
	TradingTypeMargin
	// TradingTypeFutures indicates dated futures contracts.
	TradingTypeFutures
	// TradingTypeOption indicates options contracts.
	TradingTypeOption
	// TradingTypeOther is the catch-all for tokens no alias matches.
	TradingTypeOther
)

// String returns the string representation of the trading type.
func (t TradingType) String() string {
	return [...]string{"SPOT", "PERPETUAL", "MARGIN", "FUTURES", "OPTION", "OTHER"}[t]
}

// MarshalJSON implements json.Marshaler for TradingType.
func (t TradingType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for TradingType.
// Any token ParseTradingType does not recognize decodes to TradingTypeOther.
func (t *TradingType) UnmarshalJSON(data []byte) error {
	*t = ParseTradingType(strings.Trim(string(data), `"`))
	return nil
}

// ParseTradingType maps a free-text trading-type token to its canonical
// trading type. Matching is case-insensitive and total: unrecognized tokens
// map to TradingTypeOther rather than failing, since feeds routinely ship
// new type strings before documentation catches up.
//
// "linear" and "inverse" fold into TradingTypePerpetual even though they
// denote distinct settlement mechanics; callers needing the distinction
// must capture the original token separately.
func ParseTradingType(token string) TradingType {
	switch strings.ToLower(token) {
	case "spot":
		return TradingTypeSpot
	case "perpetual", "perp", "swap", "linear", "inverse":
		return TradingTypePerpetual
	case "futures":
		return TradingTypeFutures
	case "margin":
		return TradingTypeMargin
	case "option":
		return TradingTypeOption
	default:
		return TradingTypeOther
	}
}
