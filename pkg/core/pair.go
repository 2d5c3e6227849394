package core

import (
	"fmt"
	"strings"
)

// Delimiters is the fixed set of characters a canonical pair may declare
// as its base/quote separator.
const Delimiters = "-_/"

// TradingPair is the exchange-agnostic representation of a trading pair.
// It carries either an explicit base/quote currency pair or a raw pair
// string with an optional delimiter, never both. Exchange codecs convert
// between this form and their native wire format.
type TradingPair struct {
	// Exchange identifies which exchange this pair belongs to.
	Exchange Exchange `json:"exchange"`
	// Base is the base currency symbol of the explicit form (e.g. "BTC").
	Base string `json:"base,omitempty"`
	// Quote is the quote currency symbol of the explicit form (e.g. "USDT").
	Quote string `json:"quote,omitempty"`
	// Raw is the unparsed pair string of the raw form (e.g. "BTC-USDT").
	Raw string `json:"pair,omitempty"`
	// Delimiter is the separator inside Raw, if the caller knows it.
	// Zero means no delimiter was declared.
	Delimiter rune `json:"delimiter,omitempty"`
}

// NewPair creates a canonical pair in the explicit base/quote form.
func NewPair(exchange Exchange, base, quote string) TradingPair {
	return TradingPair{Exchange: exchange, Base: base, Quote: quote}
}

// NewRawPair creates a canonical pair in the raw form with no declared delimiter.
func NewRawPair(exchange Exchange, raw string) TradingPair {
	return TradingPair{Exchange: exchange, Raw: raw}
}

// NewRawPairDelim creates a canonical pair in the raw form with a declared
// delimiter. The delimiter must be one of '-', '_' or '/'.
func NewRawPairDelim(exchange Exchange, raw string, delim rune) (TradingPair, error) {
	if !strings.ContainsRune(Delimiters, delim) {
		return TradingPair{}, fmt.Errorf("delimiter %q not in allowed set %q", delim, Delimiters)
	}
	return TradingPair{Exchange: exchange, Raw: raw, Delimiter: delim}, nil
}

// HasBaseQuote reports whether the pair carries the explicit base/quote form.
func (p TradingPair) HasBaseQuote() bool {
	return p.Base != "" && p.Quote != ""
}

// String returns a human-readable rendering of the pair.
func (p TradingPair) String() string {
	if p.HasBaseQuote() {
		return fmt.Sprintf("%s(%s/%s)", p.Exchange, p.Base, p.Quote)
	}
	return fmt.Sprintf("%s(%s)", p.Exchange, p.Raw)
}
