package binance

import (
	"nakula/pkg/core"
	"nakula/pkg/exchange"
)

// Codec implements the exchange.Codec contract for Binance.
type Codec struct{}

var _ exchange.Codec = (*Codec)(nil)

// NewCodec creates a new Binance codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Exchange returns the Binance exchange tag.
func (c *Codec) Exchange() core.Exchange {
	return core.ExchangeBinance
}

// DecodePair validates a native pair string and returns it in the
// canonical raw form.
func (c *Codec) DecodePair(native string) (core.TradingPair, error) {
	pair, err := DecodePair(native)
	if err != nil {
		return core.TradingPair{}, err
	}
	return pair.Normalize(), nil
}

// EncodePair converts a canonical pair into the native pair string.
func (c *Codec) EncodePair(pair core.TradingPair) (string, error) {
	native, err := EncodePair(pair)
	if err != nil {
		return "", err
	}
	return native.String(), nil
}

// NormalizeCurrencies unwraps a raw symbols-with-addresses response and
// normalizes every record into a canonical currency.
func (c *Codec) NormalizeCurrencies(doc []byte, opts ...exchange.Option) ([]core.Currency, error) {
	return NormalizeSymbols(doc, opts...)
}
