package core

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// BlockchainPlatform describes one chain a currency is deployed on.
type BlockchainPlatform struct {
	// Chain is the canonical blockchain identifier.
	Chain Blockchain `json:"chain"`
	// Address is the on-chain contract address, when the feed provides one.
	Address string `json:"address,omitempty"`
	// IsWrapped marks the currency as a wrapped representation of another
	// asset, detected heuristically from its name and symbol.
	IsWrapped bool `json:"is_wrapped"`
	// WrappedCurrency is the symbol of the unwrapped counterpart, when an
	// aggregation pass has resolved it. It is a lookup key only, resolved
	// on demand against a batch via FindBySymbol; the counterpart record
	// may not exist at the time the flag is set.
	WrappedCurrency string `json:"wrapped_currency,omitempty"`
}

// QuoteMetrics carries the market metrics a feed quotes in one currency.
// Values are passed through exactly as received; no rounding policy applies.
type QuoteMetrics struct {
	// Price is the asset price in the quote currency.
	Price apd.Decimal `json:"price"`
	// MarketCap is the total market capitalization.
	MarketCap apd.Decimal `json:"market_cap"`
	// Volume24h is the trading volume over the last 24 hours.
	Volume24h apd.Decimal `json:"volume_24h"`
	// PercentChange24h is the price change over the last 24 hours.
	PercentChange24h apd.Decimal `json:"percent_change_24h"`
	// PercentChange7d is the price change over the last 7 days.
	PercentChange7d apd.Decimal `json:"percent_change_7d"`
}

// Currency is the exchange-agnostic representation of a listed currency.
// It is constructed once per native record and immutable thereafter;
// merging and deduplication across records is a downstream concern.
type Currency struct {
	// Exchange identifies the exchange this record came from.
	Exchange Exchange `json:"exchange"`
	// Symbol is the ticker symbol (e.g. "WBTC").
	Symbol string `json:"symbol"`
	// Name is the listed name (e.g. "Wrapped Bitcoin").
	Name string `json:"name"`
	// DisplayName is an optional human-friendly name, when it differs from Name.
	DisplayName *string `json:"display_name,omitempty"`
	// Status is a free-text listing status, currently derived from the
	// record's last-updated timestamp.
	Status string `json:"status"`
	// Blockchains lists the chains the currency is deployed on. A single
	// native record normally yields zero or one entry; aggregation may
	// accumulate more.
	Blockchains []BlockchainPlatform `json:"blockchains"`
	// Quote is an optional market snapshot passed through from the feed.
	Quote *QuoteMetrics `json:"quote,omitempty"`
}

// IsWrappedToken reports whether a currency looks like a wrapped
// representation of another asset: its name contains "wrapped" and its
// symbol starts with 'w', both case-insensitive. Heuristic only; it is
// used as the per-record signal that cross-record linkage resolution
// picks up later.
func IsWrappedToken(name, symbol string) bool {
	return strings.Contains(strings.ToLower(name), "wrapped") &&
		strings.HasPrefix(strings.ToLower(symbol), "w")
}

// FindBySymbol resolves a symbol lookup key against a batch of currencies.
// It returns the first matching entry, or nil when the batch does not
// contain the symbol. Wrapped-currency back-references are resolved with
// this rather than held as owning links.
func FindBySymbol(batch []Currency, symbol string) *Currency {
	for i := range batch {
		if batch[i].Symbol == symbol {
			return &batch[i]
		}
	}
	return nil
}
