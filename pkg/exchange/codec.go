// Package exchange defines the shared codec contract every supported
// exchange implements, and a registry for selecting a codec by exchange
// tag. Exchanges form a closed set; consumers dispatch on the
// core.Exchange tag carried alongside the data rather than on concrete
// codec types.
package exchange

import "nakula/pkg/core"

// Codec converts between an exchange's native wire formats and the
// canonical representations in pkg/core. Implementations are pure,
// synchronous and safe for concurrent use; output depends only on input.
type Codec interface {
	// Exchange returns the tag identifying which exchange this codec serves.
	Exchange() core.Exchange

	// DecodePair validates a native pair string against the exchange's
	// charset rules and wraps it into the canonical raw form. It fails
	// with *core.PairError when the string violates the rules.
	DecodePair(native string) (core.TradingPair, error)

	// EncodePair converts a canonical pair into the exchange's native
	// pair string, trying each fallback strategy in order until one
	// succeeds. It fails with *core.PairError when every strategy is
	// exhausted.
	EncodePair(pair core.TradingPair) (string, error)

	// NormalizeCurrencies unwraps the exchange's currency metadata
	// response envelope and converts every record into a canonical
	// currency. Decoding is all-or-nothing: one bad record fails the
	// whole batch.
	NormalizeCurrencies(doc []byte, opts ...Option) ([]core.Currency, error)
}
