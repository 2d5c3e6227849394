package kucoin

import (
	"fmt"
	"strings"

	"nakula/pkg/core"
)

// TradingPair is Kucoin's native trading pair identifier: an uppercase
// base and quote joined by exactly one dash (e.g. "BTC-USDT").
type TradingPair string

// IsValidPair reports whether a string satisfies Kucoin's pair format:
// exactly one '-', non-empty on both sides, and none of '_' or '/'.
func IsValidPair(s string) bool {
	if strings.ContainsAny(s, "_/") {
		return false
	}
	base, quote, found := strings.Cut(s, "-")
	return found && base != "" && quote != "" && !strings.Contains(quote, "-")
}

// DecodePair validates a native pair string and wraps it, uppercased,
// into a TradingPair. It fails with *core.PairError when the string
// violates the format. Decoding is idempotent.
func DecodePair(s string) (TradingPair, error) {
	if !IsValidPair(s) {
		return "", &core.PairError{
			Exchange: core.ExchangeKucoin,
			Raw:      s,
			Reason:   "not of the form BASE-QUOTE",
		}
	}
	return TradingPair(strings.ToUpper(s)), nil
}

// EncodePair converts a canonical pair into Kucoin's native format,
// trying each strategy in order until one succeeds:
//
//  1. explicit base/quote: join with '-' verbatim
//  2. raw string: decode directly
//  3. raw string with declared delimiter: split on it, uppercase each
//     side, join with '-'
//  4. raw string: rewrite '_' and '/' to '-' and retry the decode
//
// When every strategy fails, it returns *core.PairError carrying the
// offending raw text. As with the other codecs, strategy 3's
// two-non-empty-parts precondition is a caller contract and panics when
// violated.
func EncodePair(pair core.TradingPair) (TradingPair, error) {
	if pair.HasBaseQuote() {
		return TradingPair(pair.Base + "-" + pair.Quote), nil
	}

	if pair.Raw != "" {
		if native, err := DecodePair(pair.Raw); err == nil {
			return native, nil
		}

		if pair.Delimiter != 0 {
			parts := strings.Split(pair.Raw, string(pair.Delimiter))
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				panic(fmt.Sprintf("kucoin: pair %q does not split into two parts on %q", pair.Raw, pair.Delimiter))
			}
			return TradingPair(strings.ToUpper(parts[0]) + "-" + strings.ToUpper(parts[1])), nil
		}

		rewritten := strings.Map(func(r rune) rune {
			if r == '_' || r == '/' {
				return '-'
			}
			return r
		}, pair.Raw)
		if native, err := DecodePair(rewritten); err == nil {
			return native, nil
		}
	}

	return "", &core.PairError{
		Exchange: core.ExchangeKucoin,
		Raw:      pair.Raw,
		Reason:   "no encoding strategy produced a valid native pair",
	}
}

// String returns the native pair string.
func (p TradingPair) String() string {
	return string(p)
}

// Base returns the base side of the native pair.
func (p TradingPair) Base() string {
	base, _, _ := strings.Cut(string(p), "-")
	return base
}

// Quote returns the quote side of the native pair.
func (p TradingPair) Quote() string {
	_, quote, _ := strings.Cut(string(p), "-")
	return quote
}

// Normalize wraps the native pair into the canonical explicit form.
// Kucoin's format always carries the base/quote split, so no raw form
// is needed.
func (p TradingPair) Normalize() core.TradingPair {
	return core.NewPair(core.ExchangeKucoin, p.Base(), p.Quote())
}
