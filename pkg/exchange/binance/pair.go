package binance

import (
	"fmt"
	"strings"

	"nakula/pkg/core"
)

// TradingPair is Binance's native trading pair identifier: a single
// uppercase string with no delimiter (e.g. "BTCUSDT"). Values produced
// by this package always satisfy IsValidPair.
type TradingPair string

// IsValidPair reports whether a string satisfies Binance's pair charset:
// it must contain none of '-', '_' or '/'. Other exchanges define
// different forbidden sets.
func IsValidPair(s string) bool {
	return !strings.ContainsAny(s, core.Delimiters)
}

// DecodePair validates a native pair string and wraps it, uppercased,
// into a TradingPair. It fails with *core.PairError when the string
// violates the charset. Decoding is idempotent: decoding the output of
// DecodePair yields the same value.
func DecodePair(s string) (TradingPair, error) {
	if !IsValidPair(s) {
		return "", &core.PairError{
			Exchange: core.ExchangeBinance,
			Raw:      s,
			Reason:   "contains a '-', '_' or '/'",
		}
	}
	return TradingPair(strings.ToUpper(s)), nil
}

// EncodePair converts a canonical pair into Binance's native format,
// trying each strategy in order until one succeeds:
//
//  1. explicit base/quote: concatenate verbatim (callers pre-normalize case)
//  2. raw string: decode directly
//  3. raw string with declared delimiter: split on it, uppercase each
//     side, concatenate
//  4. raw string: strip all of '-', '_', '/' and retry the decode
//
// When every strategy fails, it returns *core.PairError carrying the
// offending raw text. The chain tries the cheapest, most authoritative
// signal first and degrades to brute-force stripping last, minimizing
// false "valid" classifications of malformed input.
//
// Strategy 3 requires the split to yield exactly two non-empty parts; a
// canonical pair violating that was built incorrectly by the caller, and
// EncodePair panics rather than papering over the defect.
func EncodePair(pair core.TradingPair) (TradingPair, error) {
	if pair.HasBaseQuote() {
		return TradingPair(pair.Base + pair.Quote), nil
	}

	if pair.Raw != "" {
		if native, err := DecodePair(pair.Raw); err == nil {
			return native, nil
		}

		if pair.Delimiter != 0 {
			parts := strings.Split(pair.Raw, string(pair.Delimiter))
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				panic(fmt.Sprintf("binance: pair %q does not split into two parts on %q", pair.Raw, pair.Delimiter))
			}
			return TradingPair(strings.ToUpper(parts[0]) + strings.ToUpper(parts[1])), nil
		}

		stripped := strings.Map(func(r rune) rune {
			if strings.ContainsRune(core.Delimiters, r) {
				return -1
			}
			return r
		}, pair.Raw)
		if native, err := DecodePair(stripped); err == nil {
			return native, nil
		}
	}

	return "", &core.PairError{
		Exchange: core.ExchangeBinance,
		Raw:      pair.Raw,
		Reason:   "no encoding strategy produced a valid native pair",
	}
}

// String returns the native pair string.
func (p TradingPair) String() string {
	return string(p)
}

// Normalize wraps the native pair into the canonical raw form, without
// inferring base and quote.
func (p TradingPair) Normalize() core.TradingPair {
	return core.NewRawPair(core.ExchangeBinance, string(p))
}

// NormalizeWith wraps the native pair into the canonical explicit form
// using a base/quote split the caller already knows.
func (p TradingPair) NormalizeWith(base, quote string) core.TradingPair {
	return core.NewPair(core.ExchangeBinance, base, quote)
}
