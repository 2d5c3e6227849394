// Package binance implements the exchange.Codec contract for Binance.
// It converts Binance-native trading pair identifiers and currency
// metadata into the canonical representations in pkg/core.
//
// The package includes:
//   - TradingPair: the native pair format and its validity rules
//   - DecodePair/EncodePair: the bidirectional pair codec with its
//     ordered fallback chain
//   - SymbolRecord/NormalizeSymbols: envelope unwrapping and currency
//     normalization for the symbols-with-addresses metadata feed
//
// Example usage:
//
//	native, err := binance.EncodePair(core.NewPair(core.ExchangeBinance, "BTC", "USDT"))
package binance
