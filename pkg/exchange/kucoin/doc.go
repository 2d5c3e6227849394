// Package kucoin implements the exchange.Codec contract for Kucoin.
// Kucoin's native pair format carries a dash delimiter ("BTC-USDT"),
// the opposite charset rule from delimiter-free exchanges, and its
// currency feed lists several chains per currency.
package kucoin
