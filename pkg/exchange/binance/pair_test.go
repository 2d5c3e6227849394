package binance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nakula/pkg/core"
)

func TestIsValidPair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "BTCUSDT", true},
		{"lowercase", "btcusdt", true},
		{"dash", "BTC-USDT", false},
		{"underscore", "BTC_USDT", false},
		{"slash", "BTC/USDT", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPair(tt.input))
		})
	}
}

func TestDecodePair(t *testing.T) {
	pair, err := DecodePair("btcusdt")
	require.NoError(t, err)
	assert.Equal(t, TradingPair("BTCUSDT"), pair)
}

func TestDecodePair_Idempotent(t *testing.T) {
	first, err := DecodePair("ethBtc")
	require.NoError(t, err)

	second, err := DecodePair(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodePair_Rejects(t *testing.T) {
	_, err := DecodePair("BTC-USDT")
	require.Error(t, err)
	assert.True(t, core.IsInvalidPair(err))
	assert.Contains(t, err.Error(), "BTC-USDT")
}

func TestEncodePair(t *testing.T) {
	tests := []struct {
		name string
		pair core.TradingPair
		want TradingPair
	}{
		{"base_quote", core.NewPair(core.ExchangeBinance, "BTC", "USDT"), "BTCUSDT"},
		{"raw_valid", core.NewRawPair(core.ExchangeBinance, "ethusdc"), "ETHUSDC"},
		{"raw_strip_fallback", core.NewRawPair(core.ExchangeBinance, "BTC_USDT"), "BTCUSDT"},
		{"raw_strip_mixed", core.NewRawPair(core.ExchangeBinance, "btc/usdt"), "BTCUSDT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native, err := EncodePair(tt.pair)
			require.NoError(t, err)
			assert.Equal(t, tt.want, native)
		})
	}
}

func TestEncodePair_Delimiter(t *testing.T) {
	pair, err := core.NewRawPairDelim(core.ExchangeBinance, "btc-usdt", '-')
	require.NoError(t, err)

	native, err := EncodePair(pair)
	require.NoError(t, err)
	assert.Equal(t, TradingPair("BTCUSDT"), native)
}

func TestEncodePair_DelimiterContractViolation(t *testing.T) {
	pair, err := core.NewRawPairDelim(core.ExchangeBinance, "btc-", '-')
	require.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = EncodePair(pair)
	})
}

func TestEncodePair_Exhausted(t *testing.T) {
	_, err := EncodePair(core.TradingPair{Exchange: core.ExchangeBinance})
	require.Error(t, err)
	assert.True(t, core.IsInvalidPair(err))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	// decode(encode(raw s)) == decode(s) for any s free of delimiters.
	for _, s := range []string{"BTCUSDT", "ethusdc", "SolBnB"} {
		direct, err := DecodePair(s)
		require.NoError(t, err)

		encoded, err := EncodePair(core.NewRawPair(core.ExchangeBinance, s))
		require.NoError(t, err)

		viaEncode, err := DecodePair(encoded.String())
		require.NoError(t, err)
		assert.Equal(t, direct, viaEncode)
	}
}

func TestTradingPair_Normalize(t *testing.T) {
	pair := TradingPair("BTCUSDT")

	raw := pair.Normalize()
	assert.Equal(t, core.ExchangeBinance, raw.Exchange)
	assert.Equal(t, "BTCUSDT", raw.Raw)
	assert.False(t, raw.HasBaseQuote())

	explicit := pair.NormalizeWith("BTC", "USDT")
	assert.True(t, explicit.HasBaseQuote())
	assert.Equal(t, "BTC", explicit.Base)
	assert.Equal(t, "USDT", explicit.Quote)
}
