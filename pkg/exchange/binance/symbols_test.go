package binance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nakula/pkg/core"
	"nakula/pkg/exchange"
)

const symbolsDoc = `{
  "data": {
    "body": {
      "data": [
        {
          "id": 1,
          "symbol": "BTC",
          "name": "Bitcoin",
          "slug": "bitcoin",
          "circulating_supply": 19600000,
          "total_supply": 19600000,
          "max_supply": 21000000,
          "cmc_rank": 1,
          "num_market_pairs": 500,
          "infinite_supply": false,
          "last_updated": "2024-02-09T12:30:00.000Z",
          "date_added": "2013-04-28T00:00:00.000Z",
          "platform": null,
          "quote": {
            "USD": {
              "price": 47000.1234,
              "market_cap": 920000000000,
              "volume_24h": 25000000000,
              "percent_change_24h": 1.5,
              "percent_change_7d": -2.25,
              "last_updated": "2024-02-09T12:30:00.000Z"
            }
          },
          "tags": ["store-of-value"]
        },
        {
          "id": 2,
          "symbol": "WBTC",
          "name": "Wrapped Bitcoin",
          "slug": "wrapped-bitcoin",
          "circulating_supply": 155000,
          "total_supply": 155000,
          "max_supply": null,
          "cmc_rank": 15,
          "num_market_pairs": 120,
          "infinite_supply": false,
          "last_updated": "2024-02-09T12:30:00.000Z",
          "date_added": "2019-01-30T00:00:00.000Z",
          "platform": {
            "id": 1027,
            "symbol": "ETH",
            "name": "Ethereum",
            "token_address": "0x2260fac5e5542a773aa44fbcfedf7c193bc2c599",
            "slug": "ethereum"
          },
          "quote": {
            "USD": {
              "price": 46980.5,
              "market_cap": 7280000000,
              "volume_24h": 180000000,
              "percent_change_24h": 1.4,
              "percent_change_7d": -2.3,
              "last_updated": "2024-02-09T12:30:00.000Z"
            }
          },
          "tags": ["wrapped-tokens"]
        }
      ]
    }
  }
}`

func TestUnwrapSymbols(t *testing.T) {
	records, err := UnwrapSymbols([]byte(symbolsDoc))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "BTC", records[0].Symbol)
	assert.Nil(t, records[0].Platform)
	assert.Equal(t, []string{"store-of-value"}, records[0].Tags)

	require.NotNil(t, records[1].Platform)
	assert.Equal(t, "Ethereum", records[1].Platform.Name)
	assert.Equal(t, "0x2260fac5e5542a773aa44fbcfedf7c193bc2c599", records[1].Platform.TokenAddress)
}

func TestUnwrapSymbols_MissingSegment(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		missing string
	}{
		{"no_data", `{"status": "ok"}`, "data"},
		{"no_body", `{"data": {"status": "ok"}}`, "body"},
		{"no_nested_data", `{"data": {"body": {"status": "ok"}}}`, "data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnwrapSymbols([]byte(tt.doc))
			require.Error(t, err)

			var envErr *core.EnvelopeError
			require.ErrorAs(t, err, &envErr)
			assert.Equal(t, tt.missing, envErr.Field)
		})
	}
}

func TestUnwrapSymbols_SchemaMismatch(t *testing.T) {
	_, err := UnwrapSymbols([]byte(`{"data": {"body": {"data": {"not": "an array"}}}}`))
	require.Error(t, err)
	assert.True(t, core.IsSchemaMismatch(err))
}

func TestUnwrapSymbols_AllOrNothing(t *testing.T) {
	// Second element lacks the required symbol field; the whole batch fails.
	doc := `{"data": {"body": {"data": [
		{"symbol": "BTC", "name": "Bitcoin", "slug": "bitcoin",
		 "last_updated": "2024-02-09T12:30:00.000Z", "date_added": "2013-04-28T00:00:00.000Z"},
		{"name": "Broken", "slug": "broken",
		 "last_updated": "2024-02-09T12:30:00.000Z", "date_added": "2013-04-28T00:00:00.000Z"}
	]}}}`

	_, err := UnwrapSymbols([]byte(doc))
	require.Error(t, err)

	var decodeErr *core.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 1, decodeErr.Index)
}

func TestNormalizeSymbols(t *testing.T) {
	currencies, err := NormalizeSymbols([]byte(symbolsDoc))
	require.NoError(t, err)
	require.Len(t, currencies, 2)

	btc := currencies[0]
	assert.Equal(t, core.ExchangeBinance, btc.Exchange)
	assert.Equal(t, "BTC", btc.Symbol)
	assert.Equal(t, "Bitcoin", btc.Name)
	assert.Nil(t, btc.DisplayName)
	assert.Equal(t, "last updated: 2024-02-09T12:30:00Z", btc.Status)
	assert.Empty(t, btc.Blockchains)

	require.NotNil(t, btc.Quote)
	assert.Equal(t, "47000.1234", btc.Quote.Price.String())
	assert.Equal(t, "-2.25", btc.Quote.PercentChange7d.String())

	wbtc := currencies[1]
	require.Len(t, wbtc.Blockchains, 1)
	blk := wbtc.Blockchains[0]
	assert.Equal(t, core.BlockchainEthereum, blk.Chain)
	assert.Equal(t, "0x2260fac5e5542a773aa44fbcfedf7c193bc2c599", blk.Address)
	assert.True(t, blk.IsWrapped)
	assert.Empty(t, blk.WrappedCurrency)
}

func TestNormalizeSymbols_QuoteCurrencyOption(t *testing.T) {
	currencies, err := NormalizeSymbols([]byte(symbolsDoc), exchange.WithQuoteCurrency("EUR"))
	require.NoError(t, err)
	require.Len(t, currencies, 2)

	// No EUR quote in the feed; passthrough stays unset.
	assert.Nil(t, currencies[0].Quote)
}

func TestNormalizeSymbols_UnrecognizedChain(t *testing.T) {
	doc := `{"data": {"body": {"data": [
		{"symbol": "XYZ", "name": "Mystery", "slug": "mystery",
		 "last_updated": "2024-02-09T12:30:00.000Z", "date_added": "2020-01-01T00:00:00.000Z",
		 "platform": {"id": 9, "symbol": "MYS", "name": "Mystery Chain", "token_address": "0xabc", "slug": "mystery-chain"}}
	]}}}`

	_, err := NormalizeSymbols([]byte(doc))
	require.Error(t, err)
	assert.True(t, core.IsUnrecognizedBlockchain(err))
	assert.Contains(t, err.Error(), "Mystery Chain")
}

func TestCodec(t *testing.T) {
	codec := NewCodec()
	assert.Equal(t, core.ExchangeBinance, codec.Exchange())

	pair, err := codec.DecodePair("btcusdt")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", pair.Raw)

	native, err := codec.EncodePair(core.NewPair(core.ExchangeBinance, "BTC", "USDT"))
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", native)

	_, err = codec.DecodePair("BTC-USDT")
	assert.True(t, core.IsInvalidPair(err))

	currencies, err := codec.NormalizeCurrencies([]byte(symbolsDoc))
	require.NoError(t, err)
	assert.Len(t, currencies, 2)
}
