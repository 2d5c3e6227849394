package binance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"

	"nakula/internal/envelope"
	"nakula/pkg/core"
	"nakula/pkg/exchange"
)

// The symbols-with-addresses feed wraps its payload array in a
// data.body.data envelope.
var symbolsPath = []string{"data", "body", "data"}

// PlatformRecord is the raw platform sub-object of a symbol record,
// naming the chain a token is deployed on and its contract address.
type PlatformRecord struct {
	ID           uint64 `json:"id"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name" validate:"required"`
	TokenAddress string `json:"token_address"`
	Slug         string `json:"slug"`
}

// QuoteRecord is the raw market-metrics object quoted in one currency.
// Numeric fields stay as json.Number so values pass through exactly as
// received, without a float round-trip.
type QuoteRecord struct {
	Price                 json.Number `json:"price"`
	MarketCap             json.Number `json:"market_cap"`
	MarketCapDominance    json.Number `json:"market_cap_dominance"`
	FullyDilutedMarketCap json.Number `json:"fully_diluted_market_cap"`
	Volume24h             json.Number `json:"volume_24h"`
	VolumeChange24h       json.Number `json:"volume_change_24h"`
	PercentChange1h       json.Number `json:"percent_change_1h"`
	PercentChange24h      json.Number `json:"percent_change_24h"`
	PercentChange7d       json.Number `json:"percent_change_7d"`
	PercentChange30d      json.Number `json:"percent_change_30d"`
	PercentChange60d      json.Number `json:"percent_change_60d"`
	PercentChange90d      json.Number `json:"percent_change_90d"`
	TVL                   json.Number `json:"tvl"`
	LastUpdated           time.Time   `json:"last_updated"`
}

// Metrics converts the raw quote into canonical quote metrics.
func (q *QuoteRecord) Metrics() (core.QuoteMetrics, error) {
	var m core.QuoteMetrics
	for _, f := range []struct {
		name string
		dest *apd.Decimal
		src  json.Number
	}{
		{"price", &m.Price, q.Price},
		{"market_cap", &m.MarketCap, q.MarketCap},
		{"volume_24h", &m.Volume24h, q.Volume24h},
		{"percent_change_24h", &m.PercentChange24h, q.PercentChange24h},
		{"percent_change_7d", &m.PercentChange7d, q.PercentChange7d},
	} {
		if err := parseDecimal(f.dest, f.src); err != nil {
			return core.QuoteMetrics{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}
	return m, nil
}

// SymbolRecord is one raw symbol entry of the symbols-with-addresses
// feed. Field names follow the wire format.
type SymbolRecord struct {
	ID                            uint64                 `json:"id"`
	Symbol                        string                 `json:"symbol" validate:"required"`
	Name                          string                 `json:"name" validate:"required"`
	Slug                          string                 `json:"slug" validate:"required"`
	CirculatingSupply             json.Number            `json:"circulating_supply"`
	TotalSupply                   json.Number            `json:"total_supply"`
	MaxSupply                     json.Number            `json:"max_supply"`
	TVLRatio                      json.Number            `json:"tvl_ratio"`
	SelfReportedCirculatingSupply json.Number            `json:"self_reported_circulating_supply"`
	SelfReportedMarketCap         json.Number            `json:"self_reported_market_cap"`
	CmcRank                       uint64                 `json:"cmc_rank"`
	NumMarketPairs                uint64                 `json:"num_market_pairs"`
	InfiniteSupply                bool                   `json:"infinite_supply"`
	LastUpdated                   time.Time              `json:"last_updated"`
	DateAdded                     time.Time              `json:"date_added"`
	Platform                      *PlatformRecord        `json:"platform"`
	Quote                         map[string]QuoteRecord `json:"quote"`
	Tags                          []string               `json:"tags"`
}

var validate = validator.New()

// UnwrapSymbols extracts and decodes the symbol records of a raw
// symbols-with-addresses response. It fails with *core.EnvelopeError or
// *core.SchemaError when the envelope breaks the contract, and with
// *core.DecodeError when any element fails typed decoding or field
// validation. Decoding is all-or-nothing; there are no partial results.
func UnwrapSymbols(doc []byte) ([]SymbolRecord, error) {
	elements, err := envelope.Elements(doc, symbolsPath...)
	if err != nil {
		return nil, err
	}

	records := make([]SymbolRecord, 0, len(elements))
	for i, raw := range elements {
		var rec SymbolRecord
		if err := sonic.Unmarshal(raw, &rec); err != nil {
			return nil, &core.DecodeError{Index: i, Err: err}
		}
		if err := validate.Struct(&rec); err != nil {
			return nil, &core.DecodeError{Index: i, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// blockchains infers the blockchain platforms of a record. A record
// without a platform sub-object yields none; one with a platform yields
// exactly one entry, with the wrapped-token flag set from the name and
// symbol heuristic. The wrapped-currency back-reference stays unset here;
// a later aggregation pass resolves linkage across records.
func (r *SymbolRecord) blockchains() ([]core.BlockchainPlatform, error) {
	if r.Platform == nil {
		return nil, nil
	}

	chain, err := core.ParseBlockchain(r.Platform.Name)
	if err != nil {
		return nil, err
	}
	return []core.BlockchainPlatform{{
		Chain:     chain,
		Address:   r.Platform.TokenAddress,
		IsWrapped: core.IsWrappedToken(r.Name, r.Symbol),
	}}, nil
}

// Normalize converts one symbol record into a canonical currency.
// An unrecognized platform chain name is fatal for the record.
func (r *SymbolRecord) Normalize(o *exchange.Options) (core.Currency, error) {
	blockchains, err := r.blockchains()
	if err != nil {
		return core.Currency{}, fmt.Errorf("normalize %q: %w", r.Symbol, err)
	}

	currency := core.Currency{
		Exchange:    core.ExchangeBinance,
		Symbol:      r.Symbol,
		Name:        r.Name,
		Status:      "last updated: " + r.LastUpdated.UTC().Format(time.RFC3339),
		Blockchains: blockchains,
	}

	if quote, ok := r.Quote[o.QuoteCurrency]; ok {
		metrics, err := quote.Metrics()
		if err != nil {
			return core.Currency{}, fmt.Errorf("normalize %q: %w", r.Symbol, err)
		}
		currency.Quote = &metrics
	}
	return currency, nil
}

// NormalizeSymbols unwraps a raw symbols-with-addresses response and
// normalizes every record. A failure on any record fails the batch.
func NormalizeSymbols(doc []byte, opts ...exchange.Option) ([]core.Currency, error) {
	records, err := UnwrapSymbols(doc)
	if err != nil {
		return nil, err
	}

	o := exchange.ApplyOptions(opts...)
	currencies := make([]core.Currency, 0, len(records))
	for i := range records {
		currency, err := records[i].Normalize(o)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, currency)
	}
	return currencies, nil
}

func parseDecimal(dest *apd.Decimal, n json.Number) error {
	if n == "" {
		*dest = apd.Decimal{}
		return nil
	}

	_, _, err := apd.BaseContext.SetString(dest, string(n))
	if err != nil {
		return fmt.Errorf("set decimal from number: %w", err)
	}
	return nil
}
