package kucoin

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"nakula/internal/envelope"
	"nakula/pkg/core"
	"nakula/pkg/exchange"
)

// The currencies feed wraps its payload array in a single-level "data"
// envelope next to a status code field.
var currenciesPath = []string{"data"}

// ChainRecord is one entry of a currency's chains array, naming a chain
// the currency is deployed on.
type ChainRecord struct {
	ChainName         string `json:"chainName" validate:"required"`
	ContractAddress   string `json:"contractAddress"`
	WithdrawalMinSize string `json:"withdrawalMinSize"`
	IsDepositEnabled  bool   `json:"isDepositEnabled"`
	IsWithdrawEnabled bool   `json:"isWithdrawEnabled"`
}

// CurrencyRecord is one raw currency entry of the currencies feed.
// Field names follow the wire format.
type CurrencyRecord struct {
	Currency          string        `json:"currency" validate:"required"`
	Name              string        `json:"name"`
	FullName          string        `json:"fullName" validate:"required"`
	Precision         int           `json:"precision"`
	IsMarginEnabled   bool          `json:"isMarginEnabled"`
	IsDebitEnabled    bool          `json:"isDebitEnabled"`
	IsDepositEnabled  bool          `json:"isDepositEnabled"`
	IsWithdrawEnabled bool          `json:"isWithdrawEnabled"`
	Chains            []ChainRecord `json:"chains"`
}

var validate = validator.New()

// UnwrapCurrencies extracts and decodes the currency records of a raw
// currencies response. Error semantics match the other feeds: envelope
// and schema failures are typed, and element decoding is all-or-nothing.
func UnwrapCurrencies(doc []byte) ([]CurrencyRecord, error) {
	elements, err := envelope.Elements(doc, currenciesPath...)
	if err != nil {
		return nil, err
	}

	records := make([]CurrencyRecord, 0, len(elements))
	for i, raw := range elements {
		var rec CurrencyRecord
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

// Normalize converts one currency record into a canonical currency.
// Every listed chain becomes one blockchain platform; an unrecognized
// chain name is fatal for the record.
func (r *CurrencyRecord) Normalize() (core.Currency, error) {
	blockchains := make([]core.BlockchainPlatform, 0, len(r.Chains))
	for _, ch := range r.Chains {
		chain, err := core.ParseBlockchain(ch.ChainName)
		if err != nil {
			return core.Currency{}, fmt.Errorf("normalize %q: %w", r.Currency, err)
		}
		blockchains = append(blockchains, core.BlockchainPlatform{
			Chain:     chain,
			Address:   ch.ContractAddress,
			IsWrapped: core.IsWrappedToken(r.FullName, r.Currency),
		})
	}

	currency := core.Currency{
		Exchange:    core.ExchangeKucoin,
		Symbol:      r.Currency,
		Name:        r.FullName,
		Status:      listingStatus(r.IsDepositEnabled, r.IsWithdrawEnabled),
		Blockchains: blockchains,
	}
	if r.Name != "" && r.Name != r.FullName {
		display := r.Name
		currency.DisplayName = &display
	}
	return currency, nil
}

// listingStatus renders deposit/withdraw availability as the free-text
// status. The feed carries no last-updated timestamp to derive it from.
func listingStatus(deposit, withdraw bool) string {
	switch {
	case deposit && withdraw:
		return "active"
	case deposit:
		return "withdraw disabled"
	case withdraw:
		return "deposit disabled"
	default:
		return "suspended"
	}
}

// NormalizeCurrencies unwraps a raw currencies response and normalizes
// every record. A failure on any record fails the batch.
func NormalizeCurrencies(doc []byte) ([]core.Currency, error) {
	records, err := UnwrapCurrencies(doc)
	if err != nil {
		return nil, err
	}

	currencies := make([]core.Currency, 0, len(records))
	for i := range records {
		currency, err := records[i].Normalize()
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, currency)
	}
	return currencies, nil
}

// Codec implements the exchange.Codec contract for Kucoin.
type Codec struct{}

var _ exchange.Codec = (*Codec)(nil)

// NewCodec creates a new Kucoin codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Exchange returns the Kucoin exchange tag.
func (c *Codec) Exchange() core.Exchange {
	return core.ExchangeKucoin
}

// DecodePair validates a native pair string and returns it in the
// canonical explicit form.
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

// NormalizeCurrencies unwraps a raw currencies response and normalizes
// every record into a canonical currency. The quote-currency option does
// not apply to this feed; Kucoin's currency metadata carries no market
// metrics.
func (c *Codec) NormalizeCurrencies(doc []byte, _ ...exchange.Option) ([]core.Currency, error) {
	return NormalizeCurrencies(doc)
}
