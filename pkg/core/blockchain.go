package core

import "strings"

// Blockchain identifies a known blockchain platform a token can live on.
type Blockchain int

// Blockchain constants define the closed set of recognized chains.
const (
	// BlockchainEthereum is the Ethereum mainnet.
	BlockchainEthereum Blockchain = iota
	// BlockchainBNBSmartChain is the BNB Smart Chain (BEP20).
	BlockchainBNBSmartChain
	// BlockchainSolana is the Solana mainnet.
	BlockchainSolana
	// BlockchainPolygon is the Polygon PoS chain.
	BlockchainPolygon
	// BlockchainAvalanche is the Avalanche C-Chain.
	BlockchainAvalanche
	// BlockchainTron is the TRON mainnet.
	BlockchainTron
	// BlockchainArbitrum is the Arbitrum One rollup.
	BlockchainArbitrum
	// BlockchainOptimism is the OP Mainnet rollup.
	BlockchainOptimism
	// BlockchainBase is the Base rollup.
	BlockchainBase
	// BlockchainFantom is the Fantom Opera chain.
	BlockchainFantom
	// BlockchainCardano is the Cardano mainnet.
	BlockchainCardano
	// BlockchainAlgorand is the Algorand mainnet.
	BlockchainAlgorand
	// BlockchainPolkadot is the Polkadot relay chain.
	BlockchainPolkadot
	// BlockchainNear is the NEAR protocol chain.
	BlockchainNear
	// BlockchainTon is The Open Network chain.
	BlockchainTon
)

// String returns the canonical name of the blockchain.
func (b Blockchain) String() string {
	return [...]string{
		"Ethereum",
		"BNB Smart Chain",
		"Solana",
		"Polygon",
		"Avalanche",
		"TRON",
		"Arbitrum",
		"Optimism",
		"Base",
		"Fantom",
		"Cardano",
		"Algorand",
		"Polkadot",
		"NEAR",
		"TON",
	}[b]
}

// MarshalJSON implements json.Marshaler for Blockchain.
func (b Blockchain) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Blockchain.
func (b *Blockchain) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBlockchain(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// blockchainAliases maps lowercased platform names, as they appear in
// exchange metadata feeds, to the canonical chain. Feeds are inconsistent
// about suffixes like "(BEP20)" or "C-Chain", so each chain lists the
// spellings observed in the wild.
var blockchainAliases = map[string]Blockchain{
	"ethereum":                BlockchainEthereum,
	"eth":                     BlockchainEthereum,
	"erc20":                   BlockchainEthereum,
	"bnb smart chain (bep20)": BlockchainBNBSmartChain,
	"bnb smart chain":         BlockchainBNBSmartChain,
	"binance smart chain":     BlockchainBNBSmartChain,
	"bnb":                     BlockchainBNBSmartChain,
	"bsc":                     BlockchainBNBSmartChain,
	"bep20":                   BlockchainBNBSmartChain,
	"solana":                  BlockchainSolana,
	"sol":                     BlockchainSolana,
	"polygon":                 BlockchainPolygon,
	"polygon pos":             BlockchainPolygon,
	"matic":                   BlockchainPolygon,
	"avalanche c-chain":       BlockchainAvalanche,
	"avalanche":               BlockchainAvalanche,
	"avax":                    BlockchainAvalanche,
	"tron":                    BlockchainTron,
	"tron20":                  BlockchainTron,
	"trc20":                   BlockchainTron,
	"arbitrum":                BlockchainArbitrum,
	"arbitrum one":            BlockchainArbitrum,
	"optimism":                BlockchainOptimism,
	"op mainnet":              BlockchainOptimism,
	"base":                    BlockchainBase,
	"fantom":                  BlockchainFantom,
	"ftm":                     BlockchainFantom,
	"cardano":                 BlockchainCardano,
	"ada":                     BlockchainCardano,
	"algorand":                BlockchainAlgorand,
	"algo":                    BlockchainAlgorand,
	"polkadot":                BlockchainPolkadot,
	"dot":                     BlockchainPolkadot,
	"near":                    BlockchainNear,
	"near protocol":           BlockchainNear,
	"ton":                     BlockchainTon,
	"the open network":        BlockchainTon,
	"toncoin":                 BlockchainTon,
}

// ParseBlockchain maps a platform name from an exchange feed to its
// canonical chain. Matching is case-insensitive against the alias table.
// An unrecognized name returns a *BlockchainError; it is never silently
// dropped, since a missing platform link would corrupt the wrapped-token
// heuristic downstream.
func ParseBlockchain(name string) (Blockchain, error) {
	chain, ok := blockchainAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &BlockchainError{Name: name}
	}
	return chain, nil
}
