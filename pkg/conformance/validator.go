// Package conformance verifies locally normalized currency batches
// against an externally supplied canonical reference set. It is used for
// conformance testing against a trusted oracle dataset.
package conformance

import (
	"github.com/rs/zerolog"

	"nakula/pkg/core"
)

// Validator compares normalized batches against reference datasets.
// Mismatches are logged for diagnosis but never fail a validation run.
type Validator struct {
	logger zerolog.Logger
}

// New creates a Validator that logs mismatches to the given logger.
func New(logger zerolog.Logger) *Validator {
	return &Validator{logger: logger}
}

// Equivalent reports whether a locally normalized batch matches a
// reference batch.
//
// The reference dataset expands wrapped-token links into entries the raw
// feed represents as a single record, so the two batches legitimately
// differ in length by exactly the number of such synthetic expansions: a
// reference entry counts as synthetic when at least one of its blockchain
// platforms is flagged wrapped with a resolved wrapped-currency key.
// Equivalence holds iff
//
//	len(local) == len(reference) + syntheticCount
//
// and every reference entry's (name, symbol) appears in the local batch.
// The length equation is the core correctness check; containment is the
// secondary check.
func (v *Validator) Equivalent(local, reference []core.Currency) bool {
	type key struct {
		name   string
		symbol string
	}

	seen := make(map[key]struct{}, len(local))
	for _, cur := range local {
		seen[key{cur.Name, cur.Symbol}] = struct{}{}
	}

	synthetic := 0
	for _, cur := range reference {
		for _, blk := range cur.Blockchains {
			if blk.IsWrapped && blk.WrappedCurrency != "" {
				synthetic++
				break
			}
		}
	}

	if len(local) != len(reference)+synthetic {
		v.logger.Warn().
			Int("local", len(local)).
			Int("reference", len(reference)).
			Int("synthetic", synthetic).
			Msg("batch length does not reconcile with reference")
		return false
	}

	for _, cur := range reference {
		if _, ok := seen[key{cur.Name, cur.Symbol}]; !ok {
			v.logger.Warn().
				Str("name", cur.Name).
				Str("symbol", cur.Symbol).
				Msg("reference entry missing from local batch")
			return false
		}
	}
	return true
}
