package core

import (
	"errors"
	"fmt"
)

// PairError is returned when a native pair string violates an exchange's
// charset rules, or when every encoding fallback strategy has been
// exhausted. It carries the offending raw text for diagnosis.
type PairError struct {
	// Exchange identifies whose validity rules rejected the pair.
	Exchange Exchange `json:"exchange"`
	// Raw is the offending pair text.
	Raw string `json:"raw"`
	// Reason describes why the pair was rejected.
	Reason string `json:"reason"`
}

// Error implements the error interface for PairError.
func (e *PairError) Error() string {
	return fmt.Sprintf("[%s] invalid trading pair %q: %s", e.Exchange, e.Raw, e.Reason)
}

// EnvelopeError is returned when a segment of the expected response
// envelope path is absent from the document.
type EnvelopeError struct {
	// Field is the missing path segment.
	Field string `json:"field"`
	// Path is the full path that was being walked, for context.
	Path string `json:"path"`
}

// Error implements the error interface for EnvelopeError.
func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("envelope field %q not found (walking %q)", e.Field, e.Path)
}

// SchemaError is returned when a document value exists but has a
// different shape than the envelope contract expects.
type SchemaError struct {
	// Path locates the offending value.
	Path string `json:"path"`
	// Want is the expected JSON shape (e.g. "array").
	Want string `json:"want"`
	// Got is the shape actually found.
	Got string `json:"got"`
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch at %q: want %s, got %s", e.Path, e.Want, e.Got)
}

// DecodeError is returned when one element of a batch fails typed
// decoding. Batch decoding is all-or-nothing: a single bad element fails
// the whole batch with no partial results.
type DecodeError struct {
	// Index is the position of the bad element in the batch array.
	Index int `json:"index"`
	// Err is the underlying decode or validation failure.
	Err error `json:"-"`
}

// Error implements the error interface for DecodeError.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode record %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// BlockchainError is returned when a platform name from a feed does not
// match any known chain. It is fatal for the affected record's
// normalization; silently dropping the platform link would corrupt the
// wrapped-token heuristic.
type BlockchainError struct {
	// Name is the unrecognized platform name.
	Name string `json:"name"`
}

// Error implements the error interface for BlockchainError.
func (e *BlockchainError) Error() string {
	return fmt.Sprintf("unrecognized blockchain %q", e.Name)
}

// IsInvalidPair returns true if the error is a pair charset or encoding failure.
func IsInvalidPair(err error) bool {
	var e *PairError
	return errors.As(err, &e)
}

// IsMissingEnvelopeField returns true if the error is a missing envelope segment.
func IsMissingEnvelopeField(err error) bool {
	var e *EnvelopeError
	return errors.As(err, &e)
}

// IsSchemaMismatch returns true if the error is an envelope shape mismatch.
func IsSchemaMismatch(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// IsRecordDecode returns true if the error is a per-element batch decode failure.
func IsRecordDecode(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// IsUnrecognizedBlockchain returns true if the error is an unknown chain name.
func IsUnrecognizedBlockchain(err error) bool {
	var e *BlockchainError
	return errors.As(err, &e)
}
