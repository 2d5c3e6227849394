// Package envelope provides structured access to nested JSON response
// envelopes. Exchange metadata endpoints bury their payload arrays under
// exchange-specific wrapper paths; this package walks such a path segment
// by segment and reports exactly which segment broke the contract.
package envelope

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"nakula/pkg/core"
)

// Elements walks the given path into the document and returns the raw JSON
// of every element of the array found at the end of it.
//
// An absent path segment fails with *core.EnvelopeError naming that
// segment. A terminal value that is not an array fails with
// *core.SchemaError. The document is fully buffered before the walk
// begins; there is no streaming or partial decoding.
func Elements(doc []byte, path ...string) ([][]byte, error) {
	root, err := sonic.Get(doc)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	full := strings.Join(path, ".")
	node := root
	for _, segment := range path {
		next := node.Get(segment)
		if next == nil || !next.Exists() {
			return nil, &core.EnvelopeError{Field: segment, Path: full}
		}
		node = *next
	}

	if node.Type() != ast.V_ARRAY {
		return nil, &core.SchemaError{Path: full, Want: "array", Got: typeName(node.Type())}
	}

	children, err := node.ArrayUseNode()
	if err != nil {
		return nil, fmt.Errorf("load array at %q: %w", full, err)
	}

	elements := make([][]byte, 0, len(children))
	for i := range children {
		raw, err := children[i].Raw()
		if err != nil {
			return nil, fmt.Errorf("read element %d at %q: %w", i, full, err)
		}
		elements = append(elements, []byte(raw))
	}
	return elements, nil
}

func typeName(t int) string {
	switch t {
	case ast.V_NULL:
		return "null"
	case ast.V_TRUE, ast.V_FALSE:
		return "bool"
	case ast.V_ARRAY:
		return "array"
	case ast.V_OBJECT:
		return "object"
	case ast.V_STRING:
		return "string"
	case ast.V_NUMBER:
		return "number"
	default:
		return "unknown"
	}
}
