package catalog

import (
	"github.com/usestring/capture-apidoc/pkg/types"
)

// SelectExamples picks representative records for an endpoint: the first record
// of each distinct (status, payload present) signature, in input order, stopping
// once limit signatures are collected. limit <= 0 uses types.DefaultMaxExamples.
func SelectExamples(records []types.Record, limit int) []types.Record {
	if limit <= 0 {
		limit = types.DefaultMaxExamples
	}

	examples := make([]types.Record, 0, limit)
	seen := make(map[types.Signature]bool)

	for _, rec := range records {
		sig := rec.Signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		examples = append(examples, rec)
		if len(examples) >= limit {
			break
		}
	}

	return examples
}

// InferMethod labels an endpoint POST if any record carried a non-empty
// payload, GET otherwise. The capture format has no method field, so this is a
// heuristic.
func InferMethod(records []types.Record) string {
	for _, rec := range records {
		if rec.HasNonEmptyPayload() {
			return types.MethodPOST
		}
	}
	return types.MethodGET
}
