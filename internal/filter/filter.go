// Package filter provides JQ-compatible filtering for JSON output.
package filter

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Apply applies a JQ filter expression to the input data.
// An empty expression returns the data unchanged.
func Apply(data any, expression string) (any, error) {
	if expression == "" {
		return data, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	iter := query.Run(data)

	var results []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("filter error: %w", err)
		}
		results = append(results, v)
	}

	// Single result unwrapped, multiple as array
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}
