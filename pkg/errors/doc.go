// Package errors provides structured error types used to classify catalog
// and configuration failures.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "catalog request failed",
//	    cause,
//	    map[string]any{
//	        "endpoint": "search",
//	        "status":   503,
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeUnavailable) {
//	    // tell the user the server could not be reached
//	}
package errors
