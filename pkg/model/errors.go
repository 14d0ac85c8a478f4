package model

import (
	"fmt"
	"strings"
)

// FieldViolation names one offending request field (wire name, e.g.
// "occupancy_rate" or "mvr.trust") and the rule it broke.
type FieldViolation struct {
	Field  string
	Reason string
}

func (v FieldViolation) String() string {
	return v.Field + " " + v.Reason
}

// ValidationError reports every invariant violated by a ScoreRequest. It is
// produced locally, before any network call, and is never the result of a
// server response.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "score request is invalid"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("score request is invalid: %s", strings.Join(parts, "; "))
}

// Has reports whether the error names the given wire field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
