/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package collect

import (
	"encoding/json"
	"fmt"
	"time"
)

// Output is one key/value pair exported by a stack
type Output struct {
	Key   string
	Value any
}

// MarshalJSON renders the output with its value converted to a JSON-friendly
// form. An unconvertible value type fails loudly rather than producing a
// partial report.
func (o Output) MarshalJSON() ([]byte, error) {
	value, err := serializeValue(o.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Key   string
		Value any
	}{o.Key, value})
}

// serializeValue converts structured output values for serialization:
// timestamps become ISO-8601 strings and binary values are decoded to text
func serializeValue(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool, int, int32, int64, float32, float64:
		return value, nil
	case time.Time:
		return value.Format(time.RFC3339Nano), nil
	case *time.Time:
		if value == nil {
			return nil, nil
		}
		return value.Format(time.RFC3339Nano), nil
	case []byte:
		return string(value), nil
	default:
		return nil, fmt.Errorf("cannot serialize output value of type %T", v)
	}
}

// Result is the outcome of collecting one profile: either the outputs of the
// first matching stack or the captured failure message. Exactly one side is
// populated, and a Result is never modified once produced.
type Result struct {
	Outputs   []Output
	Exception string
}

// Success builds a successful result. A nil slice is normalised to an empty
// one so that "no matching stack" serializes as an explicit empty outputs
// list rather than an absent value.
func Success(outputs []Output) Result {
	if outputs == nil {
		outputs = []Output{}
	}
	return Result{Outputs: outputs}
}

// Failure builds a failed result carrying the stringified underlying error
func Failure(message string) Result {
	return Result{Exception: message}
}

// Failed reports whether the result captured a failure
func (r Result) Failed() bool {
	return r.Exception != ""
}

// MarshalJSON renders the populated variant only: {"outputs": [...]} on
// success, {"exception": "..."} on failure
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Exception string `json:"exception"`
		}{r.Exception})
	}

	outputs := r.Outputs
	if outputs == nil {
		outputs = []Output{}
	}
	return json.Marshal(struct {
		Outputs []Output `json:"outputs"`
	}{outputs})
}
