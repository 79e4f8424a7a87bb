// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
)

// object is a decoded JSON object whose values are still raw.
type object map[string]json.RawMessage

var jsonNull = []byte("null")

// decodeObject parses body as a JSON object and rejects any key not listed
// in allowed.
func decodeObject(body []byte, allowed ...string) (object, error) {
	var obj object
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return nil, newValidationError("", ErrNotAnObject)
	}

	for key := range obj {
		if !slices.Contains(allowed, key) {
			return nil, newValidationError(key, ErrUnexpectedKey)
		}
	}

	return obj, nil
}

// raw returns the raw value of key. ok is false when the key is absent.
// A present null value is rejected.
func (o object) raw(key string, required bool) (json.RawMessage, bool, error) {
	value, ok := o[key]
	if !ok {
		if required {
			return nil, false, newValidationError(key, ErrMissingField)
		}
		return nil, false, nil
	}

	if bytes.Equal(bytes.TrimSpace(value), jsonNull) {
		return nil, false, newValidationError(key, ErrNullValue)
	}

	return value, true, nil
}

// nonEmptyString reads key as a non-empty JSON string.
func (o object) nonEmptyString(key string, required bool) (*string, error) {
	value, ok, err := o.raw(key, required)
	if err != nil || !ok {
		return nil, err
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, newValidationError(key, ErrWrongType)
	}
	if s == "" {
		return nil, newValidationError(key, ErrEmptyString)
	}

	return &s, nil
}

// number reads key as a JSON number within [lo, hi].
func (o object) number(key string, required bool, lo, hi float64) (*float64, error) {
	value, ok, err := o.raw(key, required)
	if err != nil || !ok {
		return nil, err
	}

	var n float64
	if err := json.Unmarshal(value, &n); err != nil {
		return nil, newValidationError(key, ErrWrongType)
	}
	if n < lo || n > hi {
		return nil, newValidationError(key, ErrOutOfRange)
	}

	return &n, nil
}

// integer reads key as an integral JSON number within [lo, hi].
func (o object) integer(key string, required bool, lo, hi int) (*int, error) {
	n, err := o.number(key, required, float64(lo), float64(hi))
	if err != nil || n == nil {
		return nil, err
	}
	if math.Trunc(*n) != *n {
		return nil, newValidationError(key, ErrNotInteger)
	}

	i := int(*n)
	return &i, nil
}
