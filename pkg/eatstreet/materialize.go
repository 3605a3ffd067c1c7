package eatstreet

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Merge decodes a JSON object into an already-existing instance, overwriting
// only the fields present in the payload and leaving every other field,
// including client-only fields tagged `json:"-"`, untouched. It returns the
// sorted set of top-level JSON keys present in the payload.
//
// This is how an Order retains identity across the validate-then-send
// workflow: the server's price and identity fields land on the caller's
// original object without losing per-order overrides.
func Merge(data []byte, into any) ([]string, error) {
	value := reflect.ValueOf(into)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return nil, ErrMergeTargetNil
	}

	var present map[string]json.RawMessage

	err := json.Unmarshal(data, &present)
	if err != nil {
		return nil, fmt.Errorf("decoding merge payload: %w", err)
	}

	err = json.Unmarshal(data, into)
	if err != nil {
		return nil, fmt.Errorf("merging payload into %T: %w", into, err)
	}

	applied := make([]string, 0, len(present))
	for key := range present {
		applied = append(applied, key)
	}

	sort.Strings(applied)

	return applied, nil
}
