package merge

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// KV is one entry of an ordered keyed object: Key is kept when Value is
// truthy.
type KV struct {
	Key   string
	Value any
}

// Flatten walks values depth-first, left to right, and returns the class
// tokens they contain. Strings are split on whitespace. Nil, bools, empty
// strings and zero numbers are dropped; other numbers are kept as text.
// Every integer and float kind counts as a number. Slices are recursed
// into. []KV contributes keys in order and maps (map[string]bool,
// map[string]string, map[string]any) contribute keys in sorted order, in
// both cases only for truthy values. Values of any other type are dropped.
func Flatten(values ...any) []string {
	var out []string
	for _, v := range values {
		out = flatten(out, v)
	}
	return out
}

func flatten(out []string, v any) []string {
	switch x := v.(type) {
	case nil:
		return out
	case string:
		return append(out, strings.Fields(x)...)
	case []string:
		for _, s := range x {
			out = append(out, strings.Fields(s)...)
		}
		return out
	case []any:
		for _, item := range x {
			out = flatten(out, item)
		}
		return out
	case KV:
		if truthy(x.Value) {
			out = append(out, strings.Fields(x.Key)...)
		}
		return out
	case []KV:
		for _, kv := range x {
			out = flatten(out, kv)
		}
		return out
	case map[string]bool:
		for _, k := range sortedKeys(x) {
			if x[k] {
				out = append(out, strings.Fields(k)...)
			}
		}
		return out
	case map[string]string:
		for _, k := range sortedKeys(x) {
			if x[k] != "" {
				out = append(out, strings.Fields(k)...)
			}
		}
		return out
	case map[string]any:
		for _, k := range sortedKeys(x) {
			if truthy(x[k]) {
				out = append(out, strings.Fields(k)...)
			}
		}
		return out
	case fmt.Stringer:
		return append(out, strings.Fields(x.String())...)
	default:
		if isNumber(v) && truthy(v) {
			out = append(out, fmt.Sprint(v))
		}
		return out
	}
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if isNumber(v) {
		return !reflect.ValueOf(v).IsZero()
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
