package store

import "github.com/xgx-io/anyerr/converter"

// Pair is one key/value argument parsed by Pairs.
type Pair struct {
	Key   any
	Value any
}

// Pairs parses a variadic list of alternating key/value arguments.
//
// Rules:
//   - Pairs are read left-to-right as (key, value).
//   - A nil key drops the ENTIRE pair (the key and its following value, if
//     any) so that a value never shifts into the next pair's key position.
//   - A trailing key with no value becomes (key, nil).
//
// Whether a key fits a particular store is decided later, at insertion.
func Pairs(kv ...any) []Pair {
	if len(kv) == 0 {
		return nil
	}
	out := make([]Pair, 0, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		k := kv[i]
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		if k == nil {
			continue
		}
		out = append(out, Pair{Key: k, Value: v})
	}
	return out
}

// InsertPairs inserts every parsed pair into c using conv.
func InsertPairs[C Context[C]](c C, conv converter.Converter, kv ...any) C {
	for _, p := range Pairs(kv...) {
		c = c.InsertAny(conv, p.Key, p.Value)
	}
	return c
}
