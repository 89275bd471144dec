package tableview

import (
	"fmt"
	"sort"
)

// Predicate reports whether a record matches the active value of one
// structured filter. Predicates are supplied by the caller per filter key.
type Predicate[T any] func(record T, value string) bool

// filterRows keeps the rows for which every active filter's predicate
// holds. A filter whose value is the empty string is inactive and does not
// restrict the result. Filters combine with logical AND across keys.
//
// A predicate that panics excludes only the offending record; the panic is
// reported through onError so one malformed record cannot hide the rest of
// the table.
func filterRows[T any](rows []row[T], active map[string]string, predicates map[string]Predicate[T], onError func(key string, err error)) []row[T] {
	keys := make([]string, 0, len(active))
	for key, value := range active {
		if value == "" {
			continue
		}
		if _, ok := predicates[key]; !ok {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return rows
	}
	sort.Strings(keys)

	out := rows[:0:0]
	for _, r := range rows {
		keep := true
		for _, key := range keys {
			if !evalPredicate(predicates[key], r.record, key, active[key], onError) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

func evalPredicate[T any](p Predicate[T], record T, key, value string, onError func(key string, err error)) (keep bool) {
	defer func() {
		if r := recover(); r != nil {
			keep = false
			if onError != nil {
				onError(key, fmt.Errorf("filter %q: %v", key, r))
			}
		}
	}()
	return p(record, value)
}
