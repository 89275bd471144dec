package tableview

import "strings"

// searchRows keeps the rows whose value in any of the search columns
// contains the query, case-insensitively. An empty query keeps everything
// in input order.
func searchRows[T any](rows []row[T], query string, cols []Column[T]) []row[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := rows[:0:0]
	for _, r := range rows {
		for _, col := range cols {
			if strings.Contains(strings.ToLower(col.Value(r.record)), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
