package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(rows []row[testRecord]) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.record.Name
	}
	return out
}

func rowsFor(records ...testRecord) []row[testRecord] {
	out := make([]row[testRecord], len(records))
	for i, r := range records {
		out[i] = row[testRecord]{record: r, id: r.Name}
	}
	return out
}

func TestSortRows_StringCaseInsensitive(t *testing.T) {
	col := Column[testRecord]{Key: "name", Sort: SortString, Value: func(r testRecord) string { return r.Name }}
	rows := rowsFor(
		testRecord{Name: "Web"},
		testRecord{Name: "api"},
		testRecord{Name: "LDAP"},
	)

	sortRows(rows, col, Ascending)
	assert.Equal(t, []string{"api", "LDAP", "Web"}, namesOf(rows))

	sortRows(rows, col, Descending)
	assert.Equal(t, []string{"Web", "LDAP", "api"}, namesOf(rows))
}

func TestSortRows_NumbersWithUnparsableLastBothDirections(t *testing.T) {
	col := Column[testRecord]{Key: "bits", Sort: SortNumber, Value: func(r testRecord) string { return r.KeyBits }}
	rows := rowsFor(
		testRecord{Name: "a", KeyBits: "4096"},
		testRecord{Name: "b", KeyBits: ""},
		testRecord{Name: "c", KeyBits: "256"},
		testRecord{Name: "d", KeyBits: "garbage"},
		testRecord{Name: "e", KeyBits: "2048"},
	)

	sortRows(rows, col, Ascending)
	assert.Equal(t, []string{"c", "e", "a", "b", "d"}, namesOf(rows))

	sortRows(rows, col, Descending)
	assert.Equal(t, []string{"a", "e", "c", "b", "d"}, namesOf(rows),
		"descending reverses numbers but keeps missing values last")
}

func TestSortRows_DatesStableAndIdempotent(t *testing.T) {
	col := Column[testRecord]{Key: "expires", Sort: SortDate, Value: func(r testRecord) string { return r.Expires }}
	rows := rowsFor(
		testRecord{Name: "a", Expires: "2026-09-01T00:00:00Z"},
		testRecord{Name: "b", Expires: "2026-09-01T00:00:00Z"},
		testRecord{Name: "c", Expires: "2025-01-01T00:00:00Z"},
	)

	sortRows(rows, col, Ascending)
	first := namesOf(rows)
	assert.Equal(t, []string{"c", "a", "b"}, first, "ties keep input order")

	sortRows(rows, col, Ascending)
	assert.Equal(t, first, namesOf(rows), "sorting already-sorted input changes nothing")
}

func TestParseTimestamp_AcceptsKnownLayouts(t *testing.T) {
	for _, value := range []string{
		"2026-08-23T10:30:00Z",
		"2026-08-23T10:30:00.123456789Z",
		"2026-08-23 10:30:00",
		"2026-08-23",
	} {
		_, ok := parseTimestamp(value)
		require.True(t, ok, "expected %q to parse", value)
	}
	for _, value := range []string{"", "soon", "23/08/2026"} {
		_, ok := parseTimestamp(value)
		require.False(t, ok, "expected %q not to parse", value)
	}
}
