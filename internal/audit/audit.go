// Package audit reads the tail of the Bastion daemon's audit log. The
// daemon appends one logfmt-style line per administrative action; certview
// parses them into entries the audit pane can search, filter, and sort.
package audit

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Entry is one parsed audit record. Seq is the entry's position within the
// read window and serves as its display identity; it is not stable across
// file rotation.
type Entry struct {
	Seq     int64
	Time    string
	Actor   string
	Action  string
	Subject string
	Detail  string
}

// Read returns at most maxLines parsed entries from the end of the file at
// path. A missing file yields no entries and no error; the daemon only
// creates the log on its first audited action.
func Read(path string, maxLines int) ([]Entry, error) {
	if path == "" || maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}

	entries := make([]Entry, 0, count)
	start := 0
	if count == maxLines {
		start = idx
	}
	for i := 0; i < count; i++ {
		line := ring[(start+i)%maxLines]
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry := parseLine(line)
		entry.Seq = int64(len(entries))
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseLine decodes a logfmt-style audit line. Unknown keys are folded into
// Detail so nothing the daemon writes is silently dropped; a line with no
// key=value pairs at all becomes a bare Detail entry.
func parseLine(line string) Entry {
	var entry Entry
	var extra []string

	for _, field := range splitFields(line) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			extra = append(extra, field)
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "time", "ts":
			entry.Time = value
		case "actor", "user":
			entry.Actor = value
		case "action":
			entry.Action = value
		case "subject":
			entry.Subject = value
		case "detail", "reason":
			entry.Detail = value
		default:
			extra = append(extra, key+"="+value)
		}
	}

	if len(extra) > 0 {
		if entry.Detail != "" {
			extra = append([]string{entry.Detail}, extra...)
		}
		entry.Detail = strings.Join(extra, " ")
	}
	return entry
}

// splitFields splits on spaces while keeping double-quoted values intact.
func splitFields(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields
}
