package history

import "strings"

// MaxEntries caps the number of remembered searches
const MaxEntries = 10

// Entry is one remembered weather lookup
type Entry struct {
	ID        string `json:"id"`
	Location  string `json:"location"`
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
	Timestamp int64  `json:"timestamp"`
}

// SameLocation reports whether the entry refers to location, ignoring case
func (e Entry) SameLocation(location string) bool {
	return strings.EqualFold(e.Location, location)
}
