package domain

import (
	"encoding/json"
	"log"
	"strings"
)

// ReportEntry is one user report on a promotion. The full set is stored on
// the promotion row as a single JSON array (legacy format: `[{"id":1,"report":"..."}]`).
type ReportEntry struct {
	ReporterID int64  `json:"id"`
	Report     string `json:"report"`
}

// ParseReports decodes the stored report blob. Stored data written by older
// clients can be malformed; anything unparseable reads as an empty list so
// the report path stays available.
func ParseReports(raw string) []ReportEntry {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []ReportEntry{}
	}

	var entries []ReportEntry
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return entries
	}

	// Single object without the surrounding array.
	var one ReportEntry
	if err := json.Unmarshal([]byte(raw), &one); err == nil {
		return []ReportEntry{one}
	}

	log.Printf("report_parse_failed raw=%q", raw)
	return []ReportEntry{}
}

// EncodeReports serializes entries back into the stored blob format.
func EncodeReports(entries []ReportEntry) string {
	if entries == nil {
		entries = []ReportEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(b)
}
