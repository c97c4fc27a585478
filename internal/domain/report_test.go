package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReportsValidArray(t *testing.T) {
	entries := ParseReports(`[{"id":3,"report":"Spam or scam: fake discount"},{"id":4,"report":"Expired: long gone"}]`)
	assert.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[0].ReporterID)
	assert.Equal(t, "Spam or scam: fake discount", entries[0].Report)
}

func TestParseReportsEmptyInputs(t *testing.T) {
	assert.Empty(t, ParseReports(""))
	assert.Empty(t, ParseReports("   "))
	assert.Empty(t, ParseReports("[]"))
}

func TestParseReportsSingleObject(t *testing.T) {
	entries := ParseReports(`{"id":7,"report":"Misleading"}`)
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].ReporterID)
}

func TestParseReportsMalformedReadsAsEmpty(t *testing.T) {
	for _, raw := range []string{
		"{id: 1, report: bad}",
		"not json at all",
		`[{"id":"one"`,
		"null garbage",
	} {
		assert.Empty(t, ParseReports(raw), "raw=%q", raw)
	}
}

func TestEncodeReportsRoundTrip(t *testing.T) {
	in := []ReportEntry{{ReporterID: 3, Report: "Spam or scam: fake discount"}}
	out := ParseReports(EncodeReports(in))
	assert.Equal(t, in, out)
}

func TestEncodeReportsNilIsEmptyArray(t *testing.T) {
	assert.Equal(t, "[]", EncodeReports(nil))
}
