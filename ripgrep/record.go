// JSON Lines record model.
//
// Information Hiding:
// - Envelope decoding hidden behind ParseRecords
// - Text vs base64 payload representation abstracted by Data
// - Elapsed-time encoding converted through Duration

package ripgrep

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// RecordType is the value of a record's "type" field.
type RecordType string

const (
	RecordBegin   RecordType = "begin"
	RecordMatch   RecordType = "match"
	RecordContext RecordType = "context"
	RecordEnd     RecordType = "end"
	RecordSummary RecordType = "summary"
)

// Record is one decoded line of ripgrep's JSON output. Exactly one of the
// payload fields is set, according to Type. Raw holds the line as ripgrep
// wrote it.
type Record struct {
	Type    RecordType
	Begin   *Begin
	Match   *Line
	Context *Line
	End     *End
	Summary *Summary
	Raw     json.RawMessage
}

// Path returns the file path carried by begin, match, context and end
// records. Summary records have none.
func (r Record) Path() (Data, bool) {
	switch {
	case r.Begin != nil:
		return r.Begin.Path, true
	case r.Match != nil:
		return r.Match.Path, true
	case r.Context != nil:
		return r.Context.Path, true
	case r.End != nil:
		return r.End.Path, true
	}
	return Data{}, false
}

// Data is ripgrep's arbitrary-data object: UTF-8 text, or base64 encoded
// bytes when the content is not valid UTF-8.
type Data struct {
	Text  string `json:"text,omitempty"`
	Bytes string `json:"bytes,omitempty"`
}

// Binary reports whether the payload was delivered base64 encoded.
func (d Data) Binary() bool { return d.Bytes != "" }

// Value returns the raw payload bytes.
func (d Data) Value() ([]byte, error) {
	if d.Bytes != "" {
		return base64.StdEncoding.DecodeString(d.Bytes)
	}
	return []byte(d.Text), nil
}

// String returns the text payload, or the decoded bytes with invalid
// sequences replaced.
func (d Data) String() string {
	if d.Bytes == "" {
		return d.Text
	}
	b, err := base64.StdEncoding.DecodeString(d.Bytes)
	if err != nil {
		return d.Bytes
	}
	return strings.ToValidUTF8(string(b), "�")
}

// Begin marks the start of results for a path.
type Begin struct {
	Path Data `json:"path"`
}

// Line is the payload of match and context records.
type Line struct {
	Path           Data       `json:"path"`
	Lines          Data       `json:"lines"`
	LineNumber     int64      `json:"line_number"` // 0 when not computed
	AbsoluteOffset uint64     `json:"absolute_offset"`
	Submatches     []Submatch `json:"submatches"`
}

// Submatch locates one match within Lines. Start and End are byte
// offsets into the decoded Lines payload.
type Submatch struct {
	Match       Data  `json:"match"`
	Replacement *Data `json:"replacement,omitempty"`
	Start       int   `json:"start"`
	End         int   `json:"end"`
}

// End marks the end of results for a path.
type End struct {
	Path         Data    `json:"path"`
	BinaryOffset *uint64 `json:"binary_offset"`
	Stats        Stats   `json:"stats"`
}

// Summary closes the stream with aggregate statistics.
type Summary struct {
	ElapsedTotal Duration `json:"elapsed_total"`
	Stats        Stats    `json:"stats"`
}

// Stats are the per-path or aggregate counters ripgrep reports.
type Stats struct {
	Elapsed           Duration `json:"elapsed"`
	Searches          uint64   `json:"searches"`
	SearchesWithMatch uint64   `json:"searches_with_match"`
	BytesSearched     uint64   `json:"bytes_searched"`
	BytesPrinted      uint64   `json:"bytes_printed"`
	MatchedLines      uint64   `json:"matched_lines"`
	Matches           uint64   `json:"matches"`
}

// Duration is ripgrep's elapsed-time object.
type Duration struct {
	Secs  uint64 `json:"secs"`
	Nanos uint32 `json:"nanos"`
	Human string `json:"human"`
}

// Duration converts to a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d.Secs)*time.Second + time.Duration(d.Nanos)
}
