package ripgrep

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type envelope struct {
	Type RecordType      `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ParseRecords decodes ripgrep's JSON Lines output. Blank lines are
// skipped. The first line that is not a well-formed record aborts parsing
// with a *MalformedRecordError naming its 0-based line index; no partial
// result is returned. Unknown fields inside a record are ignored, an
// unknown record type is not.
func ParseRecords(stdout []byte) ([]Record, error) {
	records := []Record{}
	for i, line := range bytes.Split(stdout, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return nil, &MalformedRecordError{Line: i, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(line []byte) (Record, error) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return Record{}, err
	}
	if env.Type == "" {
		return Record{}, errors.New("missing record type")
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return Record{}, fmt.Errorf("%s record has no data", env.Type)
	}

	rec := Record{Type: env.Type, Raw: json.RawMessage(line)}
	var target any
	switch env.Type {
	case RecordBegin:
		rec.Begin = new(Begin)
		target = rec.Begin
	case RecordMatch:
		rec.Match = new(Line)
		target = rec.Match
	case RecordContext:
		rec.Context = new(Line)
		target = rec.Context
	case RecordEnd:
		rec.End = new(End)
		target = rec.End
	case RecordSummary:
		rec.Summary = new(Summary)
		target = rec.Summary
	default:
		return Record{}, fmt.Errorf("unknown record type %q", env.Type)
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return Record{}, fmt.Errorf("decode %s data: %w", env.Type, err)
	}
	return rec, nil
}
