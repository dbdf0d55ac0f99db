// Output interpretation.
//
// Information Hiding:
// - Memoisation of derived views hidden
// - Execution failure propagated uniformly to every view
// - Record filtering for match-only views internalized

package ripgrep

import (
	"bytes"

	"github.com/charmbracelet/log"
)

// Interpreter derives views from one execution result. Each view is
// computed on first request and the same value, or the same error, is
// returned afterwards. Like Search, it is not safe for concurrent use.
type Interpreter struct {
	result     *ExecutionResult
	err        error
	structured bool
	logger     *log.Logger

	textDone bool
	text     string

	recordsDone bool
	records     []Record
	recordsErr  error

	groupedDone bool
	grouped     *Grouped
	groupedErr  error

	matchesDone bool
	matches     []byte
	matchesErr  error
}

// NewInterpreter wraps a result. structured says whether the run used
// JSON output; record views fail with *UnstructuredOutputError otherwise.
func NewInterpreter(res *ExecutionResult, structured bool) *Interpreter {
	return newInterpreter(res, structured, discardLogger)
}

func newInterpreter(res *ExecutionResult, structured bool, logger *log.Logger) *Interpreter {
	return &Interpreter{
		result:     res,
		err:        res.Err(),
		structured: structured,
		logger:     logger,
	}
}

// failedInterpreter answers every view with err, for runs that never
// produced a result.
func failedInterpreter(err error, structured bool, logger *log.Logger) *Interpreter {
	return &Interpreter{err: err, structured: structured, logger: logger}
}

// Text returns stdout unmodified.
func (in *Interpreter) Text() (string, error) {
	if in.err != nil {
		return "", in.err
	}
	if !in.textDone {
		in.text = string(in.result.Stdout)
		in.textDone = true
	}
	return in.text, nil
}

// Records returns every record in emission order.
func (in *Interpreter) Records() ([]Record, error) {
	if !in.structured {
		return nil, &UnstructuredOutputError{View: "Records"}
	}
	if in.err != nil {
		return nil, in.err
	}
	if !in.recordsDone {
		in.records, in.recordsErr = ParseRecords(in.result.Stdout)
		in.recordsDone = true
		if in.recordsErr != nil {
			in.logger.Warn("could not parse ripgrep output", "error", in.recordsErr)
		} else {
			in.logger.Debug("parsed ripgrep output", "records", len(in.records))
		}
	}
	return in.records, in.recordsErr
}

// Grouped returns match entries grouped by path.
func (in *Interpreter) Grouped() (*Grouped, error) {
	if !in.structured {
		return nil, &UnstructuredOutputError{View: "Grouped"}
	}
	if !in.groupedDone {
		records, err := in.Records()
		if err != nil {
			in.groupedErr = err
		} else {
			in.grouped = groupMatches(records)
			if n := in.grouped.Skipped(); n > 0 {
				in.logger.Debug("skipped non-UTF-8 matches", "count", n)
			}
		}
		in.groupedDone = true
	}
	return in.grouped, in.groupedErr
}

// MatchesJSON returns the raw match records as a JSON array. With no
// matches the result is "[]".
func (in *Interpreter) MatchesJSON() ([]byte, error) {
	if !in.structured {
		return nil, &UnstructuredOutputError{View: "MatchesJSON"}
	}
	if !in.matchesDone {
		records, err := in.Records()
		if err != nil {
			in.matchesErr = err
		} else {
			var buf bytes.Buffer
			buf.WriteByte('[')
			n := 0
			for _, rec := range records {
				if rec.Type != RecordMatch {
					continue
				}
				if n > 0 {
					buf.WriteByte(',')
				}
				buf.Write(rec.Raw)
				n++
			}
			buf.WriteByte(']')
			in.matches = buf.Bytes()
		}
		in.matchesDone = true
	}
	return in.matches, in.matchesErr
}
