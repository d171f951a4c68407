package fincalc

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// this file handles the calculation history: an append-only JSONL file
// where each line records one calculator invocation. It should remain
// human readable, single file, and easy to merge or prune by hand.

// Field is a named value attached to a Record. Values are kept as the
// validated strings exchanged with the presentation layer, so a record
// round-trips through the history file and the CSV export without
// re-formatting drift.
type Field struct {
	Name  string
	Value string
}

// Record is one calculator invocation: the operation name, the inputs
// the user supplied, and the outputs the engine returned. Records are
// never mutated after being appended to the history.
type Record struct {
	ID      string
	Time    time.Time
	Op      string
	Inputs  []Field
	Outputs []Field
}

// NewRecord creates a record for the given operation with a fresh ID,
// stamped now.
func NewRecord(op string) Record {
	return Record{
		ID:   uuid.NewString(),
		Time: time.Now().UTC().Truncate(time.Second),
		Op:   op,
	}
}

// AddInput appends a named input to the record.
func (r *Record) AddInput(name, value string) {
	r.Inputs = append(r.Inputs, Field{Name: name, Value: value})
}

// AddOutput appends a named output to the record.
func (r *Record) AddOutput(name, value string) {
	r.Outputs = append(r.Outputs, Field{Name: name, Value: value})
}

// Output returns the value of the named output, or "" if absent.
func (r Record) Output(name string) string {
	for _, f := range r.Outputs {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// EncodeRecord writes r to w as a single JSONL line. Field order is
// fixed (id, time, op, inputs, outputs) so that history files diff
// cleanly under version control.
func EncodeRecord(w io.Writer, r Record) error {
	inputs, err := encodeFields(r.Inputs)
	if err != nil {
		return fmt.Errorf("cannot encode inputs of record %s: %w", r.ID, err)
	}
	outputs, err := encodeFields(r.Outputs)
	if err != nil {
		return fmt.Errorf("cannot encode outputs of record %s: %w", r.ID, err)
	}

	var obj jsonObjectWriter
	obj.Append("id", r.ID)
	obj.Append("time", r.Time.Format(time.RFC3339))
	obj.Append("op", r.Op)
	obj.Append("inputs", inputs)
	obj.Append("outputs", outputs)

	line, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode record %s: %w", r.ID, err)
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

func encodeFields(fields []Field) (json.RawMessage, error) {
	var obj jsonObjectWriter
	for _, f := range fields {
		obj.Append(f.Name, f.Value)
	}
	return obj.MarshalJSON()
}

// DecodeHistory reads a stream of JSONL record lines from r and returns
// the records in file order. Empty lines are skipped.
func DecodeHistory(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var raw struct {
			ID      string          `json:"id"`
			Time    string          `json:"time"`
			Op      string          `json:"op"`
			Inputs  json.RawMessage `json:"inputs"`
			Outputs json.RawMessage `json:"outputs"`
		}
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("cannot parse history line %q: %w", string(line), err)
		}

		when, err := time.Parse(time.RFC3339, raw.Time)
		if err != nil {
			return nil, fmt.Errorf("cannot parse time in history line %q: %w", string(line), err)
		}
		inputs, err := decodeFields(raw.Inputs)
		if err != nil {
			return nil, fmt.Errorf("cannot parse inputs in history line %q: %w", string(line), err)
		}
		outputs, err := decodeFields(raw.Outputs)
		if err != nil {
			return nil, fmt.Errorf("cannot parse outputs in history line %q: %w", string(line), err)
		}

		records = append(records, Record{
			ID:      raw.ID,
			Time:    when,
			Op:      raw.Op,
			Inputs:  inputs,
			Outputs: outputs,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// decodeFields parses a flat {"name":"value",...} object preserving the
// field order, which json.Unmarshal into a map would lose.
func decodeFields(raw json.RawMessage) ([]Field, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))

	// consume the opening brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a field name, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string value for field %q, got %v", key, valTok)
		}
		fields = append(fields, Field{Name: key, Value: val})
	}
	return fields, nil
}

// ExportCSV renders history records as tabular text: one row per
// record, inputs and outputs flattened into "name=value" pairs joined
// by "; " so the file opens cleanly in a spreadsheet.
func ExportCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "time", "operation", "inputs", "outputs"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.Time.Format(time.RFC3339),
			r.Op,
			joinFields(r.Inputs),
			joinFields(r.Outputs),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + "=" + f.Value
	}
	return strings.Join(parts, "; ")
}
