package survey

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// ErrNoConsent is returned for a response submitted without research consent.
var ErrNoConsent = errors.New("research consent not given")

// Record is an answers snapshot with its estimate, as stored for research.
type Record struct {
	ID          string            `json:"id"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Answers     footprint.Answers `json:"answers"`
	Result      footprint.Result  `json:"result"`
}

// NewRecord sanitizes a copy of answers, estimates it and stamps the result
// with a ULID and the UTC time now.
func NewRecord(answers footprint.Answers, now time.Time) Record {
	a := answers
	a.Devices = append([]footprint.Device(nil), answers.Devices...)
	Sanitize(&a)

	now = now.UTC()
	return Record{
		ID:          ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		SubmittedAt: now,
		Answers:     a,
		Result:      footprint.Estimate(a),
	}
}

// CheckConsent returns ErrNoConsent unless the respondent agreed to take
// part in the research.
func CheckConsent(a footprint.Answers) error {
	if !a.ResearchConsent {
		return ErrNoConsent
	}
	return nil
}

// WriteRecords writes records to w as JSON lines.
func WriteRecords(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding record %s: %w", r.ID, err)
		}
	}
	return nil
}

// AppendRecords appends records to the JSON-lines file at path, creating it
// and its directory if needed.
func AppendRecords(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating records directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening records file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err = WriteRecords(w, records); err != nil {
		_ = f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flushing records: %w", err)
	}
	return f.Close()
}

// ReadRecords reads JSON-lines records from r.
func ReadRecords(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	var out []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding record %d: %w", len(out)+1, err)
		}
		out = append(out, rec)
	}
}
