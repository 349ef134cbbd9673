package flatfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	domainErrors "github.com/grocermart/partnersync/internal/domain/errors"
)

// Record is one row of a partner flat file, keyed by column name.
type Record map[string]string

// Key returns the value of the layout's natural-key field.
func (r Record) Key(layout Layout) string {
	return r[layout.KeyField]
}

// Codec reads and writes partner flat files: a header row in the layout's
// declared column order followed by one row per record. Quoting and
// embedded delimiters are handled by the underlying CSV format.
type Codec struct {
	comma rune
}

// NewCodec creates a comma-delimited codec.
func NewCodec() *Codec {
	return &Codec{comma: ','}
}

// Encode writes the header row and all records in layout order. Fields
// missing from a record are written as empty strings.
func (c *Codec) Encode(w io.Writer, layout Layout, records []Record) error {
	writer := csv.NewWriter(w)
	writer.Comma = c.comma

	if err := writer.Write(layout.Fields); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(layout.Fields))
	for _, record := range records {
		for i, field := range layout.Fields {
			row[i] = record[field]
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Decode reads a full flat file back into records. Empty and header-only
// files decode to an empty slice. A header that does not match the layout
// or a row with a diverging column count is reported as a malformed file.
func (c *Codec) Decode(r io.Reader, layout Layout) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = c.comma
	reader.FieldsPerRecord = len(layout.Fields)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: read header: %v", domainErrors.ErrMalformedFile, err)
	}
	if !headerMatches(header, layout.Fields) {
		return nil, fmt.Errorf("%w: header %v does not match layout %s", domainErrors.ErrMalformedFile, header, layout.Entity)
	}

	records := []Record{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", domainErrors.ErrMalformedFile, err)
		}
		record := make(Record, len(layout.Fields))
		for i, field := range layout.Fields {
			record[field] = row[i]
		}
		records = append(records, record)
	}
}

func headerMatches(header, fields []string) bool {
	if len(header) != len(fields) {
		return false
	}
	for i := range fields {
		if header[i] != fields[i] {
			return false
		}
	}
	return true
}
