package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Separator is the field delimiter of statement exports.
const Separator = ';'

// textEncoding is one candidate decoding of an uploaded file.
type textEncoding struct {
	name     string
	enc      encoding.Encoding
	needUTF8 bool // reject input that is not valid UTF-8 instead of substituting U+FFFD
}

// candidateEncodings are tried in order; the first that produces a usable header wins.
var candidateEncodings = []textEncoding{
	{name: "utf-8-sig", enc: unicode.UTF8BOM, needUTF8: true},
	{name: "utf-8", enc: unicode.UTF8, needUTF8: true},
	{name: "latin-1", enc: charmap.ISO8859_1},
	{name: "iso-8859-15", enc: charmap.ISO8859_15},
	{name: "cp1252", enc: charmap.Windows1252},
}

var errMissingAccountColumn = errors.New("no account number column in header")

// Table is a decoded statement: its header mapping and the data records below it.
type Table struct {
	Encoding string
	Columns  map[Column]int
	Records  [][]string
}

// Row returns the named cells of record i. Cells beyond the end of a short record are empty.
func (t *Table) Row(i int) Row {
	rec := t.Records[i]
	row := make(Row, len(t.Columns))
	for col, idx := range t.Columns {
		if idx < len(rec) {
			row[col] = rec[idx]
		}
	}
	return row
}

// DecodeFile decodes data with the first candidate encoding that parses as a semicolon
// separated table whose header names an account number column.
func DecodeFile(data []byte) (*Table, error) {
	var lastErr error
	for _, te := range candidateEncodings {
		table, err := decodeWith(data, te)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", te.name, err)
			continue
		}
		return table, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no candidate encodings")
	}
	return nil, fmt.Errorf("%w: %w", apperrors.ErrUnreadableFile, lastErr)
}

func decodeWith(data []byte, te textEncoding) (*Table, error) {
	if te.needUTF8 && !utf8.Valid(data) {
		return nil, errors.New("input is not valid UTF-8")
	}

	r := csv.NewReader(transform.NewReader(bytes.NewReader(data), te.enc.NewDecoder()))
	r.Comma = Separator
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := mapHeader(header)
	if _, ok := columns[ColAccountNumber]; !ok {
		return nil, errMissingAccountColumn
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	return &Table{Encoding: te.name, Columns: columns, Records: records}, nil
}
