package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/leapstack-labs/pname/pkg/dictionary"
)

// LoadCSV parses comma separated records of the form
// `word,element1 element2 ...`. Records with fewer than two fields are
// skipped; extra fields are ignored.
func LoadCSV(r io.Reader) (*dictionary.Dictionary, error) {
	return loadDelimited(r, ',', FormatCSV)
}

// LoadTSV parses tab separated records with the same layout as LoadCSV.
func LoadTSV(r io.Reader) (*dictionary.Dictionary, error) {
	return loadDelimited(r, '\t', FormatTSV)
}

func loadDelimited(r io.Reader, comma rune, format Format) (*dictionary.Dictionary, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = format == FormatTSV
	cr.ReuseRecord = true

	b := dictionary.NewBuilder()
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(format, err)
		}
		if len(record) < 2 {
			continue
		}
		addEntry(b, strings.TrimPrefix(record[0], "\ufeff"), strings.Fields(record[1]))
	}
	return b.Build(), nil
}
