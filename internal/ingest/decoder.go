package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/log"
)

// bigFileBytes is the content size above which CSV rows are accumulated in
// fixed-size chunks instead of a single growing append, so a worker decoding
// a large upload never doubles the full record set during slice growth.
const bigFileBytes = 5 * 1024 * 1024

// Reader decodes CSV and XLS/XLSX content into a Table. CSV text is tried
// as UTF-8 first with a cp1251 fallback, the marketplaces' legacy export
// encoding. The delimiter is auto-detected with a forced semicolon re-parse
// when the detected one fails.
type Reader struct {
	chunkSize int
}

// NewReader creates a Reader. chunkSize bounds the row batches of the
// big-file CSV path.
func NewReader(chunkSize int) *Reader {
	if chunkSize <= 0 {
		chunkSize = 10000
	}
	return &Reader{chunkSize: chunkSize}
}

// ReadTable decodes content according to the filename extension.
func (r *Reader) ReadTable(content []byte, filename string) (*Table, error) {
	name := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(name, ".csv"):
		return r.readCSV(content)
	case strings.HasSuffix(name, ".xls"), strings.HasSuffix(name, ".xlsx"):
		return r.readExcel(content)
	default:
		return nil, domain.NewValidationError("Неподдерживаемый тип файла. Используйте CSV или XLSX.")
	}
}

func (r *Reader) readCSV(content []byte) (*Table, error) {
	text, err := decodeText(content)
	if err != nil {
		return nil, domain.NewValidationError("Не удалось распознать кодировку файла — проверьте формат данных.")
	}

	delimiter := detectDelimiter(text)

	table, err := r.parseCSV(text, delimiter, false)
	if err == nil {
		return table, nil
	}

	log.L.WithError(err).WithField("delimiter", string(delimiter)).
		Debug("ingest: csv parse failed, retrying with semicolon fallback")

	table, fallbackErr := r.parseCSV(text, ';', true)
	if fallbackErr != nil {
		return nil, domain.NewValidationError("Не удалось разобрать CSV-файл — проверьте формат данных.")
	}

	return table, nil
}

func (r *Reader) parseCSV(text string, delimiter rune, lenient bool) (*Table, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true
	if lenient {
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
	}

	headers, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv header")
	}

	big := len(text) > bigFileBytes

	var rows [][]string
	chunk := make([][]string, 0, r.chunkSize)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading csv row")
		}

		chunk = append(chunk, record)
		if big && len(chunk) == r.chunkSize {
			rows = append(rows, chunk...)
			chunk = make([][]string, 0, r.chunkSize)
		}
	}
	rows = append(rows, chunk...)

	return &Table{Headers: headers, Rows: rows}, nil
}

func (r *Reader) readExcel(content []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, domain.NewValidationError("Не удалось прочитать файл Excel — проверьте формат данных.")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewValidationError("Файл Excel не содержит листов.")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewValidationError("Не удалось прочитать файл Excel — проверьте формат данных.")
	}
	if len(rows) == 0 {
		return nil, domain.NewValidationError("Файл не содержит данных.")
	}

	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}

// decodeText returns content as valid UTF-8 text, transcoding from cp1251
// when the bytes are not valid UTF-8 already.
func decodeText(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(content)
	if err != nil {
		return "", errors.Wrap(err, "decoding cp1251")
	}

	return string(decoded), nil
}

// detectDelimiter picks the separator with the most occurrences on the first
// line, semicolon by default.
func detectDelimiter(text string) rune {
	line := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		line = text[:idx]
	}

	best, bestCount := ';', strings.Count(line, ";")
	for _, candidate := range []string{",", "\t"} {
		if count := strings.Count(line, candidate); count > bestCount {
			best, bestCount = rune(candidate[0]), count
		}
	}

	return best
}
