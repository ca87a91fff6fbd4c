package ingest

// Table is a decoded tabular file: one header row plus data rows. Rows may
// be ragged (spreadsheets drop trailing empty cells); consumers index
// defensively.
type Table struct {
	Headers []string
	Rows    [][]string
}

// TableReader decodes raw file content into a Table. The filename extension
// selects the decoder.
type TableReader interface {
	ReadTable(content []byte, filename string) (*Table, error)
}
