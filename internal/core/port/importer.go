package port

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// Row is one spreadsheet row, keyed by its header cells.
type Row map[string]string

// ImporterPort is the external spreadsheet collaborator. It parses raw
// file bytes into header-keyed rows; the catalog only consumes the
// name/price columns.
type ImporterPort interface {
	Parse(data []byte) ([]Row, error)
}
