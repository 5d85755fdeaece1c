// Package tabular abstracts the tabular record source feeding the pipeline
// and provides the CSV implementation used by the CLI. The core stages only
// ever see Table and Row; where the rows come from is this package's
// business.
package tabular

// Row is one raw record: named text fields keyed by column name.
type Row map[string]string

// Table is a fully materialized tabular record set: the source schema plus
// every row, read in one shot.
type Table struct {
	Columns []string
	Rows    []Row
}

// Source yields a tabular record set. Read is one-shot and blocking; it is
// the only I/O the pipeline performs.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	// Read materializes the whole record set.
	Read() (*Table, error)
}
