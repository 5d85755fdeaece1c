package loader

import (
	"errors"
	"testing"

	"fjacquet/csv-summary/internal/models"
	"fjacquet/csv-summary/internal/pipelineerror"
	"fjacquet/csv-summary/internal/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	table *tabular.Table
	err   error
}

func (f fakeSource) Name() string                 { return "fake" }
func (f fakeSource) Read() (*tabular.Table, error) { return f.table, f.err }

func TestLoad(t *testing.T) {
	src := fakeSource{table: &tabular.Table{
		Columns: []string{"Date", "Description", "Amount", "Balance"},
		Rows: []tabular.Row{
			{"Date": "2024-01-05", "Description": "Salary", "Amount": "2500.00", "Balance": "3100.00"},
			{"Date": "bad-date", "Description": "Mystery", "Amount": "abc"},
		},
	}}

	set, err := Load(src)
	require.NoError(t, err)

	assert.Equal(t, models.StatusRaw, set.Status)
	require.Len(t, set.Records, 2)

	first := set.Records[0]
	assert.Equal(t, "2024-01-05", first.RawDate)
	assert.Equal(t, "Salary", first.Description)
	assert.Equal(t, "2500.00", first.RawAmount)
	assert.Equal(t, map[string]string{"Balance": "3100.00"}, first.Extra)

	// Values are arbitrary text at this stage; nothing is coerced.
	assert.False(t, first.HasDate())
	assert.False(t, first.HasAmount())
	assert.Equal(t, "bad-date", set.Records[1].RawDate)
}

func TestLoadCaseInsensitiveColumns(t *testing.T) {
	src := fakeSource{table: &tabular.Table{
		Columns: []string{"date", "DESCRIPTION", "amount"},
		Rows: []tabular.Row{
			{"date": "2024-01-05", "DESCRIPTION": "Salary", "amount": "2500.00"},
		},
	}}

	set, err := Load(src)
	require.NoError(t, err)
	require.Len(t, set.Records, 1)
	assert.Equal(t, "Salary", set.Records[0].Description)
	assert.Empty(t, set.Records[0].Extra)
}

func TestLoadSchemaError(t *testing.T) {
	src := fakeSource{table: &tabular.Table{
		Columns: []string{"Date", "Memo"},
		Rows:    []tabular.Row{{"Date": "2024-01-05", "Memo": "x"}},
	}}

	_, err := Load(src)
	var schemaErr *pipelineerror.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Description", "Amount"}, schemaErr.Missing)
}

func TestLoadSchemaErrorOnEmptySource(t *testing.T) {
	src := fakeSource{table: &tabular.Table{}}

	_, err := Load(src)
	var schemaErr *pipelineerror.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, schemaErr.Missing)
}

func TestLoadSourceUnavailable(t *testing.T) {
	readErr := errors.New("disk on fire")
	src := fakeSource{err: readErr}

	_, err := Load(src)
	var srcErr *pipelineerror.SourceUnavailableError
	require.ErrorAs(t, err, &srcErr)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "fake")
}
