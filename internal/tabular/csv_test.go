package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	input := `Date,Description,Amount,Balance
2024-01-05,ACME Corp Salary,"$2,500.00",3100.00
2024-01-12,Coop Supermarket,-45.00,3055.00
`

	table, err := ReadTable(strings.NewReader(input), "test")
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount", "Balance"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2024-01-05", table.Rows[0]["Date"])
	assert.Equal(t, "$2,500.00", table.Rows[0]["Amount"])
	assert.Equal(t, "3100.00", table.Rows[0]["Balance"])
	assert.Equal(t, "Coop Supermarket", table.Rows[1]["Description"])
}

func TestReadTableEmptyInput(t *testing.T) {
	table, err := ReadTable(strings.NewReader(""), "test")
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestReadTableHeaderOnly(t *testing.T) {
	table, err := ReadTable(strings.NewReader("Date,Description,Amount\n"), "test")
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestReadTableShortRow(t *testing.T) {
	input := "Date,Description,Amount\n2024-01-05,Coffee\n"

	table, err := ReadTable(strings.NewReader(input), "test")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Coffee", table.Rows[0]["Description"])
	_, present := table.Rows[0]["Amount"]
	assert.False(t, present, "missing trailing field should stay absent")
}

func TestCSVSourceReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.csv")
	content := "Date,Description,Amount\n2024-01-05,Salary,2500.00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	src := NewCSVSource(path)
	assert.Equal(t, path, src.Name())

	table, err := src.Read()
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := src.Read()
	assert.Error(t, err)
}
