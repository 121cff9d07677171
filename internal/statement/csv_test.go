package statement

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "Date,Description,Debit,Credit\n" +
		"03/01/25,UPI-SWIGGY,200.00,\n" +
		"04/01/25,SALARY,,50000.00\n"

	st, err := ReadCSV(strings.NewReader(in), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Debit", "Credit"}, st.Columns)
	require.Len(t, st.Rows, 2)

	v, ok := st.Rows[0].Get("Debit")
	assert.True(t, ok)
	assert.Equal(t, "200.00", v)
	assert.Equal(t, 2, st.Rows[0].Line)
	assert.Equal(t, 3, st.Rows[1].Line)
}

func TestReadCSV_SkipsPreamble(t *testing.T) {
	in := "HDFC BANK LTD\n" +
		"Account No:,12345\n" +
		"Date,Narration,Withdrawal Amt.,Deposit Amt.\n" +
		"03/01/25,POS-BIGBAZAAR,450.00,\n"

	st, err := ReadCSV(strings.NewReader(in), 2)
	require.NoError(t, err)
	assert.True(t, st.HasColumns("Date", "Narration"))
	require.Len(t, st.Rows, 1)
	assert.Equal(t, 4, st.Rows[0].Line)
}

func TestReadCSV_ShortRowLeavesColumnAbsent(t *testing.T) {
	in := "Date,Description,Debit\n03/01/25,ATM WDL\n"

	st, err := ReadCSV(strings.NewReader(in), 0)
	require.NoError(t, err)
	require.Len(t, st.Rows, 1)
	_, ok := st.Rows[0].Get("Debit")
	assert.False(t, ok)
}

func TestReadCSV_PreambleLongerThanFile(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("only,one,line\n"), 5)
	assert.Error(t, err)
}

func TestScanAndMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "import"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "hdfc_jan.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "notes.txt"), []byte("x"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "hdfc_jan.csv", files[0].Name)

	require.NoError(t, MarkProcessed(dir, "hdfc_jan.csv"))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "hdfc_jan.csv"))
	require.NoError(t, err)

	files, err = Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScan_MissingImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}
