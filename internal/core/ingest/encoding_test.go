package ingest

import (
	"errors"
	"testing"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDecodeFile_UTF8WithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(header+"BE1;Main;;1;05/01/2024;05/01/2024;1,00;EUR;Café;;\n")...)

	table, err := DecodeFile(data)
	require.NoError(t, err)
	assert.Equal(t, "utf-8-sig", table.Encoding)
	assert.Equal(t, 0, table.Columns[ColAccountNumber])
	require.Len(t, table.Records, 1)
	assert.Equal(t, "Café", table.Row(0)[ColDescription])
}

func TestDecodeFile_Latin1(t *testing.T) {
	utf8Text := header + "BE1;Main;;1;05/01/2024;05/01/2024;1,00;EUR;Crédit reçu;;\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(utf8Text)
	require.NoError(t, err)

	table, err := DecodeFile([]byte(latin1))
	require.NoError(t, err)
	assert.Equal(t, "latin-1", table.Encoding)
	assert.Equal(t, "Crédit reçu", table.Row(0)[ColDescription])
}

func TestDecodeFile_NoAccountColumn(t *testing.T) {
	_, err := DecodeFile([]byte("Date;Amount\n01/01/2024;1,00\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnreadableFile))
	assert.Contains(t, err.Error(), "cp1252")
}

func TestDecodeFile_Empty(t *testing.T) {
	_, err := DecodeFile(nil)
	assert.ErrorIs(t, err, apperrors.ErrUnreadableFile)
}

func TestMapHeader_CaseInsensitiveAndTrimmed(t *testing.T) {
	cols := mapHeader([]string{" account NUMBER ", "Amount", "Amount", "Unknown"})
	assert.Equal(t, 0, cols[ColAccountNumber])
	assert.Equal(t, 1, cols[ColAmount])
	_, ok := cols[ColDescription]
	assert.False(t, ok)
}
