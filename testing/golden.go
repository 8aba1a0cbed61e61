package testing

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/packing.csv
var packingCSV []byte

// packingRow is one line of testdata/packing.csv as stored. Text columns are
// Go-quoted because the alphabet contains newlines, commas and spaces.
type packingRow struct {
	Name    string `csv:"name"`
	Input   string `csv:"input"`
	Packed  string `csv:"packed"`
	Literal string `csv:"literal"`
}

// PackingCase is a known-good input along with its packed text and the final
// escaped literal.
type PackingCase struct {
	Name    string
	Input   []byte
	Packed  string
	Literal string
}

// LoadPackingCases returns the golden packing fixtures. It is guaranteed to
// either return at least one case or fail the test and abort.
func LoadPackingCases(t *testing.T) []PackingCase {
	var rows []packingRow
	err := gocsv.UnmarshalBytes(packingCSV, &rows)
	require.NoError(t, err, "failed to parse packing fixtures")
	require.NotEmpty(t, rows, "packing fixture file is empty")

	cases := make([]PackingCase, 0, len(rows))
	for _, row := range rows {
		input, err := hex.DecodeString(row.Input)
		require.NoErrorf(t, err, "fixture %q: bad input hex", row.Name)

		packed, err := strconv.Unquote(row.Packed)
		require.NoErrorf(t, err, "fixture %q: bad packed text", row.Name)

		literal, err := strconv.Unquote(row.Literal)
		require.NoErrorf(t, err, "fixture %q: bad literal", row.Name)

		cases = append(cases, PackingCase{
			Name:    row.Name,
			Input:   input,
			Packed:  packed,
			Literal: literal,
		})
	}
	return cases
}

// RandomBytes returns size random bytes. It is guaranteed to either return a
// valid slice or fail the test and abort.
func RandomBytes(t *testing.T, size int) []byte {
	data := make([]byte, size)

	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to generate %d random bytes", size)
	return data
}
