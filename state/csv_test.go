package state

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grapher/stats"
)

func TestCSVRoundTrip(t *testing.T) {
	ds := NewDataset("run-1", []stats.Point{{X: 0, Y: 1}, {X: 0.5, Y: -2.25}, {X: 3, Y: 9}})

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, ds))

	got, err := ImportCSV(&buf, "run-1")
	require.NoError(t, err)
	assert.Equal(t, ds.Points, got.Points)
	assert.Equal(t, "run-1", got.Label)
	assert.NotEqual(t, ds.ID, got.ID)
}

func TestImportCSVSkipsHeaderAndBadRows(t *testing.T) {
	in := strings.Join([]string{
		"x,y,label",
		"1, 2, sample",
		"oops,3",
		"4,not-a-number",
		" 5 , 6 ",
		"7",
		"",
	}, "\n")
	got, err := ImportCSV(strings.NewReader(in), "data")
	require.NoError(t, err)
	assert.Equal(t, []stats.Point{{X: 1, Y: 2}, {X: 5, Y: 6}}, got.Points)
}

func TestImportCSVEmpty(t *testing.T) {
	got, err := ImportCSV(strings.NewReader(""), "empty")
	require.NoError(t, err)
	assert.Empty(t, got.Points)
}
