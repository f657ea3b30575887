package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grapher/expr"
	"grapher/graph"
	"grapher/stats"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Functions: []FunctionEntry{
			NewFunctionEntry("sin(x)", "#ff0000"),
			NewFunctionEntry("x^2", "#00ff00"),
		},
		Datasets: []Dataset{
			NewDataset("measurements", []stats.Point{{X: 0, Y: 1}, {X: 1, Y: 2.5}}),
		},
		Viewport: graph.Viewport{XMin: -10, XMax: 10, YMin: -5, YMax: 5},
		Grid:     GridSettings{ShowGrid: true, ShowAxes: true, ShowLabels: true, Spacing: 1},
		Tool:     "pan",
		Settings: Settings{AngleUnit: "radians", Precision: 6},
	}
}

var ignoreIDs = cmpopts.IgnoreFields(FunctionEntry{}, "ID")
var ignoreDatasetIDs = cmpopts.IgnoreFields(Dataset{}, "ID")

func TestSnapshotJSONRoundTrip(t *testing.T) {
	orig := sampleSnapshot()
	data, err := orig.ExportJSON()
	require.NoError(t, err)

	got, err := ImportJSON(data)
	require.NoError(t, err)

	if diff := cmp.Diff(orig, got, ignoreIDs, ignoreDatasetIDs); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportRegeneratesIDs(t *testing.T) {
	orig := sampleSnapshot()
	data, err := orig.ExportJSON()
	require.NoError(t, err)

	got, err := ImportJSON(data)
	require.NoError(t, err)
	require.Len(t, got.Functions, 2)
	assert.NotEqual(t, orig.Functions[0].ID, got.Functions[0].ID)
	assert.NotEqual(t, orig.Datasets[0].ID, got.Datasets[0].ID)
}

func TestNewFunctionEntryClassifies(t *testing.T) {
	fe := NewFunctionEntry("sin(x)", "#0000ff")
	assert.Equal(t, expr.KindTrigonometric, fe.Kind)
	assert.True(t, fe.Visible)
	assert.NotEmpty(t, fe.ID)
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleSnapshot()
	clone := orig.Clone()

	clone.Functions[0].Source = "cos(x)"
	clone.Datasets[0].Points[0].Y = 99

	assert.Equal(t, "sin(x)", orig.Functions[0].Source)
	assert.Equal(t, 1.0, orig.Datasets[0].Points[0].Y)
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	_, err := ImportJSON([]byte("{not json"))
	assert.Error(t, err)
}
