package state

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"grapher/expr"
	"grapher/graph"
	"grapher/stats"
)

var idCounter atomic.Uint64

func newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, idCounter.Add(1))
}

// FunctionEntry is one plotted expression with its display style.
type FunctionEntry struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Kind      expr.Kind `json:"kind"`
	Color     string    `json:"color"`
	Thickness float64   `json:"thickness"`
	Visible   bool      `json:"visible"`
}

// Dataset is one plotted point collection.
type Dataset struct {
	ID     string        `json:"id"`
	Label  string        `json:"label"`
	Points []stats.Point `json:"points"`
}

// GridSettings controls the coordinate plane decoration.
type GridSettings struct {
	ShowGrid   bool    `json:"showGrid"`
	ShowAxes   bool    `json:"showAxes"`
	ShowLabels bool    `json:"showLabels"`
	Spacing    float64 `json:"spacing"`
}

// Settings are the calculator-wide preferences.
type Settings struct {
	AngleUnit string `json:"angleUnit"`
	Precision int    `json:"precision"`
}

// Snapshot is a complete, self-contained copy of the application state.
// Snapshots stored in History are never aliased; Clone before mutating.
type Snapshot struct {
	Functions []FunctionEntry `json:"functions"`
	Datasets  []Dataset       `json:"datasets"`
	Viewport  graph.Viewport  `json:"viewport"`
	Grid      GridSettings    `json:"grid"`
	Tool      string          `json:"tool"`
	Settings  Settings        `json:"settings"`
}

// NewFunctionEntry builds an entry with a fresh identifier and the source
// classified for display.
func NewFunctionEntry(source, color string) FunctionEntry {
	return FunctionEntry{
		ID:        newID("fn"),
		Source:    source,
		Kind:      expr.Classify(source),
		Color:     color,
		Thickness: 2,
		Visible:   true,
	}
}

// NewDataset builds a dataset with a fresh identifier. Points are copied.
func NewDataset(label string, points []stats.Point) Dataset {
	ds := Dataset{ID: newID("ds"), Label: label}
	ds.Points = append(ds.Points, points...)
	return ds
}

// Clone returns a deep copy sharing no slices with the receiver.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Functions = append([]FunctionEntry(nil), s.Functions...)
	out.Datasets = make([]Dataset, len(s.Datasets))
	for i, ds := range s.Datasets {
		out.Datasets[i] = ds
		out.Datasets[i].Points = append([]stats.Point(nil), ds.Points...)
	}
	return out
}

// ExportJSON renders the snapshot as indented JSON.
func (s Snapshot) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ImportJSON parses an exported snapshot. Entity identifiers are
// regenerated so an import can never collide with entities already loaded;
// everything else round-trips unchanged.
func ImportJSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	for i := range s.Functions {
		s.Functions[i].ID = newID("fn")
	}
	for i := range s.Datasets {
		s.Datasets[i].ID = newID("ds")
	}
	return s, nil
}
