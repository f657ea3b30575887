// Package state holds the serializable application state: the function
// list, datasets, viewport and settings, together with undo/redo history
// and the import/export formats (plain JSON, a compressed binary container
// and CSV for datasets).
package state
