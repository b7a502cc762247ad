// Package model defines the data structures shared by the exception catalog miner.
package model

// Path represents a file system path.
type Path string

// SourceFile is a file selected for extraction.
type SourceFile struct {
	// Path is the location used to read the file.
	Path Path
	// RelPath is the forward-slash path relative to the scan root. It is the
	// value recorded on every site found in the file.
	RelPath Path
}
