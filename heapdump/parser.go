// ABOUTME: Parser interface for object graph dump formats
// ABOUTME: Defines the contract for pluggable dump readers

package heapdump

import (
	"io"

	"github.com/prateek/arenagc/graph"
)

// Parser reads one dump format into an object graph
type Parser interface {
	// CanParse reports whether the preview looks like this parser's format.
	// The preview holds at most the first few KiB of the dump and may end
	// in the middle of a record.
	CanParse(preview io.Reader) bool

	// Parse reads the whole dump from the beginning and builds a graph
	Parse(r io.Reader) (graph.Graph, error)
}
