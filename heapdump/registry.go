// ABOUTME: Registry for dump parsers
// ABOUTME: Selects the first registered parser that recognises a dump

package heapdump

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/prateek/arenagc/graph"
)

// previewSize is how much of a dump parsers get to see for detection
const previewSize = 4096

var (
	// ErrNoParser is returned when no parser can handle the dump format
	ErrNoParser = errors.New("heapdump: no parser found for dump format")
)

type parserRegistry struct {
	mu      sync.RWMutex
	parsers []Parser
}

var registry = &parserRegistry{}

// Register adds a parser to the registry. Parsers are tried in
// registration order.
func Register(p Parser) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.parsers = append(registry.parsers, p)
}

// Open detects the format of the dump in r and parses it into a graph.
// Dumps wrapped in a zstd or lz4 frame are decompressed first.
func Open(r io.Reader) (graph.Graph, error) {
	plain, done, err := decompress(bufio.NewReaderSize(r, previewSize))
	if err != nil {
		return nil, err
	}
	defer done()

	br := bufio.NewReaderSize(plain, previewSize)
	preview, err := br.Peek(previewSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("heapdump: read preview: %w", err)
	}

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for _, p := range registry.parsers {
		if p.CanParse(bytes.NewReader(preview)) {
			return p.Parse(br)
		}
	}

	return nil, ErrNoParser
}
