// ABOUTME: Transparent compression for dump files
// ABOUTME: Detects zstd and lz4 frames on read and wraps writers on export

package heapdump

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how a dump file is encoded on disk
type Compression uint8

const (
	// CompressionNone writes the dump as plain JSON.
	CompressionNone Compression = iota
	// CompressionLZ4 wraps the dump in an LZ4 frame (fast).
	CompressionLZ4
	// CompressionZSTD wraps the dump in a zstd frame (smaller).
	CompressionZSTD
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ParseCompression maps a name as used on the command line to a Compression
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	}
	return CompressionNone, fmt.Errorf("heapdump: unknown compression %q", name)
}

func (c Compression) String() string {
	switch c {
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w so that everything written is encoded with c. Close
// flushes the frame but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("heapdump: zstd writer: %w", err)
		}
		return enc, nil
	}
	return nil, fmt.Errorf("heapdump: unknown compression %d", c)
}

// decompress peeks at the frame magic and returns a reader yielding the
// plain dump together with a func releasing decoder resources.
func decompress(br *bufio.Reader) (io.Reader, func(), error) {
	magic, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.Equal(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("heapdump: zstd reader: %w", err)
		}
		return dec, dec.Close, nil
	case bytes.Equal(magic, lz4Magic):
		return lz4.NewReader(br), func() {}, nil
	}
	return br, func() {}, nil
}
