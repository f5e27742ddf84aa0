package provider

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the compression used for cached listings.
type Codec int

const (
	// CodecGzip compresses cache files with gzip.
	CodecGzip Codec = iota

	// CodecLZ4 compresses cache files with lz4.
	CodecLZ4
)

// SaveCache writes the provider's current listing to path as a compressed
// newline-separated stream. Only candidate paths are cached, never scores.
func SaveCache(path string, p Provider, codec Codec) error {
	var buf bytes.Buffer

	w, err := newCompressor(codec, &buf)
	if err != nil {
		return err
	}
	for _, line := range p.Paths() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadCache reads a listing written by SaveCache into a Static provider.
func LoadCache(path string, codec Codec) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r, err := newDecompressor(codec, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Static{paths: paths}, nil
}

func newCompressor(codec Codec, w io.Writer) (io.WriteCloser, error) {
	switch codec {
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown cache codec: %d", codec)
	}
}

func newDecompressor(codec Codec, r io.Reader) (io.Reader, error) {
	switch codec {
	case CodecGzip:
		return gzip.NewReader(r)
	case CodecLZ4:
		return lz4.NewReader(r), nil
	default:
		return nil, fmt.Errorf("unknown cache codec: %d", codec)
	}
}
