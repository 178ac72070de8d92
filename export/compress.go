package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the codec applied to a written file.
type Compression int

const (
	CompressNone Compression = iota
	CompressGzip
	CompressSnappy
	CompressZstd
	CompressBrotli
	CompressLZ4
)

var compressionNames = [...]string{"none", "gzip", "snappy", "zstd", "brotli", "lz4"}

func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}
	return compressionNames[c]
}

// CompressionFor picks the codec from the file extension of path: .gz, .sz,
// .zst, .br and .lz4 are recognized, anything else is written as-is.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressGzip
	case ".sz":
		return CompressSnappy
	case ".zst":
		return CompressZstd
	case ".br":
		return CompressBrotli
	case ".lz4":
		return CompressLZ4
	default:
		return CompressNone
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w in the codec c. Closing the result flushes the codec but
// does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressNone:
		return nopWriteCloser{w}, nil
	case CompressGzip:
		return gzip.NewWriter(w), nil
	case CompressSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CompressZstd:
		return zstd.NewWriter(w)
	case CompressBrotli:
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	case CompressLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("export: unsupported compression: %v", c)
	}
}

// NewReader wraps r in the decoder for c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressNone:
		return io.NopCloser(r), nil
	case CompressGzip:
		return gzip.NewReader(r)
	case CompressSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case CompressZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case CompressLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("export: unsupported compression: %v", c)
	}
}
