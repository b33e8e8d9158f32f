package artifact

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the algorithm used by a Compressed store.
type Compression uint8

const (
	// CompressionLZ4 is fast with a modest ratio.
	CompressionLZ4 Compression = iota
	// CompressionZSTD trades speed for a better ratio.
	CompressionZSTD
)

// Payload framing: [UncompressedSize uint32][CompressedSize uint32][Data...].
// CompressedSize == 0 marks an incompressible payload stored raw.
const headerSize = 8

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	// Safe for concurrent EncodeAll/DecodeAll use.
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
}

// Compressed wraps a Store, transparently compressing payloads on Put and
// decompressing them on Get. Delete and List pass through.
type Compressed struct {
	inner Store
	typ   Compression
}

// NewCompressed wraps the given store with the chosen compression.
func NewCompressed(inner Store, typ Compression) *Compressed {
	return &Compressed{inner: inner, typ: typ}
}

// Put implements Store.
func (c *Compressed) Put(ctx context.Context, name string, data []byte) error {
	framed, err := compress(data, c.typ)
	if err != nil {
		return err
	}
	return c.inner.Put(ctx, name, framed)
}

// Get implements Store.
func (c *Compressed) Get(ctx context.Context, name string) ([]byte, error) {
	framed, err := c.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return decompress(framed, c.typ)
}

// Delete implements Store.
func (c *Compressed) Delete(ctx context.Context, name string) error {
	return c.inner.Delete(ctx, name)
}

// List implements Store.
func (c *Compressed) List(ctx context.Context, prefix string) ([]string, error) {
	return c.inner.List(ctx, prefix)
}

func compress(data []byte, typ Compression) ([]byte, error) {
	var compressed []byte

	switch typ {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n] // n == 0 means incompressible
	case CompressionZSTD:
		compressed = zstdEncoder.EncodeAll(data, nil)
	default:
		return nil, errors.New("artifact: unknown compression type")
	}

	// Store raw when compression does not pay off.
	if len(compressed) == 0 || len(compressed) >= len(data) {
		framed := make([]byte, headerSize+len(data))
		binary.LittleEndian.PutUint32(framed[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(framed[4:], 0)
		copy(framed[headerSize:], data)
		return framed, nil
	}

	framed := make([]byte, headerSize+len(compressed))
	binary.LittleEndian.PutUint32(framed[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(framed[4:], uint32(len(compressed)))
	copy(framed[headerSize:], compressed)
	return framed, nil
}

func decompress(framed []byte, typ Compression) ([]byte, error) {
	if len(framed) < headerSize {
		return nil, errors.New("artifact: payload too small for compression header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(framed[0:])
	compressedSize := binary.LittleEndian.Uint32(framed[4:])

	if compressedSize == 0 {
		if uint32(len(framed)-headerSize) < uncompressedSize {
			return nil, errors.New("artifact: truncated raw payload")
		}
		return framed[headerSize : headerSize+int(uncompressedSize)], nil
	}

	if uint32(len(framed)-headerSize) < compressedSize {
		return nil, errors.New("artifact: truncated compressed payload")
	}
	body := framed[headerSize : headerSize+int(compressedSize)]

	switch typ {
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("artifact: decompressed size mismatch")
		}
		return out, nil
	case CompressionZSTD:
		out, err := zstdDecoder.DecodeAll(body, nil)
		if err != nil {
			return nil, err
		}
		if uint32(len(out)) != uncompressedSize {
			return nil, errors.New("artifact: decompressed size mismatch")
		}
		return out, nil
	default:
		return nil, errors.New("artifact: unknown compression type")
	}
}
