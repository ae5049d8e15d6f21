// Package snapshot acquires the raw bytes of an evidence database file.
package snapshot

import (
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Snapshot is the in-memory copy of one database file. Digest is the
// BLAKE3-256 of the bytes as they sat on disk, before any decompression,
// so it can be checked against the collected evidence.
type Snapshot struct {
	Path       string
	Data       []byte
	Digest     string
	Compressed bool
}

// Load reads the whole file into memory, transparently unpacking gzip
// and xz compressed copies. Compression is sniffed from the leading
// bytes, not the file name. The file handle is released before Load
// returns whatever the outcome, and the file may stay open in its
// owning process.
func Load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	sum := blake3.Sum256(raw)

	data, compressed, err := unpack(raw)
	if err != nil {
		return nil, fmt.Errorf("unpack snapshot %s: %w", path, err)
	}
	return &Snapshot{
		Path:       path,
		Data:       data,
		Digest:     hex.EncodeToString(sum[:]),
		Compressed: compressed,
	}, nil
}

func unpack(raw []byte) ([]byte, bool, error) {
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, true, err
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		return data, true, err
	case bytes.HasPrefix(raw, xzMagic):
		r, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, true, err
		}
		data, err := io.ReadAll(r)
		return data, true, err
	default:
		return raw, false, nil
	}
}
