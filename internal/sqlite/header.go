package sqlite

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// fileHeaderSize is the fixed size of the file header region at the
	// start of the first page.
	fileHeaderSize = 100

	pageSizeOffset  = 16
	pageCountOffset = 28
)

// magic is the signature prefix every supported database file starts with.
var magic = []byte("SQLite")

// FileHeader carries the two header fields the scanner needs. All other
// header fields are ignored.
type FileHeader struct {
	PageSize  uint16
	PageCount uint32
}

// ParseHeader validates the file signature and reads the page size and
// page count from their fixed big-endian offsets. A signature mismatch is
// fatal for the whole scan.
func ParseHeader(file []byte) (FileHeader, error) {
	if len(file) < fileHeaderSize {
		return FileHeader{}, fmt.Errorf("%w: %d bytes is too short for a %d byte header", ErrBadMagic, len(file), fileHeaderSize)
	}
	if !bytes.Equal(file[:len(magic)], magic) {
		return FileHeader{}, ErrBadMagic
	}

	header := FileHeader{
		PageSize:  binary.BigEndian.Uint16(file[pageSizeOffset:]),
		PageCount: binary.BigEndian.Uint32(file[pageCountOffset:]),
	}
	// Header value 1 encodes 65536-byte pages, which this scanner does
	// not handle.
	if header.PageSize == 1 {
		return FileHeader{}, fmt.Errorf("%w: 65536-byte pages", ErrUnsupportedPageSize)
	}
	if header.PageSize == 0 || header.PageSize&(header.PageSize-1) != 0 {
		return FileHeader{}, fmt.Errorf("%w: %d", ErrUnsupportedPageSize, header.PageSize)
	}
	return header, nil
}
