package sqlite

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// appendVarint encodes v in the format's big-endian 7-bits-per-byte
// scheme, using the 9-byte form for values wider than 56 bits.
func appendVarint(buf []byte, v uint64) []byte {
	if v >= 1<<56 {
		for shift := 57; shift >= 8; shift -= 7 {
			buf = append(buf, byte(v>>uint(shift))&0x7f|0x80)
		}
		return append(buf, byte(v))
	}
	n := 1
	for rest := v >> 7; rest > 0; rest >>= 7 {
		n++
	}
	for i := n - 1; i >= 1; i-- {
		buf = append(buf, byte(v>>uint(7*i))&0x7f|0x80)
	}
	return append(buf, byte(v)&0x7f)
}

type fieldSpec struct {
	serialType uint64
	content    []byte
}

func textField(s string) fieldSpec {
	return fieldSpec{serialType: uint64(2*len(s) + 13), content: []byte(s)}
}

func blobField(b []byte) fieldSpec {
	return fieldSpec{serialType: uint64(2*len(b) + 12), content: b}
}

func buildRecordPayload(t *testing.T, fields ...fieldSpec) []byte {
	t.Helper()

	var serials []byte
	for _, f := range fields {
		serials = appendVarint(serials, f.serialType)
	}
	// Single-byte header-length varint is enough for every test record.
	headerLen := len(serials) + 1
	require.Less(t, headerLen, 0x80)

	payload := append([]byte{byte(headerLen)}, serials...)
	for _, f := range fields {
		payload = append(payload, f.content...)
	}
	return payload
}

func buildLeafCell(payload []byte, rowID uint64) []byte {
	cell := appendVarint(nil, uint64(len(payload)))
	cell = appendVarint(cell, rowID)
	return append(cell, payload...)
}

// buildLeafPage lays cells out from the page end, the way the format
// does, and fills the cell pointer array after the 8-byte page header.
func buildLeafPage(t *testing.T, pageSize int, cells ...[]byte) []byte {
	t.Helper()

	aPage := make([]byte, pageSize)
	aPage[0] = pageTypeTableLeaf
	binary.BigEndian.PutUint16(aPage[cellCountOffset:], uint16(len(cells)))

	content := pageSize
	for i, cell := range cells {
		content -= len(cell)
		require.GreaterOrEqual(t, content, leafHeaderSize+2*len(cells))
		copy(aPage[content:], cell)
		binary.BigEndian.PutUint16(aPage[leafHeaderSize+2*i:], uint16(content))
	}
	binary.BigEndian.PutUint16(aPage[5:], uint16(content))
	return aPage
}

// buildFile assembles a database file: header in page 0, empty page 1,
// then the given data pages starting at page index 2.
func buildFile(t *testing.T, pageSize int, dataPages ...[]byte) []byte {
	t.Helper()

	file := make([]byte, 2*pageSize)
	copy(file, magic)
	binary.BigEndian.PutUint16(file[pageSizeOffset:], uint16(pageSize))
	binary.BigEndian.PutUint32(file[pageCountOffset:], uint32(2+len(dataPages)))

	for _, aPage := range dataPages {
		require.Len(t, aPage, pageSize)
		file = append(file, aPage...)
	}
	return file
}
