package sqlite

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHeader(pageSize uint16, pageCount uint32) []byte {
	file := make([]byte, fileHeaderSize)
	copy(file, magic)
	binary.BigEndian.PutUint16(file[pageSizeOffset:], pageSize)
	binary.BigEndian.PutUint32(file[pageCountOffset:], pageCount)
	return file
}

func TestParseHeader(t *testing.T) {
	t.Parallel()

	header, err := ParseHeader(validHeader(4096, 7))
	require.NoError(t, err)
	assert.Equal(t, uint16(4096), header.PageSize)
	assert.Equal(t, uint32(7), header.PageCount)
}

func TestParseHeader_BadMagic(t *testing.T) {
	t.Parallel()

	file := validHeader(4096, 7)
	file[0] = 'X'
	_, err := ParseHeader(file)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestParseHeader_ShortFile(t *testing.T) {
	t.Parallel()

	_, err := ParseHeader([]byte("SQLite"))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestParseHeader_UnsupportedPageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pageSize uint16
	}{
		{"zero", 0},
		{"the 65536 encoding", 1},
		{"not a power of two", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(validHeader(tt.pageSize, 3))
			assert.ErrorIs(t, err, ErrUnsupportedPageSize)
		})
	}
}
