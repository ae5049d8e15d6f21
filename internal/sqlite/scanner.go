// Package sqlite decodes table rows straight from the raw bytes of a
// SQLite-format database file, without linking a database engine.
//
// Only table b-tree leaf pages with fully inline payloads are understood.
// Interior pages, index pages, overflow chains and 65536-byte pages are
// out of scope; cells that would need them are counted and skipped.
package sqlite

import (
	"encoding/binary"
	"errors"

	"go.uber.org/zap"
)

const (
	pageTypeTableLeaf = 0x0d

	// Leaf page header layout: type byte, first-freeblock u16, cell
	// count u16, content-start u16, fragment count byte. The cell
	// pointer array starts right after.
	cellCountOffset = 3
	leafHeaderSize  = 8

	// Pages 0 and 1 hold the master-schema root and the pointer map in
	// the database layouts this scanner targets, never table rows. This
	// is an assumption about those layouts, not about the format.
	firstDataPage = 2
)

// ScanStats counts everything a scan skips over, so tolerated structural
// problems stay observable.
type ScanStats struct {
	PagesScanned  int
	LeafPages     int
	ShortPages    int
	Cells         int
	BadPointers   int
	OverflowCells int
	BadRecords    int
	Records       int
}

// Scanner walks the pages of one in-memory database file and yields
// decoded records. It is single-threaded; records are yielded strictly
// in page order, then cell-pointer order within a page.
type Scanner struct {
	logger *zap.Logger
	file   []byte
	header FileHeader
	stats  ScanStats
}

// NewScanner validates the file header and prepares a scan over the
// whole file. A signature mismatch or unsupported page size is fatal.
func NewScanner(file []byte, logger *zap.Logger) (*Scanner, error) {
	header, err := ParseHeader(file)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger, file: file, header: header}, nil
}

func (s *Scanner) Header() FileHeader {
	return s.header
}

func (s *Scanner) Stats() ScanStats {
	return s.stats
}

// Scan decodes every reachable record and passes it to yield. Returning
// false from yield stops the scan early. Structural problems inside a
// page or cell never abort the scan; they are counted and the scan moves
// on to the next cell or page.
func (s *Scanner) Scan(yield func(Record) bool) {
	pageSize := int(s.header.PageSize)
	for idx := firstDataPage; idx < int(s.header.PageCount); idx++ {
		start := idx * pageSize
		if start+pageSize > len(s.file) {
			s.stats.ShortPages++
			s.logger.Debug("page extends past end of file", zap.Int("page", idx))
			continue
		}
		aPage := s.file[start : start+pageSize]
		s.stats.PagesScanned++

		if aPage[0] != pageTypeTableLeaf {
			continue
		}
		s.stats.LeafPages++
		if !s.scanLeafPage(idx, aPage, yield) {
			return
		}
	}
}

func (s *Scanner) scanLeafPage(idx int, aPage []byte, yield func(Record) bool) bool {
	cellCount := int(binary.BigEndian.Uint16(aPage[cellCountOffset:]))
	if leafHeaderSize+2*cellCount > len(aPage) {
		s.stats.BadPointers += cellCount
		s.logger.Debug("cell pointer array overruns page",
			zap.Int("page", idx),
			zap.Int("cells", cellCount))
		return true
	}

	for i := 0; i < cellCount; i++ {
		ptr := int(binary.BigEndian.Uint16(aPage[leafHeaderSize+2*i:]))
		// A valid pointer lands between the pointer array and the page
		// end; anything else would make the cell slice read garbage.
		if ptr < leafHeaderSize+2*cellCount || ptr >= len(aPage) {
			s.stats.BadPointers++
			s.logger.Debug("cell pointer outside page",
				zap.Int("page", idx),
				zap.Int("cell", i),
				zap.Int("pointer", ptr))
			continue
		}
		s.stats.Cells++

		payload, rowID, err := DecodeCell(aPage[ptr:])
		if err != nil {
			if errors.Is(err, ErrOverflowPayload) {
				s.stats.OverflowCells++
			} else {
				s.stats.BadRecords++
			}
			s.logger.Debug("skipping cell",
				zap.Int("page", idx),
				zap.Int("cell", i),
				zap.Error(err))
			continue
		}

		aRecord, err := DecodeRecord(payload)
		if err != nil {
			s.stats.BadRecords++
			s.logger.Debug("skipping record",
				zap.Int("page", idx),
				zap.Int("cell", i),
				zap.Error(err))
			continue
		}
		aRecord.RowID = rowID
		s.stats.Records++

		if !yield(aRecord) {
			return false
		}
	}
	return true
}
