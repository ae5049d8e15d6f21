package sqlite

import "fmt"

// Record is one decoded row: an ordered sequence of raw field values.
// Field position is the contract here, not a name; the table's column
// order must be known to whoever consumes the record.
type Record struct {
	RowID  int64
	Fields [][]byte
}

// DecodeRecord decodes a record payload: a self-describing header of
// serial-type varints followed by the field contents. The header-length
// varint counts its own bytes. Field slices alias the payload.
func DecodeRecord(payload []byte) (Record, error) {
	if len(payload) == 0 {
		return Record{}, nil
	}

	headerLen, n, err := DecodeVarint(payload)
	if err != nil {
		return Record{}, fmt.Errorf("record header length: %w", err)
	}
	if headerLen < int64(n) || headerLen > int64(len(payload)) {
		return Record{}, fmt.Errorf("record header length %d out of range for %d byte payload", headerLen, len(payload))
	}

	var lengths []ContentLength
	offset := int64(n)
	for offset < headerLen {
		serialType, sn, err := DecodeVarint(payload[offset:headerLen])
		if err != nil {
			return Record{}, fmt.Errorf("serial type at header offset %d: %w", offset, err)
		}
		lengths = append(lengths, ClassifySerialType(serialType))
		offset += int64(sn)
	}

	aRecord := Record{Fields: make([][]byte, 0, len(lengths))}
	body := int(headerLen)
	for i, contentLen := range lengths {
		end := body + contentLen.Length
		if end > len(payload) {
			return Record{}, fmt.Errorf("field %d of %d bytes overruns %d byte payload", i, contentLen.Length, len(payload))
		}
		aRecord.Fields = append(aRecord.Fields, payload[body:end])
		body = end
	}
	return aRecord, nil
}
