package sqlite

import "fmt"

// DecodeCell decodes one table-leaf cell: a payload-length varint, a
// row ID varint, then the inline payload. Cells whose declared payload
// exceeds the bytes present continue on an overflow page and are
// rejected with ErrOverflowPayload rather than decoded short.
func DecodeCell(cell []byte) ([]byte, int64, error) {
	payloadLen, n, err := DecodeVarint(cell)
	if err != nil {
		return nil, 0, fmt.Errorf("payload length: %w", err)
	}
	rowID, m, err := DecodeVarint(cell[n:])
	if err != nil {
		return nil, 0, fmt.Errorf("row id: %w", err)
	}

	start := n + m
	if payloadLen < 0 || payloadLen > int64(len(cell)-start) {
		return nil, 0, fmt.Errorf("%w: %d bytes declared, %d inline", ErrOverflowPayload, payloadLen, len(cell)-start)
	}
	return cell[start : start+int(payloadLen)], rowID, nil
}
