package sqlite

// maxVarintLen is the most bytes a varint may occupy. The first eight
// bytes contribute 7 bits each, the ninth contributes all 8 of its bits.
const maxVarintLen = 9

// DecodeVarint reads one big-endian variable-length integer from the
// start of buf. The value and the number of bytes consumed are returned
// together so callers can advance their offset. Values wider than 63
// bits wrap into negative numbers, matching the format's two's-complement
// semantics.
func DecodeVarint(buf []byte) (int64, int, error) {
	var value int64
	for i := 0; i < maxVarintLen-1; i++ {
		if i >= len(buf) {
			return 0, 0, ErrTruncatedVarint
		}
		value = value<<7 | int64(buf[i]&0x7f)
		if buf[i]&0x80 == 0 {
			return value, i + 1, nil
		}
	}
	if len(buf) < maxVarintLen {
		return 0, 0, ErrTruncatedVarint
	}
	return value<<8 | int64(buf[maxVarintLen-1]), maxVarintLen, nil
}
