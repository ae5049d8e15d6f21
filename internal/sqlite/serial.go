package sqlite

// StorageClass is the storage class a serial type encodes.
type StorageClass int

const (
	ClassNull StorageClass = iota
	ClassFixed
	ClassBlob
	ClassText
)

// ContentLength is the decoded meaning of one serial type: the storage
// class of the field plus how many payload bytes it occupies.
type ContentLength struct {
	Class  StorageClass
	Length int
}

// fixedLengths maps serial types 0 through 11 to their content lengths.
// Types 8 and 9 are the integer constants 0 and 1 and store no bytes;
// types 10 and 11 are reserved and likewise store nothing.
var fixedLengths = [...]int{0, 1, 2, 3, 4, 6, 8, 8, 0, 0, 0, 0}

// ClassifySerialType maps a record-header serial type to its content
// length. Serial types 12 and above alternate between blobs (even) and
// text (odd).
func ClassifySerialType(serialType int64) ContentLength {
	switch {
	case serialType <= 0:
		return ContentLength{Class: ClassNull}
	case serialType < int64(len(fixedLengths)):
		return ContentLength{Class: ClassFixed, Length: fixedLengths[serialType]}
	case serialType%2 == 0:
		return ContentLength{Class: ClassBlob, Length: int((serialType - 12) / 2)}
	default:
		return ContentLength{Class: ClassText, Length: int((serialType - 13) / 2)}
	}
}
