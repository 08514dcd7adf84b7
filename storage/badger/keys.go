package badger

import "encoding/binary"

// Key prefixes for snapshot data
const (
	snapshotMetaKey     = "catsnap"
	snapshotRecordPfx   = "catrec"
	snapshotRecordColon = snapshotRecordPfx + ":"
)

// makeSnapshotRecordKey generates a key for the record at the given
// position. The index is written in BigEndian order so iterating the
// prefix returns records in their original catalog order.
func makeSnapshotRecordKey(index int) []byte {
	prefixBytes := []byte(snapshotRecordColon)
	buf := make([]byte, len(prefixBytes)+4)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint32(buf[offset:], uint32(index))
	return buf
}
