package snapshot

// magic is the fixed 8-byte ASCII identifier at the start of every
// snapshot file.
const magic = "OGRGRAPH"

// currentVersion is the only version this codec writes; Decode
// accepts it and rejects any other.
const currentVersion int32 = 1

// headerSize is the total fixed header length in bytes: magic (8) +
// version (4) + node count (8) + edge count (8) + bounds (4×8=32) +
// padding (68), summing to 128.
const headerSize = 128
const headerPaddingSize = 68

// nodeRecordSize is the fixed per-node record length: id (8) + lat
// (8) + lon (8).
const nodeRecordSize = 24

// edgeFixedRecordSize is the fixed portion of a per-edge record: id
// (8) + source id (8) + target id (8) + one-way flag (1) + distance
// (8) + padding (7) + tag count (4).
const edgeFixedRecordSize = 44

// edgeRecordPaddingSize aligns the tag-count field after the one-way
// flag and distance.
const edgeRecordPaddingSize = 7

// absentStringID marks a nullable string reference with no value.
const absentStringID int32 = -1
