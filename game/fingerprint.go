package game

import (
	"encoding/binary"
	"hash/fnv"
	"math/bits"
)

// Fingerprint is the pair of occupancy bitmasks, one per player, with bit
// row*8+col set when that player holds the cell.
type Fingerprint [2]uint64

// Key folds the fingerprint into a single integer, used by the opening book
// file format.
func (f Fingerprint) Key() uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, f[0])
	binary.Write(hasher, binary.LittleEndian, f[1])
	return hasher.Sum64()
}

// Count returns how many pieces p has on the cells of mask.
func (f Fingerprint) Count(p Player, mask uint64) int {
	return bits.OnesCount64(f[p] & mask)
}

// FingerprintOf rebuilds a fingerprint from a row-major grid.
func FingerprintOf(cells [Size * Size]Cell) Fingerprint {
	var f Fingerprint
	for i, v := range cells {
		if owner, ok := v.Owner(); ok {
			f[owner] |= 1 << i
		}
	}
	return f
}
