package usecases

import (
	"crypto/sha256"
	"encoding/binary"
)

// DeriveSeed mixes a recent slot number, the collection and user
// identities, and caller-supplied entropy into a 32-byte sampling seed.
// The same inputs always produce the same seed, which is what makes trait
// generation reproducible.
func DeriveSeed(slot uint64, collection, user string, entropy []byte) [32]byte {
	h := sha256.New()

	var slotBytes [8]byte
	binary.LittleEndian.PutUint64(slotBytes[:], slot)
	h.Write(slotBytes[:])
	h.Write([]byte(collection))
	h.Write([]byte(user))
	h.Write(entropy)

	var seed [32]byte
	copy(seed[:], h.Sum(nil))
	return seed
}
