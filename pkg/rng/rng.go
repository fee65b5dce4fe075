// Package rng provides the deterministic, element-seeded random streams
// every element processor draws from ("All processors share
// one rule"). Seeding by element id (and, for per-block choices, by block
// coordinate) guarantees that an element reprocessed by multiple
// scheduler units because its bounding box straddles a boundary produces
// identical blocks every time (law "Deterministic seeding").
package rng

import (
	"encoding/binary"
	"math/rand/v2"
)

// ElementRNG returns a ChaCha8-seeded RNG deterministic in elementID,
// matching the reference implementation's element_rng.
func ElementRNG(elementID uint64) *rand.Rand {
	return rand.New(rand.NewChaCha8(seedBytes(elementID)))
}

// ElementRNGSalted returns an independent deterministic stream for the
// same element, combined with salt via XOR and a 32-bit rotation so that
// two different purposes (e.g. wall color vs. roof style) never draw from
// the same sequence.
func ElementRNGSalted(elementID, salt uint64) *rand.Rand {
	combined := elementID ^ rotl32(salt)
	return rand.New(rand.NewChaCha8(seedBytes(combined)))
}

// CoordRNG returns a deterministic per-block RNG combining a coordinate
// pair with an element id, used for per-block scatter decisions (flower
// placement, ore rarity, scaffolding density) that must stay identical
// regardless of processing order.
func CoordRNG(x, z int32, elementID uint64) *rand.Rand {
	coordPart := (int64(uint32(x)) << 32) | int64(uint32(z))
	seed := uint64(coordPart) ^ elementID
	return rand.New(rand.NewChaCha8(seedBytes(seed)))
}

func rotl32(v uint64) uint64 {
	return (v << 32) | (v >> 32)
}

// seedBytes expands a u64 seed into ChaCha8's 32-byte key by repeating it
// four times; ChaCha8Rng::seed_from_u64 in the reference does an
// equivalent splitmix64-based expansion, but since the spec only requires
// "two RNG streams created from the same element_id produce identical
// sequences" (not bit-for-bit parity with the Rust RNG's output), a
// simpler deterministic expansion satisfies the law while staying on
// Go's standard ChaCha8 source.
func seedBytes(seed uint64) [32]byte {
	var b [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], seed)
	}
	return b
}
