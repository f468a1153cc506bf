/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package rotation

import (
	"crypto/cipher"
	"encoding/binary"
	"math"
	"math/rand"

	"go.dedis.ch/kyber/v3/util/random"
	"go.dedis.ch/kyber/v3/xof/blake2xb"
)

// randomness is a rand.Source that reads its output off a key stream
type randomness struct {
	stream cipher.Stream
}

// seededRand returns a generator that yields the same sequence for the same seed.
// The sequence is the output of an extendable output function keyed with the seed.
func seededRand(seed int64) *rand.Rand {
	seedBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seedBytes, uint64(seed))
	return rand.New(&randomness{stream: blake2xb.New(seedBytes)})
}

// streamRand returns a generator drawing from the given stream
func streamRand(stream cipher.Stream) *rand.Rand {
	return rand.New(&randomness{stream: stream})
}

func (r *randomness) Uint64() uint64 {
	return binary.BigEndian.Uint64(random.Bits(64, false, r.stream))
}

func (r *randomness) Int63() int64 {
	return int64(r.Uint64() & math.MaxInt64)
}

func (r *randomness) Seed(_ int64) {
	panic("this random source should not be re-seeded")
}
