// Copyright © 2019 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hash

import (
	"encoding/binary"
	"math/big"

	blake2bsimd "github.com/minio/blake2b-simd"
	"golang.org/x/crypto/blake2b"

	"github.com/getamis/accumulator/primality"
	"github.com/getamis/accumulator/uint"
)

// Blake2b256 returns the 256-bit Blake2b digest of data.
func Blake2b256(data []byte) [32]byte {
	return blake2bsimd.Sum256(data)
}

// Blake2b256Keyed returns the 256-bit keyed Blake2b digest of data. The
// key must be at most 64 bytes.
func Blake2b256Keyed(key, data []byte) [32]byte {
	h, err := blake2b.New256(key)
	if err != nil {
		panic(err)
	}
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashToInt maps data to an integer below 2^256.
func HashToInt(data []byte) *big.Int {
	digest := Blake2b256(data)
	return new(big.Int).SetBytes(digest[:])
}

// HashToPrime deterministically maps data to an odd 256-bit probable
// prime. The incrementing counter is fed to Blake2b as the hash key, and
// each candidate has its lowest bit forced before the primality test,
// which saves the test a trivial rejection on even candidates.
func HashToPrime(data []byte) *big.Int {
	var key [8]byte
	for counter := uint64(0); ; counter++ {
		binary.BigEndian.PutUint64(key[:], counter)
		digest := Blake2b256Keyed(key[:], data)
		digest[0] |= 1
		candidate := uint.FromBytesLE(digest)
		if primality.IsProbablePrime(candidate) {
			return candidate.Big()
		}
	}
}

// Transcript concatenates fields with 8-byte length prefixes so that
// distinct tuples never collide before hashing.
func Transcript(fields ...[]byte) []byte {
	size := 0
	for _, f := range fields {
		size += 8 + len(f)
	}
	out := make([]byte, 0, size)
	var length [8]byte
	for _, f := range fields {
		binary.BigEndian.PutUint64(length[:], uint64(len(f)))
		out = append(out, length[:]...)
		out = append(out, f...)
	}
	return out
}
