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

package vectorcommitment

import (
	"errors"
	"math/big"

	"github.com/getamis/sirius/log"

	"github.com/getamis/accumulator/accumulator"
	"github.com/getamis/accumulator/hash"
	"github.com/getamis/accumulator/proof"
)

var (
	// ErrConflictingIndices is returned if an update names the same index twice.
	ErrConflictingIndices = errors.New("conflicting indices")
)

/* A vector commitment over the accumulator: every bit index is hashed to
 * a prime, its slot, and the committed bit vector is encoded by which
 * slots are accumulated. Setting a bit accumulates its slot prime;
 * a cleared bit is shown absent with a non-membership proof.
 */

// BitUpdate sets or clears the bit at the given index.
type BitUpdate struct {
	Bit   bool
	Index *big.Int
}

// VectorProof certifies one batched update: a PoE for the added slot
// primes and a non-membership proof for the cleared ones.
type VectorProof struct {
	MembershipProof    *proof.PoE
	NonMembershipProof *accumulator.NonMembershipProof
}

// SlotPrime maps a bit index to the prime standing for it.
func SlotPrime(index *big.Int) *big.Int {
	return hash.HashToPrime(index.Bytes())
}

func groupBitsBySlot(bits []BitUpdate) ([]*big.Int, []*big.Int, error) {
	var withZero, withOne []*big.Int
	seen := make(map[string]struct{})
	for _, b := range bits {
		key := string(b.Index.Bytes())
		if _, ok := seen[key]; ok {
			log.Warn("Duplicate index in vector update", "index", b.Index)
			return nil, nil, ErrConflictingIndices
		}
		seen[key] = struct{}{}
		if b.Bit {
			withOne = append(withOne, SlotPrime(b.Index))
		} else {
			withZero = append(withZero, SlotPrime(b.Index))
		}
	}
	return withZero, withOne, nil
}

// Update applies the bit updates to the accumulator. accSet is the full
// multiset of primes accumulated after the update, used for the
// non-membership half of the proof. Indices must be pairwise distinct.
func Update(acc *accumulator.Accumulator, accSet []*big.Int, bits []BitUpdate) (*accumulator.Accumulator, *VectorProof, error) {
	withZero, withOne, err := groupBitsBySlot(bits)
	if err != nil {
		return nil, nil, err
	}

	newAcc, membershipProof := acc.Add(withOne)
	nonMembershipProof, err := newAcc.ProveNonmembership(accSet, withZero)
	if err != nil {
		return nil, nil, err
	}

	return newAcc, &VectorProof{
		MembershipProof:    membershipProof,
		NonMembershipProof: nonMembershipProof,
	}, nil
}

// Verify checks one batched update from prevAcc to nextAcc: the added
// slot primes via the PoE and the cleared ones via the non-membership
// proof. Conflicting indices make the proof invalid rather than an
// error.
func Verify(prevAcc, nextAcc *accumulator.Accumulator, bits []BitUpdate, vectorProof *VectorProof) bool {
	withZero, withOne, err := groupBitsBySlot(bits)
	if err != nil {
		return false
	}
	return nextAcc.VerifyMembership(prevAcc.State(), withOne, vectorProof.MembershipProof) &&
		nextAcc.VerifyNonmembership(withZero, vectorProof.NonMembershipProof)
}
