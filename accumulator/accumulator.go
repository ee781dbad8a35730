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

package accumulator

import (
	"errors"
	"math/big"

	"github.com/getamis/sirius/log"

	"github.com/getamis/accumulator/group"
	"github.com/getamis/accumulator/proof"
	"github.com/getamis/accumulator/utils"
)

var (
	// ErrBadWitness is returned if a supplied witness does not recover the accumulator.
	ErrBadWitness = errors.New("witness does not match the accumulator")
	// ErrInputsNotCoprime is returned if aggregation requires co-prime inputs and gcd != 1.
	ErrInputsNotCoprime = errors.New("inputs are not co-prime")

	big1 = big.NewInt(1)
)

/* A universal accumulator: a constant-size commitment to a set of odd
 * primes with succinct membership and non-membership proofs. Two
 * invariants are the caller's responsibility:
 *
 * 1. Only odd primes are accumulated; hash.HashToPrime enforces this for
 *    arbitrary data.
 * 2. No element is accumulated twice.
 *
 * Accumulators are immutable; every mutation returns a fresh value.
 */
type Accumulator struct {
	group group.InvertibleGroup
	state group.Element
}

// ElemWitness pairs an accumulated prime with its membership witness, a
// prior accumulator state w satisfying w^elem = state.
type ElemWitness struct {
	Elem    *big.Int
	Witness group.Element
}

// NonMembershipProof shows that a set of primes is absent from the
// accumulated set.
type NonMembershipProof struct {
	D     group.Element
	V     group.Element
	GvInv group.Element

	Poke2Proof *proof.PoKE2
	PoeProof   *proof.PoE
}

// New initializes the accumulator to the group's unknown-order base.
func New(g group.InvertibleGroup) *Accumulator {
	return &Accumulator{
		group: g,
		state: g.UnknownOrderBase(),
	}
}

// NewWithState restores an accumulator around a previously observed
// state, e.g. to use it as a membership witness.
func NewWithState(g group.InvertibleGroup, state group.Element) *Accumulator {
	return &Accumulator{
		group: g,
		state: state,
	}
}

// Group returns the backing group.
func (acc *Accumulator) Group() group.InvertibleGroup {
	return acc.group
}

// State returns the current group element.
func (acc *Accumulator) State() group.Element {
	return acc.state
}

// Add accumulates elems and returns the new accumulator together with a
// proof that state^prod(elems) is the new state. Add cannot detect
// duplicates; accumulating an element twice breaks the set semantics.
func (acc *Accumulator) Add(elems []*big.Int) (*Accumulator, *proof.PoE) {
	x := utils.Product(elems)
	newState := acc.group.Exp(acc.state, x)
	poeProof := proof.NewPoE(acc.group, acc.state, x, newState)
	return &Accumulator{group: acc.group, state: newState}, poeProof
}

// Delete removes the elements in elemWitnesses, aggregating the supplied
// witnesses with the Shamir trick. The returned proof certifies
// newState^prod(elems) = state. An empty delete returns the accumulator
// unchanged with a proof for exponent 1.
func (acc *Accumulator) Delete(elemWitnesses []ElemWitness) (*Accumulator, *proof.PoE, error) {
	elemAggregate := big.NewInt(1)
	accNext := acc.state

	for _, ew := range elemWitnesses {
		if !acc.group.Exp(ew.Witness, ew.Elem).Equal(acc.state) {
			log.Warn("Witness does not recover the accumulator", "elem", ew.Elem)
			return nil, nil, ErrBadWitness
		}

		accNext = utils.ShamirTrick(acc.group, accNext, ew.Witness, elemAggregate, ew.Elem)
		if accNext == nil {
			log.Warn("Aggregated elements are not co-prime", "elem", ew.Elem)
			return nil, nil, ErrInputsNotCoprime
		}

		elemAggregate.Mul(elemAggregate, ew.Elem)
	}

	poeProof := proof.NewPoE(acc.group, accNext, elemAggregate, acc.state)
	return &Accumulator{group: acc.group, state: accNext}, poeProof, nil
}

// ProveMembership builds the aggregate witness for the given elements.
// Structurally this is Delete: removing the elements leaves exactly
// their combined witness.
func (acc *Accumulator) ProveMembership(elemWitnesses []ElemWitness) (*Accumulator, *proof.PoE, error) {
	return acc.Delete(elemWitnesses)
}

// VerifyMembership checks witness^prod(elems) = state via the PoE.
func (acc *Accumulator) VerifyMembership(witness group.Element, elems []*big.Int, poeProof *proof.PoE) bool {
	return poeProof.Verify(acc.group, witness, utils.Product(elems), acc.state)
}

// ProveNonmembership shows elems are disjoint from accSet, the exact
// multiset of accumulated primes. With x = prod(elems),
// s = prod(accSet) and Bezout coefficients ax + bs = 1, the proof
// carries d = g^a, v = state^b and g*v^-1, tied together by a PoKE2 for
// b and a PoE for d^x = g*v^-1.
func (acc *Accumulator) ProveNonmembership(accSet, elems []*big.Int) (*NonMembershipProof, error) {
	x := utils.Product(elems)
	s := utils.Product(accSet)
	a, b, gcd := utils.Bezout(x, s)

	if gcd.Cmp(big1) != 0 {
		log.Debug("Elements share a factor with the accumulated set", "gcd", gcd)
		return nil, ErrInputsNotCoprime
	}

	g := acc.group.UnknownOrderBase()
	d := acc.group.ExpSigned(g, a)
	v := acc.group.ExpSigned(acc.state, b)
	gvInv := acc.group.Op(g, acc.group.Inverse(v))

	return &NonMembershipProof{
		D:          d,
		V:          v,
		GvInv:      gvInv,
		Poke2Proof: proof.NewPoKE2(acc.group, acc.state, b, v),
		PoeProof:   proof.NewPoE(acc.group, d, x, gvInv),
	}, nil
}

// VerifyNonmembership re-runs both sub-proofs against the same tuple.
func (acc *Accumulator) VerifyNonmembership(elems []*big.Int, nonMemProof *NonMembershipProof) bool {
	x := utils.Product(elems)
	return nonMemProof.Poke2Proof.Verify(acc.group, acc.state, nonMemProof.V) &&
		nonMemProof.PoeProof.Verify(acc.group, nonMemProof.D, x, nonMemProof.GvInv)
}
