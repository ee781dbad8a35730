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

package proof

import (
	"math/big"

	"github.com/getamis/accumulator/group"
	"github.com/getamis/accumulator/hash"
	"github.com/getamis/accumulator/utils"
)

/* Proof of knowledge of exponent, variant 2 (Boneh, Bünz and Fisch,
 * section 3): proves knowledge of an integer exp with base^exp = result
 * while revealing only the commitment z = g^exp. The exponent may be
 * negative, so the quotient is taken with floor division and the residue
 * with the Euclidean remainder.
 */
type PoKE2 struct {
	Z group.Element
	Q group.Element
	R *big.Int
}

// NewPoKE2 proves knowledge of exp with base^exp = result.
func NewPoKE2(g group.InvertibleGroup, base group.Element, exp *big.Int, result group.Element) *PoKE2 {
	gen := g.UnknownOrderBase()
	z := g.ExpSigned(gen, exp)
	l := poke2Challenge(base, result, z)
	alpha := poke2Residue(base, result, z, l)

	q := utils.FloorDiv(exp, l)
	r := utils.EuclideanMod(exp, l)
	return &PoKE2{
		Z: z,
		Q: g.ExpSigned(g.Op(base, g.Exp(gen, alpha)), q),
		R: r,
	}
}

// Verify recomputes l and alpha and checks
// Q^l * (base * g^alpha)^r = result * z^alpha.
func (proof *PoKE2) Verify(g group.Group, base, result group.Element) bool {
	if proof.R.Sign() < 0 {
		return false
	}
	gen := g.UnknownOrderBase()
	l := poke2Challenge(base, result, proof.Z)
	if proof.R.Cmp(l) >= 0 {
		return false
	}
	alpha := poke2Residue(base, result, proof.Z, l)

	lhs := g.Op(
		g.Exp(proof.Q, l),
		g.Exp(g.Op(base, g.Exp(gen, alpha)), proof.R),
	)
	rhs := g.Op(result, g.Exp(proof.Z, alpha))
	return lhs.Equal(rhs)
}

func poke2Challenge(base, result, z group.Element) *big.Int {
	return hash.HashToPrime(hash.Transcript(base.Bytes(), result.Bytes(), z.Bytes()))
}

func poke2Residue(base, result, z group.Element, l *big.Int) *big.Int {
	return hash.HashToInt(hash.Transcript(base.Bytes(), result.Bytes(), z.Bytes(), l.Bytes()))
}
