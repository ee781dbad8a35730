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
)

/* Proof of exponentiation: a succinct certificate that base^exp = result
 * in a group of unknown order, after Boneh, Bünz and Fisch, "Batching
 * Techniques for Accumulators with Applications to IOPs and Stateless
 * Blockchains", section 3.
 *
 * The verifier's work is one hash-to-prime and two small
 * exponentiations, independent of the size of exp.
 */
type PoE struct {
	Q group.Element
}

// NewPoE proves base^exp = result for exp >= 0.
func NewPoE(g group.Group, base group.Element, exp *big.Int, result group.Element) *PoE {
	l := poeChallenge(base, exp, result)
	q := new(big.Int).Div(exp, l)
	return &PoE{
		Q: g.Exp(base, q),
	}
}

// Verify recomputes the Fiat-Shamir prime and checks Q^l * base^r = result.
func (proof *PoE) Verify(g group.Group, base group.Element, exp *big.Int, result group.Element) bool {
	l := poeChallenge(base, exp, result)
	r := new(big.Int).Mod(exp, l)
	w := g.Op(g.Exp(proof.Q, l), g.Exp(base, r))
	return w.Equal(result)
}

func poeChallenge(base group.Element, exp *big.Int, result group.Element) *big.Int {
	return hash.HashToPrime(hash.Transcript(base.Bytes(), exp.Bytes(), result.Bytes()))
}
