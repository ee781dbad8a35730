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
	"github.com/getamis/accumulator/utils"
)

/* Proof of knowledge of co-prime roots: given witnesses w_i with
 * w_i^{x_i} = alpha_i, the aggregate W = prod(w_i) satisfies
 * W^{x*} = prod(alpha_i^{x* / x_i}) with x* = prod(x_i). The check
 * certifies co-prime roots only when the x_i are pairwise co-prime. The accumulator only ever aggregates distinct odd primes,
 * which satisfies the requirement.
 */
type PoKCR struct {
	W group.Element
}

// NewPoKCR aggregates the witnesses into a single group element.
func NewPoKCR(g group.Group, witnesses []group.Element) *PoKCR {
	w := g.Identity()
	for _, witness := range witnesses {
		w = g.Op(w, witness)
	}
	return &PoKCR{W: w}
}

// Verify checks W^{x*} = prod(alpha_i^{x*/x_i}) with x* = prod(x_i),
// computing the right side with a multi-exponentiation.
func (proof *PoKCR) Verify(g group.Group, alphas []group.Element, x []*big.Int) bool {
	if len(alphas) != len(x) || len(alphas) == 0 {
		return false
	}
	xStar := utils.Product(x)
	y := group.MultiExp(g, alphas, x)
	return g.Exp(proof.W, xStar).Equal(y)
}
