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

package utils

import (
	"math/big"

	"github.com/getamis/accumulator/group"
)

var big1 = big.NewInt(1)

// Product returns the product of xs, with the empty product being 1.
func Product(xs []*big.Int) *big.Int {
	out := big.NewInt(1)
	for _, x := range xs {
		out.Mul(out, x)
	}
	return out
}

// Bezout returns (a, b, g) such that ax + by = g = gcd(|x|, |y|).
func Bezout(x, y *big.Int) (*big.Int, *big.Int, *big.Int) {
	absx := new(big.Int).Abs(x)
	absy := new(big.Int).Abs(y)

	if y.Sign() == 0 {
		return new(big.Int).SetInt64(int64(x.Sign())), big.NewInt(0), absx
	}

	a, b := big.NewInt(0), big.NewInt(0)
	g := new(big.Int).GCD(a, b, absx, absy)

	if x.Sign() == -1 {
		a.Neg(a)
	}
	if y.Sign() == -1 {
		b.Neg(b)
	}
	return a, b, g
}

// FloorDiv returns floor(x / y) for y > 0.
func FloorDiv(x, y *big.Int) *big.Int {
	return new(big.Int).Div(x, y)
}

// EuclideanMod returns x mod m in [0, m) for m > 0.
func EuclideanMod(x, m *big.Int) *big.Int {
	return new(big.Int).Mod(x, m)
}

// ShamirTrick combines an xth root and a yth root of a common element
// into an (xy)th root. With Bezout coefficients ax + by = 1 the root is
// xthRoot^b * ythRoot^a. Returns nil if the roots disagree on the common
// element or if gcd(x, y) != 1.
func ShamirTrick(g group.InvertibleGroup, xthRoot, ythRoot group.Element, x, y *big.Int) group.Element {
	if !g.Exp(xthRoot, x).Equal(g.Exp(ythRoot, y)) {
		return nil
	}

	a, b, gcd := Bezout(x, y)
	if gcd.Cmp(big1) != 0 {
		return nil
	}

	return g.Op(g.ExpSigned(xthRoot, b), g.ExpSigned(ythRoot, a))
}
