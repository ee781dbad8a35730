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

package group

import (
	"math/big"
)

// Element is a value in a group of unknown order. Elements are immutable
// and canonical: Bytes returns the same encoding for equal elements, so
// it doubles as the Fiat-Shamir transcript representation.
type Element interface {
	Equal(Element) bool
	Bytes() []byte
}

// Group is the capability set shared by every backend. Exp only accepts
// non-negative exponents; groups with efficient inverses additionally
// implement InvertibleGroup.
type Group interface {
	// Identity returns the neutral element.
	Identity() Element
	// UnknownOrderBase returns a canonical element of unknown order.
	UnknownOrderBase() Element
	// Op returns the composition of a and b.
	Op(a, b Element) Element
	// Exp returns a^n for n >= 0.
	Exp(a Element, n *big.Int) Element
}

// InvertibleGroup supports efficient inverses, and with them arbitrary
// integer exponents.
type InvertibleGroup interface {
	Group
	// Inverse returns a^-1.
	Inverse(a Element) Element
	// ExpSigned returns a^n for any integer n.
	ExpSigned(a Element, n *big.Int) Element
}

// Exp is the default square-and-multiply exponentiation from the most
// significant bit down. Backends without a faster specialization build
// their Exp on it.
func Exp(g Group, a Element, n *big.Int) Element {
	if n.Sign() < 0 {
		panic("group: negative exponent")
	}
	val := g.Identity()
	for i := n.BitLen() - 1; i >= 0; i-- {
		val = g.Op(val, val)
		if n.Bit(i) == 1 {
			val = g.Op(val, a)
		}
	}
	return val
}

// ExpSigned exponentiates through the inverse for negative n.
func ExpSigned(g InvertibleGroup, a Element, n *big.Int) Element {
	if n.Sign() >= 0 {
		return g.Exp(a, n)
	}
	return g.Exp(g.Inverse(a), new(big.Int).Neg(n))
}

// MultiExp computes prod(alphas[i]^(x*/x[i])) with x* = prod(x) by
// splitting the list in half:
//
//	multiExp(L) = multiExp(L_l)^prod(x_r) * multiExp(L_r)^prod(x_l)
//
// which keeps the recursion depth logarithmic. This is the aggregate the
// co-prime-roots verifier compares against W^(x*).
func MultiExp(g Group, alphas []Element, x []*big.Int) Element {
	if len(alphas) != len(x) || len(alphas) == 0 {
		panic("group: mismatched multi-exponentiation inputs")
	}
	if len(alphas) == 1 {
		return alphas[0]
	}
	half := len(alphas) / 2
	alphaL, alphaR := alphas[:half], alphas[half:]
	xL, xR := x[:half], x[half:]

	xStarL := big.NewInt(1)
	for _, xi := range xL {
		xStarL.Mul(xStarL, xi)
	}
	xStarR := big.NewInt(1)
	for _, xi := range xR {
		xStarR.Mul(xStarR, xi)
	}

	l := MultiExp(g, alphaL, xL)
	r := MultiExp(g, alphaR, xR)
	return g.Op(g.Exp(l, xStarR), g.Exp(r, xStarL))
}
