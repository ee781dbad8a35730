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

	"github.com/getamis/sirius/log"
)

// rsa2048ModulusDecimal is the RSA-2048 challenge modulus, taken from
// https://en.wikipedia.org/wiki/RSA_numbers#RSA-2048.
const rsa2048ModulusDecimal = "25195908475657893494027183240048398571429282126204" +
	"03202777713783604366202070759555626401852588078440" +
	"69182906412495150821892985591491761845028084891200" +
	"72844992687392807287776735971418347270261896375014" +
	"97182469116507761337985909570009733045974880842840" +
	"17974291006424586918171951187461215151726546322822" +
	"16869987549182422433637259085141865462043576798423" +
	"38718477444792073993423658482382428119816381501067" +
	"48104516603773060562016196762561338441436038339044" +
	"14952634432190114657544454178424020924616515723350" +
	"77870774981712577246796292638635637328991215483143" +
	"81678998850404453640235273819513786365643912120103" +
	"97122822120720357"

var rsa2048 = NewRSAGroup(mustParseBig(rsa2048ModulusDecimal))

// RSA2048 returns the multiplicative group modulo the RSA-2048 challenge
// number. Nobody is known to hold its factorization, which makes the
// group order unknown.
func RSA2048() *RSAGroup {
	return rsa2048
}

// RSAGroup is the quotient group (Z/nZ)* / {1, -1} for a composite n
// whose factorization is unknown. Quotienting out -1 removes the single
// known element of low order, so each residue class {x, n-x} is
// represented by its smaller member.
type RSAGroup struct {
	n     *big.Int
	halfN *big.Int
}

// NewRSAGroup builds the group for the given modulus. Production use
// should stick to RSA2048; small moduli are only suitable as legible
// test doubles.
func NewRSAGroup(n *big.Int) *RSAGroup {
	return &RSAGroup{
		n:     new(big.Int).Set(n),
		halfN: new(big.Int).Rsh(n, 1),
	}
}

// RSAElem is a residue class represented by the smaller of x and n-x.
type RSAElem struct {
	val *big.Int
}

// ElemFrom coerces an integer into its canonical coset representative.
func (g *RSAGroup) ElemFrom(x *big.Int) *RSAElem {
	val := new(big.Int).Mod(x, g.n)
	if val.Cmp(g.halfN) > 0 {
		val.Sub(g.n, val)
	}
	return &RSAElem{val: val}
}

// Equal compares canonical representatives.
func (e *RSAElem) Equal(other Element) bool {
	o, ok := other.(*RSAElem)
	if !ok {
		return false
	}
	return e.val.Cmp(o.val) == 0
}

// Bytes returns the canonical representative in big-endian form.
func (e *RSAElem) Bytes() []byte {
	return e.val.Bytes()
}

// Big returns a copy of the canonical representative.
func (e *RSAElem) Big() *big.Int {
	return new(big.Int).Set(e.val)
}

// Identity returns 1.
func (g *RSAGroup) Identity() Element {
	return g.ElemFrom(big.NewInt(1))
}

// UnknownOrderBase returns 2, the conventional generator-like element.
func (g *RSAGroup) UnknownOrderBase() Element {
	return g.ElemFrom(big.NewInt(2))
}

// Op multiplies modulo n and re-canonicalizes.
func (g *RSAGroup) Op(a, b Element) Element {
	av, bv := g.rsaElem(a), g.rsaElem(b)
	return g.ElemFrom(new(big.Int).Mul(av.val, bv.val))
}

// Exp uses the modular exponentiation of math/big rather than the
// generic square-and-multiply.
func (g *RSAGroup) Exp(a Element, n *big.Int) Element {
	if n.Sign() < 0 {
		panic("group: negative exponent")
	}
	av := g.rsaElem(a)
	return g.ElemFrom(new(big.Int).Exp(av.val, n, g.n))
}

// Inverse inverts with the extended GCD. A non-unit input would reveal a
// factor of n, which cannot happen with well-formed elements.
func (g *RSAGroup) Inverse(a Element) Element {
	av := g.rsaElem(a)
	inv := new(big.Int).ModInverse(av.val, g.n)
	if inv == nil {
		log.Error("Non-unit element in RSA group", "val", av.val)
		panic("group: non-unit element")
	}
	return g.ElemFrom(inv)
}

// ExpSigned exponentiates through the inverse for negative n.
func (g *RSAGroup) ExpSigned(a Element, n *big.Int) Element {
	return ExpSigned(g, a, n)
}

func (g *RSAGroup) rsaElem(a Element) *RSAElem {
	e, ok := a.(*RSAElem)
	if !ok {
		panic("group: element from a different group")
	}
	return e
}

func mustParseBig(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("group: malformed integer literal")
	}
	return x
}
