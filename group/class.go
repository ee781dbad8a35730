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
	"errors"
	"math/big"

	"github.com/getamis/sirius/log"

	bqForm "github.com/getamis/accumulator/binaryquadraticform"
)

// class2048DiscriminantDecimal is a 2048-bit negative prime congruent to
// 1 mod 4. Computing discrete logarithms in class groups with a 2048-bit
// discriminant is believed comparable in complexity to GNFS factoring of
// a 4096-bit integer.
const class2048DiscriminantDecimal = "-" +
	"30616069034807523947093657516320815215492876376165067902716988657802400037331914448218251590830" +
	"1102189519215849430413184776658192481976276720778009261808832630304841711366872161223643645001916" +
	"6969493423497224870506311710491233557329479816457723381368788734079933165653042145718668727765268" +
	"0575673207678516369650123480826989387975548598309959486361425021860161020248607833276306314923730" +
	"9854570972702350567411779734372573754840570138310317754359137013512655926325773048926718050691092" +
	"9453371727344087286361426404588335160385998280988603297435639020911295652025967761702701701471162" +
	"3966286152805654229445219531956098223"

var (
	// ErrNotCongruentDiscriminant is returned if the discriminant is not congruent to 1 mod 4.
	ErrNotCongruentDiscriminant = errors.New("discriminant is not congruent to 1 mod 4")

	class2048 = mustClassGroup(mustParseBig(class2048DiscriminantDecimal))
)

// Class2048 returns the form class group of the fixed 2048-bit
// discriminant.
func Class2048() *ClassGroup {
	return class2048
}

// ClassGroup is the class group of positive definite binary quadratic
// forms of a fixed negative discriminant. Elements are reduced forms;
// composition is NUCOMP and squaring NUDUPL, both through the
// binaryquadraticform package.
type ClassGroup struct {
	discriminant *big.Int
	// root4thD = floor(|D|^(1/4)), the NUDUPL partial-GCD bound.
	root4thD *big.Int
}

// NewClassGroup builds the class group of the given discriminant, which
// must be negative and congruent to 1 mod 4.
func NewClassGroup(discriminant *big.Int) (*ClassGroup, error) {
	if discriminant.Sign() > -1 {
		return nil, bqForm.ErrPositiveDiscriminant
	}
	if new(big.Int).Mod(discriminant, big.NewInt(4)).Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotCongruentDiscriminant
	}
	root4thD := new(big.Int).Abs(discriminant)
	root4thD.Sqrt(root4thD)
	root4thD.Sqrt(root4thD)
	return &ClassGroup{
		discriminant: new(big.Int).Set(discriminant),
		root4thD:     root4thD,
	}, nil
}

func mustClassGroup(discriminant *big.Int) *ClassGroup {
	g, err := NewClassGroup(discriminant)
	if err != nil {
		panic(err)
	}
	return g
}

// Discriminant returns the fixed discriminant.
func (g *ClassGroup) Discriminant() *big.Int {
	return new(big.Int).Set(g.discriminant)
}

// ClassElem is a reduced binary quadratic form of the group discriminant.
type ClassElem struct {
	form *bqForm.BQuadraticForm
}

// ElemFrom reduces the triple (a, b, c) into a class element. The triple
// must satisfy b^2 - 4ac = D; users never construct elements themselves,
// so a mismatch signals a severe internal error.
func (g *ClassGroup) ElemFrom(a, b, c *big.Int) *ClassElem {
	form, err := bqForm.NewBQuadraticForm(new(big.Int).Set(a), new(big.Int).Set(b), new(big.Int).Set(c))
	if err != nil {
		log.Error("Failed to build a quadratic form", "err", err, "a", a, "b", b, "c", c)
		panic(err)
	}
	form.Reduction()
	return g.validated(form)
}

func (g *ClassGroup) validated(form *bqForm.BQuadraticForm) *ClassElem {
	if form.GetBQFormDiscriminant().Cmp(g.discriminant) != 0 {
		log.Error("Element discriminant mismatch", "got", form.GetBQFormDiscriminant(), "expected", g.discriminant)
		panic("group: element discriminant mismatch")
	}
	return &ClassElem{form: form}
}

// Equal compares the reduced coefficient triples.
func (e *ClassElem) Equal(other Element) bool {
	o, ok := other.(*ClassElem)
	if !ok {
		return false
	}
	return e.form.Equal(o.form)
}

// Bytes returns the canonical encoding of the reduced triple.
func (e *ClassElem) Bytes() []byte {
	return e.form.Bytes()
}

// Coefficients returns copies of (a, b, c).
func (e *ClassElem) Coefficients() (*big.Int, *big.Int, *big.Int) {
	return new(big.Int).Set(e.form.GetBQForma()),
		new(big.Int).Set(e.form.GetBQFormb()),
		new(big.Int).Set(e.form.GetBQFormc())
}

// Identity returns the principal form (1, 1, (1-D)/4).
func (g *ClassGroup) Identity() Element {
	form, err := bqForm.Identity(g.discriminant)
	if err != nil {
		panic(err)
	}
	return g.validated(form)
}

// UnknownOrderBase returns the reduced form derived from
// (2, 1, (1-D)/8). Computing its order is as hard as computing the class
// number.
func (g *ClassGroup) UnknownOrderBase() Element {
	form, err := bqForm.NewBQuadraticFormByDiscriminant(big.NewInt(2), big.NewInt(1), g.discriminant)
	if err != nil {
		panic(err)
	}
	form.Reduction()
	return g.validated(form)
}

// Op composes with NUCOMP and reduces.
func (g *ClassGroup) Op(a, b Element) Element {
	av, bv := g.classElem(a), g.classElem(b)
	return g.validated(av.form.Composition(bv.form))
}

// Exp runs square-and-multiply with NUDUPL squarings.
func (g *ClassGroup) Exp(a Element, n *big.Int) Element {
	if n.Sign() < 0 {
		panic("group: negative exponent")
	}
	av := g.classElem(a)
	return g.validated(av.form.Exp(n, g.root4thD))
}

// Inverse returns (a, -b, c) reduced.
func (g *ClassGroup) Inverse(a Element) Element {
	av := g.classElem(a)
	return g.validated(av.form.Inverse())
}

// ExpSigned exponentiates through the inverse for negative n.
func (g *ClassGroup) ExpSigned(a Element, n *big.Int) Element {
	return ExpSigned(g, a, n)
}

func (g *ClassGroup) classElem(a Element) *ClassElem {
	e, ok := a.(*ClassElem)
	if !ok {
		panic("group: element from a different group")
	}
	return e
}
