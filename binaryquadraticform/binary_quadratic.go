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

package binaryquadraticform

import (
	"errors"
	"math/big"
)

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFour = big.NewInt(4)

	// In this library, we only consider positive definite quadratic forms
	ErrPositiveDiscriminant = errors.New("discriminant should be negative")
)

/* This Library only supports some oprations of "pimitive positive definite binary quadratic forms" (i.e.
 * corresponding to ideal operations over imaginary quadratic fields).
 * A Quadratic form is given by: (a,b,c) := ax^2+bxy+cy^2 with discriminant = b^2 - 4ac < 0
 */
type BQuadraticForm struct {
	a            *big.Int
	b            *big.Int
	c            *big.Int
	discriminant *big.Int
}

// Give a, b, c to construct quadratic forms.
func NewBQuadraticForm(a, b, c *big.Int) (*BQuadraticForm, error) {
	// discriminant = b^2 - 4ac
	discriminant := new(big.Int).Mul(b, b)
	ac := new(big.Int).Mul(a, c)
	discriminant = discriminant.Sub(discriminant, ac.Lsh(ac, 2))

	if discriminant.Sign() > -1 {
		return nil, ErrPositiveDiscriminant
	}

	return &BQuadraticForm{
		a:            a,
		b:            b,
		c:            c,
		discriminant: discriminant,
	}, nil
}

// Give a, b, discriminant to constuct quadratic forms.
func NewBQuadraticFormByDiscriminant(a, b, discriminant *big.Int) (*BQuadraticForm, error) {
	if discriminant.Sign() > -1 {
		return nil, ErrPositiveDiscriminant
	}

	bSquare := new(big.Int).Mul(b, b)
	c := new(big.Int).Sub(bSquare, discriminant)
	c.Div(c, a)
	c.Rsh(c, 2)

	return &BQuadraticForm{
		a:            new(big.Int).Set(a),
		b:            new(big.Int).Set(b),
		c:            c,
		discriminant: new(big.Int).Set(discriminant),
	}, nil
}

// Identity returns the principal form (1, 1, (1-D)/4) of the given
// discriminant.
func Identity(discriminant *big.Int) (*BQuadraticForm, error) {
	if discriminant.Sign() > -1 {
		return nil, ErrPositiveDiscriminant
	}
	c := new(big.Int).Sub(bigOne, discriminant)
	c.Div(c, bigFour)
	return &BQuadraticForm{
		a:            big.NewInt(1),
		b:            big.NewInt(1),
		c:            c,
		discriminant: new(big.Int).Set(discriminant),
	}, nil
}

// Get the coefficient of a binary quadratic form: ax^2 + bxy + cy^2
// Get a
func (bqForm *BQuadraticForm) GetBQForma() *big.Int {
	return bqForm.a
}

// Get b
func (bqForm *BQuadraticForm) GetBQFormb() *big.Int {
	return bqForm.b
}

// Get c
func (bqForm *BQuadraticForm) GetBQFormc() *big.Int {
	return bqForm.c
}

// Get discriminant
func (bqForm *BQuadraticForm) GetBQFormDiscriminant() *big.Int {
	return bqForm.discriminant
}

// copy the binary quadratic form
func (bqForm *BQuadraticForm) Copy() *BQuadraticForm {
	return &BQuadraticForm{
		a:            new(big.Int).Set(bqForm.a),
		b:            new(big.Int).Set(bqForm.b),
		c:            new(big.Int).Set(bqForm.c),
		discriminant: new(big.Int).Set(bqForm.discriminant),
	}
}

// Equal compares the coefficient triples. Public forms are reduced by
// construction, so this is equality of classes.
func (bqForm *BQuadraticForm) Equal(inputForm *BQuadraticForm) bool {
	return bqForm.a.Cmp(inputForm.a) == 0 && bqForm.b.Cmp(inputForm.b) == 0 && bqForm.c.Cmp(inputForm.c) == 0
}

// Bytes returns a canonical encoding of the coefficient triple.
func (bqForm *BQuadraticForm) Bytes() []byte {
	out := make([]byte, 0, 3*260)
	for _, v := range []*big.Int{bqForm.a, bqForm.b, bqForm.c} {
		raw := v.Bytes()
		sign := byte(0)
		if v.Sign() < 0 {
			sign = 1
		}
		out = append(out, sign, byte(len(raw)>>8), byte(len(raw)))
		out = append(out, raw...)
	}
	return out
}

// The inverse quadratic Form of [a,b,c] is [a,-b,c]
func (bqForm *BQuadraticForm) Inverse() *BQuadraticForm {
	result := bqForm.Copy()
	result.b.Neg(result.b)
	result.Reduction()
	return result
}

// A form is normal if -a < b <= a.
func (bqForm *BQuadraticForm) IsNormalForm() bool {
	negA := new(big.Int).Neg(bqForm.a)
	return bqForm.b.Cmp(negA) > 0 && bqForm.b.Cmp(bqForm.a) <= 0
}

// Note that: D < 0. (a,b,c) is reduced if it is normal, a <= c, and
// b >= 0 whenever a = c.
func (bqForm *BQuadraticForm) IsReducedForm() bool {
	if !bqForm.IsNormalForm() {
		return false
	}
	cmp := bqForm.a.Cmp(bqForm.c)
	if cmp > 0 {
		return false
	}
	if cmp == 0 && bqForm.b.Sign() < 0 {
		return false
	}
	return true
}

// Normalization of positive definite forms: set r = floor((a-b)/2a),
// b = b + 2ra and c = ar^2 + br + c. Afterwards -a < b <= a holds.
// cf: Section 5.1.1, Binary quadratic forms, Chia Network.
func (bqForm *BQuadraticForm) normalize() {
	if bqForm.IsNormalForm() {
		return
	}
	r := new(big.Int).Sub(bqForm.a, bqForm.b)
	r.Div(r, new(big.Int).Lsh(bqForm.a, 1))

	ra := new(big.Int).Mul(r, bqForm.a)

	// c uses the old b, so update it first.
	newC := new(big.Int).Mul(ra, r)
	newC.Add(newC, new(big.Int).Mul(bqForm.b, r))
	newC.Add(newC, bqForm.c)
	bqForm.c = newC

	ra.Lsh(ra, 1)
	bqForm.b = ra.Add(bqForm.b, ra)
}

// Reduction of Positive Difinite Forms: Given a positive definite quadratic form f = (a,b,c)
// of discriminant D = b^2 -4ac < 0, this algorithm ouputs the unique reduced form equivalent
// to f. cf: Section 5.2.1, Binary quadratic forms, Chia Network.
func (bqForm *BQuadraticForm) Reduction() {
	bqForm.normalize()
	for bqForm.a.Cmp(bqForm.c) > 0 || (bqForm.a.Cmp(bqForm.c) == 0 && bqForm.b.Sign() < 0) {
		// s = floor((c + b)/2c)
		s := new(big.Int).Add(bqForm.c, bqForm.b)
		s.Div(s, new(big.Int).Lsh(bqForm.c, 1))

		oldA := bqForm.a
		oldB := bqForm.b

		// (a, b, c) = (c, -b + 2sc, cs^2 - bs + a)
		sc := new(big.Int).Mul(s, bqForm.c)
		newB := new(big.Int).Lsh(sc, 1)
		newB.Sub(newB, oldB)

		newC := new(big.Int).Mul(sc, s)
		newC.Sub(newC, new(big.Int).Mul(oldB, s))
		newC.Add(newC, oldA)

		bqForm.a = bqForm.c
		bqForm.b = newB
		bqForm.c = newC
	}
	bqForm.normalize()
}

/* The composition operation of binary quadratic forms
 * NUCOMP algorithm. Adapted from "Solving the Pell Equation"
 * by Michael J. Jacobson, Jr. and Hugh C. Williams.
 * http://www.springer.com/mathematics/numbers/book/978-0-387-84922-5
 */
func (bqForm *BQuadraticForm) Composition(inputForm *BQuadraticForm) *BQuadraticForm {
	x, y := bqForm, inputForm

	// g = (b1 + b2)/2, h = (b2 - b1)/2, w = gcd(a1, a2, g)
	g := new(big.Int).Add(x.b, y.b)
	g.Div(g, bigTwo)
	h := new(big.Int).Sub(y.b, x.b)
	h.Div(h, bigTwo)
	w := gcd(gcd(x.a, y.a), g)

	// j = w, s = a1/w, t = a2/w, u = g/w
	j := new(big.Int).Set(w)
	s := new(big.Int).Div(x.a, w)
	t := new(big.Int).Div(y.a, w)
	u := new(big.Int).Div(g, w)

	// Solve (tu)k = hu + s*c1 (mod st) for k = mu + vn.
	a := new(big.Int).Mul(t, u)
	b := new(big.Int).Mul(h, u)
	b.Add(b, new(big.Int).Mul(s, x.c))
	m := new(big.Int).Mul(s, t)
	mu, v := solveLinearCongruence(a, b, m)

	// Solve (tv)k = h - t*mu (mod s) for k = lambda + sigma*n.
	a = new(big.Int).Mul(t, v)
	b = new(big.Int).Sub(h, new(big.Int).Mul(t, mu))
	lambda, _ := solveLinearCongruence(a, b, s)

	// k = mu + v*lambda, l = (kt - h)/s, m = (tuk - hu - c1*s)/(st)
	k := new(big.Int).Mul(v, lambda)
	k.Add(k, mu)

	l := new(big.Int).Mul(k, t)
	l.Sub(l, h)
	l.Div(l, s)

	tu := new(big.Int).Mul(t, u)
	m = new(big.Int).Mul(tu, k)
	m.Sub(m, new(big.Int).Mul(h, u))
	m.Sub(m, new(big.Int).Mul(x.c, s))
	m.Div(m, new(big.Int).Mul(s, t))

	// (A, B, C) = (st, ju - (kt + ls), kl - jm)
	newA := new(big.Int).Mul(s, t)

	newB := new(big.Int).Mul(j, u)
	newB.Sub(newB, new(big.Int).Mul(k, t))
	newB.Sub(newB, new(big.Int).Mul(l, s))

	newC := new(big.Int).Mul(k, l)
	newC.Sub(newC, new(big.Int).Mul(j, m))

	result := &BQuadraticForm{
		a:            newA,
		b:            newB,
		c:            newC,
		discriminant: new(big.Int).Set(bqForm.discriminant),
	}
	result.Reduction()
	return result
}

/* Squaring via NUDUPL. Adapted from Jacobson, Michael J., and Alfred J.
 * Van Der Poorten, "Computational aspects of NUCOMP", Algorithm 2. The
 * partial extended GCD keeps coefficient growth near the fourth root of
 * the discriminant; root4thD is floor(|D|^(1/4)).
 */
func (bqForm *BQuadraticForm) Square(root4thD *big.Int) *BQuadraticForm {
	_, y, g := exGCD(bqForm.a, bqForm.b)

	by := new(big.Int).Div(bqForm.a, g)
	dy := new(big.Int).Div(bqForm.b, g)

	bx := new(big.Int).Mul(y, bqForm.c)
	bx.Mod(bx, by)

	var newA, newB, newC *big.Int
	if by.CmpAbs(root4thD) <= 0 {
		// dx = (bx*Dy - c)/By
		dx := new(big.Int).Mul(bx, dy)
		dx.Sub(dx, bqForm.c)
		dx.Div(dx, by)

		newA = new(big.Int).Mul(by, by)
		newC = new(big.Int).Mul(bx, bx)

		t := new(big.Int).Add(bx, by)
		t.Mul(t, t)

		newB = new(big.Int).Sub(bqForm.b, t)
		newB.Add(newB, newA)
		newB.Add(newB, newC)

		newC.Sub(newC, new(big.Int).Mul(g, dx))
	} else {
		// partialXgcd reduces by in place; dx still divides by the original By.
		bigBy := new(big.Int).Set(by)
		xCoeff, yCoeff := partialXgcd(by, bx, root4thD)

		ax := new(big.Int).Mul(g, xCoeff)
		ay := new(big.Int).Mul(g, yCoeff)

		// dx = (Dy*bx - c*x)/By
		dx := new(big.Int).Mul(dy, bx)
		dx.Sub(dx, new(big.Int).Mul(bqForm.c, xCoeff))
		dx.Div(dx, bigBy)

		q1 := new(big.Int).Mul(yCoeff, dx)
		dyNew := new(big.Int).Add(q1, dy)

		newB = new(big.Int).Add(dyNew, q1)
		newB.Mul(newB, g)

		dyNew.Div(dyNew, xCoeff)

		newA = new(big.Int).Mul(by, by)
		newC = new(big.Int).Mul(bx, bx)

		t := new(big.Int).Add(bx, by)
		newB.Sub(newB, new(big.Int).Mul(t, t))
		newB.Add(newB, newA)
		newB.Add(newB, newC)

		newA.Sub(newA, new(big.Int).Mul(ay, dyNew))
		newC.Sub(newC, new(big.Int).Mul(ax, dx))
	}

	result := &BQuadraticForm{
		a:            newA,
		b:            newB,
		c:            newC,
		discriminant: new(big.Int).Set(bqForm.discriminant),
	}
	result.Reduction()
	return result
}

/* The ouput is bqForm ^ power via square-and-multiply, with NUDUPL
 * squarings. A negative power exponentiates the inverse form.
 */
func (bqForm *BQuadraticForm) Exp(power *big.Int, root4thD *big.Int) *BQuadraticForm {
	val, _ := Identity(bqForm.discriminant)
	base := bqForm.Copy()
	n := new(big.Int).Set(power)
	if n.Sign() < 0 {
		base = bqForm.Inverse()
		n.Neg(n)
	}
	for n.Sign() != 0 {
		if n.Bit(0) == 1 {
			val = val.Composition(base)
		}
		base = base.Square(root4thD)
		n.Rsh(n, 1)
	}
	return val
}

// Solve ax = b (mod m) for x = mu + vn, for any integer n. The callers
// construct solvable congruences; an unsolvable one means the form data
// is corrupt, which is unrecoverable.
func solveLinearCongruence(a, b, m *big.Int) (*big.Int, *big.Int) {
	d, _, g := exGCD(a, m)
	q, r := new(big.Int).DivMod(b, g, new(big.Int))
	if r.Sign() != 0 {
		panic("binaryquadraticform: unsolvable linear congruence")
	}
	mu := new(big.Int).Mul(q, d)
	mu.Mod(mu, m)
	v := new(big.Int).Div(m, g)
	return mu, v
}

// partialXgcd reduces (by, bx) with the Euclidean recurrence, stopping as
// soon as |by| falls to the bound, and returns the matching cofactors.
// Both by and bx are updated in place.
func partialXgcd(by, bx, bound *big.Int) (*big.Int, *big.Int) {
	x := big.NewInt(1)
	y := big.NewInt(0)
	z := 0

	q := new(big.Int)
	r := new(big.Int)
	for by.CmpAbs(bound) > 0 && bx.Sign() != 0 {
		q.DivMod(by, bx, r)
		by.Set(bx)
		bx.Set(r)

		y.Sub(y, new(big.Int).Mul(q, x))
		x, y = y, x
		z++
	}

	if z&1 == 1 {
		by.Neg(by)
		y.Neg(y)
	}
	return x, y
}

/* Extend the GCD in golang. We permit the inputs x, y which can be negative numbers.
 * For inputs x, y, we can find a, b such that ax + by = gcd( |x|, |y| ).
 * In particular, if y = 0, then we return a = sign(x), b = 0 and gcd = absx.
 */
func exGCD(x, y *big.Int) (*big.Int, *big.Int, *big.Int) {
	absx := new(big.Int).Abs(x)
	absy := new(big.Int).Abs(y)

	if y.Sign() == 0 {
		return new(big.Int).SetInt64(int64(x.Sign())), big.NewInt(0), new(big.Int).Set(absx)
	}

	a, b := big.NewInt(0), big.NewInt(0)
	divisor := new(big.Int).GCD(a, b, absx, absy)

	if x.Sign() == -1 {
		a.Neg(a)
	}
	if y.Sign() == -1 {
		b.Neg(b)
	}
	return a, b, divisor
}

func gcd(x, y *big.Int) *big.Int {
	_, _, g := exGCD(x, y)
	return g
}
