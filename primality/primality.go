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

package primality

import (
	"github.com/getamis/accumulator/uint"
)

// maxJacobiIters bounds the search for a Lucas discriminant. A square
// input admits no suitable discriminant at all, so the search must be
// cut off; the average number of iterations for a non-square is 1.8.
const maxJacobiIters = 500

/* Baillie-PSW probabilistic primality test:
 * 1. Filter composites with small divisors.
 * 2. Miller-Rabin base 2.
 * 3. Filter squares.
 * 4. Strong Lucas test.
 * No composite below 2^64 passes, and no counter-example is known.
 */

// IsProbablePrime runs the Baillie-PSW test on n.
func IsProbablePrime(n uint.U256) bool {
	for _, p := range smallPrimes {
		if n.BitLen() <= 64 && n.Uint64() == p {
			return true
		}
	}
	if n.BitLen() <= 1 {
		// 0 and 1 are not prime.
		return false
	}
	if hasSmallPrimeFactor(n) {
		return false
	}
	if !passesMillerRabinBase2(n) {
		return false
	}
	if n.IsSquare() {
		return false
	}
	d, ok := chooseD(n, maxJacobiIters)
	if !ok {
		return false
	}
	return passesLucas(n, d)
}

func hasSmallPrimeFactor(n uint.U256) bool {
	for _, p := range smallPrimes {
		if n.BitLen() <= 64 && n.Uint64() == p {
			break
		}
		if n.ModWord(p) == 0 {
			return true
		}
	}
	return false
}

// passesMillerRabinBase2 writes n-1 = 2^s * d with d odd and checks the
// base-2 witness sequence.
func passesMillerRabinBase2(n uint.U256) bool {
	nMinusOne := n.SubUint64(1)
	d := nMinusOne
	s := 0
	for !d.IsOdd() {
		d = d.Shr(1)
		s++
	}
	x := uint.FromUint64(2).PowMod(d, n)
	if x.Cmp(uint.One()) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = x.MulMod(x, n)
		if x.Cmp(uint.One()) == 0 {
			return false
		}
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
	}
	return false
}

// chooseD finds the first D in 5, -7, 9, -11, ... with Jacobi symbol
// (D/n) = -1. For square n no such D exists, hence the iteration bound.
func chooseD(n uint.U256, maxIters int) (int64, bool) {
	d := int64(5)
	for i := 0; i < maxIters; i++ {
		if jacobiInt64(d, n) == -1 {
			return d, true
		}
		if d > 0 {
			d += 2
		} else {
			d -= 2
		}
		d = -d
	}
	return 0, false
}

func jacobiInt64(d int64, n uint.U256) int {
	a := uint.FromUint64(uint64(abs64(d)))
	if d < 0 {
		a = a.Neg()
	}
	return a.Jacobi(n)
}

// passesLucas runs the strong Lucas test with P = 1, Q = (1-D)/4,
// accepting iff U_{n+1} = 0 (mod n). The sequence pair (U_k, V_k) is
// advanced along the binary expansion of n+1.
func passesLucas(n uint.U256, d int64) bool {
	q := (1 - d) / 4
	delta := n.AddUint64(1)

	u := uint.One()
	v := uint.One() // V_1 = P = 1
	qk := int64Mod(q, n)
	qModN := qk

	for i := delta.BitLen() - 2; i >= 0; i-- {
		// (U, V)_{2k} from (U, V)_k
		u = u.MulMod(v, n)
		v = v.MulMod(v, n).SubMod(qk.AddMod(qk, n), n)
		qk = qk.MulMod(qk, n)
		if delta.Bit(i) == 1 {
			// (U, V)_{2k+1} from (U, V)_{2k}; halving stays in the ring
			// because n is odd.
			puPlusV := u.AddMod(v, n)
			duPlusPv := scalarMulMod(d, u, n).AddMod(v, n)
			u = puPlusV.Halve(n)
			v = duPlusPv.Halve(n)
			qk = qk.MulMod(qModN, n)
		}
	}
	return u.IsZero()
}

// int64Mod maps a small signed scalar into [0, n).
func int64Mod(x int64, n uint.U256) uint.U256 {
	m := uint.FromUint64(uint64(abs64(x))).Mod(n)
	if x >= 0 || m.IsZero() {
		return m
	}
	return n.Sub(m)
}

// scalarMulMod returns x*u mod n for a small signed scalar x.
func scalarMulMod(x int64, u uint.U256, n uint.U256) uint.U256 {
	m := u.MulMod(uint.FromUint64(uint64(abs64(x))), n)
	if x >= 0 || m.IsZero() {
		return m
	}
	return n.Sub(m)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
