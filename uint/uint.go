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

package uint

import (
	"math/big"
	"math/bits"
)

/* Fixed-width unsigned integers backed by little-endian 64-bit limbs.
 * U256 holds four limbs, U512 eight. The size field counts the limbs in
 * use; its magnitude is the index of the highest non-zero limb plus one,
 * and zero has size 0. A negative size marks a negative value; only the
 * Jacobi computation ever carries a sign.
 *
 * These types exist so the primality test can run without heap
 * allocation. All operations are value-to-value.
 */

const limbBits = 64

// U256 is a 256-bit unsigned integer with four little-endian limbs.
type U256 struct {
	size  int
	limbs [4]uint64
}

// U512 is a 512-bit unsigned integer with eight little-endian limbs.
type U512 struct {
	size  int
	limbs [8]uint64
}

// Zero returns the U256 zero value.
func Zero() U256 {
	return U256{}
}

// One returns the U256 one.
func One() U256 {
	return FromUint64(1)
}

// FromUint64 lifts a word into a U256.
func FromUint64(x uint64) U256 {
	var u U256
	u.limbs[0] = x
	u.normalize()
	return u
}

// FromLimbs builds a U256 from little-endian limbs.
func FromLimbs(limbs [4]uint64) U256 {
	u := U256{limbs: limbs}
	u.normalize()
	return u
}

// FromBytesLE builds a U256 from 32 little-endian bytes.
func FromBytesLE(b [32]byte) U256 {
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			limbs[i] |= uint64(b[8*i+j]) << (8 * j)
		}
	}
	return FromLimbs(limbs)
}

// FromBig converts a non-negative big integer below 2^256. Values out of
// range indicate a logic bug upstream.
func FromBig(x *big.Int) U256 {
	if x.Sign() < 0 || x.BitLen() > 256 {
		panic("uint: big integer out of U256 range")
	}
	var limbs [4]uint64
	words := x.Bits()
	for i, w := range words {
		limbs[i] = uint64(w)
	}
	return FromLimbs(limbs)
}

func (u *U256) normalize() {
	u.size = 0
	for i := 3; i >= 0; i-- {
		if u.limbs[i] != 0 {
			u.size = i + 1
			break
		}
	}
}

// Sign returns -1, 0 or 1.
func (u U256) Sign() int {
	if u.size < 0 {
		return -1
	}
	if u.size > 0 {
		return 1
	}
	return 0
}

// Neg flips the sign carried on the size field.
func (u U256) Neg() U256 {
	u.size = -u.size
	return u
}

// IsZero reports whether u is zero.
func (u U256) IsZero() bool {
	return u.size == 0
}

// IsOdd reports whether the lowest bit is set.
func (u U256) IsOdd() bool {
	return u.limbs[0]&1 == 1
}

// Uint64 returns the low limb.
func (u U256) Uint64() uint64 {
	return u.limbs[0]
}

// BitLen returns the length of the magnitude in bits.
func (u U256) BitLen() int {
	if u.size == 0 {
		return 0
	}
	n := u.size
	if n < 0 {
		n = -n
	}
	return (n-1)*limbBits + bits.Len64(u.limbs[n-1])
}

// Bit returns bit i of the magnitude.
func (u U256) Bit(i int) uint {
	if i < 0 || i >= 256 {
		return 0
	}
	return uint(u.limbs[i/limbBits]>>(uint(i)%limbBits)) & 1
}

// Cmp compares magnitudes, returning -1, 0 or 1.
func (u U256) Cmp(x U256) int {
	return cmpLimbs(u.limbs[:], x.limbs[:])
}

// Equal reports magnitude and sign equality.
func (u U256) Equal(x U256) bool {
	return u.size == x.size && u.limbs == x.limbs
}

// Add returns u + x. Overflow past 256 bits is an invariant violation.
func (u U256) Add(x U256) U256 {
	var y U256
	var carry uint64
	for i := 0; i < 4; i++ {
		y.limbs[i], carry = bits.Add64(u.limbs[i], x.limbs[i], carry)
	}
	if carry != 0 {
		panic("uint: U256 addition overflow")
	}
	y.normalize()
	return y
}

// AddUint64 returns u + x.
func (u U256) AddUint64(x uint64) U256 {
	return u.Add(FromUint64(x))
}

// Sub returns u - x. A negative result is an invariant violation.
func (u U256) Sub(x U256) U256 {
	var y U256
	var borrow uint64
	for i := 0; i < 4; i++ {
		y.limbs[i], borrow = bits.Sub64(u.limbs[i], x.limbs[i], borrow)
	}
	if borrow != 0 {
		panic("uint: U256 subtraction underflow")
	}
	y.normalize()
	return y
}

// SubUint64 returns u - x.
func (u U256) SubUint64(x uint64) U256 {
	return u.Sub(FromUint64(x))
}

// Shl returns u << n, dropping bits shifted past 256.
func (u U256) Shl(n uint) U256 {
	var y U256
	shlInto(y.limbs[:], u.limbs[:], n)
	y.normalize()
	return y
}

// Shr returns u >> n.
func (u U256) Shr(n uint) U256 {
	var y U256
	shrInto(y.limbs[:], u.limbs[:], n)
	y.normalize()
	return y
}

// Mul returns the full 512-bit product u * x.
func (u U256) Mul(x U256) U512 {
	var y U512
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(u.limbs[i], x.limbs[j])
			var c uint64
			y.limbs[i+j], c = bits.Add64(y.limbs[i+j], lo, 0)
			hi += c
			y.limbs[i+j], c = bits.Add64(y.limbs[i+j], carry, 0)
			carry = hi + c
		}
		y.limbs[i+4] = carry
	}
	y.normalize()
	return y
}

// DivRem returns (u / x, u mod x). Division by zero panics.
func (u U256) DivRem(x U256) (U256, U256) {
	var q, r U256
	divmod(q.limbs[:], r.limbs[:], u.limbs[:], x.limbs[:])
	q.normalize()
	r.normalize()
	return q, r
}

// Mod returns u mod x.
func (u U256) Mod(x U256) U256 {
	_, r := u.DivRem(x)
	return r
}

// ModWord returns u mod m for a single-word modulus.
func (u U256) ModWord(m uint64) uint64 {
	if m == 0 {
		panic("uint: division by zero")
	}
	var r uint64
	for i := 3; i >= 0; i-- {
		_, r = bits.Div64(r%m, u.limbs[i], m)
	}
	return r
}

// AddMod returns u + x mod m for u, x < m.
func (u U256) AddMod(x, m U256) U256 {
	var sum [4]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		sum[i], carry = bits.Add64(u.limbs[i], x.limbs[i], carry)
	}
	// The modulus occupies at most 256 bits, so a single conditional
	// subtraction restores the range even when the carry is set.
	if carry != 0 || cmpLimbs(sum[:], m.limbs[:]) >= 0 {
		var borrow uint64
		for i := 0; i < 4; i++ {
			sum[i], borrow = bits.Sub64(sum[i], m.limbs[i], borrow)
		}
	}
	return FromLimbs(sum)
}

// SubMod returns u - x mod m for u, x < m.
func (u U256) SubMod(x, m U256) U256 {
	if u.Cmp(x) >= 0 {
		return u.Sub(x)
	}
	return m.Sub(x).Add(u)
}

// MulMod returns u * x mod m.
func (u U256) MulMod(x, m U256) U256 {
	return u.Mul(x).Mod256(m)
}

// Halve returns u / 2 mod m for odd m and u < m.
func (u U256) Halve(m U256) U256 {
	if !u.IsOdd() {
		return u.Shr(1)
	}
	var sum [5]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		sum[i], carry = bits.Add64(u.limbs[i], m.limbs[i], carry)
	}
	sum[4] = carry
	var y U256
	for i := 0; i < 4; i++ {
		y.limbs[i] = sum[i]>>1 | sum[i+1]<<63
	}
	y.normalize()
	return y
}

// PowMod returns u^e mod m via square-and-multiply.
func (u U256) PowMod(e, m U256) U256 {
	out := One().Mod(m)
	base := u.Mod(m)
	for !e.IsZero() {
		if e.IsOdd() {
			out = out.MulMod(base, m)
		}
		base = base.MulMod(base, m)
		e = e.Shr(1)
	}
	return out
}

// ModInverse returns u^-1 mod m. A non-invertible input is an invariant
// violation.
func (u U256) ModInverse(m U256) U256 {
	inv := new(big.Int).ModInverse(u.Big(), m.Big())
	if inv == nil {
		panic("uint: element is not invertible")
	}
	return FromBig(inv)
}

// Jacobi returns the Jacobi symbol (u/n) for odd n > 0 via the binary
// algorithm. The sign carried on u is folded in with (-1/n).
func (u U256) Jacobi(n U256) int {
	if !n.IsOdd() || n.Sign() <= 0 {
		panic("uint: Jacobi requires odd positive modulus")
	}
	result := 1
	if u.Sign() < 0 {
		u = u.Neg()
		// (-1/n) = -1 iff n = 3 (mod 4)
		if n.limbs[0]&3 == 3 {
			result = -result
		}
	}
	a := u.Mod(n)
	for !a.IsZero() {
		for !a.IsOdd() {
			a = a.Shr(1)
			if r := n.limbs[0] & 7; r == 3 || r == 5 {
				result = -result
			}
		}
		a, n = n, a
		if a.limbs[0]&3 == 3 && n.limbs[0]&3 == 3 {
			result = -result
		}
		a = a.Mod(n)
	}
	if n.Cmp(One()) == 0 {
		return result
	}
	return 0
}

// IsSquare reports whether u is a perfect square. Cheap bit screens rule
// out most non-residues before the exact square-root check.
func (u U256) IsSquare() bool {
	if u.IsZero() {
		return true
	}
	// Squares are 0, 1, 4 or 9 mod 16.
	if r := u.limbs[0] & 15; r != 0 && r != 1 && r != 4 && r != 9 {
		return false
	}
	root := new(big.Int).Sqrt(u.Big())
	return new(big.Int).Mul(root, root).Cmp(u.Big()) == 0
}

// BytesLE exports the magnitude as 32 little-endian bytes.
func (u U256) BytesLE() [32]byte {
	var b [32]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			b[8*i+j] = byte(u.limbs[i] >> (8 * j))
		}
	}
	return b
}

// Big converts the magnitude to a big integer.
func (u U256) Big() *big.Int {
	b := u.BytesLE()
	// big.Int wants big-endian bytes.
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	x := new(big.Int).SetBytes(b[:])
	if u.size < 0 {
		x.Neg(x)
	}
	return x
}

func (u *U512) normalize() {
	u.size = 0
	for i := 7; i >= 0; i-- {
		if u.limbs[i] != 0 {
			u.size = i + 1
			break
		}
	}
}

// From256 widens a U256 into a U512.
func From256(x U256) U512 {
	var y U512
	copy(y.limbs[:4], x.limbs[:])
	y.size = x.size
	return y
}

// Low256 truncates to the low 256 bits.
func (u U512) Low256() U256 {
	var y U256
	copy(y.limbs[:], u.limbs[:4])
	y.normalize()
	return y
}

// IsZero reports whether u is zero.
func (u U512) IsZero() bool {
	return u.size == 0
}

// Cmp compares magnitudes, returning -1, 0 or 1.
func (u U512) Cmp(x U512) int {
	return cmpLimbs(u.limbs[:], x.limbs[:])
}

// Add returns u + x, panicking on overflow past 512 bits.
func (u U512) Add(x U512) U512 {
	var y U512
	var carry uint64
	for i := 0; i < 8; i++ {
		y.limbs[i], carry = bits.Add64(u.limbs[i], x.limbs[i], carry)
	}
	if carry != 0 {
		panic("uint: U512 addition overflow")
	}
	y.normalize()
	return y
}

// Sub returns u - x, panicking on a negative result.
func (u U512) Sub(x U512) U512 {
	var y U512
	var borrow uint64
	for i := 0; i < 8; i++ {
		y.limbs[i], borrow = bits.Sub64(u.limbs[i], x.limbs[i], borrow)
	}
	if borrow != 0 {
		panic("uint: U512 subtraction underflow")
	}
	y.normalize()
	return y
}

// Shr returns u >> n.
func (u U512) Shr(n uint) U512 {
	var y U512
	shrInto(y.limbs[:], u.limbs[:], n)
	y.normalize()
	return y
}

// DivRem returns (u / x, u mod x) with a U256 divisor.
func (u U512) DivRem(x U256) (U512, U256) {
	var q U512
	var r U256
	divmod(q.limbs[:], r.limbs[:], u.limbs[:], x.limbs[:])
	q.normalize()
	r.normalize()
	return q, r
}

// Mod256 returns u mod x.
func (u U512) Mod256(x U256) U256 {
	_, r := u.DivRem(x)
	return r
}

func cmpLimbs(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		var yi uint64
		if i < len(y) {
			yi = y[i]
		}
		if x[i] != yi {
			if x[i] < yi {
				return -1
			}
			return 1
		}
	}
	for i := len(x); i < len(y); i++ {
		if y[i] != 0 {
			return -1
		}
	}
	return 0
}

func shlInto(dst, src []uint64, n uint) {
	limbShift := int(n / limbBits)
	bitShift := n % limbBits
	for i := len(dst) - 1; i >= 0; i-- {
		var lo, hi uint64
		if i-limbShift >= 0 && i-limbShift < len(src) {
			lo = src[i-limbShift]
		}
		if bitShift > 0 && i-limbShift-1 >= 0 && i-limbShift-1 < len(src) {
			hi = src[i-limbShift-1] >> (limbBits - bitShift)
		}
		dst[i] = lo<<bitShift | hi
	}
}

func shrInto(dst, src []uint64, n uint) {
	limbShift := int(n / limbBits)
	bitShift := n % limbBits
	for i := 0; i < len(dst); i++ {
		var lo, hi uint64
		if i+limbShift < len(src) {
			lo = src[i+limbShift]
		}
		if bitShift > 0 && i+limbShift+1 < len(src) {
			hi = src[i+limbShift+1] << (limbBits - bitShift)
		}
		dst[i] = lo>>bitShift | hi
	}
}

func bitLenLimbs(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*limbBits + bits.Len64(x[i])
		}
	}
	return 0
}

// divmod runs a bitwise long division of u by v, writing the quotient and
// remainder into q and r. Simple and branch-predictable; the primality
// loop only ever divides 512-bit by 256-bit quantities.
func divmod(q, r, u, v []uint64) {
	vLen := bitLenLimbs(v)
	if vLen == 0 {
		panic("uint: division by zero")
	}
	for i := range q {
		q[i] = 0
	}
	for i := range r {
		r[i] = 0
	}
	for i := bitLenLimbs(u) - 1; i >= 0; i-- {
		// r = r<<1 | u.bit(i); r stays below 2v so one subtraction
		// restores it.
		var carry uint64
		for j := 0; j < len(r); j++ {
			next := r[j] >> 63
			r[j] = r[j]<<1 | carry
			carry = next
		}
		r[0] |= u[i/limbBits] >> (uint(i) % limbBits) & 1
		if carry != 0 || cmpLimbs(r, v) >= 0 {
			var borrow uint64
			for j := 0; j < len(r); j++ {
				var vj uint64
				if j < len(v) {
					vj = v[j]
				}
				r[j], borrow = bits.Sub64(r[j], vj, borrow)
			}
			q[i/limbBits] |= 1 << (uint(i) % limbBits)
		}
	}
}
