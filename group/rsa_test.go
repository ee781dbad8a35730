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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// A legible small modulus: 226022213 * 12364769.
func smallRSAGroup() *RSAGroup {
	return NewRSAGroup(new(big.Int).Mul(big.NewInt(226022213), big.NewInt(12364769)))
}

var _ = Describe("RSAGroup", func() {
	var g *RSAGroup

	BeforeEach(func() {
		g = smallRSAGroup()
	})

	Context("Op()", func() {
		It("multiplies modulo n", func() {
			got := g.Op(g.ElemFrom(big.NewInt(2)), g.ElemFrom(big.NewInt(3)))
			Expect(got.Equal(g.ElemFrom(big.NewInt(6)))).Should(BeTrue())

			got = g.Op(g.ElemFrom(big.NewInt(226022214)), g.ElemFrom(big.NewInt(12364770)))
			Expect(got.Equal(g.ElemFrom(big.NewInt(226022213 + 12364769 + 1)))).Should(BeTrue())
		})

		It("treats x and -x as the same element", func() {
			Expect(g.ElemFrom(big.NewInt(2)).Equal(g.ElemFrom(big.NewInt(2794712452613795)))).Should(BeTrue())
			got := g.Op(g.ElemFrom(big.NewInt(931570817537932)), g.ElemFrom(big.NewInt(2)))
			Expect(got.Equal(g.ElemFrom(big.NewInt(931570817537933)))).Should(BeTrue())
		})
	})

	Context("representatives", func() {
		It("keeps every representative in (0, n/2]", func() {
			n := new(big.Int).Mul(big.NewInt(226022213), big.NewInt(12364769))
			halfN := new(big.Int).Rsh(n, 1)
			cur := g.UnknownOrderBase()
			for i := 0; i < 64; i++ {
				cur = g.Op(cur, cur)
				val := cur.(*RSAElem).Big()
				Expect(val.Sign() > 0).Should(BeTrue())
				Expect(val.Cmp(halfN) <= 0).Should(BeTrue())
			}
		})
	})

	Context("Exp()", func() {
		It("matches known powers of two", func() {
			base := g.UnknownOrderBase()
			Expect(g.Exp(base, big.NewInt(3)).Equal(g.ElemFrom(big.NewInt(8)))).Should(BeTrue())
			Expect(g.Exp(base, big.NewInt(128)).Equal(g.ElemFrom(big.NewInt(782144413693680)))).Should(BeTrue())
		})

		It("agrees with repeated composition", func() {
			base := g.ElemFrom(big.NewInt(3))
			cur := g.Identity()
			for n := int64(1); n <= 1000; n++ {
				cur = g.Op(cur, base)
				Expect(g.Exp(base, big.NewInt(n)).Equal(cur)).Should(BeTrue())
			}
		})

		It("matches the generic square-and-multiply", func() {
			base := g.ElemFrom(big.NewInt(7))
			n := big.NewInt(94125955)
			Expect(g.Exp(base, n).Equal(Exp(g, base, n))).Should(BeTrue())
		})
	})

	Context("Inverse()", func() {
		It("matches known inverses", func() {
			got := g.Inverse(g.ElemFrom(big.NewInt(2)))
			Expect(got.Equal(g.ElemFrom(big.NewInt(1397356226306899)))).Should(BeTrue())

			got = g.Inverse(g.ElemFrom(big.NewInt(32416188490)))
			Expect(got.Equal(g.ElemFrom(big.NewInt(173039603491119)))).Should(BeTrue())
		})

		It("satisfies the inverse axioms", func() {
			x := g.ElemFrom(big.NewInt(32416188490))
			Expect(g.Op(x, g.Inverse(x)).Equal(g.Identity())).Should(BeTrue())
			Expect(g.Inverse(g.Inverse(x)).Equal(x)).Should(BeTrue())
		})
	})

	Context("ExpSigned()", func() {
		It("exponentiates the inverse for negative n", func() {
			x := g.ElemFrom(big.NewInt(2))
			Expect(g.ExpSigned(x, big.NewInt(-5)).Equal(
				g.Exp(g.Inverse(x), big.NewInt(5)))).Should(BeTrue())
		})
	})

	Context("RSA2048()", func() {
		It("exposes 2 as the unknown-order base", func() {
			full := RSA2048()
			Expect(full.UnknownOrderBase().Equal(full.ElemFrom(big.NewInt(2)))).Should(BeTrue())
			Expect(full.Exp(full.UnknownOrderBase(), big.NewInt(20)).Equal(
				full.ElemFrom(big.NewInt(1048576)))).Should(BeTrue())
		})
	})
})

var _ = Describe("MultiExp", func() {
	It("matches direct computation", func() {
		g := smallRSAGroup()
		alpha1 := g.ElemFrom(big.NewInt(2))
		alpha2 := g.ElemFrom(big.NewInt(3))
		got := MultiExp(g, []Element{alpha1, alpha2}, []*big.Int{big.NewInt(3), big.NewInt(2)})
		Expect(got.Equal(g.ElemFrom(big.NewInt(108)))).Should(BeTrue())

		alpha3 := g.ElemFrom(big.NewInt(5))
		got = MultiExp(g,
			[]Element{alpha1, alpha2, alpha3},
			[]*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(1)})
		Expect(got.Equal(g.ElemFrom(big.NewInt(1687500)))).Should(BeTrue())
	})
})
