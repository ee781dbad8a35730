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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	bqForm "github.com/getamis/accumulator/binaryquadraticform"
)

func TestGroup(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Group Suite")
}

func parseBig(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	Expect(ok).Should(BeTrue())
	return x
}

func discriminantOf(e Element) *big.Int {
	a, b, c := e.(*ClassElem).Coefficients()
	d := new(big.Int).Mul(b, b)
	ac := new(big.Int).Mul(a, c)
	return d.Sub(d, ac.Lsh(ac, 2))
}

var _ = Describe("ClassGroup", func() {
	var small *ClassGroup

	BeforeEach(func() {
		var err error
		// The class group of discriminant -23 has order 3.
		small, err = NewClassGroup(big.NewInt(-23))
		Expect(err).Should(BeNil())
	})

	Context("NewClassGroup()", func() {
		It("rejects positive discriminants", func() {
			_, err := NewClassGroup(big.NewInt(23))
			Expect(err).Should(Equal(bqForm.ErrPositiveDiscriminant))
		})

		It("rejects discriminants not congruent to 1 mod 4", func() {
			_, err := NewClassGroup(big.NewInt(-24))
			Expect(err).Should(Equal(ErrNotCongruentDiscriminant))
		})
	})

	Context("ground truth of the fixed discriminant", func() {
		It("reduces to the reference triple", func() {
			g := Class2048()
			elem := g.ElemFrom(parseBig(toReduceA), parseBig(toReduceB), parseBig(toReduceC))
			expected := g.ElemFrom(parseBig(reducedGroundTruthA), parseBig(reducedGroundTruthB), parseBig(reducedGroundTruthC))
			Expect(elem.Equal(expected)).Should(BeTrue())

			a, b, c := elem.Coefficients()
			Expect(a.Cmp(parseBig(reducedGroundTruthA))).Should(BeZero())
			Expect(b.Cmp(parseBig(reducedGroundTruthB))).Should(BeZero())
			Expect(c.Cmp(parseBig(reducedGroundTruthC))).Should(BeZero())
		})

		It("normalizes to the reference triple", func() {
			form, err := bqForm.NewBQuadraticForm(parseBig(unnormalizedA), parseBig(unnormalizedB), parseBig(unnormalizedC))
			Expect(err).Should(BeNil())
			// Reduction of an almost-reduced form stops after the
			// normalization step.
			form.Reduction()
			Expect(form.GetBQForma().Cmp(parseBig(normalizedGroundTruthA))).Should(BeZero())
			Expect(form.GetBQFormb().Cmp(parseBig(normalizedGroundTruthB))).Should(BeZero())
			Expect(form.GetBQFormc().Cmp(parseBig(normalizedGroundTruthC))).Should(BeZero())
		})

		It("composes to the reference triple", func() {
			g := Class2048()
			x := g.ElemFrom(parseBig(opOperandXA), parseBig(opOperandXB), parseBig(opOperandXC))
			y := g.ElemFrom(parseBig(opOperandYA), parseBig(opOperandYB), parseBig(opOperandYC))
			expected := g.ElemFrom(parseBig(opGroundTruthA), parseBig(opGroundTruthB), parseBig(opGroundTruthC))
			Expect(g.Op(x, y).Equal(expected)).Should(BeTrue())
		})

		It("preserves the discriminant across operations", func() {
			g := Class2048()
			id := g.Identity()
			g1 := g.UnknownOrderBase()
			g2 := g.Op(g1, g1)
			g3 := g.Op(id, g2)
			g3Inv := g.Inverse(g3)
			g4 := g.Exp(g1, big.NewInt(41))
			for _, e := range []Element{id, g1, g2, g3, g3Inv, g4} {
				Expect(discriminantOf(e).Cmp(g.Discriminant())).Should(BeZero())
			}
		})

		It("agrees between exponentiation and repeated composition", func() {
			g := Class2048()
			anchor := g.UnknownOrderBase()
			cur := g.Identity()
			for n := int64(1); n <= 12; n++ {
				cur = g.Op(cur, anchor)
				Expect(g.Exp(anchor, big.NewInt(n)).Equal(cur)).Should(BeTrue())
			}
		})
	})

	Context("group axioms on the small discriminant", func() {
		It("has a neutral identity", func() {
			id := small.Identity()
			g := small.UnknownOrderBase()
			Expect(small.Op(g, id).Equal(g)).Should(BeTrue())
			Expect(small.Op(id, g).Equal(g)).Should(BeTrue())
			Expect(small.Op(id, id).Equal(id)).Should(BeTrue())
		})

		It("is associative", func() {
			g := small.UnknownOrderBase()
			x := small.Op(g, g)
			y := small.Op(x, g)
			Expect(small.Op(small.Op(x, y), g).Equal(small.Op(x, small.Op(y, g)))).Should(BeTrue())
		})

		It("inverts every element", func() {
			id := small.Identity()
			g := small.UnknownOrderBase()
			cur := g
			for i := 0; i < 30; i++ {
				inv := small.Inverse(cur)
				Expect(small.Op(cur, inv).Equal(id)).Should(BeTrue())
				Expect(small.Op(inv, cur).Equal(id)).Should(BeTrue())
				Expect(small.Inverse(inv).Equal(cur)).Should(BeTrue())
				cur = small.Op(cur, g)
			}
		})

		It("agrees between exponentiation and repeated composition", func() {
			g := small.UnknownOrderBase()
			cur := small.Identity()
			for n := int64(1); n <= 1000; n++ {
				cur = small.Op(cur, g)
				Expect(small.Exp(g, big.NewInt(n)).Equal(cur)).Should(BeTrue())
			}
		})

		It("exponentiates signed", func() {
			g := small.UnknownOrderBase()
			Expect(small.ExpSigned(g, big.NewInt(-4)).Equal(
				small.Exp(small.Inverse(g), big.NewInt(4)))).Should(BeTrue())
			Expect(small.ExpSigned(g, big.NewInt(0)).Equal(small.Identity())).Should(BeTrue())
		})
	})

	Context("ElemFrom()", func() {
		It("panics on a triple violating the discriminant", func() {
			Expect(func() {
				small.ElemFrom(big.NewInt(1), big.NewInt(2), big.NewInt(3))
			}).Should(Panic())
		})
	})

	Context("Element comparison", func() {
		It("rejects elements of another backend", func() {
			g := small.UnknownOrderBase()
			Expect(g.Equal(RSA2048().UnknownOrderBase())).Should(BeFalse())
		})
	})
})
