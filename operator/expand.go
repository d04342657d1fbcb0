package operator

import (
	"sort"
	"strings"

	"github.com/quantaflow/qsde/scalar"
)

// rawTerm is one addend mid-expansion: a scalar coefficient and an
// ordered list of elementary factors.
type rawTerm struct {
	coeff   scalar.Scalar
	factors []Operator
}

// flatten distributes an expression into a list of raw addends. Factor
// order inside each addend is preserved; no commutation happens yet.
func flatten(op Operator) []rawTerm {
	switch v := op.(type) {
	case identity:
		return []rawTerm{{coeff: scalar.One()}}

	case *scaled:
		inner := flatten(v.op)
		out := make([]rawTerm, 0, len(inner))
		for _, t := range inner {
			out = append(out, rawTerm{coeff: scalar.Mul(v.c, t.coeff), factors: t.factors})
		}

		return out

	case *sumOp:
		var out []rawTerm
		for _, t := range v.terms {
			out = append(out, flatten(t)...)
		}

		return out

	case *productOp:
		acc := []rawTerm{{coeff: scalar.One()}}
		for _, f := range v.factors {
			fs := flatten(f)
			next := make([]rawTerm, 0, len(acc)*len(fs))
			for _, a := range acc {
				for _, b := range fs {
					factors := make([]Operator, 0, len(a.factors)+len(b.factors))
					factors = append(factors, a.factors...)
					factors = append(factors, b.factors...)
					next = append(next, rawTerm{coeff: scalar.Mul(a.coeff, b.coeff), factors: factors})
				}
			}
			acc = next
		}

		return acc

	default:
		// localOp, opSymbol and any other atom are single-factor addends.
		return []rawTerm{{coeff: scalar.One(), factors: []Operator{op}}}
	}
}

// monoPQ is a normal-ordered local power a†^p·a^q with an integer
// combinatorial multiplier.
type monoPQ struct {
	p, q, mult int
}

// normalOrderSeq rewrites a single-mode factor sequence (true = create)
// into its normal-ordered decomposition using a·a† = a†·a + 1.
func normalOrderSeq(seq []bool) []monoPQ {
	for i := 0; i+1 < len(seq); i++ {
		if !seq[i] && seq[i+1] {
			swapped := make([]bool, len(seq))
			copy(swapped, seq)
			swapped[i], swapped[i+1] = true, false

			dropped := make([]bool, 0, len(seq)-2)
			dropped = append(dropped, seq[:i]...)
			dropped = append(dropped, seq[i+2:]...)

			return mergePQ(append(normalOrderSeq(swapped), normalOrderSeq(dropped)...))
		}
	}
	p := 0
	for _, c := range seq {
		if c {
			p++
		}
	}

	return []monoPQ{{p: p, q: len(seq) - p, mult: 1}}
}

// mergePQ collects identical (p, q) monomials, summing multipliers.
func mergePQ(in []monoPQ) []monoPQ {
	type pq struct{ p, q int }
	merged := make(map[pq]int, len(in))
	order := make([]pq, 0, len(in))
	for _, m := range in {
		k := pq{p: m.p, q: m.q}
		if _, ok := merged[k]; !ok {
			order = append(order, k)
		}
		merged[k] += m.mult
	}
	out := make([]monoPQ, 0, len(order))
	for _, k := range order {
		out = append(out, monoPQ{p: k.p, q: k.q, mult: merged[k]})
	}

	return out
}

// orderedPart is one normal-ordered outcome of a raw addend: a canonical
// term with an integer multiplier.
type orderedPart struct {
	mult int
	term Operator
	key  string
}

// orderTerm normal-orders an elementary factor list. Trivial-space
// factors commute out front in sorted order; mode factors are grouped by
// sorted label and normal-ordered within each label.
func orderTerm(factors []Operator) []orderedPart {
	var syms []Operator
	var labels []string
	seqs := make(map[string][]bool)
	for _, f := range factors {
		if l, ok := f.(*localOp); ok {
			if _, seen := seqs[l.label]; !seen {
				labels = append(labels, l.label)
			}
			seqs[l.label] = append(seqs[l.label], l.create)

			continue
		}
		syms = append(syms, f)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].String() < syms[j].String() })
	sort.Strings(labels)

	parts := []struct {
		mult    int
		factors []Operator
	}{{mult: 1}}

	for _, label := range labels {
		decomp := normalOrderSeq(seqs[label])
		next := parts[:0:0]
		for _, base := range parts {
			for _, m := range decomp {
				ops := make([]Operator, 0, len(base.factors)+m.p+m.q)
				ops = append(ops, base.factors...)
				for i := 0; i < m.p; i++ {
					ops = append(ops, Create(label))
				}
				for i := 0; i < m.q; i++ {
					ops = append(ops, Destroy(label))
				}
				next = append(next, struct {
					mult    int
					factors []Operator
				}{mult: base.mult * m.mult, factors: ops})
			}
		}
		parts = next
	}

	out := make([]orderedPart, 0, len(parts))
	for _, p := range parts {
		full := make([]Operator, 0, len(syms)+len(p.factors))
		full = append(full, syms...)
		full = append(full, p.factors...)
		term, key := buildTerm(full)
		out = append(out, orderedPart{mult: p.mult, term: term, key: key})
	}

	return out
}

// buildTerm assembles a canonical term operator and its signature key
// from an already-ordered elementary factor list.
func buildTerm(factors []Operator) (Operator, string) {
	switch len(factors) {
	case 0:
		return Identity, "1"
	case 1:
		return factors[0], factors[0].String()
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}

	return &productOp{factors: factors}, strings.Join(parts, "*")
}

// expand is the shared canonicalization behind Operator.Expand: flat sum
// of scalar-times-term addends, normal ordered, like terms merged, zero
// coefficients dropped, addends sorted by term key.
func expand(op Operator) Operator {
	type bucket struct {
		term  Operator
		coeff scalar.Scalar
	}
	acc := make(map[string]*bucket)
	for _, rt := range flatten(op) {
		for _, part := range orderTerm(rt.factors) {
			c := rt.coeff
			if part.mult != 1 {
				c = scalar.Scale(c, complex(float64(part.mult), 0))
			}
			if b, ok := acc[part.key]; ok {
				b.coeff = scalar.Add(b.coeff, c)
			} else {
				acc[part.key] = &bucket{term: part.term, coeff: c}
			}
		}
	}

	keys := make([]string, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	addends := make([]Operator, 0, len(keys))
	for _, k := range keys {
		c := acc[k].coeff.Simplify()
		if cc, ok := c.(*scalar.Const); ok && cc.IsZero() {
			continue
		}
		addends = append(addends, ScalarMul(c, acc[k].term))
	}
	switch len(addends) {
	case 0:
		return Zero()
	case 1:
		return addends[0]
	}

	return &sumOp{terms: addends}
}

// keyOf computes the canonical signature of an arbitrary expression's
// term part. Multi-term expressions join their sorted term keys; the
// scalar coefficients never participate.
func keyOf(op Operator) string {
	seen := make(map[string]struct{})
	var keys []string
	for _, rt := range flatten(op) {
		for _, part := range orderTerm(rt.factors) {
			if _, ok := seen[part.key]; !ok {
				seen[part.key] = struct{}{}
				keys = append(keys, part.key)
			}
		}
	}
	if len(keys) == 1 {
		return keys[0]
	}
	sort.Strings(keys)

	return strings.Join(keys, " + ")
}
