package scalar

import (
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// baseExp is one multiplicative factor of a monomial: base^exp.
// key is the deterministic sort/merge key of the base.
type baseExp struct {
	key  string
	base Scalar
	exp  float64
}

// monomial is coeff · Π base^exp with bases sorted by key.
type monomial struct {
	coeff complex128
	bases []baseExp
}

// canonical rewrites any Scalar into its canonical sum-of-monomials form.
func canonical(s Scalar) Scalar { return rebuild(normalize(s)) }

// equalCanonical compares two scalars through their canonical renderings.
func equalCanonical(a, b Scalar) bool {
	if b == nil {
		return false
	}

	return canonical(a).String() == canonical(b).String()
}

// conjCanonical conjugates through the canonical form: coefficients are
// conjugated, symbol bases stay fixed, composite bases recurse.
func conjCanonical(s Scalar) Scalar {
	monos := normalize(s)
	out := make([]monomial, 0, len(monos))
	for _, m := range monos {
		cm := monomial{coeff: cmplx.Conj(m.coeff)}
		for _, b := range m.bases {
			cb := b.base.Conj()
			cm.bases = append(cm.bases, baseExp{key: baseKey(cb), base: cb, exp: b.exp})
		}
		sortBases(cm.bases)
		out = append(out, cm)
	}

	return rebuild(mergeMonomials(out))
}

// normalize decomposes s into a merged, sorted monomial list.
// The zero scalar normalizes to an empty list.
func normalize(s Scalar) []monomial {
	switch v := s.(type) {
	case *Const:
		if v.v == 0 {
			return nil
		}

		return []monomial{{coeff: v.v}}

	case *Symbol:
		return []monomial{{coeff: 1, bases: []baseExp{{key: v.name, base: v, exp: 1}}}}

	case *sum:
		var acc []monomial
		for _, t := range v.terms {
			acc = append(acc, normalize(t)...)
		}

		return mergeMonomials(acc)

	case *prod:
		acc := []monomial{{coeff: 1}}
		for _, f := range v.factors {
			acc = mulMonomialLists(acc, normalize(f))
		}

		return mergeMonomials(acc)

	case *pow:
		return normalizePow(v)

	default:
		// Unknown implementations degrade to an opaque unit-exponent factor.
		return []monomial{{coeff: 1, bases: []baseExp{{key: baseKey(s), base: s, exp: 1}}}}
	}
}

// normalizePow reduces base^exp to monomials where the algebra allows it
// and falls back to an opaque factor otherwise.
func normalizePow(p *pow) []monomial {
	if p.exp == 0 {
		return []monomial{{coeff: 1}}
	}
	base := normalize(p.base)
	if p.exp == 1 {
		return base
	}
	if len(base) == 0 {
		// 0^exp: zero for positive exponents; degenerate otherwise.
		return nil
	}
	if len(base) == 1 {
		m := base[0]
		out := monomial{coeff: powCoeff(m.coeff, p.exp)}
		for _, b := range m.bases {
			out.bases = append(out.bases, baseExp{key: b.key, base: b.base, exp: b.exp * p.exp})
		}
		sortBases(out.bases)

		return []monomial{out}
	}
	if isSmallPositiveInt(p.exp) {
		acc := []monomial{{coeff: 1}}
		for i := 0; i < int(p.exp); i++ {
			acc = mulMonomialLists(acc, base)
		}

		return mergeMonomials(acc)
	}

	// Composite base with a non-expandable exponent stays opaque.
	b := rebuild(base)

	return []monomial{{coeff: 1, bases: []baseExp{{key: baseKey(b), base: b, exp: p.exp}}}}
}

// powCoeff raises a coefficient to a real power, preserving exact units.
func powCoeff(c complex128, exp float64) complex128 {
	if c == 1 {
		return 1
	}

	return cmplx.Pow(c, complex(exp, 0))
}

func isSmallPositiveInt(exp float64) bool {
	return exp > 1 && exp <= 16 && exp == float64(int(exp))
}

// mulMonomialLists multiplies two monomial lists term-by-term.
func mulMonomialLists(a, b []monomial) []monomial {
	out := make([]monomial, 0, len(a)*len(b))
	for _, ma := range a {
		for _, mb := range b {
			m := mulMonomials(ma, mb)
			if m.coeff != 0 {
				out = append(out, m)
			}
		}
	}

	return out
}

// mulMonomials merges two monomials, adding exponents of shared bases.
// Factors whose exponents cancel exactly are dropped.
func mulMonomials(a, b monomial) monomial {
	out := monomial{coeff: a.coeff * b.coeff}
	merged := make(map[string]baseExp, len(a.bases)+len(b.bases))
	for _, be := range a.bases {
		merged[be.key] = be
	}
	for _, be := range b.bases {
		if prev, ok := merged[be.key]; ok {
			prev.exp += be.exp
			merged[be.key] = prev
		} else {
			merged[be.key] = be
		}
	}
	for _, be := range merged {
		if be.exp != 0 {
			out.bases = append(out.bases, be)
		}
	}
	sortBases(out.bases)

	return out
}

// mergeMonomials collects like terms and drops exact-zero coefficients.
func mergeMonomials(monos []monomial) []monomial {
	merged := make(map[string]monomial, len(monos))
	order := make([]string, 0, len(monos))
	for _, m := range monos {
		k := monoKey(m)
		if prev, ok := merged[k]; ok {
			prev.coeff += m.coeff
			merged[k] = prev
		} else {
			merged[k] = m
			order = append(order, k)
		}
	}
	sort.Strings(order)
	out := make([]monomial, 0, len(order))
	for _, k := range order {
		if m := merged[k]; m.coeff != 0 {
			out = append(out, m)
		}
	}

	return out
}

// rebuild converts a monomial list back into a canonical expression tree.
func rebuild(monos []monomial) Scalar {
	if len(monos) == 0 {
		return Zero()
	}
	terms := make([]Scalar, 0, len(monos))
	for _, m := range monos {
		terms = append(terms, rebuildMonomial(m))
	}
	if len(terms) == 1 {
		return terms[0]
	}

	return &sum{terms: terms}
}

func rebuildMonomial(m monomial) Scalar {
	factors := make([]Scalar, 0, len(m.bases)+1)
	for _, be := range m.bases {
		if be.exp == 1 {
			factors = append(factors, be.base)
		} else {
			factors = append(factors, &pow{base: be.base, exp: be.exp})
		}
	}
	if len(factors) == 0 {
		return C(m.coeff)
	}
	if m.coeff != 1 {
		factors = append([]Scalar{C(m.coeff)}, factors...)
	}
	if len(factors) == 1 {
		return factors[0]
	}

	return &prod{factors: factors}
}

func sortBases(bases []baseExp) {
	sort.Slice(bases, func(i, j int) bool { return bases[i].key < bases[j].key })
}

// baseKey renders a factor base deterministically for sorting/merging.
func baseKey(s Scalar) string {
	if sym, ok := s.(*Symbol); ok {
		return sym.name
	}

	return "(" + s.String() + ")"
}

// monoKey renders a monomial's factor signature (coefficient excluded).
func monoKey(m monomial) string {
	if len(m.bases) == 0 {
		return ""
	}
	parts := make([]string, len(m.bases))
	for i, be := range m.bases {
		if be.exp == 1 {
			parts[i] = be.key
		} else {
			parts[i] = be.key + "^" + strconv.FormatFloat(be.exp, 'g', -1, 64)
		}
	}

	return strings.Join(parts, "*")
}
