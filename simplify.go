package dpll

import "github.com/samber/lo"

// Simplify returns the formula that results from assuming lit true:
// clauses containing lit are satisfied and dropped, and occurrences of the
// negated literal are deleted from the clauses that remain, preserving the
// order of everything else. Deleting the last literal of a clause leaves
// an empty clause, which solve treats as a conflict.
//
// Simplify is pure. The input formula is never modified and the returned
// formula is a fresh container.
func Simplify(f Formula, lit Literal) Formula {
	neg := lit.Neg()
	out := make(Formula, 0, len(f))
	for _, c := range f {
		switch {
		case lo.Contains(c, lit):
			// Satisfied; drop the whole clause.
		case lo.Contains(c, neg):
			out = append(out, c.without(neg))
		default:
			out = append(out, c)
		}
	}
	return out
}

// without returns a copy of c with every occurrence of lit removed.
func (c Clause) without(lit Literal) Clause {
	return Clause(lo.Reject(c, func(l Literal, _ int) bool { return l == lit }))
}
