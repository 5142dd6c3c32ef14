package dpll

import "github.com/samber/lo"

// Satisfies reports whether the assignment makes every clause of f true,
// i.e. whether each clause has at least one literal that appears in a with
// the same sign.
func (a Assignment) Satisfies(f Formula) bool {
	truth := make(map[Literal]bool, len(a))
	for _, lit := range a {
		truth[lit] = true
	}
	return lo.EveryBy(f, func(c Clause) bool {
		return lo.SomeBy(c, func(lit Literal) bool { return truth[lit] })
	})
}

// Value looks up the truth value assigned to a variable. The second return
// is false if the variable does not appear in the assignment.
func (a Assignment) Value(v int) (value, ok bool) {
	lit, ok := lo.Find(a, func(lit Literal) bool { return lit.Var() == v })
	if !ok {
		return false, false
	}
	return lit > 0, true
}
