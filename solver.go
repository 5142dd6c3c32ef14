package dpll

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/samber/lo"
)

const verbose = false

// solver accumulates search statistics for a single Solve call. Formulas
// are not part of the state: every recursion level owns its own value,
// and sibling branches never see each other's copies.
type solver struct {
	depth           int
	numDecisions    int64
	numPropagations int64
}

// solve decides f. On success it returns the literals assigned during this
// call and its recursive children; each caller extends the returned
// assignment with its own locally forced literals and its pivot.
func (sv *solver) solve(f Formula) (Assignment, bool) {
	var local Assignment

	// Unit propagation: as long as some clause has a single literal
	// left, that literal is forced, and assuming it shrinks the formula
	// further.
	for {
		if hasConflict(f) {
			if verbose {
				fmt.Printf("%sconflict | %s\n", sv.indent(), sv.stateString(local, f))
			}
			return nil, false
		}
		if len(f) == 0 {
			if verbose {
				fmt.Printf("%sall clauses satisfied | %s\n", sv.indent(), sv.stateString(local, f))
			}
			return local, true
		}
		unit, ok := findUnit(f)
		if !ok {
			break
		}
		local = append(local, unit)
		f = Simplify(f, unit)
		sv.numPropagations++
		if verbose {
			fmt.Printf("%spropagated %d | %s\n", sv.indent(), unit, sv.stateString(local, f))
		}
	}

	// Case split. The pivot is always the first literal of the first
	// clause, so repeated runs explore the same tree.
	pivot := f[0][0]
	sv.numDecisions++
	if verbose {
		fmt.Printf("%sbranching on %d | %s\n", sv.indent(), pivot, sv.stateString(local, f))
		pretty.Println(f)
	}

	sv.depth++
	sub, ok := sv.solve(Simplify(f, pivot))
	if !ok {
		// The pivot-true branch is exhausted. Retry with the pivot
		// negated, from the post-propagation formula rather than the
		// true branch's simplified copy.
		pivot = pivot.Neg()
		sub, ok = sv.solve(Simplify(f, pivot))
	}
	sv.depth--
	if !ok {
		return nil, false
	}
	sub = append(sub, local...)
	sub = append(sub, pivot)
	return sub, true
}

func hasConflict(f Formula) bool {
	return lo.SomeBy(f, func(c Clause) bool { return len(c) == 0 })
}

// findUnit returns the sole literal of the first unit clause in f.
func findUnit(f Formula) (Literal, bool) {
	c, ok := lo.Find(f, func(c Clause) bool { return len(c) == 1 })
	if !ok {
		return 0, false
	}
	return c[0], true
}

func (sv *solver) indent() string {
	return strings.Repeat("  ", sv.depth)
}

func (sv *solver) stateString(local Assignment, f Formula) string {
	var b strings.Builder
	fmt.Fprintf(&b, "depth=%d clauses=%d forced={", sv.depth, len(f))
	for i, lit := range local {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", lit)
	}
	b.WriteByte('}')
	return b.String()
}
