// Package dpll decides the satisfiability of boolean formulas in
// conjunctive normal form using the classic Davis-Putnam-Logemann-Loveland
// procedure: unit propagation combined with recursive case splitting and
// backtracking.
//
// Formulas, clauses and assignments are plain slices of integer literals,
// in the same encoding DIMACS files use: a positive literal asserts its
// variable and a negative literal negates it.
package dpll

import "sort"

// A Literal stands for a variable or its negation: the magnitude names the
// variable and the sign gives the polarity. Zero is not a literal.
type Literal int

// Neg returns the literal for the same variable with opposite polarity.
func (l Literal) Neg() Literal { return -l }

// Var returns the variable the literal refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// A Clause is a disjunction of literals. Order is preserved but carries no
// meaning. An empty clause is a conflict: nothing can satisfy it.
type Clause []Literal

// A Formula is a conjunction of clauses. The empty formula is trivially
// satisfiable.
type Formula []Clause

// An Assignment lists the literals chosen or forced true while solving;
// each entry's sign is the truth value of its variable.
type Assignment []Literal

// Result is the outcome of Solve: either one satisfying model or the
// verdict that none exists.
type Result struct {
	Sat   bool
	Model Assignment
}

// Solve decides whether a boolean formula is satisfiable and, if it is,
// gives a satisfying assignment.
//
// Every variable appearing in f occurs exactly once in the model of a
// satisfiable result, with its sign giving the truth value; callers should
// not assume any particular ordering beyond that. The model is freshly
// allocated and owned by the caller.
//
// Solve is deterministic: branching always picks the first literal of the
// first remaining clause. A clause containing the literal 0 is outside the
// input contract and is not diagnosed.
func Solve(f Formula) Result {
	sv := new(solver)
	model, ok := sv.solve(f)
	if !ok {
		return Result{}
	}
	return Result{Sat: true, Model: completeModel(f, model)}
}

// completeModel assigns the variables of f that the search never touched.
// Such a variable disappeared because every clause mentioning it was
// satisfied some other way, so either polarity works; missing variables
// are set true, in ascending order to keep results reproducible.
func completeModel(f Formula, model Assignment) Assignment {
	assigned := make(map[int]bool, len(model))
	for _, lit := range model {
		assigned[lit.Var()] = true
	}
	var missing []int
	for _, c := range f {
		for _, lit := range c {
			if v := lit.Var(); !assigned[v] {
				assigned[v] = true
				missing = append(missing, v)
			}
		}
	}
	sort.Ints(missing)
	for _, v := range missing {
		model = append(model, Literal(v))
	}
	return model
}
