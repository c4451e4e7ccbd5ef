// SPDX-License-Identifier: MIT
// Package symbolic: the Expr node type, constructors and structural
// equality. Kernel implementations live in kernels.go, evaluation in
// eval.go.
//
// Invariants:
//   - Expr values are immutable once constructed; graphs are DAGs and
//     sub-expressions may be shared freely.
//   - Every node's pat is a conservative superset of the non-zeros any
//     evaluation of that node can produce.

package symbolic

import (
	"fmt"

	"github.com/matstack/matstack/numeric"
	"github.com/matstack/matstack/sparsity"
)

// opKind discriminates expression nodes.
type opKind uint8

const (
	opSymbol opKind = iota // named leaf with a declared shape and pattern
	opConst                // numeric constant leaf
	opHCat                 // horizontal concatenation of args
	opVCat                 // vertical concatenation of args
	opDiagCat              // block-diagonal assembly of args
	opColSlice             // column range [lo,hi) of args[0]
	opRowSlice             // row range [lo,hi) of args[0]
	opMul                  // args[0] * args[1]
	opMulAcc               // args[2] + sparsify(args[0]*args[1], pattern(args[2]))
	opTrans                // transpose of args[0]
)

// opNames maps kinds to their display names (String, debugging).
var opNames = map[opKind]string{
	opSymbol:   "sym",
	opConst:    "const",
	opHCat:     "hcat",
	opVCat:     "vcat",
	opDiagCat:  "diagcat",
	opColSlice: "colslice",
	opRowSlice: "rowslice",
	opMul:      "mul",
	opMulAcc:   "mulacc",
	opTrans:    "transpose",
}

// Expr is one node of an immutable symbolic expression graph.
type Expr struct {
	op         opKind
	args       []*Expr
	rows, cols int
	pat        *sparsity.Pattern

	name   string          // opSymbol
	value  *numeric.Matrix // opConst
	lo, hi int             // opColSlice / opRowSlice bounds on args[0]
}

// Symbol declares a named rows×cols leaf with a dense (fully conservative)
// pattern.
//
// Errors: ErrBadSymbol (empty name), ErrBadShape (negative extent).
func Symbol(name string, rows, cols int) (*Expr, error) {
	if name == "" {
		return nil, fmt.Errorf("Symbol: %w", ErrBadSymbol)
	}
	pat, err := sparsity.Dense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Symbol %q: %w", name, ErrBadShape)
	}

	return &Expr{op: opSymbol, rows: rows, cols: cols, pat: pat, name: name}, nil
}

// SymbolPattern declares a named leaf whose structure is known up front:
// evaluations bound to it may only be non-zero inside pat.
//
// Errors: ErrBadSymbol (empty name), ErrNilValue (nil pattern).
func SymbolPattern(name string, pat *sparsity.Pattern) (*Expr, error) {
	if name == "" {
		return nil, fmt.Errorf("SymbolPattern: %w", ErrBadSymbol)
	}
	if pat == nil {
		return nil, fmt.Errorf("SymbolPattern %q: %w", name, ErrNilValue)
	}

	return &Expr{op: opSymbol, rows: pat.Rows(), cols: pat.Cols(), pat: pat, name: name}, nil
}

// Const wraps a numeric matrix as a constant leaf; its pattern is the
// matrix's exact pattern.
//
// Errors: ErrNilValue.
func Const(m *numeric.Matrix) (*Expr, error) {
	if m == nil {
		return nil, fmt.Errorf("Const: %w", ErrNilValue)
	}

	return &Expr{op: opConst, rows: m.Rows(), cols: m.Cols(), pat: m.Pattern(), value: m}, nil
}

// Rows returns the row extent. Complexity: O(1).
func (e *Expr) Rows() int { return e.rows }

// Cols returns the column extent. Complexity: O(1).
func (e *Expr) Cols() int { return e.cols }

// Pattern returns the node's conservative structural pattern. Complexity: O(1).
func (e *Expr) Pattern() *sparsity.Pattern { return e.pat }

// Name returns the symbol name of an opSymbol leaf and "" otherwise.
func (e *Expr) Name() string { return e.name }

// Equal reports structural equality: same operation, shape, payload and
// recursively equal children. Shared sub-expressions short-circuit on
// pointer identity.
func (e *Expr) Equal(o *Expr) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil {
		return false
	}
	if e.op != o.op || e.rows != o.rows || e.cols != o.cols || len(e.args) != len(o.args) {
		return false
	}
	switch e.op {
	case opSymbol:
		if e.name != o.name || !e.pat.Equal(o.pat) {
			return false
		}
	case opConst:
		if !e.value.Equal(o.value) {
			return false
		}
	case opColSlice, opRowSlice:
		if e.lo != o.lo || e.hi != o.hi {
			return false
		}
	}
	for i := range e.args {
		if !e.args[i].Equal(o.args[i]) {
			return false
		}
	}

	return true
}

// String renders a compact single-line form of the graph for debugging.
func (e *Expr) String() string {
	switch e.op {
	case opSymbol:
		return fmt.Sprintf("%s(%dx%d)", e.name, e.rows, e.cols)
	case opConst:
		return fmt.Sprintf("const(%dx%d)", e.rows, e.cols)
	case opColSlice, opRowSlice:
		return fmt.Sprintf("%s[%d:%d](%s)", opNames[e.op], e.lo, e.hi, e.args[0])
	default:
		s := opNames[e.op] + "("
		for i, a := range e.args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}

		return s + ")"
	}
}
