// Package symbolic provides the symbolic matrix representation: immutable
// expression graphs over named matrix symbols and numeric constants.
//
// Every Expr node carries its shape and a conservative structural sparsity
// pattern — a superset of the non-zeros any evaluation of the node can
// produce. Nodes implement the algebra.Value contract, so the generic
// operations in package algebra build graphs instead of computing values:
// HorzCat produces a concatenation node, Mul a product node, and so on.
//
// Two structural simplifications mirror the algebra's guarantees at the
// graph level, so round-trips return the original node, not an equivalent
// one:
//
//   - transposing a transpose returns the underlying node;
//   - concatenating contiguous slices of one parent that span the full axis
//     returns the parent.
//
// Eval materializes a graph against numeric bindings for its symbols,
// running the same generic algebra over numeric values.
package symbolic
