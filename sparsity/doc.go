// Package sparsity provides the structural sparsity pattern shared by every
// matrix representation in matstack.
//
// A Pattern is the set of (row, column) coordinates of a rectangular shape
// that are considered structurally non-zero. Patterns are immutable values:
// every combinator (ConcatCols, ConcatRows, BlockDiag, ColRange, RowRange,
// Transpose, MulPattern) returns a fresh Pattern and never mutates its
// inputs.
//
// Coordinates are kept sorted in row-major order with no duplicates, so
// membership tests are O(log nnz) and equality is a single slice walk.
//
// Spy renders a pattern as a scatter "spy" image for quick visual
// inspection of structure.
package sparsity
