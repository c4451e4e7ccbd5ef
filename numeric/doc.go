// Package numeric provides the exact numeric matrix representation.
//
// A Matrix is an immutable, value-semantics rectangular matrix of float64
// entries backed by gonum's dense storage, carrying an exact structural
// sparsity pattern (the set of non-zero coordinates, computed at
// construction). It implements the algebra.Value contract, so every generic
// operation in package algebra works over it; the pattern of every kernel
// result is exact.
//
// Zero-extent shapes (0×n, n×0) are first-class: splits may produce empty
// groups and concatenation absorbs them, which gonum's allocator forbids,
// so empty values simply carry no backing storage.
package numeric
