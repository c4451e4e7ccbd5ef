// Package algebra implements the generic, representation-independent matrix
// composition operations: HorzCat, VertCat, HorzSplit, VertSplit, BlkDiag,
// Mul, MulAcc, Prod and Transpose.
//
// The operations are written once against the Value[T] contract and work
// identically over any concrete representation that implements it — exact
// numeric values (numeric.Matrix) and symbolic expression graphs
// (symbolic.Expr) alike. Each operation validates and normalizes its
// arguments (shape compatibility, split offsets, increments) and then
// delegates the representation-specific work to the contract's kernels.
//
// All operations are pure functions of their arguments: inputs are never
// mutated, every call returns a freshly owned value, and concurrent calls
// over independent or read-only-shared values are safe without locking.
//
// Algebraic guarantees, whatever the representation:
//
//	HorzCat(HorzSplit(x, offs)...) == x    for any valid full partition offs
//	VertCat(VertSplit(x, offs)...) == x
//	Transpose(Transpose(x))        == x
//	Prod(a, b, c) == Mul(Mul(a, b), c)     (left fold)
package algebra
