// Package matstack is a representation-agnostic algebra for composing and
// decomposing rectangular matrix values: concatenation, splitting,
// block-diagonal assembly, matrix products (plain and sparsity-restricted)
// and transposition.
//
// The same generic operations run identically over two very different
// concrete representations:
//
//	numeric/  — exact dense values backed by gonum, with an exact
//	            structural sparsity pattern
//	symbolic/ — immutable expression graphs carrying a conservative
//	            sparsity pattern, evaluable against numeric bindings
//
// The contract between the two worlds lives in algebra/:
//
//	algebra/  — the Value[T] capability contract and the generic
//	            HorzCat/VertCat/HorzSplit/VertSplit/BlkDiag/Mul/Prod/
//	            Transpose operations written once against it
//	sparsity/ — the structural pattern value type shared by both
//	            representations, plus a spy-plot renderer
//	docio/    — name-selected pluggable document backends (XML, YAML)
//	            parsing matrix documents into a generic node tree
//
// Every operation is a pure function over immutable values: splitting a
// matrix and concatenating the pieces reproduces the original exactly,
// whichever representation backs it.
package matstack
