// Package matrix reads the species-character matrix file format that
// seeds a red-black graph: a header line giving the species and character
// counts plus any pre-active character indices, followed by a row-major
// binary matrix.
package matrix
