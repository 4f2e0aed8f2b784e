// Package parity implements the inner product of bit vectors over GF(2).
package parity

// Parity returns the XOR of the bits of x, i.e. the inner product of x with the all-ones vector over GF(2).
func Parity(x uint8) uint8 {
	return parity(x)
}

// Dot returns the inner product of a and b over GF(2).
func Dot(a, b uint8) uint8 {
	return parity(a & b)
}
