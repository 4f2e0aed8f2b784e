//go:build !amd64 || purego

package parity

// UsePOPCNT is set if the current CPU supports the POPCNT instruction.
var UsePOPCNT = false //nolint:gochecknoglobals // should only check once

func parity(x uint8) uint8 {
	return parityGeneric(x)
}
