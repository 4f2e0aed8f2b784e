//go:build amd64 && !purego

package parity

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// UsePOPCNT is set if the current CPU supports the POPCNT instruction.
var UsePOPCNT = cpu.X86.HasPOPCNT //nolint:gochecknoglobals // should only check once

func parity(x uint8) uint8 {
	if UsePOPCNT {
		return uint8(bits.OnesCount8(x)) & 1 //nolint:gosec // at most 8
	}
	return parityGeneric(x)
}
