// Package sboxlat computes Linear Approximation Tables (LATs) for 6-to-4 bit substitution boxes.
//
// For each S-box and each pair of masks (alpha, beta), the LAT records how often the GF(2) inner product of alpha and
// an input x agrees with the inner product of beta and the S-box output for x, over all 64 inputs. Counts are centered
// at zero by subtracting 32, so an entry of 0 means alpha and beta are uncorrelated and an entry of ±32 means the
// linear approximation holds (or fails) for every input.
package sboxlat

import (
	"iter"
	"runtime"

	"github.com/codahale/sboxlat/internal/parity"
	"github.com/codahale/sboxlat/sbox"
	"golang.org/x/sync/errgroup"
)

// Size is the number of entries in a Table.
const Size = sbox.Count * sbox.Inputs * sbox.Outputs

// Table is a Linear Approximation Table for a full sbox.Set, indexed by S-box, input mask alpha, and output mask beta.
// Every entry is in [-32, 32].
type Table [sbox.Count][sbox.Inputs][sbox.Outputs]int

// At returns the bias of the approximation (alpha, beta) for S-box s. It panics if any index is out of range.
func (t *Table) At(s, alpha, beta uint8) int {
	return t[s][alpha][beta]
}

// Cell identifies a single entry of a Table.
type Cell struct {
	Box, Alpha, Beta uint8
}

// Cells returns every Cell of a Table, ordered by S-box, then alpha, then beta.
func Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for s := range uint8(sbox.Count) {
			for alpha := range uint8(sbox.Inputs) {
				for beta := range uint8(sbox.Outputs) {
					if !yield(Cell{Box: s, Alpha: alpha, Beta: beta}) {
						return
					}
				}
			}
		}
	}
}

// Bias returns the number of inputs x for which alpha·x = beta·S(x), minus 32. S(x) is looked up in b using the
// convention c.
func Bias(b *sbox.Box, c sbox.Convention, alpha, beta uint8) int {
	return matches(b, c, alpha, beta) - sbox.Inputs/2
}

func matches(b *sbox.Box, c sbox.Convention, alpha, beta uint8) int {
	n := 0
	for x := range uint8(sbox.Inputs) {
		y := b.Lookup(c, x)
		if parity.Dot(alpha, x)^parity.Dot(beta, y) == 0 {
			n++
		}
	}
	return n
}

// Build computes the full Table for set using the convention c.
func Build(set *sbox.Set, c sbox.Convention) *Table {
	var t Table
	for cell := range Cells() {
		t[cell.Box][cell.Alpha][cell.Beta] = Bias(&set[cell.Box], c, cell.Alpha, cell.Beta)
	}
	return &t
}

// BuildConcurrent computes the same Table as Build, spreading rows of the table across GOMAXPROCS goroutines. Each
// goroutine writes a disjoint (S-box, alpha) row.
func BuildConcurrent(set *sbox.Set, c sbox.Convention) *Table {
	var (
		t  Table
		eg errgroup.Group
	)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for s := range uint8(sbox.Count) {
		for alpha := range uint8(sbox.Inputs) {
			eg.Go(func() error {
				row := &t[s][alpha]
				for beta := range uint8(sbox.Outputs) {
					row[beta] = Bias(&set[s], c, alpha, beta)
				}
				return nil
			})
		}
	}

	// Rows never fail.
	_ = eg.Wait()

	return &t
}
