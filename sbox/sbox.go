// Package sbox models the eight 6-to-4 bit DES substitution boxes and the conventions for selecting a table cell from a
// 6-bit input.
package sbox

import (
	"errors"
	"fmt"
)

const (
	// Count is the number of S-boxes in a Set.
	Count = 8

	// InputBits is the width of an S-box input.
	InputBits = 6

	// OutputBits is the width of an S-box output.
	OutputBits = 4

	// Inputs is the number of distinct S-box inputs.
	Inputs = 1 << InputBits

	// Outputs is the number of distinct S-box outputs.
	Outputs = 1 << OutputBits

	// Rows is the number of rows in a Box.
	Rows = 4

	// Columns is the number of columns in a Box.
	Columns = 16
)

// ErrUnknownConvention is returned when a convention name cannot be parsed.
var ErrUnknownConvention = errors.New("sbox: unknown convention")

// Box is a single S-box, stored as 4 rows of 16 columns of 4-bit values.
type Box [Rows][Columns]uint8

// Set is an ordered collection of S-boxes.
type Set [Count]Box

// Lookup maps the 6-bit input x to its 4-bit output, selecting the cell with the given convention. Bits of x above the
// sixth are ignored.
func (b *Box) Lookup(c Convention, x uint8) uint8 {
	row, col := c.Index(x)
	return b[row][col] & (Outputs - 1)
}

// Convention selects a row and column of a Box from a 6-bit input.
type Convention uint8

const (
	// Outer is the textbook DES convention: the row is taken from the outermost input bits (2*bit0 + bit5, bit0 being
	// the most significant) and the column from the middle four bits.
	Outer Convention = iota

	// Flat treats the input as a row-major index into the table: row = x/16, column = x%16.
	Flat
)

// Index returns the row and column of the cell selected by x. Both are masked to the table's bounds.
func (c Convention) Index(x uint8) (row, col uint8) {
	x &= Inputs - 1
	switch c {
	case Flat:
		row, col = x>>4, x&0x0f
	default:
		row, col = (x>>4)&0b10|x&0b01, (x>>1)&0x0f
	}
	return row & (Rows - 1), col & (Columns - 1)
}

// String returns the convention's name as accepted by ParseConvention.
func (c Convention) String() string {
	switch c {
	case Outer:
		return "des"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("Convention(%d)", uint8(c))
	}
}

// ParseConvention returns the convention with the given name. "des" and "outer" select Outer, "flat" selects Flat.
func ParseConvention(name string) (Convention, error) {
	switch name {
	case "des", "outer":
		return Outer, nil
	case "flat":
		return Flat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, name)
	}
}

// DES returns the eight DES S-boxes, S1 through S8, as given in FIPS 46-3. The returned Set is a copy.
func DES() Set {
	return des
}

//nolint:gochecknoglobals // constant data
var des = Set{
	{
		{14, 4, 13, 1, 2, 15, 11, 8, 3, 10, 6, 12, 5, 9, 0, 7},
		{0, 15, 7, 4, 14, 2, 13, 1, 10, 6, 12, 11, 9, 5, 3, 8},
		{4, 1, 14, 8, 13, 6, 2, 11, 15, 12, 9, 7, 3, 10, 5, 0},
		{15, 12, 8, 2, 4, 9, 1, 7, 5, 11, 3, 14, 10, 0, 6, 13},
	},
	{
		{15, 1, 8, 14, 6, 11, 3, 4, 9, 7, 2, 13, 12, 0, 5, 10},
		{3, 13, 4, 7, 15, 2, 8, 14, 12, 0, 1, 10, 6, 9, 11, 5},
		{0, 14, 7, 11, 10, 4, 13, 1, 5, 8, 12, 6, 9, 3, 2, 15},
		{13, 8, 10, 1, 3, 15, 4, 2, 11, 6, 7, 12, 0, 5, 14, 9},
	},
	{
		{10, 0, 9, 14, 6, 3, 15, 5, 1, 13, 12, 7, 11, 4, 2, 8},
		{13, 7, 0, 9, 3, 4, 6, 10, 2, 8, 5, 14, 12, 11, 15, 1},
		{13, 6, 4, 9, 8, 15, 3, 0, 11, 1, 2, 12, 5, 10, 14, 7},
		{1, 10, 13, 0, 6, 9, 8, 7, 4, 15, 14, 3, 11, 5, 2, 12},
	},
	{
		{7, 13, 14, 3, 0, 6, 9, 10, 1, 2, 8, 5, 11, 12, 4, 15},
		{13, 8, 11, 5, 6, 15, 0, 3, 4, 7, 2, 12, 1, 10, 14, 9},
		{10, 6, 9, 0, 12, 11, 7, 13, 15, 1, 3, 14, 5, 2, 8, 4},
		{3, 15, 0, 6, 10, 1, 13, 8, 9, 4, 5, 11, 12, 7, 2, 14},
	},
	{
		{2, 12, 4, 1, 7, 10, 11, 6, 8, 5, 3, 15, 13, 0, 14, 9},
		{14, 11, 2, 12, 4, 7, 13, 1, 5, 0, 15, 10, 3, 9, 8, 6},
		{4, 2, 1, 11, 10, 13, 7, 8, 15, 9, 12, 5, 6, 3, 0, 14},
		{11, 8, 12, 7, 1, 14, 2, 13, 6, 15, 0, 9, 10, 4, 5, 3},
	},
	{
		{12, 1, 10, 15, 9, 2, 6, 8, 0, 13, 3, 4, 14, 7, 5, 11},
		{10, 15, 4, 2, 7, 12, 9, 5, 6, 1, 13, 14, 0, 11, 3, 8},
		{9, 14, 15, 5, 2, 8, 12, 3, 7, 0, 4, 10, 1, 13, 11, 6},
		{4, 3, 2, 12, 9, 5, 15, 10, 11, 14, 1, 7, 6, 0, 8, 13},
	},
	{
		{4, 11, 2, 14, 15, 0, 8, 13, 3, 12, 9, 7, 5, 10, 6, 1},
		{13, 0, 11, 7, 4, 9, 1, 10, 14, 3, 5, 12, 2, 15, 8, 6},
		{1, 4, 11, 13, 12, 3, 7, 14, 10, 15, 6, 8, 0, 5, 9, 2},
		{6, 11, 13, 8, 1, 4, 10, 7, 9, 5, 0, 15, 14, 2, 3, 12},
	},
	{
		{13, 2, 8, 4, 6, 15, 11, 1, 10, 9, 3, 14, 5, 0, 12, 7},
		{1, 15, 13, 8, 10, 3, 7, 4, 12, 5, 6, 11, 0, 14, 9, 2},
		{7, 11, 4, 1, 9, 12, 14, 2, 0, 6, 10, 13, 15, 3, 5, 8},
		{2, 1, 14, 7, 4, 10, 8, 13, 15, 12, 9, 0, 3, 5, 6, 11},
	},
}
