// Package report writes Linear Approximation Tables in human- and machine-readable formats.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/codahale/sboxlat"
	"github.com/codahale/sboxlat/sbox"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	// ErrUnknownFormat is returned when a format name cannot be parsed.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrBoxOutOfRange is returned when a requested S-box number is not in 1..8.
	ErrBoxOutOfRange = errors.New("report: S-box number out of range")
)

// Format is an output format for a Table.
type Format uint8

const (
	// Text prints each S-box as a header line followed by 64 rows of 16 right-aligned entries.
	Text Format = iota

	// JSON prints a single JSON object holding the convention and each S-box's rows.
	JSON

	// Pretty prints each S-box as a boxed table with hexadecimal mask labels.
	Pretty
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case Pretty:
		return "pretty"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "pretty":
		return Pretty, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options controls what Write emits.
type Options struct {
	// Format selects the output format.
	Format Format

	// Convention is the convention the table was built with. Only JSON output records it.
	Convention sbox.Convention

	// Boxes lists the 1-based S-box numbers to write, in order. If empty, all S-boxes are written.
	Boxes []int
}

// Write writes the selected S-boxes of t to w.
func Write(w io.Writer, t *sboxlat.Table, opts Options) error {
	boxes, err := selectBoxes(opts.Boxes)
	if err != nil {
		return err
	}

	switch opts.Format {
	case Text:
		return writeText(w, t, boxes)
	case JSON:
		return writeJSON(w, t, opts.Convention, boxes)
	case Pretty:
		return writePretty(w, t, boxes)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}
}

func selectBoxes(numbers []int) ([]int, error) {
	if len(numbers) == 0 {
		boxes := make([]int, sbox.Count)
		for i := range boxes {
			boxes[i] = i + 1
		}
		return boxes, nil
	}

	for _, n := range numbers {
		if n < 1 || n > sbox.Count {
			return nil, fmt.Errorf("%w: %d", ErrBoxOutOfRange, n)
		}
	}
	return numbers, nil
}

func writeText(w io.Writer, t *sboxlat.Table, boxes []int) error {
	// One S-box is 66 lines of at most 65 bytes.
	buf := make([]byte, 0, 66*65)
	for _, n := range boxes {
		buf = buf[:0]
		buf = fmt.Appendf(buf, "S-box %d Linear Approximation Table (LAT):\n", n)
		for _, row := range t[n-1] {
			for _, v := range row {
				buf = fmt.Appendf(buf, "%3d ", v)
			}
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')

		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

type jsonReport struct {
	Convention string    `json:"convention"`
	SBoxes     []jsonBox `json:"sboxes"`
}

type jsonBox struct {
	SBox int                            `json:"sbox"`
	LAT  [sbox.Inputs][sbox.Outputs]int `json:"lat"`
}

func writeJSON(w io.Writer, t *sboxlat.Table, c sbox.Convention, boxes []int) error {
	r := jsonReport{Convention: c.String(), SBoxes: make([]jsonBox, 0, len(boxes))}
	for _, n := range boxes {
		r.SBoxes = append(r.SBoxes, jsonBox{SBox: n, LAT: t[n-1]})
	}

	enc := json.NewEncoder(w)
	return enc.Encode(r)
}

func writePretty(w io.Writer, t *sboxlat.Table, boxes []int) error {
	header := make(table.Row, 0, sbox.Outputs+1)
	header = append(header, "α\\β")
	for beta := range sbox.Outputs {
		header = append(header, strconv.FormatInt(int64(beta), 16))
	}

	for _, n := range boxes {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleLight)
		tw.Style().Format.Header = text.FormatDefault
		tw.SetTitle("S-box %d", n)
		tw.AppendHeader(header)
		for alpha, row := range t[n-1] {
			r := make(table.Row, 0, sbox.Outputs+1)
			r = append(r, fmt.Sprintf("%02x", alpha))
			for _, v := range row {
				r = append(r, v)
			}
			tw.AppendRow(r)
		}

		if _, err := io.WriteString(w, tw.Render()+"\n\n"); err != nil {
			return err
		}
	}
	return nil
}
