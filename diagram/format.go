// SPDX-License-Identifier: MIT

package diagram

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// formatFloat writes the shortest round-trip representation, "inf" for +Inf.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// WriteTo writes one "dimension birth death" line per pair in insertion
// order. It implements io.WriterTo.
func (d *Diagram) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, p := range d.pairs {
		k, err := fmt.Fprintf(bw, "%d %s %s\n", p.Dimension, formatFloat(p.Birth), formatFloat(p.Death))
		n += int64(k)
		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// Read parses the text format. Lines with three columns take characteristic
// p; four-column lines carry their own.
func Read(r io.Reader, p uint32) (*Diagram, error) {
	d := &Diagram{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pair, err := parseLine(strings.Fields(text), p)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		if err := d.Record(pair.Dimension, pair.Birth, pair.Death, pair.Characteristic); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w: %w", line, ErrParse, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return d, nil
}

// parseLine decodes 3 or 4 fields.
func parseLine(fields []string, p uint32) (Pair, error) {
	switch len(fields) {
	case 3:
	case 4:
		c, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return Pair{}, fmt.Errorf("%w: characteristic %q", ErrParse, fields[0])
		}
		p = uint32(c)
		fields = fields[1:]
	default:
		return Pair{}, fmt.Errorf("%w: expected 3 or 4 fields, got %d", ErrParse, len(fields))
	}
	dim, err := strconv.Atoi(fields[0])
	if err != nil {
		return Pair{}, fmt.Errorf("%w: dimension %q", ErrParse, fields[0])
	}
	birth, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: birth %q", ErrParse, fields[1])
	}
	death, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: death %q", ErrParse, fields[2])
	}

	return Pair{Dimension: dim, Birth: birth, Death: death, Characteristic: p}, nil
}
