// Package tsplib — instance file parsing.
//
// The format is keyword-driven: a specification part ("KEYWORD: value"
// lines in arbitrary order) followed by data sections. The parser is
// strict: unknown keywords, short sections, and asymmetric explicit
// matrices are rejected with wrapped sentinels rather than guessed at.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseFile reads and parses a TSPLIB instance from disk.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TSPLIB instance from r.
//
// Complexity: O(n²) time and memory (the dense distance matrix).
func Parse(r io.Reader) (*Instance, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		ins          = &Instance{}
		dim          int
		weightType   string
		weightFormat string
		coords       [][2]float64
		weights      []int64
		err          error
	)

	for {
		line, ok := p.nextLine()
		if !ok || line == "EOF" {
			break
		}

		key, val := splitKeyword(line)
		switch key {
		case "NAME":
			ins.Name = val
		case "COMMENT":
			if ins.Comment != "" {
				ins.Comment += "\n"
			}
			ins.Comment += val
		case "TYPE":
			if val != "TSP" {
				return nil, fmt.Errorf("%w: TYPE %q", ErrUnsupported, val)
			}
		case "DIMENSION":
			dim, err = strconv.Atoi(val)
			if err != nil || dim < 2 {
				return nil, fmt.Errorf("%w: DIMENSION %q", ErrFormat, val)
			}
		case "EDGE_WEIGHT_TYPE":
			weightType = val
		case "EDGE_WEIGHT_FORMAT":
			weightFormat = val
		case "NODE_COORD_TYPE", "DISPLAY_DATA_TYPE":
			// Informational only.
		case "NODE_COORD_SECTION":
			if coords, err = p.readCoords(dim); err != nil {
				return nil, err
			}
		case "EDGE_WEIGHT_SECTION":
			var count int
			if count, err = explicitCount(weightFormat, dim); err != nil {
				return nil, err
			}
			if weights, err = p.readNumbers(count); err != nil {
				return nil, err
			}
		case "DISPLAY_DATA_SECTION":
			if err = p.skipLines(dim); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown keyword %q", ErrFormat, key)
		}
	}
	if err = p.sc.Err(); err != nil {
		return nil, err
	}
	if dim < 2 {
		return nil, fmt.Errorf("%w: missing DIMENSION", ErrFormat)
	}

	ins.n = dim
	ins.w = make([]int64, dim*dim)

	switch weightType {
	case "EUC_2D", "CEIL_2D", "ATT", "GEO":
		if len(coords) != dim {
			return nil, fmt.Errorf("%w: missing NODE_COORD_SECTION", ErrFormat)
		}
		if err = fillFromCoords(ins, coords, weightType); err != nil {
			return nil, err
		}

		return ins, nil

	case "EXPLICIT":
		if weights == nil {
			return nil, fmt.Errorf("%w: missing EDGE_WEIGHT_SECTION", ErrFormat)
		}
		if err = fillExplicit(ins, weights, weightFormat); err != nil {
			return nil, err
		}

		return ins, nil

	default:
		return nil, fmt.Errorf("%w: EDGE_WEIGHT_TYPE %q", ErrUnsupported, weightType)
	}
}

// parser wraps the line scanner with blank-line skipping.
type parser struct {
	sc *bufio.Scanner
}

// nextLine returns the next non-blank trimmed line.
func (p *parser) nextLine() (string, bool) {
	for p.sc.Scan() {
		line := strings.TrimSpace(p.sc.Text())
		if line != "" {
			return line, true
		}
	}

	return "", false
}

// splitKeyword splits "KEY : value" into an upper-cased key and a trimmed
// value; section names (no colon) come back with an empty value.
func splitKeyword(line string) (string, string) {
	key, val, found := strings.Cut(line, ":")
	if !found {
		return strings.ToUpper(strings.TrimSpace(line)), ""
	}

	return strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(val)
}

// readCoords reads dim "id x y" lines; ids are 1-based per the format.
func (p *parser) readCoords(dim int) ([][2]float64, error) {
	if dim < 2 {
		return nil, fmt.Errorf("%w: NODE_COORD_SECTION before DIMENSION", ErrFormat)
	}

	var (
		out  = make([][2]float64, dim)
		seen = make([]bool, dim)
		i    int
	)
	for i = 0; i < dim; i++ {
		line, ok := p.nextLine()
		if !ok {
			return nil, fmt.Errorf("%w: truncated NODE_COORD_SECTION", ErrFormat)
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: coordinate line %q", ErrFormat, line)
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 1 || id > dim || seen[id-1] {
			return nil, fmt.Errorf("%w: city id %q", ErrFormat, fields[0])
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: coordinate %q", ErrFormat, fields[1])
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: coordinate %q", ErrFormat, fields[2])
		}
		seen[id-1] = true
		out[id-1] = [2]float64{x, y}
	}

	return out, nil
}

// readNumbers collects count whitespace-separated integers spanning any
// number of lines.
func (p *parser) readNumbers(count int) ([]int64, error) {
	out := make([]int64, 0, count)
	for len(out) < count {
		line, ok := p.nextLine()
		if !ok {
			return nil, fmt.Errorf("%w: truncated EDGE_WEIGHT_SECTION", ErrFormat)
		}
		for _, f := range strings.Fields(line) {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: weight %q", ErrFormat, f)
			}
			out = append(out, v)
		}
	}
	if len(out) != count {
		return nil, fmt.Errorf("%w: %d weights, want %d", ErrFormat, len(out), count)
	}

	return out, nil
}

// skipLines discards n data lines.
func (p *parser) skipLines(n int) error {
	var i int
	for i = 0; i < n; i++ {
		if _, ok := p.nextLine(); !ok {
			return fmt.Errorf("%w: truncated section", ErrFormat)
		}
	}

	return nil
}

// explicitCount returns the number of values an EDGE_WEIGHT_SECTION must
// carry for the given format.
func explicitCount(format string, dim int) (int, error) {
	if dim < 2 {
		return 0, fmt.Errorf("%w: EDGE_WEIGHT_SECTION before DIMENSION", ErrFormat)
	}
	switch format {
	case "FULL_MATRIX":
		return dim * dim, nil
	case "UPPER_ROW", "LOWER_ROW":
		return dim * (dim - 1) / 2, nil
	case "UPPER_DIAG_ROW", "LOWER_DIAG_ROW":
		return dim * (dim + 1) / 2, nil
	default:
		return 0, fmt.Errorf("%w: EDGE_WEIGHT_FORMAT %q", ErrUnsupported, format)
	}
}

// fillFromCoords computes all pairwise distances with the metric named by
// weightType.
func fillFromCoords(ins *Instance, coords [][2]float64, weightType string) error {
	var fn func(x1, y1, x2, y2 float64) int64
	switch weightType {
	case "EUC_2D":
		fn = euc2d
	case "CEIL_2D":
		fn = ceil2d
	case "ATT":
		fn = att
	case "GEO":
		fn = geo
	default:
		return fmt.Errorf("%w: EDGE_WEIGHT_TYPE %q", ErrUnsupported, weightType)
	}

	var (
		n = ins.n
		i int
		j int
		d int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = fn(coords[i][0], coords[i][1], coords[j][0], coords[j][1])
			ins.w[i*n+j] = d
			ins.w[j*n+i] = d
		}
	}

	return nil
}

// fillExplicit expands the triangular or full value list into the dense
// matrix and enforces symmetry.
func fillExplicit(ins *Instance, vals []int64, format string) error {
	var (
		n   = ins.n
		idx int
		i   int
		j   int
	)
	switch format {
	case "FULL_MATRIX":
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				ins.w[i*n+j] = vals[idx]
				idx++
			}
		}
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if ins.w[i*n+j] != ins.w[j*n+i] {
					return fmt.Errorf("%w: asymmetric FULL_MATRIX", ErrUnsupported)
				}
			}
		}

	case "UPPER_ROW":
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				ins.w[i*n+j] = vals[idx]
				ins.w[j*n+i] = vals[idx]
				idx++
			}
		}

	case "LOWER_ROW":
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				ins.w[i*n+j] = vals[idx]
				ins.w[j*n+i] = vals[idx]
				idx++
			}
		}

	case "UPPER_DIAG_ROW":
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				ins.w[i*n+j] = vals[idx]
				ins.w[j*n+i] = vals[idx]
				idx++
			}
		}

	case "LOWER_DIAG_ROW":
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				ins.w[i*n+j] = vals[idx]
				ins.w[j*n+i] = vals[idx]
				idx++
			}
		}

	default:
		return fmt.Errorf("%w: EDGE_WEIGHT_FORMAT %q", ErrUnsupported, format)
	}

	return nil
}
