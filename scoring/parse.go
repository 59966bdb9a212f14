package scoring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseTable reads a whitespace-aligned substitution table, the shape used
// by BLOSUM/PAM distribution files:
//
//	# any number of leading
//	# comment lines
//	   A  G  C  T
//	A  3 -3 -3 -3
//	G -3  3 -3 -3
//	C -3 -3  3 -3
//	T -3 -3 -3  3
//
// The first non-comment line names the column symbols; each following line
// names a row symbol and one integer score per column. Every column symbol
// must also appear as a row symbol so that every pair is modeled; anything
// else fails with ErrBadTable.
func ParseTable(r io.Reader) (map[byte]map[byte]int, error) {
	scanner := bufio.NewScanner(r)

	var header []byte
	table := make(map[byte]map[byte]int)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		if header == nil {
			// First content line carries the column symbols.
			for _, f := range fields {
				sym, err := parseSymbol(f)
				if err != nil {
					return nil, err
				}
				header = append(header, sym)
			}
			continue
		}
		if len(fields) != len(header)+1 {
			return nil, fmt.Errorf("scoring.ParseTable: row %q has %d scores, want %d: %w",
				fields[0], len(fields)-1, len(header), ErrBadTable)
		}
		sym, err := parseSymbol(fields[0])
		if err != nil {
			return nil, err
		}
		row := make(map[byte]int, len(header))
		for i, f := range fields[1:] {
			v, convErr := strconv.Atoi(f)
			if convErr != nil {
				return nil, fmt.Errorf("scoring.ParseTable: row %q column %q: score %q is not an integer: %w",
					fields[0], string(header[i]), f, ErrBadTable)
			}
			row[header[i]] = v
		}
		table[sym] = row
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scoring.ParseTable: %w", err)
	}
	if len(header) == 0 || len(table) == 0 {
		return nil, fmt.Errorf("scoring.ParseTable: %w", ErrEmptyTable)
	}
	// Every column symbol needs a row, otherwise some pair is unmodeled.
	for _, sym := range header {
		if _, ok := table[sym]; !ok {
			return nil, fmt.Errorf("scoring.ParseTable: column symbol %q has no row: %w", sym, ErrBadTable)
		}
	}

	return table, nil
}

// ParseTableFile reads a substitution table from the named file.
func ParseTableFile(path string) (map[byte]map[byte]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scoring.ParseTableFile: %w", err)
	}
	defer f.Close()

	return ParseTable(f)
}

// parseSymbol validates that a field is a single-byte symbol.
func parseSymbol(field string) (byte, error) {
	if len(field) != 1 {
		return 0, fmt.Errorf("scoring.ParseTable: symbol %q must be a single character: %w", field, ErrBadTable)
	}

	return field[0], nil
}
