package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoRecords indicates the input held no FASTA records at all.
	ErrNoRecords = errors.New("fasta: no records found")
	// ErrMissingHeader indicates sequence data appeared before any '>' header.
	ErrMissingHeader = errors.New("fasta: sequence data before first header")
)

// Record is a single FASTA record: the header text (without the leading
// '>') and the concatenated sequence.
type Record struct {
	Name string
	Seq  string
}

// Read parses every FASTA record from r. Records with empty sequences are
// kept; deciding whether they are acceptable is the caller's business.
func Read(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	var (
		records []Record
		current Record
		open    bool
		sb      strings.Builder
	)
	flush := func() {
		if open {
			current.Seq = sb.String()
			records = append(records, current)
			sb.Reset()
		}
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			current = Record{Name: strings.TrimSpace(line[1:])}
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("fasta.Read: %w", ErrMissingHeader)
		}
		sb.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta.Read: %w", err)
	}
	flush()
	if len(records) == 0 {
		return nil, fmt.Errorf("fasta.Read: %w", ErrNoRecords)
	}

	return records, nil
}

// ReadFile parses every FASTA record from the named file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta.ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f)
}
