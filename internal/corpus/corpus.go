// Package corpus loads the raw text the vocabulary is learned from.
package corpus

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// ErrNoColumn is returned when a CSV file lacks a requested column.
var ErrNoColumn = errors.New("corpus: column not found")

// Group is a set of CSV files read as one table. Columns are taken whole,
// one after another: every value of the first column across all files,
// then every value of the second, and so on.
type Group struct {
	Paths   []string `yaml:"paths"`
	Columns []string `yaml:"columns"`
}

// Load reads every group and plain-text file and joins all texts with a space.
func Load(groups []Group, textPaths []string) (string, error) {
	var texts []string
	for _, g := range groups {
		t, err := LoadGroup(g)
		if err != nil {
			return "", err
		}
		texts = append(texts, t...)
	}
	for _, p := range textPaths {
		t, err := LoadText(p)
		if err != nil {
			return "", err
		}
		if t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, " "), nil
}

// LoadGroup returns the non-empty values of g.Columns, column by column.
func LoadGroup(g Group) ([]string, error) {
	byColumn := make([][]string, len(g.Columns))
	for _, p := range g.Paths {
		cols, err := LoadCSV(p, g.Columns...)
		if err != nil {
			return nil, err
		}
		for i := range cols {
			byColumn[i] = append(byColumn[i], cols[i]...)
		}
	}
	var out []string
	for _, col := range byColumn {
		out = append(out, col...)
	}
	return out, nil
}

// LoadCSV returns, for each requested column, its non-empty values in row order.
func LoadCSV(path string, columns ...string) ([][]string, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	defer unmap()

	out := make([][]string, len(columns))
	if len(data) == 0 {
		return out, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		return nil, fmt.Errorf("corpus: read header %s: %w", path, err)
	}
	idx := make([]int, len(columns))
	for i, name := range columns {
		idx[i] = -1
		for j, h := range header {
			if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == name {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrNoColumn, name, path)
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: read %s: %w", path, err)
		}
		for i, j := range idx {
			// пустые ячейки pandas читает как NaN, в корпус они не попадают
			if j < len(rec) && strings.TrimSpace(rec[j]) != "" {
				out[i] = append(out[i], rec[j])
			}
		}
	}
	return out, nil
}

// LoadText returns the whole content of a plain-text file.
func LoadText(path string) (string, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return "", err
	}
	defer unmap()
	return string(data), nil
}

// mapFile maps path read-only. The returned bytes are valid until unmap is called.
func mapFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("corpus: stat %s: %w", path, err)
	}
	if st.Size() == 0 {
		return nil, func() {}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("corpus: mmap %s: %w", path, err)
	}
	return m, func() { _ = m.Unmap() }, nil
}
