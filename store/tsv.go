// ABOUTME: Tab-separated DataStore persistence
// ABOUTME: A minimal, documented stand-in for the original binary DataStoreReader/Writer format

package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadTSV loads a DataStore from the tab-separated format:
//
//	#contigs
//	<n>
//	#links
//	<i>\t<j>\t<weight>\t<equalOrientation>
//	...
//
// Blank lines and lines starting with "//" are ignored. This replaces the
// original tool's bespoke binary format (out of scope to reproduce) while
// keeping its three-section shape: a contig count header followed by a link
// list, as in DataStoreReader::readHeader/readContigs/readLinks.
func ReadTSV(path string) (*DataStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	idx := 0
	expect := func(tag string) error {
		if idx >= len(lines) || lines[idx] != tag {
			return fmt.Errorf("store: %s: expected %q section", path, tag)
		}
		idx++
		return nil
	}

	if err := expect("#contigs"); err != nil {
		return nil, err
	}
	if idx >= len(lines) {
		return nil, fmt.Errorf("store: %s: missing contig count", path)
	}
	n, err := strconv.Atoi(lines[idx])
	if err != nil {
		return nil, fmt.Errorf("store: %s: invalid contig count %q: %w", path, lines[idx], err)
	}
	idx++

	if err := expect("#links"); err != nil {
		return nil, err
	}

	ds := New(n)
	for ; idx < len(lines); idx++ {
		fields := strings.Split(lines[idx], "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("store: %s: malformed link line %q", path, lines[idx])
		}

		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("store: %s: bad contig index %q: %w", path, fields[0], err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("store: %s: bad contig index %q: %w", path, fields[1], err)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("store: %s: bad weight %q: %w", path, fields[2], err)
		}
		equal, err := strconv.ParseBool(fields[3])
		if err != nil {
			return nil, fmt.Errorf("store: %s: bad orientation flag %q: %w", path, fields[3], err)
		}

		if err := ds.AddLink(i, j, w, equal); err != nil {
			return nil, fmt.Errorf("store: %s: %w", path, err)
		}
	}

	return ds, nil
}

// WriteTSV writes a DataStore in the format read by ReadTSV.
func WriteTSV(path string, ds *DataStore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := fmt.Fprintf(w, "#contigs\n%d\n#links\n", ds.ContigCount()); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}

	var writeErr error
	ds.ForEachLink(func(i, j int, weight float64, equal bool) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(w, "%d\t%d\t%s\t%t\n", i, j, strconv.FormatFloat(weight, 'g', -1, 64), equal)
	})
	if writeErr != nil {
		return fmt.Errorf("store: write %s: %w", path, writeErr)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("store: flush %s: %w", path, err)
	}

	return nil
}
