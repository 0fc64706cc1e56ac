package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTSVThenReadTSVRoundTrips(t *testing.T) {
	ds := New(4)
	mustAddLink(t, ds, 0, 1, 1.5, true)
	mustAddLink(t, ds, 1, 2, 2.0, false)
	mustAddLink(t, ds, 0, 1, 0.5, true) // summed into the existing (0,1) link

	path := filepath.Join(t.TempDir(), "store.tsv")
	if err := WriteTSV(path, ds); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}

	got, err := ReadTSV(path)
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}

	if got.ContigCount() != 4 {
		t.Fatalf("ContigCount = %d, want 4", got.ContigCount())
	}
	if got.LinkCount() != 2 {
		t.Fatalf("LinkCount = %d, want 2", got.LinkCount())
	}

	seen := map[[2]int]Link{}
	got.ForEachLink(func(i, j int, weight float64, equal bool) {
		seen[[2]int{i, j}] = Link{A: i, B: j, Weight: weight, EqualOrientation: equal}
	})

	l, ok := seen[[2]int{0, 1}]
	if !ok {
		t.Fatal("missing link (0,1)")
	}
	if l.Weight != 2.0 || !l.EqualOrientation {
		t.Fatalf("link (0,1) = %+v, want weight 2.0 equal=true", l)
	}

	l, ok = seen[[2]int{1, 2}]
	if !ok {
		t.Fatal("missing link (1,2)")
	}
	if l.Weight != 2.0 || l.EqualOrientation {
		t.Fatalf("link (1,2) = %+v, want weight 2.0 equal=false", l)
	}
}

func TestReadTSVRejectsMalformedInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tsv")
	writeFile(t, path, "#contigs\nnotanumber\n#links\n")

	if _, err := ReadTSV(path); err == nil {
		t.Fatal("expected error for non-numeric contig count")
	}
}

func TestAddLinkRejectsSelfLink(t *testing.T) {
	ds := New(3)
	if err := ds.AddLink(1, 1, 1.0, true); err == nil {
		t.Fatal("expected error for self-link")
	}
}

func TestAddLinkRejectsOutOfRange(t *testing.T) {
	ds := New(3)
	if err := ds.AddLink(0, 5, 1.0, true); err == nil {
		t.Fatal("expected error for out-of-range contig id")
	}
}

func mustAddLink(t *testing.T, ds *DataStore, i, j int, w float64, equal bool) {
	t.Helper()
	if err := ds.AddLink(i, j, w, equal); err != nil {
		t.Fatalf("AddLink(%d,%d): %v", i, j, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
