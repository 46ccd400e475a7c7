package localstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Fetch summarizes one previously downloaded container folder under the
// destination root.
type Fetch struct {
	Container string
	Files     int
	Bytes     int64
	HasDump   bool
	HasStatic bool
}

// List scans the destination root for container folders and summarizes
// their contents, sorted by container name. A missing root yields an
// empty listing.
func List(root string) ([]Fetch, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var fetches []Fetch
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		f, err := summarize(filepath.Join(root, e.Name()), e.Name())
		if err != nil {
			return nil, err
		}
		fetches = append(fetches, f)
	}
	sort.Slice(fetches, func(i, j int) bool { return fetches[i].Container < fetches[j].Container })
	return fetches, nil
}

func summarize(dir, name string) (Fetch, error) {
	f := Fetch{Container: name}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		f.Files++
		f.Bytes += info.Size()
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "dump.sql" {
			f.HasDump = true
		}
		if strings.HasPrefix(rel, "static/") {
			f.HasStatic = true
		}
		return nil
	})
	return f, err
}
