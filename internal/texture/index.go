package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// decodable extensions, in ascending priority. When two files share a stem
// the lossless format wins.
var extPriority = map[string]int{
	".jpg":  1,
	".jpeg": 1,
	".webp": 2,
	".bmp":  3,
	".tga":  4,
	".png":  5,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem → full path
}

// BuildIndex scans dir and its subdirectories for decodable image files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		prio, ok := extPriority[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		if existing, exists := idx.entries[stem]; exists {
			if extPriority[strings.ToLower(filepath.Ext(existing))] >= prio {
				return nil
			}
		}
		idx.entries[stem] = path
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// The name may carry directories and an extension; only the stem matters.
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
